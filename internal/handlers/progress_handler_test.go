package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

func TestProgress_AppendAndList(t *testing.T) {
	router := newTestRouter(t)
	student := login(t, router, "student1@example.com", "Student123!")

	w := doJSON(t, router, http.MethodPost, "/api/progress", gin.H{"note": "Finished chapter 3"}, student)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var note models.ProgressNote
	decodeBody(t, w, &note)
	assert.Equal(t, "student1@example.com", note.StudentEmail)
	assert.NotEmpty(t, note.Date)

	w = doJSON(t, router, http.MethodPost, "/api/progress", gin.H{"note": "Started chapter 4"}, student)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/progress", nil, student)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.ProgressResponse
	decodeBody(t, w, &resp)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Finished chapter 3", resp.Entries[0].Note)
	assert.Equal(t, "Started chapter 4", resp.Entries[1].Note)

	// Another student's log is separate.
	other := login(t, router, "student2@example.com", "Student123!")
	w = doJSON(t, router, http.MethodGet, "/api/progress", nil, other)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.Equal(t, 0, resp.Total)
}

func TestProgress_EmptyNoteRejected(t *testing.T) {
	router := newTestRouter(t)
	student := login(t, router, "student1@example.com", "Student123!")

	w := doJSON(t, router, http.MethodPost, "/api/progress", gin.H{"note": ""}, student)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/progress", gin.H{"note": "   "}, student)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProgress_RequiresSession(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/progress", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/progress", gin.H{"note": "x"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthcheck(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/healthcheck", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ok")
}
