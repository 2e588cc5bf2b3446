package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

func TestBookings_RequireSession(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/bookings", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{"mentorId": 1, "date": "2026-09-20", "time": "11:00"}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookings_ListIsRoleFiltered(t *testing.T) {
	router := newTestRouter(t)

	// student1 owns both seeded bookings.
	student := login(t, router, "student1@example.com", "Student123!")
	w := doJSON(t, router, http.MethodGet, "/api/bookings", nil, student)
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BookingsResponse
	decodeBody(t, w, &resp)
	assert.Equal(t, 2, resp.Total)

	// Sai only sees the booking addressed to him.
	sai := login(t, router, "mentor1@example.com", "Mentor123!")
	w = doJSON(t, router, http.MethodGet, "/api/bookings", nil, sai)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Sai", resp.Bookings[0].MentorName)

	// Rakesh has no requests.
	rakesh := login(t, router, "mentor2@example.com", "Mentor123!")
	w = doJSON(t, router, http.MethodGet, "/api/bookings", nil, rakesh)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.Equal(t, 0, resp.Total)

	// Admin sees everything.
	admin := login(t, router, "admin@example.com", "Admin123!")
	w = doJSON(t, router, http.MethodGet, "/api/bookings", nil, admin)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.Equal(t, 2, resp.Total)
}

func TestBookings_CreateForcesPending(t *testing.T) {
	router := newTestRouter(t)
	student := login(t, router, "student2@example.com", "Student123!")

	// A smuggled status field must be ignored.
	w := doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{
		"mentorId": 2, "date": "2026-09-20", "time": "11:00", "status": "confirmed",
	}, student)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var booking models.Booking
	decodeBody(t, w, &booking)
	assert.Equal(t, models.StatusPending, booking.Status)
	assert.Equal(t, "Rakesh", booking.MentorName)
	assert.Equal(t, "student2@example.com", booking.StudentEmail)
	assert.Equal(t, "Sarah Student", booking.StudentName)
}

func TestBookings_CreateUnknownMentor(t *testing.T) {
	router := newTestRouter(t)
	student := login(t, router, "student1@example.com", "Student123!")

	w := doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{
		"mentorId": 999, "date": "2026-09-20", "time": "11:00",
	}, student)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Nothing was appended to the ledger.
	var resp models.BookingsResponse
	w = doJSON(t, router, http.MethodGet, "/api/bookings", nil, student)
	decodeBody(t, w, &resp)
	assert.Equal(t, 2, resp.Total)
}

func TestBookings_CreateByMentorForbidden(t *testing.T) {
	router := newTestRouter(t)
	mentor := login(t, router, "mentor1@example.com", "Mentor123!")

	w := doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{
		"mentorId": 2, "date": "2026-09-20", "time": "11:00",
	}, mentor)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBookings_ConfirmWorkflow(t *testing.T) {
	router := newTestRouter(t)
	student := login(t, router, "student1@example.com", "Student123!")
	sai := login(t, router, "mentor1@example.com", "Mentor123!")
	rakesh := login(t, router, "mentor2@example.com", "Mentor123!")

	// Book mentor 1 (Sai).
	w := doJSON(t, router, http.MethodPost, "/api/bookings", gin.H{
		"mentorId": 1, "date": "2026-09-20", "time": "11:00",
	}, student)
	require.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	decodeBody(t, w, &booking)
	path := fmt.Sprintf("/api/bookings/%d", booking.ID)

	// A different mentor cannot decide the request.
	w = doJSON(t, router, http.MethodPatch, path, gin.H{"status": "confirmed"}, rakesh)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The booked mentor confirms it.
	w = doJSON(t, router, http.MethodPatch, path, gin.H{"status": "confirmed"}, sai)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	decodeBody(t, w, &booking)
	assert.Equal(t, models.StatusConfirmed, booking.Status)

	// Confirmed is terminal: a second decision fails.
	w = doJSON(t, router, http.MethodPatch, path, gin.H{"status": "rejected"}, sai)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The status of an unknown payload value is a binding error.
	w = doJSON(t, router, http.MethodPatch, path, gin.H{"status": "pending"}, sai)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookings_Delete(t *testing.T) {
	router := newTestRouter(t)
	student := login(t, router, "student1@example.com", "Student123!")
	admin := login(t, router, "admin@example.com", "Admin123!")

	w := doJSON(t, router, http.MethodDelete, "/api/bookings/1", nil, student)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/bookings/1", nil, admin)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/bookings/1", nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/bookings/abc", nil, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
