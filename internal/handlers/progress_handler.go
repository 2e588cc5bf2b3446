package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// ProgressHandler handles progress note endpoints
type ProgressHandler struct {
	service services.ProgressService
}

// NewProgressHandler creates a new ProgressHandler
func NewProgressHandler(service services.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		service: service,
	}
}

// List handles GET /api/progress
func (h *ProgressHandler) List(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	notes, err := h.service.List(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch progress notes")
		return
	}

	response := models.ProgressResponse{
		Entries: make([]models.ProgressNote, 0, len(notes)),
		Total:   len(notes),
	}
	for _, n := range notes {
		response.Entries = append(response.Entries, *n)
	}

	c.JSON(http.StatusOK, response)
}

// Append handles POST /api/progress
func (h *ProgressHandler) Append(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req models.AddProgressNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request body",
			ParseValidationErrors(err), err)
		return
	}

	note, err := h.service.Append(c.Request.Context(), session, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to append progress note")
		return
	}

	c.JSON(http.StatusCreated, note)
}
