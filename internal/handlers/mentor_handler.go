package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// MentorHandler handles mentor registry endpoints
type MentorHandler struct {
	service services.MentorService
}

// NewMentorHandler creates a new MentorHandler
func NewMentorHandler(service services.MentorService) *MentorHandler {
	return &MentorHandler{
		service: service,
	}
}

// List handles GET /api/mentors
func (h *MentorHandler) List(c *gin.Context) {
	mentors, err := h.service.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to fetch mentors")
		return
	}

	response := models.MentorsResponse{
		Mentors: make([]models.Mentor, 0, len(mentors)),
		Total:   len(mentors),
	}
	for _, m := range mentors {
		response.Mentors = append(response.Mentors, *m)
	}

	c.JSON(http.StatusOK, response)
}

// GetByID handles GET /api/mentors/:id
func (h *MentorHandler) GetByID(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	mentor, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch mentor")
		return
	}

	c.JSON(http.StatusOK, mentor)
}

// Create handles POST /api/mentors
func (h *MentorHandler) Create(c *gin.Context) {
	var req models.CreateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request body",
			ParseValidationErrors(err), err)
		return
	}

	mentor, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create mentor")
		return
	}

	c.JSON(http.StatusCreated, mentor)
}

// Update handles PUT /api/mentors/:id
func (h *MentorHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateMentorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request body",
			ParseValidationErrors(err), err)
		return
	}

	mentor, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to update mentor")
		return
	}

	c.JSON(http.StatusOK, mentor)
}

// Delete handles DELETE /api/mentors/:id
func (h *MentorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondServiceError(c, err, "Failed to delete mentor")
		return
	}

	c.Status(http.StatusNoContent)
}
