package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// BookingHandler handles booking ledger endpoints
type BookingHandler struct {
	service services.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(service services.BookingService) *BookingHandler {
	return &BookingHandler{
		service: service,
	}
}

// List handles GET /api/bookings. The response is filtered to what the
// session's role may see.
func (h *BookingHandler) List(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	bookings, err := h.service.ListFor(c.Request.Context(), session)
	if err != nil {
		respondServiceError(c, err, "Failed to fetch bookings")
		return
	}

	response := models.BookingsResponse{
		Bookings: make([]models.Booking, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		response.Bookings = append(response.Bookings, *b)
	}

	c.JSON(http.StatusOK, response)
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request body",
			ParseValidationErrors(err), err)
		return
	}

	booking, err := h.service.Create(c.Request.Context(), session, &req)
	if err != nil {
		respondServiceError(c, err, "Failed to create booking")
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// UpdateStatus handles PATCH /api/bookings/:id
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request body",
			gin.H{"message": "Status must be 'confirmed' or 'rejected'"}, err)
		return
	}

	booking, err := h.service.SetStatus(c.Request.Context(), session, id, req.Status)
	if err != nil {
		respondServiceError(c, err, "Failed to update booking status")
		return
	}

	c.JSON(http.StatusOK, booking)
}

// Delete handles DELETE /api/bookings/:id
func (h *BookingHandler) Delete(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), session, id); err != nil {
		respondServiceError(c, err, "Failed to delete booking")
		return
	}

	c.Status(http.StatusNoContent)
}
