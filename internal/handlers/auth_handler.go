package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
)

// AuthHandler handles login, registration and session endpoints
type AuthHandler struct {
	service      services.AuthService
	ttlSeconds   int
	cookieDomain string
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service services.AuthService, ttlSeconds int, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		service:      service,
		ttlSeconds:   ttlSeconds,
		cookieDomain: cookieDomain,
		cookieSecure: cookieSecure,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request body",
			ParseValidationErrors(err), err)
		return
	}

	session, token, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to log in")
		return
	}

	middleware.SetSessionCookie(c, token, h.ttlSeconds, h.cookieDomain, h.cookieSecure)
	c.JSON(http.StatusOK, gin.H{"user": session})
}

// Register handles POST /api/auth/register. A successful registration logs
// the new account straight in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondErrorWithDetails(c, http.StatusBadRequest, "Invalid request body",
			ParseValidationErrors(err), err)
		return
	}

	session, token, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err, "Failed to register")
		return
	}

	middleware.SetSessionCookie(c, token, h.ttlSeconds, h.cookieDomain, h.cookieSecure)
	c.JSON(http.StatusCreated, gin.H{"user": session})
}

// Logout handles POST /api/auth/logout. Always succeeds, cookie or not.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context())
	middleware.ClearSessionCookie(c, h.cookieDomain, h.cookieSecure)
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// Session handles GET /api/auth/session. The remembered email rides along so
// the sign-in form can prefill it.
func (h *AuthHandler) Session(c *gin.Context) {
	session, err := middleware.GetUserSession(c)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Unauthorized", err)
		return
	}

	response := gin.H{"user": session}
	if remembered := h.service.RememberedEmail(); remembered != "" {
		response["rememberedEmail"] = remembered
	}

	c.JSON(http.StatusOK, response)
}
