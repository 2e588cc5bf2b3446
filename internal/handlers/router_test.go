package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-api/internal/directory"
	"github.com/mentorhub/mentorhub-api/internal/handlers"
	"github.com/mentorhub/mentorhub-api/internal/kvstore"
	"github.com/mentorhub/mentorhub-api/internal/middleware"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/internal/services"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

// newTestRouter wires the full API over the local store variant with the demo
// data seeded, mirroring the production route table.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	store := kvstore.New("")
	require.NoError(t, repository.SeedLocalData(store))

	mentorRepo := repository.NewLocalMentorRepository(store)
	bookingRepo := repository.NewLocalBookingRepository(store)
	progressRepo := repository.NewLocalProgressRepository(store)

	tokens := jwt.NewTokenManager("test-secret", "mentorhub-test", 1)

	mentorService := services.NewMentorService(mentorRepo)
	bookingService := services.NewBookingService(bookingRepo, mentorRepo)
	authService := services.NewAuthService(directory.NewSeeded(), tokens, store)
	progressService := services.NewProgressService(progressRepo)

	mentorHandler := handlers.NewMentorHandler(mentorService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	authHandler := handlers.NewAuthHandler(authService, 3600, "", false)
	progressHandler := handlers.NewProgressHandler(progressService)
	healthHandler := handlers.NewHealthHandler(func() error { return nil })

	sessionRequired := middleware.UserSessionMiddleware(tokens, "", false)
	adminOnly := middleware.RequireRole(models.RoleAdmin)

	router := gin.New()
	api := router.Group("/api")

	api.GET("/healthcheck", healthHandler.Healthcheck)

	api.GET("/mentors", mentorHandler.List)
	api.GET("/mentors/:id", mentorHandler.GetByID)
	api.POST("/mentors", sessionRequired, adminOnly, mentorHandler.Create)
	api.PUT("/mentors/:id", sessionRequired, adminOnly, mentorHandler.Update)
	api.DELETE("/mentors/:id", sessionRequired, adminOnly, mentorHandler.Delete)

	api.GET("/bookings", sessionRequired, bookingHandler.List)
	api.POST("/bookings", sessionRequired, bookingHandler.Create)
	api.PATCH("/bookings/:id", sessionRequired, bookingHandler.UpdateStatus)
	api.DELETE("/bookings/:id", sessionRequired, bookingHandler.Delete)

	api.GET("/progress", sessionRequired, progressHandler.List)
	api.POST("/progress", sessionRequired, progressHandler.Append)

	auth := router.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", sessionRequired, authHandler.Session)

	return router
}

// doJSON performs a request with an optional JSON body and session cookie.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// login authenticates against the router and returns the session cookie.
func login(t *testing.T, router *gin.Engine, email, password string) *http.Cookie {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    email,
		"password": password,
	}, nil)
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}

	t.Fatal("no session cookie in login response")
	return nil
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
