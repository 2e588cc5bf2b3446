package services

import (
	"context"
	"regexp"
	"time"
	"unicode"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/directory"
	"github.com/mentorhub/mentorhub-api/internal/kvstore"
	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/jwt"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// emailPattern matches the permissive check the original sign-in form used.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AuthServiceImpl implements AuthService over the seeded demo directory.
// Passwords are compared in plaintext on purpose: the directory is a fixed
// demo account set, not real credentials.
type AuthServiceImpl struct {
	users  *directory.UserDirectory
	tokens *jwt.TokenManager
	store  *kvstore.Store
}

// NewAuthService creates a new auth service
func NewAuthService(users *directory.UserDirectory, tokens *jwt.TokenManager, store *kvstore.Store) *AuthServiceImpl {
	return &AuthServiceImpl{
		users:  users,
		tokens: tokens,
		store:  store,
	}
}

// Login checks credentials and returns the session view plus a signed token.
// With rememberMe set, the session and the email are persisted to the local
// store so the next start can restore them.
func (s *AuthServiceImpl) Login(ctx context.Context, req *models.LoginRequest) (*models.Session, string, error) {
	email := models.NormalizeEmail(req.Email)

	if !emailPattern.MatchString(email) {
		metrics.Logins.WithLabelValues("invalid_email").Inc()
		return nil, "", apperrors.InvalidInputError("email", "invalid email format")
	}

	user, found := s.users.Lookup(email)
	if !found {
		metrics.Logins.WithLabelValues("unknown_email").Inc()
		return nil, "", apperrors.NotFoundError("account")
	}

	if user.Password != req.Password {
		metrics.Logins.WithLabelValues("bad_password").Inc()
		return nil, "", apperrors.UnauthorizedError("incorrect password")
	}

	session := user.ToSession()
	token, err := s.issueToken(&session)
	if err != nil {
		metrics.Logins.WithLabelValues("error").Inc()
		return nil, "", err
	}

	if req.RememberMe {
		if err := s.store.Set(kvstore.KeySession, session); err != nil {
			logger.Warn("Failed to persist session", zap.Error(err))
		}
		if err := s.store.Set(kvstore.KeyRememberedEmail, session.Email); err != nil {
			logger.Warn("Failed to persist remembered email", zap.Error(err))
		}
	}

	metrics.Logins.WithLabelValues("success").Inc()
	logger.Info("User logged in",
		zap.String("email", session.Email),
		zap.String("role", string(session.Role)))

	return &session, token, nil
}

// Register creates an account in the directory and logs it straight in.
func (s *AuthServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*models.Session, string, error) {
	email := models.NormalizeEmail(req.Email)

	if !emailPattern.MatchString(email) {
		metrics.Registrations.WithLabelValues("invalid_email").Inc()
		return nil, "", apperrors.InvalidInputError("email", "invalid email format")
	}

	if reason, ok := checkPasswordStrength(req.Password); !ok {
		metrics.Registrations.WithLabelValues("weak_password").Inc()
		return nil, "", apperrors.InvalidInputError("password", reason)
	}

	user := &models.User{
		Name:      req.Name,
		Email:     email,
		Password:  req.Password,
		Phone:     req.Phone,
		Profile:   req.BuildProfile(),
		CreatedAt: time.Now().UTC(),
	}

	if err := s.users.Insert(user); err != nil {
		metrics.Registrations.WithLabelValues("conflict").Inc()
		return nil, "", err
	}

	session := user.ToSession()
	token, err := s.issueToken(&session)
	if err != nil {
		metrics.Registrations.WithLabelValues("error").Inc()
		return nil, "", err
	}

	if err := s.store.Set(kvstore.KeySession, session); err != nil {
		logger.Warn("Failed to persist session", zap.Error(err))
	}

	metrics.Registrations.WithLabelValues("success").Inc()
	logger.Info("User registered",
		zap.String("email", session.Email),
		zap.String("role", string(session.Role)))

	return &session, token, nil
}

// Logout drops the persisted session. The remembered email survives so the
// sign-in form can keep prefilling it; this never fails.
func (s *AuthServiceImpl) Logout(ctx context.Context) {
	s.store.Remove(kvstore.KeySession)
	logger.Info("User logged out")
}

// RememberedEmail returns the last email saved with rememberMe, or empty.
func (s *AuthServiceImpl) RememberedEmail() string {
	var email string
	s.store.Get(kvstore.KeyRememberedEmail, &email)
	return email
}

func (s *AuthServiceImpl) issueToken(session *models.Session) (string, error) {
	token, err := s.tokens.GenerateToken(session.UserID, session.Email, session.Name,
		string(session.Role), session.Interests, session.Expertise)
	if err != nil {
		logger.Error("Failed to sign session token", zap.Error(err))
		return "", apperrors.InternalError("failed to create session")
	}
	return token, nil
}

// checkPasswordStrength enforces the sign-up form's rule: at least 6
// characters with an upper, a lower, a digit and a special character.
func checkPasswordStrength(password string) (string, bool) {
	if len(password) < 6 {
		return "must be at least 6 characters", false
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}

	if !hasUpper || !hasLower || !hasDigit || !hasSpecial {
		return "must contain upper and lower case letters, a digit and a special character", false
	}

	return "", true
}

var _ AuthService = (*AuthServiceImpl)(nil)
