package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// BookingServiceImpl implements BookingService
type BookingServiceImpl struct {
	bookingRepo repository.BookingRepository
	mentorRepo  repository.MentorRepository
}

// NewBookingService creates a new booking service
func NewBookingService(bookingRepo repository.BookingRepository, mentorRepo repository.MentorRepository) *BookingServiceImpl {
	return &BookingServiceImpl{
		bookingRepo: bookingRepo,
		mentorRepo:  mentorRepo,
	}
}

// ListFor returns the bookings visible to the actor: students see their own
// requests, mentors see requests addressed to them, admins see everything.
// Without a session nothing is visible.
func (s *BookingServiceImpl) ListFor(ctx context.Context, actor *models.Session) ([]*models.Booking, error) {
	if actor == nil {
		return []*models.Booking{}, nil
	}

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	if actor.Role == models.RoleAdmin {
		return bookings, nil
	}

	visible := make([]*models.Booking, 0, len(bookings))
	for _, b := range bookings {
		switch actor.Role {
		case models.RoleStudent:
			if b.StudentEmail == actor.Email {
				visible = append(visible, b)
			}
		case models.RoleMentor:
			if b.MentorName == actor.Name {
				visible = append(visible, b)
			}
		}
	}

	return visible, nil
}

// GetByID returns a single booking
func (s *BookingServiceImpl) GetByID(ctx context.Context, id int) (*models.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

// Create books a session with a mentor. The mentor must exist, mentors
// themselves cannot book, and the new booking always starts pending no matter
// what the client sends.
func (s *BookingServiceImpl) Create(ctx context.Context, actor *models.Session, req *models.CreateBookingRequest) (*models.Booking, error) {
	if actor == nil {
		return nil, apperrors.UnauthorizedError("login required to book a session")
	}

	if actor.Role == models.RoleMentor {
		return nil, apperrors.AccessDeniedError("mentors cannot book sessions")
	}

	if strings.TrimSpace(req.Date) == "" {
		return nil, apperrors.InvalidInputError("date", "must not be empty")
	}
	if strings.TrimSpace(req.Time) == "" {
		return nil, apperrors.InvalidInputError("time", "must not be empty")
	}

	// Resolve the mentor before touching the ledger: an unknown mentorId must
	// not leave a partial record behind.
	mentor, err := s.mentorRepo.GetByID(ctx, req.MentorID)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		MentorID:     mentor.ID,
		MentorName:   mentor.Name,
		StudentEmail: actor.Email,
		StudentName:  actor.Name,
		Date:         req.Date,
		Time:         req.Time,
		Status:       models.StatusPending,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	metrics.BookingsCreated.WithLabelValues(string(models.StatusPending)).Inc()
	logger.Info("Session booked",
		zap.Int("booking_id", created.ID),
		zap.String("mentor_name", created.MentorName),
		zap.String("student_email", created.StudentEmail))

	return created, nil
}

// SetStatus accepts or declines a pending booking. Only the mentor the
// booking references may decide, and terminal bookings never move again.
func (s *BookingServiceImpl) SetStatus(ctx context.Context, actor *models.Session, id int, status models.BookingStatus) (*models.Booking, error) {
	if actor == nil {
		return nil, apperrors.UnauthorizedError("login required")
	}

	if !status.IsValid() || status == models.StatusPending {
		return nil, apperrors.InvalidInputError("status", "must be 'confirmed' or 'rejected'")
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.Role != models.RoleMentor || booking.MentorName != actor.Name {
		return nil, apperrors.AccessDeniedError("only the booked mentor can decide this request")
	}

	if !booking.Status.CanTransitionTo(status) {
		return nil, apperrors.InvalidTransitionError(string(booking.Status), string(status))
	}

	updated, err := s.bookingRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	metrics.BookingStatusUpdates.WithLabelValues(string(booking.Status), string(status)).Inc()
	logger.Info("Booking status updated",
		zap.Int("booking_id", id),
		zap.String("from_status", string(booking.Status)),
		zap.String("to_status", string(status)))

	return updated, nil
}

// Delete removes a booking from the ledger. Admin only.
func (s *BookingServiceImpl) Delete(ctx context.Context, actor *models.Session, id int) error {
	if actor == nil {
		return apperrors.UnauthorizedError("login required")
	}

	if actor.Role != models.RoleAdmin {
		return apperrors.AccessDeniedError("only admins can delete bookings")
	}

	return s.bookingRepo.Delete(ctx, id)
}

var _ BookingService = (*BookingServiceImpl)(nil)
