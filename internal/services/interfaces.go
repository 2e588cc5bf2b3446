package services

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

// MentorService defines mentor registry business logic
type MentorService interface {
	List(ctx context.Context) ([]*models.Mentor, error)
	GetByID(ctx context.Context, id int) (*models.Mentor, error)
	Create(ctx context.Context, req *models.CreateMentorRequest) (*models.Mentor, error)
	Update(ctx context.Context, id int, req *models.UpdateMentorRequest) (*models.Mentor, error)
	Delete(ctx context.Context, id int) error
}

// BookingService defines the booking workflow. Every operation takes the
// acting session because authorization is caller-side: the service decides
// what the actor may see or change.
type BookingService interface {
	ListFor(ctx context.Context, actor *models.Session) ([]*models.Booking, error)
	GetByID(ctx context.Context, id int) (*models.Booking, error)
	Create(ctx context.Context, actor *models.Session, req *models.CreateBookingRequest) (*models.Booking, error)
	SetStatus(ctx context.Context, actor *models.Session, id int, status models.BookingStatus) (*models.Booking, error)
	Delete(ctx context.Context, actor *models.Session, id int) error
}

// AuthService defines login, registration and session handling against the
// seeded demo directory.
type AuthService interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.Session, string, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Session, string, error)
	Logout(ctx context.Context)
	RememberedEmail() string
}

// ProgressService defines the append-only progress log. Actors only ever see
// their own notes.
type ProgressService interface {
	List(ctx context.Context, actor *models.Session) ([]*models.ProgressNote, error)
	Append(ctx context.Context, actor *models.Session, req *models.AddProgressNoteRequest) (*models.ProgressNote, error)
}
