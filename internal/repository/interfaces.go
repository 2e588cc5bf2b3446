package repository

import (
	"context"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

// MentorRepository defines mentor registry data access. GetAll returns
// mentors newest-first in every implementation.
type MentorRepository interface {
	GetAll(ctx context.Context) ([]*models.Mentor, error)
	GetByID(ctx context.Context, id int) (*models.Mentor, error)
	Create(ctx context.Context, mentor *models.Mentor) (*models.Mentor, error)
	Update(ctx context.Context, id int, mentor *models.Mentor) (*models.Mentor, error)
	Delete(ctx context.Context, id int) error
}

// BookingRepository defines booking ledger data access. Status workflow
// validation lives in the service layer; repositories persist blindly.
type BookingRepository interface {
	GetAll(ctx context.Context) ([]*models.Booking, error)
	GetByID(ctx context.Context, id int) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) (*models.Booking, error)
	UpdateStatus(ctx context.Context, id int, status models.BookingStatus) (*models.Booking, error)
	Delete(ctx context.Context, id int) error
}

// ProgressRepository defines the append-only progress log data access.
type ProgressRepository interface {
	ListByEmail(ctx context.Context, studentEmail string) ([]*models.ProgressNote, error)
	Append(ctx context.Context, note *models.ProgressNote) (*models.ProgressNote, error)
}
