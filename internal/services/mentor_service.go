package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// MentorServiceImpl implements MentorService
type MentorServiceImpl struct {
	mentorRepo repository.MentorRepository
}

// NewMentorService creates a new mentor service
func NewMentorService(mentorRepo repository.MentorRepository) *MentorServiceImpl {
	return &MentorServiceImpl{mentorRepo: mentorRepo}
}

// List returns all mentors, newest-first
func (s *MentorServiceImpl) List(ctx context.Context) ([]*models.Mentor, error) {
	return s.mentorRepo.GetAll(ctx)
}

// GetByID returns a single mentor
func (s *MentorServiceImpl) GetByID(ctx context.Context, id int) (*models.Mentor, error) {
	return s.mentorRepo.GetByID(ctx, id)
}

// Create registers a new mentor. Email uniqueness is checked here so both
// persistence variants behave the same way.
func (s *MentorServiceImpl) Create(ctx context.Context, req *models.CreateMentorRequest) (*models.Mentor, error) {
	email := models.NormalizeEmail(req.Email)

	if err := s.checkEmailFree(ctx, email, 0); err != nil {
		metrics.MentorMutations.WithLabelValues("create", "conflict").Inc()
		return nil, err
	}

	mentor := &models.Mentor{
		Name:      req.Name,
		Email:     email,
		Expertise: req.Expertise,
		Phone:     req.Phone,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.mentorRepo.Create(ctx, mentor)
	if err != nil {
		metrics.MentorMutations.WithLabelValues("create", "error").Inc()
		return nil, err
	}

	metrics.MentorMutations.WithLabelValues("create", "success").Inc()
	logger.Info("Mentor registered",
		zap.Int("mentor_id", created.ID),
		zap.String("name", created.Name))

	return created, nil
}

// Update replaces a mentor's mutable fields
func (s *MentorServiceImpl) Update(ctx context.Context, id int, req *models.UpdateMentorRequest) (*models.Mentor, error) {
	email := models.NormalizeEmail(req.Email)

	if err := s.checkEmailFree(ctx, email, id); err != nil {
		metrics.MentorMutations.WithLabelValues("update", "conflict").Inc()
		return nil, err
	}

	mentor := &models.Mentor{
		Name:      req.Name,
		Email:     email,
		Expertise: req.Expertise,
		Phone:     req.Phone,
	}

	updated, err := s.mentorRepo.Update(ctx, id, mentor)
	if err != nil {
		metrics.MentorMutations.WithLabelValues("update", "error").Inc()
		return nil, err
	}

	metrics.MentorMutations.WithLabelValues("update", "success").Inc()
	return updated, nil
}

// Delete removes a mentor. An unknown id surfaces as not found in both
// persistence variants.
func (s *MentorServiceImpl) Delete(ctx context.Context, id int) error {
	if err := s.mentorRepo.Delete(ctx, id); err != nil {
		metrics.MentorMutations.WithLabelValues("delete", "error").Inc()
		return err
	}

	metrics.MentorMutations.WithLabelValues("delete", "success").Inc()
	logger.Info("Mentor removed", zap.Int("mentor_id", id))

	return nil
}

// checkEmailFree reports a conflict when another mentor already uses email.
// selfID exempts the mentor being updated from matching itself.
func (s *MentorServiceImpl) checkEmailFree(ctx context.Context, email string, selfID int) error {
	mentors, err := s.mentorRepo.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, m := range mentors {
		if m.ID != selfID && models.NormalizeEmail(m.Email) == email {
			return apperrors.ConflictError("mentor email already registered")
		}
	}

	return nil
}

var _ MentorService = (*MentorServiceImpl)(nil)
