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

// ProgressServiceImpl implements ProgressService
type ProgressServiceImpl struct {
	progressRepo repository.ProgressRepository
}

// NewProgressService creates a new progress service
func NewProgressService(progressRepo repository.ProgressRepository) *ProgressServiceImpl {
	return &ProgressServiceImpl{progressRepo: progressRepo}
}

// List returns the actor's own notes in insertion order
func (s *ProgressServiceImpl) List(ctx context.Context, actor *models.Session) ([]*models.ProgressNote, error) {
	if actor == nil {
		return nil, apperrors.UnauthorizedError("login required")
	}

	return s.progressRepo.ListByEmail(ctx, actor.Email)
}

// Append adds a note to the actor's log, stamped with today's date. The log
// is append-only; nothing is ever rewritten or removed.
func (s *ProgressServiceImpl) Append(ctx context.Context, actor *models.Session, req *models.AddProgressNoteRequest) (*models.ProgressNote, error) {
	if actor == nil {
		return nil, apperrors.UnauthorizedError("login required")
	}

	note := strings.TrimSpace(req.Note)
	if note == "" {
		return nil, apperrors.InvalidInputError("note", "must not be empty")
	}

	entry := &models.ProgressNote{
		StudentEmail: actor.Email,
		Date:         time.Now().UTC().Format("2006-01-02"),
		Note:         note,
	}

	created, err := s.progressRepo.Append(ctx, entry)
	if err != nil {
		return nil, err
	}

	metrics.ProgressNotesAdded.Inc()
	logger.Debug("Progress note appended",
		zap.Int("note_id", created.ID),
		zap.String("student_email", created.StudentEmail))

	return created, nil
}

var _ ProgressService = (*ProgressServiceImpl)(nil)
