package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// PostgresMentorRepository implements MentorRepository on a pgx pool
type PostgresMentorRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresMentorRepository creates a new PostgreSQL mentor repository
func NewPostgresMentorRepository(pool *pgxpool.Pool) *PostgresMentorRepository {
	return &PostgresMentorRepository{pool: pool}
}

const mentorColumns = `id, name, email, expertise, phone, created_at`

func scanMentor(row pgx.Row) (*models.Mentor, error) {
	var m models.Mentor
	var expertise, phone *string

	err := row.Scan(&m.ID, &m.Name, &m.Email, &expertise, &phone, &m.CreatedAt)
	if err != nil {
		return nil, err
	}

	if expertise != nil {
		m.Expertise = *expertise
	}
	if phone != nil {
		m.Phone = *phone
	}

	return &m, nil
}

// GetAll fetches all mentors, newest-first
func (r *PostgresMentorRepository) GetAll(ctx context.Context) ([]*models.Mentor, error) {
	start := time.Now()
	operation := "getAllMentors"

	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM mentors ORDER BY id DESC`, mentorColumns))
	if err != nil {
		recordPostgresMetrics(operation, "error", start)
		return nil, fmt.Errorf("failed to query mentors: %w", err)
	}
	defer rows.Close()

	mentors := make([]*models.Mentor, 0)
	for rows.Next() {
		mentor, err := scanMentor(rows)
		if err != nil {
			recordPostgresMetrics(operation, "error", start)
			return nil, fmt.Errorf("failed to scan mentor row: %w", err)
		}
		mentors = append(mentors, mentor)
	}

	if err := rows.Err(); err != nil {
		recordPostgresMetrics(operation, "error", start)
		return nil, fmt.Errorf("error iterating mentor rows: %w", err)
	}

	recordPostgresMetrics(operation, "success", start)
	return mentors, nil
}

// GetByID fetches a single mentor
func (r *PostgresMentorRepository) GetByID(ctx context.Context, id int) (*models.Mentor, error) {
	start := time.Now()
	operation := "getMentorByID"

	mentor, err := scanMentor(r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM mentors WHERE id = $1`, mentorColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			recordPostgresMetrics(operation, "not_found", start)
			return nil, apperrors.NotFoundError("mentor")
		}
		recordPostgresMetrics(operation, "error", start)
		return nil, fmt.Errorf("failed to query mentor: %w", err)
	}

	recordPostgresMetrics(operation, "success", start)
	return mentor, nil
}

// Create inserts a mentor and returns the stored row
func (r *PostgresMentorRepository) Create(ctx context.Context, mentor *models.Mentor) (*models.Mentor, error) {
	start := time.Now()
	operation := "createMentor"

	created, err := scanMentor(r.pool.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO mentors (name, email, expertise, phone, created_at)
			VALUES ($1, $2, $3, $4, $5) RETURNING %s`, mentorColumns),
		mentor.Name, mentor.Email, mentor.Expertise, mentor.Phone, mentor.CreatedAt))
	if err != nil {
		recordPostgresMetrics(operation, "error", start)
		return nil, fmt.Errorf("failed to insert mentor: %w", err)
	}

	recordPostgresMetrics(operation, "success", start)
	logger.Info("Mentor created",
		zap.Int("mentor_id", created.ID),
		zap.String("name", created.Name))

	return created, nil
}

// Update replaces the mutable fields of a mentor
func (r *PostgresMentorRepository) Update(ctx context.Context, id int, mentor *models.Mentor) (*models.Mentor, error) {
	start := time.Now()
	operation := "updateMentor"

	updated, err := scanMentor(r.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE mentors SET name = $1, email = $2, expertise = $3, phone = $4
			WHERE id = $5 RETURNING %s`, mentorColumns),
		mentor.Name, mentor.Email, mentor.Expertise, mentor.Phone, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			recordPostgresMetrics(operation, "not_found", start)
			return nil, apperrors.NotFoundError("mentor")
		}
		recordPostgresMetrics(operation, "error", start)
		return nil, fmt.Errorf("failed to update mentor: %w", err)
	}

	recordPostgresMetrics(operation, "success", start)
	return updated, nil
}

// Delete removes a mentor. Deleting an unknown id is a not-found error.
func (r *PostgresMentorRepository) Delete(ctx context.Context, id int) error {
	start := time.Now()
	operation := "deleteMentor"

	tag, err := r.pool.Exec(ctx, `DELETE FROM mentors WHERE id = $1`, id)
	if err != nil {
		recordPostgresMetrics(operation, "error", start)
		return fmt.Errorf("failed to delete mentor: %w", err)
	}

	if tag.RowsAffected() == 0 {
		recordPostgresMetrics(operation, "not_found", start)
		return apperrors.NotFoundError("mentor")
	}

	recordPostgresMetrics(operation, "success", start)
	logger.Info("Mentor deleted", zap.Int("mentor_id", id))

	return nil
}

// recordPostgresMetrics records duration and count for a postgres operation
func recordPostgresMetrics(operation, status string, start time.Time) {
	duration := metrics.MeasureDuration(start)
	metrics.StoreOperationDuration.WithLabelValues("postgres", operation, status).Observe(duration)
	metrics.StoreOperationTotal.WithLabelValues("postgres", operation, status).Inc()
	if status == "error" {
		logger.LogStoreCall("postgres", operation, status, duration)
	}
}

var _ MentorRepository = (*PostgresMentorRepository)(nil)
