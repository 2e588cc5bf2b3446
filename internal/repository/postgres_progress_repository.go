package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

// PostgresProgressRepository implements ProgressRepository on a pgx pool
type PostgresProgressRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProgressRepository creates a new PostgreSQL progress repository
func NewPostgresProgressRepository(pool *pgxpool.Pool) *PostgresProgressRepository {
	return &PostgresProgressRepository{pool: pool}
}

// ListByEmail fetches a student's progress notes in insertion order
func (r *PostgresProgressRepository) ListByEmail(ctx context.Context, studentEmail string) ([]*models.ProgressNote, error) {
	start := time.Now()
	operation := "listProgressNotes"

	rows, err := r.pool.Query(ctx,
		`SELECT id, student_email, date, note FROM progress_notes
		 WHERE student_email = $1 ORDER BY id ASC`, studentEmail)
	if err != nil {
		recordPostgresMetrics(operation, "error", start)
		return nil, fmt.Errorf("failed to query progress notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*models.ProgressNote, 0)
	for rows.Next() {
		var n models.ProgressNote
		if err := rows.Scan(&n.ID, &n.StudentEmail, &n.Date, &n.Note); err != nil {
			recordPostgresMetrics(operation, "error", start)
			return nil, fmt.Errorf("failed to scan progress note row: %w", err)
		}
		notes = append(notes, &n)
	}

	if err := rows.Err(); err != nil {
		recordPostgresMetrics(operation, "error", start)
		return nil, fmt.Errorf("error iterating progress note rows: %w", err)
	}

	recordPostgresMetrics(operation, "success", start)
	return notes, nil
}

// Append inserts a progress note. The log is append-only: there is no update
// or delete path.
func (r *PostgresProgressRepository) Append(ctx context.Context, note *models.ProgressNote) (*models.ProgressNote, error) {
	start := time.Now()
	operation := "appendProgressNote"

	var stored models.ProgressNote
	err := r.pool.QueryRow(ctx,
		`INSERT INTO progress_notes (student_email, date, note)
		 VALUES ($1, $2, $3) RETURNING id, student_email, date, note`,
		note.StudentEmail, note.Date, note.Note).
		Scan(&stored.ID, &stored.StudentEmail, &stored.Date, &stored.Note)
	if err != nil {
		recordPostgresMetrics(operation, "error", start)
		return nil, fmt.Errorf("failed to insert progress note: %w", err)
	}

	recordPostgresMetrics(operation, "success", start)
	return &stored, nil
}

var _ ProgressRepository = (*PostgresProgressRepository)(nil)
