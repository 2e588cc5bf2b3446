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
)

// PostgresBookingRepository implements BookingRepository on a pgx pool
type PostgresBookingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBookingRepository creates a new PostgreSQL booking repository
func NewPostgresBookingRepository(pool *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{pool: pool}
}

const bookingColumns = `id, mentor_id, mentor_name, student_email, student_name, date, time, status, created_at`

func scanBooking(row pgx.Row) (*models.Booking, error) {
	var b models.Booking

	err := row.Scan(&b.ID, &b.MentorID, &b.MentorName, &b.StudentEmail,
		&b.StudentName, &b.Date, &b.Time, &b.Status, &b.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &b, nil
}

// GetAll fetches all bookings, newest-first
func (r *PostgresBookingRepository) GetAll(ctx context.Context) ([]*models.Booking, error) {
	start := time.Now()
	operation := "getAllBookings"

	rows, err := r.pool.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM bookings ORDER BY id DESC`, bookingColumns))
	if err != nil {
		recordPostgresMetrics(operation, "error", start)
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer rows.Close()

	bookings := make([]*models.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			recordPostgresMetrics(operation, "error", start)
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		recordPostgresMetrics(operation, "error", start)
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	recordPostgresMetrics(operation, "success", start)
	return bookings, nil
}

// GetByID fetches a single booking
func (r *PostgresBookingRepository) GetByID(ctx context.Context, id int) (*models.Booking, error) {
	start := time.Now()
	operation := "getBookingByID"

	booking, err := scanBooking(r.pool.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns), id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			recordPostgresMetrics(operation, "not_found", start)
			return nil, apperrors.NotFoundError("booking")
		}
		recordPostgresMetrics(operation, "error", start)
		return nil, fmt.Errorf("failed to query booking: %w", err)
	}

	recordPostgresMetrics(operation, "success", start)
	return booking, nil
}

// Create inserts a booking and returns the stored row
func (r *PostgresBookingRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	start := time.Now()
	operation := "createBooking"

	created, err := scanBooking(r.pool.QueryRow(ctx,
		fmt.Sprintf(`INSERT INTO bookings
			(mentor_id, mentor_name, student_email, student_name, date, time, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING %s`, bookingColumns),
		booking.MentorID, booking.MentorName, booking.StudentEmail, booking.StudentName,
		booking.Date, booking.Time, booking.Status, booking.CreatedAt))
	if err != nil {
		recordPostgresMetrics(operation, "error", start)
		return nil, fmt.Errorf("failed to insert booking: %w", err)
	}

	recordPostgresMetrics(operation, "success", start)
	logger.Info("Booking created",
		zap.Int("booking_id", created.ID),
		zap.Int("mentor_id", created.MentorID),
		zap.String("student_email", created.StudentEmail))

	return created, nil
}

// UpdateStatus sets the booking status. Workflow legality is the service's
// concern; this is a plain last-write-wins update with no row locking.
func (r *PostgresBookingRepository) UpdateStatus(ctx context.Context, id int, status models.BookingStatus) (*models.Booking, error) {
	start := time.Now()
	operation := "updateBookingStatus"

	updated, err := scanBooking(r.pool.QueryRow(ctx,
		fmt.Sprintf(`UPDATE bookings SET status = $1 WHERE id = $2 RETURNING %s`, bookingColumns),
		status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			recordPostgresMetrics(operation, "not_found", start)
			return nil, apperrors.NotFoundError("booking")
		}
		recordPostgresMetrics(operation, "error", start)
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	recordPostgresMetrics(operation, "success", start)
	return updated, nil
}

// Delete removes a booking. Deleting an unknown id is a not-found error.
func (r *PostgresBookingRepository) Delete(ctx context.Context, id int) error {
	start := time.Now()
	operation := "deleteBooking"

	tag, err := r.pool.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		recordPostgresMetrics(operation, "error", start)
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if tag.RowsAffected() == 0 {
		recordPostgresMetrics(operation, "not_found", start)
		return apperrors.NotFoundError("booking")
	}

	recordPostgresMetrics(operation, "success", start)
	logger.Info("Booking deleted", zap.Int("booking_id", id))

	return nil
}

var _ BookingRepository = (*PostgresBookingRepository)(nil)
