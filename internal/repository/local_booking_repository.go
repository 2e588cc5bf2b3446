package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/mentorhub/mentorhub-api/internal/kvstore"
	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

// LocalBookingRepository implements BookingRepository on the key/value store.
// The full ledger lives under the "bookings" key and is written through on
// every mutation.
type LocalBookingRepository struct {
	mu    sync.RWMutex
	store *kvstore.Store
}

// NewLocalBookingRepository creates a booking repository over the local store
func NewLocalBookingRepository(store *kvstore.Store) *LocalBookingRepository {
	return &LocalBookingRepository{store: store}
}

func (r *LocalBookingRepository) load() []models.Booking {
	bookings := []models.Booking{}
	r.store.Get(kvstore.KeyBookings, &bookings)
	return bookings
}

func (r *LocalBookingRepository) save(bookings []models.Booking) error {
	return r.store.Set(kvstore.KeyBookings, bookings)
}

// GetAll returns all bookings, newest-first
func (r *LocalBookingRepository) GetAll(ctx context.Context) ([]*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := r.load()
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID > bookings[j].ID })

	result := make([]*models.Booking, 0, len(bookings))
	for i := range bookings {
		b := bookings[i]
		result = append(result, &b)
	}

	return result, nil
}

// GetByID returns a single booking
func (r *LocalBookingRepository) GetByID(ctx context.Context, id int) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.load() {
		if b.ID == id {
			booking := b
			return &booking, nil
		}
	}

	return nil, apperrors.NotFoundError("booking")
}

// Create appends a booking with a freshly assigned id (max existing id + 1)
func (r *LocalBookingRepository) Create(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings := r.load()

	nextID := 1
	for _, b := range bookings {
		if b.ID >= nextID {
			nextID = b.ID + 1
		}
	}

	created := *booking
	created.ID = nextID
	bookings = append(bookings, created)

	if err := r.save(bookings); err != nil {
		return nil, err
	}

	return &created, nil
}

// UpdateStatus sets the booking status in place and persists the ledger
func (r *LocalBookingRepository) UpdateStatus(ctx context.Context, id int, status models.BookingStatus) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings := r.load()
	for i := range bookings {
		if bookings[i].ID == id {
			bookings[i].Status = status

			if err := r.save(bookings); err != nil {
				return nil, err
			}

			updated := bookings[i]
			return &updated, nil
		}
	}

	return nil, apperrors.NotFoundError("booking")
}

// Delete removes a booking
func (r *LocalBookingRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings := r.load()
	for i := range bookings {
		if bookings[i].ID == id {
			bookings = append(bookings[:i], bookings[i+1:]...)
			return r.save(bookings)
		}
	}

	return apperrors.NotFoundError("booking")
}

var _ BookingRepository = (*LocalBookingRepository)(nil)
