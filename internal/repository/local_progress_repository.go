package repository

import (
	"context"
	"sync"

	"github.com/mentorhub/mentorhub-api/internal/kvstore"
	"github.com/mentorhub/mentorhub-api/internal/models"
)

// LocalProgressRepository implements ProgressRepository on the key/value
// store. All students' notes share the "progress" key; entries are
// append-only and never rewritten.
type LocalProgressRepository struct {
	mu    sync.RWMutex
	store *kvstore.Store
}

// NewLocalProgressRepository creates a progress repository over the local store
func NewLocalProgressRepository(store *kvstore.Store) *LocalProgressRepository {
	return &LocalProgressRepository{store: store}
}

func (r *LocalProgressRepository) load() []models.ProgressNote {
	notes := []models.ProgressNote{}
	r.store.Get(kvstore.KeyProgress, &notes)
	return notes
}

// ListByEmail returns a student's notes in insertion order
func (r *LocalProgressRepository) ListByEmail(ctx context.Context, studentEmail string) ([]*models.ProgressNote, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*models.ProgressNote, 0)
	for _, n := range r.load() {
		if n.StudentEmail == studentEmail {
			note := n
			result = append(result, &note)
		}
	}

	return result, nil
}

// Append adds a note to the end of the log
func (r *LocalProgressRepository) Append(ctx context.Context, note *models.ProgressNote) (*models.ProgressNote, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	notes := r.load()

	nextID := 1
	for _, n := range notes {
		if n.ID >= nextID {
			nextID = n.ID + 1
		}
	}

	created := *note
	created.ID = nextID
	notes = append(notes, created)

	if err := r.store.Set(kvstore.KeyProgress, notes); err != nil {
		return nil, err
	}

	return &created, nil
}

var _ ProgressRepository = (*LocalProgressRepository)(nil)
