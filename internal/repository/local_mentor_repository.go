package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/mentorhub/mentorhub-api/internal/kvstore"
	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

// LocalMentorRepository implements MentorRepository on the key/value store.
// The whole mentor list lives as one JSON document under the "mentors" key
// and is written through on every mutation, mirroring the localStorage
// variant of the original front-end. The mutex exists because gin serves
// requests concurrently; the browser original had a single event loop.
type LocalMentorRepository struct {
	mu    sync.RWMutex
	store *kvstore.Store
}

// NewLocalMentorRepository creates a mentor repository over the local store
func NewLocalMentorRepository(store *kvstore.Store) *LocalMentorRepository {
	return &LocalMentorRepository{store: store}
}

func (r *LocalMentorRepository) load() []models.Mentor {
	mentors := []models.Mentor{}
	r.store.Get(kvstore.KeyMentors, &mentors)
	return mentors
}

func (r *LocalMentorRepository) save(mentors []models.Mentor) error {
	return r.store.Set(kvstore.KeyMentors, mentors)
}

// GetAll returns all mentors, newest-first
func (r *LocalMentorRepository) GetAll(ctx context.Context) ([]*models.Mentor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	mentors := r.load()
	sort.Slice(mentors, func(i, j int) bool { return mentors[i].ID > mentors[j].ID })

	result := make([]*models.Mentor, 0, len(mentors))
	for i := range mentors {
		m := mentors[i]
		result = append(result, &m)
	}

	return result, nil
}

// GetByID returns a single mentor
func (r *LocalMentorRepository) GetByID(ctx context.Context, id int) (*models.Mentor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.load() {
		if m.ID == id {
			mentor := m
			return &mentor, nil
		}
	}

	return nil, apperrors.NotFoundError("mentor")
}

// Create appends a mentor with a freshly assigned id (max existing id + 1)
func (r *LocalMentorRepository) Create(ctx context.Context, mentor *models.Mentor) (*models.Mentor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mentors := r.load()

	nextID := 1
	for _, m := range mentors {
		if m.ID >= nextID {
			nextID = m.ID + 1
		}
	}

	created := *mentor
	created.ID = nextID
	mentors = append(mentors, created)

	if err := r.save(mentors); err != nil {
		return nil, err
	}

	return &created, nil
}

// Update replaces the mutable fields of a mentor
func (r *LocalMentorRepository) Update(ctx context.Context, id int, mentor *models.Mentor) (*models.Mentor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	mentors := r.load()
	for i := range mentors {
		if mentors[i].ID == id {
			mentors[i].Name = mentor.Name
			mentors[i].Email = mentor.Email
			mentors[i].Expertise = mentor.Expertise
			mentors[i].Phone = mentor.Phone

			if err := r.save(mentors); err != nil {
				return nil, err
			}

			updated := mentors[i]
			return &updated, nil
		}
	}

	return nil, apperrors.NotFoundError("mentor")
}

// Delete removes a mentor. Deleting an unknown id is a not-found error in
// this variant too, keeping both backends consistent.
func (r *LocalMentorRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	mentors := r.load()
	for i := range mentors {
		if mentors[i].ID == id {
			mentors = append(mentors[:i], mentors[i+1:]...)
			return r.save(mentors)
		}
	}

	return apperrors.NotFoundError("mentor")
}

var _ MentorRepository = (*LocalMentorRepository)(nil)
