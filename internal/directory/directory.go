package directory

import (
	"sync"
	"time"

	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

// UserDirectory is the in-memory account directory. It is constructed at the
// application root and injected into the auth service; there is no package
// level singleton. The directory is reseeded from the fixed demo set on every
// start and is not a durable user store.
type UserDirectory struct {
	mu     sync.RWMutex
	byMail map[string]*models.User
	nextID int
}

// New creates an empty directory.
func New() *UserDirectory {
	return &UserDirectory{
		byMail: make(map[string]*models.User),
		nextID: 1,
	}
}

// NewSeeded creates a directory preloaded with the demo accounts.
func NewSeeded() *UserDirectory {
	d := New()
	now := time.Now().UTC()

	seed := []models.User{
		{Name: "John Student", Email: "student1@example.com", Password: "Student123!", Phone: "+1-555-1001",
			Profile: models.StudentProfile{Interests: "Web Development"}},
		{Name: "Sarah Student", Email: "student2@example.com", Password: "Student123!", Phone: "+1-555-1002",
			Profile: models.StudentProfile{Interests: "Data Science"}},
		{Name: "Sai", Email: "mentor1@example.com", Password: "Mentor123!", Phone: "+1-555-2001",
			Profile: models.MentorProfile{Expertise: "React, Node.js"}},
		{Name: "Rakesh", Email: "mentor2@example.com", Password: "Mentor123!", Phone: "+1-555-2002",
			Profile: models.MentorProfile{Expertise: "Python, Machine Learning"}},
		{Name: "Admin", Email: "admin@example.com", Password: "Admin123!", Phone: "+1-555-9000",
			Profile: models.AdminProfile{}},
	}

	for i := range seed {
		u := seed[i]
		u.CreatedAt = now
		// Seed inserts cannot collide, error ignored.
		_ = d.Insert(&u) //nolint:errcheck
	}

	return d
}

// Lookup finds a user by email. The email is normalized before the lookup.
func (d *UserDirectory) Lookup(email string) (*models.User, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.byMail[models.NormalizeEmail(email)]
	if !ok {
		return nil, false
	}

	// Copy so callers can't mutate directory state in place.
	copied := *u
	return &copied, true
}

// Insert adds a user keyed by normalized email, assigning the next id.
// Returns ErrConflict when the email is already registered.
func (d *UserDirectory) Insert(u *models.User) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := models.NormalizeEmail(u.Email)
	if _, exists := d.byMail[key]; exists {
		return apperrors.ConflictError("email already registered")
	}

	u.Email = key
	u.ID = d.nextID
	d.nextID++

	stored := *u
	d.byMail[key] = &stored

	return nil
}

// Count returns the number of directory entries.
func (d *UserDirectory) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.byMail)
}
