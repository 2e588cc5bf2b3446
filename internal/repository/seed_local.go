package repository

import (
	"time"

	"go.uber.org/zap"

	"github.com/mentorhub/mentorhub-api/internal/kvstore"
	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/pkg/logger"
)

// SeedLocalData loads the demo mentors and bookings into the local store when
// it is empty. An already populated store (for example restored from a
// snapshot) is left untouched so user-created records survive restarts.
func SeedLocalData(store *kvstore.Store) error {
	var existing []models.Mentor
	if store.Get(kvstore.KeyMentors, &existing) && len(existing) > 0 {
		logger.Debug("Local store already populated, skipping demo seed",
			zap.Int("mentors", len(existing)))
		return nil
	}

	now := time.Now().UTC()

	mentors := []models.Mentor{
		{ID: 1, Name: "Sai", Email: "sai@example.com", Expertise: "Web Development",
			Phone: "+1-555-0101", CreatedAt: now},
		{ID: 2, Name: "Rakesh", Email: "rakesh@example.com", Expertise: "Machine Learning",
			Phone: "+1-555-0102", CreatedAt: now},
		{ID: 3, Name: "Ujwal", Email: "ujwal@example.com", Expertise: "Software Engineering",
			Phone: "+1-555-0103", CreatedAt: now},
	}

	bookings := []models.Booking{
		{ID: 1, MentorID: 1, MentorName: "Sai", StudentEmail: "student1@example.com",
			StudentName: "John Student", Date: "2026-09-05", Time: "10:00",
			Status: models.StatusConfirmed, CreatedAt: now},
		{ID: 2, MentorID: 3, MentorName: "Ujwal", StudentEmail: "student1@example.com",
			StudentName: "John Student", Date: "2026-09-12", Time: "15:30",
			Status: models.StatusPending, CreatedAt: now},
	}

	if err := store.Set(kvstore.KeyMentors, mentors); err != nil {
		return err
	}
	if err := store.Set(kvstore.KeyBookings, bookings); err != nil {
		return err
	}

	logger.Info("Local store seeded with demo data",
		zap.Int("mentors", len(mentors)),
		zap.Int("bookings", len(bookings)))

	return nil
}
