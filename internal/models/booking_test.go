package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mentorhub/mentorhub-api/internal/models"
)

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, models.StatusPending.IsValid())
	assert.True(t, models.StatusConfirmed.IsValid())
	assert.True(t, models.StatusRejected.IsValid())
	assert.False(t, models.BookingStatus("cancelled").IsValid())
	assert.False(t, models.BookingStatus("").IsValid())
}

func TestBookingStatus_IsTerminalStatus(t *testing.T) {
	assert.False(t, models.StatusPending.IsTerminalStatus())
	assert.True(t, models.StatusConfirmed.IsTerminalStatus())
	assert.True(t, models.StatusRejected.IsTerminalStatus())
}

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    models.BookingStatus
		to      models.BookingStatus
		allowed bool
	}{
		{"pending to confirmed", models.StatusPending, models.StatusConfirmed, true},
		{"pending to rejected", models.StatusPending, models.StatusRejected, true},
		{"pending to pending", models.StatusPending, models.StatusPending, false},
		{"confirmed is terminal", models.StatusConfirmed, models.StatusRejected, false},
		{"confirmed cannot reopen", models.StatusConfirmed, models.StatusPending, false},
		{"rejected is terminal", models.StatusRejected, models.StatusConfirmed, false},
		{"rejected cannot reopen", models.StatusRejected, models.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestUser_ToSession(t *testing.T) {
	student := &models.User{
		ID:       1,
		Name:     "John Student",
		Email:    "student1@example.com",
		Password: "Student123!",
		Profile:  models.StudentProfile{Interests: "Web Development"},
	}

	session := student.ToSession()
	assert.Equal(t, models.RoleStudent, session.Role)
	assert.Equal(t, "Web Development", session.Interests)
	assert.Empty(t, session.Expertise)

	mentor := &models.User{
		ID:      2,
		Name:    "Sai",
		Email:   "mentor1@example.com",
		Profile: models.MentorProfile{Expertise: "React, Node.js"},
	}

	session = mentor.ToSession()
	assert.Equal(t, models.RoleMentor, session.Role)
	assert.Equal(t, "React, Node.js", session.Expertise)
	assert.Empty(t, session.Interests)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "bad@example.com", models.NormalizeEmail(" BAD@EXAMPLE.COM "))
	assert.Equal(t, "a@b.co", models.NormalizeEmail("a@b.co"))
}
