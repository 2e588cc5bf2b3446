package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mentorhub/mentorhub-api/internal/directory"
	"github.com/mentorhub/mentorhub-api/internal/models"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

func TestNewSeeded(t *testing.T) {
	d := directory.NewSeeded()
	assert.Equal(t, 5, d.Count())

	admin, ok := d.Lookup("admin@example.com")
	require.True(t, ok)
	assert.Equal(t, models.RoleAdmin, admin.Role())
	assert.Equal(t, "Admin123!", admin.Password)

	mentor, ok := d.Lookup("mentor1@example.com")
	require.True(t, ok)
	assert.Equal(t, models.RoleMentor, mentor.Role())
	assert.Equal(t, "Sai", mentor.Name)
}

func TestLookup_NormalizesEmail(t *testing.T) {
	d := directory.NewSeeded()

	user, ok := d.Lookup("  STUDENT1@Example.COM ")
	require.True(t, ok)
	assert.Equal(t, "student1@example.com", user.Email)

	_, ok = d.Lookup("nobody@example.com")
	assert.False(t, ok)
}

func TestInsert(t *testing.T) {
	d := directory.New()

	u := &models.User{
		Name:     "New Student",
		Email:    "NEW@Example.com",
		Password: "Secret1!",
		Profile:  models.StudentProfile{Interests: "Go"},
	}
	require.NoError(t, d.Insert(u))
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "new@example.com", u.Email)

	// Duplicate emails conflict regardless of case.
	err := d.Insert(&models.User{Email: "new@EXAMPLE.com", Name: "Dup"})
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, 1, d.Count())
}

func TestLookup_ReturnsCopy(t *testing.T) {
	d := directory.NewSeeded()

	first, ok := d.Lookup("student1@example.com")
	require.True(t, ok)
	first.Name = "Mutated"

	second, ok := d.Lookup("student1@example.com")
	require.True(t, ok)
	assert.Equal(t, "John Student", second.Name)
}
