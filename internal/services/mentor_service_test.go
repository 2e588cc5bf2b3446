package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/services"
	apperrors "github.com/mentorhub/mentorhub-api/pkg/errors"
)

func TestMentorService_List(t *testing.T) {
	mockRepo := new(MockMentorRepository)
	service := services.NewMentorService(mockRepo)
	ctx := context.Background()

	expected := []*models.Mentor{
		{ID: 2, Name: "Rakesh"},
		{ID: 1, Name: "Sai"},
	}
	mockRepo.On("GetAll", ctx).Return(expected, nil).Once()

	mentors, err := service.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, expected, mentors)
	mockRepo.AssertExpectations(t)
}

func TestMentorService_Create(t *testing.T) {
	mockRepo := new(MockMentorRepository)
	service := services.NewMentorService(mockRepo)
	ctx := context.Background()

	mockRepo.On("GetAll", ctx).Return([]*models.Mentor{}, nil).Once()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*models.Mentor")).
		Return(&models.Mentor{ID: 1, Name: "Sai", Email: "sai@example.com"}, nil).Once()

	mentor, err := service.Create(ctx, &models.CreateMentorRequest{
		Name: "Sai", Email: "SAI@Example.com", Expertise: "Web Development",
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, mentor.ID)

	// The stored record carries the normalized email.
	stored := mockRepo.Calls[1].Arguments.Get(1).(*models.Mentor)
	assert.Equal(t, "sai@example.com", stored.Email)
	mockRepo.AssertExpectations(t)
}

func TestMentorService_Create_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockMentorRepository)
	service := services.NewMentorService(mockRepo)
	ctx := context.Background()

	existing := []*models.Mentor{{ID: 1, Name: "Sai", Email: "sai@example.com"}}
	mockRepo.On("GetAll", ctx).Return(existing, nil).Once()

	mentor, err := service.Create(ctx, &models.CreateMentorRequest{
		Name: "Another Sai", Email: "Sai@Example.COM", Expertise: "Go",
	})
	assert.Nil(t, mentor)
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMentorService_Update_KeepsOwnEmail(t *testing.T) {
	mockRepo := new(MockMentorRepository)
	service := services.NewMentorService(mockRepo)
	ctx := context.Background()

	existing := []*models.Mentor{{ID: 1, Name: "Sai", Email: "sai@example.com"}}
	updated := &models.Mentor{ID: 1, Name: "Sai Kumar", Email: "sai@example.com"}

	mockRepo.On("GetAll", ctx).Return(existing, nil).Once()
	mockRepo.On("Update", ctx, 1, mock.AnythingOfType("*models.Mentor")).Return(updated, nil).Once()

	// Updating a mentor with their current email is not a conflict.
	mentor, err := service.Update(ctx, 1, &models.UpdateMentorRequest{
		Name: "Sai Kumar", Email: "sai@example.com", Expertise: "Web Development",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Sai Kumar", mentor.Name)
	mockRepo.AssertExpectations(t)
}

func TestMentorService_Delete_NotFound(t *testing.T) {
	mockRepo := new(MockMentorRepository)
	service := services.NewMentorService(mockRepo)
	ctx := context.Background()

	mockRepo.On("Delete", ctx, 999).Return(apperrors.NotFoundError("mentor")).Once()

	err := service.Delete(ctx, 999)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
	mockRepo.AssertExpectations(t)
}
