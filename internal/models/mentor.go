package models

import (
	"time"
)

// Mentor represents a mentor in the directory
type Mentor struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Expertise string    `json:"expertise"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateMentorRequest is the payload for creating a mentor
type CreateMentorRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Expertise string `json:"expertise" binding:"required,max=200"`
	Phone     string `json:"phone" binding:"max=30"`
}

// UpdateMentorRequest is the payload for updating a mentor. All mutable
// fields are replaced, matching PUT semantics.
type UpdateMentorRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Expertise string `json:"expertise" binding:"required,max=200"`
	Phone     string `json:"phone" binding:"max=30"`
}

// MentorsResponse is the response for listing mentors
type MentorsResponse struct {
	Mentors []Mentor `json:"mentors"`
	Total   int      `json:"total"`
}
