package models

import (
	"strings"
	"time"
)

// Role is a user's role in the platform
type Role string

const (
	RoleStudent Role = "student"
	RoleMentor  Role = "mentor"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleMentor || r == RoleAdmin
}

// Profile carries the role-specific part of a user record. Exactly one
// concrete profile type exists per role.
type Profile interface {
	Role() Role
}

// StudentProfile holds the student-only fields
type StudentProfile struct {
	Interests string
}

func (StudentProfile) Role() Role { return RoleStudent }

// MentorProfile holds the mentor-only fields
type MentorProfile struct {
	Expertise string
}

func (MentorProfile) Role() Role { return RoleMentor }

// AdminProfile has no role-specific fields
type AdminProfile struct{}

func (AdminProfile) Role() Role { return RoleAdmin }

// User is a directory entry. The password is stored in plaintext: this is a
// seeded demo directory, not a durable user store.
type User struct {
	ID        int
	Name      string
	Email     string
	Password  string
	Phone     string
	Profile   Profile
	CreatedAt time.Time
}

// Role returns the role of the user's profile, or empty when unset.
func (u *User) Role() Role {
	if u.Profile == nil {
		return ""
	}
	return u.Profile.Role()
}

// Session is the view of a user handed to clients and persisted across
// reloads. It never carries the password.
type Session struct {
	UserID    int    `json:"userId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	Interests string `json:"interests,omitempty"`
	Expertise string `json:"expertise,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ToSession builds the client-facing session view from a directory entry.
func (u *User) ToSession() Session {
	s := Session{
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role(),
		Phone:  u.Phone,
	}

	switch p := u.Profile.(type) {
	case StudentProfile:
		s.Interests = p.Interests
	case MentorProfile:
		s.Expertise = p.Expertise
	}

	return s
}

// NormalizeEmail lowercases and trims an email for directory lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// LoginRequest is the payload for logging in
type LoginRequest struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"rememberMe"`
}

// RegisterRequest is the payload for creating an account
type RegisterRequest struct {
	Name      string `json:"name" binding:"required,min=2,max=100"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Role      Role   `json:"role" binding:"required,oneof=student mentor"`
	Interests string `json:"interests" binding:"max=200"`
	Expertise string `json:"expertise" binding:"max=200"`
	Phone     string `json:"phone" binding:"max=30"`
}

// BuildProfile assembles the tagged profile for the requested role.
func (r *RegisterRequest) BuildProfile() Profile {
	switch r.Role {
	case RoleMentor:
		return MentorProfile{Expertise: r.Expertise}
	case RoleAdmin:
		return AdminProfile{}
	default:
		return StudentProfile{Interests: r.Interests}
	}
}
