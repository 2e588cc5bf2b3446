package models

import (
	"time"
)

// BookingStatus represents the status of a booking request
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
)

// IsValid reports whether s is one of the three known statuses.
func (s BookingStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusRejected
}

// IsTerminalStatus returns true if the status is terminal (no further transitions allowed)
func (s BookingStatus) IsTerminalStatus() bool {
	return s == StatusConfirmed || s == StatusRejected
}

// CanTransitionTo checks if a status transition is valid. Only a pending
// booking may move, and only to confirmed or rejected.
func (s BookingStatus) CanTransitionTo(newStatus BookingStatus) bool {
	if s.IsTerminalStatus() {
		return false
	}

	switch s {
	case StatusPending:
		return newStatus == StatusConfirmed || newStatus == StatusRejected
	default:
		return false
	}
}

// Booking represents a mentoring session request. MentorName is a denormalized
// snapshot taken at creation time; it does not follow later mentor renames.
type Booking struct {
	ID           int           `json:"id"`
	MentorID     int           `json:"mentorId"`
	MentorName   string        `json:"mentorName"`
	StudentEmail string        `json:"studentEmail"`
	StudentName  string        `json:"studentName"`
	Date         string        `json:"date"`
	Time         string        `json:"time"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// CreateBookingRequest is the payload for booking a session. Status is never
// accepted from the client; new bookings are always pending.
type CreateBookingRequest struct {
	MentorID int    `json:"mentorId" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Time     string `json:"time" binding:"required"`
}

// UpdateBookingStatusRequest is the payload for accepting or declining a booking
type UpdateBookingStatusRequest struct {
	Status BookingStatus `json:"status" binding:"required,oneof=confirmed rejected"`
}

// BookingsResponse is the response for listing bookings
type BookingsResponse struct {
	Bookings []Booking `json:"bookings"`
	Total    int       `json:"total"`
}
