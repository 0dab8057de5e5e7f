package entity

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the workflow status of a repair booking
type BookingStatus string

const (
	BookingStatusPending          BookingStatus = "pending"
	BookingStatusConfirmed        BookingStatus = "confirmed"
	BookingStatusAssigned         BookingStatus = "assigned"
	BookingStatusAccepted         BookingStatus = "accepted"
	BookingStatusInProgress       BookingStatus = "in_progress"
	BookingStatusHoldOnWork       BookingStatus = "hold_on_work"
	BookingStatusCompleted        BookingStatus = "completed"
	BookingStatusCancelled        BookingStatus = "cancelled"
	BookingStatusRejected         BookingStatus = "rejected"
	BookingStatusUnableToComplete BookingStatus = "unable_to_complete"
)

// AllBookingStatuses enumerates every valid status value.
var AllBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusAssigned,
	BookingStatusAccepted,
	BookingStatusInProgress,
	BookingStatusHoldOnWork,
	BookingStatusCompleted,
	BookingStatusCancelled,
	BookingStatusRejected,
	BookingStatusUnableToComplete,
}

// IsValidBookingStatus reports whether s is one of the fixed status values.
func IsValidBookingStatus(s BookingStatus) bool {
	for _, known := range AllBookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Booking represents a customer repair request and its workflow state
type Booking struct {
	ID               uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerID       uuid.UUID     `gorm:"type:uuid;not null;index" json:"customer_id"`
	DeviceType       string        `gorm:"type:varchar(100);not null" json:"device_type"`
	DeviceModel      string        `gorm:"type:varchar(100)" json:"device_model,omitempty"`
	ServiceType      string        `gorm:"type:varchar(100);not null" json:"service_type"`
	IssueDescription string        `gorm:"type:text;not null" json:"issue_description"`
	ContactPhone     string        `gorm:"type:varchar(20);not null" json:"contact_phone"`
	Address          string        `gorm:"type:text;not null" json:"address"`
	PreferredAt      time.Time     `gorm:"not null" json:"preferred_at"`
	Status           BookingStatus `gorm:"type:varchar(30);not null;default:'pending';index" json:"status"`
	AssignedEngineer string        `gorm:"type:varchar(255)" json:"assigned_engineer,omitempty"`
	HoldReason       string        `gorm:"type:text" json:"hold_reason,omitempty"`
	UnableReason     string        `gorm:"type:text" json:"unable_reason,omitempty"`
	CancelReason     string        `gorm:"type:text" json:"cancel_reason,omitempty"`
	CreatedAt        time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Customer User `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsTerminal reports whether the booking can never transition again.
// rejected and unable_to_complete are not terminal: a released booking
// may be re-assigned to a different engineer.
func (b *Booking) IsTerminal() bool {
	return b.Status == BookingStatusCompleted || b.Status == BookingStatusCancelled
}

// IsCompleted checks if booking has been completed
func (b *Booking) IsCompleted() bool {
	return b.Status == BookingStatusCompleted
}

// IsCancelled checks if booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == BookingStatusCancelled
}

// HasEngineer checks if an engineer is currently assigned
func (b *Booking) HasEngineer() bool {
	return b.AssignedEngineer != ""
}

// StatusRequiresEngineer reports whether a booking in status s must carry an
// assigned engineer. The invariant is: engineer set iff status is one of
// assigned, accepted, in_progress, hold_on_work, completed.
func StatusRequiresEngineer(s BookingStatus) bool {
	switch s {
	case BookingStatusAssigned, BookingStatusAccepted, BookingStatusInProgress,
		BookingStatusHoldOnWork, BookingStatusCompleted:
		return true
	}
	return false
}

// CheckInvariants verifies the booking-level invariants: engineer assignment
// matches the status, and at most one reason field is set, only for the
// status it belongs to.
func (b *Booking) CheckInvariants() error {
	if StatusRequiresEngineer(b.Status) != b.HasEngineer() {
		return ErrEngineerAssignmentMismatch
	}

	reasons := 0
	if b.HoldReason != "" {
		if b.Status != BookingStatusHoldOnWork {
			return ErrReasonStatusMismatch
		}
		reasons++
	}
	if b.UnableReason != "" {
		if b.Status != BookingStatusUnableToComplete {
			return ErrReasonStatusMismatch
		}
		reasons++
	}
	if b.CancelReason != "" {
		if b.Status != BookingStatusCancelled {
			return ErrReasonStatusMismatch
		}
		reasons++
	}
	if reasons > 1 {
		return ErrReasonStatusMismatch
	}
	return nil
}
