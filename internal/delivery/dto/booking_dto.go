package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	DeviceType       string    `json:"device_type" validate:"required,max=100"`
	DeviceModel      string    `json:"device_model" validate:"max=100"`
	ServiceType      string    `json:"service_type" validate:"required,max=100"`
	IssueDescription string    `json:"issue_description" validate:"required"`
	ContactPhone     string    `json:"contact_phone" validate:"required,max=20"`
	Address          string    `json:"address" validate:"required"`
	PreferredAt      time.Time `json:"preferred_at" validate:"required"`
}

type AssignEngineerRequest struct {
	EngineerID uuid.UUID `json:"engineer_id" validate:"required"`
}

type HoldWorkRequest struct {
	HoldReason string `json:"hold_reason" validate:"required"`
}

type UnableToCompleteRequest struct {
	UnableReason string `json:"unable_reason"`
}

type CancelBookingRequest struct {
	CancelReason string `json:"cancel_reason" validate:"required"`
}

type CompletionReportRequest struct {
	WorkPerformed string   `json:"work_performed" validate:"required"`
	PartsUsed     string   `json:"parts_used"`
	TimeSpentMin  int      `json:"time_spent_min" validate:"gte=0"`
	Notes         string   `json:"notes"`
	ProofImages   []string `json:"proof_images"`
}

type CompleteWorkRequest struct {
	Report *CompletionReportRequest `json:"report"`
}

// Response DTOs

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	CustomerID       uuid.UUID `json:"customer_id"`
	CustomerName     string    `json:"customer_name,omitempty"`
	DeviceType       string    `json:"device_type"`
	DeviceModel      string    `json:"device_model,omitempty"`
	ServiceType      string    `json:"service_type"`
	IssueDescription string    `json:"issue_description"`
	ContactPhone     string    `json:"contact_phone"`
	Address          string    `json:"address"`
	PreferredAt      time.Time `json:"preferred_at"`
	Status           string    `json:"status"`
	AssignedEngineer string    `json:"assigned_engineer,omitempty"`
	HoldReason       string    `json:"hold_reason,omitempty"`
	UnableReason     string    `json:"unable_reason,omitempty"`
	CancelReason     string    `json:"cancel_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

type HistoryEntryResponse struct {
	ID             int64     `json:"id"`
	BookingID      uuid.UUID `json:"booking_id"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	ActorType      string    `json:"actor_type"`
	ActorName      string    `json:"actor_name"`
	Remarks        string    `json:"remarks,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type HistoryListResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
	Total   int                    `json:"total"`
}

type CompletionReportResponse struct {
	ID            uuid.UUID  `json:"id"`
	BookingID     uuid.UUID  `json:"booking_id"`
	EngineerID    uuid.UUID  `json:"engineer_id"`
	WorkPerformed string     `json:"work_performed"`
	PartsUsed     string     `json:"parts_used,omitempty"`
	TimeSpentMin  int        `json:"time_spent_min,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	ProofImages   []string   `json:"proof_images"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

type EngineerResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone,omitempty"`
}

type EngineerListResponse struct {
	Engineers []EngineerResponse `json:"engineers"`
	Total     int                `json:"total"`
}
