package entity

import (
	"time"

	"github.com/google/uuid"
)

// ActorType identifies who performed a transition
type ActorType string

const (
	ActorAdmin    ActorType = "admin"
	ActorEngineer ActorType = "engineer"
	ActorSystem   ActorType = "system"
)

// BookingHistory is an append-only audit record of one status transition.
// Rows are never updated or deleted.
type BookingHistory struct {
	ID             int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	BookingID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"booking_id"`
	PreviousStatus BookingStatus `gorm:"type:varchar(30);not null" json:"previous_status"`
	NewStatus      BookingStatus `gorm:"type:varchar(30);not null" json:"new_status"`
	ActorType      ActorType     `gorm:"type:varchar(20);not null" json:"actor_type"`
	ActorName      string        `gorm:"type:varchar(255);not null" json:"actor_name"`
	Remarks        string        `gorm:"type:text" json:"remarks,omitempty"`
	CreatedAt      time.Time     `gorm:"autoCreateTime;index" json:"created_at"`
}

func (BookingHistory) TableName() string {
	return "booking_histories"
}
