package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind selects the message template for a notification
type NotificationKind string

const (
	NotifyBookingConfirmed NotificationKind = "booking_confirmed"
	NotifyTaskAssigned     NotificationKind = "task_assigned"
	NotifyTaskRejected     NotificationKind = "task_rejected"
	NotifyWorkStarted      NotificationKind = "work_started"
	NotifyWorkResumed      NotificationKind = "work_resumed"
	NotifyWorkOnHold       NotificationKind = "work_on_hold"
	NotifyWorkUnable       NotificationKind = "work_unable"
	NotifyBookingCompleted NotificationKind = "booking_completed"
	NotifyBookingCancelled NotificationKind = "booking_cancelled"
	NotifyPaymentRecorded  NotificationKind = "payment_recorded"
)

// Notification is the persisted in-app copy of a dispatched message.
// Email delivery is fire-and-forget; this row is what the recipient sees
// in the application regardless of email outcome.
type Notification struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	RecipientID   *uuid.UUID       `gorm:"type:uuid;index" json:"recipient_id,omitempty"`
	RecipientRole string           `gorm:"type:varchar(20);not null" json:"recipient_role"`
	BookingID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"booking_id"`
	Kind          NotificationKind `gorm:"type:varchar(50);not null" json:"kind"`
	Subject       string           `gorm:"type:varchar(255);not null" json:"subject"`
	Body          string           `gorm:"type:text;not null" json:"body"`
	IsRead        bool             `gorm:"not null;default:false;index" json:"is_read"`
	CreatedAt     time.Time        `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
