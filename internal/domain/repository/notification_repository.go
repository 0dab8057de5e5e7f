package repository

import (
	"repairhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	FindByRecipientID(db *gorm.DB, recipientID uuid.UUID) ([]entity.Notification, error)
	MarkRead(db *gorm.DB, id uuid.UUID, recipientID uuid.UUID) (int64, error)
}
