package repository

import (
	"repairhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.Payment, error)
}
