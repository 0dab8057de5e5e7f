package repository

import (
	"repairhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingHistoryRepository interface {
	Create(db *gorm.DB, entry *entity.BookingHistory) error
	FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.BookingHistory, error)
}
