package repository

import (
	"repairhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error)
	FindByEngineer(db *gorm.DB, engineerName string) ([]entity.Booking, error)
	FindAll(db *gorm.DB) ([]entity.Booking, error)
	// UpdateStatusIfCurrent applies patch to the booking only while its
	// stored status still equals expected. Returns affected rows:
	// 1 = success, 0 = lost the race (status changed underneath).
	UpdateStatusIfCurrent(db *gorm.DB, id uuid.UUID, expected entity.BookingStatus, patch map[string]interface{}) (int64, error)
}
