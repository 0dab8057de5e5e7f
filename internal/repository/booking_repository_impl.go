package repository

import (
	"errors"

	"repairhub/internal/domain/entity"
	domainRepo "repairhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingRepository struct{}

func NewBookingRepository() domainRepo.BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) Create(db *gorm.DB, booking *entity.Booking) error {
	return db.Create(booking).Error
}

func (r *bookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	var booking entity.Booking
	err := db.Preload("Customer").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindByEngineer(db *gorm.DB, engineerName string) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Where("assigned_engineer = ?", engineerName).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindAll(db *gorm.DB) ([]entity.Booking, error) {
	var bookings []entity.Booking
	err := db.Preload("Customer").
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatusIfCurrent is the compare-and-swap at the heart of the lifecycle:
// the WHERE clause pins the expected status, so of two racing transitions at
// most one sees RowsAffected == 1. The loser must surface a conflict, not
// overwrite the winner.
func (r *bookingRepository) UpdateStatusIfCurrent(db *gorm.DB, id uuid.UUID, expected entity.BookingStatus, patch map[string]interface{}) (int64, error) {
	result := db.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(patch)
	return result.RowsAffected, result.Error
}
