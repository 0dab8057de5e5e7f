package repository

import (
	"repairhub/internal/domain/entity"
	domainRepo "repairhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingHistoryRepository struct{}

func NewBookingHistoryRepository() domainRepo.BookingHistoryRepository {
	return &bookingHistoryRepository{}
}

func (r *bookingHistoryRepository) Create(db *gorm.DB, entry *entity.BookingHistory) error {
	return db.Create(entry).Error
}

func (r *bookingHistoryRepository) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.BookingHistory, error) {
	var entries []entity.BookingHistory
	err := db.Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
