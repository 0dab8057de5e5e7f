package repository

import (
	"repairhub/internal/domain/entity"
	domainRepo "repairhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Where("booking_id = ?", bookingID).
		Order("recorded_at DESC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
