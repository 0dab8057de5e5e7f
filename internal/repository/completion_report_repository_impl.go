package repository

import (
	"errors"
	"time"

	"repairhub/internal/domain/entity"
	domainRepo "repairhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type completionReportRepository struct{}

func NewCompletionReportRepository() domainRepo.CompletionReportRepository {
	return &completionReportRepository{}
}

func (r *completionReportRepository) Upsert(db *gorm.DB, report *entity.CompletionReport) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "booking_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"work_performed", "parts_used", "time_spent_min", "notes", "proof_images", "updated_at",
		}),
	}).Create(report).Error
}

func (r *completionReportRepository) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.CompletionReport, error) {
	var report entity.CompletionReport
	err := db.Where("booking_id = ?", bookingID).First(&report).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &report, nil
}

func (r *completionReportRepository) MarkCompleted(db *gorm.DB, bookingID uuid.UUID) error {
	return db.Model(&entity.CompletionReport{}).
		Where("booking_id = ? AND completed_at IS NULL", bookingID).
		Update("completed_at", time.Now()).Error
}
