package repository

import (
	"repairhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CompletionReportRepository interface {
	// Upsert creates the booking's report or updates the existing draft.
	Upsert(db *gorm.DB, report *entity.CompletionReport) error
	FindByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.CompletionReport, error)
	// MarkCompleted stamps completedAt, freezing the report.
	MarkCompleted(db *gorm.DB, bookingID uuid.UUID) error
}
