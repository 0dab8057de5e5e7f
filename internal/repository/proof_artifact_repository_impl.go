package repository

import (
	"repairhub/internal/domain/entity"
	domainRepo "repairhub/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type proofArtifactRepository struct{}

func NewProofArtifactRepository() domainRepo.ProofArtifactRepository {
	return &proofArtifactRepository{}
}

func (r *proofArtifactRepository) ListByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.ProofArtifact, error) {
	var artifacts []entity.ProofArtifact
	err := db.Where("booking_id = ?", bookingID).
		Order("uploaded_at ASC").
		Find(&artifacts).Error
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}
