package repository

import (
	"repairhub/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProofArtifactRepository reads artifact references written by the upload
// pipeline. The lifecycle never creates or deletes artifacts.
type ProofArtifactRepository interface {
	ListByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.ProofArtifact, error)
}
