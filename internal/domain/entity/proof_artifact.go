package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProofArtifact is an uploaded image evidencing repair work. Upload and
// storage are handled outside this service; the lifecycle only checks that
// at least one artifact exists before a booking may complete.
type ProofArtifact struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID  uuid.UUID `gorm:"type:uuid;not null;index" json:"booking_id"`
	Reference  string    `gorm:"type:text;not null" json:"reference"`
	UploadedAt time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (ProofArtifact) TableName() string {
	return "proof_artifacts"
}
