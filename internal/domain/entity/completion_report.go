package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CompletionReport holds the engineer's write-up for a finished (or in-flight)
// repair. At most one exists per booking; it may be saved as a draft while the
// work is still in progress and is frozen once the booking completes.
type CompletionReport struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingID     uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex" json:"booking_id"`
	EngineerID    uuid.UUID   `gorm:"type:uuid;not null;index" json:"engineer_id"`
	WorkPerformed string      `gorm:"type:text;not null" json:"work_performed"`
	PartsUsed     string      `gorm:"type:text" json:"parts_used,omitempty"`
	TimeSpentMin  int         `gorm:"default:0" json:"time_spent_min,omitempty"`
	Notes         string      `gorm:"type:text" json:"notes,omitempty"`
	ProofImages   StringArray `gorm:"type:jsonb" json:"proof_images"`
	CompletedAt   *time.Time  `json:"completed_at,omitempty"`
	CreatedAt     time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CompletionReport) TableName() string {
	return "completion_reports"
}

// HasProof reports whether at least one proof image reference is attached.
func (r *CompletionReport) HasProof() bool {
	return r != nil && len(r.ProofImages) > 0
}

// StringArray type for GORM JSONB support
type StringArray []string

// Value returns json value, implement driver.Valuer interface
func (a StringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return nil, nil
	}
	return json.Marshal(a)
}

// Scan scan value into StringArray, implements sql.Scanner interface
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []string
	err := json.Unmarshal(bytes, &result)
	*a = StringArray(result)
	return err
}
