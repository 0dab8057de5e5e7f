package service

import (
	"encoding/json"
	"testing"

	"repairhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishPayload_QuotedSubject(t *testing.T) {
	// Device types and reasons are free text and end up in subjects, so
	// the channel payload must survive quotes and backslashes.
	notification := &entity.Notification{
		ID:        uuid.New(),
		BookingID: uuid.New(),
		Kind:      entity.NotifyWorkOnHold,
		Subject:   `Repair #3f2c9a44 on hold: waiting for "OEM" part \ supplier`,
	}

	payload, err := publishPayload(notification)
	require.NoError(t, err)

	var decoded struct {
		ID        uuid.UUID `json:"id"`
		Kind      string    `json:"kind"`
		BookingID uuid.UUID `json:"booking_id"`
		Subject   string    `json:"subject"`
	}
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, notification.ID, decoded.ID)
	assert.Equal(t, string(entity.NotifyWorkOnHold), decoded.Kind)
	assert.Equal(t, notification.BookingID, decoded.BookingID)
	assert.Equal(t, notification.Subject, decoded.Subject)
}
