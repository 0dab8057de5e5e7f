package converter

import (
	"repairhub/internal/delivery/dto"
	"repairhub/internal/domain/entity"
)

// NotificationsToResponses converts notification rows to DTOs
func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = dto.NotificationResponse{
			ID:        n.ID,
			BookingID: n.BookingID,
			Kind:      string(n.Kind),
			Subject:   n.Subject,
			Body:      n.Body,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}
	return responses
}
