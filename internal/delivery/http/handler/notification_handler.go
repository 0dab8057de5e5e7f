package handler

import (
	"net/http"

	"repairhub/internal/usecase"
	"repairhub/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type NotificationHandler struct {
	notificationUsecase usecase.NotificationUsecase
}

func NewNotificationHandler(notificationUsecase usecase.NotificationUsecase) *NotificationHandler {
	return &NotificationHandler{
		notificationUsecase: notificationUsecase,
	}
}

func (h *NotificationHandler) GetMyNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.notificationUsecase.GetMyNotifications(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get notifications")
		return
	}

	response.Success(w, http.StatusOK, "Notifications retrieved successfully", notifications)
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	notificationID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid notification ID")
		return
	}

	if err := h.notificationUsecase.MarkRead(r.Context(), notificationID); err != nil {
		if err == usecase.ErrNotificationNotFound {
			response.NotFound(w, "Notification not found")
			return
		}
		response.InternalServerError(w, "Failed to mark notification as read")
		return
	}

	response.Success(w, http.StatusOK, "Notification marked as read", nil)
}
