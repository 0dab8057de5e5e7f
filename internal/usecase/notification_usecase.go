package usecase

import (
	"context"
	"errors"

	"repairhub/internal/converter"
	"repairhub/internal/delivery/dto"
	"repairhub/internal/delivery/http/middleware"
	domainRepo "repairhub/internal/domain/repository"
	"repairhub/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationUsecase interface {
	GetMyNotifications(ctx context.Context) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, notificationID uuid.UUID) error
}

type notificationUsecase struct {
	txm              repository.TxManager
	log              *logrus.Logger
	notificationRepo domainRepo.NotificationRepository
}

func NewNotificationUsecase(
	txm repository.TxManager,
	log *logrus.Logger,
	notificationRepo domainRepo.NotificationRepository,
) NotificationUsecase {
	return &notificationUsecase{
		txm:              txm,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

func (u *notificationUsecase) GetMyNotifications(ctx context.Context) (*dto.NotificationListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	notifications, err := u.notificationRepo.FindByRecipientID(u.txm.DB(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to load notifications for user %s: %+v", userID, err)
		return nil, err
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Total:         len(notifications),
	}, nil
}

func (u *notificationUsecase) MarkRead(ctx context.Context, notificationID uuid.UUID) error {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return errors.New("user not found in context")
	}

	rows, err := u.notificationRepo.MarkRead(u.txm.DB(ctx), notificationID, userID)
	if err != nil {
		u.log.Warnf("Failed to mark notification %s read: %+v", notificationID, err)
		return err
	}
	if rows == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
