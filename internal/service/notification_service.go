package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"repairhub/config"
	"repairhub/internal/domain/entity"
	domainRepo "repairhub/internal/domain/repository"
	"repairhub/internal/infrastructure/mail"
	"repairhub/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Per-message budget for the whole dispatch (DB row + publish + email).
	dispatchTimeout = 10 * time.Second

	notificationChannelPrefix = "notifications:"
	adminNotificationChannel  = "notifications:admin"
)

// Message is one notification to deliver. Recipient fields are resolved by
// the caller; for admin-audience messages both may be empty and the
// configured operations inbox is used.
type Message struct {
	Kind           entity.NotificationKind
	Booking        *entity.Booking
	RecipientRole  string
	RecipientID    *uuid.UUID
	RecipientEmail string
	Data           map[string]string
}

// Notifier delivers templated notifications (email + in-app row + live Redis
// publish). Delivery is fire-and-forget: Dispatch returns immediately and
// every failure is logged, never surfaced to the caller. A booking that
// changed status but whose email failed is still a successful transition.
type Notifier interface {
	Dispatch(msg Message)
}

type notificationService struct {
	txm              repository.TxManager
	log              *logrus.Logger
	mailer           mail.Mailer
	redisClient      *redis.Client
	notificationRepo domainRepo.NotificationRepository
	mailCfg          config.MailConfig
	baseURL          string
}

func NewNotificationService(
	txm repository.TxManager,
	log *logrus.Logger,
	mailer mail.Mailer,
	redisClient *redis.Client,
	notificationRepo domainRepo.NotificationRepository,
	mailCfg config.MailConfig,
	baseURL string,
) Notifier {
	return &notificationService{
		txm:              txm,
		log:              log,
		mailer:           mailer,
		redisClient:      redisClient,
		notificationRepo: notificationRepo,
		mailCfg:          mailCfg,
		baseURL:          baseURL,
	}
}

func (s *notificationService) Dispatch(msg Message) {
	go s.deliver(msg)
}

func (s *notificationService) deliver(msg Message) {
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	subject, body := renderMessage(msg, s.baseURL)

	notification := &entity.Notification{
		RecipientID:   msg.RecipientID,
		RecipientRole: msg.RecipientRole,
		BookingID:     msg.Booking.ID,
		Kind:          msg.Kind,
		Subject:       subject,
		Body:          body,
	}

	if err := s.notificationRepo.Create(s.txm.DB(ctx), notification); err != nil {
		s.log.Warnf("Failed to store notification %s for booking %s: %+v", msg.Kind, msg.Booking.ID, err)
	}

	s.publish(ctx, msg, notification)

	email := msg.RecipientEmail
	if email == "" && msg.RecipientRole == entity.RoleAdmin {
		email = s.mailCfg.AdminEmail
	}
	if email == "" {
		s.log.Warnf("No recipient email for notification %s (booking %s), skipping mail", msg.Kind, msg.Booking.ID)
		return
	}

	if err := s.mailer.Send(email, subject, body); err != nil {
		s.log.Warnf("Failed to send notification email %s for booking %s: %+v", msg.Kind, msg.Booking.ID, err)
		return
	}

	s.log.Infof("Notification dispatched: kind=%s, booking=%s, role=%s", msg.Kind, msg.Booking.ID, msg.RecipientRole)
}

// publish pushes the stored notification onto the recipient's Redis channel
// so connected clients can pick it up live. Best effort.
func (s *notificationService) publish(ctx context.Context, msg Message, notification *entity.Notification) {
	if s.redisClient == nil {
		return
	}

	channel := adminNotificationChannel
	if msg.RecipientID != nil {
		channel = fmt.Sprintf("%s%s", notificationChannelPrefix, msg.RecipientID.String())
	}

	payload, err := publishPayload(notification)
	if err != nil {
		s.log.Warnf("Failed to encode notification payload for booking %s: %+v", msg.Booking.ID, err)
		return
	}

	if err := s.redisClient.Publish(ctx, channel, payload).Err(); err != nil {
		s.log.Warnf("Failed to publish notification on %s: %+v", channel, err)
	}
}

// publishPayload encodes the channel message. Subjects carry free text
// (device type, reasons), so this goes through the JSON encoder rather
// than string formatting.
func publishPayload(n *entity.Notification) ([]byte, error) {
	return json.Marshal(struct {
		ID        uuid.UUID               `json:"id"`
		Kind      entity.NotificationKind `json:"kind"`
		BookingID uuid.UUID               `json:"booking_id"`
		Subject   string                  `json:"subject"`
	}{n.ID, n.Kind, n.BookingID, n.Subject})
}
