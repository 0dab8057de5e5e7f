package usecase

import (
	"context"

	"repairhub/internal/converter"
	"repairhub/internal/delivery/dto"
	"repairhub/internal/domain/entity"
	"repairhub/internal/domain/lifecycle"
	domainRepo "repairhub/internal/domain/repository"
	"repairhub/internal/repository"
	"repairhub/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type PaymentUsecase interface {
	RecordPayment(ctx context.Context, bookingID uuid.UUID, actor Actor, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error)
	GetPayments(ctx context.Context, bookingID uuid.UUID) (*dto.PaymentListResponse, error)
}

type paymentUsecase struct {
	txm         repository.TxManager
	log         *logrus.Logger
	bookingRepo domainRepo.BookingRepository
	paymentRepo domainRepo.PaymentRepository
	lifecycle   BookingLifecycleUsecase
	notifier    service.Notifier
}

func NewPaymentUsecase(
	txm repository.TxManager,
	log *logrus.Logger,
	bookingRepo domainRepo.BookingRepository,
	paymentRepo domainRepo.PaymentRepository,
	lifecycleUsecase BookingLifecycleUsecase,
	notifier service.Notifier,
) PaymentUsecase {
	return &paymentUsecase{
		txm:         txm,
		log:         log,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		lifecycle:   lifecycleUsecase,
		notifier:    notifier,
	}
}

// RecordPayment persists a payment with the fixed 30/70 commission split and,
// when also_complete is set, composes with the completed transition. The two
// operations stay separate on purpose: a correction payment against an
// already-completed booking records without re-firing completion effects
// (the transition is an idempotent no-op then).
func (u *paymentUsecase) RecordPayment(ctx context.Context, bookingID uuid.UUID, actor Actor, req *dto.RecordPaymentRequest) (*dto.RecordPaymentResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, &lifecycle.ValidationError{Field: "amount", Message: "amount must be positive"}
	}
	method := entity.PaymentMethod(req.Method)
	if method != entity.PaymentMethodCash && method != entity.PaymentMethodTransfer {
		return nil, &lifecycle.ValidationError{Field: "method", Message: "unknown payment method"}
	}
	if method == entity.PaymentMethodTransfer && req.ExternalTxnID == "" {
		return nil, &lifecycle.ValidationError{Field: "external_txn_id", Message: "transaction id is required for electronic transfer"}
	}

	booking, err := u.bookingRepo.FindByID(u.txm.DB(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	engineerShare, companyShare := entity.SplitCommission(req.Amount)

	payment := &entity.Payment{
		BookingID:          booking.ID,
		Method:             method,
		ExternalTxnID:      req.ExternalTxnID,
		Amount:             req.Amount,
		Status:             entity.PaymentStatusCompleted,
		EngineerCommission: engineerShare,
		CompanyCommission:  companyShare,
		CommissionRate:     entity.EngineerCommissionRate,
	}

	if err := u.paymentRepo.Create(u.txm.DB(ctx), payment); err != nil {
		u.log.Errorf("Failed to record payment for booking %s: %+v", bookingID, err)
		return nil, err
	}

	u.log.Infof("Payment recorded: booking=%s, amount=%s, engineer=%s, company=%s",
		booking.ID, payment.Amount, payment.EngineerCommission, payment.CompanyCommission)

	customerID := booking.CustomerID
	u.notifier.Dispatch(service.Message{
		Kind:           entity.NotifyPaymentRecorded,
		Booking:        booking,
		RecipientRole:  entity.RoleCustomer,
		RecipientID:    &customerID,
		RecipientEmail: booking.Customer.Email,
		Data:           map[string]string{"amount": req.Amount.StringFixed(2)},
	})

	response := &dto.RecordPaymentResponse{Payment: converter.PaymentToResponse(payment)}

	if req.AlsoComplete {
		updated, err := u.lifecycle.ApplyTransition(ctx, bookingID, entity.BookingStatusCompleted, actor, &TransitionPayload{
			Report: req.Report,
		})
		if err != nil {
			// The payment row is already committed; surface the
			// transition failure so the caller can retry completion.
			return response, err
		}
		response.Booking = updated
	}

	return response, nil
}

func (u *paymentUsecase) GetPayments(ctx context.Context, bookingID uuid.UUID) (*dto.PaymentListResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.txm.DB(ctx), bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	payments, err := u.paymentRepo.FindByBookingID(u.txm.DB(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to load payments for booking %s: %+v", bookingID, err)
		return nil, err
	}

	return &dto.PaymentListResponse{
		Payments: converter.PaymentsToResponses(payments),
		Total:    len(payments),
	}, nil
}
