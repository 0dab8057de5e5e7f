package usecase

import (
	"context"
	"testing"

	"repairhub/internal/delivery/dto"
	"repairhub/internal/domain/entity"
	"repairhub/internal/domain/lifecycle"
	"repairhub/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLifecycleUsecase struct {
	mock.Mock
}

func (m *mockLifecycleUsecase) ApplyTransition(ctx context.Context, bookingID uuid.UUID, to entity.BookingStatus, actor Actor, payload *TransitionPayload) (*dto.BookingResponse, error) {
	args := m.Called(ctx, bookingID, to, actor, payload)
	if resp, ok := args.Get(0).(*dto.BookingResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLifecycleUsecase) SaveReportDraft(ctx context.Context, bookingID uuid.UUID, actor Actor, req *dto.CompletionReportRequest) (*dto.CompletionReportResponse, error) {
	args := m.Called(ctx, bookingID, actor, req)
	if resp, ok := args.Get(0).(*dto.CompletionReportResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLifecycleUsecase) GetHistory(ctx context.Context, bookingID uuid.UUID) (*dto.HistoryListResponse, error) {
	args := m.Called(ctx, bookingID)
	if resp, ok := args.Get(0).(*dto.HistoryListResponse); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

type paymentFixture struct {
	bookingRepo *mockBookingRepo
	paymentRepo *mockPaymentRepo
	lifecycle   *mockLifecycleUsecase
	notifier    *mockNotifier
	usecase     PaymentUsecase
}

func newPaymentFixture() *paymentFixture {
	f := &paymentFixture{
		bookingRepo: &mockBookingRepo{},
		paymentRepo: &mockPaymentRepo{},
		lifecycle:   &mockLifecycleUsecase{},
		notifier:    &mockNotifier{},
	}
	f.usecase = NewPaymentUsecase(stubTxManager{}, testLogger(), f.bookingRepo, f.paymentRepo, f.lifecycle, f.notifier)
	return f
}

func (f *paymentFixture) assertAll(t *testing.T) {
	t.Helper()
	f.bookingRepo.AssertExpectations(t)
	f.paymentRepo.AssertExpectations(t)
	f.lifecycle.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func adminActor() Actor {
	return Actor{Type: entity.ActorAdmin, UserID: uuid.New()}
}

func TestRecordPayment_SplitsCommission(t *testing.T) {
	f := newPaymentFixture()
	booking := newTestBooking(entity.BookingStatusCompleted)

	f.bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	f.paymentRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Payment) bool {
		return p.Amount.Equal(decimal.NewFromInt(1000)) &&
			p.EngineerCommission.Equal(decimal.NewFromInt(300)) &&
			p.CompanyCommission.Equal(decimal.NewFromInt(700)) &&
			p.Status == entity.PaymentStatusCompleted &&
			p.Method == entity.PaymentMethodCash
	})).Return(nil)
	f.notifier.On("Dispatch", mock.MatchedBy(func(msg service.Message) bool {
		return msg.Kind == entity.NotifyPaymentRecorded &&
			msg.RecipientRole == entity.RoleCustomer &&
			msg.Data["amount"] == "1000.00"
	})).Return()

	resp, err := f.usecase.RecordPayment(context.Background(), booking.ID, adminActor(), &dto.RecordPaymentRequest{
		Method: "cash",
		Amount: decimal.NewFromInt(1000),
	})

	require.NoError(t, err)
	assert.True(t, resp.Payment.EngineerCommission.Equal(decimal.NewFromInt(300)))
	assert.True(t, resp.Payment.CompanyCommission.Equal(decimal.NewFromInt(700)))
	assert.Nil(t, resp.Booking)
	f.assertAll(t)
}

func TestRecordPayment_RejectsNonPositiveAmount(t *testing.T) {
	f := newPaymentFixture()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := f.usecase.RecordPayment(context.Background(), uuid.New(), adminActor(), &dto.RecordPaymentRequest{
			Method: "cash",
			Amount: amount,
		})

		var validationErr *lifecycle.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "amount", validationErr.Field)
	}
	f.assertAll(t)
}

func TestRecordPayment_TransferRequiresTxnID(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.usecase.RecordPayment(context.Background(), uuid.New(), adminActor(), &dto.RecordPaymentRequest{
		Method: "electronic_transfer",
		Amount: decimal.NewFromInt(250),
	})

	var validationErr *lifecycle.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "external_txn_id", validationErr.Field)
	f.assertAll(t)
}

func TestRecordPayment_UnknownMethod(t *testing.T) {
	f := newPaymentFixture()

	_, err := f.usecase.RecordPayment(context.Background(), uuid.New(), adminActor(), &dto.RecordPaymentRequest{
		Method: "barter",
		Amount: decimal.NewFromInt(250),
	})

	var validationErr *lifecycle.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "method", validationErr.Field)
	f.assertAll(t)
}

func TestRecordPayment_BookingNotFound(t *testing.T) {
	f := newPaymentFixture()
	bookingID := uuid.New()

	f.bookingRepo.On("FindByID", mock.Anything, bookingID).Return(nil, nil)

	_, err := f.usecase.RecordPayment(context.Background(), bookingID, adminActor(), &dto.RecordPaymentRequest{
		Method: "cash",
		Amount: decimal.NewFromInt(100),
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
	f.assertAll(t)
}

func TestRecordPayment_AlsoComplete(t *testing.T) {
	f := newPaymentFixture()
	booking := newTestBooking(entity.BookingStatusInProgress)
	actor := Actor{Type: entity.ActorEngineer, UserID: uuid.New()}
	report := &dto.CompletionReportRequest{
		WorkPerformed: "replaced battery",
		ProofImages:   []string{"https://cdn.example.com/proof/3.jpg"},
	}
	completed := &dto.BookingResponse{ID: booking.ID, Status: string(entity.BookingStatusCompleted)}

	f.bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	f.paymentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("Dispatch", mock.Anything).Return()
	f.lifecycle.On("ApplyTransition", mock.Anything, booking.ID, entity.BookingStatusCompleted, actor,
		&TransitionPayload{Report: report}).Return(completed, nil)

	resp, err := f.usecase.RecordPayment(context.Background(), booking.ID, actor, &dto.RecordPaymentRequest{
		Method:       "electronic_transfer",
		Amount:       decimal.RequireFromString("149.90"),
		ExternalTxnID: "txn-8841",
		AlsoComplete: true,
		Report:       report,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, string(entity.BookingStatusCompleted), resp.Booking.Status)
	f.assertAll(t)
}

func TestRecordPayment_AlsoCompleteFailureKeepsPayment(t *testing.T) {
	f := newPaymentFixture()
	booking := newTestBooking(entity.BookingStatusInProgress)
	actor := adminActor()
	conflict := &lifecycle.ConflictError{From: entity.BookingStatusInProgress, To: entity.BookingStatusCompleted, Actor: actor.Type}

	f.bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	f.paymentRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("Dispatch", mock.Anything).Return()
	f.lifecycle.On("ApplyTransition", mock.Anything, booking.ID, entity.BookingStatusCompleted, actor, mock.Anything).
		Return(nil, conflict)

	resp, err := f.usecase.RecordPayment(context.Background(), booking.ID, actor, &dto.RecordPaymentRequest{
		Method:       "cash",
		Amount:       decimal.NewFromInt(500),
		AlsoComplete: true,
	})

	// The payment is already committed, so the response survives alongside
	// the transition error.
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.NotNil(t, resp.Payment)
	assert.Nil(t, resp.Booking)
	f.assertAll(t)
}

func TestGetPayments(t *testing.T) {
	f := newPaymentFixture()
	booking := newTestBooking(entity.BookingStatusCompleted)

	payments := []entity.Payment{
		{ID: uuid.New(), BookingID: booking.ID, Amount: decimal.NewFromInt(1000), EngineerCommission: decimal.NewFromInt(300), CompanyCommission: decimal.NewFromInt(700)},
	}

	f.bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)
	f.paymentRepo.On("FindByBookingID", mock.Anything, booking.ID).Return(payments, nil)

	resp, err := f.usecase.GetPayments(context.Background(), booking.ID)

	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.True(t, resp.Payments[0].Amount.Equal(decimal.NewFromInt(1000)))
	f.assertAll(t)
}
