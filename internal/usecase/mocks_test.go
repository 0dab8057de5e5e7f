package usecase

import (
	"context"
	"io"

	"repairhub/internal/domain/entity"
	"repairhub/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

// stubTxManager runs transaction callbacks inline with a nil handle. The
// repository mocks ignore the db argument, so no real connection is needed.
type stubTxManager struct{}

func (stubTxManager) DB(ctx context.Context) *gorm.DB { return nil }

func (stubTxManager) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Create(db *gorm.DB, booking *entity.Booking) error {
	return m.Called(db, booking).Error(0)
}

func (m *mockBookingRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error) {
	args := m.Called(db, id)
	if b, ok := args.Get(0).(*entity.Booking); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) FindByCustomerID(db *gorm.DB, customerID uuid.UUID) ([]entity.Booking, error) {
	args := m.Called(db, customerID)
	if bookings, ok := args.Get(0).([]entity.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) FindByEngineer(db *gorm.DB, engineerName string) ([]entity.Booking, error) {
	args := m.Called(db, engineerName)
	if bookings, ok := args.Get(0).([]entity.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) FindAll(db *gorm.DB) ([]entity.Booking, error) {
	args := m.Called(db)
	if bookings, ok := args.Get(0).([]entity.Booking); ok {
		return bookings, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatusIfCurrent(db *gorm.DB, id uuid.UUID, expected entity.BookingStatus, patch map[string]interface{}) (int64, error) {
	args := m.Called(db, id, expected, patch)
	return args.Get(0).(int64), args.Error(1)
}

type mockReportRepo struct {
	mock.Mock
}

func (m *mockReportRepo) Upsert(db *gorm.DB, report *entity.CompletionReport) error {
	return m.Called(db, report).Error(0)
}

func (m *mockReportRepo) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) (*entity.CompletionReport, error) {
	args := m.Called(db, bookingID)
	if r, ok := args.Get(0).(*entity.CompletionReport); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReportRepo) MarkCompleted(db *gorm.DB, bookingID uuid.UUID) error {
	return m.Called(db, bookingID).Error(0)
}

type mockHistoryRepo struct {
	mock.Mock
}

func (m *mockHistoryRepo) Create(db *gorm.DB, entry *entity.BookingHistory) error {
	return m.Called(db, entry).Error(0)
}

func (m *mockHistoryRepo) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.BookingHistory, error) {
	args := m.Called(db, bookingID)
	if entries, ok := args.Get(0).([]entity.BookingHistory); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockArtifactRepo struct {
	mock.Mock
}

func (m *mockArtifactRepo) ListByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.ProofArtifact, error) {
	args := m.Called(db, bookingID)
	if artifacts, ok := args.Get(0).([]entity.ProofArtifact); ok {
		return artifacts, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(db *gorm.DB, user *entity.User) error {
	return m.Called(db, user).Error(0)
}

func (m *mockUserRepo) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) FindByRole(db *gorm.DB, roleID int) ([]entity.User, error) {
	args := m.Called(db, roleID)
	if users, ok := args.Get(0).([]entity.User); ok {
		return users, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockPaymentRepo struct {
	mock.Mock
}

func (m *mockPaymentRepo) Create(db *gorm.DB, payment *entity.Payment) error {
	return m.Called(db, payment).Error(0)
}

func (m *mockPaymentRepo) FindByBookingID(db *gorm.DB, bookingID uuid.UUID) ([]entity.Payment, error) {
	args := m.Called(db, bookingID)
	if payments, ok := args.Get(0).([]entity.Payment); ok {
		return payments, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Dispatch(msg service.Message) {
	m.Called(msg)
}
