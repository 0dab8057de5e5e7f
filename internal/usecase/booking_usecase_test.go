package usecase

import (
	"context"
	"testing"
	"time"

	"repairhub/internal/delivery/dto"
	"repairhub/internal/delivery/http/middleware"
	"repairhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type bookingFixture struct {
	bookingRepo *mockBookingRepo
	userRepo    *mockUserRepo
	usecase     BookingUsecase
}

func newBookingFixture() *bookingFixture {
	f := &bookingFixture{
		bookingRepo: &mockBookingRepo{},
		userRepo:    &mockUserRepo{},
	}
	f.usecase = NewBookingUsecase(stubTxManager{}, testLogger(), f.bookingRepo, f.userRepo)
	return f
}

func authedContext(userID uuid.UUID, roleID int) context.Context {
	ctx := context.WithValue(context.Background(), middleware.UserIDKey, userID)
	return context.WithValue(ctx, middleware.RoleIDKey, roleID)
}

func TestCreateBooking(t *testing.T) {
	f := newBookingFixture()
	customerID := uuid.New()

	f.bookingRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *entity.Booking) bool {
		return b.CustomerID == customerID &&
			b.Status == entity.BookingStatusPending &&
			b.DeviceType == "laptop"
	})).Return(nil)

	resp, err := f.usecase.CreateBooking(authedContext(customerID, entity.RoleIDCustomer), &dto.CreateBookingRequest{
		DeviceType:       "laptop",
		DeviceModel:      "XPS 13",
		ServiceType:      "screen replacement",
		IssueDescription: "cracked panel",
		ContactPhone:     "+15550100",
		Address:          "12 Main St",
		PreferredAt:      time.Now().Add(48 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, string(entity.BookingStatusPending), resp.Status)
	f.bookingRepo.AssertExpectations(t)
}

func TestCreateBooking_NoAuthenticatedUser(t *testing.T) {
	f := newBookingFixture()

	_, err := f.usecase.CreateBooking(context.Background(), &dto.CreateBookingRequest{DeviceType: "laptop"})

	assert.Error(t, err)
	f.bookingRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetMyBookings(t *testing.T) {
	f := newBookingFixture()
	customerID := uuid.New()

	bookings := []entity.Booking{
		{ID: uuid.New(), CustomerID: customerID, Status: entity.BookingStatusPending},
		{ID: uuid.New(), CustomerID: customerID, Status: entity.BookingStatusCompleted, AssignedEngineer: "Dana Field"},
	}

	f.bookingRepo.On("FindByCustomerID", mock.Anything, customerID).Return(bookings, nil)

	resp, err := f.usecase.GetMyBookings(authedContext(customerID, entity.RoleIDCustomer))

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	f.bookingRepo.AssertExpectations(t)
}

func TestGetBooking_CustomerOwnership(t *testing.T) {
	f := newBookingFixture()
	owner := uuid.New()
	booking := &entity.Booking{ID: uuid.New(), CustomerID: owner, Status: entity.BookingStatusPending}

	f.bookingRepo.On("FindByID", mock.Anything, booking.ID).Return(booking, nil)

	resp, err := f.usecase.GetBooking(authedContext(owner, entity.RoleIDCustomer), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.ID, resp.ID)

	_, err = f.usecase.GetBooking(authedContext(uuid.New(), entity.RoleIDCustomer), booking.ID)
	assert.ErrorIs(t, err, ErrBookingNotOwned)

	// Admins read any booking.
	_, err = f.usecase.GetBooking(authedContext(uuid.New(), entity.RoleIDAdmin), booking.ID)
	assert.NoError(t, err)
}

func TestGetAssignedBookings(t *testing.T) {
	f := newBookingFixture()
	engineer := &entity.User{ID: uuid.New(), FullName: "Dana Field", RoleID: entity.RoleIDEngineer}

	tasks := []entity.Booking{
		{ID: uuid.New(), Status: entity.BookingStatusAssigned, AssignedEngineer: "Dana Field"},
	}

	f.userRepo.On("FindByID", mock.Anything, engineer.ID).Return(engineer, nil)
	f.bookingRepo.On("FindByEngineer", mock.Anything, "Dana Field").Return(tasks, nil)

	resp, err := f.usecase.GetAssignedBookings(authedContext(engineer.ID, entity.RoleIDEngineer))

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	f.bookingRepo.AssertExpectations(t)
	f.userRepo.AssertExpectations(t)
}

func TestGetEngineers(t *testing.T) {
	f := newBookingFixture()

	engineers := []entity.User{
		{ID: uuid.New(), FullName: "Dana Field", Email: "dana@example.com", RoleID: entity.RoleIDEngineer},
		{ID: uuid.New(), FullName: "Sam Wrench", Email: "sam@example.com", RoleID: entity.RoleIDEngineer},
	}

	f.userRepo.On("FindByRole", mock.Anything, entity.RoleIDEngineer).Return(engineers, nil)

	resp, err := f.usecase.GetEngineers(context.Background())

	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Dana Field", resp.Engineers[0].FullName)
	f.userRepo.AssertExpectations(t)
}
