package usecase

import (
	"context"
	"errors"

	"repairhub/internal/converter"
	"repairhub/internal/delivery/dto"
	"repairhub/internal/delivery/http/middleware"
	"repairhub/internal/domain/entity"
	domainRepo "repairhub/internal/domain/repository"
	"repairhub/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrBookingNotOwned = errors.New("booking does not belong to you")

type BookingUsecase interface {
	CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error)
	GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error)
	GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error)
	GetAllBookings(ctx context.Context) (*dto.BookingListResponse, error)
	GetAssignedBookings(ctx context.Context) (*dto.BookingListResponse, error)
	GetEngineers(ctx context.Context) (*dto.EngineerListResponse, error)
}

type bookingUsecase struct {
	txm         repository.TxManager
	log         *logrus.Logger
	bookingRepo domainRepo.BookingRepository
	userRepo    domainRepo.UserRepository
}

func NewBookingUsecase(
	txm repository.TxManager,
	log *logrus.Logger,
	bookingRepo domainRepo.BookingRepository,
	userRepo domainRepo.UserRepository,
) BookingUsecase {
	return &bookingUsecase{
		txm:         txm,
		log:         log,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
	}
}

// CreateBooking files a new repair request for the logged-in customer.
// Every booking starts at pending; everything after that goes through
// the lifecycle orchestrator.
func (u *bookingUsecase) CreateBooking(ctx context.Context, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	booking := &entity.Booking{
		CustomerID:       userID,
		DeviceType:       req.DeviceType,
		DeviceModel:      req.DeviceModel,
		ServiceType:      req.ServiceType,
		IssueDescription: req.IssueDescription,
		ContactPhone:     req.ContactPhone,
		Address:          req.Address,
		PreferredAt:      req.PreferredAt,
		Status:           entity.BookingStatusPending,
	}

	if err := u.bookingRepo.Create(u.txm.DB(ctx), booking); err != nil {
		u.log.Errorf("Failed to create booking for customer %s: %+v", userID, err)
		return nil, err
	}

	u.log.Infof("Booking created: id=%s, customer=%s, device=%s", booking.ID, userID, booking.DeviceType)
	return converter.BookingToResponse(booking), nil
}

// GetMyBookings returns all bookings for the logged-in customer
func (u *bookingUsecase) GetMyBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	bookings, err := u.bookingRepo.FindByCustomerID(u.txm.DB(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find bookings for customer %s: %+v", userID, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// GetBooking returns one booking. Customers may only read their own;
// admins and engineers may read any.
func (u *bookingUsecase) GetBooking(ctx context.Context, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.txm.DB(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	roleID, _ := middleware.GetRoleIDFromContext(ctx)
	if roleID == entity.RoleIDCustomer {
		userID, ok := middleware.GetUserIDFromContext(ctx)
		if !ok || booking.CustomerID != userID {
			return nil, ErrBookingNotOwned
		}
	}

	return converter.BookingToResponse(booking), nil
}

// GetAllBookings returns every booking, newest first (admin view)
func (u *bookingUsecase) GetAllBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	bookings, err := u.bookingRepo.FindAll(u.txm.DB(ctx))
	if err != nil {
		u.log.Warnf("Failed to list bookings: %+v", err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// GetAssignedBookings returns the logged-in engineer's task list
func (u *bookingUsecase) GetAssignedBookings(ctx context.Context) (*dto.BookingListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, errors.New("user not found in context")
	}

	engineer, err := u.userRepo.FindByID(u.txm.DB(ctx), userID)
	if err != nil {
		return nil, err
	}
	if engineer == nil {
		return nil, ErrActorNotFound
	}

	bookings, err := u.bookingRepo.FindByEngineer(u.txm.DB(ctx), engineer.FullName)
	if err != nil {
		u.log.Warnf("Failed to find tasks for engineer %s: %+v", engineer.FullName, err)
		return nil, err
	}

	return &dto.BookingListResponse{
		Bookings: converter.BookingsToResponses(bookings),
		Total:    len(bookings),
	}, nil
}

// GetEngineers lists active engineers for the admin assignment screen
func (u *bookingUsecase) GetEngineers(ctx context.Context) (*dto.EngineerListResponse, error) {
	engineers, err := u.userRepo.FindByRole(u.txm.DB(ctx), entity.RoleIDEngineer)
	if err != nil {
		u.log.Warnf("Failed to list engineers: %+v", err)
		return nil, err
	}

	return &dto.EngineerListResponse{
		Engineers: converter.EngineersToResponses(engineers),
		Total:     len(engineers),
	}, nil
}
