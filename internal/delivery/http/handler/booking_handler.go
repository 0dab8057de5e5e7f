package handler

import (
	"encoding/json"
	"net/http"

	"repairhub/internal/delivery/dto"
	"repairhub/internal/usecase"
	"repairhub/pkg/response"
	"repairhub/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// BookingHandler serves the customer-facing booking endpoints.
type BookingHandler struct {
	bookingUsecase   usecase.BookingUsecase
	lifecycleUsecase usecase.BookingLifecycleUsecase
	validator        *validator.CustomValidator
}

func NewBookingHandler(
	bookingUsecase usecase.BookingUsecase,
	lifecycleUsecase usecase.BookingLifecycleUsecase,
	validator *validator.CustomValidator,
) *BookingHandler {
	return &BookingHandler{
		bookingUsecase:   bookingUsecase,
		lifecycleUsecase: lifecycleUsecase,
		validator:        validator,
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create booking")
		return
	}

	response.Success(w, http.StatusCreated, "Booking created successfully", booking)
}

func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingUsecase.GetMyBookings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	booking, err := h.bookingUsecase.GetBooking(r.Context(), bookingID)
	if err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingNotOwned:
			response.Forbidden(w, "Booking does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *BookingHandler) GetBookingHistory(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	// Ownership check rides on GetBooking; history itself has no owner column.
	if _, err := h.bookingUsecase.GetBooking(r.Context(), bookingID); err != nil {
		switch err {
		case usecase.ErrBookingNotFound:
			response.NotFound(w, "Booking not found")
		case usecase.ErrBookingNotOwned:
			response.Forbidden(w, "Booking does not belong to you")
		default:
			response.InternalServerError(w, "Failed to get booking")
		}
		return
	}

	history, err := h.lifecycleUsecase.GetHistory(r.Context(), bookingID)
	if err != nil {
		response.InternalServerError(w, "Failed to get booking history")
		return
	}

	response.Success(w, http.StatusOK, "Booking history retrieved successfully", history)
}

// parseBookingID reads the {id} path variable, writing a 400 on failure.
func parseBookingID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return uuid.Nil, false
	}
	return bookingID, true
}
