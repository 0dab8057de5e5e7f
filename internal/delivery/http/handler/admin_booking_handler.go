package handler

import (
	"encoding/json"
	"net/http"

	"repairhub/internal/delivery/dto"
	"repairhub/internal/delivery/http/middleware"
	"repairhub/internal/domain/entity"
	"repairhub/internal/usecase"
	"repairhub/pkg/response"
	"repairhub/pkg/validator"
)

// AdminBookingHandler serves the dispatcher-side endpoints: confirming
// incoming bookings, assigning engineers and cancelling.
type AdminBookingHandler struct {
	bookingUsecase   usecase.BookingUsecase
	lifecycleUsecase usecase.BookingLifecycleUsecase
	validator        *validator.CustomValidator
}

func NewAdminBookingHandler(
	bookingUsecase usecase.BookingUsecase,
	lifecycleUsecase usecase.BookingLifecycleUsecase,
	validator *validator.CustomValidator,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		bookingUsecase:   bookingUsecase,
		lifecycleUsecase: lifecycleUsecase,
		validator:        validator,
	}
}

func (h *AdminBookingHandler) actor(r *http.Request) (usecase.Actor, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Actor{}, false
	}
	return usecase.Actor{Type: entity.ActorAdmin, UserID: userID}, true
}

func (h *AdminBookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingUsecase.GetAllBookings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *AdminBookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	booking, err := h.bookingUsecase.GetBooking(r.Context(), bookingID)
	if err != nil {
		if err == usecase.ErrBookingNotFound {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalServerError(w, "Failed to get booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

func (h *AdminBookingHandler) GetBookingHistory(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	history, err := h.lifecycleUsecase.GetHistory(r.Context(), bookingID)
	if err != nil {
		if err == usecase.ErrBookingNotFound {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalServerError(w, "Failed to get booking history")
		return
	}

	response.Success(w, http.StatusOK, "Booking history retrieved successfully", history)
}

func (h *AdminBookingHandler) GetEngineers(w http.ResponseWriter, r *http.Request) {
	engineers, err := h.bookingUsecase.GetEngineers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get engineers")
		return
	}

	response.Success(w, http.StatusOK, "Engineers retrieved successfully", engineers)
}

// ConfirmBooking moves a pending booking to confirmed.
func (h *AdminBookingHandler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	actor, ok := h.actor(r)
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	booking, err := h.lifecycleUsecase.ApplyTransition(r.Context(), bookingID, entity.BookingStatusConfirmed, actor, &usecase.TransitionPayload{})
	if err != nil {
		writeLifecycleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking confirmed successfully", booking)
}

// AssignEngineer moves a confirmed booking (or a rejected/unable one, for
// re-dispatch) to assigned.
func (h *AdminBookingHandler) AssignEngineer(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	var req dto.AssignEngineerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, ok := h.actor(r)
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	booking, err := h.lifecycleUsecase.ApplyTransition(r.Context(), bookingID, entity.BookingStatusAssigned, actor, &usecase.TransitionPayload{
		EngineerID: &req.EngineerID,
	})
	if err != nil {
		writeLifecycleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Engineer assigned successfully", booking)
}

func (h *AdminBookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	var req dto.CancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	actor, ok := h.actor(r)
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	booking, err := h.lifecycleUsecase.ApplyTransition(r.Context(), bookingID, entity.BookingStatusCancelled, actor, &usecase.TransitionPayload{
		CancelReason: req.CancelReason,
	})
	if err != nil {
		writeLifecycleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Booking cancelled successfully", booking)
}
