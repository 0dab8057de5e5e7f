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

// EngineerBookingHandler serves the field-engineer task endpoints: accepting
// or rejecting assignments, driving the work states and filing the
// completion report.
type EngineerBookingHandler struct {
	bookingUsecase   usecase.BookingUsecase
	lifecycleUsecase usecase.BookingLifecycleUsecase
	validator        *validator.CustomValidator
}

func NewEngineerBookingHandler(
	bookingUsecase usecase.BookingUsecase,
	lifecycleUsecase usecase.BookingLifecycleUsecase,
	validator *validator.CustomValidator,
) *EngineerBookingHandler {
	return &EngineerBookingHandler{
		bookingUsecase:   bookingUsecase,
		lifecycleUsecase: lifecycleUsecase,
		validator:        validator,
	}
}

func (h *EngineerBookingHandler) actor(r *http.Request) (usecase.Actor, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return usecase.Actor{}, false
	}
	return usecase.Actor{Type: entity.ActorEngineer, UserID: userID}, true
}

func (h *EngineerBookingHandler) GetAssignedBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookingUsecase.GetAssignedBookings(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get assigned bookings")
		return
	}

	response.Success(w, http.StatusOK, "Assigned bookings retrieved successfully", bookings)
}

// transition applies a payload-free status change for the acting engineer.
func (h *EngineerBookingHandler) transition(w http.ResponseWriter, r *http.Request, to entity.BookingStatus, payload *usecase.TransitionPayload, message string) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	actor, ok := h.actor(r)
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	booking, err := h.lifecycleUsecase.ApplyTransition(r.Context(), bookingID, to, actor, payload)
	if err != nil {
		writeLifecycleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, message, booking)
}

func (h *EngineerBookingHandler) AcceptTask(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, entity.BookingStatusAccepted, &usecase.TransitionPayload{}, "Task accepted successfully")
}

func (h *EngineerBookingHandler) RejectTask(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, entity.BookingStatusRejected, &usecase.TransitionPayload{}, "Task rejected")
}

func (h *EngineerBookingHandler) StartWork(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, entity.BookingStatusInProgress, &usecase.TransitionPayload{}, "Work started")
}

// ResumeWork lifts a hold, returning the booking to in_progress.
func (h *EngineerBookingHandler) ResumeWork(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, entity.BookingStatusInProgress, &usecase.TransitionPayload{}, "Work resumed")
}

func (h *EngineerBookingHandler) HoldWork(w http.ResponseWriter, r *http.Request) {
	var req dto.HoldWorkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	h.transition(w, r, entity.BookingStatusHoldOnWork, &usecase.TransitionPayload{
		HoldReason: req.HoldReason,
	}, "Work placed on hold")
}

func (h *EngineerBookingHandler) UnableToComplete(w http.ResponseWriter, r *http.Request) {
	var req dto.UnableToCompleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	h.transition(w, r, entity.BookingStatusUnableToComplete, &usecase.TransitionPayload{
		UnableReason: req.UnableReason,
	}, "Task marked unable to complete")
}

// CompleteWork finishes the job. The completion report may ride along in the
// request body; otherwise a previously saved draft (or uploaded proof
// artifacts) must exist.
func (h *EngineerBookingHandler) CompleteWork(w http.ResponseWriter, r *http.Request) {
	var req dto.CompleteWorkRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request body")
			return
		}
	}

	if req.Report != nil {
		if err := h.validator.Validate(req.Report); err != nil {
			response.ValidationError(w, h.validator.FormatValidationErrors(err))
			return
		}
	}

	h.transition(w, r, entity.BookingStatusCompleted, &usecase.TransitionPayload{
		Report: req.Report,
	}, "Booking completed successfully")
}

// SaveReportDraft stores or updates the completion report while the work is
// still open.
func (h *EngineerBookingHandler) SaveReportDraft(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	var req dto.CompletionReportRequest
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

	report, err := h.lifecycleUsecase.SaveReportDraft(r.Context(), bookingID, actor, &req)
	if err != nil {
		writeLifecycleError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Report draft saved successfully", report)
}
