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

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

// RecordPayment books a received payment against the repair, splitting the
// commission between engineer and company. With also_complete set, the
// booking is driven to completed in the same request.
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	actor := usecase.Actor{Type: entity.ActorAdmin, UserID: userID}
	if roleID, ok := middleware.GetRoleIDFromContext(r.Context()); ok && roleID == entity.RoleIDEngineer {
		actor.Type = entity.ActorEngineer
	}

	result, err := h.paymentUsecase.RecordPayment(r.Context(), bookingID, actor, &req)
	if err != nil {
		// The payment may have been stored even when the follow-up
		// completion failed. Surface both so the client does not retry
		// the charge.
		if result != nil {
			response.JSON(w, http.StatusConflict, response.Response{
				Success: false,
				Message: "Payment recorded but completion failed: " + err.Error(),
				Data:    result,
			})
			return
		}
		writeLifecycleError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Payment recorded successfully", result)
}

func (h *PaymentHandler) GetPayments(w http.ResponseWriter, r *http.Request) {
	bookingID, ok := parseBookingID(w, r)
	if !ok {
		return
	}

	payments, err := h.paymentUsecase.GetPayments(r.Context(), bookingID)
	if err != nil {
		if err == usecase.ErrBookingNotFound {
			response.NotFound(w, "Booking not found")
			return
		}
		response.InternalServerError(w, "Failed to get payments")
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}
