package handler

import (
	"errors"
	"net/http"

	"repairhub/internal/domain/lifecycle"
	"repairhub/internal/usecase"
	"repairhub/pkg/response"
)

// writeLifecycleError maps transition orchestrator errors onto HTTP status
// codes. Used by every handler that drives a booking status change.
func writeLifecycleError(w http.ResponseWriter, err error) {
	var conflictErr *lifecycle.ConflictError
	var validationErr *lifecycle.ValidationError

	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, usecase.ErrEngineerNotFound):
		response.NotFound(w, "Engineer not found")
	case errors.Is(err, usecase.ErrActorNotFound):
		response.Unauthorized(w, "Acting user not found")
	case errors.Is(err, usecase.ErrTaskNotOwned):
		response.Forbidden(w, "Task is not assigned to you")
	case errors.Is(err, usecase.ErrReportFrozen):
		response.Conflict(w, "Completion report can no longer be modified")
	case errors.Is(err, usecase.ErrDraftNotAllowed):
		response.Conflict(w, "Report draft can only be saved while work is in progress")
	case errors.As(err, &conflictErr):
		response.Conflict(w, conflictErr.Error())
	case errors.As(err, &validationErr):
		response.BadRequest(w, validationErr.Error())
	default:
		response.InternalServerError(w, "Failed to process booking transition")
	}
}
