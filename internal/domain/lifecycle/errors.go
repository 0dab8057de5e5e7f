package lifecycle

import (
	"fmt"

	"repairhub/internal/domain/entity"
)

// ConflictError reports a transition that is not allowed for the booking's
// current status and the requesting actor. It also covers a lost
// compare-and-swap race, where the re-read status no longer matches.
type ConflictError struct {
	From  entity.BookingStatus
	To    entity.BookingStatus
	Actor entity.ActorType
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("transition %s -> %s is not allowed for actor %s", e.From, e.To, e.Actor)
}

// ValidationError reports a missing or malformed required input for the
// requested transition.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
