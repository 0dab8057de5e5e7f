// Package lifecycle is the single source of truth for the repair booking
// state machine: which status transitions are legal, for which actor, what
// input each one requires and which side effects it triggers. The package is
// pure decision logic; persistence and notification dispatch live in the
// orchestrating usecase.
package lifecycle

import (
	"repairhub/internal/domain/entity"
)

// Audience identifies who receives a notification triggered by a transition.
type Audience string

const (
	AudienceCustomer Audience = "customer"
	AudienceAdmin    Audience = "admin"
	AudienceEngineer Audience = "engineer"
)

// Notice is one notification the orchestrator must dispatch after a
// successful transition.
type Notice struct {
	Kind entity.NotificationKind
	To   Audience
}

// Input carries the actor-supplied payload for a transition request.
type Input struct {
	EngineerName string
	HoldReason   string
	UnableReason string
	CancelReason string

	// HasReport is true when a completion report with content exists,
	// either saved earlier as a draft or supplied with the request.
	HasReport bool
	// HasProof is true when at least one proof artifact reference exists
	// for the booking.
	HasProof bool
}

// Decision is the side-effect plan for one legal transition. The orchestrator
// applies it atomically against the record store and then dispatches the
// notices.
type Decision struct {
	From entity.BookingStatus
	To   entity.BookingStatus

	SetEngineer   string
	ClearEngineer bool

	HoldReason   string
	UnableReason string
	CancelReason string

	// Remarks is recorded verbatim on the history entry.
	Remarks string

	// FreezeReport marks the completion report as final (sets completedAt).
	FreezeReport bool

	Notices []Notice
}

// rule is one allowed edge in the transition table.
type rule struct {
	from  []entity.BookingStatus
	to    entity.BookingStatus
	actor entity.ActorType
}

var transitionTable = []rule{
	{from: []entity.BookingStatus{entity.BookingStatusPending}, to: entity.BookingStatusConfirmed, actor: entity.ActorAdmin},
	{from: []entity.BookingStatus{entity.BookingStatusPending, entity.BookingStatusConfirmed, entity.BookingStatusRejected, entity.BookingStatusUnableToComplete}, to: entity.BookingStatusAssigned, actor: entity.ActorAdmin},
	{from: []entity.BookingStatus{entity.BookingStatusAssigned}, to: entity.BookingStatusAccepted, actor: entity.ActorEngineer},
	{from: []entity.BookingStatus{entity.BookingStatusAssigned}, to: entity.BookingStatusRejected, actor: entity.ActorEngineer},
	{from: []entity.BookingStatus{entity.BookingStatusAccepted, entity.BookingStatusHoldOnWork}, to: entity.BookingStatusInProgress, actor: entity.ActorEngineer},
	{from: []entity.BookingStatus{entity.BookingStatusInProgress}, to: entity.BookingStatusHoldOnWork, actor: entity.ActorEngineer},
	{from: []entity.BookingStatus{entity.BookingStatusInProgress}, to: entity.BookingStatusUnableToComplete, actor: entity.ActorEngineer},
	{from: []entity.BookingStatus{entity.BookingStatusInProgress}, to: entity.BookingStatusCompleted, actor: entity.ActorEngineer},
	{from: []entity.BookingStatus{
		entity.BookingStatusPending, entity.BookingStatusConfirmed, entity.BookingStatusAssigned,
		entity.BookingStatusAccepted, entity.BookingStatusInProgress, entity.BookingStatusHoldOnWork,
		entity.BookingStatusRejected, entity.BookingStatusUnableToComplete,
	}, to: entity.BookingStatusCancelled, actor: entity.ActorAdmin},
}

// CanTransition reports whether the from -> to edge exists for the actor.
func CanTransition(from, to entity.BookingStatus, actor entity.ActorType) bool {
	for _, r := range transitionTable {
		if r.to != to || r.actor != actor {
			continue
		}
		for _, f := range r.from {
			if f == from {
				return true
			}
		}
	}
	return false
}

// Decide validates a transition request and, when legal, returns the
// side-effect plan. It never mutates anything.
func Decide(from, to entity.BookingStatus, actor entity.ActorType, in Input) (*Decision, error) {
	if !entity.IsValidBookingStatus(to) {
		return nil, &ValidationError{Field: "status", Message: "unknown target status"}
	}
	if !CanTransition(from, to, actor) {
		return nil, &ConflictError{From: from, To: to, Actor: actor}
	}

	d := &Decision{From: from, To: to}

	switch to {
	case entity.BookingStatusConfirmed:
		d.Notices = append(d.Notices, Notice{Kind: entity.NotifyBookingConfirmed, To: AudienceCustomer})

	case entity.BookingStatusAssigned:
		if in.EngineerName == "" {
			return nil, &ValidationError{Field: "engineer_id", Message: "engineer is required for assignment"}
		}
		d.SetEngineer = in.EngineerName
		d.Notices = append(d.Notices,
			Notice{Kind: entity.NotifyTaskAssigned, To: AudienceEngineer},
			Notice{Kind: entity.NotifyTaskAssigned, To: AudienceAdmin},
		)

	case entity.BookingStatusAccepted:
		// no side effects

	case entity.BookingStatusRejected:
		d.ClearEngineer = true
		d.Notices = append(d.Notices, Notice{Kind: entity.NotifyTaskRejected, To: AudienceAdmin})

	case entity.BookingStatusInProgress:
		kind := entity.NotifyWorkStarted
		if from == entity.BookingStatusHoldOnWork {
			kind = entity.NotifyWorkResumed
		}
		d.Notices = append(d.Notices,
			Notice{Kind: kind, To: AudienceCustomer},
			Notice{Kind: kind, To: AudienceAdmin},
		)

	case entity.BookingStatusHoldOnWork:
		if in.HoldReason == "" {
			return nil, &ValidationError{Field: "hold_reason", Message: "hold reason is required"}
		}
		d.HoldReason = in.HoldReason
		d.Remarks = in.HoldReason
		d.Notices = append(d.Notices,
			Notice{Kind: entity.NotifyWorkOnHold, To: AudienceCustomer},
			Notice{Kind: entity.NotifyWorkOnHold, To: AudienceAdmin},
		)

	case entity.BookingStatusUnableToComplete:
		d.ClearEngineer = true
		d.UnableReason = in.UnableReason
		d.Remarks = in.UnableReason
		d.Notices = append(d.Notices, Notice{Kind: entity.NotifyWorkUnable, To: AudienceAdmin})

	case entity.BookingStatusCompleted:
		if !in.HasReport {
			return nil, &ValidationError{Field: "completion_report", Message: "completion report is required"}
		}
		if !in.HasProof {
			return nil, &ValidationError{Field: "proof_images", Message: "at least one proof artifact is required"}
		}
		d.FreezeReport = true
		d.Notices = append(d.Notices,
			Notice{Kind: entity.NotifyBookingCompleted, To: AudienceCustomer},
			Notice{Kind: entity.NotifyBookingCompleted, To: AudienceAdmin},
		)

	case entity.BookingStatusCancelled:
		if in.CancelReason == "" {
			return nil, &ValidationError{Field: "cancel_reason", Message: "cancellation reason is required"}
		}
		// A cancelled booking carries no engineer: the assignment
		// invariant only admits engineers on assigned, accepted,
		// in_progress, hold_on_work and completed.
		d.ClearEngineer = true
		d.CancelReason = in.CancelReason
		d.Remarks = in.CancelReason
		d.Notices = append(d.Notices, Notice{Kind: entity.NotifyBookingCancelled, To: AudienceCustomer})
	}

	return d, nil
}
