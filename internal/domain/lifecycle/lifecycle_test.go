package lifecycle

import (
	"testing"

	"repairhub/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition_LegalEdges(t *testing.T) {
	cases := []struct {
		name  string
		from  entity.BookingStatus
		to    entity.BookingStatus
		actor entity.ActorType
	}{
		{"admin confirms pending", entity.BookingStatusPending, entity.BookingStatusConfirmed, entity.ActorAdmin},
		{"admin assigns confirmed", entity.BookingStatusConfirmed, entity.BookingStatusAssigned, entity.ActorAdmin},
		{"admin assigns pending directly", entity.BookingStatusPending, entity.BookingStatusAssigned, entity.ActorAdmin},
		{"admin reassigns after rejection", entity.BookingStatusRejected, entity.BookingStatusAssigned, entity.ActorAdmin},
		{"admin reassigns after unable", entity.BookingStatusUnableToComplete, entity.BookingStatusAssigned, entity.ActorAdmin},
		{"engineer accepts assignment", entity.BookingStatusAssigned, entity.BookingStatusAccepted, entity.ActorEngineer},
		{"engineer rejects assignment", entity.BookingStatusAssigned, entity.BookingStatusRejected, entity.ActorEngineer},
		{"engineer starts work", entity.BookingStatusAccepted, entity.BookingStatusInProgress, entity.ActorEngineer},
		{"engineer resumes from hold", entity.BookingStatusHoldOnWork, entity.BookingStatusInProgress, entity.ActorEngineer},
		{"engineer holds work", entity.BookingStatusInProgress, entity.BookingStatusHoldOnWork, entity.ActorEngineer},
		{"engineer gives up", entity.BookingStatusInProgress, entity.BookingStatusUnableToComplete, entity.ActorEngineer},
		{"engineer completes", entity.BookingStatusInProgress, entity.BookingStatusCompleted, entity.ActorEngineer},
		{"admin cancels pending", entity.BookingStatusPending, entity.BookingStatusCancelled, entity.ActorAdmin},
		{"admin cancels in progress", entity.BookingStatusInProgress, entity.BookingStatusCancelled, entity.ActorAdmin},
		{"admin cancels held work", entity.BookingStatusHoldOnWork, entity.BookingStatusCancelled, entity.ActorAdmin},
		{"admin cancels rejected", entity.BookingStatusRejected, entity.BookingStatusCancelled, entity.ActorAdmin},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, CanTransition(tc.from, tc.to, tc.actor))
		})
	}
}

func TestCanTransition_IllegalEdges(t *testing.T) {
	cases := []struct {
		name  string
		from  entity.BookingStatus
		to    entity.BookingStatus
		actor entity.ActorType
	}{
		{"engineer cannot confirm", entity.BookingStatusPending, entity.BookingStatusConfirmed, entity.ActorEngineer},
		{"engineer cannot assign", entity.BookingStatusConfirmed, entity.BookingStatusAssigned, entity.ActorEngineer},
		{"admin cannot accept", entity.BookingStatusAssigned, entity.BookingStatusAccepted, entity.ActorAdmin},
		{"admin cannot start work", entity.BookingStatusAccepted, entity.BookingStatusInProgress, entity.ActorAdmin},
		{"engineer cannot cancel", entity.BookingStatusInProgress, entity.BookingStatusCancelled, entity.ActorEngineer},
		{"cannot complete from accepted", entity.BookingStatusAccepted, entity.BookingStatusCompleted, entity.ActorEngineer},
		{"cannot complete from hold", entity.BookingStatusHoldOnWork, entity.BookingStatusCompleted, entity.ActorEngineer},
		{"cannot skip to in progress", entity.BookingStatusAssigned, entity.BookingStatusInProgress, entity.ActorEngineer},
		{"completed is terminal", entity.BookingStatusCompleted, entity.BookingStatusInProgress, entity.ActorEngineer},
		{"cancelled is terminal", entity.BookingStatusCancelled, entity.BookingStatusAssigned, entity.ActorAdmin},
		{"cannot cancel completed", entity.BookingStatusCompleted, entity.BookingStatusCancelled, entity.ActorAdmin},
		{"cannot cancel cancelled", entity.BookingStatusCancelled, entity.BookingStatusCancelled, entity.ActorAdmin},
		{"no backwards confirm", entity.BookingStatusAssigned, entity.BookingStatusConfirmed, entity.ActorAdmin},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, CanTransition(tc.from, tc.to, tc.actor))
		})
	}
}

func TestDecide_IllegalEdgeReturnsConflict(t *testing.T) {
	d, err := Decide(entity.BookingStatusPending, entity.BookingStatusCompleted, entity.ActorEngineer, Input{})
	assert.Nil(t, d)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, entity.BookingStatusPending, conflictErr.From)
	assert.Equal(t, entity.BookingStatusCompleted, conflictErr.To)
	assert.Equal(t, entity.ActorEngineer, conflictErr.Actor)
}

func TestDecide_UnknownStatusReturnsValidationError(t *testing.T) {
	d, err := Decide(entity.BookingStatusPending, entity.BookingStatus("shipped"), entity.ActorAdmin, Input{})
	assert.Nil(t, d)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "status", validationErr.Field)
}

func TestDecide_Confirm(t *testing.T) {
	d, err := Decide(entity.BookingStatusPending, entity.BookingStatusConfirmed, entity.ActorAdmin, Input{})
	require.NoError(t, err)

	assert.Equal(t, []Notice{{Kind: entity.NotifyBookingConfirmed, To: AudienceCustomer}}, d.Notices)
	assert.Empty(t, d.SetEngineer)
	assert.False(t, d.ClearEngineer)
}

func TestDecide_AssignRequiresEngineer(t *testing.T) {
	_, err := Decide(entity.BookingStatusConfirmed, entity.BookingStatusAssigned, entity.ActorAdmin, Input{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "engineer_id", validationErr.Field)
}

func TestDecide_AssignSetsEngineerAndNotifies(t *testing.T) {
	d, err := Decide(entity.BookingStatusConfirmed, entity.BookingStatusAssigned, entity.ActorAdmin, Input{EngineerName: "Dana Field"})
	require.NoError(t, err)

	assert.Equal(t, "Dana Field", d.SetEngineer)
	assert.Contains(t, d.Notices, Notice{Kind: entity.NotifyTaskAssigned, To: AudienceEngineer})
	assert.Contains(t, d.Notices, Notice{Kind: entity.NotifyTaskAssigned, To: AudienceAdmin})
}

func TestDecide_AcceptHasNoSideEffects(t *testing.T) {
	d, err := Decide(entity.BookingStatusAssigned, entity.BookingStatusAccepted, entity.ActorEngineer, Input{})
	require.NoError(t, err)

	assert.Empty(t, d.Notices)
	assert.False(t, d.ClearEngineer)
	assert.False(t, d.FreezeReport)
}

func TestDecide_RejectClearsEngineer(t *testing.T) {
	d, err := Decide(entity.BookingStatusAssigned, entity.BookingStatusRejected, entity.ActorEngineer, Input{})
	require.NoError(t, err)

	assert.True(t, d.ClearEngineer)
	assert.Equal(t, []Notice{{Kind: entity.NotifyTaskRejected, To: AudienceAdmin}}, d.Notices)
}

func TestDecide_StartVersusResumeWording(t *testing.T) {
	started, err := Decide(entity.BookingStatusAccepted, entity.BookingStatusInProgress, entity.ActorEngineer, Input{})
	require.NoError(t, err)
	assert.Contains(t, started.Notices, Notice{Kind: entity.NotifyWorkStarted, To: AudienceCustomer})

	resumed, err := Decide(entity.BookingStatusHoldOnWork, entity.BookingStatusInProgress, entity.ActorEngineer, Input{})
	require.NoError(t, err)
	assert.Contains(t, resumed.Notices, Notice{Kind: entity.NotifyWorkResumed, To: AudienceCustomer})
}

func TestDecide_HoldRequiresReason(t *testing.T) {
	_, err := Decide(entity.BookingStatusInProgress, entity.BookingStatusHoldOnWork, entity.ActorEngineer, Input{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "hold_reason", validationErr.Field)
}

func TestDecide_HoldRecordsReason(t *testing.T) {
	d, err := Decide(entity.BookingStatusInProgress, entity.BookingStatusHoldOnWork, entity.ActorEngineer, Input{HoldReason: "waiting for spare part"})
	require.NoError(t, err)

	assert.Equal(t, "waiting for spare part", d.HoldReason)
	assert.Equal(t, "waiting for spare part", d.Remarks)
}

func TestDecide_UnableClearsEngineer(t *testing.T) {
	d, err := Decide(entity.BookingStatusInProgress, entity.BookingStatusUnableToComplete, entity.ActorEngineer, Input{UnableReason: "board beyond repair"})
	require.NoError(t, err)

	assert.True(t, d.ClearEngineer)
	assert.Equal(t, "board beyond repair", d.UnableReason)
	assert.Equal(t, []Notice{{Kind: entity.NotifyWorkUnable, To: AudienceAdmin}}, d.Notices)
}

func TestDecide_CompleteRequiresReportAndProof(t *testing.T) {
	_, err := Decide(entity.BookingStatusInProgress, entity.BookingStatusCompleted, entity.ActorEngineer, Input{})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "completion_report", validationErr.Field)

	_, err = Decide(entity.BookingStatusInProgress, entity.BookingStatusCompleted, entity.ActorEngineer, Input{HasReport: true})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "proof_images", validationErr.Field)
}

func TestDecide_CompleteFreezesReport(t *testing.T) {
	d, err := Decide(entity.BookingStatusInProgress, entity.BookingStatusCompleted, entity.ActorEngineer, Input{HasReport: true, HasProof: true})
	require.NoError(t, err)

	assert.True(t, d.FreezeReport)
	assert.Contains(t, d.Notices, Notice{Kind: entity.NotifyBookingCompleted, To: AudienceCustomer})
	assert.Contains(t, d.Notices, Notice{Kind: entity.NotifyBookingCompleted, To: AudienceAdmin})
}

func TestDecide_CancelRequiresReason(t *testing.T) {
	_, err := Decide(entity.BookingStatusPending, entity.BookingStatusCancelled, entity.ActorAdmin, Input{})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "cancel_reason", validationErr.Field)
}

func TestDecide_CancelClearsEngineerEverywhere(t *testing.T) {
	for _, from := range []entity.BookingStatus{
		entity.BookingStatusAssigned,
		entity.BookingStatusAccepted,
		entity.BookingStatusInProgress,
		entity.BookingStatusHoldOnWork,
	} {
		d, err := Decide(from, entity.BookingStatusCancelled, entity.ActorAdmin, Input{CancelReason: "customer withdrew"})
		require.NoError(t, err, "from %s", from)

		assert.True(t, d.ClearEngineer, "from %s", from)
		assert.Equal(t, "customer withdrew", d.CancelReason)
		assert.Equal(t, []Notice{{Kind: entity.NotifyBookingCancelled, To: AudienceCustomer}}, d.Notices)
	}
}

func TestConflictErrorMessage(t *testing.T) {
	err := &ConflictError{From: entity.BookingStatusPending, To: entity.BookingStatusCompleted, Actor: entity.ActorEngineer}
	assert.Equal(t, "transition pending -> completed is not allowed for actor engineer", err.Error())
}
