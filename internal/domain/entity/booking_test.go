package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminal(t *testing.T) {
	terminal := map[BookingStatus]bool{
		BookingStatusCompleted: true,
		BookingStatusCancelled: true,
	}

	for _, status := range AllBookingStatuses {
		b := &Booking{Status: status}
		assert.Equal(t, terminal[status], b.IsTerminal(), "status %s", status)
	}
}

func TestStatusRequiresEngineer(t *testing.T) {
	withEngineer := map[BookingStatus]bool{
		BookingStatusAssigned:   true,
		BookingStatusAccepted:   true,
		BookingStatusInProgress: true,
		BookingStatusHoldOnWork: true,
		BookingStatusCompleted:  true,
	}

	for _, status := range AllBookingStatuses {
		assert.Equal(t, withEngineer[status], StatusRequiresEngineer(status), "status %s", status)
	}
}

func TestCheckInvariants_EngineerAssignment(t *testing.T) {
	ok := &Booking{Status: BookingStatusAccepted, AssignedEngineer: "Dana Field"}
	assert.NoError(t, ok.CheckInvariants())

	missing := &Booking{Status: BookingStatusAccepted}
	assert.ErrorIs(t, missing.CheckInvariants(), ErrEngineerAssignmentMismatch)

	lingering := &Booking{Status: BookingStatusRejected, AssignedEngineer: "Dana Field"}
	assert.ErrorIs(t, lingering.CheckInvariants(), ErrEngineerAssignmentMismatch)

	cancelledWithEngineer := &Booking{Status: BookingStatusCancelled, AssignedEngineer: "Dana Field", CancelReason: "customer withdrew"}
	assert.ErrorIs(t, cancelledWithEngineer.CheckInvariants(), ErrEngineerAssignmentMismatch)
}

func TestCheckInvariants_ReasonFields(t *testing.T) {
	held := &Booking{Status: BookingStatusHoldOnWork, AssignedEngineer: "Dana Field", HoldReason: "waiting for part"}
	assert.NoError(t, held.CheckInvariants())

	staleHold := &Booking{Status: BookingStatusInProgress, AssignedEngineer: "Dana Field", HoldReason: "waiting for part"}
	assert.ErrorIs(t, staleHold.CheckInvariants(), ErrReasonStatusMismatch)

	unable := &Booking{Status: BookingStatusUnableToComplete, UnableReason: "board beyond repair"}
	assert.NoError(t, unable.CheckInvariants())

	cancelled := &Booking{Status: BookingStatusCancelled, CancelReason: "customer withdrew"}
	assert.NoError(t, cancelled.CheckInvariants())

	wrongReason := &Booking{Status: BookingStatusCancelled, UnableReason: "board beyond repair"}
	assert.ErrorIs(t, wrongReason.CheckInvariants(), ErrReasonStatusMismatch)
}

func TestIsValidBookingStatus(t *testing.T) {
	for _, status := range AllBookingStatuses {
		assert.True(t, IsValidBookingStatus(status))
	}
	assert.False(t, IsValidBookingStatus(BookingStatus("shipped")))
	assert.False(t, IsValidBookingStatus(BookingStatus("")))
}
