package entity

import "errors"

var (
	// ErrEngineerAssignmentMismatch means assignedEngineer is set for a
	// status that must not carry one, or missing for a status that must.
	ErrEngineerAssignmentMismatch = errors.New("engineer assignment does not match booking status")

	// ErrReasonStatusMismatch means a hold/unable/cancel reason is present
	// for a status it does not belong to, or more than one reason is set.
	ErrReasonStatusMismatch = errors.New("reason field does not match booking status")
)
