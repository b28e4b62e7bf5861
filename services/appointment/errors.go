package appointment

import "errors"

var (
	// ErrSlotTaken means a live appointment already holds the requested
	// (professional, date, time) slot. Surfaced to clients as a 400.
	ErrSlotTaken = errors.New("time slot is not available")

	// ErrInvalidInput covers malformed dates, times, misaligned slots and
	// missing required fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidTransition means the appointment's current status does not
	// permit the requested action.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotFound means the appointment does not exist.
	ErrNotFound = errors.New("appointment not found")

	// ErrForbidden means the actor does not own the appointment side they
	// are trying to act on.
	ErrForbidden = errors.New("not allowed to modify this appointment")
)
