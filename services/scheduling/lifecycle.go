package scheduling

import (
	"fmt"

	"carelink/models"
)

// IsLive reports whether an appointment in the given status occupies its
// slot. Only requested and approved appointments block rebooking.
func IsLive(status string) bool {
	return status == models.StatusRequested || status == models.StatusApproved
}

// transitions enumerates the legal status moves. Requested appointments are
// reviewed by the professional; rescheduled ones await the patient's answer;
// approved ones run to a terminal outcome. Rejected, completed and cancelled
// are terminal.
var transitions = map[string][]string{
	models.StatusRequested:   {models.StatusApproved, models.StatusRejected, models.StatusRescheduled, models.StatusCancelled},
	models.StatusRescheduled: {models.StatusRequested, models.StatusCancelled},
	models.StatusApproved:    {models.StatusCompleted, models.StatusCancelled},
}

// CanTransition reports whether moving an appointment from one status to
// another is legal.
func CanTransition(from, to string) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition validates and applies a status change in place, keeping the
// Live marker in sync. The record is untouched on error.
func Transition(appt *models.Appointment, to string) error {
	if !CanTransition(appt.Status, to) {
		return fmt.Errorf("cannot move appointment from %s to %s", appt.Status, to)
	}
	appt.Status = to
	appt.Live = IsLive(to)
	return nil
}
