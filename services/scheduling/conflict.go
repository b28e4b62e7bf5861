package scheduling

import "carelink/models"

// HasConflict reports whether a live appointment already occupies the exact
// (professional, day, time) slot. This is the fast-path gate before booking;
// the appointment repository's unique slot index is the authoritative guard
// against two concurrent requests both passing this check.
func HasConflict(professionalID, date, timeStr string, appts []models.Appointment) bool {
	for _, a := range appts {
		if a.ProfessionalID != professionalID {
			continue
		}
		if a.AppointmentDate != date || a.AppointmentTime != timeStr {
			continue
		}
		if IsLive(a.Status) {
			return true
		}
	}
	return false
}
