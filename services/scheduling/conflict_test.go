package scheduling

import (
	"testing"

	"carelink/models"
)

func TestHasConflict(t *testing.T) {
	appts := []models.Appointment{
		{ProfessionalID: "prof-1", AppointmentDate: "2026-03-02", AppointmentTime: "09:30", Status: models.StatusRequested},
		{ProfessionalID: "prof-1", AppointmentDate: "2026-03-02", AppointmentTime: "10:00", Status: models.StatusRejected},
		{ProfessionalID: "prof-2", AppointmentDate: "2026-03-02", AppointmentTime: "11:00", Status: models.StatusApproved},
	}

	cases := []struct {
		name string
		prof string
		date string
		time string
		want bool
	}{
		{"live requested blocks", "prof-1", "2026-03-02", "09:30", true},
		{"rejected frees the slot", "prof-1", "2026-03-02", "10:00", false},
		{"other professional does not block", "prof-1", "2026-03-02", "11:00", false},
		{"other day does not block", "prof-1", "2026-03-03", "09:30", false},
		{"other time does not block", "prof-1", "2026-03-02", "09:00", false},
	}
	for _, c := range cases {
		if got := HasConflict(c.prof, c.date, c.time, appts); got != c.want {
			t.Errorf("%s: HasConflict = %v, want %v", c.name, got, c.want)
		}
	}
}
