package scheduling

import (
	"strings"
	"time"

	"carelink/models"
)

// DayKeyLayout is the calendar-day key format used for slot matching.
// Comparing day keys instead of full timestamps keeps same-day matching
// immune to time-of-day noise on stored dates.
const DayKeyLayout = "2006-01-02"

// DaySlots is one day's bookable slot start times. Ephemeral, computed per
// query, never persisted.
type DaySlots struct {
	Date           string   `json:"date"`
	AvailableTimes []string `json:"availableTimes"`
}

// DayKey normalizes a timestamp to its "YYYY-MM-DD" calendar-day key.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}

// GenerateAvailableSlots walks every calendar date from startDate through
// endDate inclusive, expands each day's windows into slot start times, and
// removes slots already held by a live appointment on that day. Days left
// with no slots are omitted. When the schedule has no active window anywhere
// the default weekly template is used instead.
//
// Output is deterministic: days ascend by date, times ascend within a day.
func GenerateAvailableSlots(wa models.WeeklyAvailability, existing []models.Appointment, startDate, endDate time.Time) []DaySlots {
	if !HasAnyActiveWindow(wa) {
		wa = DefaultWeeklyTemplate()
	}

	booked := bookedTimesByDay(existing)

	var result []DaySlots
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		weekday := strings.ToLower(d.Weekday().String())
		dayKey := DayKey(d)

		var times []string
		for _, w := range DayWindows(wa, weekday) {
			for _, slot := range WindowSlots(w.StartTime, w.EndTime) {
				if booked[dayKey][slot] {
					continue
				}
				times = append(times, slot)
			}
		}
		if len(times) == 0 {
			continue
		}
		result = append(result, DaySlots{Date: dayKey, AvailableTimes: times})
	}
	return result
}

// bookedTimesByDay indexes live appointment times by calendar-day key.
// Rejected, cancelled, completed and rescheduled records do not hold slots.
func bookedTimesByDay(appts []models.Appointment) map[string]map[string]bool {
	booked := make(map[string]map[string]bool)
	for _, a := range appts {
		if !IsLive(a.Status) {
			continue
		}
		day := booked[a.AppointmentDate]
		if day == nil {
			day = make(map[string]bool)
			booked[a.AppointmentDate] = day
		}
		day[a.AppointmentTime] = true
	}
	return booked
}
