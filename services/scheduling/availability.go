package scheduling

import (
	"strings"

	"carelink/models"
)

// DayWindows returns the open windows configured for the given weekday name
// (case-insensitive). A day that is absent, marked unavailable, or has no
// active window contributes nothing. Morning precedes evening.
func DayWindows(wa models.WeeklyAvailability, weekday string) []models.TimeWindow {
	for _, day := range wa.Days {
		if !strings.EqualFold(day.Day, weekday) {
			continue
		}
		if !day.IsAvailable {
			return nil
		}
		var windows []models.TimeWindow
		if windowUsable(day.Morning) {
			windows = append(windows, day.Morning)
		}
		if windowUsable(day.Evening) {
			windows = append(windows, day.Evening)
		}
		return windows
	}
	return nil
}

func windowUsable(w models.TimeWindow) bool {
	return w.IsActive && w.StartTime != "" && w.EndTime != ""
}

// HasAnyActiveWindow reports whether the schedule offers at least one usable
// window on some available day. When false the caller should substitute
// DefaultWeeklyTemplate wholesale.
func HasAnyActiveWindow(wa models.WeeklyAvailability) bool {
	for _, day := range wa.Days {
		if !day.IsAvailable {
			continue
		}
		if windowUsable(day.Morning) || windowUsable(day.Evening) {
			return true
		}
	}
	return false
}

// DefaultWeeklyTemplate returns the fallback schedule used when a
// professional has configured no active availability: Monday through Friday,
// 09:00-12:00 and 14:00-17:00. Weekends are closed.
func DefaultWeeklyTemplate() models.WeeklyAvailability {
	weekdays := []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
	days := make([]models.DaySchedule, 0, len(weekdays))
	for _, name := range weekdays {
		days = append(days, models.DaySchedule{
			Day:         name,
			IsAvailable: true,
			Morning:     models.TimeWindow{StartTime: "09:00", EndTime: "12:00", IsActive: true},
			Evening:     models.TimeWindow{StartTime: "14:00", EndTime: "17:00", IsActive: true},
		})
	}
	return models.WeeklyAvailability{Days: days}
}
