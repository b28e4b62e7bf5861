package scheduling

import (
	"testing"

	"carelink/models"
)

func mondayOnly(morningActive, eveningActive bool) models.WeeklyAvailability {
	return models.WeeklyAvailability{Days: []models.DaySchedule{
		{
			Day:         "monday",
			IsAvailable: true,
			Morning:     models.TimeWindow{StartTime: "08:00", EndTime: "11:00", IsActive: morningActive},
			Evening:     models.TimeWindow{StartTime: "15:00", EndTime: "18:00", IsActive: eveningActive},
		},
	}}
}

func TestDayWindows(t *testing.T) {
	wa := mondayOnly(true, true)

	windows := DayWindows(wa, "Monday")
	if len(windows) != 2 {
		t.Fatalf("expected 2 windows, got %d", len(windows))
	}
	if windows[0].StartTime != "08:00" || windows[1].StartTime != "15:00" {
		t.Fatalf("windows out of order: %v", windows)
	}

	if got := DayWindows(wa, "tuesday"); got != nil {
		t.Fatalf("expected no windows for unconfigured day, got %v", got)
	}
}

func TestDayWindowsInactive(t *testing.T) {
	wa := mondayOnly(false, true)
	windows := DayWindows(wa, "monday")
	if len(windows) != 1 || windows[0].StartTime != "15:00" {
		t.Fatalf("expected only the evening window, got %v", windows)
	}

	wa.Days[0].IsAvailable = false
	if got := DayWindows(wa, "monday"); got != nil {
		t.Fatalf("unavailable day yielded windows: %v", got)
	}
}

func TestDayWindowsMissingTimes(t *testing.T) {
	wa := mondayOnly(true, true)
	wa.Days[0].Morning.EndTime = ""
	windows := DayWindows(wa, "monday")
	if len(windows) != 1 || windows[0].StartTime != "15:00" {
		t.Fatalf("window with missing end time should be skipped, got %v", windows)
	}
}

func TestHasAnyActiveWindow(t *testing.T) {
	if !HasAnyActiveWindow(mondayOnly(true, false)) {
		t.Fatal("expected active window to be detected")
	}
	if HasAnyActiveWindow(mondayOnly(false, false)) {
		t.Fatal("expected no active window with both toggled off")
	}
	if HasAnyActiveWindow(models.WeeklyAvailability{}) {
		t.Fatal("expected no active window on empty schedule")
	}

	wa := mondayOnly(true, true)
	wa.Days[0].IsAvailable = false
	if HasAnyActiveWindow(wa) {
		t.Fatal("unavailable day should not count as active")
	}
}

func TestDefaultWeeklyTemplate(t *testing.T) {
	wa := DefaultWeeklyTemplate()
	if len(wa.Days) != 5 {
		t.Fatalf("expected 5 weekdays, got %d", len(wa.Days))
	}
	for _, day := range wa.Days {
		if !day.IsAvailable || !day.Morning.IsActive || !day.Evening.IsActive {
			t.Fatalf("template day %s not fully active", day.Day)
		}
		if day.Morning.StartTime != "09:00" || day.Evening.EndTime != "17:00" {
			t.Fatalf("unexpected template windows for %s", day.Day)
		}
	}
	if DayWindows(wa, "saturday") != nil || DayWindows(wa, "sunday") != nil {
		t.Fatal("template should leave weekends closed")
	}
}
