package professional

import (
	"testing"

	"carelink/models"
)

func window(start, end string, active bool) models.TimeWindow {
	return models.TimeWindow{StartTime: start, EndTime: end, IsActive: active}
}

func TestValidateWeeklyAvailability(t *testing.T) {
	tests := []struct {
		name    string
		wa      models.WeeklyAvailability
		wantErr bool
	}{
		{
			name: "valid week",
			wa: models.WeeklyAvailability{Days: []models.DaySchedule{
				{Day: "monday", IsAvailable: true, Morning: window("08:00", "11:30", true)},
				{Day: "Tuesday", IsAvailable: true, Evening: window("15:00", "18:00", true)},
			}},
		},
		{
			name: "inactive window with bad times passes",
			wa: models.WeeklyAvailability{Days: []models.DaySchedule{
				{Day: "monday", IsAvailable: true, Morning: window("nope", "", false)},
			}},
		},
		{
			name: "unknown day",
			wa: models.WeeklyAvailability{Days: []models.DaySchedule{
				{Day: "funday", IsAvailable: true},
			}},
			wantErr: true,
		},
		{
			name: "duplicate day",
			wa: models.WeeklyAvailability{Days: []models.DaySchedule{
				{Day: "monday", IsAvailable: true},
				{Day: "Monday", IsAvailable: false},
			}},
			wantErr: true,
		},
		{
			name: "active window with malformed start",
			wa: models.WeeklyAvailability{Days: []models.DaySchedule{
				{Day: "wednesday", IsAvailable: true, Morning: window("9:00", "12:00", true)},
			}},
			wantErr: true,
		},
		{
			name: "active window that does not advance",
			wa: models.WeeklyAvailability{Days: []models.DaySchedule{
				{Day: "thursday", IsAvailable: true, Evening: window("14:00", "14:00", true)},
			}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeeklyAvailability(tt.wa)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
