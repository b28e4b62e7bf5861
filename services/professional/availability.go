package professional

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"carelink/models"
	"carelink/services/scheduling"
	"carelink/utils"
)

var validDays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// GetAvailability returns the stored weekly schedule. A schedule with no
// active window is served as-is; the slot generator substitutes the default
// template at query time.
func (s *DefaultProfessionalService) GetAvailability(ctx context.Context, id string) (*models.WeeklyAvailability, error) {
	prof, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("professional not found: %w", err)
	}
	return &prof.Availability, nil
}

// UpdateAvailability validates and stores a replacement weekly schedule.
func (s *DefaultProfessionalService) UpdateAvailability(ctx context.Context, id string, wa models.WeeklyAvailability) (*models.WeeklyAvailability, error) {
	if err := ValidateWeeklyAvailability(wa); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateAvailability(ctx, id, wa); err != nil {
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}
	utils.GetLogger().Info("availability updated", zap.String("professionalId", id))
	return &wa, nil
}

// ValidateWeeklyAvailability rejects schedules with unknown or repeated day
// names and active windows whose times do not parse or do not advance.
func ValidateWeeklyAvailability(wa models.WeeklyAvailability) error {
	seen := map[string]bool{}
	for _, day := range wa.Days {
		name := strings.ToLower(day.Day)
		if !validDays[name] {
			return fmt.Errorf("unknown day name %q", day.Day)
		}
		if seen[name] {
			return fmt.Errorf("duplicate entry for %s", name)
		}
		seen[name] = true

		for _, w := range []struct {
			label  string
			window models.TimeWindow
		}{{"morning", day.Morning}, {"evening", day.Evening}} {
			if !w.window.IsActive {
				continue
			}
			start, err := scheduling.TimeToMinutes(w.window.StartTime)
			if err != nil {
				return fmt.Errorf("%s %s window: %w", name, w.label, err)
			}
			end, err := scheduling.TimeToMinutes(w.window.EndTime)
			if err != nil {
				return fmt.Errorf("%s %s window: %w", name, w.label, err)
			}
			if start >= end {
				return fmt.Errorf("%s %s window: start %s is not before end %s", name, w.label, w.window.StartTime, w.window.EndTime)
			}
		}
	}
	return nil
}
