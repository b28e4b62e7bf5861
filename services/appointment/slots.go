package appointment

import (
	"context"
	"fmt"
	"time"

	"carelink/services/scheduling"
)

// maxSlotRangeDays caps a single slot query. Clients page wider ranges.
const maxSlotRangeDays = 92

// AvailableSlots computes the bookable slots for a professional between two
// ISO dates inclusive. The professional's stored weekly availability is used
// when it has any active window; otherwise the default template applies.
func (s *DefaultAppointmentService) AvailableSlots(ctx context.Context, professionalID, startDate, endDate string) ([]scheduling.DaySlots, error) {
	start, err := time.Parse(scheduling.DayKeyLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("%w: startDate %q is not YYYY-MM-DD", ErrInvalidInput, startDate)
	}
	end, err := time.Parse(scheduling.DayKeyLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("%w: endDate %q is not YYYY-MM-DD", ErrInvalidInput, endDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: endDate precedes startDate", ErrInvalidInput)
	}
	if end.Sub(start) > maxSlotRangeDays*24*time.Hour {
		return nil, fmt.Errorf("%w: date range exceeds %d days", ErrInvalidInput, maxSlotRangeDays)
	}

	prof, err := s.ProfessionalRepo.GetByID(ctx, professionalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch professional %s: %w", professionalID, err)
	}

	existing, err := s.Repo.ListLiveByProfessionalRange(ctx, professionalID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch appointments for %s: %w", professionalID, err)
	}

	return scheduling.GenerateAvailableSlots(prof.Availability, existing, start, end), nil
}
