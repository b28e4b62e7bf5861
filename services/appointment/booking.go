package appointment

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	appointmentRepo "carelink/database/repository/appointment"
	"carelink/models"
	"carelink/services/scheduling"
	"carelink/utils"
)

// validateSlot checks the request's date and time shapes: ISO date, strict
// HH:MM, and alignment to the booking granularity.
func validateSlot(date, timeStr string) error {
	if _, err := time.Parse(scheduling.DayKeyLayout, date); err != nil {
		return fmt.Errorf("%w: appointmentDate %q is not YYYY-MM-DD", ErrInvalidInput, date)
	}
	mins, err := scheduling.TimeToMinutes(timeStr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if mins%scheduling.SlotInterval != 0 {
		return fmt.Errorf("%w: appointmentTime %q is not on a %d-minute boundary", ErrInvalidInput, timeStr, scheduling.SlotInterval)
	}
	return nil
}

// Book creates a requested appointment for the patient. The in-memory
// conflict check gives racing callers a clean error; the unique slot index
// settles whichever race the check misses.
func (s *DefaultAppointmentService) Book(ctx context.Context, patientID string, req BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	if err := validateSlot(req.AppointmentDate, req.AppointmentTime); err != nil {
		return nil, err
	}

	if _, err := s.ProfessionalRepo.GetByID(ctx, req.ProfessionalID); err != nil {
		return nil, fmt.Errorf("failed to fetch professional %s: %w", req.ProfessionalID, err)
	}

	sameDay, err := s.Repo.ListLiveByProfessionalRange(ctx, req.ProfessionalID, req.AppointmentDate, req.AppointmentDate)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing appointments: %w", err)
	}
	if scheduling.HasConflict(req.ProfessionalID, req.AppointmentDate, req.AppointmentTime, sameDay) {
		return nil, ErrSlotTaken
	}

	appt := &models.Appointment{
		ProfessionalID:  req.ProfessionalID,
		PatientID:       patientID,
		OrganizationID:  req.OrganizationID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          models.StatusRequested,
		Live:            true,
		Reason:          req.Reason,
		PatientNotes:    req.PatientNotes,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		if appointmentRepo.IsDuplicateSlotErr(err) {
			logger.Info("booking lost slot race",
				zap.String("professionalId", req.ProfessionalID),
				zap.String("date", req.AppointmentDate),
				zap.String("time", req.AppointmentTime))
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	logger.Info("appointment requested",
		zap.String("appointmentId", appt.ID),
		zap.String("professionalId", appt.ProfessionalID),
		zap.String("date", appt.AppointmentDate),
		zap.String("time", appt.AppointmentTime))
	return appt, nil
}

func (s *DefaultAppointmentService) ForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.Repo.ListByPatient(ctx, patientID)
}

func (s *DefaultAppointmentService) ForProfessional(ctx context.Context, professionalID string, statuses []string) ([]models.Appointment, error) {
	return s.Repo.ListByProfessional(ctx, professionalID, statuses)
}
