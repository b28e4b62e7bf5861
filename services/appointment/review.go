package appointment

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	appointmentRepo "carelink/database/repository/appointment"
	"carelink/models"
	"carelink/services/scheduling"
	"carelink/utils"
)

// loadOwned fetches an appointment and verifies the actor owns the given
// side of it.
func (s *DefaultAppointmentService) loadOwned(ctx context.Context, appointmentID, actorID string, professionalSide bool) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, ErrNotFound
	}
	owner := appt.PatientID
	if professionalSide {
		owner = appt.ProfessionalID
	}
	if owner != actorID {
		return nil, ErrForbidden
	}
	return appt, nil
}

func (s *DefaultAppointmentService) transitionAndSave(ctx context.Context, appt *models.Appointment, to string) (*models.Appointment, error) {
	if err := scheduling.Transition(appt, to); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}
	if err := s.Repo.Update(ctx, appt); err != nil {
		return nil, fmt.Errorf("failed to save appointment %s: %w", appt.ID, err)
	}
	utils.GetLogger().Info("appointment status changed",
		zap.String("appointmentId", appt.ID),
		zap.String("status", appt.Status))
	return appt, nil
}

// Approve confirms a requested appointment, optionally attaching notes.
func (s *DefaultAppointmentService) Approve(ctx context.Context, professionalID, appointmentID, notes string) (*models.Appointment, error) {
	appt, err := s.loadOwned(ctx, appointmentID, professionalID, true)
	if err != nil {
		return nil, err
	}
	if notes != "" {
		appt.ProfessionalNotes = notes
	}
	return s.transitionAndSave(ctx, appt, models.StatusApproved)
}

// Reject declines a requested appointment. A reason is required.
func (s *DefaultAppointmentService) Reject(ctx context.Context, professionalID, appointmentID, reason string) (*models.Appointment, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", ErrInvalidInput)
	}
	appt, err := s.loadOwned(ctx, appointmentID, professionalID, true)
	if err != nil {
		return nil, err
	}
	appt.RejectionReason = reason
	return s.transitionAndSave(ctx, appt, models.StatusRejected)
}

// Reschedule proposes alternate slots for a requested appointment. The
// record moves to rescheduled and releases its original slot until the
// patient answers.
func (s *DefaultAppointmentService) Reschedule(ctx context.Context, professionalID, appointmentID string, suggested []models.SuggestedTime) (*models.Appointment, error) {
	if len(suggested) == 0 {
		return nil, fmt.Errorf("%w: at least one suggested time is required", ErrInvalidInput)
	}
	for _, st := range suggested {
		if err := validateSlot(st.Date, st.Time); err != nil {
			return nil, err
		}
	}
	appt, err := s.loadOwned(ctx, appointmentID, professionalID, true)
	if err != nil {
		return nil, err
	}
	appt.SuggestedTimes = suggested
	return s.transitionAndSave(ctx, appt, models.StatusRescheduled)
}

// Complete closes out an approved appointment after it has taken place.
func (s *DefaultAppointmentService) Complete(ctx context.Context, professionalID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.loadOwned(ctx, appointmentID, professionalID, true)
	if err != nil {
		return nil, err
	}
	return s.transitionAndSave(ctx, appt, models.StatusCompleted)
}

// AcceptReschedule moves a rescheduled appointment back to requested on one
// of the professional's suggested slots. The new slot is conflict-checked
// and guarded by the unique index like a fresh booking.
func (s *DefaultAppointmentService) AcceptReschedule(ctx context.Context, patientID, appointmentID string, chosen models.SuggestedTime) (*models.Appointment, error) {
	appt, err := s.loadOwned(ctx, appointmentID, patientID, false)
	if err != nil {
		return nil, err
	}

	var offered bool
	for _, st := range appt.SuggestedTimes {
		if st.Date == chosen.Date && st.Time == chosen.Time {
			offered = true
			break
		}
	}
	if !offered {
		return nil, fmt.Errorf("%w: chosen time was not among the suggestions", ErrInvalidInput)
	}

	sameDay, err := s.Repo.ListLiveByProfessionalRange(ctx, appt.ProfessionalID, chosen.Date, chosen.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing appointments: %w", err)
	}
	if scheduling.HasConflict(appt.ProfessionalID, chosen.Date, chosen.Time, sameDay) {
		return nil, ErrSlotTaken
	}

	appt.AppointmentDate = chosen.Date
	appt.AppointmentTime = chosen.Time
	appt.SuggestedTimes = nil

	updated, err := s.transitionAndSave(ctx, appt, models.StatusRequested)
	if err != nil && appointmentRepo.IsDuplicateSlotErr(err) {
		return nil, ErrSlotTaken
	}
	return updated, err
}

// Cancel terminates a live appointment. Either side may cancel.
func (s *DefaultAppointmentService) Cancel(ctx context.Context, actorID, appointmentID string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, ErrNotFound
	}
	if appt.PatientID != actorID && appt.ProfessionalID != actorID {
		return nil, ErrForbidden
	}
	return s.transitionAndSave(ctx, appt, models.StatusCancelled)
}
