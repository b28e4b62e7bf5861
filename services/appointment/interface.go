package appointment

import (
	"context"

	appointmentRepo "carelink/database/repository/appointment"
	professionalRepo "carelink/database/repository/professional"
	"carelink/models"
	"carelink/services/scheduling"
)

// BookingRequest is a patient's proposed appointment.
type BookingRequest struct {
	ProfessionalID  string `json:"professionalId" binding:"required"`
	OrganizationID  string `json:"organizationId"`
	AppointmentDate string `json:"appointmentDate" binding:"required"` // "YYYY-MM-DD"
	AppointmentTime string `json:"appointmentTime" binding:"required"` // "HH:MM"
	Reason          string `json:"reason"`
	PatientNotes    string `json:"patientNotes"`
}

type AppointmentService interface {
	// Slot queries.
	AvailableSlots(ctx context.Context, professionalID, startDate, endDate string) ([]scheduling.DaySlots, error)

	// Booking.
	Book(ctx context.Context, patientID string, req BookingRequest) (*models.Appointment, error)

	// Professional review.
	Approve(ctx context.Context, professionalID, appointmentID, notes string) (*models.Appointment, error)
	Reject(ctx context.Context, professionalID, appointmentID, reason string) (*models.Appointment, error)
	Reschedule(ctx context.Context, professionalID, appointmentID string, suggested []models.SuggestedTime) (*models.Appointment, error)
	Complete(ctx context.Context, professionalID, appointmentID string) (*models.Appointment, error)

	// Patient actions.
	AcceptReschedule(ctx context.Context, patientID, appointmentID string, chosen models.SuggestedTime) (*models.Appointment, error)
	Cancel(ctx context.Context, actorID, appointmentID string) (*models.Appointment, error)

	// Listings.
	ForPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ForProfessional(ctx context.Context, professionalID string, statuses []string) ([]models.Appointment, error)
}

// DefaultAppointmentService is the production implementation.
type DefaultAppointmentService struct {
	Repo             appointmentRepo.AppointmentRepository
	ProfessionalRepo professionalRepo.ProfessionalRepository
}
