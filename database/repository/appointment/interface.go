package appointmentRepo

import (
	"context"

	"carelink/database"
	"carelink/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appt *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	Update(ctx context.Context, appt *models.Appointment) error
	ListLiveByProfessionalRange(ctx context.Context, professionalID, startDate, endDate string) ([]models.Appointment, error)
	ListByProfessional(ctx context.Context, professionalID string, statuses []string) ([]models.Appointment, error)
	ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error)
	ListApprovedBefore(ctx context.Context, date string) ([]models.Appointment, error)
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}

// IsDuplicateSlotErr reports whether an insert failed because a live
// appointment already holds the same (professional, date, time) slot. This
// is how two racing bookings are resolved: the loser sees E11000 from the
// unique slot index.
func IsDuplicateSlotErr(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
