package appointmentRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carelink/models"
)

func (r *mongoAppointmentRepo) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, err
	}
	return appts, nil
}

// ListLiveByProfessionalRange returns the requested/approved appointments for
// a professional whose day key falls within [startDate, endDate]. Day keys
// are "YYYY-MM-DD", so lexicographic range comparison is chronological.
func (r *mongoAppointmentRepo) ListLiveByProfessionalRange(ctx context.Context, professionalID, startDate, endDate string) ([]models.Appointment, error) {
	filter := bson.M{
		"professionalId":  professionalID,
		"live":            true,
		"appointmentDate": bson.M{"$gte": startDate, "$lte": endDate},
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{
		{Key: "appointmentDate", Value: 1},
		{Key: "appointmentTime", Value: 1},
	}))
}

func (r *mongoAppointmentRepo) ListByProfessional(ctx context.Context, professionalID string, statuses []string) ([]models.Appointment, error) {
	filter := bson.M{"professionalId": professionalID}
	if len(statuses) > 0 {
		filter["status"] = bson.M{"$in": statuses}
	}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{
		{Key: "appointmentDate", Value: 1},
		{Key: "appointmentTime", Value: 1},
	}))
}

func (r *mongoAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	filter := bson.M{"patientId": patientID}
	return r.find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
}

// ListApprovedBefore returns approved appointments dated strictly before the
// given day key. Used by the completion sweep.
func (r *mongoAppointmentRepo) ListApprovedBefore(ctx context.Context, date string) ([]models.Appointment, error) {
	filter := bson.M{
		"status":          models.StatusApproved,
		"appointmentDate": bson.M{"$lt": date},
	}
	return r.find(ctx, filter)
}
