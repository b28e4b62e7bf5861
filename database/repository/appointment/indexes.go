package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the appointments collection.
// The partial unique slot index is the authoritative double-booking guard:
// it covers only documents with live=true, so rejected, cancelled, completed
// and rescheduled records release their slot for rebooking.
func (r *mongoAppointmentRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// One live appointment per (professional, date, time).
		{
			Keys: bson.D{
				{Key: "professionalId", Value: 1},
				{Key: "appointmentDate", Value: 1},
				{Key: "appointmentTime", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_live_slot").
				SetPartialFilterExpression(bson.D{{Key: "live", Value: true}}),
		},
		// Primary query pattern: a professional's appointments over a date range.
		{
			Keys:    bson.D{{Key: "professionalId", Value: 1}, {Key: "appointmentDate", Value: 1}},
			Options: options.Index().SetName("professional_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "patientId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("patient_created_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create appointment indexes: %w", err)
	}
	return nil
}
