package professionalRepo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carelink/models"
)

// Search finds professionals by free-text name match and/or exact specialty.
func (r *mongoProfessionalRepo) Search(ctx context.Context, query, specialty string, limit int64) ([]models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if query != "" {
		filter["name"] = bson.M{"$regex": primitive.Regex{Pattern: query, Options: "i"}}
	}
	if specialty != "" {
		filter["specialty"] = specialty
	}
	if limit <= 0 || limit > 50 {
		limit = 20
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetProjection(bson.M{"security": 0}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profs []models.Professional
	if err := cursor.All(ctx, &profs); err != nil {
		return nil, err
	}
	return profs, nil
}
