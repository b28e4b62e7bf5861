package professionalRepo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"carelink/models"
)

func (r *mongoProfessionalRepo) Create(ctx context.Context, prof *models.Professional) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if prof.ID == "" {
		prof.ID = uuid.New().String()
	}
	now := time.Now()
	prof.CreatedAt = now
	prof.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, prof)
	return err
}

func (r *mongoProfessionalRepo) GetByID(ctx context.Context, id string) (*models.Professional, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

func (r *mongoProfessionalRepo) GetByEmail(ctx context.Context, email string) (*models.Professional, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoProfessionalRepo) GetByTokenHash(ctx context.Context, tokenHash string) (*models.Professional, error) {
	return r.findOne(ctx, bson.M{"security.tokenHash": tokenHash})
}

func (r *mongoProfessionalRepo) findOne(ctx context.Context, filter bson.M) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prof models.Professional
	if err := r.coll.FindOne(ctx, filter).Decode(&prof); err != nil {
		return nil, err
	}
	return &prof, nil
}

// Update applies a patch-style update of allowed profile fields.
func (r *mongoProfessionalRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updateFields := bson.M{}
	for _, field := range []string{"name", "phoneNumber", "specialty", "bio", "profileImage", "consultationFee", "qualifications"} {
		if v, ok := updates[field]; ok {
			updateFields[field] = v
		}
	}
	if len(updateFields) == 0 {
		return nil
	}
	updateFields["updatedAt"] = time.Now()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updateFields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoProfessionalRepo) UpdateAvailability(ctx context.Context, id string, wa models.WeeklyAvailability) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"availability": wa,
		"updatedAt":    time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoProfessionalRepo) SetTokenHash(ctx context.Context, id, tokenHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"security.tokenHash": tokenHash}})
	return err
}

func (r *mongoProfessionalRepo) SetPasswordHash(ctx context.Context, id, passwordHash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"security.passwordHash": passwordHash}})
	return err
}

func (r *mongoProfessionalRepo) AddOrganization(ctx context.Context, id, organizationID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$addToSet": bson.M{"organizationIds": organizationID}})
	return err
}

func (r *mongoProfessionalRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
