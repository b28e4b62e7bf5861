package organizationRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"carelink/database"
	"carelink/models"
)

type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id string) (*models.Organization, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) error
	List(ctx context.Context, limit int64) ([]models.Organization, error)
	EnsureIndexes() error
}

type mongoOrganizationRepo struct {
	coll *mongo.Collection
}

// NewMongoOrganizationRepo constructs a new MongoDB OrganizationRepository.
func NewMongoOrganizationRepo() OrganizationRepository {
	return &mongoOrganizationRepo{
		coll: database.DB().Collection("organizations"),
	}
}

func (r *mongoOrganizationRepo) Create(ctx context.Context, org *models.Organization) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if org.ID == "" {
		org.ID = uuid.New().String()
	}
	now := time.Now()
	org.CreatedAt = now
	org.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, org)
	return err
}

func (r *mongoOrganizationRepo) GetByID(ctx context.Context, id string) (*models.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var org models.Organization
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&org); err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *mongoOrganizationRepo) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	updateFields := bson.M{}
	for _, field := range []string{"name", "type", "address", "phoneNumber", "website", "description", "logoImage"} {
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

func (r *mongoOrganizationRepo) List(ctx context.Context, limit int64) ([]models.Organization, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 100 {
		limit = 50
	}
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(limit).SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var orgs []models.Organization
	if err := cursor.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}

// EnsureIndexes creates the necessary indexes on the organizations collection.
func (r *mongoOrganizationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("name_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create organization indexes: %w", err)
	}
	return nil
}
