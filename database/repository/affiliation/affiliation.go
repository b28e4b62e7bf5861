package affiliationRepo

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

type AffiliationRepository interface {
	Create(ctx context.Context, req *models.AffiliationRequest) error
	GetByID(ctx context.Context, id string) (*models.AffiliationRequest, error)
	SetStatus(ctx context.Context, id, status, reviewNote string) error
	ListByOrganization(ctx context.Context, organizationID, status string) ([]models.AffiliationRequest, error)
	ListByProfessional(ctx context.Context, professionalID string) ([]models.AffiliationRequest, error)
	EnsureIndexes() error
}

// IsDuplicateRequestErr reports whether err is the unique-index violation
// raised when a pending request already exists for the same pair.
func IsDuplicateRequestErr(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

type mongoAffiliationRepo struct {
	coll *mongo.Collection
}

// NewMongoAffiliationRepo constructs a new MongoDB AffiliationRepository.
func NewMongoAffiliationRepo() AffiliationRepository {
	return &mongoAffiliationRepo{
		coll: database.DB().Collection("affiliations"),
	}
}

func (r *mongoAffiliationRepo) Create(ctx context.Context, req *models.AffiliationRequest) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, req)
	return err
}

func (r *mongoAffiliationRepo) GetByID(ctx context.Context, id string) (*models.AffiliationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var req models.AffiliationRequest
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *mongoAffiliationRepo) SetStatus(ctx context.Context, id, status, reviewNote string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{
		"status":     status,
		"reviewNote": reviewNote,
		"updatedAt":  time.Now(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoAffiliationRepo) ListByOrganization(ctx context.Context, organizationID, status string) ([]models.AffiliationRequest, error) {
	filter := bson.M{"organizationId": organizationID}
	if status != "" {
		filter["status"] = status
	}
	return r.find(ctx, filter)
}

func (r *mongoAffiliationRepo) ListByProfessional(ctx context.Context, professionalID string) ([]models.AffiliationRequest, error) {
	return r.find(ctx, bson.M{"professionalId": professionalID})
}

func (r *mongoAffiliationRepo) find(ctx context.Context, filter bson.M) ([]models.AffiliationRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reqs []models.AffiliationRequest
	if err := cursor.All(ctx, &reqs); err != nil {
		return nil, err
	}
	return reqs, nil
}

// EnsureIndexes creates the necessary indexes on the affiliations collection.
// The partial unique index stops a professional from holding more than one
// pending request per organization.
func (r *mongoAffiliationRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "professionalId", Value: 1}, {Key: "organizationId", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("unique_pending_request").
				SetPartialFilterExpression(bson.D{{Key: "status", Value: models.AffiliationPending}}),
		},
		{
			Keys:    bson.D{{Key: "organizationId", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("organization_status_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create affiliation indexes: %w", err)
	}
	return nil
}
