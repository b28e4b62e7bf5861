package postRepo

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

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Delete(ctx context.Context, id, authorID string) error
	ListFeed(ctx context.Context, before time.Time, limit int64) ([]models.Post, error)
	ListByAuthor(ctx context.Context, authorID string, limit int64) ([]models.Post, error)
	Like(ctx context.Context, id, userID string) error
	Unlike(ctx context.Context, id, userID string) error
	EnsureIndexes() error
}

type mongoPostRepo struct {
	coll *mongo.Collection
}

// NewMongoPostRepo constructs a new MongoDB PostRepository.
func NewMongoPostRepo() PostRepository {
	return &mongoPostRepo{
		coll: database.DB().Collection("posts"),
	}
}

func (r *mongoPostRepo) Create(ctx context.Context, post *models.Post) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, post)
	return err
}

func (r *mongoPostRepo) GetByID(ctx context.Context, id string) (*models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var post models.Post
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *mongoPostRepo) Delete(ctx context.Context, id, authorID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id, "authorId": authorID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// ListFeed returns posts created strictly before the cursor, newest first.
func (r *mongoPostRepo) ListFeed(ctx context.Context, before time.Time, limit int64) ([]models.Post, error) {
	filter := bson.M{}
	if !before.IsZero() {
		filter["createdAt"] = bson.M{"$lt": before}
	}
	return r.find(ctx, filter, limit)
}

func (r *mongoPostRepo) ListByAuthor(ctx context.Context, authorID string, limit int64) ([]models.Post, error) {
	return r.find(ctx, bson.M{"authorId": authorID}, limit)
}

func (r *mongoPostRepo) find(ctx context.Context, filter bson.M, limit int64) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if limit <= 0 || limit > 50 {
		limit = 20
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []models.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// Like records a like once per user; LikeCount follows the LikedBy set.
func (r *mongoPostRepo) Like(ctx context.Context, id, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "likedBy": bson.M{"$ne": userID}},
		bson.M{"$addToSet": bson.M{"likedBy": userID}, "$inc": bson.M{"likeCount": 1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Already liked, or post missing. Distinguish for the caller.
		if exists, err := r.exists(ctx, id); err != nil {
			return err
		} else if !exists {
			return mongo.ErrNoDocuments
		}
	}
	return nil
}

func (r *mongoPostRepo) Unlike(ctx context.Context, id, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id, "likedBy": userID},
		bson.M{"$pull": bson.M{"likedBy": userID}, "$inc": bson.M{"likeCount": -1}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if exists, err := r.exists(ctx, id); err != nil {
			return err
		} else if !exists {
			return mongo.ErrNoDocuments
		}
	}
	return nil
}

func (r *mongoPostRepo) exists(ctx context.Context, id string) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// EnsureIndexes creates the necessary indexes on the posts collection.
func (r *mongoPostRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("created_idx"),
		},
		{
			Keys:    bson.D{{Key: "authorId", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("author_created_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create post indexes: %w", err)
	}
	return nil
}
