package feed

import (
	"context"

	postRepo "carelink/database/repository/post"
	"carelink/models"
)

// PostData is the payload accepted when publishing a post.
type PostData struct {
	Body           string `json:"body" binding:"required"`
	MediaURL       string `json:"mediaUrl"`
	OrganizationID string `json:"organizationId"`
}

// FeedPage is one cursor-paginated slice of the feed, newest first.
type FeedPage struct {
	Posts      []models.Post `json:"posts"`
	NextCursor string        `json:"nextCursor,omitempty"`
}

type FeedService interface {
	Publish(ctx context.Context, authorID, authorRole string, data PostData) (*models.Post, error)
	Delete(ctx context.Context, postID, authorID string) error
	Page(ctx context.Context, cursor string, limit int64) (*FeedPage, error)
	ByAuthor(ctx context.Context, authorID string, limit int64) ([]models.Post, error)
	Like(ctx context.Context, postID, userID string) error
	Unlike(ctx context.Context, postID, userID string) error
}

// DefaultFeedService is the production implementation.
type DefaultFeedService struct {
	Repo  postRepo.PostRepository
	Cache FeedCache
}
