package feed

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"carelink/models"
	"carelink/utils"
)

var ErrPostNotFound = errors.New("post not found")

const defaultPageSize = 20

// Publish stores a new post and drops cached feed pages.
func (s *DefaultFeedService) Publish(ctx context.Context, authorID, authorRole string, data PostData) (*models.Post, error) {
	if strings.TrimSpace(data.Body) == "" {
		return nil, errors.New("post body is required")
	}

	post := &models.Post{
		AuthorID:       authorID,
		AuthorRole:     authorRole,
		Body:           data.Body,
		MediaURL:       data.MediaURL,
		OrganizationID: data.OrganizationID,
	}
	if err := s.Repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	s.invalidate(ctx)
	utils.GetLogger().Info("post published",
		zap.String("postId", post.ID), zap.String("authorId", authorID))
	return post, nil
}

func (s *DefaultFeedService) Delete(ctx context.Context, postID, authorID string) error {
	if err := s.Repo.Delete(ctx, postID, authorID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

// Page serves one feed slice. The cursor is the createdAt of the last post
// from the previous page; an empty cursor means the newest posts.
func (s *DefaultFeedService) Page(ctx context.Context, cursor string, limit int64) (*FeedPage, error) {
	if limit <= 0 {
		limit = defaultPageSize
	}

	if s.Cache != nil {
		if posts, ok := s.Cache.GetPage(ctx, cursor); ok {
			return pageFrom(posts, limit), nil
		}
	}

	var before time.Time
	if cursor != "" {
		parsed, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, fmt.Errorf("invalid cursor: %w", err)
		}
		before = parsed
	}

	posts, err := s.Repo.ListFeed(ctx, before, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}

	if s.Cache != nil {
		if err := s.Cache.SetPage(ctx, cursor, posts); err != nil {
			utils.GetLogger().Warn("feed cache write failed", zap.Error(err))
		}
	}
	return pageFrom(posts, limit), nil
}

func pageFrom(posts []models.Post, limit int64) *FeedPage {
	page := &FeedPage{Posts: posts}
	if int64(len(posts)) == limit && len(posts) > 0 {
		page.NextCursor = posts[len(posts)-1].CreatedAt.Format(time.RFC3339Nano)
	}
	return page
}

func (s *DefaultFeedService) ByAuthor(ctx context.Context, authorID string, limit int64) ([]models.Post, error) {
	return s.Repo.ListByAuthor(ctx, authorID, limit)
}

func (s *DefaultFeedService) Like(ctx context.Context, postID, userID string) error {
	if err := s.Repo.Like(ctx, postID, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to like post: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *DefaultFeedService) Unlike(ctx context.Context, postID, userID string) error {
	if err := s.Repo.Unlike(ctx, postID, userID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrPostNotFound
		}
		return fmt.Errorf("failed to unlike post: %w", err)
	}
	s.invalidate(ctx)
	return nil
}

func (s *DefaultFeedService) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx); err != nil {
		utils.GetLogger().Warn("feed cache invalidation failed", zap.Error(err))
	}
}
