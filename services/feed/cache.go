package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"carelink/models"
)

// FeedCache holds recently served feed pages so the common "first page"
// request rarely touches Mongo.
type FeedCache interface {
	SetPage(ctx context.Context, cursor string, posts []models.Post) error
	GetPage(ctx context.Context, cursor string) ([]models.Post, bool)
	Invalidate(ctx context.Context) error
}

type RedisFeedCache struct {
	client *redis.Client
}

func NewRedisFeedCache(client *redis.Client) FeedCache {
	return &RedisFeedCache{client: client}
}

const (
	cacheKeyPrefix = "feed:pages:"
	cacheTTL       = 2 * time.Minute
)

func pageKey(cursor string) string {
	if cursor == "" {
		cursor = "head"
	}
	return fmt.Sprintf("%s%s", cacheKeyPrefix, cursor)
}

func (c *RedisFeedCache) SetPage(ctx context.Context, cursor string, posts []models.Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, pageKey(cursor), data, cacheTTL).Err()
}

func (c *RedisFeedCache) GetPage(ctx context.Context, cursor string) ([]models.Post, bool) {
	val, err := c.client.Get(ctx, pageKey(cursor)).Result()
	if err != nil {
		return nil, false
	}
	var posts []models.Post
	if err := json.Unmarshal([]byte(val), &posts); err != nil {
		return nil, false
	}
	return posts, true
}

// Invalidate drops every cached page. Called on writes so readers never see
// a stale page for longer than one request.
func (c *RedisFeedCache) Invalidate(ctx context.Context) error {
	keys, err := c.client.Keys(ctx, cacheKeyPrefix+"*").Result()
	if err != nil || len(keys) == 0 {
		return err
	}
	return c.client.Del(ctx, keys...).Err()
}
