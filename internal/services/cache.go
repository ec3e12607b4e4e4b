package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/AnshRaj112/portfolio-backend/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// commentsCacheKey holds the serialized recent-comments listing.
	commentsCacheKey = "cache:comments:recent"
	// commentsCacheTTL is short so the admin page's 5s polling never sees
	// data much staler than one poll interval even without invalidation.
	commentsCacheTTL = 30 * time.Second
)

// CommentCache caches the public comment listing in Redis. A nil cache (or
// nil client) is a permanent miss, so Redis stays optional.
type CommentCache struct {
	client *redis.Client
}

func NewCommentCache(client *redis.Client) *CommentCache {
	return &CommentCache{client: client}
}

// Get returns the cached listing and whether it was present. A miss or a
// broken cache entry is not an error.
func (c *CommentCache) Get(ctx context.Context) ([]models.Comment, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	val, err := c.client.Get(ctx, commentsCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var comments []models.Comment
	if err := json.Unmarshal([]byte(val), &comments); err != nil {
		return nil, false
	}
	return comments, true
}

// Set stores the listing. Failures are swallowed: the cache is best-effort.
func (c *CommentCache) Set(ctx context.Context, comments []models.Comment) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(comments)
	if err != nil {
		return
	}
	c.client.Set(ctx, commentsCacheKey, data, commentsCacheTTL)
}

// Invalidate drops the cached listing after a create or delete.
func (c *CommentCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	c.client.Del(ctx, commentsCacheKey)
}
