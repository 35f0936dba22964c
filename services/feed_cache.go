// services/feed_cache.go
package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/snapshare/snapshare_backend/models"
)

const (
	recentFeedKey = "posts:recent"
	recentFeedTTL = 30 * time.Second
)

// FeedCache keeps the unfiltered recent-posts feed in Redis for a short
// window. It is a pure optimization: every failure is logged and swallowed,
// and a nil client disables it entirely.
type FeedCache struct {
	client *redis.Client
}

func NewFeedCache(client *redis.Client) *FeedCache {
	return &FeedCache{client: client}
}

// Get returns the cached recent feed, or nil on miss
func (c *FeedCache) Get(ctx context.Context) []models.Post {
	if c == nil || c.client == nil {
		return nil
	}
	payload, err := c.client.Get(ctx, recentFeedKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Feed cache read error: %v", err)
		}
		return nil
	}
	var posts []models.Post
	if err := json.Unmarshal(payload, &posts); err != nil {
		log.Printf("Feed cache decode error: %v", err)
		return nil
	}
	return posts
}

// Set stores the recent feed with a short TTL
func (c *FeedCache) Set(ctx context.Context, posts []models.Post) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(posts)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, recentFeedKey, payload, recentFeedTTL).Err(); err != nil {
		log.Printf("Feed cache write error: %v", err)
	}
}

// Invalidate drops the cached feed. Called whenever a post is created or a
// rating aggregate changes, so the feed never serves stale aggregates past
// the TTL.
func (c *FeedCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, recentFeedKey).Err(); err != nil {
		log.Printf("Feed cache invalidate error: %v", err)
	}
}
