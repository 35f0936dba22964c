// services/feed_service.go
package services

import (
	"context"
	"strings"

	"github.com/snapshare/snapshare_backend/config"
	"github.com/snapshare/snapshare_backend/models"
	"github.com/snapshare/snapshare_backend/repositories"
)

// FeedLimit is a fixed ceiling on feed results, not a paging cursor
const FeedLimit = 50

// Post fields the substring search runs over. peopleText is the
// precomputed lowercase join of the people list.
var searchFields = []string{"title", "caption", "locationText", "peopleText"}

// FeedService serves ordered, filterable views over posts
type FeedService struct {
	store repositories.DocumentStore
	cache *FeedCache
}

func NewFeedService(store repositories.DocumentStore, cache *FeedCache) *FeedService {
	return &FeedService{store: store, cache: cache}
}

// ListPosts returns up to FeedLimit posts, newest first. An empty search
// returns the unfiltered recent feed (cache-backed); otherwise posts whose
// title, caption, locationText or peopleText contains the search text
// case-insensitively. Matching is plain substring, not tokenized or ranked.
func (s *FeedService) ListPosts(ctx context.Context, search string) ([]models.Post, error) {
	search = strings.ToLower(strings.TrimSpace(search))

	if search == "" {
		if cached := s.cache.Get(ctx); cached != nil {
			return cached, nil
		}
	}

	query := repositories.Query{
		SortField: "createdAt",
		SortDesc:  true,
		Limit:     FeedLimit,
	}
	if search != "" {
		query.Search = &repositories.SearchClause{Fields: searchFields, Text: search}
	}

	posts := []models.Post{}
	if err := s.store.Find(ctx, config.PostsCollection, query, &posts); err != nil {
		return nil, err
	}

	if search == "" {
		s.cache.Set(ctx, posts)
	}

	return posts, nil
}
