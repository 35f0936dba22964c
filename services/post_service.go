// services/post_service.go
package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/snapshare/snapshare_backend/apperrors"
	"github.com/snapshare/snapshare_backend/config"
	"github.com/snapshare/snapshare_backend/models"
	"github.com/snapshare/snapshare_backend/repositories"
)

// Placeholder identities used when the caller does not name one. Caller
// identity is free text, there is no account system behind it.
const (
	DefaultCreatorID  = "creator-demo"
	DefaultConsumerID = "consumer-demo"
)

// PostService creates posts and serves single-post lookups
type PostService struct {
	store repositories.DocumentStore
	cache *FeedCache
}

func NewPostService(store repositories.DocumentStore, cache *FeedCache) *PostService {
	return &PostService{store: store, cache: cache}
}

// CreatePost validates and stores a new post. The image must already have
// been uploaded through the blob store; an empty imageUrl is rejected.
func (s *PostService) CreatePost(ctx context.Context, req models.CreatePostRequest) (string, error) {
	imageURL := strings.TrimSpace(req.ImageURL)
	if imageURL == "" {
		return "", apperrors.NewValidationError("imageUrl is required")
	}

	creatorID := strings.TrimSpace(req.CreatorID)
	if creatorID == "" {
		creatorID = DefaultCreatorID
	}

	people := normalizePeople(req.People)

	// The document id is also the partition key, so both fields carry the
	// same freshly generated value.
	postID := uuid.NewString()

	post := models.Post{
		ID:           postID,
		PostID:       postID,
		CreatorID:    creatorID,
		CreatedAt:    time.Now().UTC(),
		Title:        strings.TrimSpace(req.Title),
		Caption:      strings.TrimSpace(req.Caption),
		LocationText: strings.TrimSpace(req.LocationText),
		People:       people,
		PeopleText:   strings.ToLower(strings.Join(people, ", ")),
		ImageURL:     imageURL,
		RatingAvg:    0,
		RatingCount:  0,
	}

	if err := s.store.Create(ctx, config.PostsCollection, post); err != nil {
		return "", err
	}

	s.cache.Invalidate(ctx)

	return postID, nil
}

// GetPost fetches a single post by id
func (s *PostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return nil, apperrors.NewValidationError("postId is required")
	}

	var posts []models.Post
	query := repositories.Query{Equals: map[string]interface{}{"_id": postID}, Limit: 1}
	if err := s.store.Find(ctx, config.PostsCollection, query, &posts); err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return &posts[0], nil
}

// normalizePeople trims each entry and drops empties, preserving order
func normalizePeople(people []string) []string {
	normalized := make([]string, 0, len(people))
	for _, p := range people {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			normalized = append(normalized, trimmed)
		}
	}
	return normalized
}
