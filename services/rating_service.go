// services/rating_service.go
package services

import (
	"context"
	"strings"
	"time"

	"github.com/snapshare/snapshare_backend/apperrors"
	"github.com/snapshare/snapshare_backend/config"
	"github.com/snapshare/snapshare_backend/models"
	"github.com/snapshare/snapshare_backend/repositories"
)

// RatingService upserts per-user ratings and maintains the denormalized
// rating aggregate on the post document.
type RatingService struct {
	store repositories.DocumentStore
	cache *FeedCache
}

func NewRatingService(store repositories.DocumentStore, cache *FeedCache) *RatingService {
	return &RatingService{store: store, cache: cache}
}

// RatingID builds the deterministic rating document id. Deriving the id
// from (postId, userId) is what enforces one rating per user per post
// without a uniqueness index.
func RatingID(postID, userID string) string {
	return postID + ":" + userID
}

// AddRating records or replaces the user's rating for a post, then
// recomputes ratingAvg/ratingCount from the full rating set and patches
// them onto the post.
//
// The upsert, the recompute and the patch are not atomic as a unit: two
// concurrent raters on the same post can interleave so that the stored
// aggregate reflects a read state neither of them computed. Accepted for
// this workload; a rating document is never lost, only the aggregate can
// lag until the next rating write. On failure the rating may be saved
// while the aggregate stays stale; nothing is rolled back.
func (s *RatingService) AddRating(ctx context.Context, postID, userID string, stars int) (*models.RatingSummary, error) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return nil, apperrors.NewValidationError("postId is required")
	}
	if stars < 1 || stars > 5 {
		return nil, apperrors.NewValidationError("stars must be between 1 and 5")
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = DefaultConsumerID
	}

	ratingID := RatingID(postID, userID)
	rating := models.Rating{
		ID:        ratingID,
		PostID:    postID,
		UserID:    userID,
		Stars:     stars,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Upsert(ctx, config.RatingsCollection, ratingID, rating); err != nil {
		return nil, err
	}

	summary, err := s.recomputeAggregate(ctx, postID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"ratingAvg":   summary.RatingAvg,
		"ratingCount": summary.RatingCount,
	}
	if err := s.store.Patch(ctx, config.PostsCollection, postID, fields); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx)

	return summary, nil
}

// recomputeAggregate re-scans every rating for the post. Recomputing from
// the authoritative set keeps the aggregate correct under replace-not-append
// semantics, at O(ratings-per-post) cost per write.
func (s *RatingService) recomputeAggregate(ctx context.Context, postID string) (*models.RatingSummary, error) {
	var ratings []models.Rating
	query := repositories.Query{Equals: map[string]interface{}{"postId": postID}}
	if err := s.store.Find(ctx, config.RatingsCollection, query, &ratings); err != nil {
		return nil, err
	}

	summary := &models.RatingSummary{}
	if len(ratings) == 0 {
		return summary, nil
	}

	sum := 0
	for _, r := range ratings {
		sum += r.Stars
	}
	summary.RatingAvg = float64(sum) / float64(len(ratings))
	summary.RatingCount = len(ratings)
	return summary, nil
}
