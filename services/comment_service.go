// services/comment_service.go
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

// CommentService appends comments to a post and lists them newest-first
type CommentService struct {
	store repositories.DocumentStore
}

func NewCommentService(store repositories.DocumentStore) *CommentService {
	return &CommentService{store: store}
}

// AddComment stores a new immutable comment under the post's partition.
// The post itself is not checked for existence.
func (s *CommentService) AddComment(ctx context.Context, postID, userID, text string) (string, error) {
	postID = strings.TrimSpace(postID)
	text = strings.TrimSpace(text)
	if postID == "" || text == "" {
		return "", apperrors.NewValidationError("postId and text are required")
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = DefaultConsumerID
	}

	commentID := uuid.NewString()
	comment := models.Comment{
		ID:        commentID,
		CommentID: commentID,
		PostID:    postID,
		UserID:    userID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.store.Create(ctx, config.CommentsCollection, comment); err != nil {
		return "", err
	}
	return commentID, nil
}

// GetComments returns all comments for a post, newest first. A post with
// no comments yields an empty slice.
func (s *CommentService) GetComments(ctx context.Context, postID string) ([]models.Comment, error) {
	postID = strings.TrimSpace(postID)
	if postID == "" {
		return nil, apperrors.NewValidationError("postId is required")
	}

	comments := []models.Comment{}
	query := repositories.Query{
		Equals:    map[string]interface{}{"postId": postID},
		SortField: "createdAt",
		SortDesc:  true,
	}
	if err := s.store.Find(ctx, config.CommentsCollection, query, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}
