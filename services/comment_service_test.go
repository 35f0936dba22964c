package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snapshare/snapshare_backend/apperrors"
	"github.com/snapshare/snapshare_backend/config"
	"github.com/snapshare/snapshare_backend/models"
)

func seedComment(t *testing.T, store *memStore, postID, text string, createdAt time.Time) {
	t.Helper()
	comment := models.Comment{
		ID:        "c-" + text,
		CommentID: "c-" + text,
		PostID:    postID,
		UserID:    DefaultConsumerID,
		Text:      text,
		CreatedAt: createdAt,
	}
	require.NoError(t, store.Create(context.Background(), config.CommentsCollection, comment))
}

func TestAddCommentValidation(t *testing.T) {
	store := newMemStore()
	svc := NewCommentService(store)

	for _, tc := range []struct{ postID, text string }{
		{"", "hello"},
		{"p1", ""},
		{"p1", "   "},
		{"  ", "hello"},
	} {
		_, err := svc.AddComment(context.Background(), tc.postID, "u1", tc.text)
		assert.True(t, apperrors.IsValidation(err), "postId=%q text=%q", tc.postID, tc.text)
	}
	assert.Zero(t, store.writes)
}

func TestAddCommentStoresTrimmedText(t *testing.T) {
	store := newMemStore()
	svc := NewCommentService(store)

	commentID, err := svc.AddComment(context.Background(), "p1", "", "  nice shot  ")
	require.NoError(t, err)
	require.NotEmpty(t, commentID)

	comments, err := svc.GetComments(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, commentID, comments[0].CommentID)
	assert.Equal(t, commentID, comments[0].ID)
	assert.Equal(t, "nice shot", comments[0].Text)
	assert.Equal(t, DefaultConsumerID, comments[0].UserID)
}

func TestGetCommentsNewestFirst(t *testing.T) {
	store := newMemStore()
	svc := NewCommentService(store)

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	seedComment(t, store, "p1", "first", base)
	seedComment(t, store, "p1", "third", base.Add(2*time.Minute))
	seedComment(t, store, "p1", "second", base.Add(time.Minute))
	seedComment(t, store, "p2", "other post", base.Add(time.Hour))

	comments, err := svc.GetComments(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "third", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
	assert.Equal(t, "first", comments[2].Text)
}

func TestGetCommentsEmptyPostYieldsEmptySlice(t *testing.T) {
	store := newMemStore()
	svc := NewCommentService(store)

	comments, err := svc.GetComments(context.Background(), "lonely")
	require.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
}

func TestGetCommentsRequiresPostID(t *testing.T) {
	svc := NewCommentService(newMemStore())

	_, err := svc.GetComments(context.Background(), "")
	assert.True(t, apperrors.IsValidation(err))
}
