package models

import "time"

// Comment model for post comments. Comments are append-only and never
// edited or deleted once created.
type Comment struct {
	ID        string    `json:"id" bson:"_id"`
	CommentID string    `json:"commentId" bson:"commentId"`
	PostID    string    `json:"postId" bson:"postId"`
	UserID    string    `json:"userId" bson:"userId"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// AddCommentRequest model for creating a new comment
type AddCommentRequest struct {
	UserID string `json:"userId"`
	Text   string `json:"text" validate:"required"`
}

// CommentsResponse model for comment list responses
type CommentsResponse struct {
	Status  int       `json:"status"`
	Message string    `json:"message"`
	Data    []Comment `json:"data"`
}
