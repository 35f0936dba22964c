package models

import "time"

// Rating model for per-user star ratings. The document id is the composite
// postId:userId, which is what enforces at most one rating per user per post.
type Rating struct {
	ID        string    `json:"id" bson:"_id"`
	PostID    string    `json:"postId" bson:"postId"`
	UserID    string    `json:"userId" bson:"userId"`
	Stars     int       `json:"stars" bson:"stars"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// AddRatingRequest model for submitting or replacing a rating
type AddRatingRequest struct {
	UserID string `json:"userId"`
	Stars  int    `json:"stars" validate:"required,min=1,max=5"`
}

// RatingSummary is the denormalized aggregate stored on the post
type RatingSummary struct {
	RatingAvg   float64 `json:"ratingAvg"`
	RatingCount int     `json:"ratingCount"`
}

// RatingResponse model for rating submission responses
type RatingResponse struct {
	Status  int            `json:"status"`
	Message string         `json:"message"`
	Data    *RatingSummary `json:"data,omitempty"`
}
