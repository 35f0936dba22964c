package models

import "time"

// Post model for published photo posts. The document id doubles as the
// partition key, so ID and PostID always carry the same value.
type Post struct {
	ID           string    `json:"id" bson:"_id"`
	PostID       string    `json:"postId" bson:"postId"`
	CreatorID    string    `json:"creatorId" bson:"creatorId"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	Title        string    `json:"title" bson:"title"`
	Caption      string    `json:"caption" bson:"caption"`
	LocationText string    `json:"locationText" bson:"locationText"`
	People       []string  `json:"people" bson:"people"`
	PeopleText   string    `json:"peopleText" bson:"peopleText"`
	ImageURL     string    `json:"imageUrl" bson:"imageUrl"`
	RatingAvg    float64   `json:"ratingAvg" bson:"ratingAvg"`
	RatingCount  int       `json:"ratingCount" bson:"ratingCount"`
}

// CreatePostRequest model for creating a new post
type CreatePostRequest struct {
	Title        string   `json:"title"`
	Caption      string   `json:"caption"`
	LocationText string   `json:"locationText"`
	People       []string `json:"people"`
	CreatorID    string   `json:"creatorId"`
	ImageURL     string   `json:"imageUrl" validate:"required"`
}

// PostResponse model for single post responses
type PostResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    *Post  `json:"data,omitempty"`
}

// PostsResponse model for feed responses
type PostsResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    []Post `json:"data"`
}
