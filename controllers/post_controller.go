// controllers/post_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snapshare/snapshare_backend/models"
	"github.com/snapshare/snapshare_backend/services"
)

type PostController struct {
	posts *services.PostService
	feed  *services.FeedService
}

func NewPostController(posts *services.PostService, feed *services.FeedService) *PostController {
	return &PostController{posts: posts, feed: feed}
}

// CreatePost publishes a new post referencing an already-uploaded image
func (pc *PostController) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "imageUrl is required",
		})
	}

	ctx, cancel := requestContext()
	defer cancel()

	postID, err := pc.posts.CreatePost(ctx, req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Post created successfully",
		Data:    map[string]string{"postId": postID},
	})
}

// GetPost retrieves a single post by id
func (pc *PostController) GetPost(c echo.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	post, err := pc.posts.GetPost(ctx, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.PostResponse{
		Status:  http.StatusOK,
		Message: "Post retrieved successfully",
		Data:    post,
	})
}

// ListPosts returns the feed, optionally filtered by ?search=
func (pc *PostController) ListPosts(c echo.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	posts, err := pc.feed.ListPosts(ctx, c.QueryParam("search"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.PostsResponse{
		Status:  http.StatusOK,
		Message: "Posts retrieved successfully",
		Data:    posts,
	})
}
