package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/snapshare/snapshare_backend/controllers"
)

// SetupRoutes registers all API routes
func SetupRoutes(e *echo.Echo, uploadController *controllers.UploadController, postController *controllers.PostController, commentController *controllers.CommentController, ratingController *controllers.RatingController) {
	api := e.Group("/api")

	api.POST("/upload", uploadController.Upload)

	api.POST("/posts", postController.CreatePost)
	api.GET("/posts", postController.ListPosts)
	api.GET("/posts/:id", postController.GetPost)

	api.GET("/posts/:id/comments", commentController.GetComments)
	api.POST("/posts/:id/comments", commentController.AddComment)

	api.POST("/posts/:id/ratings", ratingController.AddRating)
}
