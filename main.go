package main

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/snapshare/snapshare_backend/config"
	"github.com/snapshare/snapshare_backend/controllers"
	"github.com/snapshare/snapshare_backend/middleware"
	"github.com/snapshare/snapshare_backend/repositories"
	"github.com/snapshare/snapshare_backend/routes"
	"github.com/snapshare/snapshare_backend/services"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	config.LoadEnv()

	// Connect to storage backends
	client := config.ConnectDB()
	redisClient := config.ConnectRedis()
	minioClient := config.ConnectMinio()

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(middleware.NewRateLimiter().RateLimit())
	// Keep request bodies bounded well above the 2 MiB image cap plus
	// base64 overhead so oversized uploads still reach the 413 path.
	e.Use(echoMiddleware.BodyLimit("4M"))

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "SnapShare Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Initialize storage gateways
	documentStore := repositories.NewMongoDocumentStore(client, config.DatabaseName())
	blobStore := repositories.NewMinioBlobStore(minioClient, config.BlobBucket(), config.PublicBlobBaseURL())

	// Initialize services
	feedCache := services.NewFeedCache(redisClient)
	postService := services.NewPostService(documentStore, feedCache)
	commentService := services.NewCommentService(documentStore)
	ratingService := services.NewRatingService(documentStore, feedCache)
	feedService := services.NewFeedService(documentStore, feedCache)

	// Initialize controllers
	uploadController := controllers.NewUploadController(blobStore)
	postController := controllers.NewPostController(postService, feedService)
	commentController := controllers.NewCommentController(commentService)
	ratingController := controllers.NewRatingController(ratingService)

	// Register routes
	routes.SetupRoutes(e, uploadController, postController, commentController, ratingController)

	// Start server
	port := config.Getenv("PORT", "8080")
	e.Logger.Fatal(e.Start(":" + port))
}
