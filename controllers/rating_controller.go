// controllers/rating_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snapshare/snapshare_backend/models"
	"github.com/snapshare/snapshare_backend/services"
)

type RatingController struct {
	ratings *services.RatingService
}

func NewRatingController(ratings *services.RatingService) *RatingController {
	return &RatingController{ratings: ratings}
}

// AddRating submits or replaces the caller's star rating for the post and
// returns the freshly recomputed aggregate.
func (rc *RatingController) AddRating(c echo.Context) error {
	var req models.AddRatingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "stars must be between 1 and 5",
		})
	}

	ctx, cancel := requestContext()
	defer cancel()

	summary, err := rc.ratings.AddRating(ctx, c.Param("id"), req.UserID, req.Stars)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.RatingResponse{
		Status:  http.StatusOK,
		Message: "Rating saved successfully",
		Data:    summary,
	})
}
