// controllers/common.go
package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/snapshare/snapshare_backend/apperrors"
	"github.com/snapshare/snapshare_backend/models"
)

// Upper bound on storage work per request. Cancellation beyond this is
// left to the surrounding transport.
const requestTimeout = 10 * time.Second

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// respondError maps core error kinds onto HTTP status codes
func respondError(c echo.Context, err error) error {
	switch {
	case apperrors.IsValidation(err):
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, apperrors.ErrPayloadTooLarge):
		return c.JSON(http.StatusRequestEntityTooLarge, models.Response{
			Status:  http.StatusRequestEntityTooLarge,
			Message: "Image too large. Please use <= 2MB.",
		})
	case errors.Is(err, apperrors.ErrNotFound):
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: "Not found",
		})
	default:
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: err.Error(),
		})
	}
}
