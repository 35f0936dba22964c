// controllers/upload_controller.go
package controllers

import (
	"encoding/base64"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snapshare/snapshare_backend/models"
	"github.com/snapshare/snapshare_backend/repositories"
)

type UploadController struct {
	blobs repositories.BlobStore
}

func NewUploadController(blobs repositories.BlobStore) *UploadController {
	return &UploadController{blobs: blobs}
}

// Upload stores a base64-encoded image and returns its public URL. The
// payload is decoded and size-checked before any storage call happens.
func (uc *UploadController) Upload(c echo.Context) error {
	var req models.UploadRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	if req.Base64 == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "base64 is required (image payload)",
		})
	}

	data, err := base64.StdEncoding.DecodeString(req.Base64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "base64 payload is not valid",
		})
	}

	fileName := req.FileName
	if fileName == "" {
		fileName = "upload.jpg"
	}

	ctx, cancel := requestContext()
	defer cancel()

	result, err := uc.blobs.Store(ctx, fileName, req.ContentType, data)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.UploadResponse{
		Status:  http.StatusOK,
		Message: "Image uploaded successfully",
		Data:    result,
	})
}
