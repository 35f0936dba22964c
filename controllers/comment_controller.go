// controllers/comment_controller.go
package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/snapshare/snapshare_backend/models"
	"github.com/snapshare/snapshare_backend/services"
)

type CommentController struct {
	comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// AddComment appends a comment to the post in the path
func (cc *CommentController) AddComment(c echo.Context) error {
	var req models.AddCommentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	ctx, cancel := requestContext()
	defer cancel()

	commentID, err := cc.comments.AddComment(ctx, c.Param("id"), req.UserID, req.Text)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Comment added successfully",
		Data:    map[string]string{"commentId": commentID},
	})
}

// GetComments lists the post's comments, newest first
func (cc *CommentController) GetComments(c echo.Context) error {
	ctx, cancel := requestContext()
	defer cancel()

	comments, err := cc.comments.GetComments(ctx, c.Param("id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, models.CommentsResponse{
		Status:  http.StatusOK,
		Message: "Comments retrieved successfully",
		Data:    comments,
	})
}
