package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/threadline-app/backend/internal/models"
	"github.com/threadline-app/backend/internal/repositories"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository      repositories.CommentRepository
	likeRepository         repositories.LikeRepository
	notificationRepository repositories.NotificationRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, likeRepo repositories.LikeRepository, notificationRepo repositories.NotificationRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository:      commentRepo,
		likeRepository:         likeRepo,
		notificationRepository: notificationRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.GET("/comments", h.ListComments)
	g.GET("/comments/with-replies", h.ListComments) // legacy client path, same payload
	g.POST("/comments", h.CreateComment)
	g.POST("/comments/:id/like", h.ToggleLike)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// ListComments returns all top-level comments with replies nested up to
// three levels, newest first at every level
func (h *CommentHandler) ListComments(c echo.Context) error {
	forest, err := h.commentRepository.ListForest()
	if err != nil {
		return storeErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, forest)
}

// CreateComment creates a new top-level comment or reply
func (h *CommentHandler) CreateComment(c echo.Context) error {
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if req.Author == "" {
		req.Author = "Anonymous"
	}

	comment := &models.Comment{
		Text:     req.Text,
		AuthorID: req.AuthorID,
		Author:   req.Author,
		ParentID: req.ParentID,
	}

	if err := h.commentRepository.CreateComment(comment); err != nil {
		return storeErrorToHTTP(err)
	}

	h.notifyReply(comment)

	return c.JSON(http.StatusCreated, comment)
}

// ToggleLike likes the comment if the user has not liked it yet, or
// removes the existing like otherwise
func (h *CommentHandler) ToggleLike(c echo.Context) error {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	var req models.LikeCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	action, likes, err := h.likeRepository.ToggleLike(uint(commentID), req.UserID)
	if err != nil {
		return storeErrorToHTTP(err)
	}

	if action == models.LikeActionLiked {
		h.notifyLike(uint(commentID), req.UserID)
	}

	return c.JSON(http.StatusOK, models.LikeCommentResponse{
		Success: true,
		Action:  action,
		Likes:   likes,
	})
}

// DeleteComment deletes the comment and its whole reply subtree, author only
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid comment ID")
	}

	var req models.DeleteCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.commentRepository.DeleteComment(uint(commentID), req.UserID); err != nil {
		return storeErrorToHTTP(err)
	}

	return c.JSON(http.StatusOK, models.DeleteCommentResponse{
		Success: true,
		Message: "Comment deleted successfully",
	})
}

// notifyReply tells a parent comment's author about a new reply.
// Best-effort: failures are logged and never fail the request.
func (h *CommentHandler) notifyReply(reply *models.Comment) {
	if reply.ParentID == nil || h.notificationRepository == nil {
		return
	}
	parent, err := h.commentRepository.GetCommentByID(*reply.ParentID)
	if err != nil || parent.AuthorID == reply.AuthorID {
		return
	}
	notification := &models.Notification{
		RecipientID: parent.AuthorID,
		ActorID:     reply.AuthorID,
		ActorName:   reply.Author,
		Type:        models.NotificationTypeReply,
		CommentID:   reply.ID,
	}
	go func() {
		if err := h.notificationRepository.CreateNotification(notification); err != nil {
			log.Printf("Failed to create reply notification: %v", err)
		}
	}()
}

// notifyLike tells a comment's author that someone liked it. The actor's
// display name comes from their latest comment snapshot; someone who never
// commented stays nameless.
func (h *CommentHandler) notifyLike(commentID uint, userID string) {
	if h.notificationRepository == nil {
		return
	}
	comment, err := h.commentRepository.GetCommentByID(commentID)
	if err != nil || comment.AuthorID == userID {
		return
	}
	actorName, err := h.commentRepository.GetAuthorName(userID)
	if err != nil {
		actorName = ""
	}
	notification := &models.Notification{
		RecipientID: comment.AuthorID,
		ActorID:     userID,
		ActorName:   actorName,
		Type:        models.NotificationTypeLike,
		CommentID:   commentID,
	}
	go func() {
		if err := h.notificationRepository.CreateNotification(notification); err != nil {
			log.Printf("Failed to create like notification: %v", err)
		}
	}()
}
