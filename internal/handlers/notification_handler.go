package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/threadline-app/backend/internal/repositories"
)

// NotificationHandler handles HTTP requests related to notifications
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notificationRepo}
}

// RegisterNotificationRoutes registers notification-related routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.ListNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.POST("/notifications/:id/read", h.MarkAsRead)
}

// ListNotifications returns the user's notifications, newest first
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId query parameter is required")
	}

	notifications, err := h.notificationRepository.GetByRecipientID(userID)
	if err != nil {
		return storeErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, notifications)
}

// GetUnreadCount returns how many of the user's notifications are unread
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	userID := c.QueryParam("userId")
	if userID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "userId query parameter is required")
	}

	count, err := h.notificationRepository.GetUnreadCount(userID)
	if err != nil {
		return storeErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"userId": userID, "unreadCount": count})
}

// MarkAsRead marks a single notification as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	notificationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification ID")
	}

	if err := h.notificationRepository.MarkAsRead(uint(notificationID)); err != nil {
		return storeErrorToHTTP(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
