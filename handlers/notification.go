package handlers

import (
	"errors"
	"net/http"

	notificationRepo "stagelink/database/repository/notification"
	"stagelink/models"
	"stagelink/services/notification"
	"stagelink/services/svcerr"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the in-app inbox and the internal enqueue
// endpoint the other services post events to.
type NotificationHandler struct {
	dispatcher *notification.Dispatcher
	repo       notificationRepo.NotificationRepository
	logger     *zap.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(dispatcher *notification.Dispatcher, repo notificationRepo.NotificationRepository, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{dispatcher: dispatcher, repo: repo, logger: logger}
}

// Send handles POST /api/notifications. It enqueues the delivery task and
// returns immediately; storage happens in the background worker.
func (h *NotificationHandler) Send(c *gin.Context) {
	var req models.NotificationPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid input", "details": err.Error()})
		return
	}
	if req.UserID == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "userId and message are required"})
		return
	}

	h.dispatcher.Notify(c.Request.Context(), req.UserID, req.Type, req.Message, req.Data)
	respondData(c, http.StatusAccepted, gin.H{"queued": true})
}

// ListByUser handles GET /api/notifications/user/:userId.
func (h *NotificationHandler) ListByUser(c *gin.Context) {
	notifications, err := h.repo.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, svcerr.Internal("failed to list notifications", err))
		return
	}
	respondData(c, http.StatusOK, notifications)
}

// MarkRead handles PATCH /api/notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id := c.Param("id")
	if err := h.repo.MarkRead(c.Request.Context(), id); err != nil {
		if errors.Is(err, notificationRepo.ErrNotFound) {
			respondError(c, svcerr.NotFound("notification not found"))
			return
		}
		respondError(c, svcerr.Internal("failed to mark notification read", err))
		return
	}
	respondData(c, http.StatusOK, gin.H{"read": true})
}
