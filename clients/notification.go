package clients

import (
	"context"

	"stagelink/models"

	"go.uber.org/zap"
)

// NotificationClient posts fire-and-forget events to the notification service.
type NotificationClient struct {
	*ServiceClient
}

// NewNotificationClient builds a typed client for the notification service.
func NewNotificationClient(sc *ServiceClient) *NotificationClient {
	return &NotificationClient{ServiceClient: sc}
}

// Send delivers a notification event. Callers treat failures as best-effort.
func (c *NotificationClient) Send(ctx context.Context, userID, notifType, message string, data map[string]string) error {
	payload := models.NotificationPayload{
		UserID:  userID,
		Type:    notifType,
		Message: message,
		Data:    data,
	}
	return c.Post(ctx, "/api/notifications", payload, nil, nil)
}

// RemoteNotifier adapts NotificationClient to the fire-and-forget contract:
// delivery failures are logged, never surfaced to the caller.
type RemoteNotifier struct {
	Client *NotificationClient
	Logger *zap.Logger
}

// Notify posts the event and swallows any failure.
func (n *RemoteNotifier) Notify(ctx context.Context, userID, notifType, message string, data map[string]string) {
	if err := n.Client.Send(ctx, userID, notifType, message, data); err != nil {
		n.Logger.Warn("notification delivery failed",
			zap.String("userId", userID),
			zap.String("type", notifType),
			zap.Error(err))
	}
}
