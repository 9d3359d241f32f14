package notificationRepo

import (
	"context"
	"errors"

	"stagelink/models"
)

// ErrNotFound is returned when no notification exists for the given id.
var ErrNotFound = errors.New("notification not found")

// NotificationRepository defines data access for in-app notifications.
type NotificationRepository interface {
	Create(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}
