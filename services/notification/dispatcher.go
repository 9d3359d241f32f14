package notification

import (
	"context"

	"stagelink/config"
	"stagelink/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// Dispatcher enqueues fire-and-forget notification deliveries. Enqueue
// failures are logged and swallowed: notifications are never part of a
// consistency guarantee.
type Dispatcher struct {
	client *asynq.Client
	logger *zap.Logger
}

// NewDispatcher builds a dispatcher backed by the configured Redis queue.
func NewDispatcher(logger *zap.Logger) *Dispatcher {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	})
	return &Dispatcher{client: client, logger: logger}
}

// Notify enqueues a delivery task. Best-effort by contract.
func (d *Dispatcher) Notify(ctx context.Context, userID, notifType, message string, data map[string]string) {
	payload := models.NotificationPayload{
		UserID:  userID,
		Type:    notifType,
		Message: message,
		Data:    data,
	}
	task, err := NewDeliveryTask(payload)
	if err != nil {
		d.logger.Warn("failed to build notification task", zap.String("userId", userID), zap.Error(err))
		return
	}
	if _, err := d.client.EnqueueContext(ctx, task); err != nil {
		d.logger.Warn("failed to enqueue notification",
			zap.String("userId", userID),
			zap.String("type", notifType),
			zap.Error(err))
	}
}

// Close releases the underlying queue connection.
func (d *Dispatcher) Close() error {
	return d.client.Close()
}
