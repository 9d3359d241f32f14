package notification

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"stagelink/config"
	notificationRepo "stagelink/database/repository/notification"
	"stagelink/models"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// InitDeliveryWorker runs the async delivery worker in background. Delivered
// notifications land in the user's in-app inbox.
func InitDeliveryWorker(repo notificationRepo.NotificationRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisNotifyQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeNotificationDeliver, handleDeliveryTask(repo))

	// Start async worker with retry logic
	go func() {
		log.Println("[NotificationWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotificationWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotificationWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleDeliveryTask(repo notificationRepo.NotificationRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.NotificationPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[NotificationWorker] invalid payload: %v", err)
			return err
		}

		notification := &models.Notification{
			ID:      uuid.New().String(),
			UserID:  p.UserID,
			Type:    p.Type,
			Message: p.Message,
			Data:    p.Data,
			Read:    false,
		}
		if err := repo.Create(ctx, notification); err != nil {
			log.Printf("[NotificationWorker] failed to store notification for %s: %v", p.UserID, err)
			return err
		}
		return nil
	}
}
