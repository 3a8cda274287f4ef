package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"slotify/config"
	bookingRepo "slotify/database/repository/booking"
	deviceRepo "slotify/database/repository/device"
	"slotify/models"
	"slotify/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// Worker drains the notification and reminder queues. It resolves device
// tokens per account and performs the actual FCM sends, so the services
// enqueuing tasks never block on push delivery.
type Worker struct {
	Devices  deviceRepo.DeviceRepository
	Bookings bookingRepo.BookingRepository
}

// Start runs the async worker in background.
func (w *Worker) Start() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(tasks.TypeNotifyBooking, w.handleNotifyTask)
	mux.HandleFunc(tasks.TypeBookingReminder, w.handleReminderTask)

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[NotifyWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[NotifyWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[NotifyWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

// handleNotifyTask pushes one booking event to every device of the target
// account. An account with no registered devices is a silent skip, not a
// failure.
func (w *Worker) handleNotifyTask(ctx context.Context, task *asynq.Task) error {
	var n models.Notification
	if err := json.Unmarshal(task.Payload(), &n); err != nil {
		log.Printf("[NotifyWorker] Invalid notification payload: %v", err)
		return err
	}

	data := n.Data
	if data == nil {
		data = map[string]string{}
	}
	data["event"] = string(n.Event)

	return w.push(ctx, n.AccountID, n.Title, n.Body, data)
}

// handleReminderTask fires the pre-appointment reminder. The booking is
// refetched when the task comes due: one cancelled or declined in the
// meantime produces no push.
func (w *Worker) handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p tasks.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[NotifyWorker] Invalid reminder payload: %v", err)
		return err
	}

	b, err := w.Bookings.GetByID(ctx, p.BookingID)
	if err != nil {
		return fmt.Errorf("reminder: failed to fetch booking %s: %w", p.BookingID, err)
	}
	if b == nil || b.Status != models.StatusConfirmed {
		log.Printf("[NotifyWorker] Skipping reminder for booking %s: no longer confirmed", p.BookingID)
		return nil
	}

	data := map[string]string{
		"event":     "reminder",
		"bookingId": b.ID,
		"serviceId": b.ServiceID,
		"start":     b.Start.UTC().Format(time.RFC3339),
	}
	title := "Upcoming appointment ⏰"
	body := fmt.Sprintf("Your booking starts at %s.", b.Start.UTC().Format("Mon, 02 Jan 15:04"))

	return w.push(ctx, b.CustomerID, title, body, data)
}

// push sends one FCM message per registered device of the account.
func (w *Worker) push(ctx context.Context, accountID, title, body string, data map[string]string) error {
	devices, err := w.Devices.ListByAccount(ctx, accountID)
	if err != nil {
		return fmt.Errorf("push: failed to list devices for %s: %w", accountID, err)
	}
	if len(devices) == 0 {
		log.Printf("[NotifyWorker] Account %s has no registered devices; skipping push", accountID)
		return nil
	}

	var lastErr error
	for _, d := range devices {
		if err := sendFCM(ctx, d.Token, title, body, data); err != nil {
			log.Printf("[NotifyWorker] Failed to push to device %s of %s: %v", d.DeviceID, accountID, err)
			lastErr = err
		}
	}
	return lastErr
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[NotifyWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
