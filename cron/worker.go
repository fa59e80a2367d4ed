package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"guidely/config"
	"guidely/database/repository/provider"
	"guidely/services/booking"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeCalendarReconcile = "calendar:reconcile"

type reconcilePayload struct {
	ProviderID string `json:"providerId,omitempty"`
}

// InitReconcileWorker runs the async worker in background. It periodically
// rebuilds every provider calendar from the booking ledger so that a missed
// in-request rebuild cannot leave the denormalized cache stale forever.
func InitReconcileWorker(bookingSvc booking.BookingService, providers providerRepo.ProviderRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
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
	mux.HandleFunc(TypeCalendarReconcile, handleReconcileTask(bookingSvc, providers))

	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
		Location: time.UTC,
	})
	task := asynq.NewTask(TypeCalendarReconcile, nil)
	if _, err := scheduler.Register(config.AppConfig.ReconcileSchedule, task); err != nil {
		log.Printf("[ReconcileWorker] ❌ Failed to register schedule %q: %v", config.AppConfig.ReconcileSchedule, err)
	}

	// Start Redis health monitor
	go monitorRedisConnection()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[ReconcileWorker] ❌ Scheduler stopped: %v", err)
		}
	}()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReconcileWorker] 🚀 Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReconcileWorker] ❌ Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReconcileWorker] ❗ Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReconcileTask(bookingSvc booking.BookingService, providers providerRepo.ProviderRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p reconcilePayload
		if len(task.Payload()) > 0 {
			if err := json.Unmarshal(task.Payload(), &p); err != nil {
				log.Printf("[ReconcileHandler] 🔴 Invalid payload: %v", err)
				return err
			}
		}

		// A targeted payload reconciles one provider, the periodic task all.
		if p.ProviderID != "" {
			_, err := bookingSvc.RebuildProviderCalendar(ctx, p.ProviderID)
			return err
		}

		ids, err := providers.ListIDs(ctx)
		if err != nil {
			log.Printf("[ReconcileHandler] ❌ Failed to list providers: %v", err)
			return err
		}

		log.Printf("[ReconcileHandler] ⏰ Reconciling %d provider calendars", len(ids))
		var failed int
		for _, id := range ids {
			if _, err := bookingSvc.RebuildProviderCalendar(ctx, id); err != nil {
				log.Printf("[ReconcileHandler] ❌ Rebuild failed for provider %s: %v", id, err)
				failed++
			}
		}
		if failed > 0 {
			log.Printf("[ReconcileHandler] ⚠️ Reconcile finished with %d failures", failed)
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisWorkerDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReconcileWorker] ⚠️ Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
