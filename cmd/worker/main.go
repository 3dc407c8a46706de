package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ops-dashboard/internal/clients/mail"
	"ops-dashboard/internal/config"
	"ops-dashboard/internal/email"
	"ops-dashboard/internal/jobs"
	"ops-dashboard/internal/jobs/workers"
	licenseProcessor "ops-dashboard/internal/licenses/processor"
	"ops-dashboard/internal/licenses/statscache"
	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/store"

	"github.com/hibiken/asynq"
)

func main() {
	if err := config.LoadEnvFile(); err != nil {
		log.Printf("Warning: %v", err)
	}

	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting background worker server...")

	dbConfig, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("Database configuration not set: %v", err)
	}
	redisConfig, err := config.LoadRedis()
	if err != nil {
		log.Fatalf("Invalid Redis configuration: %v", err)
	}
	if !redisConfig.Enabled {
		log.Fatal("REDIS_HOST is required for the worker")
	}
	servicesConfig, err := config.LoadServices()
	if err != nil {
		log.Fatalf("Mail configuration not set: %v", err)
	}
	jobsConfig, err := config.LoadJobs()
	if err != nil {
		log.Fatalf("Invalid job configuration: %v", err)
	}

	dataStore, err := store.New(ctx, dbConfig.ConnectionString(), store.PoolConfig{
		MaxOpenConns: dbConfig.MaxOpenConns,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer dataStore.Close()

	mailClient, err := mail.NewResendClient(servicesConfig.ResendAPIKey, servicesConfig.SalesMailbox, logger)
	if err != nil {
		log.Fatalf("Failed to create resend client: %v", err)
	}
	emailService := email.New(mailClient, servicesConfig.DefaultEmailSender, servicesConfig.SalesMailbox, logger)

	// Listing licenses never touches the stats cache or the event stream
	licenses := licenseProcessor.New(&dataStore, statscache.New(nil, logger), nil, logger)

	broadcastWorker := workers.NewBroadcastWorker(&dataStore, emailService, jobsConfig.BroadcastConcurrency, logger)
	digestWorker := workers.NewExpiryDigestWorker(&licenses, emailService, logger)

	redisOpt := asynq.RedisClientOpt{
		Addr:     redisConfig.Addr(),
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	}

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: jobsConfig.Concurrency,
			Queues: map[string]int{
				jobs.QueueDefault: 6,
				jobs.QueueLow:     2,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				logger.Error(ctx, fmt.Sprintf("task %s failed", task.Type()), err)
			}),
			RetryDelayFunc: asynq.DefaultRetryDelayFunc,
			Logger:         &asynqLogger{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(jobs.TypePublisherBroadcast, broadcastWorker.ProcessBroadcastTask)
	mux.HandleFunc(jobs.TypeLicenseExpiryDigest, digestWorker.ProcessExpiryDigestTask)

	scheduler := asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{
		Logger: &asynqLogger{logger: logger},
	})

	digestTask, err := jobs.NewExpiryDigestTask(jobs.ExpiryDigestJobPayload{WithinDays: licenseProcessor.ExpiringSoonDays})
	if err != nil {
		log.Fatalf("Failed to build expiry digest task: %v", err)
	}
	if _, err := scheduler.Register(jobsConfig.ExpiryDigestCron, digestTask); err != nil {
		log.Fatalf("Failed to register expiry digest schedule %q: %v", jobsConfig.ExpiryDigestCron, err)
	}

	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Shutdown()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info(ctx, fmt.Sprintf("Worker server started on Redis: %s", redisConfig.Addr()))
		if err := srv.Run(mux); err != nil {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-sigChan
	logger.Info(ctx, "Shutting down worker server...")

	srv.Shutdown()
	logger.Info(ctx, "Worker server stopped")
}

// asynqLogger adapts observability.Logger to asynq.Logger interface
type asynqLogger struct {
	logger *observability.Logger
}

func (l *asynqLogger) Debug(args ...interface{}) {
	l.logger.Debug(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Info(args ...interface{}) {
	l.logger.Info(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Warn(args ...interface{}) {
	l.logger.Warn(context.Background(), fmt.Sprint(args...))
}

func (l *asynqLogger) Error(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
}

func (l *asynqLogger) Fatal(args ...interface{}) {
	l.logger.Error(context.Background(), fmt.Sprint(args...), nil)
	os.Exit(1)
}
