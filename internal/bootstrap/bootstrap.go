package bootstrap

import (
	"context"
	"fmt"
	"io"

	"ops-dashboard/internal/api"
	"ops-dashboard/internal/config"
	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/ratelimit"
	"ops-dashboard/internal/store"

	assistantHandler "ops-dashboard/internal/assistant/handler"
	assistantProcessor "ops-dashboard/internal/assistant/processor"
	authHandler "ops-dashboard/internal/auth/handler"
	authProcessor "ops-dashboard/internal/auth/processor"
	"ops-dashboard/internal/clients/googleai"
	kafkaClient "ops-dashboard/internal/clients/kafka"
	"ops-dashboard/internal/clients/mail"
	"ops-dashboard/internal/clients/openai"
	redisClient "ops-dashboard/internal/clients/redis"
	directoryHandler "ops-dashboard/internal/directory/handler"
	directoryProcessor "ops-dashboard/internal/directory/processor"
	"ops-dashboard/internal/email"
	"ops-dashboard/internal/events"
	inquiryHandler "ops-dashboard/internal/inquiries/handler"
	inquiryProcessor "ops-dashboard/internal/inquiries/processor"
	"ops-dashboard/internal/jobs"
	licenseHandler "ops-dashboard/internal/licenses/handler"
	licenseProcessor "ops-dashboard/internal/licenses/processor"
	"ops-dashboard/internal/licenses/statscache"
	publisherHandler "ops-dashboard/internal/publishers/handler"
	publisherProcessor "ops-dashboard/internal/publishers/processor"
	responseHandler "ops-dashboard/internal/responses/handler"
	responseProcessor "ops-dashboard/internal/responses/processor"
	systemHandler "ops-dashboard/internal/system/handler"
	"ops-dashboard/internal/workers"
	"ops-dashboard/internal/workers/inbound"

	"github.com/hibiken/asynq"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	Handlers    api.Handlers
	RateLimiter *ratelimit.Service

	// Inbound email consumer, toggled through the system endpoints
	EmailMonitor *workers.Monitor

	// Clients (for cleanup)
	KafkaProducer *kafkaClient.Producer
	Redis         *redisClient.Client
	JobClient     *jobs.Client
	closers       []io.Closer
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	var err error
	deps.Store, err = store.New(ctx, cfg.Database.ConnectionString(), store.PoolConfig{
		MaxOpenConns: cfg.Database.MaxOpenConns,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	mailClient, err := mail.NewResendClient(cfg.Services.ResendAPIKey, cfg.Services.SalesMailbox, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create resend client: %w", err)
	}
	emailService := email.New(mailClient, cfg.Services.DefaultEmailSender, cfg.Services.SalesMailbox, logger)

	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	drafter, err := newDrafter(ctx, cfg.AI, logger)
	if err != nil {
		return nil, err
	}
	if closer, ok := drafter.(io.Closer); ok {
		deps.closers = append(deps.closers, closer)
	}

	deps.KafkaProducer = kafkaClient.NewProducer(kafkaClient.ProducerConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.EventsTopic,
	}, logger)
	eventPublisher := events.NewPublisher(deps.KafkaProducer, logger)

	// Broadcasts need the job queue, which lives in Redis
	var broadcastQueue publisherProcessor.BroadcastQueue
	if cfg.Redis.Enabled {
		deps.JobClient = jobs.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, logger)
		broadcastQueue = deps.JobClient
	} else {
		logger.Warn(ctx, "Redis is disabled, publisher broadcasts are unavailable")
	}

	statsCache := statscache.New(deps.Redis, logger)
	deps.RateLimiter = ratelimit.NewService(deps.Redis, logger)

	// Initialize auth processor and handler
	authProc := authProcessor.New(&deps.Store, authProcessor.AuthConfig{
		JWTSecret: cfg.Auth.JWTSecret,
		TokenTTL:  cfg.Auth.TokenTTL,
	}, logger)
	deps.Handlers.Auth = authHandler.New(authProc, logger)

	directoryProc := directoryProcessor.New(&deps.Store, logger)
	deps.Handlers.Directory = directoryHandler.New(directoryProc, logger)

	inquiryProc := inquiryProcessor.New(&deps.Store, logger)
	deps.Handlers.Inquiries = inquiryHandler.New(inquiryProc, logger)

	responseProc := responseProcessor.New(&deps.Store, emailService, eventPublisher, statsCache, cfg.AI.AgentSignature, logger)
	deps.Handlers.Responses = responseHandler.New(responseProc, logger)

	licenseProc := licenseProcessor.New(&deps.Store, statsCache, eventPublisher, logger)
	deps.Handlers.Licenses = licenseHandler.New(licenseProc, logger)

	publisherProc := publisherProcessor.New(&deps.Store, broadcastQueue, logger)
	deps.Handlers.Publishers = publisherHandler.New(publisherProc, logger)

	assistantProc := assistantProcessor.New(&deps.Store, drafter, "", logger)
	deps.Handlers.Assistant = assistantHandler.New(assistantProc, logger)

	// A fresh Kafka reader is built for every monitoring run
	inboundProcessor := inbound.NewProcessor(&inquiryProc, logger)
	deps.EmailMonitor = workers.NewMonitor(func() (workers.EventConsumer, error) {
		source := kafkaClient.NewConsumer(kafkaClient.ConsumerConfig{
			Brokers: cfg.Kafka.Brokers,
			Topic:   cfg.Kafka.InboundTopic,
			GroupID: cfg.Kafka.ConsumerGroup,
		}, logger)
		return workers.NewConsumer(workers.ConsumerConfig{
			NumWorkers: cfg.Kafka.InboundWorkers,
		}, source, inboundProcessor, logger), nil
	}, logger)
	deps.Handlers.System = systemHandler.New(deps.EmailMonitor, logger)

	return deps, nil
}

func newDrafter(ctx context.Context, cfg config.AIConfig, logger *observability.Logger) (assistantProcessor.Drafter, error) {
	switch cfg.Provider {
	case "gemini":
		client, err := googleai.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return client, nil
	default:
		client, err := openai.NewChatClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create openai client: %w", err)
		}
		return client, nil
	}
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.EmailMonitor != nil && d.EmailMonitor.Running() {
		if err := d.EmailMonitor.Stop(ctx); err != nil {
			d.Logger.Error(ctx, "failed to stop email monitor", err)
		}
	}
	if d.KafkaProducer != nil {
		d.KafkaProducer.Close()
	}
	if d.JobClient != nil {
		d.JobClient.Close()
	}
	if d.Redis != nil {
		d.Redis.Close()
	}
	for _, c := range d.closers {
		c.Close()
	}
	d.Store.Close()
}
