package jobs

import (
	"context"
	"fmt"

	"ops-dashboard/internal/observability"

	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisOpt asynq.RedisClientOpt, logger *observability.Logger) *Client {
	client := asynq.NewClient(redisOpt)
	return &Client{
		client: client,
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueBroadcastJob enqueues a publisher broadcast and returns the task id
func (c *Client) EnqueueBroadcastJob(ctx context.Context, payload BroadcastJobPayload) (string, error) {
	task, err := NewBroadcastTask(payload)
	if err != nil {
		c.logger.Error(ctx, "failed to create broadcast task", err)
		return "", fmt.Errorf("failed to create broadcast task: %w", err)
	}

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue broadcast task", err)
		return "", fmt.Errorf("failed to enqueue broadcast task: %w", err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued broadcast task: %s (queue: %s)", info.ID, info.Queue))
	return info.ID, nil
}
