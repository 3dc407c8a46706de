package workers

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"ops-dashboard/internal/observability"
)

// ConsumerConfig holds configuration for the event consumer.
type ConsumerConfig struct {
	// NumWorkers is the number of concurrent workers.
	NumWorkers int

	// QueueSize is the buffer size between the fetch loop and the workers.
	QueueSize int

	// DrainTimeout is the maximum time to wait for in-flight events during shutdown.
	DrainTimeout time.Duration
}

// DefaultConsumerConfig returns sensible defaults for a consumer.
func DefaultConsumerConfig() ConsumerConfig {
	d := DefaultWorkerPoolConfig()
	return ConsumerConfig{
		NumWorkers:   d.NumWorkers,
		QueueSize:    d.QueueSize,
		DrainTimeout: d.DrainTimeout,
	}
}

// consumer implements the EventConsumer interface.
type consumer struct {
	config    ConsumerConfig
	source    EventSource
	processor EventProcessor
	logger    *observability.Logger

	newPool func(WorkerPoolConfig) WorkerPool

	mu          sync.Mutex
	cancelFetch context.CancelFunc
	started     bool
	doneCh      chan struct{} // closed when Start returns
	stopping    atomic.Bool
	stopOnce    sync.Once
}

// NewConsumer creates a consumer that fetches events from source and
// processes them on a worker pool, committing each offset once its event
// was processed successfully.
func NewConsumer(
	config ConsumerConfig,
	source EventSource,
	processor EventProcessor,
	logger *observability.Logger,
) EventConsumer {
	defaults := DefaultConsumerConfig()
	if config.NumWorkers <= 0 {
		config.NumWorkers = defaults.NumWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = defaults.QueueSize
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = defaults.DrainTimeout
	}

	c := &consumer{
		config:    config,
		source:    source,
		processor: processor,
		logger:    logger,
		doneCh:    make(chan struct{}),
	}
	c.newPool = func(cfg WorkerPoolConfig) WorkerPool {
		return NewWorkerPool(cfg, processor, logger)
	}
	return c
}

// Start fetches events and blocks until Stop is called or ctx is cancelled.
func (c *consumer) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return fmt.Errorf("consumer already started")
	}
	c.started = true
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancelFetch = cancel
	c.mu.Unlock()
	defer close(c.doneCh)
	defer cancel()

	logCtx := observability.WithFields(context.Background(),
		observability.Field{Key: "processor", Value: c.processor.Name()},
	)
	fetchCtx = observability.WithFields(fetchCtx,
		observability.Field{Key: "processor", Value: c.processor.Name()},
	)

	pool := c.newPool(WorkerPoolConfig{
		NumWorkers:   c.config.NumWorkers,
		QueueSize:    c.config.QueueSize,
		DrainTimeout: c.config.DrainTimeout,
		OnResult:     c.commit,
	})
	// Workers run on a context that outlives the fetch loop so queued events
	// are finished during the drain.
	if err := pool.Start(logCtx); err != nil {
		return fmt.Errorf("failed to start worker pool: %w", err)
	}

	c.logger.Info(fetchCtx, fmt.Sprintf("Starting consumer for %s with %d workers",
		c.processor.Name(), c.config.NumWorkers))

	c.fetchLoop(fetchCtx, pool)

	if err := pool.Drain(logCtx); err != nil {
		c.logger.Warn(logCtx, "Drain timeout - some events may not have completed")
	} else {
		c.logger.Info(logCtx, "All workers finished processing")
	}

	if err := c.source.Close(); err != nil {
		c.logger.Error(logCtx, "Failed to close event source", err)
	}

	c.logger.Info(logCtx, fmt.Sprintf("Consumer stopped for %s", c.processor.Name()))
	return nil
}

// fetchLoop submits fetched events to the pool until ctx is cancelled.
func (c *consumer) fetchLoop(ctx context.Context, pool WorkerPool) {
	for {
		if c.stopping.Load() {
			return
		}

		event, msg, err := c.source.Fetch(ctx)
		if err != nil {
			if c.stopping.Load() || ctx.Err() != nil {
				return
			}
			c.logger.Error(ctx, "Failed to fetch event", err)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
				return
			}
			continue
		}

		if err := pool.Submit(ctx, Delivery{Event: event, Message: msg}); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			c.logger.Error(ctx, "Failed to submit event to worker pool", err)
			return
		}
	}
}

// commit acknowledges successfully processed deliveries. Failed ones are left
// uncommitted and are redelivered after a restart or rebalance.
func (c *consumer) commit(result ProcessingResult) {
	if result.Error != nil {
		return
	}
	if err := c.source.Commit(context.Background(), result.Delivery.Message); err != nil {
		ctx := observability.WithFields(context.Background(),
			observability.Field{Key: "event_id", Value: result.Delivery.Event.ID},
			observability.Field{Key: "offset", Value: result.Delivery.Message.Offset},
		)
		c.logger.Error(ctx, "Failed to commit offset", err)
	}
}

// Stop signals the fetch loop to stop and returns once in-flight events
// have been drained.
func (c *consumer) Stop() {
	c.stopOnce.Do(func() {
		logCtx := observability.WithFields(context.Background(),
			observability.Field{Key: "processor", Value: c.processor.Name()},
		)
		c.logger.Info(logCtx, fmt.Sprintf("Stopping consumer for %s", c.processor.Name()))

		c.stopping.Store(true)

		c.mu.Lock()
		started := c.started
		if c.cancelFetch != nil {
			c.cancelFetch()
		}
		c.mu.Unlock()

		if started {
			<-c.doneCh
		}
	})
}
