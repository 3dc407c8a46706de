package workers

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ops-dashboard/internal/observability"
)

// ProcessingResult represents the result of processing one delivery.
type ProcessingResult struct {
	Delivery Delivery
	Error    error
}

// ResultCallback is called after each delivery is processed.
type ResultCallback func(result ProcessingResult)

// WorkerPoolConfig holds configuration for the worker pool.
type WorkerPoolConfig struct {
	// NumWorkers is the number of concurrent workers to run.
	NumWorkers int

	// QueueSize is the size of the delivery queue buffer.
	// If the queue is full, Submit() will block.
	QueueSize int

	// DrainTimeout is the maximum time to wait for in-flight deliveries
	// to complete during graceful shutdown.
	DrainTimeout time.Duration

	// OnResult is called after each delivery is processed (optional).
	// The consumer commits offsets from it.
	OnResult ResultCallback
}

// DefaultWorkerPoolConfig returns sensible defaults for a worker pool.
func DefaultWorkerPoolConfig() WorkerPoolConfig {
	return WorkerPoolConfig{
		NumWorkers:   5,
		QueueSize:    50,
		DrainTimeout: 30 * time.Second,
	}
}

// pool implements the WorkerPool interface.
type pool struct {
	config    WorkerPoolConfig
	processor EventProcessor
	logger    *observability.Logger

	queue chan Delivery
	wg    sync.WaitGroup

	// Lifecycle management
	mu       sync.Mutex
	started  bool
	draining bool
	stopped  bool
	cancelFn context.CancelFunc
}

// NewWorkerPool creates a new worker pool for processing events.
func NewWorkerPool(
	config WorkerPoolConfig,
	processor EventProcessor,
	logger *observability.Logger,
) WorkerPool {
	if config.NumWorkers <= 0 {
		config.NumWorkers = DefaultWorkerPoolConfig().NumWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultWorkerPoolConfig().QueueSize
	}
	if config.DrainTimeout <= 0 {
		config.DrainTimeout = DefaultWorkerPoolConfig().DrainTimeout
	}

	return &pool{
		config:    config,
		processor: processor,
		logger:    logger,
		queue:     make(chan Delivery, config.QueueSize),
	}
}

// Start initializes the worker pool with N workers.
func (p *pool) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return fmt.Errorf("worker pool already started")
	}
	if p.stopped {
		return fmt.Errorf("worker pool already stopped")
	}

	workerCtx, cancel := context.WithCancel(ctx)
	p.cancelFn = cancel
	p.started = true

	for i := 0; i < p.config.NumWorkers; i++ {
		p.wg.Add(1)
		go p.worker(workerCtx, i)
	}

	p.logger.Info(ctx, fmt.Sprintf("Started %d workers for %s processor",
		p.config.NumWorkers, p.processor.Name()))

	return nil
}

// Submit queues a delivery for processing.
func (p *pool) Submit(ctx context.Context, delivery Delivery) error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return fmt.Errorf("worker pool not started")
	}
	if p.draining || p.stopped {
		p.mu.Unlock()
		return fmt.Errorf("worker pool is shutting down")
	}
	p.mu.Unlock()

	select {
	case p.queue <- delivery:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Drain stops accepting new deliveries and waits for queued and in-flight ones to complete.
func (p *pool) Drain(ctx context.Context) error {
	p.mu.Lock()
	if !p.started {
		p.mu.Unlock()
		return fmt.Errorf("worker pool not started")
	}
	if p.draining {
		p.mu.Unlock()
		return fmt.Errorf("worker pool already draining")
	}
	p.draining = true
	p.mu.Unlock()

	p.logger.Info(ctx, fmt.Sprintf("Draining worker pool for %s processor, %d deliveries queued",
		p.processor.Name(), len(p.queue)))

	close(p.queue)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	drainCtx, cancel := context.WithTimeout(ctx, p.config.DrainTimeout)
	defer cancel()

	select {
	case <-done:
		p.logger.Info(ctx, fmt.Sprintf("Successfully drained worker pool for %s processor",
			p.processor.Name()))
		return nil
	case <-drainCtx.Done():
		p.logger.Warn(ctx, fmt.Sprintf("Drain timeout exceeded for %s processor, forcing shutdown",
			p.processor.Name()))
		p.Stop()
		return fmt.Errorf("drain timeout exceeded")
	}
}

// Stop immediately stops all workers.
func (p *pool) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}
	p.stopped = true

	if p.cancelFn != nil {
		p.cancelFn()
	}

	if !p.draining {
		close(p.queue)
	}
}

// worker processes deliveries until the queue is closed or ctx is cancelled.
func (p *pool) worker(ctx context.Context, workerID int) {
	defer p.wg.Done()

	workerCtx := observability.WithFields(ctx,
		observability.Field{Key: "worker_id", Value: workerID},
		observability.Field{Key: "processor", Value: p.processor.Name()},
	)

	p.logger.Info(workerCtx, fmt.Sprintf("Worker %d started for %s processor",
		workerID, p.processor.Name()))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info(workerCtx, fmt.Sprintf("Worker %d stopping: context cancelled",
				workerID))
			return

		case delivery, ok := <-p.queue:
			if !ok {
				p.logger.Info(workerCtx, fmt.Sprintf("Worker %d stopping: queue closed", workerID))
				return
			}

			eventCtx := observability.WithFields(workerCtx,
				observability.Field{Key: "event_id", Value: delivery.Event.ID},
				observability.Field{Key: "event_type", Value: delivery.Event.Type},
				observability.Field{Key: "partition", Value: delivery.Message.Partition},
				observability.Field{Key: "offset", Value: delivery.Message.Offset},
			)

			err := p.processor.Process(eventCtx, delivery.Event)
			if err != nil {
				p.logger.Error(eventCtx, fmt.Sprintf("Worker %d failed to process event", workerID), err)
			} else {
				p.logger.Info(eventCtx, fmt.Sprintf("Worker %d successfully processed event", workerID))
			}

			if p.config.OnResult != nil {
				p.config.OnResult(ProcessingResult{
					Delivery: delivery,
					Error:    err,
				})
			}
		}
	}
}
