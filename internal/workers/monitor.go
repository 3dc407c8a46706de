package workers

import (
	"context"
	"errors"
	"sync"

	"ops-dashboard/internal/observability"
)

var (
	ErrAlreadyRunning = errors.New("consumer already running")
	ErrNotRunning     = errors.New("consumer not running")
)

// ConsumerFactory builds a fresh consumer for every run; a stopped consumer
// cannot be restarted.
type ConsumerFactory func() (EventConsumer, error)

// Monitor starts and stops a background consumer on demand.
type Monitor struct {
	factory ConsumerFactory
	logger  *observability.Logger

	mu      sync.Mutex
	current EventConsumer
}

func NewMonitor(factory ConsumerFactory, logger *observability.Logger) *Monitor {
	return &Monitor{
		factory: factory,
		logger:  logger,
	}
}

// Start launches a new consumer in the background.
func (m *Monitor) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		return ErrAlreadyRunning
	}

	c, err := m.factory()
	if err != nil {
		m.logger.Error(ctx, "failed to create consumer", err)
		return err
	}
	m.current = c

	runCtx := context.WithoutCancel(ctx)
	go func() {
		if err := c.Start(runCtx); err != nil {
			m.logger.Error(runCtx, "consumer exited with error", err)
		}
		m.mu.Lock()
		if m.current == c {
			m.current = nil
		}
		m.mu.Unlock()
	}()

	m.logger.Info(ctx, "consumer started")
	return nil
}

// Stop stops the running consumer and waits for it to drain.
func (m *Monitor) Stop(ctx context.Context) error {
	m.mu.Lock()
	c := m.current
	m.current = nil
	m.mu.Unlock()

	if c == nil {
		return ErrNotRunning
	}
	c.Stop()
	m.logger.Info(ctx, "consumer stopped")
	return nil
}

// Running reports whether a consumer is active.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current != nil
}
