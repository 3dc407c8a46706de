package workers

import (
	"context"

	kafka "ops-dashboard/internal/clients/kafka"

	kafkago "github.com/segmentio/kafka-go"
)

// EventMessage is an alias for the Kafka event message type.
// This allows worker packages to reference EventMessage without importing kafka directly.
type EventMessage = kafka.EventMessage

// Delivery pairs an event with the Kafka message it was decoded from,
// so the offset can be committed once the event is processed.
type Delivery struct {
	Event   EventMessage
	Message kafkago.Message
}

// EventProcessor defines the interface for processing events from Kafka.
// Implementations should be idempotent as events may be redelivered on failure.
type EventProcessor interface {
	// Process handles a single event from Kafka.
	// Returns an error if processing fails, which will prevent offset commit
	// and cause the event to be redelivered.
	Process(ctx context.Context, event EventMessage) error

	// Name returns the processor name for logging and metrics.
	Name() string
}

// EventSource yields decoded events and commits their offsets.
// *kafka.Consumer satisfies it.
type EventSource interface {
	Fetch(ctx context.Context) (EventMessage, kafkago.Message, error)
	Commit(ctx context.Context, msg kafkago.Message) error
	Close() error
}

// EventConsumer defines the interface for consuming events from Kafka
// and distributing them to a worker pool.
type EventConsumer interface {
	// Start begins consuming events from Kafka and processing them.
	// Blocks until Stop is called or ctx is cancelled.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the consumer, draining in-flight events.
	Stop()
}

// WorkerPool defines the interface for managing a pool of event processing workers.
type WorkerPool interface {
	// Start initializes the worker pool with N workers.
	Start(ctx context.Context) error

	// Submit adds a delivery to the worker pool for processing.
	// Blocks if the queue is full.
	Submit(ctx context.Context, delivery Delivery) error

	// Drain stops accepting new deliveries and waits for in-flight ones to complete.
	Drain(ctx context.Context) error

	// Stop immediately stops all workers.
	Stop()
}
