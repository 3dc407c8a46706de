package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"ops-dashboard/internal/observability"

	"github.com/segmentio/kafka-go"
)

// Consumer reads and decodes events from one topic of a consumer group
type Consumer struct {
	reader *kafka.Reader
	logger *observability.Logger
}

// ConsumerConfig contains configuration for Kafka consumer
type ConsumerConfig struct {
	Brokers  []string
	Topic    string
	GroupID  string
	MinBytes int
	MaxBytes int
}

// NewConsumer creates a new Kafka consumer
func NewConsumer(config ConsumerConfig, logger *observability.Logger) *Consumer {
	if config.MinBytes == 0 {
		config.MinBytes = 10e3 // 10KB
	}
	if config.MaxBytes == 0 {
		config.MaxBytes = 10e6 // 10MB
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     config.Brokers,
		Topic:       config.Topic,
		GroupID:     config.GroupID,
		MinBytes:    config.MinBytes,
		MaxBytes:    config.MaxBytes,
		StartOffset: kafka.FirstOffset,
		// Offsets are committed explicitly after processing
		CommitInterval: 0,
	})

	return &Consumer{
		reader: reader,
		logger: logger,
	}
}

// Fetch blocks until the next decodable event arrives. Messages that are not
// valid JSON events are committed and skipped so they are never redelivered.
func (c *Consumer) Fetch(ctx context.Context) (EventMessage, kafka.Message, error) {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return EventMessage{}, kafka.Message{}, fmt.Errorf("failed to fetch message from kafka: %w", err)
		}

		var event EventMessage
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			msgCtx := observability.WithFields(ctx,
				observability.Field{Key: "partition", Value: msg.Partition},
				observability.Field{Key: "offset", Value: msg.Offset},
			)
			c.logger.Error(msgCtx, "failed to unmarshal event, skipping", err)
			if commitErr := c.reader.CommitMessages(ctx, msg); commitErr != nil {
				c.logger.Error(msgCtx, "failed to commit skipped message", commitErr)
			}
			continue
		}
		return event, msg, nil
	}
}

// Commit marks msg as processed for the consumer group
func (c *Consumer) Commit(ctx context.Context, msg kafka.Message) error {
	return c.reader.CommitMessages(ctx, msg)
}

// Close closes the Kafka consumer
func (c *Consumer) Close() error {
	return c.reader.Close()
}
