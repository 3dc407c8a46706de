package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ops-dashboard/internal/clients/kafka"
	"ops-dashboard/internal/config"
	inquiryProcessor "ops-dashboard/internal/inquiries/processor"
	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/store"
	"ops-dashboard/internal/workers"
	"ops-dashboard/internal/workers/inbound"
)

func main() {
	if err := config.LoadEnvFile(); err != nil {
		log.Printf("Warning: %v", err)
	}

	logger := observability.NewLogger()
	ctx := context.Background()

	logger.Info(ctx, "Starting inbound email worker...")

	dbConfig, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("Database configuration not set: %v", err)
	}
	kafkaConfig, err := config.LoadKafka()
	if err != nil {
		log.Fatalf("Kafka configuration not set: %v", err)
	}

	dataStore, err := store.New(ctx, dbConfig.ConnectionString(), store.PoolConfig{
		MaxOpenConns: dbConfig.MaxOpenConns,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer dataStore.Close()

	inquiries := inquiryProcessor.New(&dataStore, logger)

	source := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: kafkaConfig.Brokers,
		Topic:   kafkaConfig.InboundTopic,
		GroupID: kafkaConfig.ConsumerGroup,
	}, logger)

	consumer := workers.NewConsumer(workers.ConsumerConfig{
		NumWorkers: kafkaConfig.InboundWorkers,
	}, source, inbound.NewProcessor(&inquiries, logger), logger)

	logger.Info(ctx, fmt.Sprintf(`Inbound email worker configuration:
  - Workers: %d
  - Kafka brokers: %v
  - Kafka topic: %s
  - Consumer group: %s`,
		kafkaConfig.InboundWorkers, kafkaConfig.Brokers, kafkaConfig.InboundTopic, kafkaConfig.ConsumerGroup))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := consumer.Start(ctx); err != nil {
			logger.Error(ctx, "Inbound consumer error", err)
		}
	}()

	select {
	case <-sigChan:
		logger.Info(ctx, "Received shutdown signal, draining in-flight emails...")
		consumer.Stop()
		<-done
	case <-done:
	}

	logger.Info(ctx, "Inbound email worker stopped")
}
