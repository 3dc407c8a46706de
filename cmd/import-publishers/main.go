package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	authProcessor "ops-dashboard/internal/auth/processor"
	"ops-dashboard/internal/clients/objectstore"
	"ops-dashboard/internal/config"
	"ops-dashboard/internal/importer"
	"ops-dashboard/internal/observability"
	publisherProcessor "ops-dashboard/internal/publishers/processor"
	"ops-dashboard/internal/store"
)

var (
	source = flag.String("f", "", "File to import: a local path or s3://bucket/key (.csv, .json, .yaml)")
	kind   = flag.String("kind", "publishers", "What the file holds: 'publishers' or 'users'")
)

func main() {
	flag.Parse()
	if *source == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := config.LoadEnvFile(); err != nil {
		log.Printf("Warning: %v", err)
	}

	logger := observability.NewLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	format, err := importer.DetectFormat(*source)
	if err != nil {
		log.Fatalf("%s: %v", *source, err)
	}

	data, err := read(ctx, *source, logger)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *source, err)
	}

	records, err := importer.Decode(format, data)
	if err != nil {
		log.Fatalf("Failed to decode %s: %v", *source, err)
	}
	logger.Info(ctx, fmt.Sprintf("Found %d records in %s", len(records), *source))

	dbConfig, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("Database configuration not set: %v", err)
	}
	dataStore, err := store.New(ctx, dbConfig.ConnectionString(), store.PoolConfig{MaxOpenConns: 4}, logger)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer dataStore.Close()

	switch *kind {
	case "publishers":
		err = importPublishers(ctx, &dataStore, records, logger)
	case "users":
		err = importUsers(ctx, &dataStore, records, logger)
	default:
		err = fmt.Errorf("unknown kind %q", *kind)
	}
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}
}

func read(ctx context.Context, source string, logger *observability.Logger) ([]byte, error) {
	if !objectstore.IsURI(source) {
		return os.ReadFile(source)
	}
	client, err := objectstore.NewClient(ctx, config.LoadS3(), logger)
	if err != nil {
		return nil, err
	}
	return client.Fetch(ctx, source)
}

func importPublishers(ctx context.Context, dataStore *store.Store, records []importer.Record, logger *observability.Logger) error {
	// Broadcasts are not needed here, so no job queue is wired
	publishers := publisherProcessor.New(dataStore, nil, logger)

	result, err := publishers.BulkUpload(ctx, importer.Publishers(records))
	if err != nil {
		return err
	}

	logger.Info(ctx, fmt.Sprintf("Imported %d publishers (%d received, %d skipped, %d already present)",
		result.Inserted, result.Received, result.Skipped, result.Received-result.Skipped-result.Inserted))
	return nil
}

// importUsers creates agent accounts one by one; existing usernames are skipped
func importUsers(ctx context.Context, dataStore *store.Store, records []importer.Record, logger *observability.Logger) error {
	auth := authProcessor.New(dataStore, authProcessor.AuthConfig{}, logger)

	var imported, skipped, failed int
	for _, user := range importer.Users(records) {
		rowCtx := observability.WithFields(ctx, observability.Field{Key: "username", Value: user.Username})
		_, err := auth.CreateUser(rowCtx, user)
		switch {
		case err == nil:
			imported++
		case errors.Is(err, authProcessor.ErrUserExists):
			logger.Warn(rowCtx, "user already exists, skipping")
			skipped++
		default:
			logger.Error(rowCtx, "failed to import user", err)
			failed++
		}
	}

	logger.Info(ctx, fmt.Sprintf("Imported %d users (%d skipped, %d failed)", imported, skipped, failed))
	if failed > 0 {
		return fmt.Errorf("%d users could not be imported", failed)
	}
	return nil
}
