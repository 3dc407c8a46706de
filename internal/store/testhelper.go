package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"ops-dashboard/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a test database instance
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  Store
}

// SetupTestDB connects to the test PostgreSQL instance. Tests are skipped when
// TEST_DB_HOST is not set so the unit suite runs without a database.
// Migrations are applied by Flyway in docker compose; set TEST_DB_MIGRATE=true
// to apply migrations/ from the test process instead.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if os.Getenv("TEST_DB_HOST") == "" {
		t.Skip("TEST_DB_HOST not set, skipping database test")
	}

	db, err := setupPostgresDB(t)
	if err != nil {
		t.Fatalf("failed to setup test database: %v", err)
	}

	if os.Getenv("TEST_DB_MIGRATE") == "true" {
		if err := runMigrations(db); err != nil {
			t.Fatalf("failed to run migrations: %v", err)
		}
	}

	logger := observability.NewLogger()
	return &TestDB{
		db:     db,
		logger: logger,
		Store:  Store{db: db, logger: logger},
	}
}

func setupPostgresDB(t *testing.T) (*sqlx.DB, error) {
	t.Helper()

	dbHost := os.Getenv("TEST_DB_HOST")
	dbPort := getTestEnv("TEST_DB_PORT", "5432")
	dbUser := getTestEnv("TEST_DB_USER", "ops_user")
	dbPass := getTestEnv("TEST_DB_PASSWORD", "ops_password")
	dbName := getTestEnv("TEST_DB_NAME", "ops_dashboard_test")

	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sqlx.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db, nil
}

func getTestEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// runMigrations applies all migration files to the database
func runMigrations(db *sqlx.DB) error {
	migrationsDir := "../../migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		migrationsDir = "migrations"
		if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
			return fmt.Errorf("migrations directory not found")
		}
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "V*.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no migration files found in %s", migrationsDir)
	}
	sort.Strings(files)

	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", file, err)
		}
		if _, err := db.Exec(string(content)); err != nil {
			// Re-running against an already migrated schema is fine.
			if strings.Contains(err.Error(), "already exists") {
				continue
			}
			return fmt.Errorf("failed to execute migration %s: %w", filepath.Base(file), err)
		}
	}

	return nil
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T, tables ...string) {
	t.Helper()

	if len(tables) == 0 {
		// reverse dependency order
		tables = []string{
			"licenses",
			"conversation_messages",
			"responses",
			"inquiries",
			"clients",
			"publishers",
			"users",
		}
	}

	for _, table := range tables {
		_, err := tdb.db.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			if !strings.Contains(err.Error(), "does not exist") {
				t.Fatalf("failed to truncate table %s: %v", table, err)
			}
		}
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() error {
	return tdb.db.Close()
}

// GetDB returns the underlying sqlx.DB for direct access if needed
func (tdb *TestDB) GetDB() *sqlx.DB {
	return tdb.db
}

// ExecSQL executes raw SQL for test setup
func (tdb *TestDB) ExecSQL(t *testing.T, query string, args ...interface{}) sql.Result {
	t.Helper()
	result, err := tdb.db.Exec(query, args...)
	if err != nil {
		t.Fatalf("failed to execute SQL: %v", err)
	}
	return result
}

// WithContext returns a context for testing
func (tdb *TestDB) WithContext() context.Context {
	return context.Background()
}
