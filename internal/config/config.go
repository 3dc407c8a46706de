package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Auth     AuthConfig
	Services ServicesConfig
	AI       AIConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Jobs     JobsConfig
	S3       S3Config
	Server   ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string
	Username     string
	Password     string
	Name         string
	MaxOpenConns int
}

// AuthConfig holds authentication-related configuration
type AuthConfig struct {
	JWTSecret        string
	TokenTTL         time.Duration
	LoginAttemptsRPM int
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
	SalesMailbox       string
	WebAppURI          string
}

// AIConfig selects and configures the reply drafting provider
type AIConfig struct {
	Provider       string // "openai" or "gemini"
	OpenAIAPIKey   string
	OpenAIBaseURL  string // optional, for OpenAI-compatible endpoints
	OpenAIModel    string
	GeminiAPIKey   string
	GeminiModel    string
	AgentSignature string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// Addr returns host:port for clients that take a single address
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// KafkaConfig holds Kafka/event streaming configuration
type KafkaConfig struct {
	Brokers        []string
	EventsTopic    string
	InboundTopic   string
	ConsumerGroup  string
	InboundWorkers int
	MonitorOnStart bool
}

// JobsConfig holds background job configuration
type JobsConfig struct {
	Concurrency          int
	ExpiryDigestCron     string
	BroadcastConcurrency int
}

// S3Config holds object storage settings used by the publisher import
type S3Config struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	if err := LoadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{}

	var err error
	if cfg.Database, err = LoadDatabase(); err != nil {
		return nil, err
	}

	// Auth configuration
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Auth.TokenTTL, err = getDurationWithDefault("JWT_TOKEN_TTL", "24h"); err != nil {
		return nil, err
	}
	if cfg.Auth.LoginAttemptsRPM, err = getIntWithDefault("LOGIN_ATTEMPTS_PER_MINUTE", "10"); err != nil {
		return nil, err
	}

	if cfg.Services, err = LoadServices(); err != nil {
		return nil, err
	}
	if cfg.Services.WebAppURI, err = requireEnv("WEBAPP_URI"); err != nil {
		return nil, err
	}

	// AI configuration
	if cfg.AI, err = loadAI(); err != nil {
		return nil, err
	}

	if cfg.Redis, err = LoadRedis(); err != nil {
		return nil, err
	}

	if cfg.Kafka, err = LoadKafka(); err != nil {
		return nil, err
	}

	if cfg.Jobs, err = LoadJobs(); err != nil {
		return nil, err
	}

	cfg.S3 = LoadS3()

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// LoadEnvFile loads env.local in non-production environments
func LoadEnvFile() error {
	if os.Getenv("GO_ENV") == "production" {
		return nil
	}
	if err := godotenv.Load("env.local"); err != nil {
		return fmt.Errorf("failed to load env.local: %w", err)
	}
	return nil
}

// LoadDatabase reads the database settings shared by every binary
func LoadDatabase() (DatabaseConfig, error) {
	var (
		db  DatabaseConfig
		err error
	)
	if db.Host, err = requireEnv("DB_HOST"); err != nil {
		return db, err
	}
	if db.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return db, err
	}
	if db.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return db, err
	}
	if db.Name, err = requireEnv("DB_NAME"); err != nil {
		return db, err
	}
	if db.MaxOpenConns, err = getIntWithDefault("DB_MAX_OPEN_CONNS", "25"); err != nil {
		return db, err
	}
	return db, nil
}

// LoadServices reads the mail provider settings. WebAppURI is only needed by the API.
func LoadServices() (ServicesConfig, error) {
	var (
		svc ServicesConfig
		err error
	)
	if svc.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return svc, err
	}
	if svc.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return svc, err
	}
	svc.SalesMailbox = getEnvWithDefault("SALES_MAILBOX_ADDRESS", svc.DefaultEmailSender)
	return svc, nil
}

// LoadRedis reads Redis settings; Redis is optional and disabled when REDIS_HOST is empty
func LoadRedis() (RedisConfig, error) {
	var (
		r   RedisConfig
		err error
	)
	r.Host = os.Getenv("REDIS_HOST")
	r.Enabled = r.Host != ""
	r.Password = os.Getenv("REDIS_PASSWORD")
	if r.Port, err = getIntWithDefault("REDIS_PORT", "6379"); err != nil {
		return r, err
	}
	if r.DB, err = getIntWithDefault("REDIS_DB", "0"); err != nil {
		return r, err
	}
	return r, nil
}

// LoadKafka reads Kafka settings
func LoadKafka() (KafkaConfig, error) {
	var k KafkaConfig
	brokers, err := requireEnv("KAFKA_BROKERS")
	if err != nil {
		return k, err
	}
	k.Brokers = strings.Split(brokers, ",")
	k.EventsTopic = getEnvWithDefault("KAFKA_EVENTS_TOPIC", "dashboard-events")
	k.InboundTopic = getEnvWithDefault("KAFKA_INBOUND_TOPIC", "inbound-emails")
	k.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "inbound-email-consumers")
	if k.InboundWorkers, err = getIntWithDefault("INBOUND_WORKERS", "5"); err != nil {
		return k, err
	}
	k.MonitorOnStart = getEnvWithDefault("EMAIL_MONITOR_ON_START", "false") == "true"
	return k, nil
}

// LoadS3 reads object storage settings; credentials fall back to the default AWS chain when empty
func LoadS3() S3Config {
	return S3Config{
		Region:          getEnvWithDefault("AWS_REGION", "us-east-1"),
		AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}
}

func loadAI() (AIConfig, error) {
	var (
		ai  AIConfig
		err error
	)
	ai.Provider = getEnvWithDefault("AI_PROVIDER", "openai")
	ai.AgentSignature = getEnvWithDefault("AGENT_SIGNATURE", "The Sales Team")
	switch ai.Provider {
	case "openai":
		if ai.OpenAIAPIKey, err = requireEnv("OPENAI_API_KEY"); err != nil {
			return ai, err
		}
		ai.OpenAIBaseURL = os.Getenv("OPENAI_BASE_URL")
		ai.OpenAIModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
	case "gemini":
		if ai.GeminiAPIKey, err = requireEnv("GOOGLE_AI_API_KEY"); err != nil {
			return ai, err
		}
		ai.GeminiModel = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	default:
		return ai, fmt.Errorf("unsupported AI_PROVIDER %q", ai.Provider)
	}
	return ai, nil
}

// LoadJobs reads the background job settings
func LoadJobs() (JobsConfig, error) {
	var (
		j   JobsConfig
		err error
	)
	if j.Concurrency, err = getIntWithDefault("JOB_CONCURRENCY", "10"); err != nil {
		return j, err
	}
	if j.BroadcastConcurrency, err = getIntWithDefault("BROADCAST_CONCURRENCY", "5"); err != nil {
		return j, err
	}
	j.ExpiryDigestCron = getEnvWithDefault("EXPIRY_DIGEST_CRON", "0 8 * * *")
	return j, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntWithDefault(key, defaultValue string) (int, error) {
	v, err := strconv.Atoi(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}

func getDurationWithDefault(key, defaultValue string) (time.Duration, error) {
	v, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return v, nil
}
