package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Settings  SettingsConfig
	Webhook   WebhookConfig
	Batch     BatchConfig
	Dashboard DashboardConfig
	Seed      SeedConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	AllowedOrigins []string
}

// SettingsConfig holds the location of the persisted settings file
type SettingsConfig struct {
	Path string
}

// WebhookConfig holds the automation-webhook defaults
type WebhookConfig struct {
	DefaultURL string
	Timeout    time.Duration
}

// BatchConfig holds batch-processing tunables
type BatchConfig struct {
	// RowDelay throttles row processing so streamed progress is observable.
	// Zero disables throttling.
	RowDelay time.Duration
}

// DashboardConfig holds the fixed population figures the dashboard reports.
// The prediction store is a sample, not the full workforce, so these are
// configured rather than derived.
type DashboardConfig struct {
	TotalEmployees   int
	AvgTeamAdherence float64
}

// SeedConfig controls the synthetic portion of the seeded prediction history
type SeedConfig struct {
	SyntheticCount int
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:           appPort,
		Env:            getEnv("APP_ENV", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	// Settings file configuration
	config.Settings = SettingsConfig{
		Path: getEnv("SETTINGS_PATH", "./data/settings.json"),
	}

	// Webhook configuration
	webhookTimeout, err := time.ParseDuration(getEnv("WEBHOOK_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEBHOOK_TIMEOUT: %w", err)
	}

	config.Webhook = WebhookConfig{
		DefaultURL: getEnv("DEFAULT_WEBHOOK_URL", "https://mock.n8n.io/webhook/shiftsense-intake"),
		Timeout:    webhookTimeout,
	}

	// Batch configuration
	rowDelay, err := time.ParseDuration(getEnv("BATCH_ROW_DELAY", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BATCH_ROW_DELAY: %w", err)
	}

	config.Batch = BatchConfig{
		RowDelay: rowDelay,
	}

	// Dashboard configuration
	totalEmployees, err := strconv.Atoi(getEnv("TOTAL_EMPLOYEES", "120"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOTAL_EMPLOYEES: %w", err)
	}

	avgAdherence, err := strconv.ParseFloat(getEnv("AVG_TEAM_ADHERENCE", "88"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid AVG_TEAM_ADHERENCE: %w", err)
	}

	config.Dashboard = DashboardConfig{
		TotalEmployees:   totalEmployees,
		AvgTeamAdherence: avgAdherence,
	}

	// Seed configuration
	syntheticCount, err := strconv.Atoi(getEnv("SEED_SYNTHETIC_COUNT", "40"))
	if err != nil {
		return nil, fmt.Errorf("invalid SEED_SYNTHETIC_COUNT: %w", err)
	}

	config.Seed = SeedConfig{
		SyntheticCount: syntheticCount,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.App.Port <= 0 || c.App.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535")
	}
	if c.Settings.Path == "" {
		return fmt.Errorf("SETTINGS_PATH is required")
	}
	if _, err := url.ParseRequestURI(c.Webhook.DefaultURL); err != nil {
		return fmt.Errorf("DEFAULT_WEBHOOK_URL must be a valid absolute URL: %w", err)
	}
	if c.Webhook.Timeout <= 0 {
		return fmt.Errorf("WEBHOOK_TIMEOUT must be positive")
	}
	if c.Batch.RowDelay < 0 {
		return fmt.Errorf("BATCH_ROW_DELAY must not be negative")
	}
	if c.Seed.SyntheticCount < 0 {
		return fmt.Errorf("SEED_SYNTHETIC_COUNT must not be negative")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvSlice(env, fallback string) []string {
	value := getEnv(env, fallback)
	if value == "" {
		return []string{}
	}
	var result []string = strings.Split(value, ",")
	return result
}
