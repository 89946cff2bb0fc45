package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration
type Config struct {
	Port     string
	DBConn   string
	LogLevel string

	// JWTSecret signs the session tokens issued at registration.
	JWTSecret string

	// CatalogPath optionally overrides the embedded line-item catalog.
	CatalogPath string

	// Plan generator. The service degrades gracefully when AnthropicKey is
	// empty: plan requests return the fixed fallback text.
	AnthropicKey string
	PlanModel    string
	PlanTimeout  time.Duration

	// SMTP settings for report delivery and follow-up mail. Email features
	// are disabled when SMTPHost is empty.
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SenderEmail  string

	// FollowupCron schedules the daily follow-up job.
	FollowupCron string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	planTimeout, err := strconv.Atoi(getEnv("PLAN_TIMEOUT_SECONDS", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid PLAN_TIMEOUT_SECONDS: %w", err)
	}

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		DBConn:       getEnv("DB_CONN", "host=localhost port=5432 user=test password=test dbname=calculadora sslmode=disable"),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		JWTSecret:    getEnv("JWT_SECRET", "secret"),
		CatalogPath:  getEnv("CATALOG_PATH", ""),
		AnthropicKey: getEnv("ANTHROPIC_API_KEY", ""),
		PlanModel:    getEnv("PLAN_MODEL", "claude-sonnet-4-20250514"),
		PlanTimeout:  time.Duration(planTimeout) * time.Second,
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SenderEmail:  getEnv("SENDER_EMAIL", "no-reply@tallerdebienesraices.com"),
		FollowupCron: getEnv("FOLLOWUP_CRON", "0 9 * * *"),
	}

	if cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.PlanTimeout <= 0 {
		return nil, fmt.Errorf("PLAN_TIMEOUT_SECONDS must be positive")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
