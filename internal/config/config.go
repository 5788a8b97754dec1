package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port           string
	LogLevel       string
	BackendURL     string
	BackendTimeout time.Duration
	JWTSecret      string
	ServiceToken   string
	DBConn         string
	EncryptionKey  string
	RedisAddr      string
	CORSOrigins    []string

	ReportCurrency    string
	ReportConcurrency int

	SMTPHost         string
	SMTPPort         string
	SMTPUsername     string
	SMTPPassword     string
	SenderEmail      string
	ReminderSchedule string
	ExpiryNoticeDays int
}

// NewConfig loads configuration from environment variables. A .env file in the
// working directory is read first when it exists; real env vars win.
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	timeout, err := time.ParseDuration(getEnv("BACKEND_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid BACKEND_TIMEOUT: %w", err)
	}
	concurrency, err := strconv.Atoi(getEnv("REPORT_CONCURRENCY", "8"))
	if err != nil || concurrency < 1 {
		return nil, fmt.Errorf("invalid REPORT_CONCURRENCY: %q", os.Getenv("REPORT_CONCURRENCY"))
	}
	noticeDays, err := strconv.Atoi(getEnv("EXPIRY_NOTICE_DAYS", "60"))
	if err != nil || noticeDays < 0 {
		return nil, fmt.Errorf("invalid EXPIRY_NOTICE_DAYS: %q", os.Getenv("EXPIRY_NOTICE_DAYS"))
	}

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "INFO"),
		BackendURL:        strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:8081"), "/"),
		BackendTimeout:    timeout,
		JWTSecret:         getEnv("JWT_SECRET", ""),
		ServiceToken:      getEnv("SERVICE_TOKEN", ""),
		DBConn:            getEnv("DB_CONN", ""),
		EncryptionKey:     getEnv("ENCRYPTION_KEY", ""),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		CORSOrigins:       splitList(getEnv("CORS_ORIGINS", "http://localhost:3000")),
		ReportCurrency:    getEnv("REPORT_CURRENCY", "USD"),
		ReportConcurrency: concurrency,
		SMTPHost:          getEnv("SMTP_HOST", ""),
		SMTPPort:          getEnv("SMTP_PORT", "587"),
		SMTPUsername:      getEnv("SMTP_USERNAME", ""),
		SMTPPassword:      getEnv("SMTP_PASSWORD", ""),
		SenderEmail:       getEnv("SENDER_EMAIL", "no-reply@rentmate.local"),
		ReminderSchedule:  getEnv("REMINDER_SCHEDULE", "0 8 * * *"),
		ExpiryNoticeDays:  noticeDays,
	}

	if cfg.BackendURL == "" {
		return nil, fmt.Errorf("BACKEND_URL is required")
	}
	u, err := url.Parse(cfg.BackendURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("BACKEND_URL must be an absolute URL, got %q", cfg.BackendURL)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.RemindersEnabled() && cfg.EncryptionKey == "" {
		return nil, fmt.Errorf("ENCRYPTION_KEY is required when reminders are enabled")
	}

	return cfg, nil
}

// RemindersEnabled reports whether the scheduled reminder sweep has everything it needs.
func (c *Config) RemindersEnabled() bool {
	return c.SMTPHost != "" && c.ServiceToken != "" && c.DBConn != ""
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
