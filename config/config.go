package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultPort                = "8080"
	DefaultStorage             = "csv"
	DefaultEventsCSV           = "eventos.csv"
	DefaultModeratorSessionTTL = 8 * time.Hour
	DefaultContextTimeout      = 5 * time.Second
	DefaultLocale              = "es"
	DefaultEmailProvider       = "noop"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	LogLevel    string

	Storage     string
	EventsCSV   string
	DatabaseURL string

	AdminPassword       string
	JWTSecret           string
	ModeratorSessionTTL time.Duration
	ContextTimeout      time.Duration

	CORSAllowedOrigins []string
	DefaultLocale      string

	ModeratorEmail           string
	EmailProvider            string
	EmailFromAddress         string
	EmailFromName            string
	AWSRegion                string
	AWSAccessKeyID           string
	AWSSecretAccessKey       string
	AWSSESInsecureSkipVerify bool
}

// Load loads configuration from environment variables
// It attempts to load from .env file if not in production
func Load() (*Config, error) {
	env := getenv("GO_ENV", "development")

	// In production we rely on system environment variables only.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			slog.Warn(".env file not found or couldn't be loaded", "err", err)
		}
	}

	cfg := &Config{
		Environment:        env,
		Port:               getenv("PORT", DefaultPort),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		Storage:            strings.ToLower(getenv("STORAGE", DefaultStorage)),
		EventsCSV:          getenv("EVENTS_CSV", DefaultEventsCSV),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		DefaultLocale:      getenv("DEFAULT_LOCALE", DefaultLocale),
		ModeratorEmail:     os.Getenv("MODERATOR_EMAIL"),
		EmailProvider:      getenv("EMAIL_PROVIDER", DefaultEmailProvider),
		EmailFromAddress:   os.Getenv("EMAIL_FROM_ADDRESS"),
		EmailFromName:      os.Getenv("EMAIL_FROM_NAME"),
		AWSRegion:          os.Getenv("AWS_REGION"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
	}

	var err error
	if cfg.ModeratorSessionTTL, err = getDuration("MODERATOR_SESSION_TTL", DefaultModeratorSessionTTL); err != nil {
		return nil, err
	}
	if cfg.ContextTimeout, err = getDuration("CONTEXT_TIMEOUT", DefaultContextTimeout); err != nil {
		return nil, err
	}
	if s := os.Getenv("AWS_SES_INSECURE_SKIP_VERIFY"); s != "" {
		if cfg.AWSSESInsecureSkipVerify, err = strconv.ParseBool(s); err != nil {
			return nil, fmt.Errorf("AWS_SES_INSECURE_SKIP_VERIFY: %w", err)
		}
	}

	switch cfg.Storage {
	case "csv":
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required when STORAGE=postgres")
		}
	default:
		return nil, fmt.Errorf("unsupported STORAGE %q (want csv or postgres)", cfg.Storage)
	}
	if cfg.JWTSecret == "" && env == "production" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
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
