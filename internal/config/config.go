package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"github.com/rabirubia/marine-card/internal/forecast"
)

// AppConfig carries every process-wide setting. It is loaded once in main
// and passed down explicitly; nothing reads the environment after Load.
type AppConfig struct {
	// NWS text-product endpoints.
	NWSBaseURL     string `validate:"required,url"`
	NWSCombinedURL string `validate:"required,url"`

	// FetchTimeout bounds each product fetch.
	FetchTimeout time.Duration `validate:"required"`

	// OutputPath is the fixed card artifact location, overwritten each run.
	OutputPath string `validate:"required"`

	// GenerateAt is the daily schedule in "HH:MM" local (AST), serve mode only.
	GenerateAt string `validate:"required,len=5"`

	// StoreMaxHistory caps the in-memory run report history.
	StoreMaxHistory int `validate:"gte=1"`

	Port      string `validate:"required"`
	LogLevel  string
	LogFormat string

	ShutdownTimeout time.Duration
}

var validate = validator.New()

// Load reads configuration from environment with sensible defaults.
func Load(logf func(format string, args ...any)) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && logf != nil {
		logf("no .env file found or error loading it: %v", err)
	}

	cfg := &AppConfig{
		NWSBaseURL:      getenvDefault("NWS_BASE_URL", forecast.DefaultBaseURL),
		NWSCombinedURL:  getenvDefault("NWS_COMBINED_URL", forecast.DefaultCombinedURL),
		OutputPath:      getenvDefault("OUTPUT_PATH", "output/marine_forecast.jpg"),
		GenerateAt:      getenvDefault("GENERATE_AT", "06:30"),
		StoreMaxHistory: getenvInt("STORE_MAX_HISTORY", 30),
		Port:            getenvDefault("PORT", "8080"),
		LogLevel:        getenvDefault("LOG_LEVEL", "info"),
		LogFormat:       getenvDefault("LOG_FORMAT", "json"),
	}

	timeoutStr := getenvDefault("FETCH_TIMEOUT", "20s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}
	cfg.FetchTimeout = timeout

	shutdownStr := getenvDefault("SHUTDOWN_TIMEOUT", "10s")
	shutdown, err := time.ParseDuration(shutdownStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	cfg.ShutdownTimeout = shutdown

	if _, err := time.Parse("15:04", cfg.GenerateAt); err != nil {
		return nil, fmt.Errorf("invalid GENERATE_AT (want HH:MM): %w", err)
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
