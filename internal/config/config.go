package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port              int
	DevMode           bool
	LogLevel          string
	SimulationSeed    uint64
	MaxConcurrentSims int
	QuoteTTLSeconds   int
	QuoteRefreshCron  string
	WatchedSymbols    []string
	GeminiAPIKey      string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnvAsInt("PORT", 8000),
		DevMode:           getEnvAsBool("DEV_MODE", false),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		SimulationSeed:    uint64(getEnvAsInt("SIMULATION_SEED", 0)),
		MaxConcurrentSims: getEnvAsInt("MAX_CONCURRENT_SIMS", 0), // 0 = CPU count
		QuoteTTLSeconds:   getEnvAsInt("QUOTE_TTL_SECONDS", 60),
		QuoteRefreshCron:  getEnv("QUOTE_REFRESH_CRON", "0 */5 * * * *"), // Every 5 minutes
		WatchedSymbols:    getEnvAsList("WATCHED_SYMBOLS", []string{"AAPL", "SPY"}),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be in 1-65535, got %d", c.Port)
	}

	if c.QuoteTTLSeconds < 1 {
		return fmt.Errorf("QUOTE_TTL_SECONDS must be positive, got %d", c.QuoteTTLSeconds)
	}

	// Note: Gemini API key optional; insight falls back to templates

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return defaultValue
}
