package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port         int
	LogLevel     string
	LogFormat    string
	Environment  string
	DBUser       string
	DBPassword   string
	DBHost       string
	DBPort       string
	DBName       string
	DiscordToken string
	ChannelIDs   []string // Discord channels the bot listens on
	ModRoles     []string // Role names treated as moderators

	MarketTickMinutes int // interval for the background market tick
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		Environment:  getEnv("ENVIRONMENT", "dev"),
		DBUser:       getEnv("DB_USER", "postgres"),
		DBPassword:   getEnv("DB_PASSWORD", "postgres"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBName:       getEnv("DB_NAME", "dumpsterbot"),
		DiscordToken: getEnv("DISCORD_TOKEN", ""),
		ChannelIDs:   splitEnvList(getEnv("CHANNEL_IDS", "")),
		ModRoles:     splitEnvList(getEnv("MOD_ROLES", "Moderator")),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	tickStr := getEnv("MARKET_TICK_MINUTES", "5")
	tick, err := strconv.Atoi(tickStr)
	if err != nil || tick < 1 {
		return nil, fmt.Errorf("invalid MARKET_TICK_MINUTES value %q", tickStr)
	}
	cfg.MarketTickMinutes = tick

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitEnvList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
