package config

import (
	"os"
	"strconv"
	"strings"

	dnderr "github.com/KirkDiggler/rpg-combat-core/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Log     LogConfig
	Economy EconomyConfig
	Player  PlayerConfig
}

// LogConfig controls the logrus logger
type LogConfig struct {
	Level  string // anything logrus.ParseLevel accepts
	Format string // "text" or "json"
}

// EconomyConfig holds currency settings for the shop scenarios
type EconomyConfig struct {
	Currency     string
	StartingGold int
}

// PlayerConfig holds the player's starting stats
type PlayerConfig struct {
	MaxHealth   int
	AttackPower int
	Defense     int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: strings.ToLower(getEnvOrDefault("LOG_FORMAT", "text")),
		},
		Economy: EconomyConfig{
			Currency:     getEnvOrDefault("CURRENCY_NAME", "gold"),
			StartingGold: getEnvAsIntOrDefault("STARTING_GOLD", 0),
		},
		Player: PlayerConfig{
			MaxHealth:   getEnvAsIntOrDefault("PLAYER_MAX_HEALTH", 100),
			AttackPower: getEnvAsIntOrDefault("PLAYER_ATTACK", 10),
			Defense:     getEnvAsIntOrDefault("PLAYER_DEFENSE", 5),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that would otherwise fail later at entity or purse creation
func (c *Config) Validate() error {
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return dnderr.InvalidConfigf("LOG_FORMAT must be text or json, got %q", c.Log.Format)
	}
	if c.Economy.StartingGold < 0 {
		return dnderr.InvalidConfigf("STARTING_GOLD cannot be negative: %d", c.Economy.StartingGold)
	}
	if c.Player.MaxHealth < 0 || c.Player.AttackPower < 0 || c.Player.Defense < 0 {
		return dnderr.InvalidConfig("player stats cannot be negative")
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
