package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/mindvault/mindvault/internal/learning"
)

// Config holds all configuration for our application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Learning LearningConfig `mapstructure:"learning"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver string `mapstructure:"driver"` // postgres | sqlite3
	DSN    string `mapstructure:"dsn"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LearningConfig overrides the engine's policy constants. Zero values fall
// back to the documented defaults.
type LearningConfig struct {
	AccuracyWeight    float64 `mapstructure:"accuracy_weight"`
	SelfRatingWeight  float64 `mapstructure:"self_rating_weight"`
	PracticeIncrement int32   `mapstructure:"practice_increment"`
	InitialEaseFactor float64 `mapstructure:"initial_ease_factor"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Enable reading from environment variables
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults() {
	defaults := learning.DefaultConfig()

	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)

	// Database defaults
	viper.SetDefault("database.driver", "sqlite3")
	viper.SetDefault("database.dsn", "data/mindvault.db")

	// Log defaults
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "json")

	// Learning policy defaults
	viper.SetDefault("learning.accuracy_weight", defaults.AccuracyWeight)
	viper.SetDefault("learning.self_rating_weight", defaults.SelfRatingWeight)
	viper.SetDefault("learning.practice_increment", defaults.PracticeIncrement)
	viper.SetDefault("learning.initial_ease_factor", defaults.InitialEaseFactor)
}

// EngineConfig maps the configured overrides onto the engine defaults.
func (c *Config) EngineConfig() learning.Config {
	cfg := learning.DefaultConfig()
	if c.Learning.AccuracyWeight > 0 {
		cfg.AccuracyWeight = c.Learning.AccuracyWeight
	}
	if c.Learning.SelfRatingWeight > 0 {
		cfg.SelfRatingWeight = c.Learning.SelfRatingWeight
	}
	if c.Learning.PracticeIncrement > 0 {
		cfg.PracticeIncrement = c.Learning.PracticeIncrement
	}
	if c.Learning.InitialEaseFactor > 0 {
		cfg.InitialEaseFactor = c.Learning.InitialEaseFactor
	}
	return cfg
}

// Addr returns the HTTP listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
