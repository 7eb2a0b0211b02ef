package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Matching  MatchingConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig
	PriceFeed PriceFeedConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// MatchingConfig tunes the product matching service
type MatchingConfig struct {
	MinSimilarity      float64 `mapstructure:"min_similarity"`
	EnableDebugLogging bool    `mapstructure:"enable_debug_logging"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	PerIP int `mapstructure:"per_ip"`
}

// PriceFeedConfig holds the optional catalog price feed. An empty base URL
// disables feed seeding; the catalog then starts empty and is populated via
// the API.
type PriceFeedConfig struct {
	BaseURL string   `mapstructure:"base_url"`
	APIKey  string   `mapstructure:"api_key"`
	Stores  []string `mapstructure:"stores"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/kiwicart/")

	v.SetEnvPrefix("KIWICART")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// loadEnvFile loads KEY=VALUE pairs from a .env file in the working
// directory. Existing environment variables are never overridden. A missing
// file is not an error.
func loadEnvFile() error {
	f, err := os.Open(".env")
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if _, exists := os.LookupEnv(key); !exists {
			os.Setenv(key, value)
		}
	}

	return scanner.Err()
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("matching.min_similarity", 0.7)
	v.SetDefault("matching.enable_debug_logging", false)

	v.SetDefault("cache.ttl", "1h")

	v.SetDefault("ratelimit.per_ip", 100)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Matching.MinSimilarity <= 0 || config.Matching.MinSimilarity > 1 {
		return fmt.Errorf("matching.min_similarity must be in (0, 1], got: %v", config.Matching.MinSimilarity)
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache.ttl must be positive, got: %v", config.Cache.TTL)
	}

	if config.RateLimit.PerIP <= 0 {
		return fmt.Errorf("ratelimit.per_ip must be positive, got: %d", config.RateLimit.PerIP)
	}

	if len(config.PriceFeed.Stores) > 0 && config.PriceFeed.BaseURL == "" {
		return fmt.Errorf("pricefeed.base_url is required when pricefeed.stores is set")
	}

	return nil
}
