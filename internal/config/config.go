package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Maps      MapsConfig
	Gazetteer GazetteerConfig
	Locator   LocatorConfig
	LookupLog LookupLogConfig
	Worker    WorkerConfig
	DB        DatabaseConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Host          string
	Port          int
	RateLimitRPS  int
	ShutdownGrace time.Duration
}

type MapsConfig struct {
	APIKey         string
	Timeout        time.Duration
	TransitEnabled bool
	Language       string
}

// Enabled reports whether travel-time enrichment can run. Without a key the
// service answers with straight-line distances only.
func (m MapsConfig) Enabled() bool {
	return m.APIKey != ""
}

type GazetteerConfig struct {
	File  string // empty uses the built-in definition
	Watch bool
}

type LocatorConfig struct {
	FuzzyDistance int
}

type LookupLogConfig struct {
	Enabled bool
}

type WorkerConfig struct {
	Count      int
	BufferSize int
}

type DatabaseConfig struct {
	Path string
}

type LoggingConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:          getEnv("SERVER_HOST", "0.0.0.0"),
			Port:          getEnvInt("SERVER_PORT", 5000),
			RateLimitRPS:  getEnvInt("RATE_LIMIT_RPS", 5),
			ShutdownGrace: getEnvDuration("SHUTDOWN_GRACE", 10*time.Second),
		},
		Maps: MapsConfig{
			APIKey:         os.Getenv("GOOGLE_MAPS_API_KEY"),
			Timeout:        getEnvDuration("MAPS_TIMEOUT", 3*time.Second),
			TransitEnabled: getEnvBool("MAPS_TRANSIT_ENABLED", true),
			Language:       getEnv("MAPS_LANGUAGE", "fi"),
		},
		Gazetteer: GazetteerConfig{
			File:  os.Getenv("GAZETTEER_FILE"),
			Watch: getEnvBool("GAZETTEER_WATCH", false),
		},
		Locator: LocatorConfig{
			FuzzyDistance: getEnvInt("FUZZY_DISTANCE", 0),
		},
		LookupLog: LookupLogConfig{
			Enabled: getEnvBool("LOOKUP_LOG_ENABLED", true),
		},
		Worker: WorkerConfig{
			Count:      getEnvInt("WORKER_COUNT", 2),
			BufferSize: getEnvInt("WORKER_BUFFER_SIZE", 100),
		},
		DB: DatabaseConfig{
			Path: getEnv("DB_PATH", "./data/crisis-finder.db"),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Server.RateLimitRPS < 1 {
		return fmt.Errorf("rate limit must be at least 1 req/s, got %d", c.Server.RateLimitRPS)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "text" {
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}

	if c.Maps.Timeout < 100*time.Millisecond || c.Maps.Timeout > 30*time.Second {
		return fmt.Errorf("maps timeout must be between 100ms and 30s, got %s", c.Maps.Timeout)
	}

	if c.Locator.FuzzyDistance < 0 || c.Locator.FuzzyDistance > 2 {
		return fmt.Errorf("fuzzy distance must be between 0 and 2, got %d", c.Locator.FuzzyDistance)
	}

	if c.Gazetteer.Watch && c.Gazetteer.File == "" {
		return fmt.Errorf("GAZETTEER_WATCH requires GAZETTEER_FILE")
	}

	if c.LookupLog.Enabled {
		if c.Worker.Count < 1 {
			return fmt.Errorf("worker count must be at least 1")
		}
		if c.Worker.BufferSize < 1 {
			return fmt.Errorf("worker buffer size must be at least 1")
		}
	}

	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}
