package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	ServiceName string
	Environment string
	Version     string

	StorageDir       string
	HistoryCacheSize int
	HistoryCacheTTL  time.Duration

	HealthProvider string
	HealthFile     string

	DailyCloseHour  int
	Timezone        string
	Location        *time.Location
	ShutdownTimeout time.Duration

	RotationInterval time.Duration // 0 disables the periodic pass

	APIKey         string // optional; empty disables authentication
	TrustedProxies []string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	cfg := &Config{
		LogLevel:         getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:        getEnv(EnvLogFormat, DefaultLogFormat),
		ServiceName:      getEnv(EnvServiceName, DefaultServiceName),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		Version:          getEnv(EnvVersion, DefaultVersion),
		StorageDir:       getEnv(EnvStorageDir, DefaultStorageDir),
		HistoryCacheSize: getEnvAsInt(EnvHistoryCacheSize, DefaultHistoryCacheSize),
		HistoryCacheTTL:  getEnvAsDuration(EnvHistoryCacheTTL, DefaultHistoryCacheTTL),
		HealthProvider:   strings.ToLower(getEnv(EnvHealthProvider, ProviderMock)),
		HealthFile:       getEnv(EnvHealthFile, ""),
		Timezone:         getEnv(EnvTimezone, DefaultTimezone),
		ShutdownTimeout:  getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout),
		RotationInterval: getEnvAsDuration(EnvRotationInterval, DefaultRotationInterval),
		APIKey:           getEnv(EnvAPIKey, ""),
		TrustedProxies:   splitList(getEnv(EnvTrustedProxies, "")),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	hour, err := strconv.Atoi(getEnv(EnvDailyCloseHour, DefaultDailyCloseHour))
	if err != nil {
		return nil, fmt.Errorf("invalid DAILY_CLOSE_HOUR value: %w", err)
	}
	cfg.DailyCloseHour = hour

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE value: %w", err)
	}
	cfg.Location = loc

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// IsDevelopment reports whether the environment is a local one
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDev || c.Environment == EnvironmentDevelopment
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the default when the variable is unset or not an integer
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration returns the default when the variable is unset or not a duration
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
