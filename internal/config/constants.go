package config

import "time"

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvServiceName      = "SERVICE_NAME"
	EnvEnvironment      = "ENVIRONMENT"
	EnvVersion          = "VERSION"
	EnvStorageDir       = "STORAGE_DIR"
	EnvHistoryCacheSize = "HISTORY_CACHE_SIZE"
	EnvHistoryCacheTTL  = "HISTORY_CACHE_TTL"
	EnvHealthProvider   = "HEALTH_PROVIDER"
	EnvHealthFile       = "HEALTH_FILE"
	EnvDailyCloseHour   = "DAILY_CLOSE_HOUR"
	EnvTimezone         = "TIMEZONE"
	EnvShutdownTimeout  = "SHUTDOWN_TIMEOUT"
	EnvRotationInterval = "ROTATION_INTERVAL"
	EnvAPIKey           = "API_KEY"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
	EnvSchemaVersion    = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort             = "8080"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultServiceName      = "healthquest"
	DefaultEnvironment      = "dev"
	DefaultVersion          = "dev"
	DefaultStorageDir       = "data/app_state"
	DefaultHistoryCacheSize = 64
	DefaultHistoryCacheTTL  = 10 * time.Minute
	DefaultDailyCloseHour   = "0"
	DefaultTimezone         = "Local"
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultRotationInterval = time.Hour
)

// Health providers
const (
	ProviderMock = "mock"
	ProviderFile = "file"
)

// Environments
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentProd        = "prod"
	EnvironmentProduction  = "production"
)

// ExampleAPIKey is the placeholder shipped in .env.example
const ExampleAPIKey = "generate_with_openssl_rand_hex_32"
