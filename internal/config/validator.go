package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// Validate checks the loaded values. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if c.DailyCloseHour < 0 || c.DailyCloseHour > 23 {
		errs = append(errs, fmt.Errorf("DAILY_CLOSE_HOUR must be between 0 and 23, got %d", c.DailyCloseHour))
	}
	switch c.HealthProvider {
	case ProviderMock:
	case ProviderFile:
		if c.HealthFile == "" {
			errs = append(errs, errors.New("HEALTH_FILE must be set when HEALTH_PROVIDER=file"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown HEALTH_PROVIDER %q (expected %s or %s)", c.HealthProvider, ProviderMock, ProviderFile))
	}
	if c.StorageDir == "" {
		errs = append(errs, errors.New("STORAGE_DIR must not be empty"))
	}
	if c.HistoryCacheSize < 1 {
		errs = append(errs, fmt.Errorf("HISTORY_CACHE_SIZE must be positive, got %d", c.HistoryCacheSize))
	}

	if c.RotationInterval < 0 {
		errs = append(errs, fmt.Errorf("ROTATION_INTERVAL must not be negative, got %s", c.RotationInterval))
	}

	return errors.Join(errs...)
}

// ValidateEnv checks the .env schema version when one is declared
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion != "" && schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}
	return nil
}

// Warnings lists non-fatal configuration issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string

	if c.APIKey == "" && !c.IsDevelopment() {
		warnings = append(warnings, "API_KEY is not set - the API is reachable without authentication")
	}
	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}
	if !filepath.IsAbs(c.StorageDir) && !c.IsDevelopment() {
		warnings = append(warnings, fmt.Sprintf("STORAGE_DIR %q is relative to the working directory", c.StorageDir))
	}

	return warnings
}
