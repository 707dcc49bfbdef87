package config

import "fmt"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks the invariants a running server depends on.
// Production additionally requires the secrets that have no safe default.
func ValidateConfig(cfg *Config) error {
	if cfg.ServerPort == "" {
		return ValidationError{Field: "SERVER_PORT", Message: "must not be empty"}
	}
	if cfg.DBHost == "" {
		return ValidationError{Field: "DB_HOST", Message: "must not be empty"}
	}
	if cfg.DBName == "" {
		return ValidationError{Field: "DB_NAME", Message: "must not be empty"}
	}
	if cfg.GenerationRateLimit <= 0 {
		return ValidationError{Field: "GENERATION_RATE_LIMIT", Message: "must be positive"}
	}
	if cfg.GenerationRateWindow <= 0 {
		return ValidationError{Field: "GENERATION_RATE_WINDOW", Message: "must be positive"}
	}

	if IsProduction() {
		if cfg.JWTSecret == "" {
			return ValidationError{Field: "JWT_SECRET", Message: "required in production"}
		}
		if cfg.DBPassword == "" {
			return ValidationError{Field: "DB_PASSWORD", Message: "required in production"}
		}
	}
	return nil
}
