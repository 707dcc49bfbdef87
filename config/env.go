package config

import "os"

// Environment is the runtime environment, read from ENV (or CI).
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment resolves the current environment. CI pipelines set
// CI=true; anything unrecognized is treated as development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

// IsProduction reports whether the server runs with production strictness.
func IsProduction() bool {
	return GetEnvironment() == Production
}
