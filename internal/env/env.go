package env

import (
	"log"
	"os"
)

type EnvironmentVariables struct {
	BackendPort     string
	StripeSecretKey string
	LegacyCascade   bool
}

var (
	Env *EnvironmentVariables
)

func Load() {
	Env = &EnvironmentVariables{
		BackendPort:     getOptionalEnv("BACKEND_PORT", "8080"),
		StripeSecretKey: getRequiredEnv("STRIPE_SECRET_KEY"),
		LegacyCascade:   getOptionalEnv("LEGACY_STATUS_CASCADE", "false") == "true",
	}

	log.Printf("[ENV] Environment variables loaded successfully:")
	log.Printf("  - Backend Port: %s", Env.BackendPort)
	log.Printf("  - Legacy Status Cascade: %t", Env.LegacyCascade)
}

func getRequiredEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("[ENV] Required environment variable %s is not set", key)
	}
	return value
}

func getOptionalEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func IsProduction() bool {
	return getOptionalEnv("ENVIRONMENT", "development") == "production"
}

func IsDevelopment() bool {
	return !IsProduction()
}
