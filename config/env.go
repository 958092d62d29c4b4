package config

import "os"

// GetEnv reads a configuration value from the process environment.
// The .env file is loaded once at startup by godotenv, so call-sites
// apply their own defaults when a key is unset.
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvOrDefault reads a configuration value with a fallback.
func GetEnvOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
