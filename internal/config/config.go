// Package config reads application configuration from environment variables.
package config

import "os"

// Get returns the value of the environment variable named by key, or
// fallback if the variable is not set or is empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
