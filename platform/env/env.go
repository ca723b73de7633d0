// Package env contains helpers to read configuration from environment variables.
package env

import (
	"os"

	"go.uber.org/zap"
)

// OrDefault returns the result of searching an env var, if the env var value is empty, return a default value
func OrDefault(log *zap.SugaredLogger, env, def string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Infof("env var %s not set, using default %q", env, def)
		return def
	}
	return value
}

// Must returns the result of searching an env var, failing the process when it is not set
func Must(log *zap.SugaredLogger, env string) string {
	value := os.Getenv(env)
	if value == "" {
		log.Fatalf("env var %s is required", env)
	}
	return value
}
