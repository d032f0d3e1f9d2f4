package config

import (
	"os"
	"strings"
)

// GetSecret retrieves a secret with multiple fallback sources.
// Priority:
//  1. Direct environment variable (e.g., AUTH_TOKEN_SECRET)
//  2. File path from _FILE environment variable (e.g., AUTH_TOKEN_SECRET_FILE)
//  3. Default value
//
// This allows secrets to be provided via:
//   - Environment variables (e.g., AUTH_TOKEN_SECRET=xxx)
//   - Docker secrets (e.g., AUTH_TOKEN_SECRET_FILE=/run/secrets/auth_token_secret)
func GetSecret(envVar, defaultValue string) string {
	if value := os.Getenv(envVar); value != "" {
		return value
	}

	if filePath := os.Getenv(envVar + "_FILE"); filePath != "" {
		if data, err := os.ReadFile(filePath); err == nil {
			return strings.TrimSpace(string(data))
		}
	}

	return defaultValue
}
