package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cleanEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ServerConfig{
		Host:               "0.0.0.0",
		Port:               "8000",
		ShutdownTimeout:    10 * time.Second,
		RateLimitPerMinute: 100,
	}, cfg.Server)
	assert.Equal(t, ClientConfig{
		BackendURL:     "http://localhost:8000",
		RequestTimeout: 10 * time.Second,
	}, cfg.Client)
	assert.Equal(t, FrontendConfig{Host: "0.0.0.0", Port: "8501"}, cfg.Frontend)
	assert.Equal(t, "", cfg.Auth.TokenSecret)
	assert.Equal(t, 5*time.Minute, cfg.Auth.TokenTTL)
	assert.False(t, cfg.Auth.AuthEnabled())
	assert.Equal(t, LogConfig{Level: "info", Format: "json"}, cfg.Log)

	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
	assert.Equal(t, "0.0.0.0:8501", cfg.Frontend.Addr())
}

func TestLoad_FromEnvironment(t *testing.T) {
	cleanEnv(t)
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "9000")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "20")
	t.Setenv("BACKEND_URL", "https://api.example.com")
	t.Setenv("REQUEST_TIMEOUT", "2s")
	t.Setenv("FRONTEND_HOST", "127.0.0.1")
	t.Setenv("FRONTEND_PORT", "3000")
	t.Setenv("AUTH_TOKEN_SECRET", "shared-secret")
	t.Setenv("AUTH_TOKEN_TTL", "1m")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr())
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 20, cfg.Server.RateLimitPerMinute)
	assert.Equal(t, "https://api.example.com", cfg.Client.BackendURL)
	assert.Equal(t, 2*time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, "127.0.0.1:3000", cfg.Frontend.Addr())
	assert.Equal(t, "shared-secret", cfg.Auth.TokenSecret)
	assert.Equal(t, time.Minute, cfg.Auth.TokenTTL)
	assert.True(t, cfg.Auth.AuthEnabled())
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoad_MalformedNumbersFallBackToDefaults(t *testing.T) {
	cleanEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "ten seconds")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "lots")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.Client.RequestTimeout)
	assert.Equal(t, 100, cfg.Server.RateLimitPerMinute)
}

func TestLoad_TokenSecretFromFile(t *testing.T) {
	cleanEnv(t)

	secretFile := filepath.Join(t.TempDir(), "auth_token_secret")
	require.NoError(t, os.WriteFile(secretFile, []byte("file-secret\n"), 0600))
	t.Setenv("AUTH_TOKEN_SECRET_FILE", secretFile)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "file-secret", cfg.Auth.TokenSecret)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Host: "0.0.0.0", Port: "8000", ShutdownTimeout: time.Second, RateLimitPerMinute: 100},
			Client:   ClientConfig{BackendURL: "http://localhost:8000", RequestTimeout: 10 * time.Second},
			Frontend: FrontendConfig{Host: "0.0.0.0", Port: "8501"},
			Auth:     AuthConfig{TokenTTL: time.Minute},
			Log:      LogConfig{Level: "info", Format: "json"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid config",
			mutate: func(_ *Config) {},
		},
		{
			name:   "valid config with https backend",
			mutate: func(c *Config) { c.Client.BackendURL = "https://greeting.example.com/base" },
		},
		{
			name:    "invalid - non numeric port",
			mutate:  func(c *Config) { c.Server.Port = "http" },
			wantErr: true,
			errMsg:  `invalid PORT "http": must be a number between 1 and 65535`,
		},
		{
			name:    "invalid - port out of range",
			mutate:  func(c *Config) { c.Frontend.Port = "70000" },
			wantErr: true,
			errMsg:  `invalid FRONTEND_PORT "70000": must be a number between 1 and 65535`,
		},
		{
			name:    "invalid - relative backend URL",
			mutate:  func(c *Config) { c.Client.BackendURL = "localhost:8000" },
			wantErr: true,
			errMsg:  `invalid BACKEND_URL "localhost:8000": must be an absolute http(s) URL`,
		},
		{
			name:    "invalid - zero request timeout",
			mutate:  func(c *Config) { c.Client.RequestTimeout = 0 },
			wantErr: true,
			errMsg:  "REQUEST_TIMEOUT must be positive",
		},
		{
			name:    "invalid - zero shutdown timeout",
			mutate:  func(c *Config) { c.Server.ShutdownTimeout = 0 },
			wantErr: true,
			errMsg:  "SHUTDOWN_TIMEOUT must be positive",
		},
		{
			name:    "invalid - rate limit below one",
			mutate:  func(c *Config) { c.Server.RateLimitPerMinute = 0 },
			wantErr: true,
			errMsg:  "RATE_LIMIT_PER_MINUTE must be at least 1",
		},
		{
			name: "invalid - token secret without ttl",
			mutate: func(c *Config) {
				c.Auth.TokenSecret = "secret"
				c.Auth.TokenTTL = 0
			},
			wantErr: true,
			errMsg:  "AUTH_TOKEN_TTL must be positive when AUTH_TOKEN_SECRET is set",
		},
		{
			name:    "invalid - log format",
			mutate:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: true,
			errMsg:  `invalid LOG_FORMAT "xml": must be json or console`,
		},
		{
			name:    "invalid - log level",
			mutate:  func(c *Config) { c.Log.Level = "chatty" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if tt.errMsg != "" {
				assert.Equal(t, tt.errMsg, err.Error())
			}
		})
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	cleanEnv(t)
	t.Setenv("BACKEND_URL", "ftp://files.example.com")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BACKEND_URL")
}

// cleanEnv blanks every variable Load reads for the duration of the test
func cleanEnv(t *testing.T) {
	t.Helper()
	envVars := []string{
		"HOST",
		"PORT",
		"SHUTDOWN_TIMEOUT",
		"RATE_LIMIT_PER_MINUTE",
		"BACKEND_URL",
		"REQUEST_TIMEOUT",
		"FRONTEND_HOST",
		"FRONTEND_PORT",
		"AUTH_TOKEN_SECRET",
		"AUTH_TOKEN_SECRET_FILE",
		"AUTH_TOKEN_TTL",
		"LOG_LEVEL",
		"LOG_FORMAT",
	}
	for _, key := range envVars {
		t.Setenv(key, "")
	}
}
