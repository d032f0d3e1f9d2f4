// Package config provides configuration management for the greeting service and its clients.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Client   ClientConfig
	Frontend FrontendConfig
	Auth     AuthConfig
	Log      LogConfig
}

// ServerConfig holds greeting service configuration
type ServerConfig struct {
	Host               string
	Port               string
	ShutdownTimeout    time.Duration
	RateLimitPerMinute int
}

// ClientConfig holds greeting client configuration
type ClientConfig struct {
	BackendURL     string
	RequestTimeout time.Duration
}

// FrontendConfig holds the web frontend listen address
type FrontendConfig struct {
	Host string
	Port string
}

// AuthConfig holds the optional service token configuration.
// An empty TokenSecret disables authentication.
type AuthConfig struct {
	TokenSecret string
	TokenTTL    time.Duration
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json or console
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:               getEnv("HOST", "0.0.0.0"),
			Port:               getEnv("PORT", "8000"),
			ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", "10s"),
			RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 100),
		},
		Client: ClientConfig{
			BackendURL:     getEnv("BACKEND_URL", "http://localhost:8000"),
			RequestTimeout: getEnvAsDuration("REQUEST_TIMEOUT", "10s"),
		},
		Frontend: FrontendConfig{
			Host: getEnv("FRONTEND_HOST", "0.0.0.0"),
			Port: getEnv("FRONTEND_PORT", "8501"),
		},
		Auth: AuthConfig{
			TokenSecret: GetSecret("AUTH_TOKEN_SECRET", ""),
			TokenTTL:    getEnvAsDuration("AUTH_TOKEN_TTL", "5m"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if err := validatePort("PORT", c.Server.Port); err != nil {
		return err
	}
	if err := validatePort("FRONTEND_PORT", c.Frontend.Port); err != nil {
		return err
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.RateLimitPerMinute < 1 {
		return errors.New("RATE_LIMIT_PER_MINUTE must be at least 1")
	}
	if err := c.Client.Validate(); err != nil {
		return err
	}
	if c.Auth.TokenSecret != "" && c.Auth.TokenTTL <= 0 {
		return errors.New("AUTH_TOKEN_TTL must be positive when AUTH_TOKEN_SECRET is set")
	}
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid LOG_LEVEL %q: %w", c.Log.Level, err)
	}
	if c.Log.Format != "json" && c.Log.Format != "console" {
		return fmt.Errorf("invalid LOG_FORMAT %q: must be json or console", c.Log.Format)
	}
	return nil
}

// Validate checks the backend URL and request timeout
func (c *ClientConfig) Validate() error {
	u, err := url.Parse(c.BackendURL)
	if err != nil {
		return fmt.Errorf("invalid BACKEND_URL %q: %w", c.BackendURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid BACKEND_URL %q: must be an absolute http(s) URL", c.BackendURL)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	return nil
}

// Addr returns the host:port the greeting service listens on
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, s.Port)
}

// Addr returns the host:port the web frontend listens on
func (f FrontendConfig) Addr() string {
	return net.JoinHostPort(f.Host, f.Port)
}

// AuthEnabled reports whether service tokens are required
func (a AuthConfig) AuthEnabled() bool {
	return a.TokenSecret != ""
}

func validatePort(name, port string) error {
	p, err := strconv.Atoi(port)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("invalid %s %q: must be a number between 1 and 65535", name, port)
	}
	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration gets an environment variable as a duration or returns a default value
func getEnvAsDuration(key, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		defaultDuration, _ := time.ParseDuration(defaultValue)
		return defaultDuration
	}
	return value
}
