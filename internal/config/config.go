// Package config provides configuration loading and validation for the server.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// ServerConfig holds configuration for the HTTP server and the rendering
// pipeline, read from environment variables.
type ServerConfig struct {
	Port          int
	DatabaseURL   string
	ChromePath    string // optional explicit browser binary for the HTML-to-PDF engine
	RenderTimeout time.Duration
}

// NewServerConfig creates a server configuration from environment variables.
// It reads PORT (default: 8080), DATABASE_URL (required), CHROME_PATH
// (optional) and RENDER_TIMEOUT_SECONDS (default: 60).
func NewServerConfig() (*ServerConfig, error) {
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %v", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}

	timeoutStr := os.Getenv("RENDER_TIMEOUT_SECONDS")
	if timeoutStr == "" {
		timeoutStr = "60"
	}
	timeoutSeconds, err := strconv.Atoi(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid RENDER_TIMEOUT_SECONDS: %v", err)
	}

	cfg := &ServerConfig{
		Port:          port,
		DatabaseURL:   databaseURL,
		ChromePath:    os.Getenv("CHROME_PATH"),
		RenderTimeout: time.Duration(timeoutSeconds) * time.Second,
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *ServerConfig) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.RenderTimeout < time.Second {
		return fmt.Errorf("RENDER_TIMEOUT_SECONDS must be at least 1 second, got: %s", c.RenderTimeout)
	}
	return nil
}
