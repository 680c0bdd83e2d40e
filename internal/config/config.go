// Package config reads server settings from the environment.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/ironsheep/raw-pixels-mcp/internal/document"
)

// Config holds the server settings.
type Config struct {
	LogLevel    string // "debug" enables verbose logging
	TempDir     string // directory for intermediate .raw files
	LayerName   string // name of layers created from edited buffers
	SampleCount int    // default pixel count for sampler benchmarks
}

// Debug reports whether debug logging is enabled.
func (c *Config) Debug() bool { return c.LogLevel == "debug" }

// Load reads the configuration from the environment, after merging in any
// variables from the given .env files (".env" when none are named). Variables
// already set in the environment take precedence over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return &Config{
		LogLevel:    getEnv("PIXELS_MCP_LOG_LEVEL", "info"),
		TempDir:     getEnv("PIXELS_MCP_TEMP_DIR", os.TempDir()),
		LayerName:   getEnv("PIXELS_MCP_LAYER_NAME", document.DefaultLayerName),
		SampleCount: getEnvAsInt("PIXELS_MCP_SAMPLE_COUNT", 1000),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}
