package config

import (
	"os"
	"strconv"

	"ashby/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Paths  PathConfig
	Plot   PlotConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// PathConfig holds file system paths
type PathConfig struct {
	DataFile   string // optional table preloaded at startup
	FiguresDir string // export target for saved charts
}

// PlotConfig holds chart rendering defaults
type PlotConfig struct {
	Width    int
	Height   int
	LogScale bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnv("ASHBY_PORT", "8080"),
		},
		Paths: PathConfig{
			DataFile:   getEnv("ASHBY_DATA_FILE", ""),
			FiguresDir: getEnv("ASHBY_FIGURES_DIR", "figures"),
		},
		Plot: PlotConfig{
			Width:    getEnvInt("ASHBY_PLOT_WIDTH", 800),
			Height:   getEnvInt("ASHBY_PLOT_HEIGHT", 700),
			LogScale: getEnvBool("ASHBY_PLOT_LOG", true),
		},
	}

	if config.Plot.Width <= 0 || config.Plot.Height <= 0 {
		return nil, errors.ConfigInvalid("plot dimensions must be positive")
	}
	if config.Paths.FiguresDir == "" {
		return nil, errors.ConfigInvalid("figures directory must not be empty")
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
