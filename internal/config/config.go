package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines client configuration.
type Config struct {
	API           APIConfig           `yaml:"api"`
	Demo          DemoConfig          `yaml:"demo"`
	State         StateConfig         `yaml:"state"`
	Log           LogConfig           `yaml:"log"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// DemoConfig controls the static fallback dataset used when the backend
// is unreachable.
type DemoConfig struct {
	Enabled bool `yaml:"enabled"`
}

// StateConfig locates the persisted client state database.
type StateConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type NotificationsConfig struct {
	PollInterval time.Duration `yaml:"poll_interval"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000/api/v1",
			Timeout: 30 * time.Second,
		},
		State: StateConfig{
			Path: "buildpro-state.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Notifications: NotificationsConfig{
			PollInterval: 30 * time.Second,
		},
	}

	if path := os.Getenv("BUILDPRO_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if baseURL := os.Getenv("BUILDPRO_API_BASE_URL"); baseURL != "" {
		cfg.API.BaseURL = baseURL
	}
	if timeoutStr := os.Getenv("BUILDPRO_API_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BUILDPRO_API_TIMEOUT: %w", err)
		}
		cfg.API.Timeout = timeout
	}
	if demoStr := os.Getenv("BUILDPRO_DEMO_MODE"); demoStr != "" {
		demo, err := strconv.ParseBool(demoStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BUILDPRO_DEMO_MODE: %w", err)
		}
		cfg.Demo.Enabled = demo
	}
	if statePath := os.Getenv("BUILDPRO_STATE_PATH"); statePath != "" {
		cfg.State.Path = statePath
	}
	if level := os.Getenv("BUILDPRO_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if pollStr := os.Getenv("BUILDPRO_NOTIFY_POLL_INTERVAL"); pollStr != "" {
		poll, err := time.ParseDuration(pollStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid BUILDPRO_NOTIFY_POLL_INTERVAL: %w", err)
		}
		cfg.Notifications.PollInterval = poll
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
