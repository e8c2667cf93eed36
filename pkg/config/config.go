package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FailurePolicy decides what happens when a notification or icon update fails.
type FailurePolicy string

const (
	// PolicyLog logs the failure and keeps the loop running.
	PolicyLog FailurePolicy = "log"
	// PolicyFatal logs the failure and terminates the process.
	PolicyFatal FailurePolicy = "fatal"
)

// Config holds all configuration for health-notifications
type Config struct {
	// Reminder settings
	Reminder Reminder `yaml:"reminder"`

	// Control loop period
	Tick time.Duration `yaml:"tick"`

	// Notification presentation
	AppName             string        `yaml:"app_name"`
	Sound               string        `yaml:"sound"`
	NotificationTimeout time.Duration `yaml:"notification_timeout"`

	// Behavior flags
	FailurePolicy       FailurePolicy `yaml:"failure_policy" env:"HEALTH_NOTIFY_FAILURE_POLICY"`
	FullscreenDetection bool          `yaml:"fullscreen_detection" env:"HEALTH_NOTIFY_FULLSCREEN"`
	DryRun              bool          `yaml:"-"`

	// Tray presentation
	Tooltip string `yaml:"tooltip"`

	// Logging
	LogLevel string `yaml:"log_level" env:"HEALTH_NOTIFY_LOG_LEVEL"`
	LogFile  string `yaml:"log_file"`

	path string `yaml:"-"`
}

// Reminder describes the recurring eye-rest job. It is the part of the
// configuration that can change while the application is running.
type Reminder struct {
	Interval time.Duration `yaml:"interval" env:"HEALTH_NOTIFY_INTERVAL"`
	Title    string        `yaml:"title"`
	Message  string        `yaml:"message"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Reminder: Reminder{
			Interval: 20 * time.Minute,
			Title:    "Look away and blink for 30 seconds!",
			Message:  "Take care of cho eyes!!",
		},
		Tick:                time.Second,
		AppName:             "health-notifications",
		Sound:               "Mail",
		NotificationTimeout: 10 * time.Second,
		FailurePolicy:       PolicyLog,
		FullscreenDetection: true,
		Tooltip:             "Health Notifications :3",
		LogLevel:            "info",
	}
}

// Load loads configuration from file and environment
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom loads configuration from the given file path and the environment.
// A missing file is not an error; the defaults are used instead.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.path = path

	if path != "" {
		if err := loadFromFile(cfg, path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(cfg); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	// Validate configuration
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// File returns the path the configuration was loaded from, if any.
func (c *Config) File() string {
	return c.path
}

// Path returns the config file path
func Path() string {
	// Check for explicit config path
	if path := os.Getenv("HEALTH_NOTIFY_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "health-notifications", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "health-notifications", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(cfg *Config) error {
	if interval := os.Getenv("HEALTH_NOTIFY_INTERVAL"); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return fmt.Errorf("invalid HEALTH_NOTIFY_INTERVAL: %w", err)
		}
		cfg.Reminder.Interval = d
	}

	if policy := os.Getenv("HEALTH_NOTIFY_FAILURE_POLICY"); policy != "" {
		cfg.FailurePolicy = FailurePolicy(strings.ToLower(policy))
	}

	if fullscreen := os.Getenv("HEALTH_NOTIFY_FULLSCREEN"); fullscreen != "" {
		switch fullscreen {
		case "true", "1", "yes":
			cfg.FullscreenDetection = true
		case "false", "0", "no":
			cfg.FullscreenDetection = false
		default:
			return fmt.Errorf("invalid HEALTH_NOTIFY_FULLSCREEN value: %q (use true/false)", fullscreen)
		}
	}

	if level := os.Getenv("HEALTH_NOTIFY_LOG_LEVEL"); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	if cfg.Reminder.Interval <= 0 {
		return fmt.Errorf("reminder.interval must be positive")
	}

	if cfg.Tick <= 0 {
		return fmt.Errorf("tick must be positive")
	}

	if cfg.Tick > cfg.Reminder.Interval {
		return fmt.Errorf("tick (%v) must not exceed reminder.interval (%v)", cfg.Tick, cfg.Reminder.Interval)
	}

	if cfg.Reminder.Title == "" {
		return fmt.Errorf("reminder.title is required")
	}

	if cfg.NotificationTimeout < 0 {
		return fmt.Errorf("notification_timeout must be non-negative")
	}

	switch cfg.FailurePolicy {
	case PolicyLog, PolicyFatal:
	default:
		return fmt.Errorf("invalid failure_policy %q (use log or fatal)", cfg.FailurePolicy)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (use debug, info, warn or error)", cfg.LogLevel)
	}

	return nil
}
