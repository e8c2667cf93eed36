package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zaptest"
)

// clearEnv unsets every variable Load reads and restores them afterwards.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HEALTH_NOTIFY_CONFIG",
		"HEALTH_NOTIFY_INTERVAL",
		"HEALTH_NOTIFY_FAILURE_POLICY",
		"HEALTH_NOTIFY_FULLSCREEN",
		"HEALTH_NOTIFY_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Reminder.Interval != 20*time.Minute {
		t.Errorf("expected Interval to be 20m but got %v", cfg.Reminder.Interval)
	}
	if cfg.Reminder.Title != "Look away and blink for 30 seconds!" {
		t.Errorf("unexpected default title %q", cfg.Reminder.Title)
	}
	if cfg.Tick != time.Second {
		t.Errorf("expected Tick to be 1s but got %v", cfg.Tick)
	}
	if cfg.NotificationTimeout != 10*time.Second {
		t.Errorf("expected NotificationTimeout to be 10s but got %v", cfg.NotificationTimeout)
	}
	if cfg.FailurePolicy != PolicyLog {
		t.Errorf("expected FailurePolicy to be log but got %q", cfg.FailurePolicy)
	}
	if !cfg.FullscreenDetection {
		t.Error("expected FullscreenDetection to be enabled by default")
	}
	if err := validate(cfg); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	tests := []struct {
		name      string
		envVars   map[string]string
		checkFunc func(*testing.T, *Config)
		wantErr   bool
	}{
		{
			name: "valid environment variables",
			envVars: map[string]string{
				"HEALTH_NOTIFY_INTERVAL":       "45m",
				"HEALTH_NOTIFY_FAILURE_POLICY": "FATAL",
				"HEALTH_NOTIFY_FULLSCREEN":     "no",
				"HEALTH_NOTIFY_LOG_LEVEL":      "Debug",
			},
			checkFunc: func(t *testing.T, cfg *Config) {
				if cfg.Reminder.Interval != 45*time.Minute {
					t.Errorf("expected Interval to be 45m but got %v", cfg.Reminder.Interval)
				}
				if cfg.FailurePolicy != PolicyFatal {
					t.Errorf("expected FailurePolicy fatal but got %q", cfg.FailurePolicy)
				}
				if cfg.FullscreenDetection {
					t.Error("expected FullscreenDetection to be false")
				}
				if cfg.LogLevel != "debug" {
					t.Errorf("expected LogLevel debug but got %q", cfg.LogLevel)
				}
			},
		},
		{
			name:    "invalid interval",
			envVars: map[string]string{"HEALTH_NOTIFY_INTERVAL": "soon"},
			wantErr: true,
		},
		{
			name:    "invalid fullscreen flag",
			envVars: map[string]string{"HEALTH_NOTIFY_FULLSCREEN": "maybe"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := DefaultConfig()
			err := loadFromEnv(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadFromEnv() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
reminder:
  interval: 30m
  title: "Stand up"
  message: "Stretch a little"
tick: 2s
failure_policy: fatal
fullscreen_detection: false
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() unexpected error: %v", err)
	}

	if cfg.Reminder.Interval != 30*time.Minute {
		t.Errorf("expected Interval 30m but got %v", cfg.Reminder.Interval)
	}
	if cfg.Reminder.Title != "Stand up" || cfg.Reminder.Message != "Stretch a little" {
		t.Errorf("unexpected reminder text %+v", cfg.Reminder)
	}
	if cfg.Tick != 2*time.Second {
		t.Errorf("expected Tick 2s but got %v", cfg.Tick)
	}
	if cfg.FailurePolicy != PolicyFatal {
		t.Errorf("expected fatal policy but got %q", cfg.FailurePolicy)
	}
	if cfg.FullscreenDetection {
		t.Error("expected FullscreenDetection false")
	}
	// Unset fields keep their defaults.
	if cfg.Tooltip != "Health Notifications :3" {
		t.Errorf("expected default tooltip but got %q", cfg.Tooltip)
	}
	if cfg.File() != path {
		t.Errorf("File() = %q, want %q", cfg.File(), path)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing config file should not be an error: %v", err)
	}
	if cfg.Reminder.Interval != 20*time.Minute {
		t.Errorf("expected default interval but got %v", cfg.Reminder.Interval)
	}
}

func TestLoadFromMalformedFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("reminder: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "zero interval",
			mutate:  func(c *Config) { c.Reminder.Interval = 0 },
			wantErr: "reminder.interval",
		},
		{
			name:    "zero tick",
			mutate:  func(c *Config) { c.Tick = 0 },
			wantErr: "tick must be positive",
		},
		{
			name: "tick longer than interval",
			mutate: func(c *Config) {
				c.Tick = time.Hour
			},
			wantErr: "must not exceed",
		},
		{
			name:    "empty title",
			mutate:  func(c *Config) { c.Reminder.Title = "" },
			wantErr: "reminder.title",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.NotificationTimeout = -time.Second },
			wantErr: "notification_timeout",
		},
		{
			name:    "unknown policy",
			mutate:  func(c *Config) { c.FailurePolicy = "retry" },
			wantErr: "failure_policy",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: "log_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestPath(t *testing.T) {
	clearEnv(t)

	t.Setenv("HEALTH_NOTIFY_CONFIG", "/tmp/explicit.yaml")
	if got := Path(); got != "/tmp/explicit.yaml" {
		t.Errorf("Path() = %q, want explicit path", got)
	}

	_ = os.Unsetenv("HEALTH_NOTIFY_CONFIG")
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	want := filepath.Join("/tmp/xdg", "health-notifications", "config.yaml")
	if got := Path(); got != want {
		t.Errorf("Path() = %q, want %q", got, want)
	}
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("reminder:\n  interval: 20m\n"), 0600); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *Config, 4)
	w, err := NewWatcher(path, zaptest.NewLogger(t), func(c *Config) { reloaded <- c })
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("reminder:\n  interval: 5m\n"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Reminder.Interval != 5*time.Minute {
			t.Errorf("reloaded interval = %v, want 5m", cfg.Reminder.Interval)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for config reload")
	}
}

func TestWatcherIgnoresInvalidChange(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("tick: 1s\n"), 0600); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan *Config, 4)
	w, err := NewWatcher(path, zaptest.NewLogger(t), func(c *Config) { reloaded <- c })
	if err != nil {
		t.Fatalf("NewWatcher() error: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(path, []byte("failure_policy: sometimes\n"), 0600); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		t.Errorf("invalid config should not be published, got %+v", cfg)
	case <-time.After(500 * time.Millisecond):
	}
}

func TestNewWatcherRequiresPath(t *testing.T) {
	if _, err := NewWatcher("", zaptest.NewLogger(t), func(*Config) {}); err == nil {
		t.Error("expected error for empty path")
	}
}
