package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Veraticus/health-notifications/pkg/config"
	"github.com/Veraticus/health-notifications/pkg/logging"
	"github.com/Veraticus/health-notifications/pkg/tray"
	flag "github.com/spf13/pflag"
)

func main() {
	var (
		configPath string
		logLevel   string
		dryRun     bool
		help       bool
	)

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&dryRun, "dry-run", false, "Print reminders to stdout instead of showing notifications")
	flag.BoolVar(&help, "help", false, "Show help message")
	flag.Parse()

	if help {
		printUsage()
		os.Exit(0)
	}

	// Load configuration
	if configPath == "" {
		configPath = config.Path()
	}
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Override config with command line flags
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if dryRun {
		cfg.DryRun = true
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}

	// Create dependencies
	deps, err := NewDependencies(cfg, logger, tray.NewSystrayShell())
	if err != nil {
		logger.Fatal("failed to create dependencies", zap.Error(err))
	}
	defer deps.Close()

	// Quit the tray on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting",
		zap.String("config", cfg.File()),
		zap.Duration("interval", cfg.Reminder.Interval),
		zap.String("failure_policy", string(cfg.FailurePolicy)),
		zap.Bool("fullscreen_detection", cfg.FullscreenDetection))

	if err := NewApplication(deps).Run(ctx); err != nil {
		logger.Error("application stopped with error", zap.Error(err))
	}
}

func printUsage() {
	fmt.Println("health-notifications - 20-20-20 eye-rest reminders from the system tray")
	fmt.Println()
	fmt.Println("Usage: health-notifications [OPTIONS]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  HEALTH_NOTIFY_CONFIG            Path to config file")
	fmt.Println("  HEALTH_NOTIFY_INTERVAL          Reminder interval (default: 20m)")
	fmt.Println("  HEALTH_NOTIFY_FAILURE_POLICY    log or fatal (default: log)")
	fmt.Println("  HEALTH_NOTIFY_FULLSCREEN        Suppress reminders in fullscreen apps (default: true)")
	fmt.Println("  HEALTH_NOTIFY_LOG_LEVEL         debug, info, warn or error (default: info)")
	fmt.Println()
	fmt.Println("Configuration file: ~/.config/health-notifications/config.yaml")
}
