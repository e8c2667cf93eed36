package main

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Veraticus/health-notifications/pkg/config"
	"github.com/Veraticus/health-notifications/pkg/control"
	"github.com/Veraticus/health-notifications/pkg/fullscreen"
	"github.com/Veraticus/health-notifications/pkg/interfaces"
	"github.com/Veraticus/health-notifications/pkg/logging"
	"github.com/Veraticus/health-notifications/pkg/notification"
	"github.com/Veraticus/health-notifications/pkg/scheduler"
	"github.com/Veraticus/health-notifications/pkg/status"
	"github.com/Veraticus/health-notifications/pkg/tray"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config              *config.Config
	Logger              *zap.Logger
	Detector            interfaces.FullscreenDetector
	Notifier            notification.Notifier
	NotificationManager *notification.Manager
	Scheduler           *scheduler.Scheduler
	Pause               *control.Mailbox[bool]
	Loop                *control.Loop
	Indicator           *status.Indicator
	Shell               tray.Shell
	UI                  *tray.UI
	Watcher             *config.Watcher
}

// NewDependencies creates all dependencies with the given configuration
func NewDependencies(cfg *config.Config, logger *zap.Logger, shell tray.Shell) (*Dependencies, error) {
	var notifier notification.Notifier
	if cfg.DryRun {
		notifier = notification.NewStdoutNotifier()
	} else {
		notifier = notification.NewDesktopNotifier(cfg.AppName)
	}
	return newDependencies(cfg, logger, shell, notifier, nil)
}

// newDependencies wires the components around an explicit notifier and
// clock. A nil clock uses the system clock.
func newDependencies(
	cfg *config.Config,
	logger *zap.Logger,
	shell tray.Shell,
	notifier notification.Notifier,
	clock interfaces.Clock,
) (*Dependencies, error) {
	deps := &Dependencies{
		Config:   cfg,
		Logger:   logger,
		Shell:    shell,
		Notifier: notifier,
	}

	// Create fullscreen detector
	deps.Detector = fullscreen.NewDetector(cfg.FullscreenDetection, logging.Component(logger, "fullscreen"))

	// Create notification components
	deps.NotificationManager = notification.NewManager(cfg, notifier, logging.Component(logger, "notification"))

	// Create control loop; it takes sole ownership of the scheduler
	deps.Scheduler = scheduler.New(clock)
	deps.Pause = control.NewMailbox[bool]()
	loop, err := control.NewLoop(cfg, deps.Scheduler, deps.Detector, deps.NotificationManager, deps.Pause, logging.Component(logger, "control"))
	if err != nil {
		return nil, err
	}
	deps.Loop = loop

	// Create tray
	deps.Indicator = status.NewIndicator(shell, cfg.FailurePolicy, logging.Component(logger, "status"))
	deps.UI = tray.NewUI(shell, deps.Pause, deps.Indicator, cfg.Tooltip, logging.Component(logger, "tray"))

	return deps, nil
}

// Close cleans up all dependencies
func (d *Dependencies) Close() {
	if d.Watcher != nil {
		d.Watcher.Stop()
		d.Watcher = nil
	}

	if d.NotificationManager != nil {
		_ = d.NotificationManager.Close()
	}

	_ = d.Logger.Sync()
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run shows the tray and drives the reminder loop until the tray closes or
// ctx is cancelled. It blocks the calling goroutine, which must be main.
func (a *Application) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.watchConfig()

	started := make(chan struct{})
	loopDone := make(chan error, 1)

	a.deps.UI.Run(ctx, func() {
		close(started)
		go func() {
			loopDone <- a.deps.Loop.Run(ctx)
		}()
	}, cancel)

	cancel()

	select {
	case <-started:
	default:
		return nil
	}

	if err := <-loopDone; err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// watchConfig reloads reminder settings when the config file changes. A
// missing config directory just disables reloading.
func (a *Application) watchConfig() {
	path := a.deps.Config.File()
	if path == "" {
		return
	}

	logger := logging.Component(a.deps.Logger, "config")
	w, err := config.NewWatcher(path, logger, func(cfg *config.Config) {
		a.deps.Loop.UpdateReminder(cfg.Reminder)
	})
	if err != nil {
		logger.Warn("config reload disabled", zap.Error(err))
		return
	}
	if err := w.Start(); err != nil {
		w.Stop()
		logger.Debug("config reload disabled", zap.Error(err))
		return
	}
	a.deps.Watcher = w
}
