package tray

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Veraticus/health-notifications/pkg/control"
	"github.com/Veraticus/health-notifications/pkg/status"
)

// UI owns the tray menu and icon. The Pause checkbox is the source of truth
// for the pause state; every click forwards its new state to the control
// loop through the pause mailbox.
type UI struct {
	shell     Shell
	pause     *control.Mailbox[bool]
	indicator *status.Indicator
	tooltip   string
	logger    *zap.Logger

	pauseItem Checkbox
	quitItem  Clickable
}

// NewUI creates the tray UI.
func NewUI(shell Shell, pause *control.Mailbox[bool], indicator *status.Indicator, tooltip string, logger *zap.Logger) *UI {
	return &UI{
		shell:     shell,
		pause:     pause,
		indicator: indicator,
		tooltip:   tooltip,
		logger:    logger,
	}
}

// Build creates the menu and paints the initial (active) icon.
func (u *UI) Build() error {
	u.shell.SetTitle(u.tooltip)
	u.shell.SetTooltip(u.tooltip)

	if !u.indicator.Render(false) {
		return fmt.Errorf("failed to set initial tray icon")
	}

	u.pauseItem = u.shell.AddCheckbox("Pause", "Pause eye-rest reminders", false)
	u.shell.AddSeparator()
	u.quitItem = u.shell.AddItem("Quit", "Quit health notifications")
	return nil
}

// HandlePauseClick flips the checkbox, forwards the new state and repaints
// the icon when it changed.
func (u *UI) HandlePauseClick() {
	if u.pauseItem.Checked() {
		u.pauseItem.Uncheck()
	} else {
		u.pauseItem.Check()
	}
	paused := u.pauseItem.Checked()

	u.pause.Put(paused)
	u.logger.Info("pause toggled", zap.Bool("paused", paused))
	u.Refresh()
}

// Refresh repaints the icon if the checkbox state differs from the icon.
func (u *UI) Refresh() {
	u.indicator.Render(u.pauseItem.Checked())
}

// Loop dispatches menu clicks until ctx is cancelled or Quit is clicked.
func (u *UI) Loop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-u.pauseItem.Clicked():
			u.HandlePauseClick()
		case <-u.quitItem.Clicked():
			u.logger.Info("quit requested from tray")
			u.shell.Quit()
			return
		}
	}
}

// Run blocks in the tray event loop. onStart runs once the tray is built;
// onExit runs when the tray closes. Cancelling ctx closes the tray. A tray
// that cannot be built is fatal.
func (u *UI) Run(ctx context.Context, onStart, onExit func()) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	closed := make(chan struct{})
	closeOnce := sync.OnceFunc(func() { close(closed) })
	watching := make(chan struct{})
	go func() {
		defer close(watching)
		select {
		case <-ctx.Done():
			u.shell.Quit()
		case <-closed:
		}
	}()

	u.shell.Run(func() {
		if err := u.Build(); err != nil {
			u.logger.Fatal("failed to build tray", zap.Error(err))
			return
		}
		if onStart != nil {
			onStart()
		}
		go u.Loop(ctx)
	}, func() {
		closeOnce()
		if onExit != nil {
			onExit()
		}
	})

	closeOnce()
	<-watching
}
