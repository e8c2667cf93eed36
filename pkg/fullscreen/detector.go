// Package fullscreen detects whether the foreground window covers its monitor.
package fullscreen

import (
	"go.uber.org/zap"
)

// Handle identifies a native window or monitor. Zero is never valid.
type Handle uintptr

// Rect is a rectangle in screen coordinates.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// WindowSystem is the subset of the native windowing API the detector needs.
type WindowSystem interface {
	ForegroundWindow() Handle
	DesktopWindow() Handle
	ShellWindow() Handle
	WindowRect(hwnd Handle) (Rect, error)
	// MonitorRect returns the bounds of the monitor showing hwnd, falling
	// back to the primary monitor.
	MonitorRect(hwnd Handle) (Rect, error)
}

// WindowDetector decides fullscreen occupancy from native window geometry.
type WindowDetector struct {
	ws     WindowSystem
	logger *zap.Logger
}

// NewWindowDetector creates a detector over the given window system.
func NewWindowDetector(ws WindowSystem, logger *zap.Logger) *WindowDetector {
	return &WindowDetector{
		ws:     ws,
		logger: logger,
	}
}

// IsFullscreenForeground returns true when the foreground application window
// exactly covers its monitor. Every query failure degrades to false.
func (d *WindowDetector) IsFullscreenForeground() bool {
	hwnd := d.ws.ForegroundWindow()
	// The desktop and the shell are not applications the user is focused on.
	if hwnd == 0 || hwnd == d.ws.DesktopWindow() || hwnd == d.ws.ShellWindow() {
		return false
	}

	win, err := d.ws.WindowRect(hwnd)
	if err != nil {
		d.logger.Warn("failed to get window size", zap.Uintptr("hwnd", uintptr(hwnd)), zap.Error(err))
		return false
	}

	mon, err := d.ws.MonitorRect(hwnd)
	if err != nil {
		d.logger.Warn("failed to get monitor info", zap.Uintptr("hwnd", uintptr(hwnd)), zap.Error(err))
		return false
	}

	return coversMonitor(win, mon)
}

// coversMonitor reports an exact edge match. A maximized window that stops
// short of any edge does not count.
func coversMonitor(win, mon Rect) bool {
	return win.Left == mon.Left &&
		win.Top == mon.Top &&
		win.Right == mon.Right &&
		win.Bottom == mon.Bottom
}
