// Package tray implements the system tray icon and menu.
package tray

import "github.com/Veraticus/health-notifications/pkg/interfaces"

// Clickable is a menu entry that reports clicks.
type Clickable interface {
	Clicked() <-chan struct{}
}

// Checkbox is a checkable menu entry.
type Checkbox interface {
	Clickable
	Checked() bool
	Check()
	Uncheck()
}

// Shell is the tray primitive: icon, tooltip and a flat menu.
type Shell interface {
	interfaces.IconSetter
	SetTitle(title string)
	SetTooltip(tooltip string)
	AddCheckbox(title, tooltip string, checked bool) Checkbox
	AddItem(title, tooltip string) Clickable
	AddSeparator()
	// Run blocks the calling goroutine in the native event loop. onReady
	// runs once the tray exists, onExit after Quit.
	Run(onReady, onExit func())
	Quit()
}
