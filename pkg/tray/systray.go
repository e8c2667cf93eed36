package tray

import (
	"github.com/getlantern/systray"
)

// SystrayShell is the Shell backed by getlantern/systray. There is one
// native tray per process, so every value shares it.
type SystrayShell struct{}

// NewSystrayShell creates the native shell.
func NewSystrayShell() *SystrayShell {
	return &SystrayShell{}
}

// SetIcon applies encoded icon bytes (ICO on Windows, PNG elsewhere).
func (SystrayShell) SetIcon(icon []byte) error {
	systray.SetIcon(icon)
	return nil
}

// SetTitle sets the text shown next to the icon where supported.
func (SystrayShell) SetTitle(title string) {
	systray.SetTitle(title)
}

// SetTooltip sets the hover text.
func (SystrayShell) SetTooltip(tooltip string) {
	systray.SetTooltip(tooltip)
}

// AddCheckbox appends a checkable menu item.
func (SystrayShell) AddCheckbox(title, tooltip string, checked bool) Checkbox {
	return menuItem{systray.AddMenuItemCheckbox(title, tooltip, checked)}
}

// AddItem appends a plain menu item.
func (SystrayShell) AddItem(title, tooltip string) Clickable {
	return menuItem{systray.AddMenuItem(title, tooltip)}
}

// AddSeparator appends a separator.
func (SystrayShell) AddSeparator() {
	systray.AddSeparator()
}

// Run blocks in the native event loop. Must be called from main.
func (SystrayShell) Run(onReady, onExit func()) {
	systray.Run(onReady, onExit)
}

// Quit ends the native event loop.
func (SystrayShell) Quit() {
	systray.Quit()
}

type menuItem struct {
	item *systray.MenuItem
}

func (m menuItem) Clicked() <-chan struct{} { return m.item.ClickedCh }
func (m menuItem) Checked() bool            { return m.item.Checked() }
func (m menuItem) Check()                   { m.item.Check() }
func (m menuItem) Uncheck()                 { m.item.Uncheck() }
