// Package interfaces defines the core interfaces used throughout the application.
package interfaces

import "time"

// FullscreenDetector reports whether the user is occupied by a fullscreen
// foreground application.
type FullscreenDetector interface {
	IsFullscreenForeground() bool
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// IconSetter applies an encoded icon to the tray.
type IconSetter interface {
	SetIcon(icon []byte) error
}

// Reminder sends the eye-rest reminder.
type Reminder interface {
	Remind(title, message string)
}
