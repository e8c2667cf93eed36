// Package notification provides notification functionality.
package notification

import (
	"errors"
	"time"
)

// ErrUnavailable is returned when no notification service can be reached.
var ErrUnavailable = errors.New("notification service unavailable")

// Notification represents a notification to be sent.
type Notification struct {
	Title   string
	Message string
	Time    time.Time

	// Presentation hints. Backends ignore what they cannot express.
	AppName string
	Sound   string
	Timeout time.Duration
}

// Notifier sends notifications.
type Notifier interface {
	Send(notification Notification) error
}
