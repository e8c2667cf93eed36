//go:build !linux

package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// BeeepNotifier shows notifications through the native notification center
// (toast on Windows, osascript on macOS). Display duration is left to the OS.
type BeeepNotifier struct {
	notify func(title, message string, icon any) error
	alert  func(title, message string, icon any) error
}

// NewDesktopNotifier creates the platform notifier under the given
// application identity.
func NewDesktopNotifier(appName string) Notifier {
	if appName != "" {
		beeep.AppName = appName
	}
	return &BeeepNotifier{
		notify: beeep.Notify,
		alert:  beeep.Alert,
	}
}

// Send delivers the notification. A configured sound switches to an alert,
// which plays the system notification sound.
func (b *BeeepNotifier) Send(n Notification) error {
	send := b.notify
	if n.Sound != "" {
		send = b.alert
	}
	if err := send(n.Title, n.Message, ""); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
