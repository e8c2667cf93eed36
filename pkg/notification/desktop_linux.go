//go:build linux

package notification

import (
	"fmt"
	"sync"

	"github.com/esiqveland/notify"
	"github.com/godbus/dbus/v5"
)

// freedesktopSounds maps cross-platform sound names to freedesktop sound
// theme names.
var freedesktopSounds = map[string]string{
	"Mail":    "message-new-email",
	"Default": "message",
}

// DBusNotifier shows notifications through org.freedesktop.Notifications on
// the session bus.
type DBusNotifier struct {
	mu      sync.Mutex
	conn    *dbus.Conn
	connect func() (*dbus.Conn, error)
}

// NewDesktopNotifier creates the platform notifier. The session bus is
// dialled lazily on the first Send.
func NewDesktopNotifier(_ string) Notifier {
	return &DBusNotifier{
		connect: func() (*dbus.Conn, error) { return dbus.ConnectSessionBus() },
	}
}

// Send delivers the notification. A failed delivery drops the connection so
// the next reminder reconnects.
func (d *DBusNotifier) Send(n Notification) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conn == nil {
		conn, err := d.connect()
		if err != nil {
			return fmt.Errorf("%w: connect session bus: %v", ErrUnavailable, err)
		}
		d.conn = conn
	}

	if _, err := notify.SendNotification(d.conn, toDBus(n)); err != nil {
		_ = d.conn.Close()
		d.conn = nil
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}

// Close releases the session bus connection.
func (d *DBusNotifier) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.conn == nil {
		return nil
	}
	err := d.conn.Close()
	d.conn = nil
	return err
}

func toDBus(n Notification) notify.Notification {
	hints := map[string]dbus.Variant{}
	if n.Sound != "" {
		sound := n.Sound
		if mapped, ok := freedesktopSounds[sound]; ok {
			sound = mapped
		}
		hints["sound-name"] = dbus.MakeVariant(sound)
	}

	return notify.Notification{
		AppName:       n.AppName,
		AppIcon:       "appointment-soon",
		Summary:       n.Title,
		Body:          n.Message,
		Hints:         hints,
		ExpireTimeout: n.Timeout,
	}
}
