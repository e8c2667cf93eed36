package notification

import (
	"fmt"
	"io"
	"os"
	"time"
)

// StdoutNotifier prints notifications instead of showing them (dry runs and tests)
type StdoutNotifier struct {
	out io.Writer
}

// NewStdoutNotifier creates a new stdout notifier
func NewStdoutNotifier() *StdoutNotifier {
	return &StdoutNotifier{out: os.Stdout}
}

// Send prints the notification to stdout
func (n *StdoutNotifier) Send(notification Notification) error {
	_, err := fmt.Fprintf(n.out, "[NOTIFICATION] %s %s: %s (App: %s, Timeout: %s)\n",
		notification.Time.Format(time.TimeOnly),
		notification.Title,
		notification.Message,
		notification.AppName,
		notification.Timeout)
	return err
}
