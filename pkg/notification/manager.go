package notification

import (
	"time"

	"go.uber.org/zap"

	"github.com/Veraticus/health-notifications/pkg/config"
	"github.com/Veraticus/health-notifications/pkg/interfaces"
)

// Manager turns reminders into notifications and applies the failure policy
// to delivery errors.
type Manager struct {
	notifier Notifier
	policy   config.FailurePolicy
	appName  string
	sound    string
	timeout  time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// Ensure Manager implements Reminder
var _ interfaces.Reminder = (*Manager)(nil)

// NewManager creates a new notification manager
func NewManager(cfg *config.Config, notifier Notifier, logger *zap.Logger) *Manager {
	return &Manager{
		notifier: notifier,
		policy:   cfg.FailurePolicy,
		appName:  cfg.AppName,
		sound:    cfg.Sound,
		timeout:  cfg.NotificationTimeout,
		logger:   logger,
		now:      time.Now,
	}
}

// Remind sends one reminder notification. It never returns an error: under
// the log policy failures are logged and the caller carries on, under the
// fatal policy the process exits.
func (m *Manager) Remind(title, message string) {
	n := Notification{
		Title:   title,
		Message: message,
		Time:    m.now(),
		AppName: m.appName,
		Sound:   m.sound,
		Timeout: m.timeout,
	}

	if err := m.notifier.Send(n); err != nil {
		fields := []zap.Field{zap.String("title", title), zap.Error(err)}
		if m.policy == config.PolicyFatal {
			m.logger.Fatal("failed to show notification", fields...)
			return
		}
		m.logger.Error("failed to show notification", fields...)
		return
	}

	m.logger.Info("reminder shown", zap.String("title", title))
}

// Close releases the notifier if it holds resources.
func (m *Manager) Close() error {
	if c, ok := m.notifier.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
