// Package testutil provides shared test doubles.
package testutil

import (
	"sync"

	"github.com/Veraticus/health-notifications/pkg/interfaces"
	"github.com/Veraticus/health-notifications/pkg/notification"
)

// Reminder records a single Remind call.
type Reminder struct {
	Title   string
	Message string
}

// MockReminder is a thread-safe mock implementation of interfaces.Reminder
type MockReminder struct {
	mu    sync.Mutex
	calls []Reminder
}

var _ interfaces.Reminder = (*MockReminder)(nil)

// NewMockReminder creates a new mock reminder
func NewMockReminder() *MockReminder {
	return &MockReminder{}
}

// Remind implements the Reminder interface
func (m *MockReminder) Remind(title, message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, Reminder{Title: title, Message: message})
}

// Calls returns a copy of the recorded calls
func (m *MockReminder) Calls() []Reminder {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]Reminder, len(m.calls))
	copy(result, m.calls)
	return result
}

// Clear forgets recorded calls
func (m *MockReminder) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = nil
}

// MockDetector is a mock implementation of interfaces.FullscreenDetector
type MockDetector struct {
	mu         sync.Mutex
	fullscreen bool
	callCount  int
}

var _ interfaces.FullscreenDetector = (*MockDetector)(nil)

// NewMockDetector creates a new mock detector
func NewMockDetector(fullscreen bool) *MockDetector {
	return &MockDetector{fullscreen: fullscreen}
}

// IsFullscreenForeground implements the FullscreenDetector interface
func (m *MockDetector) IsFullscreenForeground() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount++
	return m.fullscreen
}

// SetFullscreen sets the reported state
func (m *MockDetector) SetFullscreen(fullscreen bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fullscreen = fullscreen
}

// CallCount returns how many times the detector was queried
func (m *MockDetector) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// MockNotifier is a thread-safe mock implementation of notification.Notifier
type MockNotifier struct {
	mu            sync.Mutex
	notifications []notification.Notification
	attempts      []notification.Notification
	sendErr       error
}

var _ notification.Notifier = (*MockNotifier)(nil)

// NewMockNotifier creates a new mock notifier
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

// Send implements the Notifier interface
func (m *MockNotifier) Send(n notification.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Always track the attempt
	m.attempts = append(m.attempts, n)

	if m.sendErr != nil {
		return m.sendErr
	}

	m.notifications = append(m.notifications, n)
	return nil
}

// GetNotifications returns a copy of successfully sent notifications
func (m *MockNotifier) GetNotifications() []notification.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]notification.Notification, len(m.notifications))
	copy(result, m.notifications)
	return result
}

// GetAttempts returns a copy of all attempted sends (including failures)
func (m *MockNotifier) GetAttempts() []notification.Notification {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]notification.Notification, len(m.attempts))
	copy(result, m.attempts)
	return result
}

// SetError sets the error to return on Send calls
func (m *MockNotifier) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sendErr = err
}

// MockIconSetter is a mock implementation of interfaces.IconSetter
type MockIconSetter struct {
	mu    sync.Mutex
	icons [][]byte
	err   error
}

var _ interfaces.IconSetter = (*MockIconSetter)(nil)

// NewMockIconSetter creates a new mock icon setter
func NewMockIconSetter() *MockIconSetter {
	return &MockIconSetter{}
}

// SetIcon implements the IconSetter interface
func (m *MockIconSetter) SetIcon(icon []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.icons = append(m.icons, icon)
	return nil
}

// SetError sets the error to return on SetIcon calls
func (m *MockIconSetter) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Icons returns every applied icon in order
func (m *MockIconSetter) Icons() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([][]byte, len(m.icons))
	copy(result, m.icons)
	return result
}
