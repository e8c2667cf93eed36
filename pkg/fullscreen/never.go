package fullscreen

// NeverDetector is used where no native query exists. Reminders are never
// suppressed by fullscreen detection.
type NeverDetector struct{}

// NewNeverDetector creates a detector that always reports false.
func NewNeverDetector() *NeverDetector {
	return &NeverDetector{}
}

// IsFullscreenForeground always returns false.
func (NeverDetector) IsFullscreenForeground() bool {
	return false
}
