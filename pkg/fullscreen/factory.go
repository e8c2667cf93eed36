package fullscreen

import (
	"go.uber.org/zap"

	"github.com/Veraticus/health-notifications/pkg/interfaces"
)

// NewDetector creates a platform-appropriate fullscreen detector.
// It returns:
// - WindowDetector backed by user32 on Windows
// - NeverDetector on other platforms, or when detection is disabled.
func NewDetector(enabled bool, logger *zap.Logger) interfaces.FullscreenDetector {
	if !enabled {
		return NewNeverDetector()
	}
	return newPlatformDetector(logger)
}
