//go:build windows

package fullscreen

import (
	"go.uber.org/zap"

	"github.com/Veraticus/health-notifications/pkg/interfaces"
)

// newPlatformDetector creates a detector that queries user32.
func newPlatformDetector(logger *zap.Logger) interfaces.FullscreenDetector {
	return NewWindowDetector(newUser32WindowSystem(), logger)
}
