//go:build !windows

package fullscreen

import (
	"go.uber.org/zap"

	"github.com/Veraticus/health-notifications/pkg/interfaces"
)

// newPlatformDetector creates a fallback detector for unsupported platforms.
func newPlatformDetector(_ *zap.Logger) interfaces.FullscreenDetector {
	return NewNeverDetector()
}
