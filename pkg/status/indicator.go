package status

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Veraticus/health-notifications/pkg/config"
	"github.com/Veraticus/health-notifications/pkg/interfaces"
)

// Indicator keeps the tray icon in step with the pause state. It belongs to
// the tray goroutine and is not safe for concurrent use.
type Indicator struct {
	setter interfaces.IconSetter
	policy config.FailurePolicy
	logger *zap.Logger
	encode func(paused bool) ([]byte, error)

	rendered    bool
	hasRendered bool
}

// NewIndicator creates an indicator that applies icons through setter.
func NewIndicator(setter interfaces.IconSetter, policy config.FailurePolicy, logger *zap.Logger) *Indicator {
	return &Indicator{
		setter: setter,
		policy: policy,
		logger: logger,
		encode: EncodeIcon,
	}
}

// Render repaints the icon if paused differs from the last rendered state.
// The first call always paints. It reports whether a repaint happened.
func (i *Indicator) Render(paused bool) bool {
	if i.hasRendered && paused == i.rendered {
		return false
	}

	if err := i.apply(paused); err != nil {
		fields := []zap.Field{zap.Bool("paused", paused), zap.Error(err)}
		if i.policy == config.PolicyFatal {
			i.logger.Fatal("failed to set tray icon", fields...)
			return false
		}
		// Leave the cache untouched so the next change retries.
		i.logger.Error("failed to set tray icon", fields...)
		return false
	}

	i.rendered = paused
	i.hasRendered = true
	return true
}

// Rendered returns the last successfully rendered state.
func (i *Indicator) Rendered() (paused bool, ok bool) {
	return i.rendered, i.hasRendered
}

func (i *Indicator) apply(paused bool) error {
	icon, err := i.encode(paused)
	if err != nil {
		return fmt.Errorf("encode icon: %w", err)
	}
	return i.setter.SetIcon(icon)
}
