package control

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Veraticus/health-notifications/pkg/config"
	"github.com/Veraticus/health-notifications/pkg/interfaces"
	"github.com/Veraticus/health-notifications/pkg/scheduler"
)

// ReminderJob is the name of the eye-rest job.
const ReminderJob = "20-20-20"

// Loop polls once per tick: it applies the latest pause signal, checks for a
// fullscreen application and, when neither suppresses it, runs the
// scheduler. The loop goroutine is the only owner of the scheduler.
type Loop struct {
	tick      time.Duration
	scheduler *scheduler.Scheduler
	detector  interfaces.FullscreenDetector
	reminder  interfaces.Reminder
	pause     *Mailbox[bool]
	settings  *Mailbox[config.Reminder]
	logger    *zap.Logger

	// Loop-goroutine state.
	current config.Reminder
	paused  bool
	busy    bool
}

// NewLoop creates the control loop and registers the reminder job.
func NewLoop(
	cfg *config.Config,
	sched *scheduler.Scheduler,
	detector interfaces.FullscreenDetector,
	reminder interfaces.Reminder,
	pause *Mailbox[bool],
	logger *zap.Logger,
) (*Loop, error) {
	l := &Loop{
		tick:      cfg.Tick,
		scheduler: sched,
		detector:  detector,
		reminder:  reminder,
		pause:     pause,
		settings:  NewMailbox[config.Reminder](),
		logger:    logger,
		current:   cfg.Reminder,
	}

	if _, err := sched.Every(cfg.Reminder.Interval).Do(ReminderJob, l.remind); err != nil {
		return nil, fmt.Errorf("failed to schedule reminder: %w", err)
	}
	return l, nil
}

// UpdateReminder hands new reminder settings to the loop. Safe to call from
// any goroutine; the loop applies the latest value on its next tick.
func (l *Loop) UpdateReminder(r config.Reminder) {
	l.settings.Put(r)
}

// Run ticks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()

	l.logger.Info("control loop started",
		zap.Duration("tick", l.tick),
		zap.Duration("interval", l.current.Interval))

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("control loop stopped")
			return ctx.Err()
		case <-ticker.C:
			l.Step()
		}
	}
}

// Step runs one iteration of the loop.
func (l *Loop) Step() {
	if paused, ok := l.pause.Take(); ok && paused != l.paused {
		l.paused = paused
		l.logger.Info("pause state changed", zap.Bool("paused", paused))
	}

	if r, ok := l.settings.Take(); ok {
		l.applyReminder(r)
	}

	busy := l.detector.IsFullscreenForeground()
	if busy != l.busy {
		l.busy = busy
		l.logger.Debug("fullscreen state changed", zap.Bool("busy", busy))
	}

	if !l.paused && !l.busy {
		l.scheduler.RunPending()
	}
}

// Paused returns the pause state as of the last Step.
func (l *Loop) Paused() bool {
	return l.paused
}

// Busy returns the fullscreen state as of the last Step.
func (l *Loop) Busy() bool {
	return l.busy
}

func (l *Loop) applyReminder(r config.Reminder) {
	if r.Interval != l.current.Interval {
		if err := l.scheduler.Reschedule(ReminderJob, r.Interval); err != nil {
			l.logger.Warn("keeping previous reminder interval", zap.Error(err))
			r.Interval = l.current.Interval
		}
	}
	l.current = r

	next, _ := l.scheduler.NextRun(ReminderJob)
	l.logger.Info("reminder settings applied",
		zap.Duration("interval", r.Interval),
		zap.Time("next", next))
}

func (l *Loop) remind() {
	l.reminder.Remind(l.current.Title, l.current.Message)
}
