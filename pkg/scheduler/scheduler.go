// Package scheduler runs interval jobs on wall-clock time.
package scheduler

import (
	"fmt"
	"time"

	"github.com/Veraticus/health-notifications/pkg/interfaces"
)

// Job is a named task that runs every interval.
type Job struct {
	name     string
	interval time.Duration
	next     time.Time
	run      func()
}

// Name returns the job name.
func (j *Job) Name() string {
	return j.name
}

// Interval returns the job interval.
func (j *Job) Interval() time.Duration {
	return j.interval
}

// Scheduler holds interval jobs. It is not safe for concurrent use; one
// goroutine owns it.
type Scheduler struct {
	clock interfaces.Clock
	jobs  []*Job
}

// New creates a scheduler reading time from clock. A nil clock uses the
// system clock.
func New(clock interfaces.Clock) *Scheduler {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Scheduler{clock: clock}
}

// JobBuilder configures a job before it is registered.
type JobBuilder struct {
	s        *Scheduler
	interval time.Duration
}

// Every starts a job definition with the given interval.
func (s *Scheduler) Every(interval time.Duration) *JobBuilder {
	return &JobBuilder{s: s, interval: interval}
}

// Do registers the job. Its first run is one interval from now.
func (b *JobBuilder) Do(name string, fn func()) (*Job, error) {
	if b.interval <= 0 {
		return nil, fmt.Errorf("job %q: interval must be positive, got %v", name, b.interval)
	}
	if b.s.find(name) != nil {
		return nil, fmt.Errorf("job %q already registered", name)
	}

	job := &Job{
		name:     name,
		interval: b.interval,
		next:     b.s.clock.Now().Add(b.interval),
		run:      fn,
	}
	b.s.jobs = append(b.s.jobs, job)
	return job, nil
}

// RunPending runs every job that is due and reschedules it one interval from
// now. A job overdue by several intervals runs once, not once per missed
// interval. It returns the number of jobs run.
func (s *Scheduler) RunPending() int {
	now := s.clock.Now()
	ran := 0
	for _, job := range s.jobs {
		if now.Before(job.next) {
			continue
		}
		job.run()
		job.next = now.Add(job.interval)
		ran++
	}
	return ran
}

// Reschedule changes a job's interval and restarts its countdown from now.
func (s *Scheduler) Reschedule(name string, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("job %q: interval must be positive, got %v", name, interval)
	}
	job := s.find(name)
	if job == nil {
		return fmt.Errorf("job %q not found", name)
	}
	job.interval = interval
	job.next = s.clock.Now().Add(interval)
	return nil
}

// NextRun returns when the named job is next due.
func (s *Scheduler) NextRun(name string) (time.Time, bool) {
	job := s.find(name)
	if job == nil {
		return time.Time{}, false
	}
	return job.next, true
}

func (s *Scheduler) find(name string) *Job {
	for _, job := range s.jobs {
		if job.name == name {
			return job
		}
	}
	return nil
}
