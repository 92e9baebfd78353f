// Package debounce collapses bursts of triggers into a single deferred
// execution of a task.
package debounce

import (
	"sync"
	"time"
)

// Scheduler runs a task once after a quiet period. Each Trigger call
// resets the timer, so a burst of triggers results in a single run after
// the last one. The zero value is not usable; use New.
type Scheduler struct {
	mu    sync.Mutex
	delay time.Duration
	task  func()
	timer *time.Timer
}

// New creates a scheduler that runs task delay after the last Trigger.
func New(delay time.Duration, task func()) *Scheduler {
	return &Scheduler{
		delay: delay,
		task:  task,
	}
}

// Trigger schedules the task, replacing any pending run.
func (s *Scheduler) Trigger() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.task)
}

// Stop cancels any pending run. It returns true if a run was pending.
func (s *Scheduler) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer == nil {
		return false
	}
	stopped := s.timer.Stop()
	s.timer = nil
	return stopped
}
