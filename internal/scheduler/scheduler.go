package scheduler

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Task is a recurring job fired at a fixed local clock time. Run receives the
// trigger time so task bodies stay testable with a fixed clock; bodies are
// expected to be idempotent per trigger.
type Task struct {
	Name string
	Hour int
	// Weekday restricts the task to one day of the week; nil means daily.
	Weekday *time.Weekday
	Run     func(ctx context.Context, now time.Time)
}

// Scheduler drives tasks off an injected clock. Tasks are not mutually
// exclusive with each other or with inbound-event handling.
type Scheduler struct {
	clock clockwork.Clock
	log   *zap.SugaredLogger
	tasks []Task
}

func New(clock clockwork.Clock, log *zap.SugaredLogger) *Scheduler {
	return &Scheduler{clock: clock, log: log}
}

func (s *Scheduler) Add(t Task) {
	s.tasks = append(s.tasks, t)
}

// Start launches one goroutine per task and returns. Each loop sleeps until
// the task's next trigger, runs the body, and reschedules.
func (s *Scheduler) Start(ctx context.Context) {
	for _, t := range s.tasks {
		go s.runLoop(ctx, t)
	}
}

func (s *Scheduler) runLoop(ctx context.Context, t Task) {
	for {
		now := s.clock.Now()
		next := NextRun(now, t.Hour, t.Weekday)
		s.log.Infow("task scheduled", "task", t.Name, "at", next)

		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(next.Sub(now)):
		}

		fired := s.clock.Now()
		s.log.Infow("task running", "task", t.Name)
		t.Run(ctx, fired)
	}
}

// NextRun computes the first instant strictly after now that falls on the
// given hour (and weekday, when set).
func NextRun(now time.Time, hour int, weekday *time.Weekday) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	if weekday != nil {
		for next.Weekday() != *weekday {
			next = next.AddDate(0, 0, 1)
		}
	}
	return next
}
