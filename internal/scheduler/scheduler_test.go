package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

func weekdayPtr(d time.Weekday) *time.Weekday { return &d }

func TestNextRun(t *testing.T) {
	// 2024-06-03 is a Monday.
	monday8 := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		now     time.Time
		hour    int
		weekday *time.Weekday
		want    time.Time
	}{
		{
			name: "later today",
			now:  monday8, hour: 9,
			want: time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "already passed rolls to tomorrow",
			now:  monday8, hour: 2,
			want: time.Date(2024, 6, 4, 2, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly at the hour rolls to tomorrow",
			now:  time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC), hour: 9,
			want: time.Date(2024, 6, 4, 9, 0, 0, 0, time.UTC),
		},
		{
			name: "weekly advances to sunday",
			now:  monday8, hour: 2, weekday: weekdayPtr(time.Sunday),
			want: time.Date(2024, 6, 9, 2, 0, 0, 0, time.UTC),
		},
		{
			name: "weekly on the same day later hour",
			now:  time.Date(2024, 6, 9, 1, 0, 0, 0, time.UTC), // Sunday 1AM
			hour: 2, weekday: weekdayPtr(time.Sunday),
			want: time.Date(2024, 6, 9, 2, 0, 0, 0, time.UTC),
		},
		{
			name: "weekly on the same day earlier hour waits a week",
			now:  time.Date(2024, 6, 9, 3, 0, 0, 0, time.UTC), // Sunday 3AM
			hour: 2, weekday: weekdayPtr(time.Sunday),
			want: time.Date(2024, 6, 16, 2, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextRun(tt.now, tt.hour, tt.weekday)
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSchedulerFiresDailyTask(t *testing.T) {
	start := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start)
	sched := New(clock, zap.NewNop().Sugar())

	var fired atomic.Int64
	sched.Add(Task{
		Name: "digest",
		Hour: 9,
		Run: func(ctx context.Context, now time.Time) {
			fired.Add(1)
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sched.Start(ctx)

	// the loop must be blocked on the clock before we advance it
	clock.BlockUntil(1)
	clock.Advance(time.Hour)
	clock.BlockUntil(1)
	if got := fired.Load(); got != 1 {
		t.Fatalf("after first trigger: fired %d times, want 1", got)
	}

	// next trigger is 24h later
	clock.Advance(24 * time.Hour)
	clock.BlockUntil(1)
	if got := fired.Load(); got != 2 {
		t.Fatalf("after second trigger: fired %d times, want 2", got)
	}
}

func TestSchedulerStopsOnCancel(t *testing.T) {
	start := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start)
	sched := New(clock, zap.NewNop().Sugar())

	var fired atomic.Int64
	sched.Add(Task{
		Name: "digest",
		Hour: 9,
		Run:  func(ctx context.Context, now time.Time) { fired.Add(1) },
	})

	ctx, cancel := context.WithCancel(context.Background())
	sched.Start(ctx)
	clock.BlockUntil(1)
	cancel()

	// give the loop a moment to observe the cancellation, then advance past
	// the trigger; the task must not fire
	time.Sleep(10 * time.Millisecond)
	clock.Advance(2 * time.Hour)
	time.Sleep(10 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Fatalf("task fired %d times after cancel, want 0", got)
	}
}
