package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func waitForCount(t *testing.T, counter *atomic.Int32, want int32) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for counter.Load() < want {
		if time.Now().After(deadline) {
			t.Fatalf("job ran %d times, want at least %d", counter.Load(), want)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestManager_RunsJobImmediatelyAndOnTicks(t *testing.T) {
	var runs atomic.Int32

	m := NewManager()
	m.Register(Job{
		Name:     "counter",
		Interval: 10 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})
	m.Start()
	defer m.Shutdown(time.Second)

	waitForCount(t, &runs, 3)
}

func TestManager_PanickingJobKeepsRunning(t *testing.T) {
	var runs atomic.Int32

	m := NewManager()
	m.Register(Job{
		Name:     "flaky",
		Interval: 10 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			if runs.Add(1) <= 2 {
				panic("claimed work blew up")
			}
			return nil
		},
	})
	m.Start()
	defer m.Shutdown(time.Second)

	// The first two invocations panic; the loop must survive them and
	// keep ticking instead of crashing the process
	waitForCount(t, &runs, 4)
}

func TestManager_FailingJobKeepsRunning(t *testing.T) {
	var runs atomic.Int32

	m := NewManager()
	m.Register(Job{
		Name:     "failing",
		Interval: 10 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return errors.New("transient failure")
		},
	})
	m.Start()
	defer m.Shutdown(time.Second)

	waitForCount(t, &runs, 3)
}

func TestManager_ShutdownStopsJobs(t *testing.T) {
	var runs atomic.Int32

	m := NewManager()
	m.Register(Job{
		Name:     "stopper",
		Interval: 5 * time.Millisecond,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})
	m.Start()

	waitForCount(t, &runs, 2)
	m.Shutdown(time.Second)

	after := runs.Load()
	time.Sleep(30 * time.Millisecond)
	if got := runs.Load(); got != after {
		t.Errorf("job kept running after shutdown: %d -> %d", after, got)
	}
}
