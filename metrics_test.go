package beacon

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestNoOpMetricsProvider_DoesNotPanic(_ *testing.T) {
	var m NoOpMetricsProvider

	// These should not panic
	m.OnStateChange(StateLoading, StateReady)
	m.OnRefreshSuccess(100 * time.Millisecond)
	m.OnRefreshFailure("load", 50*time.Millisecond)
}

type recordingMetrics struct {
	NoOpMetricsProvider

	mu        sync.Mutex
	successes int
	failures  []string
	changes   [][2]State
}

func (m *recordingMetrics) OnStateChange(from, to State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changes = append(m.changes, [2]State{from, to})
}

func (m *recordingMetrics) OnRefreshSuccess(time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.successes++
}

func (m *recordingMetrics) OnRefreshFailure(stage string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failures = append(m.failures, stage)
}

func TestRepository_MetricsCallbacks(t *testing.T) {
	metrics := &recordingMetrics{}
	repo, loader := newTestRepository(t, `[]`, WithMetrics(metrics))

	if metrics.successes != 1 {
		t.Errorf("expected 1 success from initial load, got %d", metrics.successes)
	}

	loader.Fail(errors.New("outage"))
	_ = repo.Refresh(context.Background()) //nolint:errcheck // Failure is the setup

	loader.Set([]byte(`{malformed`))
	_ = repo.Refresh(context.Background()) //nolint:errcheck // Failure is the setup

	if len(metrics.failures) != 2 || metrics.failures[0] != "load" || metrics.failures[1] != "parse" {
		t.Errorf("expected failure stages [load parse], got %v", metrics.failures)
	}

	loader.Set([]byte(`[]`))
	if err := repo.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if metrics.successes != 2 {
		t.Errorf("expected 2 successes, got %d", metrics.successes)
	}

	// Loading→Ready, Ready→Stale, Stale→Ready
	want := [][2]State{
		{StateLoading, StateReady},
		{StateReady, StateStale},
		{StateStale, StateReady},
	}
	if len(metrics.changes) != len(want) {
		t.Fatalf("expected %d state changes, got %d: %v", len(want), len(metrics.changes), metrics.changes)
	}
	for i := range want {
		if metrics.changes[i] != want[i] {
			t.Errorf("state change %d: expected %v→%v, got %v→%v",
				i, want[i][0], want[i][1], metrics.changes[i][0], metrics.changes[i][1])
		}
	}
}
