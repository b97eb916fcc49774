package beacon

import "time"

// MetricsProvider allows integration with metrics systems like Prometheus, StatsD, etc.
// Implement this interface to receive callbacks on key repository events.
type MetricsProvider interface {
	// OnStateChange is called when the repository transitions between states.
	OnStateChange(from, to State)

	// OnRefreshSuccess is called when a refresh cycle publishes a new
	// snapshot. Duration is the time taken to load, parse, and publish.
	OnRefreshSuccess(duration time.Duration)

	// OnRefreshFailure is called when a refresh cycle fails.
	// Stage indicates where the failure occurred: "load" or "parse".
	OnRefreshFailure(stage string, duration time.Duration)
}

// NoOpMetricsProvider is a no-op implementation of MetricsProvider.
// Use this as an embedded type to implement only the methods you need.
type NoOpMetricsProvider struct{}

func (NoOpMetricsProvider) OnStateChange(_, _ State)                   {}
func (NoOpMetricsProvider) OnRefreshSuccess(_ time.Duration)           {}
func (NoOpMetricsProvider) OnRefreshFailure(_ string, _ time.Duration) {}
