package beacon

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/zoobzio/capitan"
	"github.com/zoobzio/clockz"
)

// DefaultRefreshInterval is the cadence the original deployments of this
// pattern refreshed at. Refresh is disabled unless an interval is
// configured; pass this to WithRefreshInterval for the conventional
// default.
const DefaultRefreshInterval = 60 * time.Second

// DefaultErrorHistory is the default capacity of the recent refresh error
// ring.
const DefaultErrorHistory = 8

// Repository owns the current immutable alias-to-Configuration snapshot.
// It performs one synchronous load at construction, optionally refreshes
// on a fixed interval in the background, and serves lock-free lookups.
//
// The snapshot reference is the sole synchronization point: the refresh
// goroutine builds a complete replacement and publishes it in one atomic
// pointer swap, so readers observe either the old snapshot or the new one,
// never a partial state. Snapshots, Configurations, and Conditions are
// immutable once built, so no further locking is required.
//
// The store is one-way by design: Put always fails with ErrReadOnly.
type Repository struct {
	loader   Loader
	parser   Parser
	interval time.Duration
	clock    clockz.Clock
	metrics  MetricsProvider

	current     atomic.Pointer[snapshot]
	state       atomic.Int32
	lastError   atomic.Pointer[error]
	lastRefresh atomic.Pointer[time.Time]
	refreshErrs *errorRing

	// refreshMu serializes refresh cycles. Lookups never take it.
	refreshMu sync.Mutex

	mu      sync.Mutex
	started bool
}

// repositoryConfig holds construction options for a Repository.
type repositoryConfig struct {
	interval time.Duration
	clock    clockz.Clock
	metrics  MetricsProvider
	history  int
}

// RepositoryOption configures a Repository.
type RepositoryOption func(*repositoryConfig)

// WithRefreshInterval enables scheduled refresh at the given fixed
// interval. Zero disables scheduled refresh; negative intervals are
// rejected at construction.
func WithRefreshInterval(d time.Duration) RepositoryOption {
	return func(c *repositoryConfig) {
		c.interval = d
	}
}

// WithClock sets a custom clock for the refresh schedule.
// Use this with clockz.FakeClock for deterministic refresh testing.
func WithClock(clock clockz.Clock) RepositoryOption {
	return func(c *repositoryConfig) {
		c.clock = clock
	}
}

// WithMetrics sets a metrics provider receiving refresh and state-change
// callbacks.
func WithMetrics(m MetricsProvider) RepositoryOption {
	return func(c *repositoryConfig) {
		c.metrics = m
	}
}

// WithErrorHistory sets the capacity of the recent refresh error ring.
// Zero disables error history.
func WithErrorHistory(n int) RepositoryOption {
	return func(c *repositoryConfig) {
		c.history = n
	}
}

// NewRepository constructs a Repository and performs the initial load
// synchronously. Any load or parse failure during this initial cycle is
// fatal: the error is returned and no Repository is produced.
//
// Scheduled refresh does not run until Start is called.
func NewRepository(ctx context.Context, loader Loader, parser Parser, opts ...RepositoryOption) (*Repository, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if parser == nil {
		return nil, fmt.Errorf("parser is required")
	}

	cfg := &repositoryConfig{
		clock:   clockz.RealClock,
		metrics: NoOpMetricsProvider{},
		history: DefaultErrorHistory,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.interval < 0 {
		return nil, fmt.Errorf("refresh interval must be >= 0, got %s", cfg.interval)
	}
	if cfg.metrics == nil {
		cfg.metrics = NoOpMetricsProvider{}
	}

	r := &Repository{
		loader:      loader,
		parser:      parser,
		interval:    cfg.interval,
		clock:       cfg.clock,
		metrics:     cfg.metrics,
		refreshErrs: newErrorRing(cfg.history),
	}
	r.state.Store(int32(StateLoading))

	if err := r.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("initial load failed: %w", err)
	}
	return r, nil
}

// Lookup returns the Configuration for the alias from the current
// snapshot. It never blocks and never fails; the boolean reports whether
// the alias is present.
func (r *Repository) Lookup(alias string) (*Configuration, bool) {
	return r.current.Load().lookup(alias)
}

// Put always fails with ErrReadOnly. The repository mirrors a remote
// source and accepts no local mutation.
func (r *Repository) Put(string, any) error {
	return ErrReadOnly
}

// State returns the current state of the Repository.
func (r *Repository) State() State {
	return State(r.state.Load())
}

// LastError returns the most recent refresh error, or nil if the last
// cycle succeeded.
func (r *Repository) LastError() error {
	ptr := r.lastError.Load()
	if ptr == nil {
		return nil
	}
	return *ptr
}

// RecentErrors returns the retained refresh errors, oldest first.
func (r *Repository) RecentErrors() []error {
	return r.refreshErrs.all()
}

// LastRefresh returns the time of the most recent successful cycle,
// including the initial load.
func (r *Repository) LastRefresh() time.Time {
	ptr := r.lastRefresh.Load()
	if ptr == nil {
		return time.Time{}
	}
	return *ptr
}

// Start begins the scheduled refresh loop. It is a no-op when no refresh
// interval is configured. The loop runs on a single goroutine until the
// context is canceled; cycles never overlap and a failed cycle is retried
// only by the next scheduled tick.
//
// Start can only be called once. Subsequent calls return ErrAlreadyStarted.
func (r *Repository) Start(ctx context.Context) error {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		return ErrAlreadyStarted
	}
	r.started = true
	r.mu.Unlock()

	if r.interval == 0 {
		return nil
	}

	capitan.Emit(ctx, RepositoryStarted,
		KeyInterval.Field(r.interval),
	)

	go r.run(ctx)
	return nil
}

// run drives scheduled refresh until the context is canceled.
func (r *Repository) run(ctx context.Context) {
	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	defer func() {
		capitan.Emit(ctx, RepositoryStopped,
			KeyState.Field(r.State().String()),
		)
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C():
			// Failures are recorded and signaled inside Refresh; the
			// schedule continues unaffected.
			_ = r.Refresh(ctx) //nolint:errcheck // Errors stored via recordFailure
		}
	}
}

// Refresh executes one load-parse-publish cycle. On failure the previous
// snapshot is retained unchanged and the error is recorded and returned.
// Hosts may call Refresh directly for change-driven cadences (see
// NewFileTrigger) or deterministic tests.
//
// Cycles are serialized: at most one refresh is in flight at a time, so a
// manual Refresh never overlaps a scheduled tick and snapshots publish in
// cycle order. Lookups are unaffected and never block on a refresh.
func (r *Repository) Refresh(ctx context.Context) error {
	r.refreshMu.Lock()
	defer r.refreshMu.Unlock()

	capitan.Emit(ctx, RefreshStarted)
	start := r.clock.Now()

	text, err := r.loader.LoadContent(ctx)
	if err != nil {
		return r.recordFailure(ctx, start, "load", fmt.Errorf("load content: %w", err))
	}

	configurations, err := r.parser.ParseConfigurations(text)
	if err != nil {
		return r.recordFailure(ctx, start, "parse", fmt.Errorf("parse configurations: %w", err))
	}

	snap := buildSnapshot(configurations)
	r.current.Store(snap)

	now := r.clock.Now()
	r.lastRefresh.Store(&now)
	r.lastError.Store(nil)
	r.transition(ctx, StateReady)
	r.metrics.OnRefreshSuccess(now.Sub(start))

	capitan.Emit(ctx, RefreshSucceeded,
		KeyConfigurations.Field(len(snap.configurations)),
	)
	return nil
}

// recordFailure stores a refresh error, leaves the snapshot untouched,
// and moves to StateStale when a snapshot has already been published.
func (r *Repository) recordFailure(ctx context.Context, start time.Time, stage string, err error) error {
	e := err
	r.lastError.Store(&e)
	r.refreshErrs.push(err)
	r.metrics.OnRefreshFailure(stage, r.clock.Now().Sub(start))

	if r.current.Load() != nil {
		r.transition(ctx, StateStale)
	}

	capitan.Emit(ctx, RefreshFailed,
		KeyStage.Field(stage),
		KeyError.Field(err.Error()),
	)
	return err
}

// transition updates the state and emits a state change event if changed.
func (r *Repository) transition(ctx context.Context, newState State) {
	oldState := r.State()
	if oldState == newState {
		return
	}
	r.state.Store(int32(newState))
	r.metrics.OnStateChange(oldState, newState)
	capitan.Emit(ctx, RepositoryStateChanged,
		KeyOldState.Field(oldState.String()),
		KeyNewState.Field(newState.String()),
	)
}
