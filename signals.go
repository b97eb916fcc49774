package beacon

import "github.com/zoobzio/capitan"

// Repository lifecycle signals.
var (
	// RepositoryStarted is emitted when a Repository begins its scheduled
	// refresh loop.
	RepositoryStarted = capitan.NewSignal(
		"beacon.repository.started",
		"Repository refresh loop started",
	)

	// RepositoryStopped is emitted when a Repository's refresh loop exits.
	RepositoryStopped = capitan.NewSignal(
		"beacon.repository.stopped",
		"Repository refresh loop stopped",
	)

	// RepositoryStateChanged is emitted when a Repository transitions
	// between states.
	RepositoryStateChanged = capitan.NewSignal(
		"beacon.repository.state.changed",
		"Repository state transition",
	)
)

// Refresh cycle signals.
var (
	// RefreshStarted is emitted at the beginning of a load-parse-publish
	// cycle.
	RefreshStarted = capitan.NewSignal(
		"beacon.refresh.started",
		"Refresh cycle started",
	)

	// RefreshSucceeded is emitted when a new snapshot has been published.
	RefreshSucceeded = capitan.NewSignal(
		"beacon.refresh.succeeded",
		"Snapshot published",
	)

	// RefreshFailed is emitted when a load or parse failure leaves the
	// previous snapshot in place.
	RefreshFailed = capitan.NewSignal(
		"beacon.refresh.failed",
		"Refresh cycle failed, previous snapshot retained",
	)
)

// Resolution signals.
var (
	// ResolutionMissed is emitted at warning severity when a resolution key
	// is absent from the current snapshot.
	ResolutionMissed = capitan.NewSignal(
		"beacon.resolution.missed",
		"Key absent from snapshot, no value returned",
	)

	// ResolutionTypeMismatch is emitted at error severity when a resolved
	// value's kind differs from the caller's expected kind.
	ResolutionTypeMismatch = capitan.NewSignal(
		"beacon.resolution.type.mismatch",
		"Resolved value kind differs from expected kind",
	)

	// ResolutionContextRejected is emitted when context aggregation fails
	// because two providers supplied the same parameter.
	ResolutionContextRejected = capitan.NewSignal(
		"beacon.resolution.context.rejected",
		"Context aggregation rejected duplicate parameter",
	)
)
