package beacon

// State represents the current state of a Repository.
type State int32

const (
	// StateLoading indicates the Repository is performing its initial
	// synchronous load and has not yet published a snapshot.
	StateLoading State = iota

	// StateReady indicates the Repository holds the snapshot produced by
	// the most recent successful load or refresh cycle.
	StateReady

	// StateStale indicates the last refresh cycle failed. The previous
	// snapshot remains published and readers are unaffected; the schedule
	// continues.
	StateStale
)

// String returns the string representation of the state.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateStale:
		return "stale"
	default:
		return "unknown"
	}
}
