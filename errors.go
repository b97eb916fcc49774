package beacon

import "errors"

var (
	// ErrReadOnly is returned by Repository.Put for every input. The store
	// is one-way: remote source to local snapshot.
	ErrReadOnly = errors.New("repository is read-only")

	// ErrDuplicateContextParameter is returned when a per-call context
	// provider supplies a parameter that is already present in the context
	// being built, either from a global provider or from an earlier
	// per-call provider. The whole aggregation fails; no partial context is
	// ever returned.
	ErrDuplicateContextParameter = errors.New("duplicate context parameter")

	// ErrAlreadyStarted is returned when Start is called more than once.
	ErrAlreadyStarted = errors.New("repository already started")
)
