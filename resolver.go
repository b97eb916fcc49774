package beacon

import (
	"context"
	"fmt"

	"github.com/zoobzio/capitan"
)

// ConfigurationSource serves configuration lookups by alias. *Repository
// is the canonical implementation; tests can substitute fixed sources.
type ConfigurationSource interface {
	Lookup(alias string) (*Configuration, bool)
}

// Resolver orchestrates one resolution: lookup, context aggregation,
// condition evaluation, and kind checking. Construct it eagerly at
// startup with its collaborators; it is safe for arbitrarily many
// concurrent callers and never blocks on a refresh.
type Resolver struct {
	source   ConfigurationSource
	registry *Registry
}

// NewResolver creates a Resolver over the given source and global
// context registry. A nil registry means no global providers.
func NewResolver(source ConfigurationSource, registry *Registry) *Resolver {
	if registry == nil {
		registry = NewRegistry()
	}
	return &Resolver{source: source, registry: registry}
}

// Registry returns the resolver's global context registry.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

// Resolve turns a key and per-call context providers into a value of the
// expected kind.
//
// A key absent from the current snapshot yields (nil, false, nil) with a
// warning-severity signal; a resolved value of the wrong kind yields
// (nil, false, nil) with an error-severity signal. The error return is
// reserved for context aggregation failures
// (ErrDuplicateContextParameter), which are the caller's to handle.
func (r *Resolver) Resolve(ctx context.Context, key string, kind Kind, providers ...ContextProvider) (any, bool, error) {
	configuration, ok := r.source.Lookup(key)
	if !ok {
		capitan.Emit(ctx, ResolutionMissed,
			KeyAlias.Field(key),
		)
		return nil, false, nil
	}

	callContext, err := r.registry.BuildContext(providers...)
	if err != nil {
		capitan.Emit(ctx, ResolutionContextRejected,
			KeyAlias.Field(key),
			KeyError.Field(err.Error()),
		)
		return nil, false, err
	}

	value := configuration.Evaluate(callContext)
	actual, supported := KindOf(value)
	if !supported || actual != kind {
		capitan.Emit(ctx, ResolutionTypeMismatch,
			KeyAlias.Field(key),
			KeyExpectedKind.Field(kind.String()),
			KeyActualKind.Field(kindLabel(value)),
		)
		return nil, false, nil
	}
	return value, true, nil
}

// kindLabel names a value's kind for signal metadata. Values outside the
// supported set report as "unsupported" rather than the zero Kind.
func kindLabel(v any) string {
	kind, ok := KindOf(v)
	if !ok {
		return "unsupported"
	}
	return kind.String()
}

// Accessor binds a declared resolution key to its expected kind at
// startup, replacing reflective method interception with an explicit
// typed registry. Declare accessors as package-level variables:
//
//	var expressFeature = beacon.NewAccessor[bool]("express.feature.toggle")
//
//	on, ok, err := expressFeature.Resolve(ctx, resolver)
type Accessor[T any] struct {
	key  string
	kind Kind
}

// NewAccessor declares a typed accessor for the given key. The type
// parameter must be one of the supported kinds (string, bool, int,
// float64, []string, map[string]string); anything else panics, since an
// accessor declaration is startup-time wiring and a wrong type is a
// programming error.
func NewAccessor[T any](key string) Accessor[T] {
	var zero T
	kind, ok := KindOf(any(zero))
	if !ok {
		panic(fmt.Sprintf("beacon: accessor for %q declared with unsupported type %T", key, zero))
	}
	return Accessor[T]{key: key, kind: kind}
}

// Key returns the resolution key the accessor is bound to.
func (a Accessor[T]) Key() string {
	return a.key
}

// Kind returns the kind the accessor expects.
func (a Accessor[T]) Kind() Kind {
	return a.kind
}

// Resolve resolves the accessor's key and returns a typed value. The
// boolean is false when the key is absent or the resolved value has the
// wrong kind; the error carries context aggregation failures.
func (a Accessor[T]) Resolve(ctx context.Context, r *Resolver, providers ...ContextProvider) (T, bool, error) {
	value, ok, err := r.Resolve(ctx, a.key, a.kind, providers...)
	if err != nil || !ok {
		var zero T
		return zero, false, err
	}
	return value.(T), true, nil
}
