package beacon

import (
	"fmt"
	"sort"
	"sync"
)

// ContextProvider supplies values for one or more named context
// parameters. Providers are registered globally on a Registry for the
// process lifetime, or passed per resolution call, in which case they
// live only for that call.
type ContextProvider interface {
	// Keys returns the parameter names this provider can supply.
	Keys() []string

	// Value returns the current value for one of the provider's keys.
	Value(key string) string
}

// StaticProvider is a ContextProvider backed by a fixed map.
type StaticProvider struct {
	params map[string]string
	keys   []string
}

// NewStaticProvider creates a StaticProvider for the given parameters.
// The map is copied; keys are reported in sorted order.
func NewStaticProvider(params map[string]string) *StaticProvider {
	m := make(map[string]string, len(params))
	keys := make([]string, 0, len(params))
	for k, v := range params {
		m[k] = v
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &StaticProvider{params: m, keys: keys}
}

// Keys returns the provider's parameter names in sorted order.
func (p *StaticProvider) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Value returns the value for the given key, or "" if absent.
func (p *StaticProvider) Value(key string) string {
	return p.params[key]
}

// ProviderFunc adapts a single-parameter lookup function into a
// ContextProvider supplying exactly one key.
type ProviderFunc struct {
	key string
	fn  func() string
}

// NewProviderFunc creates a ContextProvider supplying one key from fn,
// evaluated on every resolution.
func NewProviderFunc(key string, fn func() string) *ProviderFunc {
	return &ProviderFunc{key: key, fn: fn}
}

// Keys returns the single parameter name.
func (p *ProviderFunc) Keys() []string {
	return []string{p.key}
}

// Value evaluates the function for the provider's key; other keys yield "".
func (p *ProviderFunc) Value(key string) string {
	if key != p.key {
		return ""
	}
	return p.fn()
}

// Ensure provider helpers implement ContextProvider.
var (
	_ ContextProvider = (*StaticProvider)(nil)
	_ ContextProvider = (*ProviderFunc)(nil)
)

// Registry holds the process-wide context provider registrations and
// builds the context mapping for each resolution call.
type Registry struct {
	mu    sync.RWMutex
	byKey map[string][]ContextProvider
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byKey: make(map[string][]ContextProvider)}
}

// Register adds a global provider for every key it reports. When several
// global providers register for the same parameter, the first registered
// wins; later registrations for that parameter are retained but never
// consulted. This tie-break is deterministic and intentional.
func (g *Registry) Register(p ContextProvider) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, key := range p.Keys() {
		g.byKey[key] = append(g.byKey[key], p)
	}
}

// BuildContext aggregates the global registrations with the per-call
// providers into one context mapping.
//
// Global parameters are collected first, one value per parameter from the
// first-registered provider. Per-call providers are then merged in order;
// if a per-call provider supplies a parameter that is already present,
// the whole aggregation fails with ErrDuplicateContextParameter and no
// context is returned. Aggregation is all-or-nothing.
func (g *Registry) BuildContext(perCall ...ContextProvider) (map[string]string, error) {
	g.mu.RLock()
	context := make(map[string]string, len(g.byKey))
	for key, providers := range g.byKey {
		if len(providers) == 0 {
			continue
		}
		context[key] = providers[0].Value(key)
	}
	g.mu.RUnlock()

	for _, provider := range perCall {
		for _, key := range provider.Keys() {
			if _, exists := context[key]; exists {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateContextParameter, key)
			}
			context[key] = provider.Value(key)
		}
	}
	return context, nil
}
