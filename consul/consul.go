// Package consul provides a beacon.Loader implementation backed by
// Consul KV.
package consul

import (
	"context"
	"fmt"

	"github.com/hashicorp/consul/api"

	"github.com/zoobzio/beacon"
)

// Loader fetches the configuration payload from a Consul KV key.
// Every load performs a fresh KV read; nothing is cached.
type Loader struct {
	client *api.Client
	key    string
}

// Option configures a Loader.
type Option func(*Loader)

// New creates a new Loader for the given Consul KV key.
func New(client *api.Client, key string, opts ...Option) *Loader {
	l := &Loader{
		client: client,
		key:    key,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadContent reads the KV key. A missing key is a load failure.
func (l *Loader) LoadContent(ctx context.Context) ([]byte, error) {
	opts := (&api.QueryOptions{}).WithContext(ctx)
	pair, _, err := l.client.KV().Get(l.key, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to get key %s: %w", l.key, err)
	}
	if pair == nil {
		return nil, fmt.Errorf("key %s not found", l.key)
	}
	return pair.Value, nil
}

// Ensure Loader implements beacon.Loader.
var _ beacon.Loader = (*Loader)(nil)
