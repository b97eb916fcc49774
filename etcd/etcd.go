// Package etcd provides a beacon.Loader implementation backed by etcd.
package etcd

import (
	"context"
	"fmt"

	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/zoobzio/beacon"
)

// Loader fetches the configuration payload from an etcd key.
// Every load performs a fresh Get; nothing is cached.
type Loader struct {
	client *clientv3.Client
	key    string
}

// Option configures a Loader.
type Option func(*Loader)

// New creates a new Loader for the given etcd key.
func New(client *clientv3.Client, key string, opts ...Option) *Loader {
	l := &Loader{
		client: client,
		key:    key,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadContent reads the key. A missing key is a load failure.
func (l *Loader) LoadContent(ctx context.Context) ([]byte, error) {
	resp, err := l.client.Get(ctx, l.key)
	if err != nil {
		return nil, fmt.Errorf("failed to get key %s: %w", l.key, err)
	}
	if len(resp.Kvs) == 0 {
		return nil, fmt.Errorf("key %s not found", l.key)
	}
	return resp.Kvs[0].Value, nil
}

// Ensure Loader implements beacon.Loader.
var _ beacon.Loader = (*Loader)(nil)
