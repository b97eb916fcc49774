package beacon

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
)

// Loader fetches the raw configuration payload from its source.
// Implementations must re-fetch on every call; the repository relies on
// this to observe remote changes. Transport, authentication, and
// decryption are entirely the loader's concern.
type Loader interface {
	// LoadContent returns the current raw payload bytes.
	LoadContent(ctx context.Context) ([]byte, error)
}

// StaticLoader serves an in-memory payload. The payload and a simulated
// failure can be swapped between loads, which makes refresh cycles fully
// deterministic in tests.
type StaticLoader struct {
	mu      sync.Mutex
	content []byte
	err     error
}

// NewStaticLoader creates a StaticLoader serving the given payload.
func NewStaticLoader(content []byte) *StaticLoader {
	return &StaticLoader{content: content}
}

// Set replaces the payload served by subsequent loads.
func (l *StaticLoader) Set(content []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.content = content
	l.err = nil
}

// Fail makes subsequent loads return err until Set is called.
func (l *StaticLoader) Fail(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.err = err
}

// LoadContent returns the current payload or the configured failure.
func (l *StaticLoader) LoadContent(_ context.Context) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, l.err
	}
	return l.content, nil
}

// HTTPLoader fetches the payload from a URL with a GET request.
// Any non-2xx status is a load failure.
type HTTPLoader struct {
	url    string
	client *http.Client
}

// NewHTTPLoader creates an HTTPLoader for the given URL using
// http.DefaultClient.
func NewHTTPLoader(url string) *HTTPLoader {
	return &HTTPLoader{url: url, client: http.DefaultClient}
}

// NewHTTPLoaderWithClient creates an HTTPLoader using the given client,
// for callers that need custom transports, TLS, or timeouts.
func NewHTTPLoaderWithClient(url string, client *http.Client) *HTTPLoader {
	return &HTTPLoader{url: url, client: client}
}

// LoadContent performs one GET request and returns the response body.
func (l *HTTPLoader) LoadContent(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", l.url, err)
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", l.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, l.url)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read body from %s: %w", l.url, err)
	}
	return data, nil
}

// Ensure loaders implement Loader.
var (
	_ Loader = (*StaticLoader)(nil)
	_ Loader = (*HTTPLoader)(nil)
)
