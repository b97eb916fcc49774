package beacon

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStaticLoader_ServesCurrentContent(t *testing.T) {
	loader := NewStaticLoader([]byte("first"))

	data, err := loader.LoadContent(context.Background())
	if err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	if string(data) != "first" {
		t.Errorf("expected 'first', got %q", data)
	}

	loader.Set([]byte("second"))
	data, _ = loader.LoadContent(context.Background())
	if string(data) != "second" {
		t.Errorf("expected 'second', got %q", data)
	}
}

func TestStaticLoader_Fail(t *testing.T) {
	loader := NewStaticLoader([]byte("content"))
	loader.Fail(errors.New("simulated outage"))

	if _, err := loader.LoadContent(context.Background()); err == nil {
		t.Fatal("expected configured failure")
	}

	// Set clears the failure.
	loader.Set([]byte("recovered"))
	data, err := loader.LoadContent(context.Background())
	if err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	if string(data) != "recovered" {
		t.Errorf("expected 'recovered', got %q", data)
	}
}

func TestHTTPLoader_FetchesBody(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_, _ = w.Write([]byte(`[{"alias": "flag.x", "defaultValue": false}]`))
	}))
	defer server.Close()

	loader := NewHTTPLoader(server.URL)

	data, err := loader.LoadContent(context.Background())
	if err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("expected body bytes")
	}

	// Every load re-fetches.
	if _, err := loader.LoadContent(context.Background()); err != nil {
		t.Fatalf("LoadContent() error = %v", err)
	}
	if requests != 2 {
		t.Errorf("expected 2 requests, got %d", requests)
	}
}

func TestHTTPLoader_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	loader := NewHTTPLoader(server.URL)
	if _, err := loader.LoadContent(context.Background()); err == nil {
		t.Fatal("expected error for 503 response")
	}
}

func TestHTTPLoader_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	loader := NewHTTPLoader(server.URL)
	if _, err := loader.LoadContent(ctx); err == nil {
		t.Fatal("expected error for canceled context")
	}
}
