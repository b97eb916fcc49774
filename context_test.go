package beacon

import (
	"errors"
	"testing"
)

func TestRegistry_GlobalProviders(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewStaticProvider(map[string]string{"region": "EU"}))
	registry.Register(NewStaticProvider(map[string]string{"segment": "beta"}))

	context, err := registry.BuildContext()
	if err != nil {
		t.Fatalf("BuildContext() error = %v", err)
	}
	if context["region"] != "EU" || context["segment"] != "beta" {
		t.Errorf("unexpected context %v", context)
	}
}

func TestRegistry_FirstRegisteredWins(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewStaticProvider(map[string]string{"region": "EU"}))
	registry.Register(NewStaticProvider(map[string]string{"region": "US"}))

	// Two global providers for the same parameter never fail aggregation;
	// the first registered is consulted.
	for i := 0; i < 10; i++ {
		context, err := registry.BuildContext()
		if err != nil {
			t.Fatalf("BuildContext() error = %v", err)
		}
		if context["region"] != "EU" {
			t.Fatalf("expected first-registered provider to win, got %q", context["region"])
		}
	}
}

func TestRegistry_PerCallCollisionWithGlobal(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewStaticProvider(map[string]string{"region": "EU"}))

	context, err := registry.BuildContext(NewStaticProvider(map[string]string{"region": "US"}))
	if !errors.Is(err, ErrDuplicateContextParameter) {
		t.Fatalf("expected ErrDuplicateContextParameter, got %v", err)
	}
	if context != nil {
		t.Errorf("expected no partial context on failure, got %v", context)
	}
}

func TestRegistry_PerCallCollisionBetweenPerCallProviders(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.BuildContext(
		NewStaticProvider(map[string]string{"region": "EU"}),
		NewStaticProvider(map[string]string{"region": "US"}),
	)
	if !errors.Is(err, ErrDuplicateContextParameter) {
		t.Fatalf("expected ErrDuplicateContextParameter, got %v", err)
	}
}

func TestRegistry_PerCallOnly(t *testing.T) {
	registry := NewRegistry()

	context, err := registry.BuildContext(NewStaticProvider(map[string]string{"region": "US"}))
	if err != nil {
		t.Fatalf("BuildContext() error = %v", err)
	}
	if context["region"] != "US" {
		t.Errorf("unexpected context %v", context)
	}
}

func TestRegistry_ProviderWithMultipleKeys(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewStaticProvider(map[string]string{
		"region":  "EU",
		"country": "DE",
	}))

	context, err := registry.BuildContext()
	if err != nil {
		t.Fatalf("BuildContext() error = %v", err)
	}
	if context["region"] != "EU" || context["country"] != "DE" {
		t.Errorf("unexpected context %v", context)
	}
}

func TestProviderFunc_EvaluatedPerCall(t *testing.T) {
	value := "first"
	provider := NewProviderFunc("region", func() string { return value })

	registry := NewRegistry()
	registry.Register(provider)

	context, _ := registry.BuildContext()
	if context["region"] != "first" {
		t.Errorf("expected first, got %q", context["region"])
	}

	value = "second"
	context, _ = registry.BuildContext()
	if context["region"] != "second" {
		t.Errorf("expected fresh value per call, got %q", context["region"])
	}
}

func TestBuildContext_FreshMappingPerCall(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewStaticProvider(map[string]string{"region": "EU"}))

	first, _ := registry.BuildContext()
	first["region"] = "mutated"

	second, _ := registry.BuildContext()
	if second["region"] != "EU" {
		t.Error("context mapping leaked between calls")
	}
}
