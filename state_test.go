package beacon

import "testing"

func TestState_String_Loading(t *testing.T) {
	if s := StateLoading.String(); s != "loading" {
		t.Errorf("expected 'loading', got %q", s)
	}
}

func TestState_String_Ready(t *testing.T) {
	if s := StateReady.String(); s != "ready" {
		t.Errorf("expected 'ready', got %q", s)
	}
}

func TestState_String_Stale(t *testing.T) {
	if s := StateStale.String(); s != "stale" {
		t.Errorf("expected 'stale', got %q", s)
	}
}

func TestState_String_Unknown(t *testing.T) {
	unknown := State(999)
	if s := unknown.String(); s != "unknown" {
		t.Errorf("expected 'unknown', got %q", s)
	}
}

func TestState_Values(t *testing.T) {
	// Verify iota ordering
	if StateLoading != 0 {
		t.Errorf("expected StateLoading=0, got %d", StateLoading)
	}
	if StateReady != 1 {
		t.Errorf("expected StateReady=1, got %d", StateReady)
	}
	if StateStale != 2 {
		t.Errorf("expected StateStale=2, got %d", StateStale)
	}
}
