package beacon

import "testing"

func TestKindOf(t *testing.T) {
	cases := []struct {
		name  string
		value any
		kind  Kind
		ok    bool
	}{
		{"string", "hello", KindString, true},
		{"bool", true, KindBool, true},
		{"int", 42, KindInt, true},
		{"float", 2.5, KindFloat, true},
		{"string slice", []string{"a", "b"}, KindStringSlice, true},
		{"string map", map[string]string{"a": "b"}, KindStringMap, true},
		{"nil", nil, 0, false},
		{"int64", int64(1), 0, false},
		{"struct", struct{}{}, 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			kind, ok := KindOf(tc.value)
			if ok != tc.ok {
				t.Fatalf("KindOf(%v) ok = %v, want %v", tc.value, ok, tc.ok)
			}
			if ok && kind != tc.kind {
				t.Errorf("KindOf(%v) = %s, want %s", tc.value, kind, tc.kind)
			}
		})
	}
}

func TestNewConfiguration_RequiresAlias(t *testing.T) {
	if _, err := NewConfiguration("", "desc", nil, false); err == nil {
		t.Fatal("expected error for empty alias")
	}
}

func TestNewConfiguration_RejectsUnsupportedDefault(t *testing.T) {
	if _, err := NewConfiguration("flag.x", "", nil, struct{}{}); err == nil {
		t.Fatal("expected error for unsupported default value")
	}
}

func TestNewConfiguration_RejectsConditionKindMismatch(t *testing.T) {
	conditions := []Condition{
		NewCondition(map[string]string{"region": "EU"}, "not-a-bool"),
	}
	if _, err := NewConfiguration("flag.x", "", conditions, false); err == nil {
		t.Fatal("expected error for condition value of different kind")
	}
}

func TestNewConfiguration_KindFromDefault(t *testing.T) {
	cfg, err := NewConfiguration("timeout.ms", "", nil, 250)
	if err != nil {
		t.Fatalf("NewConfiguration() error = %v", err)
	}
	if cfg.Kind() != KindInt {
		t.Errorf("expected kind int, got %s", cfg.Kind())
	}
	if cfg.Default() != 250 {
		t.Errorf("expected default 250, got %v", cfg.Default())
	}
}

func TestConfiguration_ConditionsCopied(t *testing.T) {
	conditions := []Condition{
		NewCondition(map[string]string{"region": "EU"}, true),
	}
	cfg, err := NewConfiguration("flag.x", "", conditions, false)
	if err != nil {
		t.Fatalf("NewConfiguration() error = %v", err)
	}

	conditions[0] = NewCondition(map[string]string{"region": "US"}, false)

	got := cfg.Conditions()
	if len(got) != 1 {
		t.Fatalf("expected 1 condition, got %d", len(got))
	}
	if got[0].Match()["region"] != "EU" {
		t.Error("mutating the input slice changed the configuration")
	}
}

func TestCondition_MatchCopied(t *testing.T) {
	match := map[string]string{"region": "EU"}
	cond := NewCondition(match, true)
	match["region"] = "US"

	if cond.Match()["region"] != "EU" {
		t.Error("mutating the input map changed the condition")
	}
}

func TestConfiguration_Equal(t *testing.T) {
	build := func() *Configuration {
		cfg, err := NewConfiguration("flag.x", "desc", []Condition{
			NewCondition(map[string]string{"region": "EU"}, []string{"a", "b"}),
		}, []string{"c"})
		if err != nil {
			t.Fatalf("NewConfiguration() error = %v", err)
		}
		return cfg
	}

	a, b := build(), build()
	if !a.Equal(b) {
		t.Error("expected value-equal configurations")
	}

	c, err := NewConfiguration("flag.x", "desc", []Condition{
		NewCondition(map[string]string{"region": "US"}, []string{"a", "b"}),
	}, []string{"c"})
	if err != nil {
		t.Fatalf("NewConfiguration() error = %v", err)
	}
	if a.Equal(c) {
		t.Error("expected configurations with different conditions to differ")
	}
}
