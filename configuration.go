package beacon

import "fmt"

// Kind identifies the semantic type of a configuration value.
// Every Configuration declares exactly one Kind, shared by its default
// value and all of its condition values.
type Kind int

const (
	// KindString is a plain string value.
	KindString Kind = iota

	// KindBool is a boolean value.
	KindBool

	// KindInt is an integer value.
	KindInt

	// KindFloat is a floating-point value.
	KindFloat

	// KindStringSlice is an ordered list of strings.
	KindStringSlice

	// KindStringMap is a string-to-string mapping.
	KindStringMap
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStringSlice:
		return "string-slice"
	case KindStringMap:
		return "string-map"
	default:
		return "unknown"
	}
}

// KindOf classifies a value into its Kind. The second return is false for
// values outside the supported set (string, bool, int, float64, []string,
// map[string]string).
func KindOf(v any) (Kind, bool) {
	switch v.(type) {
	case string:
		return KindString, true
	case bool:
		return KindBool, true
	case int:
		return KindInt, true
	case float64:
		return KindFloat, true
	case []string:
		return KindStringSlice, true
	case map[string]string:
		return KindStringMap, true
	default:
		return 0, false
	}
}

// Condition pairs a set of required context parameters with an override
// value. A condition matches a context when every required parameter is
// present in the context with exactly the expected value.
//
// Conditions are immutable once constructed.
type Condition struct {
	match map[string]string
	value any
}

// NewCondition creates a Condition requiring the given parameter values.
// The match map is copied.
func NewCondition(match map[string]string, value any) Condition {
	m := make(map[string]string, len(match))
	for k, v := range match {
		m[k] = v
	}
	return Condition{match: m, value: value}
}

// Value returns the condition's override value.
func (c Condition) Value() any {
	return c.value
}

// Match returns a copy of the condition's required parameter set.
func (c Condition) Match() map[string]string {
	m := make(map[string]string, len(c.match))
	for k, v := range c.match {
		m[k] = v
	}
	return m
}

// Configuration is a named, typed value with a default and zero or more
// conditional overrides. Condition order is significant: the first declared
// condition that matches a context wins.
//
// Configurations are immutable once constructed.
type Configuration struct {
	alias       string
	description string
	conditions  []Condition
	def         any
	kind        Kind
}

// NewConfiguration constructs a Configuration and validates its type
// invariant: the default value must be one of the supported kinds and every
// condition value must be of the same kind. The conditions slice is copied;
// declared order is preserved.
func NewConfiguration(alias, description string, conditions []Condition, defaultValue any) (*Configuration, error) {
	if alias == "" {
		return nil, fmt.Errorf("configuration alias is required")
	}
	kind, ok := KindOf(defaultValue)
	if !ok {
		return nil, fmt.Errorf("configuration %q: unsupported default value type %T", alias, defaultValue)
	}
	for i, cond := range conditions {
		ck, ok := KindOf(cond.value)
		if !ok {
			return nil, fmt.Errorf("configuration %q: condition %d has unsupported value type %T", alias, i, cond.value)
		}
		if ck != kind {
			return nil, fmt.Errorf("configuration %q: condition %d value kind %s does not match default kind %s", alias, i, ck, kind)
		}
	}
	return &Configuration{
		alias:       alias,
		description: description,
		conditions:  append([]Condition(nil), conditions...),
		def:         defaultValue,
		kind:        kind,
	}, nil
}

// Alias returns the configuration's unique key.
func (c *Configuration) Alias() string {
	return c.alias
}

// Description returns the informational description.
func (c *Configuration) Description() string {
	return c.description
}

// Kind returns the semantic type shared by the default and all condition
// values.
func (c *Configuration) Kind() Kind {
	return c.kind
}

// Default returns the default value.
func (c *Configuration) Default() any {
	return c.def
}

// Conditions returns a copy of the conditions in declared order.
func (c *Configuration) Conditions() []Condition {
	return append([]Condition(nil), c.conditions...)
}

// Equal reports whether two configurations have the same alias, description,
// kind, default value, and conditions in the same order.
func (c *Configuration) Equal(o *Configuration) bool {
	if c == nil || o == nil {
		return c == o
	}
	if c.alias != o.alias || c.description != o.description || c.kind != o.kind {
		return false
	}
	if !valueEqual(c.def, o.def) {
		return false
	}
	if len(c.conditions) != len(o.conditions) {
		return false
	}
	for i := range c.conditions {
		a, b := c.conditions[i], o.conditions[i]
		if !valueEqual(a.value, b.value) {
			return false
		}
		if len(a.match) != len(b.match) {
			return false
		}
		for k, v := range a.match {
			if bv, ok := b.match[k]; !ok || bv != v {
				return false
			}
		}
	}
	return true
}

// valueEqual compares two values of the supported kinds.
func valueEqual(a, b any) bool {
	switch av := a.(type) {
	case []string:
		bv, ok := b.([]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i] != bv[i] {
				return false
			}
		}
		return true
	case map[string]string:
		bv, ok := b.(map[string]string)
		if !ok || len(av) != len(bv) {
			return false
		}
		for k, v := range av {
			if w, ok := bv[k]; !ok || w != v {
				return false
			}
		}
		return true
	default:
		return a == b
	}
}
