package beacon

// Evaluate selects the effective value of the configuration for the given
// context. Conditions are checked in declared order; the first condition
// whose required parameters are all present in the context with exactly the
// expected values wins. A parameter absent from the context means that
// condition does not match. If no condition matches, the default value is
// returned.
//
// Evaluate never fails and performs no I/O.
func (c *Configuration) Evaluate(context map[string]string) any {
	for _, cond := range c.conditions {
		if cond.matches(context) {
			return cond.value
		}
	}
	return c.def
}

// matches reports whether every required parameter is present in the
// context with the expected value. Comparison is exact string equality.
func (c Condition) matches(context map[string]string) bool {
	for param, want := range c.match {
		got, ok := context[param]
		if !ok || got != want {
			return false
		}
	}
	return true
}
