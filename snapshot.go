package beacon

// snapshot is one immutable, internally consistent view of the remote
// source: a mapping from alias to Configuration. A snapshot is never
// mutated after it is built; the repository replaces it wholesale on each
// successful refresh.
type snapshot struct {
	configurations map[string]*Configuration
}

// buildSnapshot builds a snapshot from configurations in parse order.
// Duplicate aliases within one payload resolve last-wins.
func buildSnapshot(configurations []*Configuration) *snapshot {
	m := make(map[string]*Configuration, len(configurations))
	for _, c := range configurations {
		m[c.alias] = c
	}
	return &snapshot{configurations: m}
}

// lookup returns the configuration for the alias, if present.
func (s *snapshot) lookup(alias string) (*Configuration, bool) {
	c, ok := s.configurations[alias]
	return c, ok
}

// equal reports whether two snapshots hold value-equal configurations
// under the same aliases.
func (s *snapshot) equal(o *snapshot) bool {
	if len(s.configurations) != len(o.configurations) {
		return false
	}
	for alias, c := range s.configurations {
		other, ok := o.configurations[alias]
		if !ok || !c.Equal(other) {
			return false
		}
	}
	return true
}
