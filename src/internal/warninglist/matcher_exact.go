package warninglist

// ExactMatcher matches values whose normalized text equals an entry.
type ExactMatcher struct {
	entries map[string]struct{}
}

func newExactMatcher(entries []string) (*ExactMatcher, int) {
	m := &ExactMatcher{entries: make(map[string]struct{}, len(entries))}
	skipped := 0
	for _, entry := range entries {
		text := Normalize(entry).Text
		if text == "" {
			skipped++
			continue
		}
		m.entries[text] = struct{}{}
	}
	return m, skipped
}

func (m *ExactMatcher) Contains(v Value) bool {
	if v.Text == "" {
		return false
	}
	_, ok := m.entries[v.Text]
	return ok
}

func (m *ExactMatcher) Kind() MatcherKind { return MatcherExact }
func (m *ExactMatcher) Len() int          { return len(m.entries) }
