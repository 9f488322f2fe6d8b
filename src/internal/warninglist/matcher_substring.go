package warninglist

import (
	"strings"

	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// SubstringMatcher matches when the value contains an entry or an entry
// contains the value. Entries are lists of coarser or finer variants of the
// same indicator, so containment is checked both ways.
type SubstringMatcher struct {
	entries []string
	// automaton finds any entry inside the value in a single pass.
	automaton *ahocorasick.AhoCorasick
}

func newSubstringMatcher(entries []string) (*SubstringMatcher, int) {
	m := &SubstringMatcher{}
	seen := make(map[string]struct{}, len(entries))
	skipped := 0
	for _, entry := range entries {
		text := Normalize(entry).Text
		if text == "" {
			skipped++
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		m.entries = append(m.entries, text)
	}

	if len(m.entries) > 0 {
		builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
			AsciiCaseInsensitive: true,
			MatchOnlyWholeWords:  false,
			MatchKind:            ahocorasick.StandardMatch,
			DFA:                  true,
		})
		ac := builder.Build(m.entries)
		m.automaton = &ac
	}
	return m, skipped
}

func (m *SubstringMatcher) Contains(v Value) bool {
	if v.Text == "" || m.automaton == nil {
		return false
	}
	if len(m.automaton.FindAll(v.Text)) > 0 {
		return true
	}
	for _, entry := range m.entries {
		if len(entry) > len(v.Text) && strings.Contains(entry, v.Text) {
			return true
		}
	}
	return false
}

func (m *SubstringMatcher) Kind() MatcherKind { return MatcherSubstring }
func (m *SubstringMatcher) Len() int          { return len(m.entries) }
