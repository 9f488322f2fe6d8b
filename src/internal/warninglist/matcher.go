package warninglist

// MatcherKind names the strategy a list was compiled with.
type MatcherKind string

const (
	MatcherEmpty     MatcherKind = "empty"
	MatcherExact     MatcherKind = "exact"
	MatcherSubstring MatcherKind = "substring"
	MatcherCIDR      MatcherKind = "cidr"
	MatcherHostname  MatcherKind = "hostname"
)

// Matcher answers containment queries for one compiled list.
// Implementations are read-only after construction.
type Matcher interface {
	Contains(v Value) bool
	Kind() MatcherKind
	// Len returns the number of compiled entries.
	Len() int
}

// emptyMatcher is used for lists without entries.
type emptyMatcher struct{}

func (emptyMatcher) Contains(Value) bool { return false }
func (emptyMatcher) Kind() MatcherKind   { return MatcherEmpty }
func (emptyMatcher) Len() int            { return 0 }
