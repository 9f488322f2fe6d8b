package warninglist

import "strings"

// BuildStats describes how a list was compiled.
type BuildStats struct {
	Kind MatcherKind `json:"kind"`
	// Compiled is the number of entries held by the matcher after dedup.
	Compiled int `json:"compiled"`
	// Skipped counts entries that were empty or failed to parse.
	Skipped int `json:"skipped"`
}

// Build compiles a definition into a Matcher. Malformed entries are skipped
// and counted, Build never fails.
//
// Lists typed cidr, or whose entries all parse as network literals, get a
// CIDR matcher. Lists typed string get an exact matcher and lists typed
// hostname a hostname matcher. Everything else falls back to substring
// matching since upstream type tags are often missing or wrong.
func Build(def Definition) (Matcher, BuildStats) {
	if !hasEntries(def.List) {
		return emptyMatcher{}, BuildStats{Kind: MatcherEmpty, Skipped: len(def.List)}
	}

	listType, _ := ParseListType(string(def.Type))

	var (
		m       Matcher
		skipped int
	)
	switch {
	case listType == TypeCIDR || allNetworkLiterals(def.List):
		m, skipped = newCIDRMatcher(def.List)
	case listType == TypeString:
		m, skipped = newExactMatcher(def.List)
	case listType == TypeHostname:
		m, skipped = newHostnameMatcher(def.List)
	default:
		m, skipped = newSubstringMatcher(def.List)
	}

	return m, BuildStats{Kind: m.Kind(), Compiled: m.Len(), Skipped: skipped}
}

func hasEntries(entries []string) bool {
	for _, entry := range entries {
		if strings.TrimSpace(entry) != "" {
			return true
		}
	}
	return false
}

// allNetworkLiterals reports whether every non-blank entry is an IP or CIDR.
func allNetworkLiterals(entries []string) bool {
	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		if _, ok := parseNetworkLiteral(entry); !ok {
			return false
		}
	}
	return true
}
