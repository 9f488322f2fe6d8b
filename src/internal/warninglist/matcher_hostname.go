package warninglist

import (
	"strings"

	"github.com/miekg/dns"
)

// HostnameMatcher matches a hostname equal to an entry or any subdomain of
// one: "files.1drv.com" is matched by "1drv.com", "my-1drv.com" is not.
type HostnameMatcher struct {
	domains map[string]struct{}
}

func newHostnameMatcher(entries []string) (*HostnameMatcher, int) {
	m := &HostnameMatcher{domains: make(map[string]struct{}, len(entries))}
	skipped := 0
	for _, entry := range entries {
		host, ok := canonicalHostname(entry)
		if !ok {
			skipped++
			continue
		}
		m.domains[host] = struct{}{}
	}
	return m, skipped
}

// canonicalHostname lower-cases a hostname and strips the trailing root dot
// and any "*." or "." wildcard prefix.
func canonicalHostname(raw string) (string, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "*.")
	s = strings.TrimPrefix(s, ".")
	if s == "" || s == "." {
		return "", false
	}
	if _, ok := dns.IsDomainName(s); !ok {
		return "", false
	}
	if _, isIP := parseAddr(s); isIP {
		return "", false
	}
	return strings.TrimSuffix(dns.CanonicalName(s), "."), true
}

func (m *HostnameMatcher) Contains(v Value) bool {
	if v.Kind != KindString {
		return false
	}
	host, ok := canonicalHostname(v.Text)
	if !ok {
		return false
	}
	for {
		if _, found := m.domains[host]; found {
			return true
		}
		dot := strings.IndexByte(host, '.')
		if dot < 0 {
			return false
		}
		host = host[dot+1:]
	}
}

func (m *HostnameMatcher) Kind() MatcherKind { return MatcherHostname }
func (m *HostnameMatcher) Len() int          { return len(m.domains) }
