package warninglist

import (
	"net/netip"
	"sort"

	"go4.org/netipx"
)

type ipv4Network struct {
	network uint32
	mask    uint32
}

type ipv6Network struct {
	network uint128
	mask    uint128
}

// CIDRMatcher matches IP values against IPv4 and IPv6 networks.
//
// Overlapping entries are merged into disjoint networks sorted by address,
// so the only candidate for an address is the last network starting at or
// before it.
type CIDRMatcher struct {
	v4 []ipv4Network
	v6 []ipv6Network
	// declared holds the masked networks as listed, for CIDR literal queries.
	declared map[netip.Prefix]struct{}
}

func newCIDRMatcher(entries []string) (*CIDRMatcher, int) {
	m := &CIDRMatcher{declared: make(map[netip.Prefix]struct{}, len(entries))}

	var builder netipx.IPSetBuilder
	skipped := 0
	for _, entry := range entries {
		prefix, ok := parseNetworkLiteral(entry)
		if !ok {
			skipped++
			continue
		}
		builder.AddPrefix(prefix)
		m.declared[prefix] = struct{}{}
	}

	set, err := builder.IPSet()
	if err != nil {
		// Only invalid prefixes make the builder fail and those were filtered above.
		return m, len(entries)
	}

	for _, prefix := range set.Prefixes() {
		addr, bits := prefix.Addr(), prefix.Bits()
		if addr.Is4() {
			m.v4 = append(m.v4, ipv4Network{network: addrUint32(addr), mask: mask32(bits)})
		} else {
			m.v6 = append(m.v6, ipv6Network{network: addrUint128(addr), mask: mask128(bits)})
		}
	}
	return m, skipped
}

func (m *CIDRMatcher) Contains(v Value) bool {
	switch v.Kind {
	case KindIP:
		if v.Addr.Is4() {
			return m.contains4(addrUint32(v.Addr))
		}
		return m.contains6(addrUint128(v.Addr))
	case KindPrefix:
		_, ok := m.declared[v.Prefix]
		return ok
	default:
		return false
	}
}

func (m *CIDRMatcher) contains4(ip uint32) bool {
	i := sort.Search(len(m.v4), func(i int) bool { return m.v4[i].network > ip })
	if i == 0 {
		return false
	}
	n := m.v4[i-1]
	return ip&n.mask == n.network
}

func (m *CIDRMatcher) contains6(ip uint128) bool {
	i := sort.Search(len(m.v6), func(i int) bool { return ip.less(m.v6[i].network) })
	if i == 0 {
		return false
	}
	n := m.v6[i-1]
	return ip.and(n.mask) == n.network
}

func (m *CIDRMatcher) Kind() MatcherKind { return MatcherCIDR }

// Len returns the number of distinct networks as declared.
func (m *CIDRMatcher) Len() int { return len(m.declared) }

// Networks returns the number of merged IPv4 and IPv6 networks.
func (m *CIDRMatcher) Networks() (v4, v6 int) {
	return len(m.v4), len(m.v6)
}
