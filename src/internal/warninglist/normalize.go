package warninglist

import (
	"encoding/binary"
	"net/netip"
	"strings"
)

// ValueKind tells what a normalized value was parsed as.
type ValueKind uint8

const (
	KindString ValueKind = iota
	KindIP
	KindPrefix
)

func (k ValueKind) String() string {
	switch k {
	case KindIP:
		return "ip"
	case KindPrefix:
		return "cidr"
	default:
		return "string"
	}
}

// uint128 is a 128-bit unsigned integer, hi holds the most significant bits.
type uint128 struct {
	hi, lo uint64
}

func (u uint128) and(m uint128) uint128 {
	return uint128{hi: u.hi & m.hi, lo: u.lo & m.lo}
}

func (u uint128) less(v uint128) bool {
	return u.hi < v.hi || (u.hi == v.hi && u.lo < v.lo)
}

// mask128 returns a mask with the top bits set.
func mask128(bits int) uint128 {
	switch {
	case bits <= 0:
		return uint128{}
	case bits <= 64:
		return uint128{hi: ^uint64(0) << (64 - bits)}
	case bits < 128:
		return uint128{hi: ^uint64(0), lo: ^uint64(0) << (128 - bits)}
	default:
		return uint128{hi: ^uint64(0), lo: ^uint64(0)}
	}
}

func mask32(bits int) uint32 {
	if bits <= 0 {
		return 0
	}
	if bits >= 32 {
		return ^uint32(0)
	}
	return ^uint32(0) << (32 - bits)
}

func addrUint32(a netip.Addr) uint32 {
	b := a.As4()
	return binary.BigEndian.Uint32(b[:])
}

func addrUint128(a netip.Addr) uint128 {
	b := a.As16()
	return uint128{hi: binary.BigEndian.Uint64(b[:8]), lo: binary.BigEndian.Uint64(b[8:])}
}

// Value is a canonicalized query value. Text always holds the lower-cased
// string form so string matchers can compare IP literals too.
type Value struct {
	Raw    string
	Text   string
	Kind   ValueKind
	Addr   netip.Addr
	Prefix netip.Prefix
}

// IsIP reports whether the value is a single IP address.
func (v Value) IsIP() bool {
	return v.Kind == KindIP
}

// Is4 reports whether the value is an IPv4 address or network.
func (v Value) Is4() bool {
	switch v.Kind {
	case KindIP:
		return v.Addr.Is4()
	case KindPrefix:
		return v.Prefix.Addr().Is4()
	}
	return false
}

// Uint32 returns the IPv4 address as an integer. Only valid when IsIP and Is4.
func (v Value) Uint32() uint32 {
	return addrUint32(v.Addr)
}

// Normalize trims the raw value and parses it as an IP address, then as a
// CIDR network, falling back to a lower-cased string.
func Normalize(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	v := Value{Raw: trimmed, Kind: KindString}

	if addr, ok := parseAddr(trimmed); ok {
		v.Kind = KindIP
		v.Addr = addr
		v.Text = addr.String()
		return v
	}

	if strings.Contains(trimmed, "/") {
		if prefix, ok := parsePrefix(trimmed); ok {
			v.Kind = KindPrefix
			v.Prefix = prefix
			v.Text = prefix.String()
			return v
		}
	}

	v.Text = strings.ToLower(trimmed)
	return v
}

// parseAddr accepts IPv4 first, then IPv6. Zones are dropped and
// IPv4-mapped IPv6 addresses are unmapped.
func parseAddr(s string) (netip.Addr, bool) {
	if s == "" {
		return netip.Addr{}, false
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return netip.Addr{}, false
	}
	return addr.WithZone("").Unmap(), true
}

// parsePrefix parses a CIDR literal and returns it masked to its network.
func parsePrefix(s string) (netip.Prefix, bool) {
	prefix, err := netip.ParsePrefix(s)
	if err != nil {
		return netip.Prefix{}, false
	}
	addr, bits := prefix.Addr(), prefix.Bits()
	if addr.Is4In6() {
		if bits < 96 {
			return netip.Prefix{}, false
		}
		addr, bits = addr.Unmap(), bits-96
	}
	return netip.PrefixFrom(addr, bits).Masked(), true
}

// parseNetworkLiteral parses a list entry as a network. A bare address is
// treated as a single-host network.
func parseNetworkLiteral(entry string) (netip.Prefix, bool) {
	s := strings.TrimSpace(entry)
	if strings.Contains(s, "/") {
		return parsePrefix(s)
	}
	addr, ok := parseAddr(s)
	if !ok {
		return netip.Prefix{}, false
	}
	return netip.PrefixFrom(addr, addr.BitLen()), true
}
