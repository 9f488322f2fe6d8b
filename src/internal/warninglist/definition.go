package warninglist

import (
	"slices"
	"strings"
)

// ListType is the declared type of a warning list.
type ListType string

const (
	TypeString    ListType = "string"
	TypeCIDR      ListType = "cidr"
	TypeSubstring ListType = "substring"
	TypeRegex     ListType = "regex"
	TypeHostname  ListType = "hostname"
)

var knownTypes = []ListType{TypeString, TypeCIDR, TypeSubstring, TypeRegex, TypeHostname}

// KnownListTypes returns every list type with dedicated handling.
func KnownListTypes() []ListType {
	return slices.Clone(knownTypes)
}

// ParseListType normalizes a raw type tag. Unknown or empty tags report false
// and fall back to substring matching.
func ParseListType(raw string) (ListType, bool) {
	t := ListType(strings.ToLower(strings.TrimSpace(raw)))
	if slices.Contains(knownTypes, t) {
		return t, true
	}
	return TypeSubstring, false
}

// Definition describes one warning list: its metadata and raw entries.
// Entries may mix CIDR notation and plain strings.
type Definition struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Version            int      `json:"version"`
	Type               ListType `json:"type,omitempty"`
	List               []string `json:"list"`
	MatchingAttributes []string `json:"matching_attributes,omitempty"`
}

// clone returns a deep copy so a Collection never shares slices with callers.
func (d Definition) clone() Definition {
	d.List = slices.Clone(d.List)
	d.MatchingAttributes = slices.Clone(d.MatchingAttributes)
	return d
}
