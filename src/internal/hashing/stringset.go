package hashing

import (
	"crypto/md5"
	"encoding/hex"
	"sort"
)

// ChecksumStringSet collects unique strings and hashes them in sorted order,
// so the checksum does not depend on insertion order.
type ChecksumStringSet struct {
	set map[string]struct{}
}

func NewChecksumStringSet() *ChecksumStringSet {
	return &ChecksumStringSet{set: make(map[string]struct{})}
}

func (s *ChecksumStringSet) Put(str string) {
	s.set[str] = struct{}{}
}

func (s *ChecksumStringSet) Size() int {
	return len(s.set)
}

func (s *ChecksumStringSet) GetChecksum() (string, error) {
	keys := make([]string, 0, len(s.set))
	for k := range s.set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := md5.New()
	for _, k := range keys {
		if _, err := h.Write([]byte(k + "\n")); err != nil {
			return "", err
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
