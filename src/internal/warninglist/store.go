package warninglist

import "sync/atomic"

// Store holds the current Collection. Reloads swap in a new collection;
// lookups already running against the previous one are unaffected.
type Store struct {
	current atomic.Pointer[Collection]
}

// NewStore creates a store serving c, or an empty collection if c is nil.
func NewStore(c *Collection) *Store {
	if c == nil {
		c = Empty()
	}
	s := &Store{}
	s.current.Store(c)
	return s
}

// Current returns the collection to use for a lookup.
func (s *Store) Current() *Collection {
	return s.current.Load()
}

// Swap installs c and returns the previous collection.
func (s *Store) Swap(c *Collection) *Collection {
	return s.current.Swap(c)
}

// Reload loads defs and installs the result. On error the previous
// collection stays in place.
func (s *Store) Reload(defs []Definition) (*Collection, error) {
	c, err := Load(defs)
	if err != nil {
		return nil, err
	}
	s.Swap(c)
	return c, nil
}
