package warninglist

import (
	"slices"
	"sort"

	"github.com/maksimkurb/warninglists/src/internal/errors"
)

type compiledList struct {
	def     Definition
	matcher Matcher
	stats   BuildStats
}

// Collection holds loaded definitions and their compiled matchers.
// It is never modified after Load and is safe for concurrent use.
type Collection struct {
	lists map[string]*compiledList
	names []string
}

// Load compiles every definition. It fails only when two definitions share
// a name; malformed entries are tolerated and reported through Stats.
func Load(defs []Definition) (*Collection, error) {
	c := &Collection{
		lists: make(map[string]*compiledList, len(defs)),
		names: make([]string, 0, len(defs)),
	}

	for _, def := range defs {
		if _, exists := c.lists[def.Name]; exists {
			return nil, errors.NewDuplicateListError(def.Name)
		}
		def = def.clone()
		matcher, stats := Build(def)
		c.lists[def.Name] = &compiledList{def: def, matcher: matcher, stats: stats}
		c.names = append(c.names, def.Name)
	}

	sort.Strings(c.names)
	return c, nil
}

// Empty returns a collection without lists.
func Empty() *Collection {
	c, _ := Load(nil)
	return c
}

// Len returns the number of lists.
func (c *Collection) Len() int {
	return len(c.lists)
}

// ListNames returns the sorted names of all lists.
func (c *Collection) ListNames() []string {
	return slices.Clone(c.names)
}

// Get returns the definition of the named list.
func (c *Collection) Get(name string) (Definition, error) {
	l, ok := c.lists[name]
	if !ok {
		return Definition{}, errors.NewUnknownListError(name)
	}
	return l.def.clone(), nil
}

// Describe returns the metadata of the named list without its entries.
func (c *Collection) Describe(name string) (Definition, error) {
	l, ok := c.lists[name]
	if !ok {
		return Definition{}, errors.NewUnknownListError(name)
	}
	def := l.def
	def.List = nil
	def.MatchingAttributes = slices.Clone(def.MatchingAttributes)
	return def, nil
}

// Stats returns how the named list was compiled.
func (c *Collection) Stats(name string) (BuildStats, error) {
	l, ok := c.lists[name]
	if !ok {
		return BuildStats{}, errors.NewUnknownListError(name)
	}
	return l.stats, nil
}

// Lookup returns the sorted names of the lists containing raw. When
// restrictTo is given only those lists are queried; naming a list that is
// not loaded fails with an unknown list error.
func (c *Collection) Lookup(raw string, restrictTo ...string) ([]string, error) {
	return c.LookupValue(Normalize(raw), restrictTo...)
}

// LookupValue is Lookup for an already normalized value.
func (c *Collection) LookupValue(v Value, restrictTo ...string) ([]string, error) {
	selected, err := c.selectLists(restrictTo)
	if err != nil {
		return nil, err
	}

	matches := make([]string, 0)
	for _, name := range selected {
		if c.lists[name].matcher.Contains(v) {
			matches = append(matches, name)
		}
	}
	return matches, nil
}

// Search is Lookup returning the matching definitions.
func (c *Collection) Search(raw string, restrictTo ...string) ([]Definition, error) {
	names, err := c.Lookup(raw, restrictTo...)
	if err != nil {
		return nil, err
	}
	defs := make([]Definition, 0, len(names))
	for _, name := range names {
		defs = append(defs, c.lists[name].def.clone())
	}
	return defs, nil
}

// selectLists validates restrictTo and returns the sorted, deduplicated
// names to query.
func (c *Collection) selectLists(restrictTo []string) ([]string, error) {
	if len(restrictTo) == 0 {
		return c.names, nil
	}

	selected := make([]string, 0, len(restrictTo))
	for _, name := range restrictTo {
		if _, ok := c.lists[name]; !ok {
			return nil, errors.NewUnknownListError(name)
		}
		selected = append(selected, name)
	}
	sort.Strings(selected)
	return slices.Compact(selected), nil
}
