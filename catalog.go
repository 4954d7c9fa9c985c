package authorship

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyCatalog is returned when matching against a catalog with no entries.
	ErrEmptyCatalog = errors.New("authorship: catalog is empty")
	// ErrDuplicateEntry is returned when two catalog entries share a name.
	ErrDuplicateEntry = errors.New("authorship: duplicate catalog entry")
)

// Entry is a named signature of a known text.
type Entry struct {
	Name      string
	Signature Signature
}

// Match is a catalog entry scored against a target signature.
type Match struct {
	Name  string  `json:"name"`
	Score float64 `json:"score"`
}

// Catalog is an immutable, ordered set of known signatures. Entries keep the
// order they were given to NewCatalog. A Catalog is safe for concurrent use.
type Catalog struct {
	entries []Entry
	index   map[string]int
}

// NewCatalog returns a catalog holding entries in the given order.
func NewCatalog(entries ...Entry) (*Catalog, error) {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if _, ok := c.index[e.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateEntry, e.Name)
		}
		c.index[e.Name] = i
		c.entries[i] = e
	}
	return c, nil
}

// Len returns the number of entries. A nil catalog is empty.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Names returns the entry names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, c.Len())
	for i := 0; i < c.Len(); i++ {
		names = append(names, c.entries[i].Name)
	}
	return names
}

// Entries returns a copy of the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	return append([]Entry(nil), c.entries...)
}

// Lookup returns the signature stored under name.
func (c *Catalog) Lookup(name string) (Signature, bool) {
	if c == nil {
		return Signature{}, false
	}
	i, ok := c.index[name]
	if !ok {
		return Signature{}, false
	}
	return c.entries[i].Signature, true
}

// BestMatch returns the name of the catalog entry closest to target. When
// several entries share the lowest score the earliest one in catalog order
// wins.
func BestMatch(c *Catalog, target Signature, w Weights) (string, error) {
	if c.Len() == 0 {
		return "", ErrEmptyCatalog
	}
	best := 0
	bestScore := Score(c.entries[0].Signature, target, w)
	for i := 1; i < len(c.entries); i++ {
		if s := Score(c.entries[i].Signature, target, w); s < bestScore {
			best, bestScore = i, s
		}
	}
	return c.entries[best].Name, nil
}

// Rank scores every catalog entry against target and returns them from
// closest to farthest. Equal scores keep catalog order.
func Rank(c *Catalog, target Signature, w Weights) ([]Match, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCatalog
	}
	matches := make([]Match, len(c.entries))
	for i, e := range c.entries {
		matches[i] = Match{Name: e.Name, Score: Score(e.Signature, target, w)}
	}
	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score < matches[b].Score
	})
	return matches, nil
}
