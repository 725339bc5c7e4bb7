// Package catalogs enumerates the local pet catalog. The catalog is the
// authority on which pets exist: one Entry per qualifying image asset,
// named after the file with its extension stripped.
//
// Example usage:
//
//	catalog, err := catalogs.New(catalogs.WithPath("pets"))
//	if err != nil {
//	    return err // a missing catalog is fatal
//	}
//	for _, entry := range catalog.Entries() {
//	    fmt.Println(entry.Name, entry.Key, entry.Image)
//	}
package catalogs

import (
	"github.com/agentstation/petvalues/pkg/names"
)

// Entry is one known pet. Entries are built fresh on every run and never
// mutated afterwards.
type Entry struct {
	// Name is the display name (file name without extension).
	Name string
	// Key is the normalized Name used to match source records.
	Key names.Key
	// Image is the reference written to the dataset (e.g. "pets/Cat.png").
	Image string
}

// NewEntry builds an entry, deriving its key from the name.
func NewEntry(name, image string) Entry {
	return Entry{Name: name, Key: names.Normalize(name), Image: image}
}

// Catalog is an ordered, read-only list of entries.
type Catalog struct {
	entries []Entry
	byKey   map[names.Key][]int
}

// FromEntries builds a catalog over the given entries, preserving order.
func FromEntries(entries ...Entry) *Catalog {
	c := &Catalog{
		entries: entries,
		byKey:   make(map[names.Key][]int, len(entries)),
	}
	for i, e := range entries {
		c.byKey[e.Key] = append(c.byKey[e.Key], i)
	}
	return c
}

// Entries returns the entries in enumeration order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Has reports whether any entry carries the key.
func (c *Catalog) Has(key names.Key) bool {
	_, ok := c.byKey[key]
	return ok && !key.Empty()
}

// Lookup returns every entry with the given key. Several image files may
// normalize to the same key; each stays its own entry.
func (c *Catalog) Lookup(key names.Key) []Entry {
	idxs := c.byKey[key]
	out := make([]Entry, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, c.entries[i])
	}
	return out
}
