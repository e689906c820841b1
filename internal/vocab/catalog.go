package vocab

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

//go:embed data/*.tsv
var defaultLists embed.FS

// ErrMissingDomain is returned when a catalog has no set for a requested domain.
var ErrMissingDomain = errors.New("vocabulary domain not loaded")

// Catalog bundles one Set per domain.
type Catalog struct {
	sets map[Domain]*Set
}

// NewCatalog builds a catalog from already constructed sets.
func NewCatalog(sets ...*Set) *Catalog {
	c := &Catalog{sets: make(map[Domain]*Set, len(sets))}
	for _, s := range sets {
		c.sets[s.Domain()] = s
	}
	return c
}

// Load reads every domain's token list from fsys. Each domain must be present
// as <Domain>.tsv at the root of fsys.
func Load(fsys fs.FS) (*Catalog, error) {
	c := &Catalog{sets: make(map[Domain]*Set, len(Domains()))}
	for _, d := range Domains() {
		f, err := fsys.Open(d.FileName())
		if err != nil {
			return nil, fmt.Errorf("open vocabulary %s: %w", d, err)
		}
		s, err := Parse(d, f)
		f.Close()
		if err != nil {
			return nil, err
		}
		c.sets[d] = s
	}
	return c, nil
}

// LoadDir loads a catalog from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	return Load(os.DirFS(dir))
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	sub, err := fs.Sub(defaultLists, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Set returns the set for d, or an error if it was never loaded.
func (c *Catalog) Set(d Domain) (*Set, error) {
	s, ok := c.sets[d]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingDomain, d)
	}
	return s, nil
}

// Contains is shorthand for a membership test in domain d. Unknown domains
// contain nothing.
func (c *Catalog) Contains(d Domain, v string) bool {
	s, ok := c.sets[d]
	return ok && s.Contains(v)
}
