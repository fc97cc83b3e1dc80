// Package catalog holds the immutable list of aircraft shown by the
// showcase. The built-in catalog is embedded as YAML; an alternate file
// with the same schema can be loaded instead.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/archives/internal/errors"
)

//go:embed data/aircraft.yaml
var builtinDocument []byte

// document is the on-disk catalog schema.
type document struct {
	Version string  `yaml:"version"`
	Entries []Entry `yaml:"entries"`
}

// Catalog is an ordered, read-only collection of entries.
type Catalog struct {
	entries []Entry
	index   map[string]int
	source  string
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the built-in catalog. It is decoded on first use and
// shared for the lifetime of the process.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := parse(builtinDocument, "builtin")
		if err != nil {
			panic(fmt.Sprintf("catalog: built-in document is invalid: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// BuiltinDocument returns the raw embedded YAML, used by `catalog export`
// and as a starting point for custom catalogs.
func BuiltinDocument() []byte {
	out := make([]byte, len(builtinDocument))
	copy(out, builtinDocument)
	return out
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	return parse(data, "")
}

// Load reads a catalog document from path.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewCatalogError("cannot read catalog", err).WithSource(path)
	}
	return parse(data, path)
}

func parse(data []byte, source string) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewCatalogError(err.Error(), errors.ErrMalformedCatalog).WithSource(source)
	}

	c := newCatalog(doc.Entries, source)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func newCatalog(entries []Entry, source string) *Catalog {
	c := &Catalog{
		entries: make([]Entry, len(entries)),
		index:   make(map[string]int, len(entries)),
		source:  source,
	}
	for i, e := range entries {
		c.entries[i] = e.Clone()
		if _, exists := c.index[e.ID]; !exists {
			c.index[e.ID] = i
		}
	}
	return c
}

// Validate checks every entry and returns all problems joined together,
// or nil when the catalog is usable.
func (c *Catalog) Validate() error {
	if len(c.entries) == 0 {
		return errors.NewCatalogError("no entries", errors.ErrCatalogEmpty).WithSource(c.source)
	}

	var errs []error
	seen := make(map[string]bool, len(c.entries))
	for i, e := range c.entries {
		id := e.ID
		if strings.TrimSpace(id) == "" {
			errs = append(errs, c.entryErr(fmt.Sprintf("entry %d", i), "id", "id is required", errors.ErrInvalidInput))
			continue
		}
		if seen[id] {
			errs = append(errs, c.entryErr(id, "id", "id is used more than once", errors.ErrDuplicateEntry))
		}
		seen[id] = true

		if strings.TrimSpace(e.Name) == "" {
			errs = append(errs, c.entryErr(id, "name", "name is required", errors.ErrInvalidInput))
		}
		if e.Specs.Len() == 0 {
			errs = append(errs, c.entryErr(id, "specs", "at least one spec row is required", errors.ErrInvalidInput))
		}
		for _, r := range e.Ratings.List() {
			if r.Value < 0 || r.Value > 100 {
				errs = append(errs, c.entryErr(id, "ratings."+r.Key,
					fmt.Sprintf("%d is outside [0,100]", r.Value), errors.ErrInvalidRating))
			}
		}
	}
	return errors.Join(errs...)
}

func (c *Catalog) entryErr(id, field, msg string, cause error) error {
	return errors.NewCatalogError(msg, cause).
		WithSource(c.source).
		WithEntryID(id).
		WithField(field)
}

// Entries returns deep copies of all entries in display order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Clone()
	}
	return out
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Source returns the path the catalog was loaded from, "builtin" for the
// embedded catalog, or "" for parsed documents.
func (c *Catalog) Source() string {
	return c.source
}

// Lookup returns the entry with the given ID.
func (c *Catalog) Lookup(id string) (Entry, error) {
	i, ok := c.index[id]
	if !ok {
		return Entry{}, errors.NewNotFoundError("entry", id).WithCause(errors.ErrEntryNotFound)
	}
	return c.entries[i].Clone(), nil
}

// Filter returns a catalog holding only entries whose ID matches the glob
// pattern, in the original order. An empty pattern returns c unchanged.
func (c *Catalog) Filter(pattern string) (*Catalog, error) {
	if pattern == "" {
		return c, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, errors.NewValidationError(err.Error()).WithField("pattern").WithValue(pattern)
	}

	var matched []Entry
	for _, e := range c.entries {
		if g.Match(e.ID) {
			matched = append(matched, e)
		}
	}
	if len(matched) == 0 {
		return nil, errors.NewNotFoundError("entries matching", pattern).WithCause(errors.ErrCatalogEmpty)
	}
	return newCatalog(matched, c.source), nil
}

// Marshal encodes the catalog back into the document schema.
func (c *Catalog) Marshal() ([]byte, error) {
	return yaml.Marshal(document{Version: "1", Entries: c.entries})
}
