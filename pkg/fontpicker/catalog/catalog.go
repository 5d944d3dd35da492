// Package catalog enumerates font families and holds them as an ordered,
// read-only catalog for one picker instance.
package catalog

import (
	"log/slog"
	"slices"
)

// Face locates a loadable font face on disk.
type Face struct {
	File  string // Path to the font file
	Index int    // Face index within a collection, 0 for single-face files
}

// Family is a single enumerated font family.
type Family struct {
	Name string
	Face Face // Zero value when the source cannot locate the face
}

// Source enumerates font families available to the host.
type Source interface {
	Families() ([]Family, error)
}

// Catalog is the sorted, de-duplicated set of family names for one widget.
// It is fixed after Load and never re-queried.
type Catalog struct {
	names []string
	faces map[string]Face
}

// Load queries src once and builds a catalog sorted ascending by name.
// An enumeration error is logged and produces an empty catalog.
func Load(src Source, logger *slog.Logger) *Catalog {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Catalog{faces: make(map[string]Face)}
	if src == nil {
		return c
	}

	families, err := src.Families()
	if err != nil {
		logger.Error("Failed to enumerate font families", "error", err)
		return c
	}

	for _, family := range families {
		if family.Name == "" {
			continue
		}
		if _, exists := c.faces[family.Name]; exists {
			continue
		}
		c.faces[family.Name] = family.Face
		c.names = append(c.names, family.Name)
	}

	slices.Sort(c.names)

	logger.Debug("Font catalog loaded", "families", len(c.names))

	return c
}

// Len returns the number of families.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Names returns a copy of the family names in catalog order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.names)
}

// Name returns the family at index i.
func (c *Catalog) Name(i int) string {
	return c.names[i]
}

// Index returns the position of name, or false if it is not in the catalog.
func (c *Catalog) Index(name string) (int, bool) {
	return slices.BinarySearch(c.names, name)
}

func (c *Catalog) Contains(name string) bool {
	_, ok := c.Index(name)
	return ok
}

// Face returns the on-disk location of name. The second result is false when
// the family is unknown or its source did not provide a file.
func (c *Catalog) Face(name string) (Face, bool) {
	face, ok := c.faces[name]
	if !ok || face.File == "" {
		return Face{}, false
	}
	return face, true
}

// Families returns the catalog's contents, so a loaded catalog can back
// further pickers without enumerating the system again.
func (c *Catalog) Families() ([]Family, error) {
	families := make([]Family, 0, len(c.names))
	for _, name := range c.names {
		families = append(families, Family{Name: name, Face: c.faces[name]})
	}
	return families, nil
}

// StaticSource is a fixed list of family names with no backing files.
type StaticSource []string

func (s StaticSource) Families() ([]Family, error) {
	families := make([]Family, 0, len(s))
	for _, name := range s {
		families = append(families, Family{Name: name})
	}
	return families, nil
}
