package catalog_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/catalog"
)

type failingSource struct{}

func (failingSource) Families() ([]catalog.Family, error) {
	return nil, errors.New("fontconfig unavailable")
}

type fileSource []catalog.Family

func (s fileSource) Families() ([]catalog.Family, error) {
	return s, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadSortsAscending(t *testing.T) {
	c := catalog.Load(catalog.StaticSource{"Helvetica", "Arial", "Courier"}, quietLogger())

	assert.Equal(t, []string{"Arial", "Courier", "Helvetica"}, c.Names())
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "Courier", c.Name(1))
}

func TestLoadDropsDuplicatesAndEmptyNames(t *testing.T) {
	c := catalog.Load(catalog.StaticSource{"Courier", "", "Arial", "Courier"}, quietLogger())

	assert.Equal(t, []string{"Arial", "Courier"}, c.Names())
}

func TestLoadErrorYieldsEmptyCatalog(t *testing.T) {
	c := catalog.Load(failingSource{}, quietLogger())

	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.Names())
}

func TestLoadNilSource(t *testing.T) {
	c := catalog.Load(nil, nil)

	assert.Equal(t, 0, c.Len())
}

func TestIndexAndContains(t *testing.T) {
	c := catalog.Load(catalog.StaticSource{"Arial", "Courier", "Helvetica"}, quietLogger())

	i, ok := c.Index("Helvetica")
	require.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = c.Index("Comic Sans")
	assert.False(t, ok)
	assert.True(t, c.Contains("Arial"))
	assert.False(t, c.Contains("arial"))
}

func TestNamesReturnsCopy(t *testing.T) {
	c := catalog.Load(catalog.StaticSource{"Arial", "Courier"}, quietLogger())

	names := c.Names()
	names[0] = "Zapfino"

	assert.Equal(t, "Arial", c.Name(0))
}

func TestFaceLookup(t *testing.T) {
	c := catalog.Load(fileSource{
		{Name: "DejaVu Sans", Face: catalog.Face{File: "/usr/share/fonts/DejaVuSans.ttf"}},
		{Name: "Noto Sans CJK", Face: catalog.Face{File: "/usr/share/fonts/NotoSansCJK.ttc", Index: 2}},
		{Name: "Bare"},
	}, quietLogger())

	face, ok := c.Face("Noto Sans CJK")
	require.True(t, ok)
	assert.Equal(t, 2, face.Index)

	_, ok = c.Face("Bare")
	assert.False(t, ok, "families without a file have no face")

	_, ok = c.Face("Missing")
	assert.False(t, ok)
}

func TestCatalogIsASource(t *testing.T) {
	first := catalog.Load(fileSource{
		{Name: "Georgia", Face: catalog.Face{File: "/fonts/Georgia.ttf"}},
		{Name: "Arial", Face: catalog.Face{File: "/fonts/Arial.ttc", Index: 2}},
	}, quietLogger())

	second := catalog.Load(first, quietLogger())

	assert.Equal(t, first.Names(), second.Names())
	face, ok := second.Face("Arial")
	require.True(t, ok)
	assert.Equal(t, catalog.Face{File: "/fonts/Arial.ttc", Index: 2}, face)
}
