package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-text/typesetting/fontscan"
	"golang.org/x/image/font/sfnt"
)

// SystemSource enumerates the fonts installed on the host. Footprints are
// cached under CacheDir by the scanner; an empty CacheDir uses the user cache.
type SystemSource struct {
	CacheDir string
	Logger   *slog.Logger
}

func (s SystemSource) Families() ([]Family, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cacheDir := s.CacheDir
	if cacheDir == "" {
		userCache, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolve font cache dir: %w", err)
		}
		cacheDir = filepath.Join(userCache, "fontpicker")
	}

	footprints, err := fontscan.SystemFonts(slog.NewLogLogger(logger.Handler(), slog.LevelDebug), cacheDir)
	if err != nil {
		return nil, fmt.Errorf("scan system fonts: %w", err)
	}

	reader := newNameReader()
	best := make(map[string]candidate)
	var order []string

	for _, fp := range footprints {
		face := Face{File: fp.Location.File, Index: int(fp.Location.Index)}

		names, err := reader.read(face)
		if err != nil {
			logger.Debug("Skipping unreadable font face", "file", face.File, "index", face.Index, "error", err)
			continue
		}

		current, seen := best[names.family]
		if !seen {
			order = append(order, names.family)
		}
		if !seen || (!current.regular && names.regular()) {
			best[names.family] = candidate{face: face, regular: names.regular()}
		}
	}

	families := make([]Family, 0, len(order))
	for _, name := range order {
		families = append(families, Family{Name: name, Face: best[name].face})
	}

	return families, nil
}

type candidate struct {
	face    Face
	regular bool
}

type faceNames struct {
	family    string
	subfamily string
}

func (n faceNames) regular() bool {
	switch strings.ToLower(n.subfamily) {
	case "regular", "roman", "book", "normal":
		return true
	}
	return false
}

// nameReader parses font files once and reads face names from their name tables.
type nameReader struct {
	collections map[string]*sfnt.Collection
	buf         sfnt.Buffer
}

func newNameReader() *nameReader {
	return &nameReader{collections: make(map[string]*sfnt.Collection)}
}

func (r *nameReader) read(face Face) (faceNames, error) {
	collection, ok := r.collections[face.File]
	if !ok {
		data, err := os.ReadFile(face.File)
		if err != nil {
			return faceNames{}, err
		}
		collection, err = sfnt.ParseCollection(data)
		if err != nil {
			return faceNames{}, err
		}
		r.collections[face.File] = collection
	}

	font, err := collection.Font(face.Index)
	if err != nil {
		return faceNames{}, err
	}

	family, err := font.Name(&r.buf, sfnt.NameIDFamily)
	if err != nil {
		return faceNames{}, err
	}
	family = strings.TrimSpace(family)
	if family == "" {
		return faceNames{}, fmt.Errorf("font has an empty family name")
	}

	subfamily, err := font.Name(&r.buf, sfnt.NameIDSubfamily)
	if err != nil {
		subfamily = ""
	}

	return faceNames{family: family, subfamily: subfamily}, nil
}
