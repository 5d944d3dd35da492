// Package locale localizes the picker's toolbar text.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

//go:embed translations/*.toml
var translations embed.FS

var doneMessage = &i18n.Message{
	ID:          "Done",
	Description: "Toolbar button that closes the font picker",
	Other:       "Done",
}

// Localizer resolves toolbar strings for one language.
type Localizer struct {
	localizer *i18n.Localizer
}

// NewBundle loads every embedded translation.
func NewBundle() (*i18n.Bundle, error) {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	files, err := fs.Glob(translations, "translations/*.toml")
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		data, err := translations.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read translation %s: %w", file, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, path.Base(file)); err != nil {
			return nil, fmt.Errorf("parse translation %s: %w", file, err)
		}
	}

	return bundle, nil
}

// New returns a localizer for the given BCP 47 tags, in preference order.
// Unknown or empty tags fall back to English, as does a nil bundle.
func New(bundle *i18n.Bundle, langs ...string) *Localizer {
	if bundle == nil {
		bundle = i18n.NewBundle(language.English)
	}
	return &Localizer{localizer: i18n.NewLocalizer(bundle, langs...)}
}

// Done returns the label of the toolbar's confirm button.
func (l *Localizer) Done() string {
	text, err := l.localizer.Localize(&i18n.LocalizeConfig{DefaultMessage: doneMessage})
	if err != nil || text == "" {
		return doneMessage.Other
	}
	return text
}

// Languages lists the tags that have embedded translations.
func Languages(bundle *i18n.Bundle) []string {
	tags := bundle.LanguageTags()
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, tag.String())
	}
	return out
}
