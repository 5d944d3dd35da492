package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/locale"
)

func TestDoneLabel(t *testing.T) {
	bundle, err := locale.NewBundle()
	require.NoError(t, err)

	tests := []struct {
		lang string
		want string
	}{
		{lang: "en", want: "Done"},
		{lang: "de-DE", want: "Fertig"},
		{lang: "ja", want: "完了"},
		{lang: "", want: "Done"},
		{lang: "xx", want: "Done"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.New(bundle, tt.lang).Done())
		})
	}
}

func TestLanguages(t *testing.T) {
	bundle, err := locale.NewBundle()
	require.NoError(t, err)

	assert.Subset(t, locale.Languages(bundle), []string{"en", "de", "fr", "es", "ja"})
}

func TestNilBundleFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, "Done", locale.New(nil, "de").Done())
}
