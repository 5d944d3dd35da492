package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/catalog"
	"github.com/BrandonKowalski/fontpicker/pkg/fontpicker/config"
)

type rootFlags struct {
	configPath  string
	fullscreen  bool
	dim         bool
	initial     string
	lang        string
	tint        string
	fonts       []string
	logPath     string
	logLevel    string
	powerDevice string
	windowed    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "fontpicker-demo",
		Short:         "Preview a document in any installed font",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd, flags)
			if err != nil {
				return err
			}
			return run(cmd.Context(), flags, settings)
		},
	}

	bindFlags(cmd, flags)

	return cmd
}

func bindFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().StringVarP(&flags.configPath, "config", "c", "", "TOML settings file")
	cmd.Flags().BoolVar(&flags.fullscreen, "fullscreen", false, "Cover the whole window instead of the bottom third")
	cmd.Flags().BoolVar(&flags.dim, "dim", false, "Dim the document behind the picker")
	cmd.Flags().StringVar(&flags.initial, "initial", "", "Font the document starts with")
	cmd.Flags().StringVar(&flags.lang, "lang", "", "Language tag for the toolbar label (e.g. de, ja)")
	cmd.Flags().StringVar(&flags.tint, "tint", "", "Toolbar and checkmark color as #RRGGBB")
	cmd.Flags().StringSliceVar(&flags.fonts, "fonts", nil, "List these families instead of the installed fonts")
	cmd.Flags().StringVar(&flags.logPath, "log-path", "", "Log file path")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.powerDevice, "power-device", "", "evdev device of the power key (e.g. /dev/input/event1)")
	cmd.Flags().BoolVar(&flags.windowed, "windowed", false, "Run in a resizable window")
}

// loadSettings reads the settings file, then applies the flags that were
// given explicitly.
func loadSettings(cmd *cobra.Command, flags *rootFlags) (config.Settings, error) {
	settings := config.DefaultSettings()
	if flags.configPath != "" {
		var err error
		settings, err = config.Load(flags.configPath)
		if err != nil {
			return settings, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("fullscreen") {
		settings.Fullscreen = flags.fullscreen
	}
	if changed("dim") {
		settings.DimsBackground = flags.dim
	}
	if changed("initial") {
		settings.InitialFontName = flags.initial
	}
	if changed("lang") {
		settings.Language = flags.lang
	}
	if changed("tint") {
		tint, err := config.ParseColor(flags.tint)
		if err != nil {
			return settings, fmt.Errorf("--tint: %w", err)
		}
		settings.BarTintColor = tint
		settings.SelectionTintColor = tint
	}

	return settings, nil
}

func run(ctx context.Context, flags *rootFlags, settings config.Settings) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if flags.logPath != "" {
		fontpicker.SetLogPath(flags.logPath)
	}
	fontpicker.SetRawLogLevel(flags.logLevel)
	logger := fontpicker.GetLogger()

	options := fontpicker.Options{
		WindowTitle:       "Font Picker",
		PowerButtonDevice: flags.powerDevice,
	}
	if flags.windowed {
		options.WindowOptions = fontpicker.WindowOptions{Resizable: true, HighDPI: true}
	}

	if err := fontpicker.Init(options); err != nil {
		return err
	}
	defer fontpicker.Close()

	var source catalog.Source = catalog.SystemSource{Logger: logger}
	if len(flags.fonts) > 0 {
		source = catalog.StaticSource(flags.fonts)
	}

	app := newDemo(catalog.Load(source, logger), settings, logger)
	defer app.close()

	return app.run(ctx)
}

