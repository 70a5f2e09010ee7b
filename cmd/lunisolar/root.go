package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rabitt1ove/lunisolar"
	"github.com/rabitt1ove/lunisolar/internal/config"
)

// app carries what every subcommand needs once flags and config are loaded.
type app struct {
	cfg config.Config
	log zerolog.Logger
	cal *lunisolar.Calendar
	out io.Writer
	now func() time.Time
}

func newRootCommand(stdout, stderr io.Writer, now func() time.Time) *cobra.Command {
	a := &app{out: stdout, now: now, log: zerolog.Nop()}

	var (
		configPath string
		overrides  config.Config
	)

	root := &cobra.Command{
		Use:           "lunisolar",
		Short:         "Convert between Gregorian and Chinese lunisolar dates",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if configPath == "" {
				configPath = os.Getenv(config.EnvVar)
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("variant") {
				cfg.Variant = overrides.Variant
			}
			if flags.Changed("format") {
				cfg.Format = overrides.Format
			}
			if flags.Changed("timezone") {
				cfg.Timezone = overrides.Timezone
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = overrides.LogLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return a.init(cfg, stderr)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML config file (default $"+config.EnvVar+")")
	flags.StringVar(&overrides.Variant, "variant", "", "characters: traditional or simplified")
	flags.StringVar(&overrides.Format, "format", "", "output format: text or json")
	flags.StringVar(&overrides.Timezone, "timezone", "", "time zone for today's date, e.g. Asia/Shanghai")
	flags.StringVar(&overrides.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newConvertCommand(a),
		newSolarCommand(a),
		newParseCommand(a),
		newYearCommand(a),
		newBaziCommand(a),
	)

	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w (see --help)", err)
	})
	return root
}

func (a *app) init(cfg config.Config, stderr io.Writer) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.log = zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true, TimeFormat: time.RFC3339}).
		Level(level).
		With().Timestamp().Logger()

	a.cal = lunisolar.New()
	a.cal.SetLocation(loc)
	a.cal.SetVariant(cfg.LunisolarVariant())

	a.log.Debug().
		Str("variant", cfg.Variant).
		Str("format", cfg.Format).
		Str("timezone", loc.String()).
		Msg("configured")
	return nil
}
