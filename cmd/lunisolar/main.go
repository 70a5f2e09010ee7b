// Command lunisolar converts dates between the Gregorian and the Chinese
// lunisolar calendars.
//
// Usage:
//
//	lunisolar convert 2024-02-10
//	lunisolar solar 2023 2 15 --leap
//	lunisolar parse 二〇二四年正月初一
//	lunisolar year 2025
//	lunisolar bazi 1993-04-22 --hour 12
//
// Settings are read from the YAML file named by --config or $LUNISOLAR_CONFIG;
// flags override the file.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr, time.Now).Execute(); err != nil {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).With().Timestamp().Logger()
		log.Error().Err(err).Msg("lunisolar failed")
		os.Exit(1)
	}
}
