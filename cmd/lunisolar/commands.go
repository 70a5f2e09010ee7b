package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rabitt1ove/lunisolar"
)

func newConvertCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [YYYY-MM-DD]",
		Short: "Convert a Gregorian date (default today) to the lunisolar calendar",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var (
				d   lunisolar.Date
				err error
			)
			if len(args) == 0 {
				d, err = a.cal.Convert(a.now())
			} else {
				var s lunisolar.SolarDate
				if s, err = parseSolarArg(args[0]); err != nil {
					return err
				}
				d, err = lunisolar.FromSolar(s)
			}
			if err != nil {
				return err
			}
			a.log.Debug().Str("solar", d.Solar().String()).Int("year", d.Year().Int()).Msg("converted")
			return a.printDate(d)
		},
	}
}

func newSolarCommand(a *app) *cobra.Command {
	var leap bool
	cmd := &cobra.Command{
		Use:   "solar YEAR MONTH DAY",
		Short: "Convert a lunisolar date to the Gregorian calendar",
		Args:  cobra.ExactArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			var parts [3]int
			for i, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("argument %d: %q is not a number", i+1, arg)
				}
				parts[i] = n
			}
			d, err := lunisolar.NewDate(parts[0], parts[1], leap, parts[2])
			if err != nil {
				return err
			}
			a.log.Debug().Str("lunisolar", d.String()).Msg("converted")
			return a.printDate(d)
		},
	}
	cmd.Flags().BoolVar(&leap, "leap", false, "MONTH is the leap month of that number")
	return cmd
}

func newParseCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "parse TEXT",
		Short: "Parse a lunisolar date written in Chinese",
		Example: "  lunisolar parse 二〇二四　甲辰、龍年　正月　初一\n" +
			"  lunisolar parse 2023年閏二月十五日",
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			d, err := lunisolar.Parse(strings.Join(args, " "))
			if err != nil {
				return err
			}
			return a.printDate(d)
		},
	}
}

func newYearCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "year YEAR",
		Short: "Show the months, leap month and new year's day of a lunisolar year",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%q is not a year", args[0])
			}
			y, err := lunisolar.NewYear(n)
			if err != nil {
				return err
			}
			return a.printYear(y)
		},
	}
}

func newBaziCommand(a *app) *cobra.Command {
	var hour int
	cmd := &cobra.Command{
		Use:   "bazi YYYY-MM-DD",
		Short: "Compute the Ba Zi weight of a birth date and hour",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if hour < 0 || hour > 23 {
				return fmt.Errorf("--hour %d is not in 0..23", hour)
			}
			s, err := parseSolarArg(args[0])
			if err != nil {
				return err
			}
			d, err := lunisolar.FromSolar(s)
			if err != nil {
				return err
			}
			branch := lunisolar.BranchFromHour(hour)
			a.log.Debug().Str("lunisolar", d.String()).Int("hour", hour).Str("branch", branch.String()).Msg("weighing")
			return a.printBaZi(d, branch)
		},
	}
	cmd.Flags().IntVar(&hour, "hour", 0, "hour of birth, 0..23")
	return cmd
}

// parseSolarArg reads a YYYY-MM-DD argument.
func parseSolarArg(arg string) (lunisolar.SolarDate, error) {
	t, err := time.Parse(time.DateOnly, arg)
	if err != nil {
		return lunisolar.SolarDate{}, fmt.Errorf("%q is not a YYYY-MM-DD date: %w", arg, err)
	}
	return lunisolar.SolarDateOf(t), nil
}
