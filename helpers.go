package lunisolar

import (
	"fmt"
	"time"
)

// NewYearsDay returns the Gregorian date of the lunar new year of year.
func NewYearsDay(year int) (SolarDate, error) {
	y, err := NewYear(year)
	if err != nil {
		return SolarDate{}, err
	}
	return y.NewYearsDay(), nil
}

// DaysInMonth returns the length of month (the leap month of that number if
// leap is set) in lunisolar year year.
func DaysInMonth(year, month int, leap bool) (int, error) {
	y, err := NewYear(year)
	if err != nil {
		return 0, err
	}
	m, err := NewMonth(month, leap)
	if err != nil {
		return 0, err
	}
	return y.DaysInMonth(m)
}

// NextNewYear returns the first lunar new year strictly after the calendar
// date of t. It returns false if that falls after [MaxYear].
func (c *Calendar) NextNewYear(t time.Time) (SolarDate, bool) {
	s := c.solarDateOf(t)
	for y := max(s.year-1, MinYear); y <= MaxYear; y++ {
		if ny := (Year{year: y}).NewYearsDay(); ny.After(s) {
			return ny, true
		}
	}
	return SolarDate{}, false
}

// PreviousNewYear returns the most recent lunar new year on or before the
// calendar date of t. It returns false if t precedes [MinDate].
func (c *Calendar) PreviousNewYear(t time.Time) (SolarDate, bool) {
	s := c.solarDateOf(t)
	for y := min(s.year, MaxYear); y >= MinYear; y-- {
		if ny := (Year{year: y}).NewYearsDay(); !ny.After(s) {
			return ny, true
		}
	}
	return SolarDate{}, false
}

// MonthStart returns the first day of d's month.
func (d Date) MonthStart() Date {
	return d.withDay(1)
}

// MonthEnd returns the last day of d's month.
func (d Date) MonthEnd() Date {
	return d.withDay(d.year.daysIn(d.month))
}

func (d Date) withDay(day int) Date {
	out, err := DateOf(d.year, d.month, Day(day))
	if err != nil {
		panic(fmt.Sprintf("lunisolar: day %d of %d %s: %v", day, d.year.year, d.month, err))
	}
	return out
}

// DaysBetween returns the number of days from a to b; negative if b is
// before a.
func DaysBetween(a, b Date) int {
	return int(b.Time().Sub(a.Time()) / (24 * time.Hour))
}

// --- Package-level convenience functions ---

// NextNewYear returns the first lunar new year strictly after the date of t.
func NextNewYear(t time.Time) (SolarDate, bool) { return defaultCal.NextNewYear(t) }

// PreviousNewYear returns the most recent lunar new year on or before the date of t.
func PreviousNewYear(t time.Time) (SolarDate, bool) { return defaultCal.PreviousNewYear(t) }
