package lunisolar

import (
	"fmt"
	"time"
)

// SolarDate is a Gregorian calendar date without a time of day or location.
// The zero value is not a valid date; use [NewSolarDate] or [SolarDateOf].
// SolarDate values are comparable with ==.
type SolarDate struct {
	year  int
	month time.Month
	day   int
}

var solarMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInSolarMonth returns the number of days in the given Gregorian month,
// or 0 if month is not in January..December.
func DaysInSolarMonth(year int, month time.Month) int {
	if month < time.January || month > time.December {
		return 0
	}
	if month == time.February && IsLeapYear(year) {
		return 29
	}
	return solarMonthDays[month-1]
}

// DaysInSolarYear returns 366 for leap years and 365 otherwise.
func DaysInSolarYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// NewSolarDate returns the Gregorian date year-month-day. The year is not
// range-checked; conversions to the lunisolar calendar are.
func NewSolarDate(year int, month time.Month, day int) (SolarDate, error) {
	if month < time.January || month > time.December {
		return SolarDate{}, fmt.Errorf("%w: month %d", ErrInvalidSolarDate, month)
	}
	if n := DaysInSolarMonth(year, month); day < 1 || day > n {
		return SolarDate{}, fmt.Errorf("%w: day %d of %04d-%02d (has %d days)", ErrInvalidSolarDate, day, year, month, n)
	}
	return SolarDate{year: year, month: month, day: day}, nil
}

// SolarDateOf returns the calendar date of t in t's location.
func SolarDateOf(t time.Time) SolarDate {
	y, m, d := t.Date()
	return SolarDate{year: y, month: m, day: d}
}

func (s SolarDate) Year() int         { return s.year }
func (s SolarDate) Month() time.Month { return s.month }
func (s SolarDate) Day() int          { return s.day }

// DayOfYear returns the 1-based ordinal of s within its Gregorian year.
func (s SolarDate) DayOfYear() int {
	n := s.day
	for m := time.January; m < s.month; m++ {
		n += DaysInSolarMonth(s.year, m)
	}
	return n
}

// Time returns midnight UTC on s.
func (s SolarDate) Time() time.Time {
	return time.Date(s.year, s.month, s.day, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or +1 as s is before, equal to or after other.
func (s SolarDate) Compare(other SolarDate) int {
	switch {
	case s.Before(other):
		return -1
	case other.Before(s):
		return 1
	}
	return 0
}

func (s SolarDate) Before(other SolarDate) bool {
	if s.year != other.year {
		return s.year < other.year
	}
	if s.month != other.month {
		return s.month < other.month
	}
	return s.day < other.day
}

func (s SolarDate) After(other SolarDate) bool {
	return other.Before(s)
}

// AddDays returns s shifted by n days; n may be negative.
func (s SolarDate) AddDays(n int) SolarDate {
	return SolarDateOf(time.Date(s.year, s.month, s.day+n, 0, 0, 0, 0, time.UTC))
}

// String formats s as YYYY-MM-DD.
func (s SolarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", s.year, int(s.month), s.day)
}

func (s SolarDate) inRange(from, to SolarDate) bool {
	return !s.Before(from) && !to.Before(s)
}
