package lunisolar

import (
	"fmt"
	"time"
)

// Date is a day in the Chinese lunisolar calendar. The zero value is not a
// valid date; obtain one from [FromSolar], [FromTime], [NewDate] or [DateOf].
// Date values are comparable with ==.
type Date struct {
	// solarYear is the Gregorian year of the solar date this value was
	// converted from or to. It differs from year.year for days between
	// January 1 and the lunar new year.
	solarYear int
	year      Year
	month     Month
	day       Day
}

// FromSolar converts a Gregorian date to the lunisolar calendar.
func FromSolar(s SolarDate) (Date, error) {
	if !InRange(s) {
		return Date{}, fmt.Errorf("%w: %s not in %s..%s", ErrOutOfRange, s, MinDate(), MaxDate())
	}
	return fromSolar(s), nil
}

// fromSolar locates s relative to the lunar new year of its Gregorian year.
// Days before it are counted back from the end of the previous lunisolar
// year; days on or after it are counted forward from month 1.
func fromSolar(s SolarDate) Date {
	index := s.DayOfYear() - 1
	offset := newYearOffset(s.year)

	if index < offset {
		y := Year{year: s.year - 1}
		remaining := offset - index
		months := y.Months()
		for i := len(months) - 1; i >= 0; i-- {
			n := y.daysIn(months[i])
			if remaining <= n {
				return Date{solarYear: s.year, year: y, month: months[i], day: Day(n - remaining + 1)}
			}
			remaining -= n
		}
		panic(fmt.Sprintf("lunisolar: %s precedes lunisolar year %d", s, y.year))
	}

	y := Year{year: s.year}
	remaining := index - offset
	for _, m := range y.Months() {
		n := y.daysIn(m)
		if remaining < n {
			return Date{solarYear: s.year, year: y, month: m, day: Day(remaining + 1)}
		}
		remaining -= n
	}
	panic(fmt.Sprintf("lunisolar: %s follows lunisolar year %d", s, y.year))
}

// FromTime converts the calendar date of t, in t's location, to the
// lunisolar calendar.
func FromTime(t time.Time) (Date, error) {
	return FromSolar(SolarDateOf(t))
}

// NewDate returns the lunisolar date year/month/day, where month is the leap
// month of that number if leap is set.
func NewDate(year, month int, leap bool, day int) (Date, error) {
	y, err := NewYear(year)
	if err != nil {
		return Date{}, err
	}
	m, err := NewMonth(month, leap)
	if err != nil {
		return Date{}, err
	}
	d, err := NewDay(day)
	if err != nil {
		return Date{}, err
	}
	return DateOf(y, m, d)
}

// DateOf assembles a date from its parts, checking that the year has the
// month and the month has the day.
func DateOf(y Year, m Month, d Day) (Date, error) {
	if !y.valid() {
		return Date{}, fmt.Errorf("%w: year %d", ErrOutOfRange, y.year)
	}
	n, err := y.DaysInMonth(m)
	if err != nil {
		return Date{}, err
	}
	if !d.valid() || d.Int() > n {
		return Date{}, fmt.Errorf("%w: %d %s has %d days, not %d", ErrInvalidDay, y.year, m, n, d.Int())
	}
	date := Date{year: y, month: m, day: d}
	date.solarYear = date.Solar().Year()
	return date, nil
}

// Solar converts d back to the Gregorian calendar.
func (d Date) Solar() SolarDate {
	remaining := d.DayOfYear() - 1 + newYearOffset(d.year.year)
	year, month := d.year.year, time.January
	for n := DaysInSolarMonth(year, month); remaining >= n; n = DaysInSolarMonth(year, month) {
		remaining -= n
		if month == time.December {
			year, month = year+1, time.January
		} else {
			month++
		}
	}
	return SolarDate{year: year, month: month, day: remaining + 1}
}

// Time returns midnight UTC on the Gregorian date of d.
func (d Date) Time() time.Time { return d.Solar().Time() }

// SolarYear returns the Gregorian year of the corresponding solar date.
func (d Date) SolarYear() int { return d.solarYear }

func (d Date) Year() Year   { return d.year }
func (d Date) Month() Month { return d.month }
func (d Date) Day() Day     { return d.day }

// Cyclic returns the sexagenary name of d's lunisolar year.
func (d Date) Cyclic() Cyclic { return d.year.Cyclic() }

// Zodiac returns the animal of d's lunisolar year.
func (d Date) Zodiac() Zodiac { return d.year.Zodiac() }

// DayOfYear returns the 1-based ordinal of d within its lunisolar year,
// counting the leap month.
func (d Date) DayOfYear() int {
	n := d.day.Int()
	for _, m := range d.year.Months()[:d.year.slot(d.month)-1] {
		n += d.year.daysIn(m)
	}
	return n
}

// Compare returns -1, 0 or +1 as d is before, equal to or after other in
// time.
func (d Date) Compare(other Date) int {
	switch {
	case d.year.year < other.year.year:
		return -1
	case d.year.year > other.year.year:
		return 1
	}
	a, b := d.DayOfYear(), other.DayOfYear()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }
func (d Date) After(other Date) bool  { return d.Compare(other) > 0 }

// AddDays returns the date n days after d; n may be negative. It fails with
// [ErrOutOfRange] if the result leaves the supported window.
func (d Date) AddDays(n int) (Date, error) {
	return FromSolar(d.Solar().AddDays(n))
}

// String renders d in traditional characters, e.g.
// "二〇二四　甲辰、龍年　正月　初一".
func (d Date) String() string { return d.Format(Traditional) }
