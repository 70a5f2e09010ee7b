package lunisolar

import (
	"fmt"
	"time"
)

// Year is a lunisolar year, named by the Gregorian year in which it begins.
// The zero value is not a valid year; use [NewYear].
type Year struct {
	year int
}

// NewYear returns the lunisolar year beginning in Gregorian year y.
func NewYear(y int) (Year, error) {
	if y < MinYear || y > MaxYear {
		return Year{}, fmt.Errorf("%w: year %d not in %d..%d", ErrOutOfRange, y, MinYear, MaxYear)
	}
	return Year{year: y}, nil
}

// Int returns the Gregorian year in which y begins.
func (y Year) Int() int { return y.year }

func (y Year) valid() bool { return y.year >= MinYear && y.year <= MaxYear }

// Stem returns the heavenly stem of y. 1984 is 甲.
func (y Year) Stem() Stem { return stemAt(7 + y.year - datasetFirstYear) }

// Branch returns the earthly branch of y. 1984 is 子.
func (y Year) Branch() Branch { return branchAt(y.year - datasetFirstYear + 1) }

// Zodiac returns the animal of y's branch.
func (y Year) Zodiac() Zodiac { return y.Branch().Zodiac() }

// Cyclic returns the sexagenary name of y, e.g. 甲辰 for 2024.
func (y Year) Cyclic() Cyclic {
	c, err := NewCyclic(y.Stem(), y.Branch())
	if err != nil {
		panic(fmt.Sprintf("lunisolar: year %d: %v", y.year, err))
	}
	return c
}

// LeapMonth returns the leap month of y. The second result is false if y
// has no leap month.
func (y Year) LeapMonth() (Month, bool) {
	n := leapMonthOf(y.year)
	if n == 0 {
		return Month{}, false
	}
	return Month{number: uint8(n), leap: true}, true
}

// HasMonth reports whether m occurs in y. Every year has months 1..12; only
// leap years have their one leap month.
func (y Year) HasMonth(m Month) bool {
	if !m.valid() {
		return false
	}
	return !m.leap || int(m.number) == leapMonthOf(y.year)
}

// DaysInMonth returns 29 or 30.
func (y Year) DaysInMonth(m Month) (int, error) {
	if !y.HasMonth(m) {
		return 0, fmt.Errorf("%w: %d has no month %s", ErrInvalidMonth, y.year, m)
	}
	return y.daysIn(m), nil
}

// daysIn is DaysInMonth for months already known to occur in y.
func (y Year) daysIn(m Month) int {
	if isBigMonth(y.year, y.slot(m)) {
		return 30
	}
	return 29
}

// slot returns the 1-based calendar position of m in y. The leap month
// directly follows its parent and shifts every later month by one.
func (y Year) slot(m Month) int {
	n := int(m.number)
	leap := leapMonthOf(y.year)
	if m.leap {
		if n != leap {
			panic(fmt.Sprintf("lunisolar: %d has no leap month %d", y.year, n))
		}
		return n + 1
	}
	if leap != 0 && n > leap {
		return n + 1
	}
	return n
}

// Months returns the 12 or 13 months of y in calendar order.
func (y Year) Months() []Month {
	leap := leapMonthOf(y.year)
	months := make([]Month, 0, 13)
	for n := 1; n <= 12; n++ {
		months = append(months, Month{number: uint8(n)})
		if n == leap {
			months = append(months, Month{number: uint8(n), leap: true})
		}
	}
	return months
}

// TotalDays returns the number of days in y: 353..355 for a common year and
// 383..385 for a leap year.
func (y Year) TotalDays() int {
	total := 0
	for _, m := range y.Months() {
		total += y.daysIn(m)
	}
	return total
}

// NewYearsDay returns the Gregorian date of the first day of y.
func (y Year) NewYearsDay() SolarDate {
	return SolarDate{year: y.year, month: time.January, day: 1}.AddDays(newYearOffset(y.year))
}

// String returns y written digit by digit in Chinese, e.g. "二〇〇八".
func (y Year) String() string { return chineseDigits(y.year) }
