package lunisolar

import "fmt"

// Month is a lunar month: a number 1..12 and whether it is the leap
// repetition of that month. The zero value is not a valid month.
type Month struct {
	number uint8
	leap   bool
}

// NewMonth returns month number (1..12), the leap month of that number when
// leap is set. Whether a given year has that leap month is checked when a
// [Date] is built.
func NewMonth(number int, leap bool) (Month, error) {
	if number < 1 || number > 12 {
		return Month{}, fmt.Errorf("%w: %d", ErrInvalidMonth, number)
	}
	return Month{number: uint8(number), leap: leap}, nil
}

// Number returns the month number 1..12. A leap month shares the number of
// the month it follows.
func (m Month) Number() int { return int(m.number) }

// IsLeap reports whether m is a leap month.
func (m Month) IsLeap() bool { return m.leap }

func (m Month) valid() bool { return m.number >= 1 && m.number <= 12 }

// String returns the traditional Chinese name, e.g. "正月" or "閏二月".
func (m Month) String() string { return m.Format(Traditional) }
