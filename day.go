package lunisolar

import "fmt"

// Day is a day of a lunar month, 1..30.
type Day uint8

// NewDay returns day d. Whether the month has that many days is checked when
// a [Date] is built.
func NewDay(d int) (Day, error) {
	if d < 1 || d > 30 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidDay, d)
	}
	return Day(d), nil
}

func (d Day) Int() int { return int(d) }

func (d Day) valid() bool { return d >= 1 && d <= 30 }

// String returns the Chinese name of the day, e.g. "初一", "廿九" or "三十".
func (d Day) String() string {
	if !d.valid() {
		return fmt.Sprintf("Day(%d)", uint8(d))
	}
	return dayNames[d-1]
}
