// Package datepb converts between googleapis/type/date.Date and the solar and
// lunisolar dates of package lunisolar.
package datepb

import (
	"errors"
	"fmt"
	"time"

	"github.com/rabitt1ove/lunisolar"
	"google.golang.org/genproto/googleapis/type/date"
)

// ErrPartialDate is returned when a conversion needs a full date but the
// month or day of the message is zero.
var ErrPartialDate = errors.New("datepb: year, month and day are all required")

func extractYMD(date *date.Date) (year int, month time.Month, day int) {
	y := date.GetYear()
	m := date.GetMonth()
	d := date.GetDay()

	return int(y), time.Month(m), int(d)
}

// FromSolar converts a solar date to a googleapis/type/date.Date.
func FromSolar(s lunisolar.SolarDate) *date.Date {
	return &date.Date{
		Year:  int32(s.Year()),
		Month: int32(s.Month()),
		Day:   int32(s.Day()),
	}
}

// ToSolar converts a full googleapis/type/date.Date to a solar date. Unlike
// time.Date, overflowing values are rejected rather than normalized.
func ToSolar(d *date.Date) (lunisolar.SolarDate, error) {
	year, month, day := extractYMD(d)
	if year == 0 || month == 0 || day == 0 {
		return lunisolar.SolarDate{}, fmt.Errorf("%w: got %04d-%02d-%02d", ErrPartialDate, year, month, day)
	}
	return lunisolar.NewSolarDate(year, month, day)
}

// FromLunisolar returns the Gregorian date of d.
func FromLunisolar(d lunisolar.Date) *date.Date {
	return FromSolar(d.Solar())
}

// ToLunisolar converts a full googleapis/type/date.Date to the lunisolar
// calendar.
func ToLunisolar(d *date.Date) (lunisolar.Date, error) {
	s, err := ToSolar(d)
	if err != nil {
		return lunisolar.Date{}, err
	}
	return lunisolar.FromSolar(s)
}

// YearInterval returns the first and last Gregorian days of the lunisolar
// year named by d's year. Month and day are ignored.
func YearInterval(d *date.Date) (start, end *date.Date, err error) {
	y, err := lunisolar.NewYear(int(d.GetYear()))
	if err != nil {
		return nil, nil, err
	}
	first := y.NewYearsDay()
	return FromSolar(first), FromSolar(first.AddDays(y.TotalDays() - 1)), nil
}

// Today returns the Gregorian date of today in UTC.
func Today() *date.Date {
	return FromSolar(lunisolar.SolarDateOf(time.Now().UTC()))
}
