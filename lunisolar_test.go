package lunisolar

import (
	"errors"
	"sync"
	"testing"
	"time"
)

// d is a test helper to construct times.
func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// sd is a test helper to construct solar dates.
func sd(year int, month time.Month, day int) SolarDate {
	s, err := NewSolarDate(year, month, day)
	if err != nil {
		panic(err)
	}
	return s
}

// ld is a test helper to construct lunisolar dates.
func ld(year, month int, leap bool, day int) Date {
	date, err := NewDate(year, month, leap, day)
	if err != nil {
		panic(err)
	}
	return date
}

func TestFromSolar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		solar     SolarDate
		solarYear int
		year      int
		month     int
		leap      bool
		day       int
	}{
		{"before new year", sd(1993, time.January, 12), 1993, 1992, 12, false, 20},
		{"new year", sd(1993, time.January, 23), 1993, 1993, 1, false, 1},
		{"leap month", sd(1993, time.April, 22), 1993, 1993, 3, true, 1},
		{"after leap month", sd(1993, time.December, 12), 1993, 1993, 10, false, 29},
		{"midsummer", sd(1993, time.August, 10), 1993, 1993, 6, false, 23},
		{"first supported day", sd(1901, time.February, 19), 1901, 1901, 1, false, 1},
		{"last supported day", sd(2101, time.January, 28), 2101, 2100, 12, false, 29},
		{"dragon new year", sd(2024, time.February, 10), 2024, 2024, 1, false, 1},
		{"eve of 2025", sd(2025, time.January, 28), 2025, 2024, 12, false, 29},
		{"leap second month", sd(2023, time.March, 22), 2023, 2023, 2, true, 1},
		{"leap fourth month", sd(2020, time.May, 23), 2020, 2020, 4, true, 1},
		{"leap eleventh month", sd(2033, time.December, 22), 2033, 2033, 11, true, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromSolar(tt.solar)
			if err != nil {
				t.Fatalf("FromSolar(%s) error: %v", tt.solar, err)
			}
			if got.SolarYear() != tt.solarYear || got.Year().Int() != tt.year ||
				got.Month().Number() != tt.month || got.Month().IsLeap() != tt.leap || got.Day().Int() != tt.day {
				t.Errorf("FromSolar(%s) = (%d, %d, %d, %v, %d), want (%d, %d, %d, %v, %d)", tt.solar,
					got.SolarYear(), got.Year().Int(), got.Month().Number(), got.Month().IsLeap(), got.Day().Int(),
					tt.solarYear, tt.year, tt.month, tt.leap, tt.day)
			}
			if back := got.Solar(); back != tt.solar {
				t.Errorf("FromSolar(%s).Solar() = %s", tt.solar, back)
			}
		})
	}
}

func TestFromSolar_OutOfRange(t *testing.T) {
	t.Parallel()

	for _, s := range []SolarDate{
		sd(1901, time.February, 18),
		sd(2101, time.January, 29),
		sd(1900, time.June, 1),
		sd(2200, time.January, 1),
	} {
		if _, err := FromSolar(s); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("FromSolar(%s) error = %v, want ErrOutOfRange", s, err)
		}
	}
}

func TestFromTime_UsesLocation(t *testing.T) {
	t.Parallel()

	cst := time.FixedZone("CST", 8*60*60)
	// 2024-02-09 20:00 UTC is already 2024-02-10 in China.
	utc := time.Date(2024, time.February, 9, 20, 0, 0, 0, time.UTC)

	eve, err := FromTime(utc)
	if err != nil {
		t.Fatal(err)
	}
	if eve.Month().Number() != 12 || eve.Day().Int() != 30 {
		t.Errorf("FromTime(UTC) = %s, want 臘月三十", eve)
	}

	newYear, err := FromTime(utc.In(cst))
	if err != nil {
		t.Fatal(err)
	}
	if newYear.Month().Number() != 1 || newYear.Day().Int() != 1 {
		t.Errorf("FromTime(CST) = %s, want 正月初一", newYear)
	}
}

func TestNewDate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		year  int
		month int
		leap  bool
		day   int
		want  error
	}{
		{"year before range", 1900, 1, false, 1, ErrOutOfRange},
		{"year after range", 2101, 1, false, 1, ErrOutOfRange},
		{"month zero", 2024, 0, false, 1, ErrInvalidMonth},
		{"month thirteen", 2024, 13, false, 1, ErrInvalidMonth},
		{"leap month in common year", 2024, 4, true, 1, ErrInvalidMonth},
		{"wrong leap month", 2023, 3, true, 1, ErrInvalidMonth},
		{"day zero", 2024, 1, false, 0, ErrInvalidDay},
		{"day thirty-one", 2024, 1, false, 31, ErrInvalidDay},
		{"day thirty of short month", 2024, 1, false, 30, ErrInvalidDay},
		{"day thirty of short leap month", 2023, 2, true, 30, ErrInvalidDay},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDate(tt.year, tt.month, tt.leap, tt.day)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewDate(%d, %d, %v, %d) error = %v, want %v", tt.year, tt.month, tt.leap, tt.day, err, tt.want)
			}
		})
	}
}

func TestDateOf_ZeroValues(t *testing.T) {
	t.Parallel()

	y, _ := NewYear(2024)
	m, _ := NewMonth(1, false)
	day, _ := NewDay(1)

	if _, err := DateOf(Year{}, m, day); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("zero Year: error = %v, want ErrOutOfRange", err)
	}
	if _, err := DateOf(y, Month{}, day); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("zero Month: error = %v, want ErrInvalidMonth", err)
	}
	if _, err := DateOf(y, m, 0); !errors.Is(err, ErrInvalidDay) {
		t.Errorf("zero Day: error = %v, want ErrInvalidDay", err)
	}
}

func TestToSolar(t *testing.T) {
	t.Parallel()

	got, err := ToSolar(1993, 6, false, 23)
	if err != nil {
		t.Fatal(err)
	}
	if want := sd(1993, time.August, 10); got != want {
		t.Errorf("ToSolar(1993, 6, false, 23) = %s, want %s", got, want)
	}
	if _, err := ToSolar(1993, 6, true, 1); !errors.Is(err, ErrInvalidMonth) {
		t.Errorf("ToSolar with missing leap month: error = %v", err)
	}
}

func TestRange(t *testing.T) {
	t.Parallel()

	if got, want := MinDate(), sd(1901, time.February, 19); got != want {
		t.Errorf("MinDate() = %s, want %s", got, want)
	}
	if got, want := MaxDate(), sd(2101, time.January, 28); got != want {
		t.Errorf("MaxDate() = %s, want %s", got, want)
	}
	if !InRange(MinDate()) || !InRange(MaxDate()) {
		t.Error("range bounds should be in range")
	}
	if InRange(MinDate().AddDays(-1)) || InRange(MaxDate().AddDays(1)) {
		t.Error("days outside the bounds should not be in range")
	}
}

// Every day in the window converts to a lunisolar date and back, and
// consecutive days advance the lunisolar date by exactly one day.
func TestRoundTrip_Exhaustive(t *testing.T) {
	t.Parallel()

	var prev Date
	count := 0
	for s := MinDate(); !s.After(MaxDate()); s = s.AddDays(1) {
		got, err := FromSolar(s)
		if err != nil {
			t.Fatalf("FromSolar(%s) error: %v", s, err)
		}
		if back := got.Solar(); back != s {
			t.Fatalf("FromSolar(%s).Solar() = %s", s, back)
		}
		if got.SolarYear() != s.Year() {
			t.Fatalf("FromSolar(%s).SolarYear() = %d", s, got.SolarYear())
		}
		if count > 0 {
			if got.Compare(prev) != 1 || prev.Compare(got) != -1 {
				t.Fatalf("%s (%s) does not follow %s", s, got, prev)
			}
			if got.Day() != 1 && got.Day() != prev.Day()+1 {
				t.Fatalf("%s: day %d follows day %d", s, got.Day(), prev.Day())
			}
			if got.Day() == 1 && prev != prev.MonthEnd() {
				t.Fatalf("%s: month starts after %s, which does not end its month", s, prev)
			}
		}
		prev = got
		count++
	}
	// 1901-02-19 through 2101-01-28 inclusive.
	if count != 73028 {
		t.Errorf("converted %d days, want 73028", count)
	}
}

func TestDate_Compare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b Date
		want int
	}{
		{"equal", ld(2023, 2, true, 1), ld(2023, 2, true, 1), 0},
		{"leap month after its parent", ld(2023, 2, false, 30), ld(2023, 2, true, 1), -1},
		{"leap month before the next month", ld(2023, 2, true, 29), ld(2023, 3, false, 1), -1},
		{"later year", ld(2024, 1, false, 1), ld(2023, 12, false, 30), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("%s.Compare(%s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("%s.Compare(%s) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestDate_DayOfYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date Date
		want int
	}{
		{ld(2024, 1, false, 1), 1},
		{ld(2023, 2, true, 1), 60},
		{ld(1993, 3, true, 1), 90},
		{ld(2020, 4, true, 1), 120},
		{ld(2100, 12, false, 29), 354},
		{ld(1992, 12, false, 20), 344},
	}
	for _, tt := range tests {
		if got := tt.date.DayOfYear(); got != tt.want {
			t.Errorf("%s.DayOfYear() = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDate_AddDays(t *testing.T) {
	t.Parallel()

	got, err := ld(2024, 12, false, 29).AddDays(1)
	if err != nil {
		t.Fatal(err)
	}
	if want := ld(2025, 1, false, 1); got != want {
		t.Errorf("臘月廿九 + 1 = %s, want %s", got, want)
	}

	back, err := got.AddDays(-1)
	if err != nil {
		t.Fatal(err)
	}
	if want := ld(2024, 12, false, 29); back != want {
		t.Errorf("正月初一 - 1 = %s, want %s", back, want)
	}

	if _, err := ld(2100, 12, false, 29).AddDays(1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("AddDays past the end: error = %v, want ErrOutOfRange", err)
	}
	if _, err := ld(1901, 1, false, 1).AddDays(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("AddDays before the start: error = %v, want ErrOutOfRange", err)
	}
}

func TestNewSolarDate_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		year  int
		month time.Month
		day   int
	}{
		{"month zero", 2024, 0, 1},
		{"month thirteen", 2024, 13, 1},
		{"day zero", 2024, time.January, 0},
		{"February 29 of a common year", 2023, time.February, 29},
		{"February 29 of 1900", 1900, time.February, 29},
		{"April 31", 2024, time.April, 31},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSolarDate(tt.year, tt.month, tt.day); !errors.Is(err, ErrInvalidSolarDate) {
				t.Errorf("NewSolarDate(%d, %d, %d) error = %v, want ErrInvalidSolarDate", tt.year, tt.month, tt.day, err)
			}
		})
	}

	if _, err := NewSolarDate(2000, time.February, 29); err != nil {
		t.Errorf("2000-02-29 should be valid: %v", err)
	}
}

func TestSolarDate_DayOfYear(t *testing.T) {
	t.Parallel()

	tests := []struct {
		date SolarDate
		want int
	}{
		{sd(2023, time.January, 1), 1},
		{sd(2023, time.March, 1), 60},
		{sd(2024, time.March, 1), 61},
		{sd(2024, time.December, 31), 366},
	}
	for _, tt := range tests {
		if got := tt.date.DayOfYear(); got != tt.want {
			t.Errorf("%s.DayOfYear() = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestCalendar_Location(t *testing.T) {
	t.Parallel()

	cal := New()
	cal.SetLocation(time.FixedZone("CST", 8*60*60))

	got, err := cal.Convert(time.Date(2024, time.February, 9, 20, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatal(err)
	}
	if want := ld(2024, 1, false, 1); got != want {
		t.Errorf("Convert = %s, want %s", got, want)
	}

	cal.SetLocation(nil)
	if cal.Location() != nil {
		t.Error("SetLocation(nil) should clear the location")
	}
}

func TestCalendar_Format(t *testing.T) {
	t.Parallel()

	cal := New()
	cal.SetVariant(Simplified)
	got, err := cal.Format(d(2025, time.January, 28))
	if err != nil {
		t.Fatal(err)
	}
	if want := "二〇二四　甲辰、龙年　腊月　廿九"; got != want {
		t.Errorf("Format = %q, want %q", got, want)
	}

	if _, err := cal.Format(d(1901, time.January, 1)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Format before range: error = %v", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	cal := New()
	var wg sync.WaitGroup

	for i := 0; i < 100; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := cal.Convert(d(1950+i, time.June, 1)); err != nil {
				t.Error(err)
			}
			MinDate()
			MaxDate()
		}()
	}

	for i := 0; i < 50; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			cal.SetVariant(Variant(i % 2))
			cal.SetLocation(time.FixedZone("", i*60*60%(12*60*60)))
		}()
	}

	wg.Wait()
}
