package lunisolar

import (
	"sync"
	"time"
)

// Supported lunisolar years. Every day from the first day of MinYear to the
// last day of MaxYear can be converted in both directions.
const (
	MinYear = datasetFirstYear
	MaxYear = datasetLastYear - 1
)

// window is derived from the dataset on first use and read-only afterwards.
var window = sync.OnceValues(func() (SolarDate, SolarDate) {
	first := Year{year: MinYear}.NewYearsDay()
	jan1 := SolarDate{year: datasetLastYear, month: time.January, day: 1}
	last := jan1.AddDays(newYearOffset(datasetLastYear) - 1)
	return first, last
})

// MinDate returns the first convertible solar date, 1901-02-19.
func MinDate() SolarDate {
	first, _ := window()
	return first
}

// MaxDate returns the last convertible solar date, 2101-01-28.
func MaxDate() SolarDate {
	_, last := window()
	return last
}

// InRange reports whether s lies within [MinDate, MaxDate].
func InRange(s SolarDate) bool {
	first, last := window()
	return s.inRange(first, last)
}
