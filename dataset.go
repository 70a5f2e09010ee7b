package lunisolar

import "fmt"

// The generated tables in dataset_data.go hold one entry per lunisolar year
// from datasetFirstYear to datasetLastYear. The last row is a sentinel: only
// its new-year offset is consulted, for solar dates in January of that year
// that still belong to the previous lunisolar year.
const (
	datasetFirstYear = 1901
	datasetLastYear  = 2101
)

const datasetRows = datasetLastYear - datasetFirstYear + 1

// The generated tables must have one row per dataset year; a mismatch is a
// compile error.
var (
	_ [datasetRows]struct{}           = [len(bigMonths)]struct{}{}
	_ [datasetRows]struct{}           = [len(newYearOffsets)]struct{}{}
	_ [(datasetRows + 1) / 2]struct{} = [len(leapMonths)]struct{}{}
)

func checkDatasetYear(year int) {
	if year < datasetFirstYear || year > datasetLastYear {
		panic(fmt.Sprintf("lunisolar: year %d outside dataset %d..%d", year, datasetFirstYear, datasetLastYear))
	}
}

// leapMonthOf returns the leap month number of year, or 0 if it has none.
// Two years share a byte; the odd year is in the high nibble.
func leapMonthOf(year int) int {
	checkDatasetYear(year)
	b := leapMonths[(year-datasetFirstYear)/2]
	if year%2 == 1 {
		return int(b >> 4)
	}
	return int(b & 0x0f)
}

// newYearOffset returns the number of days from January 1 of year to the
// first day of its first lunar month.
func newYearOffset(year int) int {
	checkDatasetYear(year)
	return int(newYearOffsets[year-datasetFirstYear])
}

// isBigMonth reports whether the month at 1-based calendar position slot of
// year has 30 days. Slots count the leap month, so a leap year has 13.
func isBigMonth(year, slot int) bool {
	checkDatasetYear(year)
	return bigMonths[year-datasetFirstYear]&(0x8000>>(slot-1)) != 0
}
