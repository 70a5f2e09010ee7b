// Package lunisolar converts between the Gregorian calendar and the Chinese
// lunisolar calendar (農曆) for dates from 1901-02-19 to 2101-01-28.
//
// Month lengths, leap months and new-year dates are compiled into this
// package as compact tables generated by cmd/genlunisolar. Conversions are
// pure table lookups: no I/O, no allocation beyond small slices, and no
// astronomical computation at run time.
//
// Basic usage with package-level functions:
//
//	d, _ := lunisolar.FromTime(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))
//	d.String()  // "二〇二四　甲辰、龍年　正月　初一"
//
//	d, _ = lunisolar.NewDate(1993, 3, true, 1) // 閏三月初一
//	d.Solar()   // 1993-04-22
//
// A Calendar interprets time.Time values in a fixed location, so that a
// moment maps to the same calendar day wherever it was recorded:
//
//	cal := lunisolar.New()
//	cal.SetLocation(time.FixedZone("CST", 8*60*60))
//	d, _ = cal.Convert(t)
package lunisolar

import (
	"sync"
	"time"
)

// Calendar converts time.Time values using a configured location and
// rendering variant. Create one with [New]. All methods are safe for
// concurrent use.
type Calendar struct {
	mu      sync.RWMutex
	loc     *time.Location
	variant Variant
}

// New creates a Calendar that reads each time.Time in its own location and
// renders traditional characters.
func New() *Calendar {
	return &Calendar{variant: Traditional}
}

// defaultCal is the package-level calendar used by top-level functions.
var defaultCal = New()

// SetLocation makes c read every time.Time in loc. A nil loc restores the
// default of using each value's own location.
func (c *Calendar) SetLocation(loc *time.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loc = loc
}

// SetVariant selects the characters used by [Calendar.Format].
func (c *Calendar) SetVariant(v Variant) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.variant = v
}

// Location returns the configured location, or nil if none is set.
func (c *Calendar) Location() *time.Location {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loc
}

func (c *Calendar) Variant() Variant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.variant
}

func (c *Calendar) solarDateOf(t time.Time) SolarDate {
	if loc := c.Location(); loc != nil {
		t = t.In(loc)
	}
	return SolarDateOf(t)
}

// Convert returns the lunisolar date of t.
func (c *Calendar) Convert(t time.Time) (Date, error) {
	return FromSolar(c.solarDateOf(t))
}

// Format returns the lunisolar date of t rendered in c's variant.
func (c *Calendar) Format(t time.Time) (string, error) {
	d, err := c.Convert(t)
	if err != nil {
		return "", err
	}
	return d.Format(c.Variant()), nil
}

// Today returns the lunisolar date of the current day.
func (c *Calendar) Today() (Date, error) {
	return c.Convert(time.Now())
}

// --- Package-level convenience functions ---

// ToSolar converts a lunisolar date given by its parts to the Gregorian
// calendar.
func ToSolar(year, month int, leap bool, day int) (SolarDate, error) {
	d, err := NewDate(year, month, leap, day)
	if err != nil {
		return SolarDate{}, err
	}
	return d.Solar(), nil
}

// Today returns the lunisolar date of the current day in the local time zone.
func Today() (Date, error) { return defaultCal.Today() }
