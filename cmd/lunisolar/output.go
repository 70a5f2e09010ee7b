package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"

	"github.com/rabitt1ove/lunisolar"
	"github.com/rabitt1ove/lunisolar/datepb"
)

type dateRecord struct {
	Solar     json.RawMessage `json:"solar"`
	Lunisolar lunarRecord     `json:"lunisolar"`
}

type lunarRecord struct {
	Year   int    `json:"year"`
	Month  int    `json:"month"`
	Leap   bool   `json:"leap"`
	Day    int    `json:"day"`
	Cyclic string `json:"cyclic"`
	Zodiac string `json:"zodiac"`
	Text   string `json:"text"`
}

type yearRecord struct {
	Year      int             `json:"year"`
	Cyclic    string          `json:"cyclic"`
	Zodiac    string          `json:"zodiac"`
	LeapMonth int             `json:"leap_month,omitempty"`
	NewYear   json.RawMessage `json:"new_year"`
	TotalDays int             `json:"total_days"`
	Months    []monthRecord   `json:"months"`
}

type monthRecord struct {
	Name   string `json:"name"`
	Number int    `json:"number"`
	Leap   bool   `json:"leap,omitempty"`
	Days   int    `json:"days"`
}

type baZiRecord struct {
	dateRecord
	Hour   string `json:"hour"`
	Weight int    `json:"weight"`
}

// solarJSON renders s as a google.type.Date.
func solarJSON(s lunisolar.SolarDate) (json.RawMessage, error) {
	return protojson.Marshal(datepb.FromSolar(s))
}

func (a *app) variant() lunisolar.Variant { return a.cfg.LunisolarVariant() }

func (a *app) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) recordOf(d lunisolar.Date) (dateRecord, error) {
	solar, err := solarJSON(d.Solar())
	if err != nil {
		return dateRecord{}, err
	}
	v := a.variant()
	return dateRecord{
		Solar: solar,
		Lunisolar: lunarRecord{
			Year:   d.Year().Int(),
			Month:  d.Month().Number(),
			Leap:   d.Month().IsLeap(),
			Day:    d.Day().Int(),
			Cyclic: d.Cyclic().String(),
			Zodiac: d.Zodiac().Format(v),
			Text:   d.Format(v),
		},
	}, nil
}

func (a *app) printDate(d lunisolar.Date) error {
	if !a.cfg.JSON() {
		_, err := fmt.Fprintf(a.out, "%s\t%s\n", d.Solar(), d.Format(a.variant()))
		return err
	}
	rec, err := a.recordOf(d)
	if err != nil {
		return err
	}
	return a.writeJSON(rec)
}

func (a *app) printYear(y lunisolar.Year) error {
	v := a.variant()
	rec := yearRecord{
		Year:      y.Int(),
		Cyclic:    y.Cyclic().String(),
		Zodiac:    y.Zodiac().Format(v),
		TotalDays: y.TotalDays(),
	}
	if m, ok := y.LeapMonth(); ok {
		rec.LeapMonth = m.Number()
	}
	for _, m := range y.Months() {
		n, err := y.DaysInMonth(m)
		if err != nil {
			return err
		}
		rec.Months = append(rec.Months, monthRecord{Name: m.Format(v), Number: m.Number(), Leap: m.IsLeap(), Days: n})
	}

	if a.cfg.JSON() {
		newYear, err := solarJSON(y.NewYearsDay())
		if err != nil {
			return err
		}
		rec.NewYear = newYear
		return a.writeJSON(rec)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d %s%s年\n", rec.Year, rec.Cyclic, rec.Zodiac)
	fmt.Fprintf(&b, "new year:   %s\n", y.NewYearsDay())
	if m, ok := y.LeapMonth(); ok {
		fmt.Fprintf(&b, "leap month: %s\n", m.Format(v))
	}
	fmt.Fprintf(&b, "total days: %d\n", rec.TotalDays)
	for _, m := range rec.Months {
		fmt.Fprintf(&b, "  %s\t%d\n", m.Name, m.Days)
	}
	_, err := fmt.Fprint(a.out, b.String())
	return err
}

func (a *app) printBaZi(d lunisolar.Date, hour lunisolar.Branch) error {
	weight := d.BaZiWeight(hour)
	if !a.cfg.JSON() {
		_, err := fmt.Fprintf(a.out, "%s\t%s\t%s時\t%d兩%d錢\n", d.Solar(), d.Format(a.variant()), hour, weight/10, weight%10)
		return err
	}
	rec, err := a.recordOf(d)
	if err != nil {
		return err
	}
	return a.writeJSON(baZiRecord{dateRecord: rec, Hour: hour.String(), Weight: weight})
}
