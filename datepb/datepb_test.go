package datepb

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rabitt1ove/lunisolar"
	"google.golang.org/genproto/googleapis/type/date"
	"google.golang.org/protobuf/proto"
)

func mustSolar(t *testing.T, year int, month time.Month, day int) lunisolar.SolarDate {
	t.Helper()
	s, err := lunisolar.NewSolarDate(year, month, day)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestFromSolar(t *testing.T) {
	got := FromSolar(mustSolar(t, 1986, time.March, 25))
	want := &date.Date{Year: 1986, Month: 3, Day: 25}
	if !proto.Equal(got, want) {
		t.Errorf("FromSolar() = %v, want %v", got, want)
	}
}

func TestToSolar(t *testing.T) {
	tests := []struct {
		name    string
		date    *date.Date
		want    lunisolar.SolarDate
		wantErr error
	}{
		{
			name:    "nil",
			wantErr: ErrPartialDate,
		},
		{
			name:    "year",
			date:    &date.Date{Year: 1986},
			wantErr: ErrPartialDate,
		},
		{
			name:    "month",
			date:    &date.Date{Year: 1986, Month: 3},
			wantErr: ErrPartialDate,
		},
		{
			name:    "overflow",
			date:    &date.Date{Year: 1986, Month: 2, Day: 30},
			wantErr: lunisolar.ErrInvalidSolarDate,
		},
		{
			name: "day",
			date: &date.Date{Year: 1986, Month: 3, Day: 25},
			want: mustSolar(t, 1986, time.March, 25),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToSolar(tt.date)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ToSolar() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ToSolar() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLunisolarRoundTrip(t *testing.T) {
	in := &date.Date{Year: 1993, Month: 4, Day: 22}
	d, err := ToLunisolar(in)
	if err != nil {
		t.Fatal(err)
	}
	if d.Year().Int() != 1993 || d.Month().Number() != 3 || !d.Month().IsLeap() || d.Day().Int() != 1 {
		t.Errorf("ToLunisolar(%v) = %s, want 閏三月初一 of 1993", in, d)
	}
	if out := FromLunisolar(d); !proto.Equal(out, in) {
		t.Errorf("FromLunisolar() = %v, want %v", out, in)
	}
}

func TestToLunisolar_OutOfRange(t *testing.T) {
	_, err := ToLunisolar(&date.Date{Year: 1901, Month: 2, Day: 18})
	if !errors.Is(err, lunisolar.ErrOutOfRange) {
		t.Errorf("ToLunisolar() error = %v, want ErrOutOfRange", err)
	}
}

func TestYearInterval(t *testing.T) {
	tests := []struct {
		name      string
		date      *date.Date
		wantStart *date.Date
		wantEnd   *date.Date
		wantErr   bool
	}{
		{
			name:      "common year",
			date:      &date.Date{Year: 2024},
			wantStart: &date.Date{Year: 2024, Month: 2, Day: 10},
			wantEnd:   &date.Date{Year: 2025, Month: 1, Day: 28},
		},
		{
			name:      "last year",
			date:      &date.Date{Year: 2100, Month: 7, Day: 1},
			wantStart: &date.Date{Year: 2100, Month: 2, Day: 9},
			wantEnd:   &date.Date{Year: 2101, Month: 1, Day: 28},
		},
		{
			name:    "out of range",
			date:    &date.Date{Year: 1900},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotStart, gotEnd, err := YearInterval(tt.date)
			if (err != nil) != tt.wantErr {
				t.Fatalf("YearInterval() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !proto.Equal(gotStart, tt.wantStart) {
				t.Errorf("YearInterval() gotStart = %v, want %v", gotStart, tt.wantStart)
			}
			if !proto.Equal(gotEnd, tt.wantEnd) {
				t.Errorf("YearInterval() gotEnd = %v, want %v", gotEnd, tt.wantEnd)
			}
		})
	}
}

func ExampleToLunisolar() {
	d, err := ToLunisolar(&date.Date{Year: 2024, Month: 2, Day: 10})
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// output: 二〇二四　甲辰、龍年　正月　初一
}
