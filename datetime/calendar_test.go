// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"errors"
	"testing"
	"time"

	"cloudeng.io/veeks/datetime"
)

func ncd(t *testing.T, year, month, day int) datetime.CalendarDate {
	t.Helper()
	cd, err := datetime.NewCalendarDate(year, datetime.Month(month), day)
	if err != nil {
		t.Fatalf("%04d-%02d-%02d: %v", year, month, day, err)
	}
	return cd
}

func TestNewCalendarDate(t *testing.T) {
	for _, tc := range []struct {
		year, month, day int
	}{
		{2021, 1, 1},
		{2021, 2, 28},
		{2024, 2, 29},
		{2000, 2, 29},
		{2021, 12, 31},
		{1000, 1, 1},
		{9999, 12, 31},
	} {
		cd, err := datetime.NewCalendarDate(tc.year, datetime.Month(tc.month), tc.day)
		if err != nil {
			t.Errorf("%v: %v", tc, err)
			continue
		}
		if got, want := cd, (datetime.CalendarDate{Year: tc.year, Month: datetime.Month(tc.month), Day: tc.day}); got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}

	for _, tc := range []struct {
		year, month, day int
	}{
		{2021, 2, 29},
		{1900, 2, 29},
		{2021, 2, 30},
		{2021, 4, 31},
		{2021, 0, 1},
		{2021, 13, 1},
		{2021, 1, 0},
		{2021, 1, 32},
	} {
		_, err := datetime.NewCalendarDate(tc.year, datetime.Month(tc.month), tc.day)
		if !errors.Is(err, datetime.ErrInvalidDate) {
			t.Errorf("%v: expected ErrInvalidDate, got %v", tc, err)
		}
	}
}

func TestYearDay(t *testing.T) {
	for _, tc := range []struct {
		cd  datetime.CalendarDate
		day int
	}{
		{ncd(t, 2021, 1, 1), 1},
		{ncd(t, 2021, 1, 31), 31},
		{ncd(t, 2021, 2, 1), 32},
		{ncd(t, 2021, 2, 28), 59},
		{ncd(t, 2021, 3, 1), 60},
		{ncd(t, 2024, 3, 1), 61},
		{ncd(t, 2021, 5, 1), 121},
		{ncd(t, 2021, 12, 25), 359},
		{ncd(t, 2021, 12, 31), 365},
		{ncd(t, 2024, 12, 31), 366},
	} {
		if got, want := tc.cd.YearDay(), tc.day; got != want {
			t.Errorf("%v: got %v, want %v", tc.cd, got, want)
		}
		cd, err := datetime.CalendarDateFromYearDay(tc.cd.Year, tc.day)
		if err != nil {
			t.Errorf("%v: %v", tc.cd, err)
			continue
		}
		if got, want := cd, tc.cd; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		if got, want := cd.YearDay(), tc.cd.Time(time.UTC).YearDay(); got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
	}

	for _, tc := range []struct {
		year, day int
	}{
		{2021, 0},
		{2021, -1},
		{2021, 366},
		{2024, 367},
		{1900, 366},
	} {
		_, err := datetime.CalendarDateFromYearDay(tc.year, tc.day)
		if !errors.Is(err, datetime.ErrInvalidDate) {
			t.Errorf("%v: expected ErrInvalidDate, got %v", tc, err)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := ncd(t, 2024, 2, 29).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	for _, tc := range []datetime.CalendarDate{
		{},
		{Year: 2021},
		{Year: 2021, Month: 13, Day: 1},
		{Year: 2021, Month: 2, Day: 29},
		{Year: 2021, Month: 2, Day: 31},
		{Year: 2021, Month: 4, Day: 0},
	} {
		if err := tc.Validate(); !errors.Is(err, datetime.ErrInvalidDate) {
			t.Errorf("%v: expected ErrInvalidDate, got %v", tc, err)
		}
	}
	for _, m := range []datetime.Month{0, -1, 13} {
		cd := datetime.CalendarDate{Year: 2021, Month: m, Day: 1}
		if got, want := cd.YearDay(), 0; got != want {
			t.Errorf("%v: got %v, want %v", cd, got, want)
		}
	}
}

func TestYearDayAllDays(t *testing.T) {
	for _, year := range []int{1000, 1900, 2000, 2020, 2021, 9999} {
		day := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
		for i := 1; i <= datetime.DaysInYear(year); i++ {
			cd := datetime.CalendarDateFromTime(day)
			if got, want := cd.YearDay(), i; got != want {
				t.Fatalf("%v: got %v, want %v", cd, got, want)
			}
			ycd, err := datetime.CalendarDateFromYearDay(year, i)
			if err != nil {
				t.Fatalf("%v: %v", cd, err)
			}
			if got, want := ycd, cd; got != want {
				t.Fatalf("got %v, want %v", got, want)
			}
			day = day.AddDate(0, 0, 1)
		}
		if got, want := day.Year(), year+1; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestParseCalendarDate(t *testing.T) {
	for _, tc := range []struct {
		input string
		cd    datetime.CalendarDate
	}{
		{"2021-02-28", ncd(t, 2021, 2, 28)},
		{"2024-02-29", ncd(t, 2024, 2, 29)},
		{"1000-01-01", ncd(t, 1000, 1, 1)},
	} {
		cd, err := datetime.ParseCalendarDate(tc.input)
		if err != nil {
			t.Errorf("%v: %v", tc.input, err)
			continue
		}
		if got, want := cd, tc.cd; got != want {
			t.Errorf("%v: got %v, want %v", tc.input, got, want)
		}
		if got, want := cd.String(), tc.input; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		var pcd datetime.CalendarDate
		if err := pcd.Parse(cd.String()); err != nil || pcd != cd {
			t.Errorf("%v: got %v, %v", tc.input, pcd, err)
		}
	}

	for _, tc := range []string{
		"",
		"2021-2-28",
		"2021-02-29",
		"2021/02/28",
		" 2021-02-28",
		"2021-02-28 ",
		"21-02-28",
		"2021-13-01",
	} {
		if _, err := datetime.ParseCalendarDate(tc); !errors.Is(err, datetime.ErrInvalidDate) {
			t.Errorf("%q: expected ErrInvalidDate, got %v", tc, err)
		}
	}
}

func TestCalendarDateTime(t *testing.T) {
	cd := ncd(t, 2021, 2, 28)
	if got, want := cd.Time(time.UTC), time.Date(2021, 2, 28, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	when := time.Date(2021, 12, 25, 23, 59, 59, 0, time.UTC)
	if got, want := datetime.CalendarDateFromTime(when), ncd(t, 2021, 12, 25); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
