// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime_test

import (
	"testing"

	"cloudeng.io/veeks/datetime"
)

func TestLeapYears(t *testing.T) {
	for _, tc := range []struct {
		year int
		leap bool
	}{
		{1900, false},
		{2000, true},
		{2020, true},
		{2021, false},
		{2024, true},
		{2100, false},
		{2400, true},
	} {
		if got, want := datetime.IsLeap(tc.year), tc.leap; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		days, feb := 365, 28
		if tc.leap {
			days, feb = 366, 29
		}
		if got, want := datetime.DaysInYear(tc.year), days; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		if got, want := datetime.DaysInMonth(tc.year, 2), feb; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
		total := 0
		for m := datetime.Month(1); m <= 12; m++ {
			total += datetime.DaysInMonth(tc.year, m)
		}
		if got, want := total, days; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
	if got, want := datetime.DaysInMonth(2021, 13), 0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := datetime.Month(2).String(), "February"; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}
