// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// CalendarDate represents a date with a year, month and day. Values
// returned by the constructors in this package always refer to a date
// that exists in the proleptic Gregorian calendar.
type CalendarDate struct {
	Year  int
	Month Month
	Day   int
}

// NewCalendarDate returns the CalendarDate for year, month and day,
// or ErrInvalidDate if there is no such date, eg. Feb 29 in a non-leap year.
func NewCalendarDate(year int, month Month, day int) (CalendarDate, error) {
	if !month.Valid() {
		return CalendarDate{}, fmt.Errorf("month %d: %w", month, ErrInvalidDate)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return CalendarDate{}, fmt.Errorf("day %d of %v %d: %w", day, month, year, ErrInvalidDate)
	}
	return CalendarDate{Year: year, Month: month, Day: day}, nil
}

// CalendarDateFromYearDay returns the CalendarDate for the 1-based ordinal
// day of the specified year. Days outside of 1-365, or 1-366 for leap years,
// return ErrInvalidDate.
func CalendarDateFromYearDay(year, day int) (CalendarDate, error) {
	if day < 1 || day > DaysInYear(year) {
		return CalendarDate{}, fmt.Errorf("day %d of year %d: %w", day, year, ErrInvalidDate)
	}
	_, perMonth := tablesForYear(year)
	for month := 0; month < 12; month++ {
		if day <= perMonth[month] {
			return CalendarDate{Year: year, Month: Month(month + 1), Day: day}, nil
		}
		day -= perMonth[month]
	}
	panic("unreachable")
}

// CalendarDateFromTime returns the CalendarDate for t in t's location.
func CalendarDateFromTime(t time.Time) CalendarDate {
	return CalendarDate{Year: t.Year(), Month: Month(t.Month()), Day: t.Day()}
}

// Validate returns ErrInvalidDate if cd does not refer to a date that
// exists, eg. a zero value or Feb 30, as may be the case for a
// CalendarDate created without using NewCalendarDate.
func (cd CalendarDate) Validate() error {
	_, err := NewCalendarDate(cd.Year, cd.Month, cd.Day)
	return err
}

// YearDay returns the 1-based ordinal day of the year for cd. It returns
// 0 if cd's month is invalid. Call Validate first for dates that
// were not created by this package.
func (cd CalendarDate) YearDay() int {
	if !cd.Month.Valid() {
		return 0
	}
	cumulative, _ := tablesForYear(cd.Year)
	return cumulative[cd.Month-1] + cd.Day
}

// Time returns midnight at the start of cd in the specified location.
func (cd CalendarDate) Time(loc *time.Location) time.Time {
	return time.Date(cd.Year, time.Month(cd.Month), cd.Day, 0, 0, 0, 0, loc)
}

// String returns cd in YYYY-MM-DD format.
func (cd CalendarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", cd.Year, cd.Month, cd.Day)
}

var calendarDateRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// ParseCalendarDate parses a date in YYYY-MM-DD format and validates
// that the date exists.
func ParseCalendarDate(val string) (CalendarDate, error) {
	m := calendarDateRe.FindStringSubmatch(val)
	if m == nil {
		return CalendarDate{}, fmt.Errorf("%q, expected YYYY-MM-DD: %w", val, ErrInvalidDate)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	return NewCalendarDate(year, Month(month), day)
}

// Parse parses val as per ParseCalendarDate.
func (cd *CalendarDate) Parse(val string) error {
	d, err := ParseCalendarDate(val)
	if err != nil {
		return err
	}
	*cd = d
	return nil
}
