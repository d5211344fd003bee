// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package veekdate provides support for veek-dates, a decimal friendly
// notation for calendar dates. A year is divided into 7 day veeks counted
// from the first day of the year rather than aligned to any weekday.
//
// The text format is fixed at 12 characters:
//
//	YYYYc VVv Dd
//
// with a 4 digit year followed by the unit c (common era) and a space,
// a 2 digit veek, 01v to 53v, followed by a space and a single digit
// day within the veek, 1d to 7d. For example, Feb 28, 2021 is
// the 59th day of the year and is written as 2021c 09v 3d.
package veekdate

import (
	"errors"
	"fmt"
	"math"
	"time"

	"cloudeng.io/veeks/datetime"
)

// ErrInvalid is returned, possibly wrapped, for all values that do not
// represent a valid veek-date.
var ErrInvalid = errors.New("invalid veek-date")

const (
	MinYear = 1000
	MaxYear = 9999
	MaxVeek = 53
	MaxDay  = 7

	// TextLength is the length of the text format of a veek-date.
	TextLength = 12
)

// VeekDate represents a year, veek and day within the veek. The zero value
// is not a valid veek-date.
type VeekDate struct {
	year, veek, day int
}

// FromYearVeekDay returns a VeekDate for the specified year (1000-9999),
// veek (1-53) and day (1-7). Only the ranges are checked, a value that
// does not exist in the calendar, eg. veek 53 day 7, is accepted here
// and rejected by CalendarDate.
func FromYearVeekDay(year, veek, day int) (VeekDate, error) {
	if year < MinYear || year > MaxYear {
		return VeekDate{}, fmt.Errorf("year %d out of range: %w", year, ErrInvalid)
	}
	if veek < 1 || veek > MaxVeek {
		return VeekDate{}, fmt.Errorf("veek %d out of range: %w", veek, ErrInvalid)
	}
	if day < 1 || day > MaxDay {
		return VeekDate{}, fmt.Errorf("day %d out of range: %w", day, ErrInvalid)
	}
	return VeekDate{year: year, veek: veek, day: day}, nil
}

// FromYearDay returns the VeekDate for the 1-based ordinal day of the year.
func FromYearDay(year, ordinal int) (VeekDate, error) {
	// The 0.1 offset maps day 7 to veek 1 day 7 rather than veek 2 day 0.
	o := float64(ordinal) - 0.1
	veek := int(math.Floor(o/7)) + 1
	day := int(math.Round(math.Mod(o, 7)))
	return FromYearVeekDay(year, veek, day)
}

// FromCalendarDate returns the VeekDate for cd. It returns an error if cd
// does not exist in the calendar, eg. datetime.CalendarDate{2021, 2, 31}.
func FromCalendarDate(cd datetime.CalendarDate) (VeekDate, error) {
	if err := cd.Validate(); err != nil {
		return VeekDate{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return FromYearDay(cd.Year, cd.YearDay())
}

// FromYearMonthDay returns the VeekDate for the specified calendar date.
// It returns an error if the date does not exist, eg. Feb 30.
func FromYearMonthDay(year, month, day int) (VeekDate, error) {
	return FromCalendarDate(datetime.CalendarDate{Year: year, Month: datetime.Month(month), Day: day})
}

// FromTime returns the VeekDate for the date of t in t's location.
func FromTime(t time.Time) (VeekDate, error) {
	return FromCalendarDate(datetime.CalendarDateFromTime(t))
}

func (v VeekDate) Year() int {
	return v.year
}

func (v VeekDate) Veek() int {
	return v.veek
}

func (v VeekDate) Day() int {
	return v.day
}

// YearDay returns the ordinal day of the year that v refers to. It may
// exceed the number of days in the year.
func (v VeekDate) YearDay() int {
	return (v.veek-1)*7 + v.day
}

// IsZero returns true for the zero value.
func (v VeekDate) IsZero() bool {
	return v == VeekDate{}
}

// CalendarDate returns the calendar date for v. It returns an error if
// the veek and day refer to a day beyond the end of the year, eg.
// 2021c 53v 2d.
func (v VeekDate) CalendarDate() (datetime.CalendarDate, error) {
	cd, err := datetime.CalendarDateFromYearDay(v.year, v.YearDay())
	if err != nil {
		return datetime.CalendarDate{}, fmt.Errorf("%v: %w: %w", v, ErrInvalid, err)
	}
	return cd, nil
}

// Time returns midnight at the start of v in the specified location.
func (v VeekDate) Time(loc *time.Location) (time.Time, error) {
	cd, err := v.CalendarDate()
	if err != nil {
		return time.Time{}, err
	}
	return cd.Time(loc), nil
}

// String returns v in the 12 character veek-date format.
func (v VeekDate) String() string {
	return fmt.Sprintf("%04dc %02dv %01dd", v.year, v.veek, v.day)
}

// Format returns the veek-date text for cd, or an empty string if
// cd does not exist or its year is outside of 1000-9999.
func Format(cd datetime.CalendarDate) string {
	v, err := FromCalendarDate(cd)
	if err != nil {
		return ""
	}
	return v.String()
}
