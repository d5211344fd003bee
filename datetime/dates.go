// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datetime provides a minimal proleptic Gregorian calendar: validated
// calendar dates, ordinal days of the year and times of day.
package datetime

import (
	"errors"
	"time"
)

var (
	// ErrInvalidDate is returned for dates that do not exist in the
	// proleptic Gregorian calendar, eg. Feb 30 or day 366 of 2021.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTimeOfDay is returned for times of day outside of
	// 00:00:00 to 23:59:59.
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)

var (
	daysInMonth     = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	daysInMonthLeap = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	// days preceding the first of each month, ie. [0, 31, 59, ...]
	dayOfYear     = daysBeforeMonth(daysInMonth)
	dayOfYearLeap = daysBeforeMonth(daysInMonthLeap)
)

func daysBeforeMonth(perMonth [12]int) [12]int {
	var before [12]int
	for m := 1; m < 12; m++ {
		before[m] = before[m-1] + perMonth[m-1]
	}
	return before
}

// Month as an int, January is 1.
type Month time.Month

func (m Month) String() string {
	return time.Month(m).String()
}

// Valid returns true if m is in the range 1-12.
func (m Month) Valid() bool {
	return m >= 1 && m <= 12
}

// IsLeap returns true if the given year is a leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && year%100 != 0 || year%400 == 0
}

// DaysInFeb returns the number of days in February for the given year.
func DaysInFeb(year int) int {
	if IsLeap(year) {
		return 29
	}
	return 28
}

// DaysInMonth returns the number of days in the given month for the given year.
// It returns 0 for an invalid month.
func DaysInMonth(year int, month Month) int {
	if !month.Valid() {
		return 0
	}
	if IsLeap(year) {
		return daysInMonthLeap[month-1]
	}
	return daysInMonth[month-1]
}

// DaysInYear returns 366 for leap years and 365 otherwise.
func DaysInYear(year int) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

func tablesForYear(year int) (cumulative, perMonth []int) {
	if IsLeap(year) {
		return dayOfYearLeap[:], daysInMonthLeap[:]
	}
	return dayOfYear[:], daysInMonth[:]
}
