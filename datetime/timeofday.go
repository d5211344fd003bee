// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// SecondsPerDay is the number of seconds in a day, leap seconds are
// not supported.
const SecondsPerDay = 24 * 60 * 60

// TimeOfDay represents a time of day.
type TimeOfDay uint32

// NewTimeOfDay creates a new TimeOfDay from the specified hour, minute and second.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay(hour<<16 | minute<<8 | second)
}

// TimeOfDayFromSeconds returns the TimeOfDay that is secs seconds after
// midnight. It returns ErrInvalidTimeOfDay unless secs is in the range 0-86399.
func TimeOfDayFromSeconds(secs int) (TimeOfDay, error) {
	if secs < 0 || secs >= SecondsPerDay {
		return 0, fmt.Errorf("%d seconds since midnight: %w", secs, ErrInvalidTimeOfDay)
	}
	return NewTimeOfDay(secs/3600, (secs%3600)/60, secs%60), nil
}

// TimeOfDayFromTime returns a TimeOfDay from the specified time.Time.
func TimeOfDayFromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) Hour() int {
	return int(t >> 16)
}

func (t TimeOfDay) Minute() int {
	return int(t >> 8 & 0xff)
}

func (t TimeOfDay) Second() int {
	return int(t & 0xff)
}

// SecondsFromMidnight returns the number of seconds since midnight.
func (t TimeOfDay) SecondsFromMidnight() int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// Duration returns the time.Duration for the TimeOfDay.
func (t TimeOfDay) Duration() time.Duration {
	return time.Duration(t.SecondsFromMidnight()) * time.Second
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, c := range s {
		if c > unicode.MaxASCII || !unicode.IsDigit(c) {
			return false
		}
	}
	return true
}

func parseField(name, v string, limit int) (int, error) {
	if !isDigits(v) {
		return 0, fmt.Errorf("invalid %s: %q: %w", name, v, ErrInvalidTimeOfDay)
	}
	n, err := strconv.Atoi(v)
	if err != nil || n > limit {
		return 0, fmt.Errorf("invalid %s: %q: %w", name, v, ErrInvalidTimeOfDay)
	}
	return n, nil
}

// Parse val in formats '08:12[:10]'.
func (t *TimeOfDay) Parse(val string) error {
	if len(val) == 0 {
		return fmt.Errorf("empty value, expected '08:12[:10]': %w", ErrInvalidTimeOfDay)
	}
	parts := strings.Split(val, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return fmt.Errorf("invalid format %q, expected '08:12[:10]': %w", val, ErrInvalidTimeOfDay)
	}
	if len(parts) == 2 {
		parts = append(parts, "0")
	}
	hour, err := parseField("hour", parts[0], 23)
	if err != nil {
		return err
	}
	minute, err := parseField("minute", parts[1], 59)
	if err != nil {
		return err
	}
	sec, err := parseField("second", parts[2], 59)
	if err != nil {
		return err
	}
	*t = NewTimeOfDay(hour, minute, sec)
	return nil
}

// ParseTimeOfDay is like TimeOfDay.Parse.
func ParseTimeOfDay(val string) (TimeOfDay, error) {
	var t TimeOfDay
	err := t.Parse(val)
	return t, err
}
