// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package deciday converts times of day to and from decimal fractions of
// a day. A milliday (md) is 1/1000 of a day, 86.4 seconds. A microday (μd)
// is 1/10000 of a day, 0.0864 seconds, and is intended for short
// durations such as race times.
//
// Text values are a decimal number immediately followed by the unit,
// eg. 563md, 560.0md or 110μd.
package deciday

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/veeks/datetime"
)

// ErrInvalid is returned, possibly wrapped, for values that are not
// valid millidays or microdays.
var ErrInvalid = errors.New("invalid decimal day value")

const (
	SecondsPerMilliday = 86.4
	SecondsPerMicroday = 0.0864

	MillidaysSuffix = "md"
	MicrodaysSuffix = "μd"
)

var (
	millidaysRe = regexp.MustCompile(`^\d*(\.\d+)?md$`)
	microdaysRe = regexp.MustCompile(`^\d*(\.\d+)?μd$`)
	secondsRe   = regexp.MustCompile(`^\d*(\.\d+)?$`)
)

// Millidays returns the unrounded number of millidays since midnight for tod.
// Callers should round the value before displaying it.
func Millidays(tod datetime.TimeOfDay) float64 {
	return float64(tod.SecondsFromMidnight()) / SecondsPerMilliday
}

// MillidaysFromTime returns the unrounded number of millidays since
// midnight for t in t's location.
func MillidaysFromTime(t time.Time) float64 {
	return Millidays(datetime.TimeOfDayFromTime(t))
}

// FormatMillidays returns the millidays for tod rounded to the nearest
// milliday, eg. 563md for 13:30:00.
func FormatMillidays(tod datetime.TimeOfDay) string {
	return formatRounded(Millidays(tod), MillidaysSuffix)
}

// FormatMillidaysFromTime is like FormatMillidays for a time.Time.
func FormatMillidaysFromTime(t time.Time) string {
	return FormatMillidays(datetime.TimeOfDayFromTime(t))
}

// FormatMicrodays returns v rounded to the nearest microday, eg. 111μd.
func FormatMicrodays(v float64) string {
	return formatRounded(v, MicrodaysSuffix)
}

func formatRounded(v float64, suffix string) string {
	return strconv.FormatFloat(math.Round(v), 'f', -1, 64) + suffix
}

// MillidaysToTimeOfDay returns the time of day for v millidays after
// midnight, rounded to the nearest second. It returns an error for values
// that are negative or that round to 24:00:00 or later.
func MillidaysToTimeOfDay(v float64) (datetime.TimeOfDay, error) {
	secs := math.Round(v * SecondsPerMilliday)
	if math.IsNaN(secs) || secs < 0 || secs >= datetime.SecondsPerDay {
		return 0, fmt.Errorf("%v%s is not within a day: %w", v, MillidaysSuffix, ErrInvalid)
	}
	tod, err := datetime.TimeOfDayFromSeconds(int(secs))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return tod, nil
}

// MillidaysToDuration returns the time.Duration for v millidays.
func MillidaysToDuration(v float64) time.Duration {
	return time.Duration(v * SecondsPerMilliday * float64(time.Second))
}

// SecondsToMicrodays converts seconds to microdays.
func SecondsToMicrodays(seconds float64) float64 {
	return seconds / SecondsPerMicroday
}

// ParseSeconds parses val as a non-negative decimal number of seconds,
// eg. 9.58. Signs, exponents, NaN and infinities are rejected.
func ParseSeconds(val string) (float64, error) {
	if len(val) == 0 || !secondsRe.MatchString(val) {
		return 0, fmt.Errorf("%q: expected a non-negative decimal number of seconds: %w", val, ErrInvalid)
	}
	secs, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: invalid number of seconds: %w", val, ErrInvalid)
	}
	return secs, nil
}

// MicrodaysToSeconds converts microdays to seconds.
func MicrodaysToSeconds(v float64) float64 {
	return v * SecondsPerMicroday
}

// MicrodaysFromDuration returns the number of microdays in d.
func MicrodaysFromDuration(d time.Duration) float64 {
	return SecondsToMicrodays(d.Seconds())
}

// MicrodaysToDuration returns the time.Duration for v microdays.
func MicrodaysToDuration(v float64) time.Duration {
	return time.Duration(MicrodaysToSeconds(v) * float64(time.Second))
}

// ParseOption represents an option to ParseMillidays and ParseMicrodays.
type ParseOption func(o *parseOptions)

type parseOptions struct {
	zeroOnInvalidNumber bool
}

// ZeroOnInvalidNumber requests that a value which matches the expected
// format but whose number cannot be parsed, eg. the bare unit "μd", is
// returned as 0 rather than as an error.
func ZeroOnInvalidNumber() ParseOption {
	return func(o *parseOptions) {
		o.zeroOnInvalidNumber = true
	}
}

func parse(val string, re *regexp.Regexp, suffix string, opts []ParseOption) (float64, error) {
	var o parseOptions
	for _, fn := range opts {
		fn(&o)
	}
	if !re.MatchString(val) {
		return 0, fmt.Errorf("%q: expected a decimal number followed by %q: %w", val, suffix, ErrInvalid)
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(val, suffix), 64)
	if err != nil {
		if o.zeroOnInvalidNumber {
			return 0, nil
		}
		return 0, fmt.Errorf("%q: invalid number: %w", val, ErrInvalid)
	}
	return n, nil
}

// ParseMillidays parses val in the format '<decimal-number>md', eg. 560md or
// 560.5md, with no white space.
func ParseMillidays(val string, opts ...ParseOption) (float64, error) {
	return parse(val, millidaysRe, MillidaysSuffix, opts)
}

// ParseMicrodays parses val in the format '<decimal-number>μd', eg. 110μd,
// with no white space.
func ParseMicrodays(val string, opts ...ParseOption) (float64, error) {
	return parse(val, microdaysRe, MicrodaysSuffix, opts)
}
