// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package veekdate

import (
	"fmt"

	"cloudeng.io/veeks/datetime"
	"gopkg.in/yaml.v3"
)

func parseDigits(s string) (int, bool) {
	if len(s) == 0 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}

// Parse parses a veek-date in the exact 12 character format 'YYYYc VVv Dd',
// no leading or trailing white space is allowed.
func Parse(val string) (VeekDate, error) {
	if len(val) != TextLength {
		return VeekDate{}, fmt.Errorf("%q: expected %d characters: %w", val, TextLength, ErrInvalid)
	}
	if val[4:6] != "c " || val[8:10] != "v " || val[11:12] != "d" {
		return VeekDate{}, fmt.Errorf("%q: expected format 'YYYYc VVv Dd': %w", val, ErrInvalid)
	}
	year, ok := parseDigits(val[0:4])
	if !ok {
		return VeekDate{}, fmt.Errorf("%q: invalid year: %w", val, ErrInvalid)
	}
	veek, ok := parseDigits(val[6:8])
	if !ok {
		return VeekDate{}, fmt.Errorf("%q: invalid veek: %w", val, ErrInvalid)
	}
	day, ok := parseDigits(val[10:11])
	if !ok {
		return VeekDate{}, fmt.Errorf("%q: invalid day: %w", val, ErrInvalid)
	}
	return FromYearVeekDay(year, veek, day)
}

// MustParse is like Parse but panics on error.
func MustParse(val string) VeekDate {
	v, err := Parse(val)
	if err != nil {
		panic(err)
	}
	return v
}

// ParseCalendarDate parses a veek-date and returns the calendar date
// that it refers to.
func ParseCalendarDate(val string) (datetime.CalendarDate, error) {
	v, err := Parse(val)
	if err != nil {
		return datetime.CalendarDate{}, err
	}
	return v.CalendarDate()
}

// MarshalText implements encoding.TextMarshaler.
func (v VeekDate) MarshalText() ([]byte, error) {
	if v.IsZero() {
		return nil, fmt.Errorf("zero value: %w", ErrInvalid)
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *VeekDate) UnmarshalText(text []byte) error {
	nv, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = nv
	return nil
}

func (v VeekDate) MarshalYAML() (any, error) {
	if v.IsZero() {
		return nil, fmt.Errorf("zero value: %w", ErrInvalid)
	}
	return v.String(), nil
}

func (v *VeekDate) UnmarshalYAML(node *yaml.Node) error {
	return v.UnmarshalText([]byte(node.Value))
}
