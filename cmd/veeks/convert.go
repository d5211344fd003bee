// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/veeks/datetime"
	"cloudeng.io/veeks/deciday"
	"cloudeng.io/veeks/veekdate"
	"gopkg.in/yaml.v3"
)

type convertFlags struct {
	CommonFlags
	KeepGoing bool `subcmd:"keep-going,false,exit successfully even if some of the values could not be converted"`
}

// conversions is the YAML input accepted by the convert command, eg:
//
//	dates: [2021-02-28, 2021-12-25]
//	veek_dates: [2021c 09v 3d]
//	times: ["13:30:00"]
//	millidays: [560md]
//	microdays: [110μd]
//	seconds: [9.58]
//
// Veek-dates are validated when the file is read.
type conversions struct {
	Dates     []string            `yaml:"dates"`
	VeekDates []veekdate.VeekDate `yaml:"veek_dates"`
	Times     []string            `yaml:"times"`
	Millidays []string            `yaml:"millidays"`
	Microdays []string            `yaml:"microdays"`
	Seconds   []string            `yaml:"seconds"`
}

type conversion struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

type report struct {
	Dates     []conversion `yaml:"dates,omitempty"`
	VeekDates []conversion `yaml:"veek_dates,omitempty"`
	Times     []conversion `yaml:"times,omitempty"`
	Millidays []conversion `yaml:"millidays,omitempty"`
	Microdays []conversion `yaml:"microdays,omitempty"`
	Seconds   []conversion `yaml:"seconds,omitempty"`
}

func convertAll[T any](ctx context.Context, errs *errors.M, inputs []T, name func(T) string, fn func(T) (string, error)) []conversion {
	if len(inputs) == 0 {
		return nil
	}
	logger := ctxlog.Logger(ctx)
	results := make([]conversion, 0, len(inputs))
	for _, in := range inputs {
		c := conversion{Input: name(in)}
		out, err := fn(in)
		if err != nil {
			errs.Append(err)
			c.Error = err.Error()
			logger.Warn("conversion failed", "input", c.Input, "error", err)
		} else {
			c.Output = out
			logger.Debug("converted", "input", c.Input, "output", out)
		}
		results = append(results, c)
	}
	return results
}

func same(s string) string {
	return s
}

func dateToVeekDate(s string) (string, error) {
	cd, err := datetime.ParseCalendarDate(s)
	if err != nil {
		return "", err
	}
	v, err := veekdate.FromCalendarDate(cd)
	if err != nil {
		return "", err
	}
	return v.String(), nil
}

func veekDateToDate(v veekdate.VeekDate) (string, error) {
	cd, err := v.CalendarDate()
	if err != nil {
		return "", err
	}
	return cd.String(), nil
}

func timeToMillidays(s string) (string, error) {
	tod, err := datetime.ParseTimeOfDay(s)
	if err != nil {
		return "", err
	}
	return deciday.FormatMillidays(tod), nil
}

func millidaysToTime(s string) (string, error) {
	md, err := deciday.ParseMillidays(s)
	if err != nil {
		return "", err
	}
	tod, err := deciday.MillidaysToTimeOfDay(md)
	if err != nil {
		return "", err
	}
	return tod.String(), nil
}

func microdaysToSeconds(s string) (string, error) {
	ud, err := deciday.ParseMicrodays(s)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(deciday.MicrodaysToSeconds(ud), 'f', -1, 64), nil
}

func secondsToMicrodays(s string) (string, error) {
	secs, err := deciday.ParseSeconds(s)
	if err != nil {
		return "", err
	}
	return strconv.FormatFloat(deciday.SecondsToMicrodays(secs), 'f', -1, 64) + deciday.MicrodaysSuffix, nil
}

func (cv conversions) convert(ctx context.Context) (report, error) {
	errs := &errors.M{}
	r := report{
		Dates:     convertAll(ctx, errs, cv.Dates, same, dateToVeekDate),
		VeekDates: convertAll(ctx, errs, cv.VeekDates, veekdate.VeekDate.String, veekDateToDate),
		Times:     convertAll(ctx, errs, cv.Times, same, timeToMillidays),
		Millidays: convertAll(ctx, errs, cv.Millidays, same, millidaysToTime),
		Microdays: convertAll(ctx, errs, cv.Microdays, same, microdaysToSeconds),
		Seconds:   convertAll(ctx, errs, cv.Seconds, same, secondsToMicrodays),
	}
	return r, errs.Err()
}

func (c *veeks) convert(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*convertFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	var cv conversions
	if err := cmdutil.ParseYAMLConfigFile(args[0], &cv); err != nil {
		return err
	}
	r, convErr := cv.convert(ctx)
	buf, err := yaml.Marshal(r)
	if err != nil {
		return err
	}
	if _, err := c.out.Write(buf); err != nil {
		return err
	}
	if convErr != nil && !fv.KeepGoing {
		return fmt.Errorf("%v: %w", args[0], convErr)
	}
	return nil
}
