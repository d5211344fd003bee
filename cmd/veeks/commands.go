// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/veeks/datetime"
	"cloudeng.io/veeks/deciday"
	"cloudeng.io/veeks/veekdate"
)

// CommonFlags are accepted by all commands.
type CommonFlags struct {
	cmdutil.LoggingFlags
}

type dateFlags struct {
	CommonFlags
	Calendar bool `subcmd:"calendar,false,also print the calendar date for each veek-date"`
}

type millisFlags struct {
	CommonFlags
	Precise bool `subcmd:"precise,false,print the unrounded number of millidays"`
}

type microsFlags struct {
	CommonFlags
	Precise bool `subcmd:"precise,false,print the unrounded number of microdays"`
}

type veeks struct {
	out io.Writer
	now func() time.Time
}

// withLogger returns a context carrying the logger configured by cf.
func (cf *CommonFlags) withLogger(ctx context.Context) (context.Context, func(), error) {
	logger, err := cf.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, err
	}
	return ctxlog.Context(ctx, logger.Logger), func() { logger.Close() }, nil
}

// forEach calls fn for every argument and collects all of the errors
// encountered.
func forEach(args []string, fn func(arg string) error) error {
	errs := &errors.M{}
	for _, arg := range args {
		errs.Append(fn(arg))
	}
	return errs.Err()
}

func (c *veeks) date(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*dateFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	if len(args) == 0 {
		v, err := veekdate.FromTime(c.now())
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, v)
		return nil
	}
	return forEach(args, func(arg string) error {
		cd, err := datetime.ParseCalendarDate(arg)
		if err != nil {
			return err
		}
		v, err := veekdate.FromCalendarDate(cd)
		if err != nil {
			return fmt.Errorf("%v: %w", arg, err)
		}
		ctxlog.Logger(ctx).Debug("date", "calendar", cd.String(), "veek-date", v.String())
		if fv.Calendar {
			fmt.Fprintf(c.out, "%v\t%v\n", cd, v)
			return nil
		}
		fmt.Fprintln(c.out, v)
		return nil
	})
}

func (c *veeks) calendar(ctx context.Context, values interface{}, args []string) error {
	ctx, done, err := values.(*CommonFlags).withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	return forEach(args, func(arg string) error {
		cd, err := veekdate.ParseCalendarDate(arg)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("calendar", "veek-date", arg, "calendar", cd.String())
		fmt.Fprintln(c.out, cd)
		return nil
	})
}

func formatMillidays(tod datetime.TimeOfDay, precise bool) string {
	if precise {
		return strconv.FormatFloat(deciday.Millidays(tod), 'f', -1, 64) + deciday.MillidaysSuffix
	}
	return deciday.FormatMillidays(tod)
}

func (c *veeks) millis(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*millisFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	if len(args) == 0 {
		fmt.Fprintln(c.out, formatMillidays(datetime.TimeOfDayFromTime(c.now()), fv.Precise))
		return nil
	}
	return forEach(args, func(arg string) error {
		tod, err := datetime.ParseTimeOfDay(arg)
		if err != nil {
			return err
		}
		md := formatMillidays(tod, fv.Precise)
		ctxlog.Logger(ctx).Debug("millis", "time", tod.String(), "millidays", md)
		fmt.Fprintln(c.out, md)
		return nil
	})
}

func (c *veeks) clock(ctx context.Context, values interface{}, args []string) error {
	ctx, done, err := values.(*CommonFlags).withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	return forEach(args, func(arg string) error {
		md, err := deciday.ParseMillidays(arg)
		if err != nil {
			return err
		}
		tod, err := deciday.MillidaysToTimeOfDay(md)
		if err != nil {
			return err
		}
		ctxlog.Logger(ctx).Debug("clock", "millidays", md, "time", tod.String())
		fmt.Fprintln(c.out, tod)
		return nil
	})
}

func (c *veeks) micros(ctx context.Context, values interface{}, args []string) error {
	fv := values.(*microsFlags)
	ctx, done, err := fv.withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	return forEach(args, func(arg string) error {
		secs, err := deciday.ParseSeconds(arg)
		if err != nil {
			return err
		}
		ud := deciday.SecondsToMicrodays(secs)
		ctxlog.Logger(ctx).Debug("micros", "seconds", secs, "microdays", ud)
		if fv.Precise {
			fmt.Fprintf(c.out, "%v%s\n", ud, deciday.MicrodaysSuffix)
			return nil
		}
		fmt.Fprintln(c.out, deciday.FormatMicrodays(ud))
		return nil
	})
}

func (c *veeks) seconds(ctx context.Context, values interface{}, args []string) error {
	ctx, done, err := values.(*CommonFlags).withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	return forEach(args, func(arg string) error {
		ud, err := deciday.ParseMicrodays(arg)
		if err != nil {
			return err
		}
		secs := deciday.MicrodaysToSeconds(ud)
		ctxlog.Logger(ctx).Debug("seconds", "microdays", ud, "seconds", secs)
		fmt.Fprintln(c.out, secs)
		return nil
	})
}

func (c *veeks) nowCmd(ctx context.Context, values interface{}, _ []string) error {
	_, done, err := values.(*CommonFlags).withLogger(ctx)
	if err != nil {
		return err
	}
	defer done()
	now := c.now()
	v, err := veekdate.FromTime(now)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%v %v\n", v, deciday.FormatMillidaysFromTime(now))
	return nil
}
