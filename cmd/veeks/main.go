// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command veeks converts calendar dates and times of day to and from
// veek-dates, millidays and microdays.
package main

import (
	"context"
	"io"
	"os"
	"time"

	"cloudeng.io/cmdutil/subcmd"
)

const cmdSpec = `name: veeks
summary: convert calendar dates and times to and from veek-dates, millidays and microdays
commands:
  - name: date
    summary: print the veek-date for each calendar date in YYYY-MM-DD format, or for today if none are given
    arguments:
      - ...
  - name: calendar
    summary: print the calendar date for each veek-date, eg. '2021c 09v 3d'
    arguments:
      - <veek-date>
      - ...
  - name: millis
    summary: print the millidays for each time of day in hh:mm[:ss] format, or for now if none are given
    arguments:
      - ...
  - name: clock
    summary: print the time of day for each milliday value, eg. 560md
    arguments:
      - <millidays>
      - ...
  - name: micros
    summary: print the microdays for each duration in seconds, eg. 9.58
    arguments:
      - <seconds>
      - ...
  - name: seconds
    summary: print the seconds for each microday value, eg. 110μd
    arguments:
      - <microdays>
      - ...
  - name: now
    summary: print the current veek-date and milliday
  - name: convert
    summary: convert the dates, veek-dates, times, millidays and microdays listed in a YAML file and print a YAML report
    arguments:
      - <file.yaml>
`

func newCommandSet(out io.Writer, now func() time.Time) *subcmd.CommandSetYAML {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	c := &veeks{out: out, now: now}
	cmdSet.Set("date").MustRunner(c.date, &dateFlags{})
	cmdSet.Set("calendar").MustRunner(c.calendar, &CommonFlags{})
	cmdSet.Set("millis").MustRunner(c.millis, &millisFlags{})
	cmdSet.Set("clock").MustRunner(c.clock, &CommonFlags{})
	cmdSet.Set("micros").MustRunner(c.micros, &microsFlags{})
	cmdSet.Set("seconds").MustRunner(c.seconds, &CommonFlags{})
	cmdSet.Set("now").MustRunner(c.nowCmd, &CommonFlags{})
	cmdSet.Set("convert").MustRunner(c.convert, &convertFlags{})
	return cmdSet
}

func main() {
	subcmd.Dispatch(context.Background(), newCommandSet(os.Stdout, time.Now))
}
