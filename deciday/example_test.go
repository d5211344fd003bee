// Copyright 2024 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package deciday_test

import (
	"fmt"

	"cloudeng.io/veeks/datetime"
	"cloudeng.io/veeks/deciday"
)

func ExampleFormatMillidays() {
	tod := datetime.NewTimeOfDay(13, 30, 0)
	fmt.Println(deciday.Millidays(tod))
	fmt.Println(deciday.FormatMillidays(tod))
	// Output:
	// 562.5
	// 563md
}

func ExampleParseMillidays() {
	md, err := deciday.ParseMillidays("560md")
	if err != nil {
		panic(err)
	}
	tod, err := deciday.MillidaysToTimeOfDay(md)
	if err != nil {
		panic(err)
	}
	fmt.Println(tod)
	_, err = deciday.ParseMillidays("560 md")
	fmt.Println(err != nil)
	// Output:
	// 13:26:24
	// true
}

func ExampleSecondsToMicrodays() {
	fmt.Println(deciday.SecondsToMicrodays(9.58))
	fmt.Println(deciday.MicrodaysToSeconds(110.9))
	// Output:
	// 110.87962962962962
	// 9.581760000000001
}
