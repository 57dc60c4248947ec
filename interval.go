// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

import "strconv"

// IntervalPoolMaxValue bounds the singleton intervals that are interned at
// package init rather than allocated on every call to NewInterval.
const IntervalPoolMaxValue = 1000

// Interval is an immutable inclusive code-point range [a, b]. A range with
// b < a has length 0 and is used as the canonical "empty" interval.
type Interval struct {
	Start int
	Stop  int
}

var intervalPool [IntervalPoolMaxValue + 1]*Interval

func init() {
	for i := range intervalPool {
		intervalPool[i] = &Interval{Start: i, Stop: i}
	}
}

// NewInterval returns the interval [a, b], reusing an interned singleton
// when a == b and a is within [0, IntervalPoolMaxValue].
func NewInterval(a, b int) *Interval {
	if a == b && a >= 0 && a <= IntervalPoolMaxValue {
		return intervalPool[a]
	}
	return &Interval{Start: a, Stop: b}
}

// Len returns the number of code points covered by the interval, 0 if the
// interval is empty.
func (i *Interval) Len() int {
	if i.Stop < i.Start {
		return 0
	}
	return i.Stop - i.Start + 1
}

// Contains reports whether x falls within [Start, Stop].
func (i *Interval) Contains(x int) bool {
	return x >= i.Start && x <= i.Stop
}

// AdjacentOrOverlaps reports whether i and other should be merged into a
// single interval by IntervalSet.Add — true when the two ranges overlap or
// when there is no gap between them (their union has no missing code point).
func (i *Interval) AdjacentOrOverlaps(other *Interval) bool {
	return i.Start <= other.Stop+1 && other.Start <= i.Stop+1
}

func (i *Interval) String() string {
	if i.Start == i.Stop {
		return codePointStr(i.Start)
	}
	return codePointStr(i.Start) + ".." + codePointStr(i.Stop)
}

func codePointStr(n int) string {
	if n == EOF {
		return "<EOF>"
	}
	return strconv.Itoa(n)
}
