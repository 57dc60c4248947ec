// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

import (
	"strings"

	"golang.org/x/exp/slices"
)

// IntervalSet is a sorted vector of non-overlapping, non-adjacent
// [Interval]s. Once ReadOnly is set, every mutating method panics rather
// than reuse state that may be shared by an interned DFA or ATN transition.
type IntervalSet struct {
	intervals []*Interval
	ReadOnly  bool
}

// NewIntervalSet returns an empty, mutable IntervalSet.
func NewIntervalSet() *IntervalSet {
	return &IntervalSet{}
}

// NewIntervalSetFromRanges builds a set from a flat list of [lo, hi, lo,
// hi, ...] pairs, used by generated code and tests that want a literal set
// without a sequence of Add calls.
func NewIntervalSetFromRanges(pairs ...int) *IntervalSet {
	s := NewIntervalSet()
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Add(pairs[i], pairs[i+1])
	}
	return s
}

func (s *IntervalSet) checkMutable() {
	if s.ReadOnly {
		panic("IntervalSet is read-only")
	}
}

// Add merges [a, b] into the set, splicing with any overlapping or
// adjacent interval so the sorted/non-adjacent invariant of spec.md §3
// holds afterward.
func (s *IntervalSet) Add(a, b int) {
	s.checkMutable()
	s.addInterval(NewInterval(a, b))
}

// addInterval walks the sorted vector once (O(n), as specified in §4.A),
// finding the run of existing intervals that overlap or are adjacent to
// add and replacing that run with their union.
func (s *IntervalSet) addInterval(add *Interval) {
	if add.Stop < add.Start {
		return
	}
	start, stop := add.Start, add.Stop

	lo := 0
	for lo < len(s.intervals) && s.intervals[lo].Stop < start-1 {
		lo++
	}
	hi := lo
	for hi < len(s.intervals) && s.intervals[hi].Start <= stop+1 {
		if s.intervals[hi].Start < start {
			start = s.intervals[hi].Start
		}
		if s.intervals[hi].Stop > stop {
			stop = s.intervals[hi].Stop
		}
		hi++
	}

	merged := NewInterval(start, stop)
	if lo < hi {
		s.intervals = slices.Delete(s.intervals, lo, hi)
	}
	s.intervals = slices.Insert(s.intervals, lo, merged)
}

// addSet merges every interval of other into s; used by ATN.GetExpectedTokens.
func (s *IntervalSet) addSet(other *IntervalSet) {
	s.checkMutable()
	if other == nil {
		return
	}
	for _, iv := range other.intervals {
		s.addInterval(iv)
	}
}

// AddOne adds the single code point v.
func (s *IntervalSet) AddOne(v int) {
	s.Add(v, v)
}

// removeOne removes exactly the single code point v, splitting its
// containing interval if necessary.
func (s *IntervalSet) removeOne(v int) {
	s.checkMutable()
	idx := s.indexOf(v)
	if idx < 0 {
		return
	}
	iv := s.intervals[idx]
	switch {
	case iv.Start == iv.Stop:
		s.intervals = slices.Delete(s.intervals, idx, idx+1)
	case v == iv.Start:
		s.intervals[idx] = NewInterval(iv.Start+1, iv.Stop)
	case v == iv.Stop:
		s.intervals[idx] = NewInterval(iv.Start, iv.Stop-1)
	default:
		left := NewInterval(iv.Start, v-1)
		right := NewInterval(v+1, iv.Stop)
		s.intervals[idx] = left
		s.intervals = slices.Insert(s.intervals, idx+1, right)
	}
}

func (s *IntervalSet) indexOf(x int) int {
	lo, hi := 0, len(s.intervals)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		iv := s.intervals[mid]
		switch {
		case x < iv.Start:
			hi = mid - 1
		case x > iv.Stop:
			lo = mid + 1
		default:
			return mid
		}
	}
	return -1
}

// Contains reports whether x is a member of the set; O(log n).
func (s *IntervalSet) Contains(x int) bool {
	return s.indexOf(x) >= 0
}

// Len returns the total number of code points covered by the set.
func (s *IntervalSet) Len() int {
	n := 0
	for _, iv := range s.intervals {
		n += iv.Len()
	}
	return n
}

// IsNil reports whether the set has no intervals.
func (s *IntervalSet) IsNil() bool {
	return s == nil || len(s.intervals) == 0
}

// Min returns the smallest member, or -1 if the set is empty.
func (s *IntervalSet) Min() int {
	if len(s.intervals) == 0 {
		return -1
	}
	return s.intervals[0].Start
}

// Max returns the largest member, or -1 if the set is empty.
func (s *IntervalSet) Max() int {
	if len(s.intervals) == 0 {
		return -1
	}
	return s.intervals[len(s.intervals)-1].Stop
}

// Intervals returns the sorted interval vector; callers must not mutate it.
func (s *IntervalSet) Intervals() []*Interval {
	return s.intervals
}

// Union returns a new mutable set containing every member of s or other.
func (s *IntervalSet) Union(other *IntervalSet) *IntervalSet {
	out := NewIntervalSet()
	out.addSet(s)
	out.addSet(other)
	return out
}

// Intersection returns the members common to both sets, walking the two
// sorted interval vectors with two indices (spec.md §4.A).
func (s *IntervalSet) Intersection(other *IntervalSet) *IntervalSet {
	out := NewIntervalSet()
	if other == nil {
		return out
	}
	i, j := 0, 0
	for i < len(s.intervals) && j < len(other.intervals) {
		a, b := s.intervals[i], other.intervals[j]
		lo := max(a.Start, b.Start)
		hi := min(a.Stop, b.Stop)
		if lo <= hi {
			out.Add(lo, hi)
		}
		if a.Stop < b.Stop {
			i++
		} else {
			j++
		}
	}
	return out
}

// Subtract returns the members of s not present in other, splitting the
// current left interval at most into [a, right.a-1] and [right.b+1, b] as
// specified in spec.md §4.A.
func (s *IntervalSet) Subtract(other *IntervalSet) *IntervalSet {
	out := NewIntervalSet()
	if other == nil || len(other.intervals) == 0 {
		out.addSet(s)
		return out
	}
	i, j := 0, 0
	left := s.intervals
	for i < len(left) {
		a := *left[i]
		for j < len(other.intervals) && other.intervals[j].Stop < a.Start {
			j++
		}
		k := j
		for k < len(other.intervals) && other.intervals[k].Start <= a.Stop {
			r := other.intervals[k]
			if a.Start < r.Start {
				out.Add(a.Start, r.Start-1)
			}
			a.Start = r.Stop + 1
			if a.Start > a.Stop {
				break
			}
			k++
		}
		if a.Start <= a.Stop {
			out.Add(a.Start, a.Stop)
		}
		i++
	}
	return out
}

// Complement returns the members of vocabulary not present in s.
func (s *IntervalSet) Complement(vocabulary *IntervalSet) *IntervalSet {
	return vocabulary.Subtract(s)
}

// Freeze marks the set read-only; subsequent mutation panics (spec.md §3,
// §7 class 5).
func (s *IntervalSet) Freeze() *IntervalSet {
	s.ReadOnly = true
	return s
}

func (s *IntervalSet) String() string {
	return s.StringVerbose(nil, false)
}

// StringVerbose renders the set either as raw code points/ranges, or, when
// a symbol table is supplied, using the names it provides (mirrors the
// teacher runtime's literalNames/symbolicNames rendering for error text).
func (s *IntervalSet) StringVerbose(names []string, elemsAreChar bool) string {
	if s.IsNil() {
		return "{}"
	}
	var sb strings.Builder
	multi := len(s.intervals) > 1 || (len(s.intervals) == 1 && s.intervals[0].Len() > 1)
	if multi {
		sb.WriteByte('{')
	}
	first := true
	for _, iv := range s.intervals {
		for v := iv.Start; v <= iv.Stop; v++ {
			if !first {
				sb.WriteString(", ")
			}
			first = false
			if names != nil && v >= 0 && v < len(names) {
				sb.WriteString(names[v])
			} else if elemsAreChar {
				sb.WriteByte('\'')
				sb.WriteRune(rune(v))
				sb.WriteByte('\'')
			} else {
				sb.WriteString(codePointStr(v))
			}
		}
	}
	if multi {
		sb.WriteByte('}')
	}
	return sb.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
