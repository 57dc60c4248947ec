// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

import "testing"

func checkCanonical(t *testing.T, s *IntervalSet) {
	t.Helper()
	ivs := s.Intervals()
	for i := 1; i < len(ivs); i++ {
		if ivs[i-1].Stop+1 >= ivs[i].Start {
			t.Fatalf("not canonical: %v touches/overlaps %v", ivs[i-1], ivs[i])
		}
		if ivs[i-1].Start > ivs[i].Start {
			t.Fatalf("not sorted: %v before %v", ivs[i-1], ivs[i])
		}
	}
}

func TestIntervalSetAddMergesOverlapAndAdjacency(t *testing.T) {
	s := NewIntervalSet()
	s.Add(5, 10)
	s.Add(11, 15) // adjacent, must merge into one interval
	s.Add(20, 25)
	s.Add(8, 22) // overlaps both existing intervals, must merge all three
	checkCanonical(t, s)

	if s.Len() != 21 { // 5..25 inclusive
		t.Fatalf("Len() = %d, want 21", s.Len())
	}
	if len(s.Intervals()) != 1 {
		t.Fatalf("expected a single merged interval, got %d: %v", len(s.Intervals()), s.Intervals())
	}
	for v := 5; v <= 25; v++ {
		if !s.Contains(v) {
			t.Errorf("expected set to contain %d", v)
		}
	}
}

func TestIntervalSetAddDisjoint(t *testing.T) {
	s := NewIntervalSet()
	s.Add(10, 20)
	s.Add(30, 40)
	s.Add(0, 5)
	checkCanonical(t, s)
	if len(s.Intervals()) != 3 {
		t.Fatalf("expected 3 disjoint intervals, got %d", len(s.Intervals()))
	}
}

func TestIntervalSetUnionIntersectionSubtract(t *testing.T) {
	a := NewIntervalSetFromRanges(0, 9)
	b := NewIntervalSetFromRanges(5, 14)

	u := a.Union(b)
	checkCanonical(t, u)
	if u.Min() != 0 || u.Max() != 14 || u.Len() != 15 {
		t.Fatalf("Union = %v, want [0,14]", u)
	}

	i := a.Intersection(b)
	checkCanonical(t, i)
	if i.Min() != 5 || i.Max() != 9 || i.Len() != 5 {
		t.Fatalf("Intersection = %v, want [5,9]", i)
	}

	d := a.Subtract(b)
	checkCanonical(t, d)
	if d.Len() != 5 || d.Min() != 0 || d.Max() != 4 {
		t.Fatalf("Subtract = %v, want [0,4]", d)
	}
}

func TestIntervalSetSubtractSplitsMiddle(t *testing.T) {
	a := NewIntervalSetFromRanges(0, 20)
	b := NewIntervalSetFromRanges(8, 12)

	d := a.Subtract(b)
	checkCanonical(t, d)
	if len(d.Intervals()) != 2 {
		t.Fatalf("expected subtract to split into 2 intervals, got %d: %v", len(d.Intervals()), d.Intervals())
	}
	for _, v := range []int{8, 9, 10, 11, 12} {
		if d.Contains(v) {
			t.Errorf("did not expect %d in %v", v, d)
		}
	}
	for _, v := range []int{0, 7, 13, 20} {
		if !d.Contains(v) {
			t.Errorf("expected %d in %v", v, d)
		}
	}
}

func TestIntervalSetComplement(t *testing.T) {
	vocab := NewIntervalSetFromRanges(0, 9)
	s := NewIntervalSetFromRanges(3, 5)
	c := s.Complement(vocab)
	checkCanonical(t, c)
	for _, v := range []int{0, 1, 2, 6, 7, 8, 9} {
		if !c.Contains(v) {
			t.Errorf("expected complement to contain %d", v)
		}
	}
	for _, v := range []int{3, 4, 5} {
		if c.Contains(v) {
			t.Errorf("did not expect complement to contain %d", v)
		}
	}
}

func TestIntervalSetRemoveOneSplits(t *testing.T) {
	s := NewIntervalSetFromRanges(0, 10)
	s.removeOne(5)
	checkCanonical(t, s)
	if s.Contains(5) {
		t.Fatal("expected 5 to be removed")
	}
	if !s.Contains(4) || !s.Contains(6) {
		t.Fatal("expected neighbours of removed point to remain")
	}
	if len(s.Intervals()) != 2 {
		t.Fatalf("expected split into 2 intervals, got %d", len(s.Intervals()))
	}
}

func TestIntervalSetFreezePanicsOnMutation(t *testing.T) {
	s := NewIntervalSetFromRanges(0, 10)
	s.Freeze()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Add on a frozen set to panic")
		}
	}()
	s.Add(20, 30)
}

func TestIntervalSetIsNil(t *testing.T) {
	var s *IntervalSet
	if !s.IsNil() {
		t.Fatal("nil *IntervalSet should report IsNil")
	}
	s2 := NewIntervalSet()
	if !s2.IsNil() {
		t.Fatal("empty IntervalSet should report IsNil")
	}
	s2.AddOne(1)
	if s2.IsNil() {
		t.Fatal("non-empty IntervalSet should not report IsNil")
	}
}
