// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

import "testing"

func TestPredictionContextCacheInternsSingletons(t *testing.T) {
	c := NewPredictionContextCache()
	a := c.Create(BasePredictionContextEmpty, 5)
	b := c.Create(BasePredictionContextEmpty, 5)
	if a != b {
		t.Fatal("two Creates with identical (parent, returnState) should intern to the same value")
	}

	d := c.Create(BasePredictionContextEmpty, 6)
	if a == d || a.equals(d) {
		t.Fatal("different returnState must not collapse to the same context")
	}
}

func TestPredictionContextEmptyIdentity(t *testing.T) {
	if !BasePredictionContextEmpty.isEmpty() {
		t.Fatal("Empty context must report isEmpty")
	}
	if !BasePredictionContextEmpty.hasEmptyPath() {
		t.Fatal("Empty context must report hasEmptyPath")
	}
	if BasePredictionContextEmpty.GetReturnState(0) != EmptyReturnState {
		t.Fatal("Empty context GetReturnState must be EmptyReturnState")
	}
}

func TestPredictionContextMergeIdenticalReturnsShared(t *testing.T) {
	c := NewPredictionContextCache()
	a := c.Create(BasePredictionContextEmpty, 3)
	merged := c.Merge(a, a)
	if merged != a {
		t.Fatal("merging a context with itself should return it unchanged")
	}
}

func TestPredictionContextMergeDistinctProducesArray(t *testing.T) {
	c := NewPredictionContextCache()
	a := c.Create(BasePredictionContextEmpty, 3)
	b := c.Create(BasePredictionContextEmpty, 7)

	merged := c.Merge(a, b)
	if merged.Len() != 2 {
		t.Fatalf("merge of two distinct singleton contexts should have Len 2, got %d", merged.Len())
	}

	seen := map[int]bool{}
	for i := 0; i < merged.Len(); i++ {
		seen[merged.GetReturnState(i)] = true
	}
	if !seen[3] || !seen[7] {
		t.Fatalf("merged context missing a return state: %v", seen)
	}
}

func TestPredictionContextMergeWithEmptyYieldsEmpty(t *testing.T) {
	c := NewPredictionContextCache()
	a := c.Create(BasePredictionContextEmpty, 3)
	merged := c.Merge(a, BasePredictionContextEmpty)
	if !merged.isEmpty() {
		t.Fatal("merging with Empty should yield Empty (spec: Empty swallows any other path)")
	}
}

func TestPredictionContextMergeIsIdempotentAndDeduplicates(t *testing.T) {
	c := NewPredictionContextCache()
	a := c.Create(BasePredictionContextEmpty, 3)
	b := c.Create(BasePredictionContextEmpty, 3)
	merged := c.Merge(a, b)
	if merged.Len() != 1 {
		t.Fatalf("merging two equal singleton contexts must deduplicate to Len 1, got %d", merged.Len())
	}
}
