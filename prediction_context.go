// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

import "hash/maphash"

// EmptyReturnState is the sentinel return-state value marking a path that
// ends without a pending call frame (spec.md §3).
const EmptyReturnState = -1

// PredictionContext is a persistent, possibly-shared stack of ATN return
// states. Closure (§4.G.6) pushes a frame via Create when it follows a
// RuleTransition and pops one by recursing to a return state when it
// reaches a RuleStopState. Structural equality and a stable hash make the
// Empty/Singleton/Array variants hash-consable across one simulator
// instance.
type PredictionContext interface {
	isEmpty() bool
	Len() int
	GetParent(i int) PredictionContext
	GetReturnState(i int) int
	hash() uint64
	equals(other PredictionContext) bool
	// hasEmptyPath reports whether some path through this context ends
	// at EmptyReturnState (i.e. the call stack can also just be empty).
	hasEmptyPath() bool
}

// emptyPredictionContext is the unique context representing "no pending
// calls."
type emptyPredictionContext struct{}

// BasePredictionContextEmpty is the single shared Empty context instance.
var BasePredictionContextEmpty PredictionContext = &emptyPredictionContext{}

func (emptyPredictionContext) isEmpty() bool                    { return true }
func (emptyPredictionContext) Len() int                         { return 1 }
func (emptyPredictionContext) GetParent(int) PredictionContext  { return nil }
func (emptyPredictionContext) GetReturnState(int) int           { return EmptyReturnState }
func (emptyPredictionContext) hash() uint64                     { return 1 }
func (emptyPredictionContext) hasEmptyPath() bool               { return true }
func (e emptyPredictionContext) equals(other PredictionContext) bool {
	_, ok := other.(*emptyPredictionContext)
	return ok
}

// SingletonPredictionContext is one call frame: a return state plus the
// (possibly Empty, possibly shared) parent context it was pushed from.
type SingletonPredictionContext struct {
	parent      PredictionContext
	returnState int
	h           uint64
}

func newSingletonPredictionContext(parent PredictionContext, returnState int) *SingletonPredictionContext {
	s := &SingletonPredictionContext{parent: parent, returnState: returnState}
	s.h = computeSingletonHash(parent, returnState)
	return s
}

func computeSingletonHash(parent PredictionContext, returnState int) uint64 {
	var h maphash.Hash
	h.SetSeed(predictionContextHashSeed)
	var pHash uint64
	if parent != nil {
		pHash = parent.hash()
	}
	var buf [16]byte
	putUint64(buf[0:8], pHash)
	putUint64(buf[8:16], uint64(returnState))
	h.Write(buf[:])
	return h.Sum64()
}

func putUint64(b []byte, v uint64) {
	for i := 0; i < 8; i++ {
		b[i] = byte(v >> (8 * i))
	}
}

var predictionContextHashSeed = maphash.MakeSeed()

func (s *SingletonPredictionContext) isEmpty() bool { return false }
func (s *SingletonPredictionContext) Len() int       { return 1 }
func (s *SingletonPredictionContext) GetParent(int) PredictionContext {
	return s.parent
}
func (s *SingletonPredictionContext) GetReturnState(int) int { return s.returnState }
func (s *SingletonPredictionContext) hash() uint64            { return s.h }
func (s *SingletonPredictionContext) hasEmptyPath() bool {
	return s.returnState == EmptyReturnState
}
func (s *SingletonPredictionContext) equals(other PredictionContext) bool {
	o, ok := other.(*SingletonPredictionContext)
	if !ok {
		return false
	}
	if s.returnState != o.returnState {
		return false
	}
	if s.parent == o.parent {
		return true
	}
	if s.parent == nil || o.parent == nil {
		return false
	}
	return s.parent.equals(o.parent)
}

// ArrayPredictionContext is the minimal merge of two or more incompatible
// call stacks reaching the same ATN state, produced by Merge.
type ArrayPredictionContext struct {
	parents      []PredictionContext
	returnStates []int
	h            uint64
}

func newArrayPredictionContext(parents []PredictionContext, returnStates []int) *ArrayPredictionContext {
	a := &ArrayPredictionContext{parents: parents, returnStates: returnStates}
	a.h = computeArrayHash(parents, returnStates)
	return a
}

func computeArrayHash(parents []PredictionContext, returnStates []int) uint64 {
	var h maphash.Hash
	h.SetSeed(predictionContextHashSeed)
	for i, rs := range returnStates {
		var pHash uint64
		if parents[i] != nil {
			pHash = parents[i].hash()
		}
		var buf [16]byte
		putUint64(buf[0:8], pHash)
		putUint64(buf[8:16], uint64(rs))
		h.Write(buf[:])
	}
	return h.Sum64()
}

func (a *ArrayPredictionContext) isEmpty() bool { return false }
func (a *ArrayPredictionContext) Len() int       { return len(a.returnStates) }
func (a *ArrayPredictionContext) GetParent(i int) PredictionContext {
	return a.parents[i]
}
func (a *ArrayPredictionContext) GetReturnState(i int) int { return a.returnStates[i] }
func (a *ArrayPredictionContext) hash() uint64              { return a.h }
func (a *ArrayPredictionContext) hasEmptyPath() bool {
	for _, rs := range a.returnStates {
		if rs == EmptyReturnState {
			return true
		}
	}
	return false
}
func (a *ArrayPredictionContext) equals(other PredictionContext) bool {
	o, ok := other.(*ArrayPredictionContext)
	if !ok {
		return false
	}
	if len(a.returnStates) != len(o.returnStates) {
		return false
	}
	for i := range a.returnStates {
		if a.returnStates[i] != o.returnStates[i] {
			return false
		}
		if a.parents[i] != o.parents[i] {
			if a.parents[i] == nil || o.parents[i] == nil || !a.parents[i].equals(o.parents[i]) {
				return false
			}
		}
	}
	return true
}

// PredictionContextCache hash-conses PredictionContext values within one
// simulator instance (spec.md §3: "hash-consed across a simulator
// instance").
type PredictionContextCache struct {
	cache map[uint64][]PredictionContext
}

func NewPredictionContextCache() *PredictionContextCache {
	return &PredictionContextCache{cache: make(map[uint64][]PredictionContext)}
}

func (c *PredictionContextCache) intern(ctx PredictionContext) PredictionContext {
	h := ctx.hash()
	for _, existing := range c.cache[h] {
		if existing.equals(ctx) {
			return existing
		}
	}
	c.cache[h] = append(c.cache[h], ctx)
	return ctx
}

// Create returns the (possibly interned) SingletonPredictionContext for
// pushing returnState onto parent.
func (c *PredictionContextCache) Create(parent PredictionContext, returnState int) PredictionContext {
	if parent == nil {
		parent = BasePredictionContextEmpty
	}
	sp := newSingletonPredictionContext(parent, returnState)
	return c.intern(sp)
}

// Merge combines two prediction contexts reaching the same ATN state from
// different call histories into the minimal context whose paths are the
// union of both (spec.md §4.C). When a and b are structurally equal the
// shared value is returned unchanged; when either is Empty, Empty is
// returned, since it already covers every path; otherwise an ArrayPredictionContext
// listing every distinct (parent, returnState) pair from both operands is
// produced and interned.
func (c *PredictionContextCache) Merge(a, b PredictionContext) PredictionContext {
	if a == b || a.equals(b) {
		return a
	}
	if a.isEmpty() {
		return a
	}
	if b.isEmpty() {
		return b
	}

	type pair struct {
		parent PredictionContext
		rs     int
	}
	var pairs []pair
	add := func(p pair) {
		for _, existing := range pairs {
			if existing.rs == p.rs && (existing.parent == p.parent || (existing.parent != nil && p.parent != nil && existing.parent.equals(p.parent))) {
				return
			}
		}
		pairs = append(pairs, p)
	}
	for i := 0; i < a.Len(); i++ {
		add(pair{a.GetParent(i), a.GetReturnState(i)})
	}
	for i := 0; i < b.Len(); i++ {
		add(pair{b.GetParent(i), b.GetReturnState(i)})
	}

	if len(pairs) == 1 {
		return c.intern(newSingletonPredictionContext(pairs[0].parent, pairs[0].rs))
	}

	parents := make([]PredictionContext, len(pairs))
	returnStates := make([]int, len(pairs))
	for i, p := range pairs {
		parents[i] = p.parent
		returnStates[i] = p.rs
	}
	return c.intern(newArrayPredictionContext(parents, returnStates))
}
