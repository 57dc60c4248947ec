// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

// ATNConfigSet is an insertion-ordered, deduplicated container of
// LexerATNConfig values (spec.md §3, §9 "ordered set keyed by structural
// hash"). Deterministic reach and DFA interning both depend on insertion
// order being preserved, so membership uses a hash index alongside the
// plain slice rather than a map keyed by a value type.
type ATNConfigSet struct {
	configs []*LexerATNConfig
	index   map[uint64][]int // hash -> indices into configs

	// HasSemanticContext records whether closure traversed a Predicate
	// transition while building this set (§4.G.7); read by the DFA-edge
	// installer to decide whether the resulting edge may be cached.
	HasSemanticContext bool

	readOnly bool
}

// NewATNConfigSet returns an empty, mutable config set.
func NewATNConfigSet() *ATNConfigSet {
	return &ATNConfigSet{index: make(map[uint64][]int)}
}

func (s *ATNConfigSet) checkMutable() {
	if s.readOnly {
		panic("lexatn: ATNConfigSet is frozen")
	}
}

// Add inserts config if no equal config is already present, returning
// whether it was actually added.
func (s *ATNConfigSet) Add(config *LexerATNConfig) bool {
	s.checkMutable()
	h := config.hash()
	for _, i := range s.index[h] {
		if s.configs[i].equals(config) {
			return false
		}
	}
	s.index[h] = append(s.index[h], len(s.configs))
	s.configs = append(s.configs, config)
	return true
}

// Len returns the number of distinct configs.
func (s *ATNConfigSet) Len() int { return len(s.configs) }

// Get returns the i-th config in insertion order.
func (s *ATNConfigSet) Get(i int) *LexerATNConfig { return s.configs[i] }

// All returns the configs in insertion order; callers must not mutate the
// returned slice.
func (s *ATNConfigSet) All() []*LexerATNConfig { return s.configs }

// Freeze marks the set read-only, as happens once it is promoted into a
// DFAState (§3 "Lifecycles").
func (s *ATNConfigSet) Freeze() *ATNConfigSet {
	s.readOnly = true
	return s
}

func (s *ATNConfigSet) IsReadOnly() bool { return s.readOnly }

// hash is order-independent (two config sets built via different closure
// orders but identical membership must collide) since it is used to
// intern DFA states by configuration identity (§3).
func (s *ATNConfigSet) hash() uint64 {
	var h uint64
	for _, c := range s.configs {
		h += c.hash()
	}
	return h
}

func (s *ATNConfigSet) equals(o *ATNConfigSet) bool {
	if s == o {
		return true
	}
	if len(s.configs) != len(o.configs) {
		return false
	}
	if s.hash() != o.hash() {
		return false
	}
	// Fall back to a membership check since hash collisions or
	// differently-ordered equal sets are both possible.
	for _, c := range s.configs {
		found := false
		for _, d := range o.configs {
			if c.equals(d) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
