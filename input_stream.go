// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package lexatn

// InputStream is the conventional CharStream implementation over a
// decoded rune slice (SPEC_FULL.md "Supplemented Features" — spec.md §6
// specifies only the interface). Marks are reference-counted index
// checkpoints; Release is a no-op beyond bookkeeping since runes are kept
// in memory for the stream's whole lifetime.
type InputStream struct {
	data       []rune
	index      int
	sourceName string
	marks      map[int]int // marker handle -> saved index
	nextMark   int
}

// NewInputStream decodes s into runes and returns a stream positioned at
// its start.
func NewInputStream(s string) *InputStream {
	return &InputStream{data: []rune(s), marks: make(map[int]int)}
}

// NewInputStreamFromRunes wraps an already-decoded rune slice without
// copying.
func NewInputStreamFromRunes(data []rune) *InputStream {
	return &InputStream{data: data, marks: make(map[int]int)}
}

func (is *InputStream) SetSourceName(name string) { is.sourceName = name }

func (is *InputStream) LA(offset int) int {
	if offset == 0 {
		return 0
	}
	pos := is.index
	if offset < 0 {
		pos += offset
		if pos < 0 {
			return EOF
		}
		return int(is.data[pos])
	}
	pos += offset - 1
	if pos >= len(is.data) {
		return EOF
	}
	return int(is.data[pos])
}

func (is *InputStream) Index() int { return is.index }

func (is *InputStream) Consume() {
	if is.index >= len(is.data) {
		panic("lexatn: cannot consume past EOF")
	}
	is.index++
}

func (is *InputStream) Seek(index int) { is.index = index }

func (is *InputStream) Mark() int {
	h := is.nextMark
	is.nextMark++
	is.marks[h] = is.index
	return h
}

func (is *InputStream) Release(marker int) {
	delete(is.marks, marker)
}

func (is *InputStream) GetText(start, stop int) string {
	if start >= len(is.data) || stop < start {
		return ""
	}
	if stop >= len(is.data) {
		stop = len(is.data) - 1
	}
	return string(is.data[start : stop+1])
}

func (is *InputStream) Size() int { return len(is.data) }

func (is *InputStream) GetSourceName() string {
	if is.sourceName == "" {
		return "<unknown>"
	}
	return is.sourceName
}
