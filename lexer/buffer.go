// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"unicode/utf8"
)

// bom is the UTF-8 encoding of U+FEFF, stripped from the front of a
// buffer if present.
var bom = []byte{0xEF, 0xBB, 0xBF}

// Buffer is the character-level front end of the lexer: the full source
// decoded to runes up front, with peek/consume/mark/slice operations and
// running line/column tracking. Decoding the whole source eagerly (Go
// strings are rarely large enough for this to matter, and srcML units
// are source files, not streams) keeps every downstream slice a
// zero-copy view into one backing array.
type Buffer struct {
	runes []rune

	// Pos is the current offset into runes.
	Pos int

	// Line is the 1-based current line number.
	Line int

	// Column is the 1-based current column, expanded for tabstops.
	Column int

	// Tabstop is the column width of a tab character. Zero means 8.
	Tabstop int

	// Strict, when true, makes invalid byte sequences produce a decode
	// error from [Decode] (which package srcml reports as its
	// EncodingError) instead of being replaced with U+FFFD.
	Strict bool

	// lineStarts[i] is the rune offset of the start of line i+1.
	lineStarts []int
}

// Decode builds a Buffer from raw source bytes, stripping a leading BOM
// if present and decoding as UTF-8. On invalid UTF-8, Buffer.Strict
// controls whether decoding fails outright or substitutes U+FFFD per bad
// byte and continues (srcML's traditional behavior, since a translator
// that can't even get past encoding errors on found-in-the-wild source
// files isn't useful).
func Decode(src []byte, strict bool) (*Buffer, error) {
	if len(src) >= 3 && src[0] == bom[0] && src[1] == bom[1] && src[2] == bom[2] {
		src = src[3:]
	}
	b := &Buffer{Line: 1, Column: 1, Tabstop: 8, Strict: strict}
	runes := make([]rune, 0, len(src))
	i := 0
	for i < len(src) {
		r, size := utf8.DecodeRune(src[i:])
		if r == utf8.RuneError && size <= 1 {
			if strict {
				return nil, &decodeError{offset: i}
			}
			runes = append(runes, utf8.RuneError)
			i++
			continue
		}
		runes = append(runes, r)
		i += size
	}
	b.runes = runes
	b.indexLines()
	return b, nil
}

// decodeError is wrapped into an *srcml.EncodingError by callers that
// import both packages; lexer itself must not import srcml (srcml
// imports lexer), so it keeps its own minimal error and leaves the
// wrapping to the caller.
type decodeError struct{ offset int }

func (e *decodeError) Error() string { return "lexer: invalid UTF-8 byte sequence" }

// Offset returns the byte/rune offset at which decoding failed.
func (e *decodeError) Offset() int { return e.offset }

func (b *Buffer) indexLines() {
	b.lineStarts = []int{0}
	for i, r := range b.runes {
		if r == '\n' {
			b.lineStarts = append(b.lineStarts, i+1)
		}
	}
}

// Len returns the number of runes in the buffer.
func (b *Buffer) Len() int { return len(b.runes) }

// AtEnd reports whether Pos has reached the end of the buffer.
func (b *Buffer) AtEnd() bool { return b.Pos >= len(b.runes) }

// Peek returns the rune at Pos+offset without consuming it, or 0 if out
// of range.
func (b *Buffer) Peek(offset int) rune {
	i := b.Pos + offset
	if i < 0 || i >= len(b.runes) {
		return 0
	}
	return b.runes[i]
}

// Current returns Peek(0).
func (b *Buffer) Current() rune { return b.Peek(0) }

// HasPrefix reports whether the runes starting at Pos equal s.
func (b *Buffer) HasPrefix(s string) bool {
	rs := []rune(s)
	if b.Pos+len(rs) > len(b.runes) {
		return false
	}
	for i, r := range rs {
		if b.runes[b.Pos+i] != r {
			return false
		}
	}
	return true
}

// Mark records the current position so it can be restored or sliced
// against later.
func (b *Buffer) Mark() Pos {
	return Pos{Offset: b.Pos, Line: b.Line, Column: b.Column}
}

// Slice returns the runes between mark.Offset and the current position,
// a zero-copy view into the buffer's backing array.
func (b *Buffer) Slice(mark Pos) []rune {
	return b.runes[mark.Offset:b.Pos]
}

// Consume advances Pos by one rune, updating Line/Column (expanding tabs
// by Tabstop), and returns the rune consumed. It is a no-op returning 0
// at end of buffer.
func (b *Buffer) Consume() rune {
	if b.AtEnd() {
		return 0
	}
	r := b.runes[b.Pos]
	b.Pos++
	switch r {
	case '\n':
		b.Line++
		b.Column = 1
	case '\t':
		tab := b.Tabstop
		if tab <= 0 {
			tab = 8
		}
		b.Column += tab - ((b.Column - 1) % tab)
	default:
		b.Column++
	}
	return r
}

// ConsumeN consumes n runes and returns the consumed slice.
func (b *Buffer) ConsumeN(n int) []rune {
	start := b.Mark()
	for i := 0; i < n && !b.AtEnd(); i++ {
		b.Consume()
	}
	return b.Slice(start)
}

// SeekTo restores the buffer's position to a previously captured Mark.
// Line-directive handling (SetLine) is independent of this and is not
// undone.
func (b *Buffer) SeekTo(mark Pos) {
	b.Pos = mark.Offset
	b.Line = mark.Line
	b.Column = mark.Column
}

// SetLine overrides the logical line number reported from this point
// forward: the physical rune position is unaffected, only the Line used
// in subsequently produced token positions changes. The lexer does not
// call it; a #line directive is lexed as an ordinary preprocessor token
// and leaves Line untouched.
func (b *Buffer) SetLine(line int) {
	b.Line = line
}
