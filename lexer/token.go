// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer implements the character-level front end of the
// translator: a position-tracking rune buffer (see [Buffer]), the
// keyword/token lexer that runs over it (see [Lexer]), and the small
// comment/string/raw-string micro-lexers selected while a particular
// token is being consumed (see selectMicroLexer). Nothing in this package
// knows about XML or the parser's mode stack; it only ever produces
// [Token] values.
package lexer

// Kind classifies a Token. It deliberately stays coarse — finer
// distinctions (which keyword, which operator) are resolved by the
// parser from Token.Text, not by proliferating Kind values here.
type Kind int32

const (
	KindEOF Kind = iota
	KindName
	KindKeyword
	KindNumber
	KindString
	KindChar
	KindRawString
	KindComment
	KindLineComment
	KindOperator
	KindPunctuation
	KindPreprocessor
	KindWhitespace
	KindNewline
	KindInvalid
)

func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindName:
		return "Name"
	case KindKeyword:
		return "Keyword"
	case KindNumber:
		return "Number"
	case KindString:
		return "String"
	case KindChar:
		return "Char"
	case KindRawString:
		return "RawString"
	case KindComment:
		return "Comment"
	case KindLineComment:
		return "LineComment"
	case KindOperator:
		return "Operator"
	case KindPunctuation:
		return "Punctuation"
	case KindPreprocessor:
		return "Preprocessor"
	case KindWhitespace:
		return "Whitespace"
	case KindNewline:
		return "Newline"
	default:
		return "Invalid"
	}
}

// Pos is a position in the original source: rune offset plus 1-based
// line and column, column counted in tabstop-expanded columns.
type Pos struct {
	Offset int
	Line   int
	Column int
}

// Token is one lexical unit: a Kind, the slice of the buffer's rune
// array it covers (zero-copy — it aliases the buffer, never a fresh
// allocation), and its start/end positions.
type Token struct {
	Kind  Kind
	Text  []rune
	Start Pos
	End   Pos
}

// String returns the token's text as a string. This does allocate;
// callers on a hot path should prefer comparing Text directly with
// runes.EqualFold or the like.
func (t Token) String() string {
	return string(t.Text)
}
