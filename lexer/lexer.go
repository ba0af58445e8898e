// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "unicode"

// Lexer turns a [Buffer] into a stream of [Token] values. It holds no
// parse-mode state of its own (that lives in the parser's mode stack);
// it only knows how to carve the character stream into tokens and
// classify identifiers as keywords.
type Lexer struct {
	buf             *Buffer
	keywords        *KeywordSet
	macros          map[string]bool
	allowRawStrings bool
}

// New returns a Lexer over buf, configured for languageTag (one of the
// small integer tags package srcml's Language constants carry — passed
// as int32 rather than srcml.Language to avoid lexer depending on
// srcml, which depends on lexer). allowRawStrings should be true only
// for CXX0X, where R"(...)" raw string literals are grammatical.
func New(buf *Buffer, languageTag int32, allowRawStrings bool) *Lexer {
	return &Lexer{
		buf:             buf,
		keywords:        keywordSetFor(languageTag),
		macros:          make(map[string]bool),
		allowRawStrings: allowRawStrings,
	}
}

// RegisterMacro records name as a user-defined macro identifier. The
// lexer's own classification does not consult this table: [Lexer.Next]
// still returns a registered macro name as a plain KindName, and macro
// recognition happens in the parser from the macro table passed to
// parser.New.
func (l *Lexer) RegisterMacro(name string) {
	l.macros[name] = true
}

// token builds a Token of the given kind spanning from start to the
// buffer's current position.
func (l *Lexer) token(kind Kind, start Pos) Token {
	return Token{Kind: kind, Text: l.buf.Slice(start), Start: start, End: l.buf.Mark()}
}

func isNameStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isNameContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsAllCapsMacro reports whether name looks like a preprocessor-style
// macro identifier by the conventional heuristic: two or more
// characters, every letter uppercase, at least one letter present (so
// plain numeric-looking tokens don't qualify). This is used when no
// explicit macro table entry exists, as a fallback guess feeding
// [srcml.OptionMacroMarkup].
func IsAllCapsMacro(name string) bool {
	if len(name) < 2 {
		return false
	}
	hasLetter := false
	for _, r := range name {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// Next consumes and returns the next token from the buffer, or a
// KindEOF token once the buffer is exhausted.
func (l *Lexer) Next() Token {
	if l.buf.AtEnd() {
		start := l.buf.Mark()
		return l.token(KindEOF, start)
	}

	c := l.buf.Current()

	if c == ' ' || c == '\t' || c == '\v' || c == '\f' || c == '\r' {
		return l.lexWhitespace()
	}
	if c == '\n' {
		start := l.buf.Mark()
		l.buf.Consume()
		return l.token(KindNewline, start)
	}
	if c == '#' && l.buf.Column == 1 {
		return l.lexPreprocessor()
	}
	if tok, ok := l.selectMicroLexer(); ok {
		return tok
	}
	if isNameStart(c) {
		return l.lexName()
	}
	if unicode.IsDigit(c) || (c == '.' && unicode.IsDigit(l.buf.Peek(1))) {
		return l.lexNumber()
	}
	return l.lexOperator()
}

func (l *Lexer) lexWhitespace() Token {
	start := l.buf.Mark()
	for {
		c := l.buf.Current()
		if c != ' ' && c != '\t' && c != '\v' && c != '\f' && c != '\r' {
			break
		}
		l.buf.Consume()
	}
	return l.token(KindWhitespace, start)
}

func (l *Lexer) lexPreprocessor() Token {
	start := l.buf.Mark()
	for !l.buf.AtEnd() && l.buf.Current() != '\n' {
		if l.buf.Current() == '\\' && l.buf.Peek(1) == '\n' {
			l.buf.Consume()
			l.buf.Consume()
			continue
		}
		l.buf.Consume()
	}
	return l.token(KindPreprocessor, start)
}

func (l *Lexer) lexName() Token {
	start := l.buf.Mark()
	for isNameContinue(l.buf.Current()) {
		l.buf.Consume()
	}
	tok := l.token(KindName, start)
	name := string(tok.Text)
	if l.keywords.IsReserved(name) {
		tok.Kind = KindKeyword
	}
	return tok
}

// lexNumber consumes an integer or floating literal, including C/C++
// suffixes (u, l, ll, f in any case combination), hex/octal/binary
// prefixes, and a single exponent part; it is deliberately permissive
// rather than a strict validator, since malformed numeric literals in
// real-world source should still round-trip rather than abort the unit.
func (l *Lexer) lexNumber() Token {
	start := l.buf.Mark()
	if l.buf.Current() == '0' && (l.buf.Peek(1) == 'x' || l.buf.Peek(1) == 'X') {
		l.buf.Consume()
		l.buf.Consume()
		for isHexDigit(l.buf.Current()) {
			l.buf.Consume()
		}
	} else if l.buf.Current() == '0' && (l.buf.Peek(1) == 'b' || l.buf.Peek(1) == 'B') {
		l.buf.Consume()
		l.buf.Consume()
		for l.buf.Current() == '0' || l.buf.Current() == '1' {
			l.buf.Consume()
		}
	} else {
		for unicode.IsDigit(l.buf.Current()) {
			l.buf.Consume()
		}
		if l.buf.Current() == '.' {
			l.buf.Consume()
			for unicode.IsDigit(l.buf.Current()) {
				l.buf.Consume()
			}
		}
		if c := l.buf.Current(); c == 'e' || c == 'E' {
			l.buf.Consume()
			if c := l.buf.Current(); c == '+' || c == '-' {
				l.buf.Consume()
			}
			for unicode.IsDigit(l.buf.Current()) {
				l.buf.Consume()
			}
		}
	}
	for isNumberSuffix(l.buf.Current()) {
		l.buf.Consume()
	}
	return l.token(KindNumber, start)
}

func isHexDigit(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isNumberSuffix(r rune) bool {
	switch r {
	case 'u', 'U', 'l', 'L', 'f', 'F':
		return true
	default:
		return false
	}
}

// multiCharOperators lists operator spellings longer than one character,
// ordered longest first so the scan below is greedy.
var multiCharOperators = []string{
	"<<=", ">>=", "...", "->*", "<=>",
	"==", "!=", "<=", ">=", "&&", "||", "++", "--", "->", "::",
	"+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=", "<<", ">>",
	".*",
}

func (l *Lexer) lexOperator() Token {
	start := l.buf.Mark()
	for _, op := range multiCharOperators {
		if l.buf.HasPrefix(op) {
			for range []rune(op) {
				l.buf.Consume()
			}
			return l.token(KindOperator, start)
		}
	}
	c := l.buf.Consume()
	switch c {
	case '(', ')', '{', '}', '[', ']', ';', ',':
		return l.token(KindPunctuation, start)
	default:
		return l.token(KindOperator, start)
	}
}
