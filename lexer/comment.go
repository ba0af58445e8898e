// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

// lexBlockComment consumes a /* ... */ comment starting at the current
// position (the leading "/*" must already be the next two runes). It
// tolerates an unterminated comment at EOF rather than failing: the
// remainder of the buffer is taken as the comment body, consistent with
// srcML's practice of never rejecting a file outright over an
// ill-formed comment.
func (l *Lexer) lexBlockComment() Token {
	start := l.buf.Mark()
	l.buf.Consume() // '/'
	l.buf.Consume() // '*'
	for !l.buf.AtEnd() {
		if l.buf.Current() == '*' && l.buf.Peek(1) == '/' {
			l.buf.Consume()
			l.buf.Consume()
			break
		}
		l.buf.Consume()
	}
	return l.token(KindComment, start)
}

// lexLineComment consumes a // comment to end of line, not including
// the terminating newline.
func (l *Lexer) lexLineComment() Token {
	start := l.buf.Mark()
	l.buf.Consume() // '/'
	l.buf.Consume() // '/'
	for !l.buf.AtEnd() && l.buf.Current() != '\n' {
		l.buf.Consume()
	}
	return l.token(KindLineComment, start)
}
