// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenize(t *testing.T, src string, languageTag int32, raw bool) []Token {
	t.Helper()
	buf, err := Decode([]byte(src), false)
	require.NoError(t, err)
	lx := New(buf, languageTag, raw)
	var toks []Token
	for {
		tok := lx.Next()
		if tok.Kind == KindEOF {
			break
		}
		toks = append(toks, tok)
	}
	return toks
}

func kinds(toks []Token) []Kind {
	out := make([]Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestLexerKeywordVsName(t *testing.T) {
	toks := tokenize(t, "int x = foo;", 1, false)
	require.Len(t, toks, 8)
	assert.Equal(t, KindKeyword, toks[0].Kind)
	assert.Equal(t, "int", toks[0].String())
	assert.Equal(t, KindName, toks[2].Kind)
	assert.Equal(t, "x", toks[2].String())
	assert.Equal(t, KindName, toks[6].Kind)
	assert.Equal(t, "foo", toks[6].String())
}

func TestLexerBlockComment(t *testing.T) {
	toks := tokenize(t, "/* hi */x", 1, false)
	assert.Equal(t, []Kind{KindComment, KindName}, kinds(toks))
	assert.Equal(t, "/* hi */", toks[0].String())
}

func TestLexerLineComment(t *testing.T) {
	toks := tokenize(t, "// comment\nx", 1, false)
	assert.Equal(t, []Kind{KindLineComment, KindNewline, KindName}, kinds(toks))
}

func TestLexerString(t *testing.T) {
	toks := tokenize(t, `"hi \"there\""`, 1, false)
	require.Len(t, toks, 1)
	assert.Equal(t, KindString, toks[0].Kind)
}

func TestLexerRawString(t *testing.T) {
	toks := tokenize(t, `R"del(a)b(c)del"`, 3, true)
	require.Len(t, toks, 1)
	assert.Equal(t, KindRawString, toks[0].Kind)
	assert.Equal(t, `R"del(a)b(c)del"`, toks[0].String())
}

func TestLexerPreprocessor(t *testing.T) {
	toks := tokenize(t, "#define FOO 1\nx", 1, false)
	assert.Equal(t, []Kind{KindPreprocessor, KindNewline, KindName}, kinds(toks))
}

func TestLexerNumberSuffixes(t *testing.T) {
	toks := tokenize(t, "0x1FuLL", 2, false)
	require.Len(t, toks, 1)
	assert.Equal(t, KindNumber, toks[0].Kind)
	assert.Equal(t, "0x1FuLL", toks[0].String())
}

func TestIsAllCapsMacro(t *testing.T) {
	assert.True(t, IsAllCapsMacro("MAX_SIZE"))
	assert.False(t, IsAllCapsMacro("maxSize"))
	assert.False(t, IsAllCapsMacro("A"))
	assert.False(t, IsAllCapsMacro("123"))
}
