// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"context"
	"testing"

	"github.com/srcml-go/srcml/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string, languageTag int32, flags Flags) []Event {
	t.Helper()
	buf, err := lexer.Decode([]byte(src), false)
	require.NoError(t, err)
	lx := lexer.New(buf, languageTag, languageTag == 3)
	p := New(lx, languageTag, flags, nil)
	events, err := p.Run(context.Background())
	require.NoError(t, err)
	return events
}

// assertBalanced checks that StartElement/EndElement nest properly and
// that StartUnit/EndUnit bracket everything exactly once.
func assertBalanced(t *testing.T, events []Event) {
	t.Helper()
	require.NotEmpty(t, events)
	assert.Equal(t, StartUnit, events[0].Kind)
	assert.Equal(t, EndUnit, events[len(events)-1].Kind)
	depth := 0
	for _, e := range events[1 : len(events)-1] {
		switch e.Kind {
		case StartElement:
			depth++
		case EndElement:
			depth--
			require.GreaterOrEqual(t, depth, 0, "unbalanced EndElement")
		}
	}
	assert.Equal(t, 0, depth, "elements left open at end of unit")
}

func TestParserBalanced(t *testing.T) {
	events := run(t, `int main() { return 0; }`, 1, DefaultFlagsForTest())
	assertBalanced(t, events)
}

func TestParserCallArgumentList(t *testing.T) {
	events := run(t, `foo(1, 2);`, 1, DefaultFlagsForTest())
	assertBalanced(t, events)
	var names []string
	for _, e := range events {
		if e.Kind == StartElement {
			names = append(names, e.Name)
		}
	}
	assert.Contains(t, names, "call")
	assert.Contains(t, names, "argument_list")
}

func TestParserLiteralMarkup(t *testing.T) {
	events := run(t, `x = "hi";`, 1, DefaultFlagsForTest())
	assertBalanced(t, events)
	found := false
	for i, e := range events {
		if e.Kind == StartElement && e.Name == "literal" {
			found = true
			assert.Equal(t, Attr{"type", "string"}, e.Attrs[0])
			assert.Equal(t, Text, events[i+1].Kind)
			assert.Equal(t, `"hi"`, string(events[i+1].Text))
		}
	}
	assert.True(t, found)
}

func TestParserCppConditional(t *testing.T) {
	src := "#ifdef DEBUG\nfoo();\n#else\nbar();\n#endif\n"
	events := run(t, src, 1, DefaultFlagsForTest())
	assertBalanced(t, events)
	var names []string
	for _, e := range events {
		if e.Kind == StartElement {
			names = append(names, e.Name)
		}
	}
	assert.Contains(t, names, "cpp:ifdef")
	assert.Contains(t, names, "cpp:else")
	assert.Contains(t, names, "cpp:endif")
	assert.Contains(t, names, "cpp:then")
}

func TestParserTemplateArgumentList(t *testing.T) {
	events := run(t, `vector<int> v;`, 2, DefaultFlagsForTest())
	assertBalanced(t, events)
	count := 0
	for _, e := range events {
		if e.Kind == StartElement && e.Name == "argument_list" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestParserLessThanNotTemplate(t *testing.T) {
	events := run(t, `bool b = a < c;`, 1, DefaultFlagsForTest())
	assertBalanced(t, events)
	for _, e := range events {
		assert.NotEqual(t, "argument_list", e.Name)
	}
}

func TestParserMacroCall(t *testing.T) {
	events := run(t, `ASSERT_DEBUG;`, 1, DefaultFlagsForTest())
	assertBalanced(t, events)
	var names []string
	for _, e := range events {
		if e.Kind == StartElement {
			names = append(names, e.Name)
		}
	}
	assert.Contains(t, names, "macro")
	assert.Contains(t, names, "cpp:EMPTY")
}

// DefaultFlagsForTest is the markup subset of srcml.DefaultOptions
// (operator, literal, modifier, cpp else) plus FlagMacroMarkup, which
// TestParserMacroCall needs; FlagPositions and FlagCppTextualMarkup are
// left out. It is written here rather than imported to avoid a parser->srcml cycle in
// test code (tests live in package parser, same constraint as the
// package itself).
func DefaultFlagsForTest() Flags {
	return FlagOperatorMarkup | FlagLiteralMarkup | FlagModifierMarkup | FlagCppMarkupElse | FlagMacroMarkup
}
