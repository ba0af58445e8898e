// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package archive

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcml-go/srcml/parser"
	"github.com/srcml-go/srcml/writer"
)

func unitEvents(text string) []parser.Event {
	return []parser.Event{
		{Kind: parser.StartUnit},
		{Kind: parser.StartElement, Name: "expr_stmt"},
		{Kind: parser.Text, Text: []rune(text)},
		{Kind: parser.EndElement},
		{Kind: parser.EndUnit},
	}
}

func TestWriterBareUnit(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil, nil, false, false, false, UnitAttrs{})
	err := w.WriteUnit(UnitAttrs{Language: "C++", Filename: "a.cpp"}, unitEvents("x;"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<unit language="C++" filename="a.cpp" xmlns=`))
	assert.True(t, strings.HasSuffix(out, "</unit>"))
	assert.Equal(t, 1, strings.Count(out, "<unit"))
}

func TestWriterBareUnitSecondCallErrors(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil, nil, false, false, false, UnitAttrs{})
	require.NoError(t, w.WriteUnit(UnitAttrs{Language: "C++"}, unitEvents("x;")))
	err := w.WriteUnit(UnitAttrs{Language: "C++"}, unitEvents("y;"))
	assert.Error(t, err)
}

func TestWriterArchiveMode(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf, nil, nil, false, true, true, UnitAttrs{Language: "C++", Directory: "src"})
	require.NoError(t, w.WriteUnit(UnitAttrs{Filename: "a.cpp"}, unitEvents("a;")))
	require.NoError(t, w.WriteUnit(UnitAttrs{Filename: "b.cpp"}, unitEvents("b;")))
	require.NoError(t, w.Close())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0"`))
	// exactly one xmlns declaration, on the wrapper, not repeated per nested unit.
	assert.Equal(t, 1, strings.Count(out, `xmlns="`))
	assert.Equal(t, 3, strings.Count(out, "<unit")) // wrapper + two nested
	assert.Equal(t, 3, strings.Count(out, "</unit>"))
	assert.Contains(t, out, `filename="a.cpp"`)
	assert.Contains(t, out, `filename="b.cpp"`)
	// wrapper carries the collection-level defaults, nested units don't repeat them.
	assert.True(t, strings.Contains(out, `dir="src"`))
}

func TestUnitAttrsInherit(t *testing.T) {
	defaults := UnitAttrs{Language: "C++", Directory: "src", Version: "1.0"}
	overridden := UnitAttrs{Filename: "a.cpp"}.Inherit(defaults)
	assert.Equal(t, "C++", overridden.Language)
	assert.Equal(t, "src", overridden.Directory)
	assert.Equal(t, "a.cpp", overridden.Filename)

	explicit := UnitAttrs{Filename: "b.cpp", Language: "JAVA"}.Inherit(defaults)
	assert.Equal(t, "JAVA", explicit.Language)
}

func TestWriterWriteRawReDeclaresNamespaces(t *testing.T) {
	var buf bytes.Buffer
	ns := writer.NewNamespaces()
	w := NewWriter(&buf, ns, nil, false, true, false, UnitAttrs{})
	src := `<unit language="C++" filename="a.cpp"><expr_stmt>x;</expr_stmt></unit>`
	require.NoError(t, w.WriteRaw(strings.NewReader(src), true))
	require.NoError(t, w.Close())

	out := buf.String()
	// the copied unit's own start tag re-declares the default namespace,
	// independent of the wrapper's declaration.
	assert.GreaterOrEqual(t, strings.Count(out, `xmlns="http://www.srcML.org/srcML/src"`), 2)
	assert.Contains(t, out, `<expr_stmt>x;</expr_stmt>`)
}
