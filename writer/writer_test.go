// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package writer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/srcml-go/srcml/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemblerWriteUnit(t *testing.T) {
	events := []parser.Event{
		{Kind: parser.StartUnit},
		{Kind: parser.StartElement, Name: "literal", Attrs: []parser.Attr{{Name: "type", Value: "string"}}},
		{Kind: parser.Text, Text: []rune(`"hi"`)},
		{Kind: parser.EndElement},
		{Kind: parser.EndUnit},
	}
	var buf bytes.Buffer
	a := New(&buf, nil, nil, false)
	err := a.WriteUnit("unit", []XMLAttr{{Name: "language", Value: "C++"}}, events)
	require.NoError(t, err)
	require.NoError(t, a.Flush())

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<unit language="C++" xmlns="http://www.srcML.org/srcML/src"`))
	assert.Contains(t, out, `<literal type="string">"hi"</literal>`)
	assert.True(t, strings.HasSuffix(out, "</unit>"))
}

func TestEscapeText(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp; c", escapeText("a <b> & c"))
}

func TestHashSourceNormalizesCRLF(t *testing.T) {
	a := HashSource([]byte("line1\r\nline2\n"))
	b := HashSource([]byte("line1\nline2\n"))
	assert.Equal(t, a, b)
}

func TestNamespaceRedefinitionRejected(t *testing.T) {
	ns := NewNamespaces()
	err := ns.Register("cpp", "http://example.com/other")
	require.Error(t, err)
	var redefErr *NamespaceRedefinitionError
	assert.ErrorAs(t, err, &redefErr)
}

func TestOutputEncoderFallback(t *testing.T) {
	enc, err := NewOutputEncoder("ISO-8859-1")
	require.NoError(t, err)
	out, err := enc.Encode("café 中")
	require.NoError(t, err)
	assert.Contains(t, string(out), "&#20013;")
}
