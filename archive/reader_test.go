// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package archive

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderMultiUnit(t *testing.T) {
	src := `<unit language="C++" dir="src" xmlns="http://www.srcML.org/srcML/src">` +
		`<unit filename="a.cpp"><expr_stmt>a;</expr_stmt></unit>` +
		`<unit filename="b.cpp"><expr_stmt>b;</expr_stmt></unit>` +
		`</unit>`
	rd, err := NewReader(strings.NewReader(src))
	require.NoError(t, err)
	assert.False(t, rd.Root().SingleUnit)
	assert.Equal(t, "C++", rd.Root().Language)
	assert.Equal(t, "src", rd.Root().Directory)

	h1, err := rd.ReadUnitHeader()
	require.NoError(t, err)
	assert.Equal(t, "a.cpp", h1.Filename)
	body1, err := rd.ReadUnitBody()
	require.NoError(t, err)
	assert.Equal(t, "a;", body1)

	h2, err := rd.ReadUnitHeader()
	require.NoError(t, err)
	assert.Equal(t, "b.cpp", h2.Filename)
	body2, err := rd.ReadUnitBody()
	require.NoError(t, err)
	assert.Equal(t, "b;", body2)

	_, err = rd.ReadUnitHeader()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderSingleUnitDocument(t *testing.T) {
	src := `<unit language="JAVA" filename="Foo.java" xmlns="http://www.srcML.org/srcML/src"><expr_stmt>x;</expr_stmt></unit>`
	rd, err := NewReader(strings.NewReader(src))
	require.NoError(t, err)
	require.True(t, rd.Root().SingleUnit)

	h, err := rd.ReadUnitHeader()
	require.NoError(t, err)
	assert.Equal(t, "Foo.java", h.Filename)
	assert.Equal(t, "JAVA", h.Language)

	body, err := rd.ReadUnitBody()
	require.NoError(t, err)
	assert.Equal(t, "x;", body)

	_, err = rd.ReadUnitHeader()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderSkipUnit(t *testing.T) {
	src := `<unit xmlns="http://www.srcML.org/srcML/src">` +
		`<unit filename="a.cpp"><expr_stmt>a;</expr_stmt></unit>` +
		`<unit filename="b.cpp"><expr_stmt>b;</expr_stmt></unit>` +
		`</unit>`
	rd, err := NewReader(strings.NewReader(src))
	require.NoError(t, err)

	_, err = rd.ReadUnitHeader()
	require.NoError(t, err)
	require.NoError(t, rd.SkipUnit())

	h2, err := rd.ReadUnitHeader()
	require.NoError(t, err)
	assert.Equal(t, "b.cpp", h2.Filename)
}

func TestReaderRejectsNonUnitRoot(t *testing.T) {
	_, err := NewReader(strings.NewReader(`<notaunit></notaunit>`))
	require.Error(t, err)
	var malformed *MalformedError
	assert.ErrorAs(t, err, &malformed)
}

func TestReaderReadUnitRaw(t *testing.T) {
	src := `<unit xmlns="http://www.srcML.org/srcML/src">` +
		`<unit filename="a.cpp"><expr_stmt>a &lt; b;</expr_stmt></unit>` +
		`</unit>`
	rd, err := NewReader(strings.NewReader(src))
	require.NoError(t, err)
	h, err := rd.ReadUnitHeader()
	require.NoError(t, err)
	raw, err := rd.ReadUnitRaw(h)
	require.NoError(t, err)
	assert.Equal(t, `<unit filename="a.cpp"><expr_stmt>a &lt; b;</expr_stmt></unit>`, raw)
}

func TestReaderWriterRoundTrip(t *testing.T) {
	var buf strings.Builder
	w := NewWriter(&buf, nil, nil, false, true, false, UnitAttrs{Language: "C++"})
	require.NoError(t, w.WriteUnit(UnitAttrs{Filename: "a.cpp"}, unitEvents("a;")))
	require.NoError(t, w.WriteUnit(UnitAttrs{Filename: "b.cpp"}, unitEvents("b;")))
	require.NoError(t, w.Close())

	rd, err := NewReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.False(t, rd.Root().SingleUnit)

	h1, err := rd.ReadUnitHeader()
	require.NoError(t, err)
	assert.Equal(t, "a.cpp", h1.Filename)
	body1, err := rd.ReadUnitBody()
	require.NoError(t, err)
	assert.Equal(t, "a;", body1)

	h2, err := rd.ReadUnitHeader()
	require.NoError(t, err)
	assert.Equal(t, "b.cpp", h2.Filename)
	require.NoError(t, rd.SkipUnit())

	_, err = rd.ReadUnitHeader()
	assert.ErrorIs(t, err, io.EOF)
}
