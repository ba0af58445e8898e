// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcml-go/srcml/archive"
)

func TestTranslateSourceDetectsLanguageFromExtension(t *testing.T) {
	u, err := TranslateSource(context.Background(), []byte("int x;\n"), "a.cpp", Unknown, DefaultOptions, nil)
	require.NoError(t, err)
	assert.Equal(t, CXX, u.Language)
	assert.Equal(t, CXX, u.DerivedLanguage)
	assert.NotEmpty(t, u.Hash)
}

func TestTranslateSourceUnregisteredExtension(t *testing.T) {
	_, err := TranslateSource(context.Background(), []byte("x"), "a.xyz", Unknown, DefaultOptions, nil)
	require.Error(t, err)
	var unreg *UnregisteredExtension
	require.ErrorAs(t, err, &unreg)
	assert.Equal(t, "a.xyz", unreg.Filename)
	assert.Equal(t, ".xyz", unreg.Extension)
}

func TestTranslateSourceExplicitLanguageOverridesDetection(t *testing.T) {
	u, err := TranslateSource(context.Background(), []byte("int x;\n"), "a.txt", JAVA, DefaultOptions, nil)
	require.NoError(t, err)
	assert.Equal(t, JAVA, u.Language)
	assert.Equal(t, Unknown, u.DerivedLanguage)
}

func TestTranslateFileWrapsMissingFileAsIoError(t *testing.T) {
	_, err := TranslateFile(context.Background(), "/no/such/file.c", Unknown, DefaultOptions)
	require.Error(t, err)
	var ioErr *IoError
	require.ErrorAs(t, err, &ioErr)
}

func TestArchiveAddUnitTranslatesAndWrites(t *testing.T) {
	a := NewArchive(DefaultOptions)
	var buf strings.Builder
	require.NoError(t, a.OpenWrite(&buf, archive.UnitAttrs{}))

	require.NoError(t, a.AddUnit(context.Background(), Unit{
		Filename:    "a.cpp",
		SourceBytes: []byte("int x;\n"),
	}))
	require.NoError(t, a.Close())

	out := buf.String()
	assert.Contains(t, out, `filename="a.cpp"`)
	assert.Contains(t, out, "x")
}

func TestArchiveAddUnitAcceptsPreTranslatedUnit(t *testing.T) {
	ctx := context.Background()
	u, err := TranslateSource(ctx, []byte("int x;\n"), "a.cpp", Unknown, DefaultOptions, nil)
	require.NoError(t, err)

	a := NewArchive(DefaultOptions)
	var buf strings.Builder
	require.NoError(t, a.OpenWrite(&buf, archive.UnitAttrs{}))
	require.NoError(t, a.AddUnit(ctx, u))
	require.NoError(t, a.Close())

	assert.Contains(t, buf.String(), `filename="a.cpp"`)
}

func TestArchiveAddUnitRejectsEmptyUnit(t *testing.T) {
	a := NewArchive(DefaultOptions)
	var buf strings.Builder
	require.NoError(t, a.OpenWrite(&buf, archive.UnitAttrs{}))

	err := a.AddUnit(context.Background(), Unit{Filename: "empty.cpp"})
	require.Error(t, err)
	var malformed *MalformedSrcml
	require.ErrorAs(t, err, &malformed)
}

func TestArchiveWriteReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	a := NewArchive(DefaultOptions.With(OptionArchive))
	var buf strings.Builder
	require.NoError(t, a.OpenWrite(&buf, archive.UnitAttrs{}))
	require.NoError(t, a.AddUnit(ctx, Unit{Filename: "a.cpp", SourceBytes: []byte("int x;\n")}))
	require.NoError(t, a.AddUnit(ctx, Unit{Filename: "b.cpp", SourceBytes: []byte("int y;\n")}))
	require.NoError(t, a.Close())

	r := NewArchive(DefaultOptions)
	require.NoError(t, r.OpenRead(strings.NewReader(buf.String())))

	h1, raw1, err := r.NextUnit()
	require.NoError(t, err)
	assert.Equal(t, "a.cpp", h1.Filename)
	assert.Contains(t, raw1, "x")

	h2, _, err := r.NextUnit()
	require.NoError(t, err)
	assert.Equal(t, "b.cpp", h2.Filename)
}

func TestArchiveUnitDefaultsAreMerged(t *testing.T) {
	a := NewArchive(DefaultOptions)
	a.SetUnitDefaults(Unit{Directory: "src", Version: "1.0.0"})
	var buf strings.Builder
	require.NoError(t, a.OpenWrite(&buf, archive.UnitAttrs{}))
	require.NoError(t, a.AddUnit(context.Background(), Unit{Filename: "a.cpp", SourceBytes: []byte("int x;\n")}))
	require.NoError(t, a.Close())

	out := buf.String()
	assert.Contains(t, out, `dir="src"`)
	assert.Contains(t, out, `version="1.0.0"`)
}
