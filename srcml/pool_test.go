// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srcml-go/srcml/archive"
)

func writeTempSource(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestPoolTranslatesAndAppendsEverySubmission(t *testing.T) {
	dir := t.TempDir()
	pathA := writeTempSource(t, dir, "a.cpp", "int x;\n")
	pathB := writeTempSource(t, dir, "b.cpp", "int y;\n")
	pathC := writeTempSource(t, dir, "c.cpp", "int z;\n")

	a := NewArchive(DefaultOptions.With(OptionArchive))
	var buf strings.Builder
	require.NoError(t, a.OpenWrite(&buf, archive.UnitAttrs{}))

	pool := NewPool(context.Background(), a, 2)
	pool.Submit(ParseRequest{Path: pathA, Directory: "src"})
	pool.Submit(ParseRequest{Path: pathB, Directory: "src"})
	pool.Submit(ParseRequest{Path: pathC, Directory: "src"})
	require.NoError(t, pool.Wait())
	require.NoError(t, a.Close())

	out := buf.String()
	assert.Equal(t, 4, strings.Count(out, "<unit")) // wrapper + 3 units
	assert.Contains(t, out, `filename="a.cpp"`)
	assert.Contains(t, out, `filename="b.cpp"`)
	assert.Contains(t, out, `filename="c.cpp"`)
	assert.Equal(t, 3, strings.Count(out, `dir="src"`))
}

func TestPoolSurfacesMissingFileAsFirstErr(t *testing.T) {
	dir := t.TempDir()
	pathA := writeTempSource(t, dir, "a.cpp", "int x;\n")

	a := NewArchive(DefaultOptions.With(OptionArchive))
	var buf strings.Builder
	require.NoError(t, a.OpenWrite(&buf, archive.UnitAttrs{}))

	pool := NewPool(context.Background(), a, 2)
	pool.Submit(ParseRequest{Path: pathA})
	pool.Submit(ParseRequest{Path: filepath.Join(dir, "missing.cpp")})
	err := pool.Wait()
	require.Error(t, err)
	var ioErr *IoError
	require.ErrorAs(t, err, &ioErr)
}
