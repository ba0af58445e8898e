// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlConfig = `
default_language: C++
tabstop: 4
options:
  - position
  - hash
  - archive
namespaces:
  - prefix: cpp
    uri: http://www.srcML.org/srcML/cpp
extensions:
  - extension: .ipp
    language: C++
macros:
  - ASSERT_CUSTOM
`

const tomlConfig = `
default_language = "Java"
tabstop = 2

[[extensions]]
extension = ".javaish"
language = "Java"
`

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "srcmlrc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yamlConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "C++", cfg.DefaultLanguage)
	assert.Equal(t, 4, cfg.Tabstop)
	assert.Equal(t, CXX, cfg.Language())

	opts := cfg.OptionBitmask()
	assert.True(t, opts.Has(OptionPositions))
	assert.True(t, opts.Has(OptionHash))
	assert.True(t, opts.Has(OptionArchive))

	a, err := cfg.NewArchive()
	require.NoError(t, err)
	require.NotNil(t, a)
}

func TestLoadConfigTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "srcmlrc.toml")
	require.NoError(t, os.WriteFile(path, []byte(tomlConfig), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Java", cfg.DefaultLanguage)
	assert.Equal(t, JAVA, cfg.Language())
	require.Len(t, cfg.Extensions, 1)
	assert.Equal(t, ".javaish", cfg.Extensions[0].Extension)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	var ioErr *IoError
	require.ErrorAs(t, err, &ioErr)
}

func TestConfigNewArchiveAppliesExtensionsAndMacros(t *testing.T) {
	cfg := Config{
		DefaultLanguage: "C++",
		Extensions:      []ExtensionMapping{{Extension: ".ipp", Language: "C++"}},
		Macros:          []string{"LOG_INFO"},
	}
	a, err := cfg.NewArchive()
	require.NoError(t, err)
	assert.Equal(t, CXX, Language(a.detector.Detect("x.ipp", nil)))
	assert.True(t, a.macros["LOG_INFO"])
}
