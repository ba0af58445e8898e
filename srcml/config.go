// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/srcml-go/srcml/base/iox"
)

// ExtensionMapping binds one filename extension to a language tag, the
// serializable form of a call to Archive.RegisterExtension.
type ExtensionMapping struct {
	Extension string `yaml:"extension" toml:"extension"`
	Language  string `yaml:"language" toml:"language"`
}

// NamespaceMapping binds one prefix to a URI, the serializable form of a
// call to Archive.RegisterNamespace.
type NamespaceMapping struct {
	Prefix string `yaml:"prefix" toml:"prefix"`
	URI    string `yaml:"uri" toml:"uri"`
}

// Config is the serializable form of the settings an [Archive] is built
// from, loaded once at startup from a YAML or TOML file rather than
// assembled with Set* calls. Options itself stays a plain uint64 bitmask
// per spec.md §3; Config only names the flags that should be on by name,
// so a config file doesn't need to know the bit layout.
type Config struct {
	DefaultLanguage string `yaml:"default_language" toml:"default_language"`
	Tabstop         int    `yaml:"tabstop" toml:"tabstop"`
	Encoding        string `yaml:"encoding" toml:"encoding"`

	Options []string `yaml:"options" toml:"options"`

	Namespaces []NamespaceMapping `yaml:"namespaces" toml:"namespaces"`
	Extensions []ExtensionMapping `yaml:"extensions" toml:"extensions"`
	Macros     []string           `yaml:"macros" toml:"macros"`
}

// optionNames maps a Config.Options entry to its bit, the inverse of the
// names srcmlrc authors already know from the command-line flags.
var optionNames = map[string]Options{
	"archive":         OptionArchive,
	"position":        OptionPositions,
	"hash":            OptionHash,
	"timestamp":       OptionTimestamp,
	"cpp-markup-else": OptionCppMarkupElse,
	"cpp-text-else":   OptionCppTextualMarkup,
	"operator":        OptionOperatorMarkup,
	"literal":         OptionLiteralMarkup,
	"modifier":        OptionModifierMarkup,
	"openmp":          OptionOpenMPMarkup,
	"macro-markup":    OptionMacroMarkup,
	"xml-decl":        OptionXMLDeclaration,
	"interactive":     OptionInteractive,
	"namespace-decl":  OptionNamespaceDecl,
	"encoding-strict": OptionEncodingStrict,
	"debug-timing":    OptionDebugTimingAttr,
}

var languageNames = map[string]Language{
	"C":       C,
	"C++":     CXX,
	"C++11":   CXX0X,
	"CXX0X":   CXX0X,
	"Java":    JAVA,
	"AspectJ": ASPECTJ,
	"C#":      CSHARP,
}

// yamlDecoderFunc and tomlDecoderFunc adapt the stdlib-shaped yaml.v3 and
// go-toml/v2 Decoders to base/iox's DecoderFunc, the same wrapping the
// teacher applies to its own Decoder implementations in base/iox.
var yamlDecoderFunc = iox.NewDecoderFunc(func(r io.Reader) *yaml.Decoder { return yaml.NewDecoder(r) })
var tomlDecoderFunc = iox.NewDecoderFunc(func(r io.Reader) *toml.Decoder { return toml.NewDecoder(r) })

// LoadConfig reads a Config from path, choosing YAML or TOML decoding by
// the file's extension (".yml"/".yaml" for YAML, anything else for TOML).
// A leading "~" in path is expanded to the user's home directory, so
// callers can pass a literal "~/.srcmlrc" without resolving it themselves.
func LoadConfig(path string) (Config, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return Config{}, &IoError{Path: path, Err: err}
	}
	var cfg Config
	decoder := tomlDecoderFunc
	if ext := strings.ToLower(filepath.Ext(expanded)); ext == ".yml" || ext == ".yaml" {
		decoder = yamlDecoderFunc
	}
	if err := iox.Open(&cfg, expanded, decoder); err != nil {
		return Config{}, &IoError{Path: expanded, Err: err}
	}
	return cfg, nil
}

// OptionBitmask returns the Options bitmask named by cfg.Options; unrecognized
// names are ignored rather than rejected, since a newer config written
// against a future option set should still load under an older binary.
func (cfg Config) OptionBitmask() Options {
	var opts Options
	for _, name := range cfg.Options {
		if bit, ok := optionNames[strings.ToLower(name)]; ok {
			opts = opts.With(bit)
		}
	}
	return opts
}

// Language returns the Language named by cfg.DefaultLanguage, or Unknown
// if it names no recognized language.
func (cfg Config) Language() Language {
	return languageNames[cfg.DefaultLanguage]
}

// NewArchive builds an Archive from cfg: its option bitmask, tabstop,
// encoding, default language, and every registered namespace, extension,
// and macro.
func (cfg Config) NewArchive() (*Archive, error) {
	a := NewArchive(cfg.OptionBitmask())
	if cfg.Tabstop > 0 {
		a.SetTabstop(cfg.Tabstop)
	}
	if cfg.Encoding != "" {
		if err := a.SetEncoding(cfg.Encoding); err != nil {
			return nil, err
		}
	}
	if lang := cfg.Language(); lang != Unknown {
		a.SetDefaultLanguage(lang)
	}
	for _, ns := range cfg.Namespaces {
		if err := a.RegisterNamespace(ns.Prefix, ns.URI); err != nil {
			return nil, err
		}
	}
	for _, ext := range cfg.Extensions {
		if lang, ok := languageNames[ext.Language]; ok {
			a.RegisterExtension(ext.Extension, lang)
		}
	}
	for _, m := range cfg.Macros {
		a.RegisterMacro(m)
	}
	return a, nil
}
