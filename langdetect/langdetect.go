// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package langdetect maps a source file's name (and, as a fallback, its
// content) to one of the translator's supported language tags. It mirrors
// the user-override-then-built-in-table-then-content-sniff layering the
// teacher's fileinfo.MimeFromFile uses for MIME detection, specialized to
// the small, closed set of languages the translator understands.
package langdetect

import (
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"github.com/srcml-go/srcml/base/ordmap"
)

// Tag is a bare int32 language tag, mirroring srcml.Language's underlying
// values without importing package srcml (which imports langdetect).
// 0 means unknown/unset.
type Tag int32

const (
	Unknown Tag = iota
	C
	CXX
	CXX0X
	JAVA
	ASPECTJ
	CSHARP
)

// Detector maps filenames to language tags via an insertion-ordered,
// user-registered override table searched first, then a built-in table,
// then (if enabled) content sniffing. The zero value is ready to use.
type Detector struct {
	user *ordmap.Map[string, Tag]

	// CXXHeader selects CXX instead of C for a bare ".h" extension, per
	// the header-language ambiguity every C/C++ analyzer has to resolve
	// one way or another.
	CXXHeader bool

	// SniffContent enables the filetype-based fallback for files whose
	// extension (after checking both tables) is not recognized.
	SniffContent bool

	// WindowsCase, when set, matches extensions case-insensitively.
	// Extension matching is case-sensitive by default; ".C" is CXX but
	// ".c" is C unless this is explicitly turned on.
	WindowsCase bool
}

// New returns a ready-to-use Detector with empty user overrides.
func New() *Detector {
	return &Detector{user: ordmap.New[string, Tag]()}
}

// Register adds or replaces a user extension override, searched before
// the built-in table. ext should include the leading dot (".xh").
func (d *Detector) Register(ext string, tag Tag) {
	if d.user == nil {
		d.user = ordmap.New[string, Tag]()
	}
	d.user.Add(ext, tag)
}

// Detect returns the language tag for filename, consulting the user
// table, then the built-in table, then (if SniffContent and src is
// non-nil) content sniffing. Returns Unknown if nothing matches —
// callers must either supply the language explicitly or skip the file.
func (d *Detector) Detect(filename string, src []byte) Tag {
	ext := filepath.Ext(filename)
	if ext != "" {
		if d.user != nil {
			if tag, has := d.lookupUser(ext); has {
				return tag
			}
		}
		if tag, has := builtinExt(ext, d.CXXHeader, d.WindowsCase); has {
			return tag
		}
	}
	if d.SniffContent && len(src) > 0 {
		if kind, err := filetype.Match(src); err == nil && kind != filetype.Unknown {
			if tag, has := builtinExt("."+kind.Extension, d.CXXHeader, d.WindowsCase); has {
				return tag
			}
		}
	}
	return Unknown
}

func (d *Detector) lookupUser(ext string) (Tag, bool) {
	if idx, has := d.user.Map[ext]; has {
		return d.user.Order[idx].Value, true
	}
	if !d.WindowsCase {
		return Unknown, false
	}
	for _, kv := range d.user.Order {
		if strings.EqualFold(kv.Key, ext) {
			return kv.Value, true
		}
	}
	return Unknown, false
}

// builtinExts is the built-in, insertion-ordered extension table. A
// given extension appears at most once; ".h" is resolved dynamically by
// the caller's CXXHeader preference rather than being listed twice.
var builtinExts = []struct {
	ext string
	tag Tag
}{
	{".c", C},
	{".cpp", CXX}, {".cc", CXX}, {".cxx", CXX}, {".C", CXX},
	{".hpp", CXX}, {".hxx", CXX}, {".h++", CXX}, {".hh", CXX},
	{".java", JAVA},
	{".aj", ASPECTJ},
	{".cs", CSHARP},
}

func builtinExt(ext string, cxxHeader, windowsCase bool) (Tag, bool) {
	matches := func(a, b string) bool {
		if windowsCase {
			return strings.EqualFold(a, b)
		}
		return a == b
	}
	if matches(ext, ".h") {
		if cxxHeader {
			return CXX, true
		}
		return C, true
	}
	for _, e := range builtinExts {
		if matches(e.ext, ext) {
			return e.tag, true
		}
	}
	return Unknown, false
}
