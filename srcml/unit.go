// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml

import (
	"github.com/Masterminds/semver/v3"

	"github.com/srcml-go/srcml/base/vcs"
	"github.com/srcml-go/srcml/parser"
)

// Attr is a single extra attribute on a unit's root tag, beyond the
// language/filename/directory/version/timestamp/hash fields Unit names
// directly.
type Attr struct {
	Name  string
	Value string
}

// Unit is one translated document: either source bytes waiting to be
// translated, already-translated srcML bytes, or both. At least one of
// SourceBytes or SrcmlBytes must be set for a Unit to be usable.
type Unit struct {
	// Language is the language this unit was (or will be) translated
	// with. It is immutable once translation has run.
	Language Language

	Filename  string
	Directory string

	// Version is the free-form version string written on the unit's
	// root tag — typically a VCS revision, but any string is accepted;
	// see SetVersion for the semver-validating and VCS-filling helpers.
	Version string

	Timestamp string

	// Hash is the SHA-1 hex digest of SourceBytes after CRLF
	// normalization, set during translation when OptionHash is on.
	Hash string

	Encoding string

	SourceBytes []byte
	SrcmlBytes  []byte

	Attrs []Attr

	// DerivedLanguage is the language langdetect would have chosen from
	// Filename alone, recorded even when Language was supplied
	// explicitly — useful for diagnosing extension/override mismatches.
	DerivedLanguage Language

	// ArchiveRef is the 1-based position of this unit within its
	// enclosing archive, or 0 if the unit was not read from one.
	ArchiveRef int

	// events caches the already-translated event stream when this Unit
	// came from TranslateSource/TranslateFile, so Archive.AddUnit does
	// not re-lex and re-parse SourceBytes a second time.
	events []parser.Event
}

// SetVersion validates v as a semantic version when it looks like one
// (leading digit after an optional "v") and normalizes it to semver's
// canonical form; version strings that don't parse as semver (a VCS
// hash, a free-form build tag) are stored verbatim rather than rejected.
func (u *Unit) SetVersion(v string) {
	if sv, err := semver.NewVersion(v); err == nil {
		u.Version = sv.String()
		return
	}
	u.Version = v
}

// FillVersionFromVCS sets Version from the VCS working copy enclosing
// Filename, if one is found and Version is not already set. It never
// returns an error: a missing or undetectable VCS checkout is not a
// translation failure, just an unfilled field.
func (u *Unit) FillVersionFromVCS() {
	if u.Version != "" || u.Filename == "" {
		return
	}
	if ver, ok := vcs.DetectVersion(u.Filename); ok {
		u.Version = ver
	}
}
