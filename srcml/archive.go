// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml

import (
	"context"
	"fmt"
	"io"

	"github.com/jinzhu/copier"

	"github.com/srcml-go/srcml/archive"
	"github.com/srcml-go/srcml/langdetect"
	"github.com/srcml-go/srcml/writer"
)

// Mode is an [Archive]'s lifecycle state.
type Mode int

const (
	ModeInvalid Mode = iota
	ModeRead
	ModeWrite
)

// Archive is a sequence of units plus the root-level metadata spec.md §3
// assigns it: default language, tabstop, namespace map, extension and
// macro registries, option bitmask, and open mode. It is created empty,
// opened exactly once for read or write, and closed exactly once; it is
// not reusable after Close without a fresh [NewArchive].
type Archive struct {
	mode Mode

	opts            Options
	defaultLanguage Language
	tabstop         int

	namespaces *writer.Namespaces
	detector   *langdetect.Detector
	macros     map[string]bool
	encoding   *writer.OutputEncoder

	w *archive.Writer
	r *archive.Reader

	unitCount int

	// unitDefaults, when non-zero, is merged into every unit added via
	// AddUnit that leaves the corresponding field zero — a convenience
	// for drivers adding many units from one directory that share a
	// directory/version/language.
	unitDefaults Unit
}

// SetUnitDefaults records defaults merged into each subsequent AddUnit
// call's unit for every field the unit itself leaves zero.
func (a *Archive) SetUnitDefaults(defaults Unit) { a.unitDefaults = defaults }

// NewArchive returns an empty, unopened Archive. Its namespace map,
// extension table, and macro table start as copies of the built-in
// defaults — per spec.md §5, "language/extension registries are
// copy-on-create per archive," never shared with any other Archive.
func NewArchive(opts Options) *Archive {
	return &Archive{
		opts:       opts,
		tabstop:    8,
		namespaces: writer.NewNamespaces(),
		detector:   langdetect.New(),
		macros:     map[string]bool{},
	}
}

// Options returns the archive's option bitmask.
func (a *Archive) Options() Options { return a.opts }

// SetOptions replaces the archive's option bitmask. The output-framing
// bits (OptionArchive, OptionPositions, OptionXMLDeclaration) are
// captured into the underlying archive.Writer at OpenWrite and are not
// live afterward; the other bits are read on each AddUnit/AddRaw call.
func (a *Archive) SetOptions(opts Options) { a.opts = opts }

// SetDefaultLanguage sets the language assumed for a unit added without
// an explicit language when extension-based detection also fails.
func (a *Archive) SetDefaultLanguage(l Language) { a.defaultLanguage = l }

// SetTabstop records a tab-expansion width on the archive. The width is
// not passed on to translation: the character buffer that counts columns
// always expands tabs to 8 columns.
func (a *Archive) SetTabstop(n int) { a.tabstop = n }

// SetEncoding sets the output byte encoding (e.g. "UTF-8", "ISO-8859-1").
// An empty name means UTF-8; a name the underlying
// [writer.OutputEncoder] does not recognise returns an error and leaves
// the encoding unchanged.
func (a *Archive) SetEncoding(name string) error {
	enc, err := writer.NewOutputEncoder(name)
	if err != nil {
		return err
	}
	a.encoding = enc
	return nil
}

// RegisterExtension adds a user override to the archive's copy of the
// extension-to-language table, searched before the built-in table.
func (a *Archive) RegisterExtension(ext string, l Language) {
	a.detector.Register(ext, langdetect.Tag(l))
}

// RegisterMacro marks name as a user-defined macro, so calls to it are
// recognized even when it isn't in ALL_CAPS form.
func (a *Archive) RegisterMacro(name string) { a.macros[name] = true }

// RegisterNamespace binds prefix to uri, rejecting a conflicting
// rebinding of an already-registered prefix.
func (a *Archive) RegisterNamespace(prefix, uri string) error {
	return a.namespaces.Register(prefix, uri)
}

// OpenWrite opens the archive for writing to w. rootAttrs are the
// collection-level defaults written on the wrapper element when
// [OptionArchive] is set; they are otherwise unused.
func (a *Archive) OpenWrite(w io.Writer, rootAttrs archive.UnitAttrs) error {
	if a.mode != ModeInvalid {
		return fmt.Errorf("srcml: archive already opened")
	}
	a.mode = ModeWrite
	enc := a.encoding
	if enc == nil {
		var err error
		if enc, err = writer.NewOutputEncoder(""); err != nil {
			return err
		}
	}
	a.w = archive.NewWriter(w, a.namespaces, enc, a.opts.Has(OptionPositions),
		a.opts.Has(OptionArchive), a.opts.Has(OptionXMLDeclaration), rootAttrs)
	return nil
}

// OpenRead opens the archive for reading from r.
func (a *Archive) OpenRead(r io.Reader) error {
	if a.mode != ModeInvalid {
		return fmt.Errorf("srcml: archive already opened")
	}
	rd, err := archive.NewReader(r)
	if err != nil {
		return wrapArchiveErr(err)
	}
	a.mode = ModeRead
	a.r = rd
	return nil
}

// AddUnit translates u (if it carries SourceBytes and hasn't been
// translated yet) and appends it to the archive's output. Per-unit
// fields left zero on u are filled from the archive's defaults via
// [copier.CopyWithOption], the same inheritance [archive.UnitAttrs.Inherit]
// performs one level down.
func (a *Archive) AddUnit(ctx context.Context, u Unit) error {
	if a.mode != ModeWrite {
		return fmt.Errorf("srcml: archive not open for write")
	}
	events, src := u.events, u.SourceBytes
	u = mergeDefaults(a.unitDefaults, u)
	u.events, u.SourceBytes = events, src
	if u.events == nil {
		if len(u.SourceBytes) == 0 {
			return &MalformedSrcml{Detail: "unit has neither source bytes nor translated events"}
		}
		lang := u.Language
		if lang == Unknown {
			lang = Language(a.detector.Detect(u.Filename, u.SourceBytes))
		}
		if lang == Unknown {
			lang = a.defaultLanguage
		}
		if lang == Unknown {
			return &UnregisteredExtension{Filename: u.Filename}
		}
		u.Language = lang
		u.DerivedLanguage = lang
		events, err := translateEvents(ctx, lang, u.SourceBytes, a.opts, a.macros)
		if err != nil {
			return err
		}
		u.events = events
		if a.opts.Has(OptionHash) && u.Hash == "" {
			u.Hash = writer.HashSource(u.SourceBytes)
		}
	}
	if err := a.w.WriteUnit(u.unitAttrs(), u.events); err != nil {
		return wrapArchiveErr(err)
	}
	a.unitCount++
	return nil
}

// AddRaw copies an already-serialized srcML unit (read, for instance,
// from another archive) through to this archive's output unchanged,
// without re-lexing or re-parsing it.
func (a *Archive) AddRaw(r io.Reader) error {
	if a.mode != ModeWrite {
		return fmt.Errorf("srcml: archive not open for write")
	}
	if err := a.w.WriteRaw(r, a.opts.Has(OptionNamespaceDecl)); err != nil {
		return wrapArchiveErr(err)
	}
	a.unitCount++
	return nil
}

// NextUnit reads the next unit's header and srcML body (markup
// preserved) from an archive opened for reading. Returns io.EOF once
// every unit has been consumed.
func (a *Archive) NextUnit() (archive.UnitHeader, string, error) {
	if a.mode != ModeRead {
		return archive.UnitHeader{}, "", fmt.Errorf("srcml: archive not open for read")
	}
	h, err := a.r.ReadUnitHeader()
	if err != nil {
		return archive.UnitHeader{}, "", wrapArchiveErr(err)
	}
	raw, err := a.r.ReadUnitRaw(h)
	if err != nil {
		return archive.UnitHeader{}, "", wrapArchiveErr(err)
	}
	return h, raw, nil
}

// Close finishes the archive: flushing and, in write mode, closing the
// multi-unit wrapper if one was opened. Not reusable afterward.
func (a *Archive) Close() error {
	if a.mode == ModeWrite && a.w != nil {
		return wrapArchiveErr(a.w.Close())
	}
	return nil
}

// mergeDefaults overlays non-zero fields of override onto defaults,
// using jinzhu/copier the same way [archive.UnitAttrs.Inherit] does —
// the archive-level counterpart of that per-unit inheritance, used when
// a driver wants to seed a batch of units from one template.
func mergeDefaults(defaults, override Unit) Unit {
	merged := defaults
	if err := copier.CopyWithOption(&merged, &override, copier.Option{IgnoreEmpty: true}); err != nil {
		return override
	}
	return merged
}
