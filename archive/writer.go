// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package archive

import (
	"fmt"
	"io"

	"github.com/jinzhu/copier"

	"github.com/srcml-go/srcml/parser"
	"github.com/srcml-go/srcml/writer"
)

// UnitAttrs is the set of attributes a [Writer] writes on a unit's start
// tag; it mirrors [UnitHeader] but is named separately since writing and
// reading attributes are conceptually distinct operations that happen to
// share a shape today.
type UnitAttrs struct {
	Language  string
	Filename  string
	Directory string
	Version   string
	Timestamp string
	Hash      string
	Extra     []writer.XMLAttr
}

func (u UnitAttrs) toXML() []writer.XMLAttr {
	attrs := make([]writer.XMLAttr, 0, 6+len(u.Extra))
	add := func(name, val string) {
		if val != "" {
			attrs = append(attrs, writer.XMLAttr{Name: name, Value: val})
		}
	}
	add("language", u.Language)
	add("filename", u.Filename)
	add("dir", u.Directory)
	add("version", u.Version)
	add("timestamp", u.Timestamp)
	add("hash", u.Hash)
	return append(attrs, u.Extra...)
}

// Inherit copies every zero-valued field of u from defaults, using
// jinzhu/copier so newly added UnitAttrs fields are picked up by this
// inheritance step automatically rather than needing a new hand-written
// field list each time one is added — the same per-unit option
// inheritance spec.md describes an archive performing for every unit
// added to it without an explicit override.
func (u UnitAttrs) Inherit(defaults UnitAttrs) UnitAttrs {
	merged := defaults
	if err := copier.CopyWithOption(&merged, &u, copier.Option{IgnoreEmpty: true}); err != nil {
		return u
	}
	if len(u.Extra) > 0 {
		merged.Extra = u.Extra
	}
	return merged
}

// Writer frames one or more units' event streams as a single srcML
// document: either a bare unit (when Archive is false and exactly one
// unit is ever written) or a multi-unit archive, a <unit> wrapper
// element whose only children are nested <unit> elements.
type Writer struct {
	asm         *writer.Assembler
	ns          *writer.Namespaces
	archiveMode bool
	rootAttrs   UnitAttrs
	opened      bool
	unitCount   int
	withXMLDecl bool
}

// NewWriter returns a Writer over w. archiveMode forces multi-unit
// framing even for a single call to WriteUnit; rootAttrs are the
// collection-level defaults (language, directory, version) written on
// the wrapper element in archive mode, and otherwise unused.
func NewWriter(w io.Writer, ns *writer.Namespaces, enc *writer.OutputEncoder, withPositions, archiveMode, withXMLDecl bool, rootAttrs UnitAttrs) *Writer {
	if ns == nil {
		ns = writer.NewNamespaces()
	}
	return &Writer{
		asm:         writer.New(w, ns, enc, withPositions),
		ns:          ns,
		archiveMode: archiveMode,
		rootAttrs:   rootAttrs,
		withXMLDecl: withXMLDecl,
	}
}

// Open writes the opening of the document: the XML declaration (if
// configured) and, in archive mode, the wrapper <unit> start tag plus
// its namespace declarations. It is called automatically by the first
// WriteUnit if not called explicitly.
func (w *Writer) Open() error {
	if w.opened {
		return nil
	}
	w.opened = true
	if w.withXMLDecl {
		w.asm.WriteXMLDeclaration()
	}
	if w.archiveMode {
		attrs := append(append([]writer.XMLAttr{}, w.rootAttrs.toXML()...), w.ns.Declarations()...)
		w.asm.WriteOpenTag("unit", attrs)
	}
	return nil
}

// WriteUnit writes one unit's parsed event stream (bracketed by
// parser.StartUnit/EndUnit). In non-archive mode this may be called at
// most once; in archive mode it writes a nested <unit> inside the
// already-open wrapper, re-declaring no namespaces of its own since the
// wrapper already declared them (unlike [Writer.WriteRaw], which copies
// an independently-sourced fragment and must re-declare them itself).
func (w *Writer) WriteUnit(attrs UnitAttrs, events []parser.Event) error {
	if err := w.Open(); err != nil {
		return err
	}
	if !w.archiveMode && w.unitCount > 0 {
		return fmt.Errorf("archive: WriteUnit called more than once without archive mode")
	}
	w.unitCount++
	if w.archiveMode {
		return w.asm.WriteUnitNoNamespaces("unit", attrs.toXML(), events)
	}
	return w.asm.WriteUnit("unit", attrs.toXML(), events)
}

// Close finishes the document: in archive mode, closes the wrapper
// element; always flushes buffered output.
func (w *Writer) Close() error {
	if w.archiveMode && w.opened {
		w.asm.WriteCloseTag("unit")
	}
	return w.asm.Flush()
}
