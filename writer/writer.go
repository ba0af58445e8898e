// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package writer

import (
	"bufio"
	"fmt"
	"io"

	"github.com/srcml-go/srcml/lexer"
	"github.com/srcml-go/srcml/parser"
)

// Assembler serializes one or more [parser.Event] streams to an
// io.Writer as namespace-correct XML. It does not own archive framing
// (the root element wrapping several units) — a caller writing an
// archive opens the wrapper itself and calls [Assembler.WriteUnit] once
// per unit; a caller writing a single bare unit document just calls it
// once.
type Assembler struct {
	w             *bufio.Writer
	ns            *Namespaces
	enc           *OutputEncoder
	withPositions bool
	err           error
}

// New returns an Assembler writing to w, using ns for namespace prefix
// resolution (nil means [NewNamespaces]'s defaults) and enc for output
// byte encoding (nil means UTF-8, no conversion).
func New(w io.Writer, ns *Namespaces, enc *OutputEncoder, withPositions bool) *Assembler {
	if ns == nil {
		ns = NewNamespaces()
	}
	if enc == nil {
		enc, _ = NewOutputEncoder("")
	}
	return &Assembler{w: bufio.NewWriter(w), ns: ns, enc: enc, withPositions: withPositions}
}

// WriteOpenTag writes a raw opening tag, not wrapped in any
// StartUnit/EndUnit bookkeeping. It exists for the archive package,
// which needs to open and close the multi-unit wrapper element
// independently of any single unit's event stream.
func (a *Assembler) WriteOpenTag(name string, attrs []XMLAttr) {
	a.writeOpenTag(name, attrs)
}

// WriteCloseTag writes a raw closing tag; see [Assembler.WriteOpenTag].
func (a *Assembler) WriteCloseTag(name string) {
	a.writeCloseTag(name)
}

// WriteText writes raw, escaped character data outside any StartUnit/EndUnit
// bookkeeping; see [Assembler.WriteOpenTag].
func (a *Assembler) WriteText(s string) {
	a.writeText(s)
}

// WriteXMLDeclaration writes the leading processing instruction. Callers
// writing archive-mode output call this once, before the first unit;
// callers writing a bare single-unit document call it before that unit.
func (a *Assembler) WriteXMLDeclaration() {
	a.writeRaw(`<?xml version="1.0" encoding="` + a.enc.Name() + `" standalone="yes"?>` + "\n")
}

// WriteUnit serializes one unit's event stream (which must begin with
// parser.StartUnit and end with parser.EndUnit) as a <unit> element
// named rootElem (normally "unit") carrying rootAttrs plus every
// registered namespace declaration.
func (a *Assembler) WriteUnit(rootElem string, rootAttrs []XMLAttr, events []parser.Event) error {
	return a.writeUnit(rootElem, rootAttrs, events, true)
}

// WriteUnitNoNamespaces is [Assembler.WriteUnit] without namespace
// declarations on the root tag — used for a unit nested inside an
// archive wrapper that already declared them.
func (a *Assembler) WriteUnitNoNamespaces(rootElem string, rootAttrs []XMLAttr, events []parser.Event) error {
	return a.writeUnit(rootElem, rootAttrs, events, false)
}

func (a *Assembler) writeUnit(rootElem string, rootAttrs []XMLAttr, events []parser.Event, declareNamespaces bool) error {
	if a.err != nil {
		return a.err
	}
	if len(events) < 2 || events[0].Kind != parser.StartUnit || events[len(events)-1].Kind != parser.EndUnit {
		return fmt.Errorf("writer: event stream must be bracketed by StartUnit/EndUnit")
	}
	positions := computePositions(events)
	empty := computeEmptyElements(events)
	var names []string
	var selfClosed []bool
	for i, e := range events {
		switch e.Kind {
		case parser.StartUnit:
			attrs := append([]XMLAttr{}, rootAttrs...)
			attrs = append(attrs, attrsToXML(e.Attrs)...)
			if declareNamespaces {
				attrs = append(attrs, a.ns.Declarations()...)
			}
			attrs = append(attrs, a.positionAttrs(i, positions)...)
			if empty[i] {
				a.writeSelfClosingTag(rootElem, attrs)
			} else {
				a.writeOpenTag(rootElem, attrs)
			}
			names = append(names, rootElem)
			selfClosed = append(selfClosed, empty[i])
		case parser.EndUnit:
			name := names[len(names)-1]
			names = names[:len(names)-1]
			closed := selfClosed[len(selfClosed)-1]
			selfClosed = selfClosed[:len(selfClosed)-1]
			if !closed {
				a.writeCloseTag(name)
			}
		case parser.StartElement:
			attrs := attrsToXML(e.Attrs)
			attrs = append(attrs, a.positionAttrs(i, positions)...)
			if empty[i] {
				a.writeSelfClosingTag(e.Name, attrs)
			} else {
				a.writeOpenTag(e.Name, attrs)
			}
			names = append(names, e.Name)
			selfClosed = append(selfClosed, empty[i])
		case parser.EndElement:
			name := names[len(names)-1]
			names = names[:len(names)-1]
			closed := selfClosed[len(selfClosed)-1]
			selfClosed = selfClosed[:len(selfClosed)-1]
			if !closed {
				a.writeCloseTag(name)
			}
		case parser.Text:
			a.writeText(string(e.Text))
		}
	}
	return a.err
}

// computeEmptyElements reports, by event index, which Start* events have
// no content at all — their matching End* event is the very next event,
// so no child element or text could have intervened. Per spec.md §4.5
// ("self-closing form is used for empty elements"), those are written as
// <name/> instead of <name></name>.
func computeEmptyElements(events []parser.Event) []bool {
	empty := make([]bool, len(events))
	for i := 0; i+1 < len(events); i++ {
		switch events[i].Kind {
		case parser.StartElement:
			if events[i+1].Kind == parser.EndElement {
				empty[i] = true
			}
		case parser.StartUnit:
			if events[i+1].Kind == parser.EndUnit {
				empty[i] = true
			}
		}
	}
	return empty
}

// Flush flushes buffered output. archive.Writer calls it from Close;
// nothing in this module calls it after each unit.
func (a *Assembler) Flush() error {
	if a.err != nil {
		return a.err
	}
	return a.w.Flush()
}

func attrsToXML(attrs []parser.Attr) []XMLAttr {
	out := make([]XMLAttr, 0, len(attrs))
	for _, at := range attrs {
		if at.Name == "" {
			continue
		}
		out = append(out, XMLAttr{Name: at.Name, Value: at.Value})
	}
	return out
}

func (a *Assembler) positionAttrs(idx int, positions map[int]posInfo) []XMLAttr {
	if !a.withPositions {
		return nil
	}
	pi, has := positions[idx]
	if !has || !pi.hasStart {
		return nil
	}
	return []XMLAttr{
		{Name: "pos:start", Value: formatPos(pi.start)},
		{Name: "pos:end", Value: formatPos(pi.end)},
	}
}

func formatPos(p lexer.Pos) string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (a *Assembler) writeOpenTag(name string, attrs []XMLAttr) {
	a.writeRaw("<" + name)
	for _, at := range attrs {
		a.writeRaw(fmt.Sprintf(` %s="%s"`, at.Name, escapeAttr(at.Value)))
	}
	a.writeRaw(">")
}

func (a *Assembler) writeCloseTag(name string) {
	a.writeRaw("</" + name + ">")
}

func (a *Assembler) writeSelfClosingTag(name string, attrs []XMLAttr) {
	a.writeRaw("<" + name)
	for _, at := range attrs {
		a.writeRaw(fmt.Sprintf(` %s="%s"`, at.Name, escapeAttr(at.Value)))
	}
	a.writeRaw("/>")
}

func (a *Assembler) writeText(s string) {
	a.writeRaw(escapeText(s))
}

func (a *Assembler) writeRaw(s string) {
	if a.err != nil {
		return
	}
	encoded, err := a.enc.Encode(s)
	if err != nil {
		a.err = err
		return
	}
	if _, err := a.w.Write(encoded); err != nil {
		a.err = err
	}
}

type posInfo struct {
	start, end lexer.Pos
	hasStart   bool
}

// computePositions does a single linear pass over events, tracking which
// elements are currently open, and records the first and last Text
// event position seen while each element was open — the element's
// pos:start/pos:end. An element that never contains a Text event (an
// empty element, e.g. a bare <cpp:EMPTY/>) simply gets no position
// attributes.
func computePositions(events []parser.Event) map[int]posInfo {
	info := make(map[int]posInfo, len(events))
	var open []int
	for i, e := range events {
		switch e.Kind {
		case parser.StartElement, parser.StartUnit:
			open = append(open, i)
			info[i] = posInfo{}
		case parser.EndElement, parser.EndUnit:
			if len(open) > 0 {
				open = open[:len(open)-1]
			}
		case parser.Text:
			for _, idx := range open {
				pi := info[idx]
				if !pi.hasStart {
					pi.start = e.Pos
					pi.hasStart = true
				}
				pi.end = e.Pos
				info[idx] = pi
			}
		}
	}
	return info
}
