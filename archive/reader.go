// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package archive implements the two halves of srcML's archive framing:
// a SAX-style [Reader] that walks an existing srcML document unit by
// unit without materializing the whole tree, and a [Writer] that frames
// one or more unit event streams (produced by package parser by way of
// package writer's [writer.Assembler]) as either a bare single-unit
// document or a multi-unit archive.
package archive

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// MalformedError reports a structural failure of srcML XML framing
// itself (as opposed to a source-language parse error) — an unknown
// root element, a truncated unit header, or similar. Package srcml
// wraps this into its own MalformedSrcml at the public API boundary;
// archive cannot depend on srcml (srcml depends on archive), so it
// keeps its own minimal error type, the same decoupling lexer.decodeError
// and parser.InvariantError use.
type MalformedError struct {
	Detail string
	Err    error
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("archive: malformed srcML: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("archive: malformed srcML: %s", e.Detail)
}

func (e *MalformedError) Unwrap() error { return e.Err }

// RootAttributes holds the attributes read off an archive's outermost
// <unit> element: the collection-level defaults every nested unit
// inherits unless it overrides them, plus the declared namespace map.
type RootAttributes struct {
	Language   string
	Filename   string
	Directory  string
	Version    string
	Namespaces map[string]string
	Attrs      map[string]string

	// SingleUnit is true when the root element has no nested <unit>
	// children — it is itself the one unit, tolerated per srcML's rule
	// that a single-unit document need not be wrapped in a collection
	// element.
	SingleUnit bool
}

// UnitHeader holds one nested unit's start-tag attributes, read without
// consuming its body.
type UnitHeader struct {
	Language  string
	Filename  string
	Directory string
	Version   string
	Timestamp string
	Hash      string
	Encoding  string
	Attrs     map[string]string
}

func (h UnitHeader) toXMLAttrs() []xml.Attr {
	attrs := make([]xml.Attr, 0, 6+len(h.Attrs))
	add := func(name, val string) {
		if val != "" {
			attrs = append(attrs, xml.Attr{Name: xml.Name{Local: name}, Value: val})
		}
	}
	add("language", h.Language)
	add("filename", h.Filename)
	add("dir", h.Directory)
	add("version", h.Version)
	add("timestamp", h.Timestamp)
	add("hash", h.Hash)
	for k, v := range h.Attrs {
		attrs = append(attrs, xml.Attr{Name: xml.Name{Local: k}, Value: v})
	}
	return attrs
}

// Reader is a pull-based, one-pass reader over an srcML document. Its
// zero value is not usable; construct with [NewReader].
type Reader struct {
	dec  *xml.Decoder
	root RootAttributes

	// replay holds tokens already consumed from dec (while probing
	// whether the root is a single unit) that must be delivered to the
	// next reader call before pulling fresh tokens from dec.
	replay []xml.Token

	depth int // nesting depth of the element currently being walked by ReadUnitBody/SkipUnit
	atEOF bool
}

// NewReader wraps r and reads the document's root element, returning the
// collection-level [RootAttributes]. It must be called exactly once,
// before any other Reader method.
func NewReader(r io.Reader) (*Reader, error) {
	dec := xml.NewDecoder(r)
	rd := &Reader{dec: dec}
	root, err := rd.readRoot()
	if err != nil {
		return nil, err
	}
	rd.root = root
	return rd, nil
}

// Root returns the root attributes captured by NewReader.
func (rd *Reader) Root() RootAttributes { return rd.root }

func (rd *Reader) token() (xml.Token, error) {
	if len(rd.replay) > 0 {
		t := rd.replay[0]
		rd.replay = rd.replay[1:]
		return t, nil
	}
	return rd.dec.Token()
}

func (rd *Reader) unreplay(t xml.Token) {
	rd.replay = append([]xml.Token{t}, rd.replay...)
}

func (rd *Reader) readRoot() (RootAttributes, error) {
	for {
		tok, err := rd.token()
		if err != nil {
			return RootAttributes{}, &MalformedError{Detail: "reading root element", Err: err}
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		if start.Name.Local != "unit" {
			return RootAttributes{}, &MalformedError{Detail: fmt.Sprintf("root element is %q, not \"unit\"", start.Name.Local)}
		}
		root := rootFromStart(start)
		next, err := rd.token()
		if err != nil {
			return RootAttributes{}, &MalformedError{Detail: "reading unit body", Err: err}
		}
		if nstart, ok := next.(xml.StartElement); ok && nstart.Name.Local == "unit" {
			root.SingleUnit = false
		} else {
			root.SingleUnit = true
		}
		rd.unreplay(next)
		return root, nil
	}
}

func rootFromStart(start xml.StartElement) RootAttributes {
	root := RootAttributes{Namespaces: map[string]string{}, Attrs: map[string]string{}}
	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" {
			root.Namespaces[a.Name.Local] = a.Value
			continue
		}
		if a.Name.Space == "" && a.Name.Local == "xmlns" {
			root.Namespaces[""] = a.Value
			continue
		}
		switch a.Name.Local {
		case "language":
			root.Language = a.Value
		case "filename":
			root.Filename = a.Value
		case "dir":
			root.Directory = a.Value
		case "version":
			root.Version = a.Value
		default:
			root.Attrs[a.Name.Local] = a.Value
		}
	}
	return root
}

func headerFromStart(start xml.StartElement) UnitHeader {
	h := UnitHeader{Attrs: map[string]string{}}
	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		switch a.Name.Local {
		case "language":
			h.Language = a.Value
		case "filename":
			h.Filename = a.Value
		case "dir":
			h.Directory = a.Value
		case "version":
			h.Version = a.Value
		case "timestamp":
			h.Timestamp = a.Value
		case "hash":
			h.Hash = a.Value
		default:
			h.Attrs[a.Name.Local] = a.Value
		}
	}
	return h
}

// ReadUnitHeader reads the next nested <unit> start tag and returns its
// attributes without consuming its body. For a [RootAttributes.SingleUnit]
// document it returns the root's own attributes exactly once, treating
// the root element as the one unit. Returns io.EOF once every unit (and
// the closing root tag) has been consumed.
func (rd *Reader) ReadUnitHeader() (UnitHeader, error) {
	if rd.root.SingleUnit {
		if rd.atEOF {
			return UnitHeader{}, io.EOF
		}
		rd.atEOF = true
		return UnitHeader{
			Language: rd.root.Language, Filename: rd.root.Filename,
			Directory: rd.root.Directory, Version: rd.root.Version,
			Attrs: rd.root.Attrs,
		}, nil
	}
	for {
		tok, err := rd.token()
		if err != nil {
			if err == io.EOF {
				return UnitHeader{}, io.EOF
			}
			return UnitHeader{}, &MalformedError{Detail: "reading unit header", Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "unit" {
				return headerFromStart(t), nil
			}
			// unexpected non-unit child of the archive root; skip it
			// rather than fail the whole read.
			if err := rd.skipElement(); err != nil {
				return UnitHeader{}, err
			}
		case xml.EndElement:
			// closing root </unit>: no more units.
			return UnitHeader{}, io.EOF
		}
	}
}

// ReadUnitBody reads and returns the plain-text content of the unit
// whose header was just returned by ReadUnitHeader — every CharData
// token concatenated, with child element markup discarded. Callers that
// need the markup itself (e.g. to copy a unit through unmodified) should
// use [Reader.ReadUnitRaw] instead.
func (rd *Reader) ReadUnitBody() (string, error) {
	var text []byte
	depth := 1
	for depth > 0 {
		tok, err := rd.token()
		if err != nil {
			return "", &MalformedError{Detail: "reading unit body", Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			text = append(text, t...)
		}
	}
	if rd.root.SingleUnit {
		rd.atEOF = true
	}
	return string(text), nil
}

// ReadUnitRaw reads and returns the unit described by h (as just
// returned by ReadUnitHeader) as a well-formed XML fragment, markup and
// all, re-serialized from the token stream rather than copied as raw
// bytes (the xml.Decoder does not expose original byte offsets). The
// returned fragment does not itself declare any namespaces; a caller
// re-emitting it standalone should wrap it the way [Writer.WriteRaw] does.
func (rd *Reader) ReadUnitRaw(h UnitHeader) (string, error) {
	var sb strings.Builder
	prefixOf := make(map[string]string, len(rd.root.Namespaces))
	for prefix, uri := range rd.root.Namespaces {
		prefixOf[uri] = prefix
	}
	qualify := func(n xml.Name) string {
		p, ok := prefixOf[n.Space]
		switch {
		case n.Space == "" || (ok && p == ""):
			return n.Local
		case ok:
			return p + ":" + n.Local
		}
		return n.Space + ":" + n.Local
	}
	writeStart := func(name string, attr []xml.Attr) {
		sb.WriteString("<" + name)
		for _, a := range attr {
			sb.WriteString(fmt.Sprintf(` %s=%q`, qualify(a.Name), a.Value))
		}
		sb.WriteString(">")
	}
	writeStart("unit", h.toXMLAttrs())
	depth := 1
	for depth > 0 {
		tok, err := rd.token()
		if err != nil {
			return "", &MalformedError{Detail: "reading unit body", Err: err}
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			writeStart(qualify(t.Name), t.Attr)
		case xml.EndElement:
			depth--
			sb.WriteString("</" + qualify(t.Name) + ">")
		case xml.CharData:
			xml.EscapeText(&sb, t)
		}
	}
	if rd.root.SingleUnit {
		rd.atEOF = true
	}
	return sb.String(), nil
}

// SkipUnit discards the remainder of the unit whose header was just
// returned, without materializing its text.
func (rd *Reader) SkipUnit() error {
	_, err := rd.ReadUnitBody()
	return err
}

// skipElement discards one element (whose StartElement has just been
// consumed) and its subtree.
func (rd *Reader) skipElement() error {
	depth := 1
	for depth > 0 {
		tok, err := rd.token()
		if err != nil {
			return &MalformedError{Detail: "skipping element", Err: err}
		}
		switch tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return nil
}

// ReadUnitAt skips n-1 units counted from the reader's current position
// and returns the header of the unit it then reaches, with its body left
// unread. n is the 1-based archive index only on a reader that has not
// read any unit yet; the reader does not track how many units it has
// already passed, does not rewind, and reports no error for an index at
// or before units already read.
func (rd *Reader) ReadUnitAt(n int) (UnitHeader, error) {
	for i := 1; i < n; i++ {
		h, err := rd.ReadUnitHeader()
		if err != nil {
			return UnitHeader{}, err
		}
		_ = h
		if err := rd.SkipUnit(); err != nil {
			return UnitHeader{}, err
		}
	}
	return rd.ReadUnitHeader()
}
