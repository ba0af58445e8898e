// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import "github.com/srcml-go/srcml/lexer"

// EventKind discriminates the [Event] sum type.
type EventKind int32

const (
	// StartElement opens an element; always balanced by a later
	// EndElement with the same Name at the same stack depth.
	StartElement EventKind = iota
	// EndElement closes the most recently opened element.
	EndElement
	// Text carries literal character data belonging to the innermost
	// open element.
	Text
	// StartUnit opens the translation unit's root element; emitted
	// exactly once, first.
	StartUnit
	// EndUnit closes the unit; emitted exactly once, last.
	EndUnit
)

// Attr is one XML attribute name/value pair, in emission order.
type Attr struct {
	Name  string
	Value string
}

// Event is one item in the stream a [Parser] produces. Only the fields
// relevant to Kind are meaningful: StartElement/StartUnit use Name and
// Attrs; Text uses Text; EndElement/EndUnit use none beyond Kind and Pos.
type Event struct {
	Kind  EventKind
	Name  string
	Attrs []Attr
	Text  []rune
	Pos   lexer.Pos
}
