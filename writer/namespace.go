// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package writer

import (
	"fmt"

	"github.com/srcml-go/srcml/base/ordmap"
)

// DefaultNamespaces is the prefix->URI table every unit's root element
// declares unless the archive's configuration overrides it. The default
// (unprefixed) namespace is keyed by "".
var DefaultNamespaces = ordmap.Make([]ordmap.KeyValue[string, string]{
	{Key: "", Value: "http://www.srcML.org/srcML/src"},
	{Key: "cpp", Value: "http://www.srcML.org/srcML/cpp"},
	{Key: "omp", Value: "http://www.srcML.org/srcML/omp"},
	{Key: "pos", Value: "http://www.srcML.org/srcML/position"},
	{Key: "debug", Value: "http://www.srcML.org/srcML/debug"},
})

// NamespaceRedefinitionError is returned when a caller tries to register
// a prefix against a different URI than one already bound to it — srcML
// treats the prefix->URI binding as fixed for the life of an archive, so
// silently letting a later registration shadow an earlier one would
// make previously-written units' attributes ambiguous.
type NamespaceRedefinitionError struct {
	Prefix  string
	Old     string
	New     string
}

func (e *NamespaceRedefinitionError) Error() string {
	return fmt.Sprintf("writer: namespace prefix %q already bound to %q, cannot rebind to %q",
		e.Prefix, e.Old, e.New)
}

// Namespaces is an insertion-ordered prefix->URI table with redefinition
// rejection.
type Namespaces struct {
	m *ordmap.Map[string, string]
}

// NewNamespaces returns a Namespaces table seeded with [DefaultNamespaces].
func NewNamespaces() *Namespaces {
	ns := &Namespaces{m: ordmap.New[string, string]()}
	for _, kv := range DefaultNamespaces.Order {
		ns.m.Add(kv.Key, kv.Value)
	}
	return ns
}

// Register binds prefix to uri, returning a [NamespaceRedefinitionError]
// if prefix is already bound to a different uri. Binding the same
// prefix to the same uri again is a no-op, not an error.
func (ns *Namespaces) Register(prefix, uri string) error {
	if old, has := ns.m.ValueByKeyTry(prefix); has {
		if old != uri {
			return &NamespaceRedefinitionError{Prefix: prefix, Old: old, New: uri}
		}
		return nil
	}
	ns.m.Add(prefix, uri)
	return nil
}

// URI returns the URI bound to prefix, and whether it is bound.
func (ns *Namespaces) URI(prefix string) (string, bool) {
	return ns.m.ValueByKeyTry(prefix)
}

// Declarations returns the xmlns attributes for every registered
// namespace, in registration order.
func (ns *Namespaces) Declarations() []XMLAttr {
	out := make([]XMLAttr, 0, ns.m.Len())
	for _, kv := range ns.m.Order {
		name := "xmlns"
		if kv.Key != "" {
			name = "xmlns:" + kv.Key
		}
		out = append(out, XMLAttr{Name: name, Value: kv.Value})
	}
	return out
}

// XMLAttr is a literal name/value attribute pair as written to the
// output stream. Value is held unescaped; [Assembler] escapes it when it
// writes the tag.
type XMLAttr struct {
	Name  string
	Value string
}
