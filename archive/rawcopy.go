// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package archive

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/srcml-go/srcml/writer"
)

// WriteRaw copies an existing unit's srcML XML (read, for instance, from
// another archive via [Reader]) into this writer's output unchanged in
// content. When forceNamespaceDecl is set (the caller's OptionNamespaceDecl
// bit — archive cannot depend on srcml to check it directly, so the bool
// crosses the package boundary already resolved), every registered
// namespace prefix is re-declared on the copied root tag, so the fragment
// stays independently well-formed regardless of what namespaces the
// surrounding document happens to have declared already. Without it, the
// copied root tag carries no namespace declarations at all (xmlns
// attributes are never copied from the input), relying on the enclosing
// archive wrapper's own declarations. This is the pass-through path archive-to-archive
// copying and filtering tools use instead of re-lexing and re-parsing
// source that is already in srcML form.
func (w *Writer) WriteRaw(r io.Reader, forceNamespaceDecl bool) error {
	if err := w.Open(); err != nil {
		return err
	}
	w.unitCount++
	dec := xml.NewDecoder(r)
	depth := 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("archive: WriteRaw: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
			attrs := rawElementAttrs(t)
			if depth == 1 && forceNamespaceDecl {
				attrs = append(attrs, w.ns.Declarations()...)
			}
			w.asm.WriteOpenTag(t.Name.Local, attrs)
		case xml.EndElement:
			depth--
			w.asm.WriteCloseTag(t.Name.Local)
		case xml.CharData:
			w.asm.WriteText(string(t))
		}
	}
	return nil
}

func rawElementAttrs(start xml.StartElement) []writer.XMLAttr {
	attrs := make([]writer.XMLAttr, 0, len(start.Attr))
	for _, a := range start.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue // re-declared fresh below, not copied verbatim
		}
		name := a.Name.Local
		if a.Name.Space != "" {
			name = a.Name.Space + ":" + a.Name.Local
		}
		attrs = append(attrs, writer.XMLAttr{Name: name, Value: a.Value})
	}
	return attrs
}
