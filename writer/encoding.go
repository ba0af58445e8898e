// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package writer

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// OutputEncoder converts UTF-8 text to a named output encoding (e.g.
// "ISO-8859-1", "windows-1252", "UTF-16"). The empty string, and
// "UTF-8", both mean no conversion.
type OutputEncoder struct {
	name string
	enc  encoding.Encoding
}

// NewOutputEncoder resolves name via [htmlindex.Get], the same registry
// browsers use for the encodings named in HTML/XML documents, so any
// encoding name srcML's command line historically accepted (e.g. Western
// charsets, Shift-JIS, the usual suspects) resolves the same way here.
func NewOutputEncoder(name string) (*OutputEncoder, error) {
	if name == "" || strings.EqualFold(name, "utf-8") {
		return &OutputEncoder{name: "UTF-8"}, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("writer: unknown output encoding %q: %w", name, err)
	}
	return &OutputEncoder{name: name, enc: enc}, nil
}

// Name returns the resolved encoding name.
func (e *OutputEncoder) Name() string { return e.name }

// Encode converts s from UTF-8 to the target encoding. Runes that have
// no representation in the target encoding are replaced with their
// numeric character reference (&#NNNN;) rather than dropped or
// substituted with '?', so no information is lost even when the output
// encoding can't represent it directly.
func (e *OutputEncoder) Encode(s string) ([]byte, error) {
	if e.enc == nil {
		return []byte(s), nil
	}
	out, err := e.enc.NewEncoder().Bytes([]byte(s))
	if err == nil {
		return out, nil
	}
	return e.encodeWithFallback(s)
}

func (e *OutputEncoder) encodeWithFallback(s string) ([]byte, error) {
	enc := e.enc.NewEncoder()
	var b strings.Builder
	for _, r := range s {
		chunk, err := enc.Bytes([]byte(string(r)))
		if err != nil {
			fmt.Fprintf(&b, "&#%d;", r)
			continue
		}
		b.Write(chunk)
	}
	return []byte(b.String()), nil
}
