// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package writer

import "strings"

// escapeText escapes the minimal set of characters XML requires in
// character data: '&', '<', '>' (the last only because some consumers'
// parsers are lax about literal ']]>' sequences; the well-formedness
// spec only strictly requires it for "]]>").
func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// escapeAttr escapes an attribute value: the text escapes plus the
// double quote (attribute values in this writer are always emitted with
// double quotes, so a single quote is left as is), and tab, newline and
// carriage return as character references.
func escapeAttr(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"\t", "&#9;",
		"\n", "&#10;",
		"\r", "&#13;",
	)
	return r.Replace(s)
}
