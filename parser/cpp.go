// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import "strings"

// cppDirective holds the parsed shape of one preprocessor line: its
// directive keyword (if, ifdef, ifndef, elif, else, endif, define,
// undef, include, pragma, line, error, warning, or "" for a stray '#'
// with no recognized keyword) and the remainder of the line.
type cppDirective struct {
	Name string
	Rest string
}

var cppDirectiveNames = map[string]bool{
	"if": true, "ifdef": true, "ifndef": true, "elif": true, "else": true,
	"endif": true, "define": true, "undef": true, "include": true,
	"pragma": true, "line": true, "error": true, "warning": true,
	"import": true, "region": true, "endregion": true,
}

// parseCppDirective splits raw preprocessor token text (beginning with
// '#', possibly with leading whitespace already trimmed by the caller)
// into its directive name and remainder.
func parseCppDirective(text string) cppDirective {
	body := strings.TrimLeft(text, "#")
	body = strings.TrimLeft(body, " \t")
	i := 0
	for i < len(body) && (isAlnum(body[i]) || body[i] == '_') {
		i++
	}
	name := body[:i]
	rest := strings.TrimLeft(body[i:], " \t")
	if !cppDirectiveNames[name] {
		return cppDirective{Name: "", Rest: body}
	}
	return cppDirective{Name: name, Rest: rest}
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// isConditionalOpen reports whether d starts a conditional region.
func (d cppDirective) isConditionalOpen() bool {
	return d.Name == "if" || d.Name == "ifdef" || d.Name == "ifndef"
}

// isConditionalBranch reports whether d continues a conditional region
// (elif/else) without opening or fully closing it.
func (d cppDirective) isConditionalBranch() bool {
	return d.Name == "elif" || d.Name == "else"
}

func (d cppDirective) isConditionalClose() bool {
	return d.Name == "endif"
}

// elementName returns the cpp: element name for d.
func (d cppDirective) elementName() string {
	if d.Name == "" {
		return "cpp:directive"
	}
	return "cpp:" + d.Name
}
