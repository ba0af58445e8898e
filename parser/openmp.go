// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import "strings"

// ompDirective reports whether a "#pragma ..." line's remainder is an
// OpenMP directive ("omp <name> <clauses...>"), returning the directive
// name (parallel, for, sections, critical, ...) and the raw clause text.
func ompDirective(pragmaRest string) (name, clauses string, ok bool) {
	fields := strings.Fields(pragmaRest)
	if len(fields) < 2 || fields[0] != "omp" {
		return "", "", false
	}
	name = fields[1]
	clauses = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(pragmaRest, "omp"), " "))
	clauses = strings.TrimSpace(strings.TrimPrefix(clauses, name))
	return name, strings.TrimSpace(clauses), true
}
