// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import "github.com/srcml-go/srcml/lexer"

// isMacroCall reports whether name should be treated as a macro
// invocation rather than a plain identifier: either it was registered
// explicitly (userMacros), or it passes the ALL_CAPS heuristic.
func isMacroCall(name string, userMacros map[string]bool) bool {
	if userMacros[name] {
		return true
	}
	return lexer.IsAllCapsMacro(name)
}
