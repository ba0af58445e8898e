// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

// modifierKeywords is the set of reserved words that, in declaration
// position, are markup as <modifier> rather than left as plain keyword
// text — storage class, access, and mutability specifiers shared across
// the supported languages.
var modifierKeywords = map[string]bool{
	"static": true, "const": true, "extern": true, "register": true,
	"volatile": true, "mutable": true, "inline": true, "virtual": true,
	"explicit": true, "friend": true, "typedef": true,
	"public": true, "private": true, "protected": true, "internal": true,
	"abstract": true, "final": true, "synchronized": true, "native": true,
	"transient": true, "strictfp": true, "default": true,
	"readonly": true, "sealed": true, "override": true, "unsafe": true,
	"partial": true, "async": true, "constexpr": true, "thread_local": true,
	"restrict": true,
}
