// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

// Flags mirrors the parse-relevant subset of srcml.Options as its own
// bitmask. Package srcml depends on parser, so parser cannot import
// srcml's Options type directly without a cycle; srcml.flagsFromOptions
// converts one to the other explicitly at the call site, the same
// decoupling trick lexer.keywordSetFor uses for Language.
type Flags uint64

const (
	FlagPositions Flags = 1 << iota
	FlagOperatorMarkup
	FlagLiteralMarkup
	FlagModifierMarkup
	FlagOpenMPMarkup
	FlagMacroMarkup
	FlagCppMarkupElse
	FlagCppTextualMarkup
	FlagDebugNamespace
)

func (f Flags) Has(want Flags) bool { return f&want == want }
