// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parser implements the mode-stack recursive-descent engine
// that turns a [lexer.Token] stream into a stream of srcML [Event]
// values (see [Parser.Next]). It knows nothing about XML serialization
// or output encoding — that is the writer package's job — and nothing
// about archive framing, which is the archive package's job.
package parser

// Mode is a bitmask of parser context flags. Unlike a traditional
// parser's call stack alone, srcML's grammar needs explicit side-channel
// state to disambiguate constructs that are only distinguishable by
// surrounding context (is '<' a template open or less-than? is this
// identifier-paren pair a macro call or a declaration?) — Mode plus
// [State.CallStack] is that side channel. uint64 leaves room for modes
// this module doesn't yet define; unused bits must never be interpreted.
type Mode uint64

const (
	ModeTopLevel Mode = 1 << iota
	ModeNamespace
	ModeClassBody
	ModeStructBody
	ModeEnumBody
	ModeFunctionBody
	ModeBlock
	ModeStatement
	ModeExpression
	ModeCondition
	ModeForInit
	ModeParameterList
	ModeArgumentList
	ModeTemplateParameterList
	ModeTemplateArgumentList
	ModeDeclaration
	ModeDeclarationType
	ModeInitializer
	ModeCall
	ModePreprocessor
	ModePreprocessorInactive // inside a false #if/#elif branch
	ModePreprocessorElse     // inside a nested cpp:then/cpp:else region
	ModeOpenMPPragma
	ModeAnnotation // Java annotation / C# attribute
	ModeLambdaBody
	ModeInitList // C++ brace-init-list, ambiguous with block otherwise
	ModeSwitchBody
	ModeTryBlock
	ModeCatchParameter
	ModeEnumeratorList
)

// Has reports whether all bits of want are set in m.
func (m Mode) Has(want Mode) bool { return m&want == want }

// Any reports whether any bit of want is set in m.
func (m Mode) Any(want Mode) bool { return m&want != 0 }

// With returns m with bits added.
func (m Mode) With(bits Mode) Mode { return m | bits }

// Without returns m with bits cleared.
func (m Mode) Without(bits Mode) Mode { return m &^ bits }
