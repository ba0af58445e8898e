// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package srcml

// Options is a bitmask of orthogonal translation switches. It is passed
// down to an [Archive] at creation and applies to every [Unit] added to
// it; a unit carries no option bits of its own. uint64 gives 64
// independent flags, more than this module currently defines; unused
// bits are reserved for future revisions and must round-trip through
// [Archive] untouched.
type Options uint64

// Has reports whether all bits set in want are also set in o.
func (o Options) Has(want Options) bool {
	return o&want == want
}

// Any reports whether any bit set in want is also set in o.
func (o Options) Any(want Options) bool {
	return o&want != 0
}

// With returns o with the given bits set.
func (o Options) With(bits Options) Options {
	return o | bits
}

// Without returns o with the given bits cleared.
func (o Options) Without(bits Options) Options {
	return o &^ bits
}

// Translation and output-shape options.
const (
	// OptionArchive forces archive framing (a single root element wrapping
	// one or more <unit> children) even when only one unit is present.
	// Without it, a single-unit archive is written as a bare unit document
	// (see spec §4.7 / archive.Writer).
	OptionArchive Options = 1 << iota

	// OptionPositions emits pos:start/pos:end attributes on every element
	// that corresponds to a parsed construct.
	OptionPositions

	// OptionHash computes and emits a hash attribute (SHA-1 over the
	// unit's source bytes, normalized to LF line endings) on every unit.
	OptionHash

	// OptionTimestamp is a named bit that no code path reads: setting it
	// does not stamp any unit with its source file's modification time.
	OptionTimestamp

	// OptionCppMarkupElse controls whether #else/#elif branches that are
	// not textually adjacent to their #if are marked up as nested
	// cpp:then/cpp:else regions (on) or left as flat sibling directives
	// (off). Decided ON by default; see DESIGN.md Open Question 1.
	OptionCppMarkupElse

	// OptionCppTextualMarkup parses the contents of inactive
	// preprocessor regions (e.g. #if 0 bodies) as plain text instead of
	// attempting to parse them as source.
	OptionCppTextualMarkup

	// OptionOperatorMarkup wraps operator tokens in <operator> elements.
	OptionOperatorMarkup

	// OptionLiteralMarkup wraps numeric, string, char, and boolean
	// literal tokens in <literal type="..."> elements.
	OptionLiteralMarkup

	// OptionModifierMarkup wraps declaration modifier keywords (static,
	// const, public, ...) in <modifier> elements.
	OptionModifierMarkup

	// OptionOpenMPMarkup parses recognized OpenMP pragma syntax into
	// omp: namespace elements instead of leaving the pragma as plain text.
	OptionOpenMPMarkup

	// OptionMacroMarkup marks up as a macro (<macro> followed by an empty
	// cpp:EMPTY element) an identifier that is registered as a macro (see
	// [Archive.RegisterMacro]) or that the parser's ALL_CAPS heuristic
	// takes for one. The macro table records names only, so every macro
	// gets this same markup; there is no per-entry markup type.
	OptionMacroMarkup

	// OptionXMLDeclaration emits an <?xml version="1.0" ...?> processing
	// instruction at the start of the output, in archive and single-unit
	// mode alike.
	OptionXMLDeclaration

	// OptionInteractive is a named bit that no code path reads: output
	// is buffered across the whole archive and flushed on Close, not
	// after every unit.
	OptionInteractive

	// OptionNamespaceDecl re-declares every namespace prefix used by a
	// unit's root element, even ones already declared by an ancestor
	// archive wrapper. Used by archive.Writer.WriteRaw to make copied
	// unit fragments independently well-formed.
	OptionNamespaceDecl

	// OptionEncodingStrict fails with EncodingError on the first invalid
	// byte sequence, instead of the default behavior of substituting
	// U+FFFD and continuing.
	OptionEncodingStrict

	// OptionDebugTimingAttr is a named bit that no code path reads:
	// setting it emits no per-unit parse-duration attributes. It is never
	// set by default.
	OptionDebugTimingAttr

	// OptionDebugNamespace marks truncated units using the debug:
	// namespace. When a unit's input ends with its element, preprocessor
	// or mode stack still open, the unit's root element gets a
	// debug:error attribute. Truncated input never fails the translation:
	// without this option the unit is closed the same way and carries no
	// marker. Unrecognised regions inside a unit are not marked up.
	OptionDebugNamespace
)

// DefaultOptions is the option set a new [Archive] has unless the caller
// overrides it: position and hash attributes on, operator/literal/modifier
// markup on, cpp else/textual markup on, nothing else.
const DefaultOptions = OptionPositions | OptionHash | OptionOperatorMarkup |
	OptionLiteralMarkup | OptionModifierMarkup | OptionCppMarkupElse | OptionCppTextualMarkup
