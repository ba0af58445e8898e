// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

// KeywordSet is a lookup table of reserved words for one language
// family, plus the handful of identifiers treated as "contextual"
// keywords — words that are reserved only in specific grammatical
// positions (e.g. C#'s "partial", "yield", "where") and so are lexed as
// KindName and reclassified by the parser rather than forced to
// KindKeyword unconditionally here.
type KeywordSet struct {
	Reserved   map[string]bool
	Contextual map[string]bool
}

func newKeywordSet(reserved, contextual []string) *KeywordSet {
	ks := &KeywordSet{
		Reserved:   make(map[string]bool, len(reserved)),
		Contextual: make(map[string]bool, len(contextual)),
	}
	for _, w := range reserved {
		ks.Reserved[w] = true
	}
	for _, w := range contextual {
		ks.Contextual[w] = true
	}
	return ks
}

// IsReserved reports whether name is an unconditional keyword.
func (ks *KeywordSet) IsReserved(name string) bool {
	return ks.Reserved[name]
}

// IsContextual reports whether name is only conditionally a keyword,
// depending on parse position.
func (ks *KeywordSet) IsContextual(name string) bool {
	return ks.Contextual[name]
}

var cKeywords = newKeywordSet([]string{
	"auto", "break", "case", "char", "const", "continue", "default", "do",
	"double", "else", "enum", "extern", "float", "for", "goto", "if",
	"inline", "int", "long", "register", "restrict", "return", "short",
	"signed", "sizeof", "static", "struct", "switch", "typedef", "union",
	"unsigned", "void", "volatile", "while", "_Bool", "_Complex", "_Imaginary",
}, nil)

var cxxKeywords = newKeywordSet([]string{
	"auto", "break", "case", "catch", "char", "class", "const", "const_cast",
	"continue", "default", "delete", "do", "double", "dynamic_cast", "else",
	"enum", "explicit", "export", "extern", "false", "float", "for", "friend",
	"goto", "if", "inline", "int", "long", "mutable", "namespace", "new",
	"operator", "private", "protected", "public", "register",
	"reinterpret_cast", "return", "short", "signed", "sizeof", "static",
	"static_cast", "struct", "switch", "template", "this", "throw", "true",
	"try", "typedef", "typeid", "typename", "union", "unsigned", "using",
	"virtual", "void", "volatile", "while",
}, []string{"final", "override"})

var cxx0xKeywords = newKeywordSet(append(append([]string{}, cxxKeywords.keys()...),
	"alignas", "alignof", "char16_t", "char32_t", "constexpr", "decltype",
	"noexcept", "nullptr", "static_assert", "thread_local"),
	[]string{"final", "override"})

var javaKeywords = newKeywordSet([]string{
	"abstract", "assert", "boolean", "break", "byte", "case", "catch",
	"char", "class", "const", "continue", "default", "do", "double", "else",
	"enum", "extends", "final", "finally", "float", "for", "goto", "if",
	"implements", "import", "instanceof", "int", "interface", "long",
	"native", "new", "package", "private", "protected", "public", "return",
	"short", "static", "strictfp", "super", "switch", "synchronized", "this",
	"throw", "throws", "transient", "try", "void", "volatile", "while",
	"true", "false", "null",
}, []string{"var", "yield", "record", "sealed", "permits"})

var aspectjKeywords = newKeywordSet(append(append([]string{}, javaKeywords.keys()...),
	"aspect", "pointcut", "around", "before", "after", "declare", "privileged"),
	javaKeywords.contextualKeys())

var csharpKeywords = newKeywordSet([]string{
	"abstract", "as", "base", "bool", "break", "byte", "case", "catch",
	"char", "checked", "class", "const", "continue", "decimal", "default",
	"delegate", "do", "double", "else", "enum", "event", "explicit", "extern",
	"false", "finally", "fixed", "float", "for", "foreach", "goto", "if",
	"implicit", "in", "int", "interface", "internal", "is", "lock", "long",
	"namespace", "new", "null", "object", "operator", "out", "override",
	"params", "private", "protected", "public", "readonly", "ref", "return",
	"sbyte", "sealed", "short", "sizeof", "stackalloc", "static", "string",
	"struct", "switch", "this", "throw", "true", "try", "typeof", "uint",
	"ulong", "unchecked", "unsafe", "ushort", "using", "virtual", "void",
	"volatile", "while",
}, []string{"var", "yield", "partial", "async", "await", "get", "set",
	"value", "where", "nameof", "dynamic"})

func (ks *KeywordSet) keys() []string {
	out := make([]string, 0, len(ks.Reserved))
	for k := range ks.Reserved {
		out = append(out, k)
	}
	return out
}

func (ks *KeywordSet) contextualKeys() []string {
	out := make([]string, 0, len(ks.Contextual))
	for k := range ks.Contextual {
		out = append(out, k)
	}
	return out
}

// keywordSetFor returns the keyword table for one of the srcml.Language
// values, identified by its small integer tag to avoid an import cycle
// with package srcml. See lexer.New, which is given this value.
func keywordSetFor(languageTag int32) *KeywordSet {
	switch languageTag {
	case 1: // srcml.C
		return cKeywords
	case 2: // srcml.CXX
		return cxxKeywords
	case 3: // srcml.CXX0X
		return cxx0xKeywords
	case 4: // srcml.JAVA
		return javaKeywords
	case 5: // srcml.ASPECTJ
		return aspectjKeywords
	case 6: // srcml.CSHARP
		return csharpKeywords
	default:
		return cKeywords
	}
}
