// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package srcml is the public surface of the translator: it ties together
// the lexer, parser, output assembler, and archive layers (see the
// sibling lexer, parser, writer, and archive packages) behind the Unit
// and Archive data model. One [Archive] is opened for read or write,
// populated with [Unit] values, and closed exactly once; it is not
// reusable after Close without a fresh [NewArchive].
package srcml

// Language identifies which grammar a [Unit]'s source is lexed and
// parsed with. It is immutable for the life of a translator instance:
// nothing in this module ever switches a Unit's Language mid-parse.
type Language int32

// The supported languages and language families. ASPECTJ implies JAVA
// (every AspectJ construct the parser doesn't special-case falls back to
// plain Java grammar), so JavaFamily contains both.
const (
	// Unknown means no language could be determined and none was given
	// explicitly; the caller must supply one or skip the unit.
	Unknown Language = iota
	C
	CXX
	CXX0X
	JAVA
	ASPECTJ
	CSHARP
)

//go:generate stringer -type=Language

func (l Language) String() string {
	switch l {
	case C:
		return "C"
	case CXX:
		return "C++"
	case CXX0X:
		return "C++0x"
	case JAVA:
		return "Java"
	case ASPECTJ:
		return "AspectJ"
	case CSHARP:
		return "C#"
	default:
		return "Unknown"
	}
}

// IsCFamily reports whether l is C, CXX, or CXX0X.
func (l Language) IsCFamily() bool {
	return l == C || l == CXX || l == CXX0X
}

// IsJavaFamily reports whether l is JAVA or ASPECTJ.
func (l Language) IsJavaFamily() bool {
	return l == JAVA || l == ASPECTJ
}

// IsOOFamily reports whether l is in the C family or the Java family
// (i.e. every language except none and, notably, also CSHARP is
// excluded — C# has its own grammar quirks and is tested for directly
// where it matters).
func (l Language) IsOOFamily() bool {
	return l.IsCFamily() || l.IsJavaFamily()
}

// IsCXX reports whether l is CXX or CXX0X — used where a rule applies
// to either C++ standard revision but not to C.
func (l Language) IsCXX() bool {
	return l == CXX || l == CXX0X
}
