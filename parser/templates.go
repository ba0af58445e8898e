// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import "github.com/srcml-go/srcml/lexer"

// looksLikeTemplateOpen implements the template-vs-less-than heuristic:
// given the token immediately preceding '<' (prev) and a bounded lookahead
// of the tokens that would follow it, decide whether '<' opens a
// template/generic argument list or is the less-than operator.
//
// The heuristic: prev must be a name (the template/generic being
// instantiated), and scanning forward the tokens up to the matching '>'
// (tracking nested angle depth) must all look like type syntax — names,
// "::", ",", "*", "&", whitespace, or nested angle brackets — with no
// operator that could only appear in an expression (assignment,
// arithmetic, comparison chains) and no semicolon or '{' encountered
// first. This mirrors the scan srcML itself performs; it is a heuristic;
// genuinely ambiguous code (the classic "a < b, c > d" case) is read as a
// template argument list, since every token before the matching '>' is
// type-like; the same shape is how "map<int, int> m" reads.
func looksLikeTemplateOpen(prev lexer.Token, lookahead []lexer.Token) bool {
	if prev.Kind != lexer.KindName {
		return false
	}
	depth := 1
	for _, tok := range lookahead {
		switch tok.Kind {
		case lexer.KindWhitespace, lexer.KindNewline, lexer.KindComment, lexer.KindLineComment:
			continue
		case lexer.KindName, lexer.KindKeyword, lexer.KindNumber:
			continue
		case lexer.KindOperator:
			switch tok.String() {
			case "<":
				depth++
			case ">":
				depth--
				if depth == 0 {
					return true
				}
			case ">>":
				depth -= 2
				if depth <= 0 {
					return true
				}
			case "::", "*", "&", ",", "...":
				continue
			default:
				return false
			}
		case lexer.KindPunctuation:
			switch tok.String() {
			case ";", "{":
				return false
			case "(", ")", "[", "]", ",":
				continue
			default:
				return false
			}
		default:
			return false
		}
	}
	return false
}
