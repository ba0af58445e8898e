// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/srcml-go/srcml/lexer"
)

// ErrCancelled is returned, wrapped, when Run's context is cancelled
// mid-parse. Package srcml tests for it with errors.Is and reports its
// own ErrCancelled in its place.
var ErrCancelled = errors.New("parser: cancelled")

// InvariantError reports a parser bookkeeping bug: something this
// package is supposed to guarantee unconditionally didn't hold; the one
// case Run reports is a mode-stack pop on an empty stack (see popMode).
// It is never caused by the shape of the input, however malformed.
type InvariantError struct {
	What string
}

func (e *InvariantError) Error() string { return "parser: invariant violated: " + e.What }

// Parser is a one-shot recursive-descent engine: construct with [New],
// call [Parser.Run] exactly once, discard.
type Parser struct {
	lex         *lexer.Lexer
	queue       []lexer.Token
	flags       Flags
	userMacros  map[string]bool
	hasGenerics bool

	ctx   context.Context
	state State
	cpp   []cppFrame
	elems []string
	out   []Event
	prev  lexer.Token

	// truncated records that the input ended before every open element
	// or preprocessor frame was closed — a malformed-input condition,
	// not a parser bug. invariantErr instead records a genuine bookkeeping
	// bug (an empty-stack pop); it is always fatal, see popMode.
	truncated    bool
	invariantErr error
}

type cppFrame struct {
	open string // "" or the currently open wrapper element name
}

// New returns a Parser over lex. languageTag is the small integer tag
// backing one of srcml's Language constants (1=C through 6=CSHARP); it
// only affects whether the '<' template/generic-open heuristic runs (C
// has no such construct).
func New(lex *lexer.Lexer, languageTag int32, flags Flags, userMacros map[string]bool) *Parser {
	if userMacros == nil {
		userMacros = map[string]bool{}
	}
	return &Parser{
		lex:         lex,
		flags:       flags,
		userMacros:  userMacros,
		hasGenerics: languageTag != 1, // not plain C
		state:       NewState(),
	}
}

// Run parses the entire buffer and returns its event stream: StartUnit,
// ..., EndUnit. It checks ctx for cancellation between tokens and
// returns a wrapped ErrCancelled as soon as it's seen — parsing is not
// resumable, a cancelled Run's partial output must be discarded.
func (p *Parser) Run(ctx context.Context) ([]Event, error) {
	p.ctx = ctx
	p.emit(Event{Kind: StartUnit})
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrCancelled, err)
		}
		tok := p.next()
		if tok.Kind == lexer.KindEOF {
			break
		}
		p.dispatchStatement(tok)
	}
	if len(p.elems) > 0 || len(p.cpp) > 0 {
		p.truncated = true
	}
	for len(p.elems) > 0 {
		p.closeElem()
	}
	for len(p.cpp) > 0 {
		p.closeCppFrame()
	}
	if p.invariantErr != nil {
		return nil, p.invariantErr
	}
	// An unexpected EOF while the mode stack is still open is not fatal:
	// synthesize the missing pops to balance it, and mark the unit when
	// the debug namespace is enabled instead of failing the translation.
	for !p.state.AtTopLevel() {
		p.truncated = true
		p.popMode()
		if p.invariantErr != nil {
			return nil, p.invariantErr
		}
	}
	if p.truncated && p.flags.Has(FlagDebugNamespace) {
		p.out[0].Attrs = append(p.out[0].Attrs, Attr{Name: "debug:error", Value: "true"})
	}
	p.emit(Event{Kind: EndUnit})
	return p.out, nil
}

func (p *Parser) emit(e Event) { p.out = append(p.out, e) }

func (p *Parser) openElem(name string, attrs ...Attr) {
	p.emit(Event{Kind: StartElement, Name: name, Attrs: attrs})
	p.elems = append(p.elems, name)
}

func (p *Parser) closeElem() {
	p.emit(Event{Kind: EndElement})
	p.elems = p.elems[:len(p.elems)-1]
}

func (p *Parser) closeCppFrame() {
	top := p.cpp[len(p.cpp)-1]
	if top.open != "" {
		p.emit(Event{Kind: EndElement})
	}
	p.cpp = p.cpp[:len(p.cpp)-1]
}

func (p *Parser) pushMode(m Mode) { p.state = p.state.Push(m) }

// popMode pops the mode stack. Popping an already-empty stack is the one
// true parser bug this package guarantees can't happen on well-formed
// control flow (every push has a matching pop); surfacing it as a fatal
// invariantErr, rather than silently doing nothing, is what lets Run
// distinguish a bookkeeping bug from ordinary malformed input.
func (p *Parser) popMode() {
	s, ok := p.state.Pop()
	if !ok {
		if p.invariantErr == nil {
			p.invariantErr = &InvariantError{What: "mode stack pop on empty stack"}
		}
		return
	}
	p.state = s
}

func (p *Parser) next() lexer.Token {
	if len(p.queue) > 0 {
		t := p.queue[0]
		p.queue = p.queue[1:]
		return t
	}
	return p.lex.Next()
}

// peek ensures at least n+1 tokens are queued and returns the nth
// (0-based) without consuming any of them.
func (p *Parser) peek(n int) lexer.Token {
	for len(p.queue) <= n {
		p.queue = append(p.queue, p.lex.Next())
		if p.queue[len(p.queue)-1].Kind == lexer.KindEOF {
			break
		}
	}
	if n >= len(p.queue) {
		return p.queue[len(p.queue)-1]
	}
	return p.queue[n]
}

func isTrivial(k lexer.Kind) bool {
	return k == lexer.KindWhitespace || k == lexer.KindNewline ||
		k == lexer.KindComment || k == lexer.KindLineComment
}

// peekSignificant returns the first non-trivial queued token, filling
// the queue as needed, bounded to avoid runaway scans on pathological
// input.
func (p *Parser) peekSignificant() lexer.Token {
	for i := 0; i < 64; i++ {
		t := p.peek(i)
		if t.Kind == lexer.KindEOF || !isTrivial(t.Kind) {
			return t
		}
	}
	return p.peek(63)
}

func (p *Parser) dispatch(tok lexer.Token) {
	if !isTrivial(tok.Kind) {
		defer func() { p.prev = tok }()
	}
	switch tok.Kind {
	case lexer.KindWhitespace, lexer.KindNewline:
		p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	case lexer.KindComment:
		p.dispatchComment(tok)
	case lexer.KindLineComment:
		p.wrapLiteralText("comment", tok, Attr{"type", "line"})
	case lexer.KindString:
		p.dispatchLiteral("string", tok)
	case lexer.KindChar:
		p.dispatchLiteral("char", tok)
	case lexer.KindRawString:
		p.dispatchLiteral("string", tok)
	case lexer.KindNumber:
		p.dispatchLiteral("number", tok)
	case lexer.KindPreprocessor:
		p.dispatchPreprocessor(tok)
	case lexer.KindKeyword:
		p.dispatchKeyword(tok)
	case lexer.KindName:
		p.dispatchName(tok)
	case lexer.KindOperator:
		p.dispatchOperator(tok)
	case lexer.KindPunctuation:
		p.dispatchPunctuation(tok)
	default:
		p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	}
}

func (p *Parser) wrapLiteralText(elem string, tok lexer.Token, attrs ...Attr) {
	p.openElem(elem, attrs...)
	p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	p.closeElem()
}

// dispatchComment wraps a block comment token, flagging the unit as
// truncated when the comment text the lexer handed back doesn't end in
// "*/" — the input ended mid-comment.
func (p *Parser) dispatchComment(tok lexer.Token) {
	if !strings.HasSuffix(tok.String(), "*/") {
		p.truncated = true
	}
	p.wrapLiteralText("comment", tok, Attr{"type", "block"})
}

func (p *Parser) dispatchLiteral(kind string, tok lexer.Token) {
	if !p.flags.Has(FlagLiteralMarkup) {
		p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
		return
	}
	p.wrapLiteralText("literal", tok, Attr{"type", kind})
}

func (p *Parser) dispatchKeyword(tok lexer.Token) {
	name := tok.String()
	if modifierKeywords[name] && p.flags.Has(FlagModifierMarkup) {
		p.wrapLiteralText("modifier", tok)
		return
	}
	p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
}

func (p *Parser) dispatchName(tok lexer.Token) {
	name := tok.String()
	next := p.peekSignificant()
	if next.Kind == lexer.KindPunctuation && next.String() == "(" {
		p.openElem("call")
		p.wrapLiteralText("name", tok)
		p.next() // consumes '('
		p.openElem("argument_list")
		p.pushMode(ModeArgumentList)
		p.parseRegion("", ")", ModeArgumentList)
		p.popMode()
		p.closeElem() // argument_list
		p.closeElem() // call
		return
	}
	if p.flags.Has(FlagMacroMarkup) && isMacroCall(name, p.userMacros) {
		p.wrapLiteralText("macro", tok)
		p.emit(Event{Kind: StartElement, Name: "cpp:EMPTY"})
		p.emit(Event{Kind: EndElement})
		return
	}
	p.wrapLiteralText("name", tok)
}

func (p *Parser) dispatchOperator(tok lexer.Token) {
	op := tok.String()
	if op == "<" && p.hasGenerics && looksLikeTemplateOpen(p.prev, p.angleLookahead()) {
		p.openElem("argument_list")
		p.pushMode(ModeTemplateArgumentList)
		p.parseAngleRegion()
		p.popMode()
		p.closeElem()
		return
	}
	if p.flags.Has(FlagOperatorMarkup) {
		p.wrapLiteralText("operator", tok)
		return
	}
	p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
}

// angleLookahead returns the queued tokens available to look ahead past
// a just-seen '<', without consuming them.
func (p *Parser) angleLookahead() []lexer.Token {
	p.peek(48)
	if len(p.queue) > 48 {
		return p.queue[:48]
	}
	return p.queue
}

// parseAngleRegion consumes tokens up to and including the matching '>'
// (or '>>' split across a single token), dispatching each as usual.
func (p *Parser) parseAngleRegion() {
	depth := 1
	for {
		tok := p.next()
		if tok.Kind == lexer.KindEOF {
			return
		}
		if tok.Kind == lexer.KindOperator {
			switch tok.String() {
			case "<":
				depth++
			case ">":
				depth--
				if depth <= 0 {
					return
				}
				continue
			case ">>":
				depth -= 2
				if depth <= 0 {
					return
				}
				continue
			}
		}
		p.dispatch(tok)
	}
}

func (p *Parser) dispatchPunctuation(tok lexer.Token) {
	switch tok.String() {
	case "(":
		p.openElem("argument_list")
		p.pushMode(ModeArgumentList)
		p.parseRegion("", ")", ModeArgumentList)
		p.popMode()
		p.closeElem()
	case "{":
		p.openElem("block")
		p.pushMode(ModeBlock)
		p.parseRegion("", "}", ModeBlock)
		p.popMode()
		p.closeElem()
	case "[":
		p.openElem("index")
		p.pushMode(ModeDeclaration)
		p.parseRegion("", "]", ModeDeclaration)
		p.popMode()
		p.closeElem()
	default:
		p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	}
}

// parseRegion consumes tokens, dispatching each, until a punctuation or
// operator token whose text equals closer is seen (consumed, not
// dispatched) or EOF is reached (tolerated: an unterminated region at
// end of input still closes its element, just without its closer text).
// elem is unused by callers currently (closing is done by the caller);
// kept for symmetry with parseAngleRegion's signature.
func (p *Parser) parseRegion(_ string, closer string, _ Mode) {
	for {
		tok := p.next()
		if tok.Kind == lexer.KindEOF {
			return
		}
		if (tok.Kind == lexer.KindPunctuation || tok.Kind == lexer.KindOperator) && tok.String() == closer {
			return
		}
		p.dispatch(tok)
	}
}

func (p *Parser) dispatchPreprocessor(tok lexer.Token) {
	d := parseCppDirective(tok.String())
	if d.Name == "pragma" {
		if name, clauses, ok := ompDirective(d.Rest); ok && p.flags.Has(FlagOpenMPMarkup) {
			p.openElem("omp:directive", Attr{"name", name})
			p.emit(Event{Kind: Text, Text: []rune(clauses), Pos: tok.Start})
			p.closeElem()
			return
		}
	}
	switch {
	case d.isConditionalOpen():
		p.emitDirective(d, tok)
		if p.flags.Has(FlagCppTextualMarkup) && d.Name == "if" && strings.TrimSpace(d.Rest) == "0" {
			// A conventional #if 0 dead branch: FlagCppTextualMarkup asks
			// for its body to be left as plain text rather than parsed,
			// so skip the cpp:then wrapper entirely and flatten it.
			p.cpp = append(p.cpp, cppFrame{open: ""})
			p.pushMode(ModePreprocessorInactive)
			p.consumeDeadBranchAsText()
			return
		}
		if p.flags.Has(FlagCppMarkupElse) {
			p.openElem("cpp:then")
			p.cpp = append(p.cpp, cppFrame{open: "cpp:then"})
		} else {
			p.cpp = append(p.cpp, cppFrame{open: ""})
		}
		p.pushMode(ModePreprocessor)
	case d.isConditionalBranch():
		if len(p.cpp) > 0 && p.cpp[len(p.cpp)-1].open != "" {
			p.closeElem()
		}
		p.emitDirective(d, tok)
		if p.flags.Has(FlagCppMarkupElse) && len(p.cpp) > 0 {
			p.openElem("cpp:else")
			p.cpp[len(p.cpp)-1].open = "cpp:else"
		}
	case d.isConditionalClose():
		if len(p.cpp) > 0 && p.cpp[len(p.cpp)-1].open != "" {
			p.closeElem()
		}
		p.emitDirective(d, tok)
		if len(p.cpp) > 0 {
			p.cpp = p.cpp[:len(p.cpp)-1]
			p.popMode()
		}
	default:
		p.emitDirective(d, tok)
	}
}

func (p *Parser) emitDirective(d cppDirective, tok lexer.Token) {
	p.openElem(d.elementName())
	p.emit(Event{Kind: Text, Text: []rune(d.Rest), Pos: tok.Start})
	p.closeElem()
}

// consumeDeadBranchAsText accumulates raw token text for an #if 0 body
// until a boundary directive (elif/else/endif) is reached, emits the
// accumulated span as one Text event, then replays that boundary
// directive through the normal preprocessor path so the cpp frame it
// pushed gets closed (or handed to cpp:else) correctly. A nested #if
// inside the dead branch is tracked by depth so its own #endif doesn't
// end ours early.
func (p *Parser) consumeDeadBranchAsText() {
	var text []rune
	var start lexer.Pos
	hasStart := false
	appendTok := func(t lexer.Token) {
		if !hasStart {
			start = t.Start
			hasStart = true
		}
		text = append(text, t.Text...)
	}
	depth := 0
	for {
		tok := p.next()
		if tok.Kind == lexer.KindEOF {
			break
		}
		if tok.Kind == lexer.KindPreprocessor {
			d := parseCppDirective(tok.String())
			switch {
			case depth == 0 && (d.isConditionalBranch() || d.isConditionalClose()):
				if len(text) > 0 {
					p.emit(Event{Kind: Text, Text: text, Pos: start})
				}
				p.dispatchPreprocessor(tok)
				return
			case d.isConditionalOpen():
				depth++
			case d.isConditionalClose():
				depth--
			}
		}
		appendTok(tok)
	}
	if len(text) > 0 {
		p.emit(Event{Kind: Text, Text: text, Pos: start})
	}
	p.truncated = true
}
