// Copyright (c) 2018, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parser

import "github.com/srcml-go/srcml/lexer"

// This file implements the statement/declaration grammar layered on top
// of parser.go's per-token dispatch. Everything below parser.go's
// dispatch (expressions, argument lists, literals, operators) stays
// token-by-token; dispatchStatement is the one extra layer needed to
// recognize where a declaration, a control-flow construct, or a plain
// expression statement begins, since none of that is visible from a
// single token in isolation — it takes bounded lookahead, the same way
// looksLikeTemplateOpen (templates.go) and isMacroCall (macro.go)
// already do for their own ambiguities. It is original engineering
// against spec.md's vocabulary, not a port: original_source/ has no
// grammar of its own to follow here.

// parseStatementSequence consumes statements until a punctuation or
// operator token whose text equals closer is seen (consumed, not
// emitted) or EOF is reached. closer == "" never matches, which is what
// the unit's top level wants: EOF is its only terminator.
func (p *Parser) parseStatementSequence(closer string) {
	for {
		tok := p.next()
		if tok.Kind == lexer.KindEOF {
			return
		}
		if closer != "" && (tok.Kind == lexer.KindPunctuation || tok.Kind == lexer.KindOperator) && tok.String() == closer {
			return
		}
		p.dispatchStatement(tok)
	}
}

// dispatchStatement routes one token seen at statement-start position.
// Trivia, comments, and preprocessor directives are handled exactly as
// they are mid-expression; a stray top-level ';' is an empty statement;
// anything else begins a new statement, declaration, or definition.
func (p *Parser) dispatchStatement(tok lexer.Token) {
	if !isTrivial(tok.Kind) {
		defer func() { p.prev = tok }()
	}
	switch tok.Kind {
	case lexer.KindWhitespace, lexer.KindNewline:
		p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
		return
	case lexer.KindComment:
		p.dispatchComment(tok)
		return
	case lexer.KindLineComment:
		p.wrapLiteralText("comment", tok, Attr{"type", "line"})
		return
	case lexer.KindPreprocessor:
		p.dispatchPreprocessor(tok)
		return
	case lexer.KindPunctuation:
		switch tok.String() {
		case ";":
			p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
			return
		case "{":
			// A bare compound statement (its own statement, or the body
			// governed by if/while/for/do/switch): statement-aware,
			// unlike dispatchPunctuation's "{" case, which parseRegion
			// still uses for a brace group inside an expression (an
			// initializer list, a lambda body).
			p.parseBlock()
			return
		}
	}
	p.parseStatementStart(tok)
}

// parseBlock wraps a statement-aware compound statement as <block>,
// assuming its opening '{' was already consumed by the caller.
func (p *Parser) parseBlock() {
	p.openElem("block")
	p.pushMode(ModeBlock)
	p.parseStatementSequence("}")
	p.popMode()
	p.closeElem()
}

// parseStatementStart dispatches the control-flow keywords spec.md's
// vocabulary names to their dedicated handlers, and falls back to the
// declaration/expression classifier for everything else.
func (p *Parser) parseStatementStart(tok lexer.Token) {
	if tok.Kind == lexer.KindKeyword {
		switch tok.String() {
		case "if":
			p.parseIfStatement(tok)
			return
		case "while":
			p.parseWhileStatement(tok)
			return
		case "do":
			p.parseDoStatement(tok)
			return
		case "for":
			p.parseForStatement(tok)
			return
		case "switch":
			p.parseSwitchStatement(tok)
			return
		case "case":
			p.parseCaseLabel(tok)
			return
		case "default":
			if p.looksLikeDefaultLabel() {
				p.parseDefaultLabel(tok)
				return
			}
		case "return":
			p.parseReturnStatement(tok)
			return
		case "break":
			p.parseSimpleJump(tok, "break")
			return
		case "continue":
			p.parseSimpleJump(tok, "continue")
			return
		case "class":
			p.parseTypeDefinition(tok, "class")
			return
		case "struct":
			p.parseTypeDefinition(tok, "struct")
			return
		case "enum":
			p.parseEnumDefinition(tok)
			return
		}
	}
	p.parseDeclOrExpr(tok)
}

// drainTrivia consumes and emits any queued whitespace/comment tokens,
// stopping at the first significant one (left unconsumed).
func (p *Parser) drainTrivia() {
	for {
		t := p.peek(0)
		if !isTrivial(t.Kind) {
			return
		}
		p.next()
		if t.Kind == lexer.KindComment {
			p.dispatchComment(t)
			continue
		}
		if t.Kind == lexer.KindLineComment {
			p.wrapLiteralText("comment", t, Attr{"type", "line"})
			continue
		}
		p.emit(Event{Kind: Text, Text: t.Text, Pos: t.Start})
	}
}

// consumeUntilTopLevel dispatches tokens one at a time until a
// punctuation or operator token whose text is one of closers is seen,
// returning it without dispatching it (the caller decides where it
// belongs — inside or outside whatever element is currently open). It
// needs no depth tracking of its own: dispatch's own "(", "[", and "{"
// cases each consume their whole balanced region before returning, so
// the only tokens this loop ever sees directly are ones dispatch treats
// as ordinary content.
func (p *Parser) consumeUntilTopLevel(closers ...string) lexer.Token {
	for {
		tok := p.next()
		if tok.Kind == lexer.KindEOF {
			return tok
		}
		if tok.Kind == lexer.KindPunctuation || tok.Kind == lexer.KindOperator {
			s := tok.String()
			for _, c := range closers {
				if s == c {
					return tok
				}
			}
		}
		p.dispatch(tok)
	}
}

// parseParenWrapped consumes a parenthesized group immediately following
// (after skipping trivia), wrapping it as wrapperElem, with its content
// wrapped in innerElem when innerElem != "" (used for "condition" around
// an if/while/switch test; a for-loop's three-clause header is wrapped
// bare, since it isn't one expression).
func (p *Parser) parseParenWrapped(wrapperElem, innerElem string) {
	p.drainTrivia()
	openParen := p.peek(0)
	if !(openParen.Kind == lexer.KindPunctuation && openParen.String() == "(") {
		return
	}
	p.next()
	p.openElem(wrapperElem)
	p.emit(Event{Kind: Text, Text: openParen.Text, Pos: openParen.Start})
	if innerElem != "" {
		p.openElem(innerElem)
	}
	closeTok := p.consumeUntilTopLevel(")")
	if innerElem != "" {
		p.closeElem()
	}
	if closeTok.Kind != lexer.KindEOF {
		p.emit(Event{Kind: Text, Text: closeTok.Text, Pos: closeTok.Start})
	}
	p.closeElem()
}

// parseControlledStatement parses the single statement (block or bare)
// governed by an if/while/for/do header.
func (p *Parser) parseControlledStatement() {
	p.drainTrivia()
	if p.peek(0).Kind == lexer.KindEOF {
		return
	}
	tok := p.next()
	p.dispatchStatement(tok)
}

func (p *Parser) parseIfStatement(tok lexer.Token) {
	p.openElem("if")
	p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	p.parseParenWrapped("condition", "expr")
	p.parseControlledStatement()
	p.maybeParseElse()
	p.closeElem()
}

func (p *Parser) maybeParseElse() {
	nt := p.peekSignificant()
	if nt.Kind != lexer.KindKeyword || nt.String() != "else" {
		return
	}
	p.drainTrivia()
	elseTok := p.next()
	p.openElem("else")
	p.emit(Event{Kind: Text, Text: elseTok.Text, Pos: elseTok.Start})
	p.parseControlledStatement()
	p.closeElem()
}

func (p *Parser) parseWhileStatement(tok lexer.Token) {
	p.openElem("while")
	p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	p.parseParenWrapped("condition", "expr")
	p.parseControlledStatement()
	p.closeElem()
}

func (p *Parser) parseDoStatement(tok lexer.Token) {
	p.openElem("do")
	p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	p.parseControlledStatement()
	p.drainTrivia()
	if nt := p.peek(0); nt.Kind == lexer.KindKeyword && nt.String() == "while" {
		p.next()
		p.emit(Event{Kind: Text, Text: nt.Text, Pos: nt.Start})
		p.parseParenWrapped("condition", "expr")
		p.drainTrivia()
		if semi := p.peek(0); semi.Kind == lexer.KindPunctuation && semi.String() == ";" {
			p.next()
			p.emit(Event{Kind: Text, Text: semi.Text, Pos: semi.Start})
		}
	}
	p.closeElem()
}

func (p *Parser) parseForStatement(tok lexer.Token) {
	p.openElem("for")
	p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	p.parseParenWrapped("control", "")
	p.parseControlledStatement()
	p.closeElem()
}

func (p *Parser) parseSwitchStatement(tok lexer.Token) {
	p.openElem("switch")
	p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	p.parseParenWrapped("condition", "expr")
	p.parseControlledStatement()
	p.closeElem()
}

func (p *Parser) parseCaseLabel(tok lexer.Token) {
	p.openElem("case")
	p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	p.openElem("expr")
	closeTok := p.consumeUntilTopLevel(":")
	p.closeElem()
	if closeTok.Kind != lexer.KindEOF {
		p.emit(Event{Kind: Text, Text: closeTok.Text, Pos: closeTok.Start})
	}
	p.closeElem()
}

// looksLikeDefaultLabel disambiguates a switch "default:" label from
// Java/C#'s "default" modifier keyword (interface default methods,
// default(T) expressions) — both lex as the same KindKeyword token.
func (p *Parser) looksLikeDefaultLabel() bool {
	for i := 0; i < 8; i++ {
		t := p.peek(i)
		if isTrivial(t.Kind) {
			continue
		}
		return t.Kind == lexer.KindPunctuation && t.String() == ":"
	}
	return false
}

func (p *Parser) parseDefaultLabel(tok lexer.Token) {
	p.openElem("default")
	p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	p.drainTrivia()
	colon := p.next()
	p.emit(Event{Kind: Text, Text: colon.Text, Pos: colon.Start})
	p.closeElem()
}

func (p *Parser) parseReturnStatement(tok lexer.Token) {
	p.openElem("return")
	p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	nt := p.peekSignificant()
	if nt.Kind == lexer.KindPunctuation && nt.String() == ";" {
		p.drainTrivia()
		semi := p.next()
		p.emit(Event{Kind: Text, Text: semi.Text, Pos: semi.Start})
		p.closeElem()
		return
	}
	p.openElem("expr")
	closeTok := p.consumeUntilTopLevel(";")
	p.closeElem()
	if closeTok.Kind != lexer.KindEOF {
		p.emit(Event{Kind: Text, Text: closeTok.Text, Pos: closeTok.Start})
	}
	p.closeElem()
}

func (p *Parser) parseSimpleJump(tok lexer.Token, elem string) {
	p.openElem(elem)
	p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	closeTok := p.consumeUntilTopLevel(";")
	if closeTok.Kind != lexer.KindEOF {
		p.emit(Event{Kind: Text, Text: closeTok.Text, Pos: closeTok.Start})
	}
	p.closeElem()
}

// parseTypeDefinition handles class/struct: a name (and, for C++,
// whatever base-clause tokens follow) up to either a body or a bare
// forward-declaration ';'.
func (p *Parser) parseTypeDefinition(tok lexer.Token, elem string) {
	p.openElem(elem)
	p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	closeTok := p.consumeUntilTopLevel("{", ";")
	switch {
	case closeTok.Kind == lexer.KindPunctuation && closeTok.String() == "{":
		p.parseBlock()
	case closeTok.Kind != lexer.KindEOF:
		p.emit(Event{Kind: Text, Text: closeTok.Text, Pos: closeTok.Start})
	}
	p.closeElem()
}

func (p *Parser) parseEnumDefinition(tok lexer.Token) {
	p.openElem("enum")
	p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
	closeTok := p.consumeUntilTopLevel("{", ";")
	switch {
	case closeTok.Kind == lexer.KindPunctuation && closeTok.String() == "{":
		p.parseBlock()
	case closeTok.Kind != lexer.KindEOF:
		p.emit(Event{Kind: Text, Text: closeTok.Text, Pos: closeTok.Start})
	}
	p.closeElem()
}

// bufTok is one token already consumed while scanning a declaration or
// function signature's leading run, tagged so emitLeadingRun knows
// whether to treat it as content or as interstitial text.
type bufTok struct {
	tok    lexer.Token
	trivia bool
}

// scanLeadingRun peeks (without consuming) the contiguous run of
// name/keyword tokens starting at tok — the type-and-declarator or
// type-and-function-name shape a declaration or function signature
// begins with — stopping at the first token that isn't one. It returns
// the run, the peek-queue index of the stopping token (needed by
// scanAfterParen), and the stopping token itself.
func (p *Parser) scanLeadingRun(tok lexer.Token) (run []lexer.Token, stopIdx int, stop lexer.Token) {
	if tok.Kind != lexer.KindName && tok.Kind != lexer.KindKeyword {
		return nil, -1, tok
	}
	run = append(run, tok)
	idx := 0
	for steps := 0; steps < 256; steps++ {
		cur := p.peek(idx)
		if isTrivial(cur.Kind) {
			idx++
			continue
		}
		if cur.Kind == lexer.KindName || cur.Kind == lexer.KindKeyword {
			run = append(run, cur)
			idx++
			continue
		}
		return run, idx, cur
	}
	return run, idx, p.peek(idx)
}

// scanAfterParen peeks forward from the '(' at peek index start to find
// its matching ')', then returns the first significant token after it,
// without consuming anything. Bounded the same way angleLookahead and
// looksLikeTemplateOpen are, against pathological input.
func (p *Parser) scanAfterParen(start int) lexer.Token {
	depth := 0
	i := start
	for steps := 0; steps < 512; steps++ {
		t := p.peek(i)
		if t.Kind == lexer.KindEOF {
			return t
		}
		if t.Kind == lexer.KindPunctuation {
			switch t.String() {
			case "(":
				depth++
			case ")":
				depth--
				if depth == 0 {
					j := i + 1
					for steps2 := 0; steps2 < 64; steps2++ {
						nt := p.peek(j)
						if nt.Kind == lexer.KindEOF || !isTrivial(nt.Kind) {
							return nt
						}
						j++
					}
					return p.peek(j)
				}
			}
		}
		i++
	}
	return p.peek(i)
}

// consumeRun actually consumes the runCount significant tokens a prior
// scanLeadingRun identified (tok, already consumed by the caller, is
// runCount's first), recording interstitial trivia along the way so the
// emitter can replay it in its original position.
func (p *Parser) consumeRun(tok lexer.Token, runCount int) []bufTok {
	buf := []bufTok{{tok: tok}}
	seen := 1
	for seen < runCount {
		t := p.next()
		if isTrivial(t.Kind) {
			buf = append(buf, bufTok{tok: t, trivia: true})
			continue
		}
		buf = append(buf, bufTok{tok: t})
		seen++
	}
	return buf
}

// emitLeadingRun emits a consumed leading run as a declaration's or
// function signature's type/specifier/declarator children: the last
// significant token is the declarator name; any modifierKeywords token
// before it becomes a <specifier>; everything else groups into one
// <type> element (closed and reopened around specifiers, so
// "static int x" reads <specifier>static</specifier> <type><name>int</name></type> <name>x</name>).
func (p *Parser) emitLeadingRun(buf []bufTok, runCount int) {
	typeOpen := false
	sigSeen := 0
	var pending []bufTok
	flush := func() {
		for _, pt := range pending {
			p.emit(Event{Kind: Text, Text: pt.tok.Text, Pos: pt.tok.Start})
		}
		pending = nil
	}
	for _, bt := range buf {
		if bt.trivia {
			pending = append(pending, bt)
			continue
		}
		sigSeen++
		isLast := sigSeen == runCount
		if isLast || modifierKeywords[bt.tok.String()] {
			if typeOpen {
				p.closeElem()
				typeOpen = false
			}
			flush()
			if isLast {
				p.wrapLiteralText("name", bt.tok)
			} else {
				p.wrapLiteralText("specifier", bt.tok)
			}
			continue
		}
		flush()
		if !typeOpen {
			p.openElem("type")
			typeOpen = true
		}
		p.wrapLiteralText("name", bt.tok)
	}
	flush()
}

// parseDeclOrExpr classifies a statement that doesn't start with one of
// the reserved control-flow keywords: a declaration ("int x;"), a
// function definition or prototype ("int f(int x) {" / "int f(int);"),
// or a plain expression statement. The classifying scan only peeks;
// nothing is consumed until the shape is known.
//
// The ambiguous case — a bare "name(...)" in statement position, which
// could be a call expression or an old-style prototype with an implicit
// return type — is resolved in favor of the call reading unless at
// least two leading tokens precede the '(' (a type plus a name), the
// same bias isMacroCall (macro.go) and looksLikeTemplateOpen
// (templates.go) already use: the common case wins a genuinely
// ambiguous heuristic. Constructs with a colon between the parameter
// list and the body (C++ constructor initializer lists) aren't
// specially recognized and fall back to the expression-statement path,
// a known gap rather than a silent miscompile.
func (p *Parser) parseDeclOrExpr(tok lexer.Token) {
	run, stopIdx, stop := p.scanLeadingRun(tok)
	if len(run) >= 1 && stop.Kind == lexer.KindPunctuation && stop.String() == "(" {
		afterParen := p.scanAfterParen(stopIdx)
		isBlockOpen := afterParen.Kind == lexer.KindPunctuation && afterParen.String() == "{"
		isProto := afterParen.Kind == lexer.KindPunctuation && afterParen.String() == ";"
		if isBlockOpen || (isProto && len(run) >= 2) {
			buf := p.consumeRun(tok, len(run))
			p.parseFunctionLike(buf, len(run), afterParen)
			return
		}
	}
	if len(run) >= 2 {
		buf := p.consumeRun(tok, len(run))
		p.parseDeclStatement(buf, len(run))
		return
	}
	p.parseExprStatement(tok)
}

func (p *Parser) parseDeclStatement(buf []bufTok, runCount int) {
	p.openElem("decl_stmt")
	p.openElem("decl")
	p.emitLeadingRun(buf, runCount)
	term := p.consumeUntilTopLevel(";")
	p.closeElem() // decl
	if term.Kind != lexer.KindEOF {
		p.emit(Event{Kind: Text, Text: term.Text, Pos: term.Start})
	}
	p.closeElem() // decl_stmt
}

func (p *Parser) parseFunctionLike(buf []bufTok, runCount int, afterParen lexer.Token) {
	isDef := afterParen.Kind == lexer.KindPunctuation && afterParen.String() == "{"
	elem := "function_decl"
	if isDef {
		elem = "function"
	}
	p.openElem(elem)
	p.emitLeadingRun(buf, runCount)
	p.drainTrivia()
	openParen := p.next() // "("
	p.emit(Event{Kind: Text, Text: openParen.Text, Pos: openParen.Start})
	p.openElem("parameter_list")
	p.pushMode(ModeParameterList)
	p.parseParameterList()
	p.popMode()
	p.closeElem() // parameter_list
	if !isDef {
		term := p.consumeUntilTopLevel(";")
		p.closeElem() // function_decl
		if term.Kind != lexer.KindEOF {
			p.emit(Event{Kind: Text, Text: term.Text, Pos: term.Start})
		}
		return
	}
	p.drainTrivia()
	p.next() // consumes "{"
	p.parseBlock()
	p.closeElem() // function
}

// parseParameterList consumes a parameter_list's content up to (and
// including) the closing ')', wrapping each top-level comma-separated
// chunk as a <parameter>. An empty "()" never opens one.
func (p *Parser) parseParameterList() {
	open := false
	for {
		tok := p.next()
		if tok.Kind == lexer.KindEOF {
			return
		}
		if tok.Kind == lexer.KindPunctuation && tok.String() == ")" {
			if open {
				p.closeElem()
			}
			p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
			return
		}
		if tok.Kind == lexer.KindPunctuation && tok.String() == "," {
			if open {
				p.closeElem()
				open = false
			}
			p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
			continue
		}
		if isTrivial(tok.Kind) && !open {
			p.emit(Event{Kind: Text, Text: tok.Text, Pos: tok.Start})
			continue
		}
		if !open {
			p.openElem("parameter")
			open = true
		}
		p.dispatch(tok)
	}
}

// parseExprStatement wraps a plain expression statement: tok (already
// consumed) through the top-level ';'.
func (p *Parser) parseExprStatement(tok lexer.Token) {
	p.openElem("expr_stmt")
	p.openElem("expr")
	p.dispatch(tok)
	term := p.consumeUntilTopLevel(";")
	p.closeElem() // expr
	if term.Kind != lexer.KindEOF {
		p.emit(Event{Kind: Text, Text: term.Text, Pos: term.Start})
	}
	p.closeElem() // expr_stmt
}
