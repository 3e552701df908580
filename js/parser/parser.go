// Copyright 2026 The JSComp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"fmt"

	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/errors"
	"jscomp.dev/go/js/scanner"
	"jscomp.dev/go/js/token"
)

// The parser structure holds the parser's internal state.
type parser struct {
	file    *token.File
	errors  errors.List
	scanner scanner.Scanner

	// Tracing/debugging
	mode      Mode // parsing mode
	trace     bool // == (mode & Trace != 0)
	panicking bool // set if we are bailing out due to too many errors.
	indent    int  // indentation used for tracing output

	// Next token
	pos token.Pos   // token position
	tok token.Token // one token look-ahead
	lit string      // token literal

	// Error recovery
	// (used to limit the number of calls to syncXXX functions
	// w/o making scanning progress - avoids potential endless
	// loops across multiple parser functions during error recovery)
	syncPos token.Pos // last synchronization position
	syncCnt int       // number of calls to syncXXX without progress

	lastErrLine int // line of the last recorded error

	// Non-syntactic parser control
	noIn bool // in is not a binary operator (for statement initializers)
}

func (p *parser) init(filename string, src []byte, mode []Option) {
	p.file = token.NewFile(filename, len(src))
	for _, opt := range mode {
		opt.apply(p)
	}
	eh := func(pos token.Pos, msg string, args []interface{}) {
		p.errors.AddNewf(pos, msg, args...)
	}
	p.scanner.Init(p.file, src, eh, 0)

	p.trace = p.mode&Trace != 0 // for convenience (p.trace is used frequently)

	p.next()
}

// ----------------------------------------------------------------------------
// Parsing support

func (p *parser) printTrace(a ...interface{}) {
	const dots = ". . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . . "
	const n = len(dots)
	pos := p.file.Position(p.pos)
	fmt.Printf("%5d:%3d: ", pos.Line, pos.Column)
	i := 2 * p.indent
	for i > n {
		fmt.Print(dots)
		i -= n
	}
	// i <= n
	fmt.Print(dots[0:i])
	fmt.Println(a...)
}

func trace(p *parser, msg string) *parser {
	p.printTrace(msg, "(")
	p.indent++
	return p
}

// Usage pattern: defer un(trace(p, "..."))
func un(p *parser) {
	p.indent--
	p.printTrace(")")
}

// Advance to the next token.
func (p *parser) next() {
	// Because of one-token look-ahead, print the previous token
	// when tracing as it provides a more readable output. The
	// very first token (!p.pos.IsValid()) is not initialized
	// (it is ILLEGAL), so don't print it .
	if p.trace && p.pos.IsValid() {
		s := p.tok.String()
		switch {
		case p.tok.IsLiteral():
			p.printTrace(s, p.lit)
		case p.tok.IsOperator(), p.tok.IsKeyword():
			p.printTrace("\"" + s + "\"")
		default:
			p.printTrace(s)
		}
	}

	p.pos, p.tok, p.lit = p.scanner.Scan()
}

func (p *parser) errf(pos token.Pos, msg string, args ...interface{}) {
	// If AllErrors is not set, discard errors reported on the same line
	// as the last recorded error and stop parsing if there are more than
	// 10 errors.
	if p.mode&AllErrors == 0 {
		n := p.errors.Len()
		if n > 0 && p.lastErrLine == pos.Line() {
			return // discard - likely a spurious error
		}
		if n > 10 {
			p.panicking = true
			panic("too many errors")
		}
	}
	p.lastErrLine = pos.Line()
	p.errors.AddNewf(pos, msg, args...)
}

func (p *parser) errorExpected(pos token.Pos, obj string) {
	if pos != p.pos {
		p.errf(pos, "expected %s", obj)
		return
	}
	// the error happened at the current position;
	// make the error message more specific
	switch {
	case p.tok == token.EOF:
		p.errf(pos, "expected %s, found EOF", obj)
	case p.tok.IsLiteral():
		p.errf(pos, "expected %s, found %s %s", obj, p.tok, p.lit)
	default:
		p.errf(pos, "expected %s, found '%s'", obj, p.tok)
	}
}

func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.pos
	if p.tok != tok {
		p.errorExpected(pos, "'"+tok.String()+"'")
	}
	p.next() // make progress
	return pos
}

// atNewline reports whether a line break precedes the current token.
func (p *parser) atNewline() bool {
	return p.pos.IsNewline()
}

// expectSemi consumes the semicolon terminating a statement. A semicolon is
// inserted automatically before a closing '}', at EOF, and before a token
// that is preceded by a line break.
func (p *parser) expectSemi() {
	switch {
	case p.tok == token.SEMICOLON:
		p.next()
	case p.tok == token.RBRACE, p.tok == token.EOF, p.atNewline():
	default:
		p.errorExpected(p.pos, "';'")
		syncStmt(p)
	}
}

// syncStmt advances to the next statement: a statement keyword, a token
// starting a new line, or the token following a semicolon.
// Used for synchronization after an error.
func syncStmt(p *parser) {
	for {
		stop := false
		switch p.tok {
		case token.VAR, token.LET, token.CONST, token.FUNCTION, token.RETURN,
			token.IF, token.FOR, token.WHILE, token.DO, token.SWITCH,
			token.TRY, token.THROW, token.BREAK, token.CONTINUE, token.RBRACE:
			stop = true
		case token.SEMICOLON:
			p.next()
			return
		case token.EOF:
			return
		default:
			stop = p.atNewline()
		}
		if stop {
			// Return only if parser made some progress since last
			// sync or if it has not reached 10 sync calls without
			// progress. Otherwise consume at least one token to
			// avoid an endless parser loop (it is possible that
			// both parsePrimary and parseStmt call syncStmt and
			// correctly do not advance, thus the need for the
			// invocation limit p.syncCnt).
			if p.pos == p.syncPos && p.syncCnt < 10 {
				p.syncCnt++
				return
			}
			if !p.syncPos.IsValid() || p.syncPos.Before(p.pos) {
				p.syncPos = p.pos
				p.syncCnt = 0
				return
			}
			// Reaching here indicates a parser bug, likely an
			// incorrect token list in this function, but it only
			// leads to skipping of possibly correct code if a
			// previous error is present, and thus is preferred
			// over a non-terminating parse.
		}
		p.next()
	}
}

// ----------------------------------------------------------------------------
// Identifiers

// isIdent reports whether the current token can be used as a binding or
// reference name. The contextual keywords let and of are names outside of
// their special positions.
func (p *parser) isIdent() bool {
	switch p.tok {
	case token.IDENT, token.OF, token.LET:
		return true
	}
	return false
}

func (p *parser) parseIdent() *ast.Ident {
	pos := p.pos
	name := "_"
	if p.isIdent() {
		name = p.lit
		p.next()
	} else {
		p.expect(token.IDENT) // use expect() error handling
	}
	return &ast.Ident{NamePos: pos, Name: name}
}

// parsePropertyName parses a name following a period or an object literal
// key written as a name. Keywords are allowed.
func (p *parser) parsePropertyName() *ast.Ident {
	pos := p.pos
	name := "_"
	if p.tok == token.IDENT || p.tok.IsKeyword() {
		name = p.lit
		p.next()
	} else {
		p.expect(token.IDENT)
	}
	return &ast.Ident{NamePos: pos, Name: name}
}

// ----------------------------------------------------------------------------
// Expressions

// parseExpr parses a comma separated expression sequence.
func (p *parser) parseExpr() ast.Expr {
	if p.trace {
		defer un(trace(p, "Expr"))
	}

	x := p.parseAssign()
	if p.tok != token.COMMA {
		return x
	}
	list := []ast.Expr{x}
	for p.tok == token.COMMA {
		p.next()
		list = append(list, p.parseAssign())
	}
	return &ast.SeqExpr{List: list}
}

// parseNested parses an expression sequence in a context where in is again
// a binary operator, such as within parentheses.
func (p *parser) parseNested(f func() ast.Expr) ast.Expr {
	old := p.noIn
	p.noIn = false
	x := f()
	p.noIn = old
	return x
}

func isAssignable(x ast.Expr) bool {
	switch x.(type) {
	case *ast.Ident, *ast.SelectorExpr, *ast.IndexExpr, *ast.BadExpr:
		return true
	}
	return false
}

func (p *parser) parseAssign() ast.Expr {
	if p.trace {
		defer un(trace(p, "Assign"))
	}

	x := p.parseConditional()
	if !p.tok.IsAssignOp() {
		return x
	}
	if !isAssignable(x) {
		p.errf(x.Pos(), "invalid assignment target")
	}
	pos, tok := p.pos, p.tok
	p.next()
	y := p.parseAssign()
	return &ast.AssignExpr{Lhs: x, TokPos: pos, Tok: tok, Rhs: y}
}

func (p *parser) parseConditional() ast.Expr {
	x := p.parseBinary(token.LowestPrec + 1)
	if p.tok != token.QUESTION {
		return x
	}
	question := p.pos
	p.next()
	then := p.parseNested(p.parseAssign)
	colon := p.expect(token.COLON)
	els := p.parseAssign()
	return &ast.CondExpr{Cond: x, Question: question, Then: then, Colon: colon, Else: els}
}

func (p *parser) precedence(tok token.Token) int {
	if tok == token.IN && p.noIn {
		return token.LowestPrec
	}
	return tok.Precedence()
}

// parseBinary parses a left-associative binary expression of operators
// with at least precedence prec1.
func (p *parser) parseBinary(prec1 int) ast.Expr {
	if p.trace {
		defer un(trace(p, "BinaryExpr"))
	}

	x := p.parseUnary()
	for {
		op := p.tok
		oprec := p.precedence(op)
		if oprec < prec1 {
			return x
		}
		pos := p.pos
		p.next()
		y := p.parseBinary(oprec + 1)
		x = &ast.BinaryExpr{X: x, OpPos: pos, Op: op, Y: y}
	}
}

func (p *parser) parseUnary() ast.Expr {
	if p.trace {
		defer un(trace(p, "UnaryExpr"))
	}

	switch p.tok {
	case token.NOT, token.BITNOT, token.SUB, token.ADD,
		token.TYPEOF, token.VOID, token.DELETE:
		pos, op := p.pos, p.tok
		p.next()
		x := p.parseUnary()
		return &ast.UnaryExpr{OpPos: pos, Op: op, X: x}

	case token.INC, token.DEC:
		pos, op := p.pos, p.tok
		p.next()
		x := p.parseUnary()
		if !isAssignable(x) {
			p.errf(x.Pos(), "invalid operand for %s", op)
		}
		return &ast.UnaryExpr{OpPos: pos, Op: op, X: x}
	}

	x := p.parseCallOrMember()
	if (p.tok == token.INC || p.tok == token.DEC) && !p.atNewline() {
		if !isAssignable(x) {
			p.errf(x.Pos(), "invalid operand for %s", p.tok)
		}
		x = &ast.UnaryExpr{OpPos: p.pos, Op: p.tok, X: x, Postfix: true}
		p.next()
	}
	return x
}

func (p *parser) parseCallOrMember() ast.Expr {
	if p.trace {
		defer un(trace(p, "CallOrMember"))
	}

	var x ast.Expr
	if p.tok == token.NEW {
		x = p.parseNew()
	} else {
		x = p.parsePrimary()
	}
	for {
		switch p.tok {
		case token.PERIOD, token.LBRACK:
			x = p.parseMember(x)
		case token.LPAREN:
			lparen := p.pos
			args := p.parseArgs()
			x = &ast.CallExpr{Fun: x, Lparen: lparen, Args: args, Rparen: p.expect(token.RPAREN)}
		default:
			return x
		}
	}
}

func (p *parser) parseMember(x ast.Expr) ast.Expr {
	if p.tok == token.PERIOD {
		p.next()
		return &ast.SelectorExpr{X: x, Sel: p.parsePropertyName()}
	}
	lbrack := p.expect(token.LBRACK)
	index := p.parseNested(p.parseExpr)
	return &ast.IndexExpr{X: x, Lbrack: lbrack, Index: index, Rbrack: p.expect(token.RBRACK)}
}

// parseArgs parses the arguments of a call up to, but not including, the
// closing parenthesis.
func (p *parser) parseArgs() []ast.Expr {
	p.expect(token.LPAREN)
	var args []ast.Expr
	for p.tok != token.RPAREN && p.tok != token.EOF {
		args = append(args, p.parseNested(p.parseAssign))
		if p.tok != token.COMMA {
			break
		}
		p.next()
	}
	return args
}

func (p *parser) parseNew() ast.Expr {
	if p.trace {
		defer un(trace(p, "New"))
	}

	pos := p.expect(token.NEW)
	var fun ast.Expr
	if p.tok == token.NEW {
		fun = p.parseNew()
	} else {
		fun = p.parsePrimary()
	}
	for p.tok == token.PERIOD || p.tok == token.LBRACK {
		fun = p.parseMember(fun)
	}
	x := &ast.NewExpr{New: pos, Fun: fun}
	if p.tok == token.LPAREN {
		x.Lparen = p.pos
		x.Args = p.parseArgs()
		x.Rparen = p.expect(token.RPAREN)
	}
	return x
}

// parsePrimary returns an expression.
func (p *parser) parsePrimary() ast.Expr {
	if p.trace {
		defer un(trace(p, "Primary"))
	}

	switch p.tok {
	case token.IDENT, token.OF, token.LET:
		return p.parseIdent()

	case token.NUMBER, token.STRING, token.NULL, token.TRUE, token.FALSE:
		x := &ast.BasicLit{ValuePos: p.pos, Kind: p.tok, Value: p.lit}
		p.next()
		return x

	case token.THIS:
		x := &ast.ThisExpr{This: p.pos}
		p.next()
		return x

	case token.FUNCTION:
		return p.parseFuncLit()

	case token.LPAREN:
		p.next()
		x := p.parseNested(p.parseExpr)
		p.expect(token.RPAREN)
		return x

	case token.LBRACK:
		return p.parseArray()

	case token.LBRACE:
		return p.parseObject()
	}

	// we have an error
	pos := p.pos
	p.errorExpected(pos, "expression")
	syncStmt(p)
	return &ast.BadExpr{From: pos, To: p.pos}
}

func (p *parser) parseArray() ast.Expr {
	if p.trace {
		defer un(trace(p, "ArrayLit"))
	}

	lbrack := p.expect(token.LBRACK)
	var elts []ast.Expr
	for p.tok != token.RBRACK && p.tok != token.EOF {
		if p.tok == token.COMMA {
			p.errf(p.pos, "array holes are not supported")
			p.next()
			continue
		}
		elts = append(elts, p.parseNested(p.parseAssign))
		if p.tok != token.COMMA {
			break
		}
		p.next()
	}
	rbrack := p.expect(token.RBRACK)
	return &ast.ArrayLit{Lbrack: lbrack, Elts: elts, Rbrack: rbrack}
}

func (p *parser) parseObject() ast.Expr {
	if p.trace {
		defer un(trace(p, "ObjectLit"))
	}

	lbrace := p.expect(token.LBRACE)
	var props []*ast.Property
	for p.tok != token.RBRACE && p.tok != token.EOF {
		props = append(props, p.parseProperty())
		if p.tok != token.COMMA {
			break
		}
		p.next()
	}
	rbrace := p.expect(token.RBRACE)
	return &ast.ObjectLit{Lbrace: lbrace, Props: props, Rbrace: rbrace}
}

func (p *parser) parseProperty() *ast.Property {
	var key ast.Expr
	switch p.tok {
	case token.STRING, token.NUMBER:
		key = &ast.BasicLit{ValuePos: p.pos, Kind: p.tok, Value: p.lit}
		p.next()
	default:
		key = p.parsePropertyName()
	}
	colon := p.expect(token.COLON)
	value := p.parseNested(p.parseAssign)
	return &ast.Property{Key: key, Colon: colon, Value: value}
}

func (p *parser) parseParams() []*ast.Ident {
	p.expect(token.LPAREN)
	var params []*ast.Ident
	for p.tok != token.RPAREN && p.tok != token.EOF {
		params = append(params, p.parseIdent())
		if p.tok != token.COMMA {
			break
		}
		p.next()
	}
	p.expect(token.RPAREN)
	return params
}

// parseFuncBody parses a function body. Function bodies reset the
// expression context.
func (p *parser) parseFuncBody() *ast.BlockStmt {
	old := p.noIn
	p.noIn = false
	b := p.parseBlock()
	p.noIn = old
	return b
}

func (p *parser) parseFuncLit() *ast.FuncLit {
	if p.trace {
		defer un(trace(p, "FuncLit"))
	}

	fn := &ast.FuncLit{Func: p.expect(token.FUNCTION)}
	if p.isIdent() {
		fn.Name = p.parseIdent()
	}
	fn.Params = p.parseParams()
	fn.Body = p.parseFuncBody()
	return fn
}

// ----------------------------------------------------------------------------
// Statements

func (p *parser) parseStmtList(follow ...token.Token) (list []ast.Stmt) {
	if p.trace {
		defer un(trace(p, "StatementList"))
	}

outer:
	for p.tok != token.EOF {
		for _, t := range follow {
			if p.tok == t {
				break outer
			}
		}
		list = append(list, p.parseStmt())
	}
	return list
}

func (p *parser) parseBlock() *ast.BlockStmt {
	if p.trace {
		defer un(trace(p, "BlockStmt"))
	}

	lbrace := p.expect(token.LBRACE)
	list := p.parseStmtList(token.RBRACE)
	rbrace := p.expect(token.RBRACE)
	return &ast.BlockStmt{Lbrace: lbrace, List: list, Rbrace: rbrace}
}

// parseBody parses the body of a conditional or loop. A body that is not a
// block is wrapped in one.
func (p *parser) parseBody() *ast.BlockStmt {
	if p.tok == token.LBRACE {
		return p.parseBlock()
	}
	s := p.parseStmt()
	return &ast.BlockStmt{List: []ast.Stmt{s}}
}

func (p *parser) parseStmt() (s ast.Stmt) {
	if p.trace {
		defer un(trace(p, "Statement"))
	}

	switch p.tok {
	case token.LBRACE:
		return p.parseBlock()
	case token.SEMICOLON:
		s = &ast.EmptyStmt{Semicolon: p.pos}
		p.next()
		return s
	case token.VAR, token.LET, token.CONST:
		s = p.parseVarDecl()
		p.expectSemi()
		return s
	case token.FUNCTION:
		return p.parseFuncDecl()
	case token.RETURN:
		return p.parseReturn()
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.WHILE:
		pos := p.pos
		p.next()
		cond := p.parseCond()
		return &ast.WhileStmt{While: pos, Cond: cond, Body: p.parseBody()}
	case token.DO:
		pos := p.pos
		p.next()
		body := p.parseBody()
		p.expect(token.WHILE)
		p.expect(token.LPAREN)
		cond := p.parseNested(p.parseExpr)
		rparen := p.expect(token.RPAREN)
		if p.tok == token.SEMICOLON {
			p.next()
		}
		return &ast.DoWhileStmt{Do: pos, Body: body, Cond: cond, Rparen: rparen}
	case token.SWITCH:
		return p.parseSwitch()
	case token.TRY:
		return p.parseTry()
	case token.THROW:
		pos := p.pos
		p.next()
		if p.atNewline() {
			p.errf(p.pos, "illegal newline after throw")
		}
		x := p.parseExpr()
		p.expectSemi()
		return &ast.ThrowStmt{Throw: pos, X: x}
	case token.BREAK, token.CONTINUE:
		s := &ast.BranchStmt{TokPos: p.pos, Tok: p.tok}
		p.next()
		if p.isIdent() && !p.atNewline() {
			s.Label = p.parseIdent()
		}
		p.expectSemi()
		return s
	case token.RBRACE, token.EOF:
		pos := p.pos
		p.errorExpected(pos, "statement")
		if p.tok == token.RBRACE {
			p.next()
		}
		return &ast.BadStmt{From: pos, To: p.pos}
	}

	pos := p.pos
	x := p.parseExpr()
	if id, ok := x.(*ast.Ident); ok && p.tok == token.COLON {
		colon := p.pos
		p.next()
		return &ast.LabeledStmt{Label: id, Colon: colon, Stmt: p.parseStmt()}
	}
	if _, ok := x.(*ast.BadExpr); ok {
		return &ast.BadStmt{From: pos, To: p.pos}
	}
	p.expectSemi()
	return &ast.ExprStmt{X: x}
}

// parseCond parses a parenthesized condition.
func (p *parser) parseCond() ast.Expr {
	p.expect(token.LPAREN)
	x := p.parseNested(p.parseExpr)
	p.expect(token.RPAREN)
	return x
}

func (p *parser) parseVarDecl() *ast.VarDecl {
	if p.trace {
		defer un(trace(p, "VarDecl"))
	}

	d := &ast.VarDecl{TokPos: p.pos, Tok: p.tok}
	p.next()
	for {
		spec := &ast.VarSpec{Name: p.parseIdent()}
		if p.tok == token.ASSIGN {
			p.next()
			spec.Value = p.parseAssign()
		}
		d.Specs = append(d.Specs, spec)
		if p.tok != token.COMMA {
			break
		}
		p.next()
	}
	return d
}

func (p *parser) parseFuncDecl() *ast.FuncDecl {
	if p.trace {
		defer un(trace(p, "FuncDecl"))
	}

	fn := &ast.FuncDecl{Func: p.expect(token.FUNCTION)}
	fn.Name = p.parseIdent()
	fn.Params = p.parseParams()
	fn.Body = p.parseFuncBody()
	return fn
}

func (p *parser) parseReturn() *ast.ReturnStmt {
	if p.trace {
		defer un(trace(p, "ReturnStmt"))
	}

	s := &ast.ReturnStmt{Return: p.expect(token.RETURN)}
	switch {
	case p.tok == token.SEMICOLON, p.tok == token.RBRACE, p.tok == token.EOF, p.atNewline():
	default:
		s.Result = p.parseExpr()
	}
	p.expectSemi()
	return s
}

func (p *parser) parseIf() *ast.IfStmt {
	if p.trace {
		defer un(trace(p, "IfStmt"))
	}

	s := &ast.IfStmt{If: p.expect(token.IF)}
	s.Cond = p.parseCond()
	s.Then = p.parseBody()
	if p.tok == token.ELSE {
		p.next()
		if p.tok == token.IF {
			s.Else = &ast.BlockStmt{List: []ast.Stmt{p.parseIf()}}
		} else {
			s.Else = p.parseBody()
		}
	}
	return s
}

func (p *parser) parseFor() ast.Stmt {
	if p.trace {
		defer un(trace(p, "ForStmt"))
	}

	pos := p.expect(token.FOR)
	p.expect(token.LPAREN)

	var init ast.Stmt
	var left ast.Node
	old := p.noIn
	p.noIn = true
	switch p.tok {
	case token.SEMICOLON:
	case token.VAR, token.LET, token.CONST:
		d := p.parseVarDecl()
		init, left = d, d
	default:
		x := p.parseExpr()
		init, left = &ast.ExprStmt{X: x}, x
	}
	p.noIn = old

	if left != nil && (p.tok == token.IN || p.tok == token.OF) {
		if d, ok := left.(*ast.VarDecl); ok && (len(d.Specs) != 1 || d.Specs[0].Value != nil) {
			p.errf(d.Pos(), "invalid left-hand side in for-%s loop", p.tok)
		} else if x, ok := left.(ast.Expr); ok && !isAssignable(x) {
			p.errf(x.Pos(), "invalid left-hand side in for-%s loop", p.tok)
		}
		of := p.tok == token.OF
		p.next()
		var x ast.Expr
		if of {
			x = p.parseAssign()
		} else {
			x = p.parseExpr()
		}
		p.expect(token.RPAREN)
		return &ast.ForInStmt{For: pos, Left: left, Of: of, X: x, Body: p.parseBody()}
	}

	s := &ast.ForStmt{For: pos, Init: init}
	p.expect(token.SEMICOLON)
	if p.tok != token.SEMICOLON {
		s.Cond = p.parseExpr()
	}
	p.expect(token.SEMICOLON)
	if p.tok != token.RPAREN {
		s.Post = p.parseExpr()
	}
	p.expect(token.RPAREN)
	s.Body = p.parseBody()
	return s
}

func (p *parser) parseSwitch() *ast.SwitchStmt {
	if p.trace {
		defer un(trace(p, "SwitchStmt"))
	}

	s := &ast.SwitchStmt{Switch: p.expect(token.SWITCH)}
	s.Tag = p.parseCond()
	p.expect(token.LBRACE)
	hasDefault := false
	for p.tok == token.CASE || p.tok == token.DEFAULT {
		c := &ast.CaseClause{Case: p.pos}
		if p.tok == token.CASE {
			p.next()
			c.Test = p.parseExpr()
		} else {
			if hasDefault {
				p.errf(p.pos, "multiple defaults in switch")
			}
			hasDefault = true
			p.next()
		}
		c.Colon = p.expect(token.COLON)
		c.Body = &ast.BlockStmt{
			List: p.parseStmtList(token.CASE, token.DEFAULT, token.RBRACE),
		}
		s.Cases = append(s.Cases, c)
	}
	s.Rbrace = p.expect(token.RBRACE)
	return s
}

func (p *parser) parseTry() *ast.TryStmt {
	if p.trace {
		defer un(trace(p, "TryStmt"))
	}

	s := &ast.TryStmt{Try: p.expect(token.TRY)}
	s.Body = p.parseBlock()
	if p.tok == token.CATCH {
		c := &ast.CatchClause{Catch: p.pos}
		p.next()
		if p.tok == token.LPAREN {
			p.next()
			c.Param = p.parseIdent()
			p.expect(token.RPAREN)
		}
		c.Body = p.parseBlock()
		s.Catch = c
	}
	if p.tok == token.FINALLY {
		p.next()
		s.Finally = p.parseBlock()
	}
	if s.Catch == nil && s.Finally == nil {
		p.errorExpected(p.pos, "catch or finally")
	}
	return s
}

// ----------------------------------------------------------------------------
// Source files

func (p *parser) parseFile() *ast.File {
	if p.trace {
		defer un(trace(p, "File"))
	}

	f := &ast.File{}
	f.Stmts = p.parseStmtList()
	f.SetRange(p.file.Pos(0, token.NoSpace), p.file.Pos(p.file.Size(), token.NoSpace))
	return f
}
