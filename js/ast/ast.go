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

// Package ast declares the types used to represent syntax trees for the
// JavaScript subset processed by jscomp.
//
// The tree is normalized the way an optimizing compiler expects it:
// parentheses are not represented (the printer reinserts them where
// precedence requires), the bodies of conditionals and loops are always
// blocks, and the body of a switch case is a block without braces.
package ast

import (
	"jscomp.dev/go/js/token"
)

// ----------------------------------------------------------------------------
// Interfaces
//
// There are three main classes of nodes: expressions, statements, and
// auxiliary nodes that only occur as parts of other nodes (variable specs,
// object properties, switch cases, catch clauses). The node fields
// correspond to the individual parts of the respective productions.
//
// All nodes contain position information marking the beginning of the
// corresponding source text segment; it is accessible via the Pos accessor
// method. Nodes created by transformations may carry no position.

// A Node represents any node in the abstract syntax tree.
type Node interface {
	Pos() token.Pos // position of first character belonging to the node
	End() token.Pos // position of first character immediately after the node
}

// An Expr is implemented by all expression nodes.
type Expr interface {
	Node
	exprNode()
}

func (*BadExpr) exprNode()      {}
func (*Ident) exprNode()        {}
func (*BasicLit) exprNode()     {}
func (*ThisExpr) exprNode()     {}
func (*FuncLit) exprNode()      {}
func (*ArrayLit) exprNode()     {}
func (*ObjectLit) exprNode()    {}
func (*SelectorExpr) exprNode() {}
func (*IndexExpr) exprNode()    {}
func (*CallExpr) exprNode()     {}
func (*NewExpr) exprNode()      {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*CondExpr) exprNode()     {}
func (*AssignExpr) exprNode()   {}
func (*SeqExpr) exprNode()      {}

// A Stmt is implemented by all statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

func (*BadStmt) stmtNode()     {}
func (*EmptyStmt) stmtNode()   {}
func (*ExprStmt) stmtNode()    {}
func (*BlockStmt) stmtNode()   {}
func (*VarDecl) stmtNode()     {}
func (*FuncDecl) stmtNode()    {}
func (*ReturnStmt) stmtNode()  {}
func (*IfStmt) stmtNode()      {}
func (*ForStmt) stmtNode()     {}
func (*ForInStmt) stmtNode()   {}
func (*WhileStmt) stmtNode()   {}
func (*DoWhileStmt) stmtNode() {}
func (*SwitchStmt) stmtNode()  {}
func (*TryStmt) stmtNode()     {}
func (*ThrowStmt) stmtNode()   {}
func (*BranchStmt) stmtNode()  {}
func (*LabeledStmt) stmtNode() {}

// ----------------------------------------------------------------------------
// Expressions and types

// A BadExpr node is a placeholder for expressions containing
// syntax errors for which no correct expression nodes can be
// created.
type BadExpr struct {
	From, To token.Pos // position range of bad expression
}

// An Ident node represents an identifier.
type Ident struct {
	NamePos token.Pos // identifier position

	Name string

	// Scope is the function, block, catch clause or file node that declares
	// the identifier. It is nil for free identifiers and for identifiers
	// that are not references (property names).
	Scope Node

	// Node is the declaring node: a *FuncDecl, a *VarSpec, a parameter or
	// catch parameter *Ident, or the *FuncLit for the self name of a named
	// function expression.
	Node Node
}

// A BasicLit node represents a literal of basic type: a number or string,
// or one of the keyword literals null, true and false.
type BasicLit struct {
	ValuePos token.Pos   // literal position
	Kind     token.Token // token.NUMBER, token.STRING, token.NULL, token.TRUE or token.FALSE
	Value    string      // literal string; e.g. 42, 0x7f, 3.14, 1e-9, 'a', "foo", null
}

// ThisExpr represents the this keyword.
type ThisExpr struct {
	This token.Pos
}

// A FuncLit node represents a function expression.
type FuncLit struct {
	Func   token.Pos  // position of "function" keyword
	Name   *Ident     // optional self name
	Params []*Ident   // parameter names
	Body   *BlockStmt // function body
}

// An ArrayLit node represents an array literal.
type ArrayLit struct {
	Lbrack token.Pos // position of "["
	Elts   []Expr    // list of elements
	Rbrack token.Pos // position of "]"
}

// An ObjectLit node represents an object literal.
type ObjectLit struct {
	Lbrace token.Pos   // position of "{"
	Props  []*Property // list of properties
	Rbrace token.Pos   // position of "}"
}

// A Property is a key-value pair of an object literal.
type Property struct {
	Key   Expr // *Ident, or *BasicLit string or number
	Colon token.Pos
	Value Expr
}

// A SelectorExpr node represents an expression followed by a property name.
type SelectorExpr struct {
	X   Expr   // expression
	Sel *Ident // property name
}

// An IndexExpr node represents an expression followed by an index.
type IndexExpr struct {
	X      Expr      // expression
	Lbrack token.Pos // position of "["
	Index  Expr      // index expression
	Rbrack token.Pos // position of "]"
}

// A CallExpr node represents an expression followed by an argument list.
type CallExpr struct {
	Fun    Expr      // function expression
	Lparen token.Pos // position of "("
	Args   []Expr    // function arguments; or nil
	Rparen token.Pos // position of ")"
}

// A NewExpr node represents a constructor invocation.
type NewExpr struct {
	New    token.Pos // position of "new"
	Fun    Expr      // constructor expression
	Lparen token.Pos // position of "(", if any
	Args   []Expr    // constructor arguments; or nil
	Rparen token.Pos // position of ")", if any
}

// A UnaryExpr node represents a unary expression, including the prefix and
// postfix update operators.
type UnaryExpr struct {
	OpPos   token.Pos   // position of Op
	Op      token.Token // operator
	X       Expr        // operand
	Postfix bool        // x++ or x--
}

// A BinaryExpr node represents a binary expression, including the logical
// operators.
type BinaryExpr struct {
	X     Expr        // left operand
	OpPos token.Pos   // position of Op
	Op    token.Token // operator
	Y     Expr        // right operand
}

// A CondExpr node represents a conditional (hook) expression.
type CondExpr struct {
	Cond     Expr
	Question token.Pos
	Then     Expr
	Colon    token.Pos
	Else     Expr
}

// An AssignExpr node represents a plain or compound assignment.
type AssignExpr struct {
	Lhs    Expr
	TokPos token.Pos   // position of Tok
	Tok    token.Token // assignment token
	Rhs    Expr
}

// A SeqExpr node represents a comma separated list of expressions.
type SeqExpr struct {
	List []Expr
}

// ----------------------------------------------------------------------------
// Statements

// A BadStmt node is a placeholder for statements containing
// syntax errors for which no correct statement nodes can be
// created.
type BadStmt struct {
	From, To token.Pos // position range of bad statement
}

// An EmptyStmt node represents an empty statement.
type EmptyStmt struct {
	Semicolon token.Pos // position of following ";"
}

// An ExprStmt node represents a (stand-alone) expression
// in a statement list.
type ExprStmt struct {
	X Expr // expression
}

// A BlockStmt node represents a braced statement list, or the body of a
// switch case.
type BlockStmt struct {
	Lbrace token.Pos // position of "{"; invalid for case bodies
	List   []Stmt
	Rbrace token.Pos // position of "}"; invalid for case bodies
}

// A VarDecl node represents a var, let or const declaration.
type VarDecl struct {
	TokPos token.Pos   // position of Tok
	Tok    token.Token // token.VAR, token.LET or token.CONST
	Specs  []*VarSpec
}

// A VarSpec node represents a single binding of a VarDecl.
type VarSpec struct {
	Name  *Ident
	Value Expr // initial value; or nil
}

// A FuncDecl node represents a function declaration.
type FuncDecl struct {
	Func   token.Pos // position of "function" keyword
	Name   *Ident
	Params []*Ident
	Body   *BlockStmt
}

// A ReturnStmt node represents a return statement.
type ReturnStmt struct {
	Return token.Pos // position of "return" keyword
	Result Expr      // result expression; or nil
}

// An IfStmt node represents an if statement.
type IfStmt struct {
	If   token.Pos // position of "if" keyword
	Cond Expr
	Then *BlockStmt
	Else *BlockStmt // else branch; or nil
}

// A ForStmt represents a for statement.
type ForStmt struct {
	For  token.Pos // position of "for" keyword
	Init Stmt      // *VarDecl or *ExprStmt; or nil
	Cond Expr      // condition; or nil
	Post Expr      // post iteration expression; or nil
	Body *BlockStmt
}

// A ForInStmt represents a for-in or for-of statement.
type ForInStmt struct {
	For  token.Pos // position of "for" keyword
	Left Node      // *VarDecl with a single binding, or an assignable Expr
	Of   bool      // for-of rather than for-in
	X    Expr      // object or iterable
	Body *BlockStmt
}

// A WhileStmt represents a while statement.
type WhileStmt struct {
	While token.Pos
	Cond  Expr
	Body  *BlockStmt
}

// A DoWhileStmt represents a do-while statement.
type DoWhileStmt struct {
	Do     token.Pos
	Body   *BlockStmt
	Cond   Expr
	Rparen token.Pos // position of the closing ")" of the condition
}

// A SwitchStmt represents a switch statement.
type SwitchStmt struct {
	Switch token.Pos
	Tag    Expr
	Cases  []*CaseClause
	Rbrace token.Pos
}

// A CaseClause represents a case or default clause of a switch statement.
type CaseClause struct {
	Case  token.Pos  // position of "case" or "default" keyword
	Test  Expr       // case expression; nil means default case
	Colon token.Pos  // position of ":"
	Body  *BlockStmt // statement list, without braces
}

// A TryStmt represents a try statement.
type TryStmt struct {
	Try     token.Pos
	Body    *BlockStmt
	Catch   *CatchClause // or nil
	Finally *BlockStmt   // or nil
}

// A CatchClause represents the catch part of a try statement.
type CatchClause struct {
	Catch token.Pos
	Param *Ident // optional
	Body  *BlockStmt
}

// A ThrowStmt represents a throw statement.
type ThrowStmt struct {
	Throw token.Pos
	X     Expr
}

// A BranchStmt represents a break or continue statement.
type BranchStmt struct {
	TokPos token.Pos   // position of Tok
	Tok    token.Token // token.BREAK or token.CONTINUE
	Label  *Ident      // label name; or nil
}

// A LabeledStmt represents a labeled statement.
type LabeledStmt struct {
	Label *Ident
	Colon token.Pos
	Stmt  Stmt
}

// ----------------------------------------------------------------------------
// Roots

// A File node represents a JavaScript source file.
type File struct {
	Filename string
	Stmts    []Stmt

	// Unresolved lists the identifier references that could not be bound
	// to a declaration of this file.
	Unresolved []*Ident

	start, end token.Pos
}

// A Program node holds the files of a compilation. It is the root of a
// whole-program traversal and never itself a change scope.
type Program struct {
	Files []*File
}

// ----------------------------------------------------------------------------
// Positions

func (x *BadExpr) Pos() token.Pos  { return x.From }
func (x *BadExpr) End() token.Pos  { return x.To }
func (x *Ident) Pos() token.Pos    { return x.NamePos }
func (x *Ident) End() token.Pos    { return x.NamePos.Add(len(x.Name)) }
func (x *BasicLit) Pos() token.Pos { return x.ValuePos }
func (x *BasicLit) End() token.Pos { return x.ValuePos.Add(len(x.Value)) }
func (x *ThisExpr) Pos() token.Pos { return x.This }
func (x *ThisExpr) End() token.Pos { return x.This.Add(len("this")) }
func (x *FuncLit) Pos() token.Pos  { return x.Func }
func (x *FuncLit) End() token.Pos  { return x.Body.End() }
func (x *ArrayLit) Pos() token.Pos { return x.Lbrack }
func (x *ArrayLit) End() token.Pos { return x.Rbrack.Add(1) }

func (x *ObjectLit) Pos() token.Pos { return x.Lbrace }
func (x *ObjectLit) End() token.Pos { return x.Rbrace.Add(1) }
func (x *Property) Pos() token.Pos  { return x.Key.Pos() }
func (x *Property) End() token.Pos  { return x.Value.End() }

func (x *SelectorExpr) Pos() token.Pos { return x.X.Pos() }
func (x *SelectorExpr) End() token.Pos { return x.Sel.End() }
func (x *IndexExpr) Pos() token.Pos    { return x.X.Pos() }
func (x *IndexExpr) End() token.Pos    { return x.Rbrack.Add(1) }
func (x *CallExpr) Pos() token.Pos     { return x.Fun.Pos() }
func (x *CallExpr) End() token.Pos     { return x.Rparen.Add(1) }
func (x *NewExpr) Pos() token.Pos      { return x.New }
func (x *NewExpr) End() token.Pos {
	if x.Rparen.IsValid() {
		return x.Rparen.Add(1)
	}
	return x.Fun.End()
}

func (x *UnaryExpr) Pos() token.Pos {
	if x.Postfix {
		return x.X.Pos()
	}
	return x.OpPos
}
func (x *UnaryExpr) End() token.Pos {
	if x.Postfix {
		return x.OpPos.Add(2)
	}
	return x.X.End()
}
func (x *BinaryExpr) Pos() token.Pos { return x.X.Pos() }
func (x *BinaryExpr) End() token.Pos { return x.Y.End() }
func (x *CondExpr) Pos() token.Pos   { return x.Cond.Pos() }
func (x *CondExpr) End() token.Pos   { return x.Else.End() }
func (x *AssignExpr) Pos() token.Pos { return x.Lhs.Pos() }
func (x *AssignExpr) End() token.Pos { return x.Rhs.End() }
func (x *SeqExpr) Pos() token.Pos    { return x.List[0].Pos() }
func (x *SeqExpr) End() token.Pos    { return x.List[len(x.List)-1].End() }

func (s *BadStmt) Pos() token.Pos   { return s.From }
func (s *BadStmt) End() token.Pos   { return s.To }
func (s *EmptyStmt) Pos() token.Pos { return s.Semicolon }
func (s *EmptyStmt) End() token.Pos { return s.Semicolon.Add(1) }
func (s *ExprStmt) Pos() token.Pos  { return s.X.Pos() }
func (s *ExprStmt) End() token.Pos  { return s.X.End() }
func (s *BlockStmt) Pos() token.Pos {
	if s.Lbrace.IsValid() || len(s.List) == 0 {
		return s.Lbrace
	}
	return s.List[0].Pos()
}
func (s *BlockStmt) End() token.Pos {
	if s.Rbrace.IsValid() {
		return s.Rbrace.Add(1)
	}
	if n := len(s.List); n > 0 {
		return s.List[n-1].End()
	}
	return s.Lbrace.Add(1)
}
func (s *VarDecl) Pos() token.Pos { return s.TokPos }
func (s *VarDecl) End() token.Pos {
	if n := len(s.Specs); n > 0 {
		return s.Specs[n-1].End()
	}
	return s.TokPos.Add(len(s.Tok.String()))
}
func (s *VarSpec) Pos() token.Pos { return s.Name.Pos() }
func (s *VarSpec) End() token.Pos {
	if s.Value != nil {
		return s.Value.End()
	}
	return s.Name.End()
}
func (s *FuncDecl) Pos() token.Pos   { return s.Func }
func (s *FuncDecl) End() token.Pos   { return s.Body.End() }
func (s *ReturnStmt) Pos() token.Pos { return s.Return }
func (s *ReturnStmt) End() token.Pos {
	if s.Result != nil {
		return s.Result.End()
	}
	return s.Return.Add(len("return"))
}
func (s *IfStmt) Pos() token.Pos { return s.If }
func (s *IfStmt) End() token.Pos {
	if s.Else != nil {
		return s.Else.End()
	}
	return s.Then.End()
}
func (s *ForStmt) Pos() token.Pos     { return s.For }
func (s *ForStmt) End() token.Pos     { return s.Body.End() }
func (s *ForInStmt) Pos() token.Pos   { return s.For }
func (s *ForInStmt) End() token.Pos   { return s.Body.End() }
func (s *WhileStmt) Pos() token.Pos   { return s.While }
func (s *WhileStmt) End() token.Pos   { return s.Body.End() }
func (s *DoWhileStmt) Pos() token.Pos { return s.Do }
func (s *DoWhileStmt) End() token.Pos { return s.Rparen.Add(1) }
func (s *SwitchStmt) Pos() token.Pos  { return s.Switch }
func (s *SwitchStmt) End() token.Pos  { return s.Rbrace.Add(1) }
func (s *CaseClause) Pos() token.Pos  { return s.Case }
func (s *CaseClause) End() token.Pos {
	if n := len(s.Body.List); n > 0 {
		return s.Body.List[n-1].End()
	}
	return s.Colon.Add(1)
}
func (s *TryStmt) Pos() token.Pos { return s.Try }
func (s *TryStmt) End() token.Pos {
	if s.Finally != nil {
		return s.Finally.End()
	}
	if s.Catch != nil {
		return s.Catch.End()
	}
	return s.Body.End()
}
func (s *CatchClause) Pos() token.Pos { return s.Catch }
func (s *CatchClause) End() token.Pos { return s.Body.End() }
func (s *ThrowStmt) Pos() token.Pos   { return s.Throw }
func (s *ThrowStmt) End() token.Pos   { return s.X.End() }
func (s *BranchStmt) Pos() token.Pos  { return s.TokPos }
func (s *BranchStmt) End() token.Pos {
	if s.Label != nil {
		return s.Label.End()
	}
	return s.TokPos.Add(len(s.Tok.String()))
}
func (s *LabeledStmt) Pos() token.Pos { return s.Label.Pos() }
func (s *LabeledStmt) End() token.Pos { return s.Stmt.End() }

// Pos returns the start of the file.
func (f *File) Pos() token.Pos {
	if f.start.IsValid() {
		return f.start
	}
	if len(f.Stmts) > 0 {
		return f.Stmts[0].Pos()
	}
	return token.NoPos
}

// End returns the end of the file.
func (f *File) End() token.Pos {
	if f.end.IsValid() {
		return f.end
	}
	if n := len(f.Stmts); n > 0 {
		return f.Stmts[n-1].End()
	}
	return token.NoPos
}

// SetRange records the source range of the file.
func (f *File) SetRange(start, end token.Pos) {
	f.start, f.end = start, end
}

// Pos returns the position of the first file of the program.
func (p *Program) Pos() token.Pos {
	if len(p.Files) > 0 {
		return p.Files[0].Pos()
	}
	return token.NoPos
}

// End returns the end position of the last file of the program.
func (p *Program) End() token.Pos {
	if n := len(p.Files); n > 0 {
		return p.Files[n-1].End()
	}
	return token.NoPos
}

// NewIdent creates a new Ident without position.
// Useful for ASTs generated by code other than the parser.
func NewIdent(name string) *Ident {
	return &Ident{Name: name}
}

// NewString creates a new BasicLit with a double-quoted string value.
func NewString(str string) *BasicLit {
	return &BasicLit{Kind: token.STRING, Value: quote(str)}
}

// NewNumber creates a new BasicLit with the given number literal.
func NewNumber(lit string) *BasicLit {
	return &BasicLit{Kind: token.NUMBER, Value: lit}
}

// NewVoid0 returns the expression void 0, the canonical undefined value.
func NewVoid0() *UnaryExpr {
	return &UnaryExpr{Op: token.VOID, X: NewNumber("0")}
}

// NewSel creates a sequence of selectors.
// Useful for ASTs generated by code other than the parser.
func NewSel(x Expr, sel ...string) Expr {
	for _, s := range sel {
		x = &SelectorExpr{X: x, Sel: NewIdent(s)}
	}
	return x
}

// NewCall creates a new CallExpr.
// Useful for ASTs generated by code other than the parser.
func NewCall(fun Expr, args ...Expr) *CallExpr {
	return &CallExpr{Fun: fun, Args: args}
}
