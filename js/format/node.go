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

package format

import (
	"fmt"
	"strings"

	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/token"
)

// Expression precedence levels. Binary operators map to
// binaryPrec + op.Precedence().
const (
	seqPrec     = 0
	assignPrec  = 1
	condPrec    = 2
	binaryPrec  = 2
	unaryPrec   = binaryPrec + token.UnaryPrec
	postfixPrec = unaryPrec + 1
	callPrec    = postfixPrec + 1
	primaryPrec = callPrec + 1
)

func printNode(node interface{}, f *formatter) error {
	switch x := node.(type) {
	case *ast.Program:
		for i, file := range x.Files {
			if i > 0 {
				f.print("\n")
			}
			f.file(file)
		}
	case *ast.File:
		f.file(x)
	case ast.Stmt:
		f.stmt(x)
		f.print("\n")
	case ast.Expr:
		f.expr(x)
	default:
		return fmt.Errorf("js/format: unsupported node type %T", node)
	}
	return nil
}

// Helper functions for common node lists. They may be empty.

func (f *formatter) walkStmtList(list []ast.Stmt, first bool) {
	for i, s := range list {
		if !first || i > 0 {
			if i > 0 && s.Pos().RelPos() == token.NewSection {
				f.print("\n")
			}
			f.newline()
		}
		f.stmt(s)
	}
}

func (f *formatter) walkExprList(list []ast.Expr) {
	for i, x := range list {
		if i > 0 {
			f.print(", ")
		}
		f.expr1(x, assignPrec)
	}
}

func (f *formatter) file(file *ast.File) {
	if len(file.Stmts) == 0 {
		return
	}
	f.walkStmtList(file.Stmts, true)
	f.print("\n")
}

func (f *formatter) block(b *ast.BlockStmt) {
	if b == nil || len(b.List) == 0 {
		f.print("{}")
		return
	}
	f.print("{")
	f.indent++
	f.walkStmtList(b.List, false)
	f.indent--
	f.newline()
	f.print("}")
}

func (f *formatter) stmt(stmt ast.Stmt) {
	switch n := stmt.(type) {
	case *ast.BadStmt:
		f.errorf(n, "cannot format bad statement")

	case *ast.EmptyStmt:
		f.print(";")

	case *ast.ExprStmt:
		if startsWithBrace(n.X) {
			f.print("(")
			f.expr(n.X)
			f.print(")")
		} else {
			f.expr(n.X)
		}
		f.print(";")

	case *ast.BlockStmt:
		f.block(n)

	case *ast.VarDecl:
		f.varDecl(n)
		f.print(";")

	case *ast.FuncDecl:
		f.print("function ", n.Name.Name)
		f.funcRest(n.Params, n.Body)

	case *ast.ReturnStmt:
		f.print("return")
		if n.Result != nil {
			f.print(" ")
			f.expr(n.Result)
		}
		f.print(";")

	case *ast.IfStmt:
		f.print("if (")
		f.expr(n.Cond)
		f.print(") ")
		f.block(n.Then)
		if n.Else != nil {
			f.print(" else ")
			if elseIf := isElseIf(n.Else); elseIf != nil {
				f.stmt(elseIf)
			} else {
				f.block(n.Else)
			}
		}

	case *ast.ForStmt:
		f.print("for (")
		f.noIn = true
		switch init := n.Init.(type) {
		case nil:
		case *ast.VarDecl:
			f.varDecl(init)
		case *ast.ExprStmt:
			f.expr(init.X)
		default:
			f.errorf(n, "unsupported for initializer %T", init)
		}
		f.noIn = false
		f.print(";")
		if n.Cond != nil {
			f.print(" ")
			f.expr(n.Cond)
		}
		f.print(";")
		if n.Post != nil {
			f.print(" ")
			f.expr(n.Post)
		}
		f.print(") ")
		f.block(n.Body)

	case *ast.ForInStmt:
		f.print("for (")
		f.noIn = true
		switch left := n.Left.(type) {
		case *ast.VarDecl:
			f.varDecl(left)
		case ast.Expr:
			f.expr1(left, callPrec)
		default:
			f.errorf(n, "unsupported for-in target %T", left)
		}
		f.noIn = false
		if n.Of {
			f.print(" of ")
			f.expr1(n.X, assignPrec)
		} else {
			f.print(" in ")
			f.expr(n.X)
		}
		f.print(") ")
		f.block(n.Body)

	case *ast.WhileStmt:
		f.print("while (")
		f.expr(n.Cond)
		f.print(") ")
		f.block(n.Body)

	case *ast.DoWhileStmt:
		f.print("do ")
		f.block(n.Body)
		f.print(" while (")
		f.expr(n.Cond)
		f.print(");")

	case *ast.SwitchStmt:
		f.print("switch (")
		f.expr(n.Tag)
		f.print(") {")
		for _, c := range n.Cases {
			f.newline()
			if c.Test == nil {
				f.print("default:")
			} else {
				f.print("case ")
				f.expr(c.Test)
				f.print(":")
			}
			if c.Body != nil {
				f.indent++
				f.walkStmtList(c.Body.List, false)
				f.indent--
			}
		}
		f.newline()
		f.print("}")

	case *ast.TryStmt:
		f.print("try ")
		f.block(n.Body)
		if n.Catch != nil {
			f.print(" catch ")
			if n.Catch.Param != nil {
				f.print("(", n.Catch.Param.Name, ") ")
			}
			f.block(n.Catch.Body)
		}
		if n.Finally != nil {
			f.print(" finally ")
			f.block(n.Finally)
		}

	case *ast.ThrowStmt:
		f.print("throw ")
		f.expr(n.X)
		f.print(";")

	case *ast.BranchStmt:
		f.print(n.Tok.String())
		if n.Label != nil {
			f.print(" ", n.Label.Name)
		}
		f.print(";")

	case *ast.LabeledStmt:
		f.print(n.Label.Name, ": ")
		f.stmt(n.Stmt)

	default:
		panic(fmt.Sprintf("unknown statement type %T", n))
	}
}

// isElseIf returns the if statement of an else branch that consists of a
// single unbraced if statement.
func isElseIf(b *ast.BlockStmt) *ast.IfStmt {
	if b.Lbrace.IsValid() || len(b.List) != 1 {
		return nil
	}
	s, _ := b.List[0].(*ast.IfStmt)
	return s
}

func (f *formatter) varDecl(d *ast.VarDecl) {
	f.print(d.Tok.String(), " ")
	for i, s := range d.Specs {
		if i > 0 {
			f.print(", ")
		}
		f.print(s.Name.Name)
		if s.Value != nil {
			f.print(" = ")
			f.expr1(s.Value, assignPrec)
		}
	}
}

func (f *formatter) funcRest(params []*ast.Ident, body *ast.BlockStmt) {
	f.print("(")
	for i, p := range params {
		if i > 0 {
			f.print(", ")
		}
		f.print(p.Name)
	}
	f.print(") ")
	noIn := f.noIn
	f.noIn = false
	f.block(body)
	f.noIn = noIn
}

// startsWithBrace reports whether the printed form of x starts with a
// function or object literal, which would be taken for a declaration or
// block at the start of a statement.
func startsWithBrace(x ast.Expr) bool {
	for {
		switch v := x.(type) {
		case *ast.FuncLit, *ast.ObjectLit:
			return true
		case *ast.BinaryExpr:
			x = v.X
		case *ast.AssignExpr:
			x = v.Lhs
		case *ast.CondExpr:
			x = v.Cond
		case *ast.SeqExpr:
			x = v.List[0]
		case *ast.CallExpr:
			x = v.Fun
		case *ast.SelectorExpr:
			x = v.X
		case *ast.IndexExpr:
			x = v.X
		case *ast.UnaryExpr:
			if !v.Postfix {
				return false
			}
			x = v.X
		default:
			return false
		}
	}
}

func precedence(x ast.Expr) int {
	switch v := x.(type) {
	case *ast.SeqExpr:
		return seqPrec
	case *ast.AssignExpr:
		return assignPrec
	case *ast.CondExpr:
		return condPrec
	case *ast.BinaryExpr:
		return binaryPrec + v.Op.Precedence()
	case *ast.UnaryExpr:
		if v.Postfix {
			return postfixPrec
		}
		return unaryPrec
	case *ast.CallExpr, *ast.NewExpr, *ast.SelectorExpr, *ast.IndexExpr:
		return callPrec
	}
	return primaryPrec
}

// mixesNullish reports whether x is a logical expression that must be
// parenthesized as an operand of ??, or the reverse.
func mixesNullish(op token.Token, x ast.Expr) bool {
	b, ok := x.(*ast.BinaryExpr)
	if !ok {
		return false
	}
	switch op {
	case token.NULLISH:
		return b.Op == token.LAND || b.Op == token.LOR
	case token.LAND, token.LOR:
		return b.Op == token.NULLISH
	}
	return false
}

func (f *formatter) expr(x ast.Expr) {
	f.expr1(x, seqPrec)
}

// expr1 prints x, parenthesizing it if its precedence is lower than prec1.
func (f *formatter) expr1(x ast.Expr, prec1 int) {
	paren := precedence(x) < prec1
	if b, ok := x.(*ast.BinaryExpr); ok && b.Op == token.IN && f.noIn {
		paren = true
	}
	if paren {
		noIn := f.noIn
		f.noIn = false
		f.print("(")
		f.exprRaw(x)
		f.print(")")
		f.noIn = noIn
		return
	}
	f.exprRaw(x)
}

func (f *formatter) operand(op token.Token, x ast.Expr, prec1 int) {
	if mixesNullish(op, x) {
		f.print("(")
		f.exprRaw(x)
		f.print(")")
		return
	}
	f.expr1(x, prec1)
}

func (f *formatter) exprRaw(expr ast.Expr) {
	switch x := expr.(type) {
	case *ast.BadExpr:
		f.errorf(x, "cannot format bad expression")

	case *ast.Ident:
		f.print(x.Name)

	case *ast.BasicLit:
		f.print(x.Value)

	case *ast.ThisExpr:
		f.print("this")

	case *ast.FuncLit:
		f.print("function")
		if x.Name != nil {
			f.print(" ", x.Name.Name)
		}
		f.funcRest(x.Params, x.Body)

	case *ast.ArrayLit:
		f.print("[")
		f.nested(func() { f.walkExprList(x.Elts) })
		f.print("]")

	case *ast.ObjectLit:
		f.print("{")
		f.nested(func() {
			for i, p := range x.Props {
				if i > 0 {
					f.print(", ")
				}
				f.propertyKey(p.Key)
				f.print(": ")
				f.expr1(p.Value, assignPrec)
			}
		})
		f.print("}")

	case *ast.SelectorExpr:
		f.memberObject(x.X)
		f.print(".", x.Sel.Name)

	case *ast.IndexExpr:
		f.memberObject(x.X)
		f.print("[")
		f.nested(func() { f.expr(x.Index) })
		f.print("]")

	case *ast.CallExpr:
		f.expr1(x.Fun, callPrec)
		f.print("(")
		f.nested(func() { f.walkExprList(x.Args) })
		f.print(")")

	case *ast.NewExpr:
		f.print("new ")
		if hasCall(x.Fun) {
			f.print("(")
			f.nested(func() { f.exprRaw(x.Fun) })
			f.print(")")
		} else {
			f.expr1(x.Fun, callPrec)
		}
		f.print("(")
		f.nested(func() { f.walkExprList(x.Args) })
		f.print(")")

	case *ast.UnaryExpr:
		if x.Postfix {
			f.expr1(x.X, callPrec)
			f.print(x.Op.String())
			break
		}
		op := x.Op.String()
		f.print(op)
		if needsUnarySpace(x.Op, x.X) {
			f.print(" ")
		}
		f.expr1(x.X, unaryPrec)

	case *ast.BinaryExpr:
		prec := binaryPrec + x.Op.Precedence()
		f.operand(x.Op, x.X, prec)
		f.print(" ", x.Op.String(), " ")
		f.operand(x.Op, x.Y, prec+1)

	case *ast.CondExpr:
		f.expr1(x.Cond, condPrec+1)
		f.print(" ? ")
		f.nested(func() { f.expr1(x.Then, assignPrec) })
		f.print(" : ")
		f.expr1(x.Else, assignPrec)

	case *ast.AssignExpr:
		f.expr1(x.Lhs, callPrec)
		f.print(" ", x.Tok.String(), " ")
		f.expr1(x.Rhs, assignPrec)

	case *ast.SeqExpr:
		for i, e := range x.List {
			if i > 0 {
				f.print(", ")
			}
			f.expr1(e, assignPrec)
		}

	default:
		panic(fmt.Sprintf("unknown expression type %T", x))
	}
}

// nested prints within brackets, where in is an ordinary operator again.
func (f *formatter) nested(fn func()) {
	noIn := f.noIn
	f.noIn = false
	fn()
	f.noIn = noIn
}

func (f *formatter) memberObject(x ast.Expr) {
	if lit, ok := x.(*ast.BasicLit); ok && lit.Kind == token.NUMBER &&
		!strings.ContainsAny(lit.Value, ".eExXoObB") {
		f.print("(", lit.Value, ")")
		return
	}
	f.expr1(x, callPrec)
}

func (f *formatter) propertyKey(key ast.Expr) {
	switch k := key.(type) {
	case *ast.Ident:
		f.print(k.Name)
	case *ast.BasicLit:
		if f.cfg.simplify && k.Kind == token.STRING {
			if s, err := ast.Unquote(k.Value); err == nil && isIdentName(s) {
				f.print(s)
				return
			}
		}
		f.print(k.Value)
	default:
		f.errorf(key, "unsupported property key %T", key)
	}
}

// hasCall reports whether the member chain x contains a call, which would
// bind the arguments of a new expression.
func hasCall(x ast.Expr) bool {
	for {
		switch v := x.(type) {
		case *ast.CallExpr:
			return true
		case *ast.SelectorExpr:
			x = v.X
		case *ast.IndexExpr:
			x = v.X
		default:
			return false
		}
	}
}

func needsUnarySpace(op token.Token, x ast.Expr) bool {
	switch op {
	case token.TYPEOF, token.VOID, token.DELETE:
		return true
	}
	u, ok := x.(*ast.UnaryExpr)
	if !ok || u.Postfix {
		return false
	}
	switch op {
	case token.SUB:
		return u.Op == token.SUB || u.Op == token.DEC
	case token.ADD:
		return u.Op == token.ADD || u.Op == token.INC
	}
	return false
}

func isIdentName(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '$',
			'a' <= r && r <= 'z',
			'A' <= r && r <= 'Z':
		case i > 0 && '0' <= r && r <= '9':
		default:
			return false
		}
	}
	return true
}
