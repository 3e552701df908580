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

package ast

import (
	"fmt"
	"slices"
)

// Walk traverses an AST in depth-first order: It starts by calling f(node);
// node must not be nil. If before returns true, Walk invokes f recursively for
// each of the non-nil children of node, followed by a call of after. Both
// functions may be nil. If before is nil, it is assumed to always return true.
func Walk(node Node, before func(Node) bool, after func(Node)) {
	walk(&inspector{before: before, after: after}, node)
}

// A visitor's before method is invoked for each node encountered by Walk.
// If the result visitor w is not nil, Walk visits each of the children
// of node with the visitor w, followed by a call of w.After.
type visitor interface {
	Before(node Node) (w visitor)
	After(node Node)
}

// Helper functions for common node lists. They may be empty.

func walkExprList(v visitor, list []Expr) {
	for _, x := range list {
		walk(v, x)
	}
}

// walkStmtList iterates over a copy of list so that visitors may remove the
// statement being visited, or its siblings, from the original list.
func walkStmtList(v visitor, list []Stmt) {
	for _, x := range slices.Clone(list) {
		walk(v, x)
	}
}

func walkIdentList(v visitor, list []*Ident) {
	for _, x := range list {
		walk(v, x)
	}
}

// Children returns the direct, non-nil children of n in source order.
func Children(n Node) []Node {
	var a []Node
	Walk(n, func(x Node) bool {
		if x == n {
			return true
		}
		a = append(a, x)
		return false
	}, nil)
	return a
}

// walk traverses an AST in depth-first order: It starts by calling
// v.Visit(node); node must not be nil. If the visitor w returned by
// v.Visit(node) is not nil, walk is invoked recursively with visitor
// w for each of the non-nil children of node, followed by a call of
// w.Visit(nil).
func walk(v visitor, node Node) {
	if v = v.Before(node); v == nil {
		return
	}

	// walk children
	// (the order of the cases matches the order
	// of the corresponding node types in ast.go)
	switch n := node.(type) {
	// Expressions
	case *BadExpr, *Ident, *BasicLit, *ThisExpr:
		// nothing to do

	case *FuncLit:
		if n.Name != nil {
			walk(v, n.Name)
		}
		walkIdentList(v, n.Params)
		walk(v, n.Body)

	case *ArrayLit:
		walkExprList(v, n.Elts)

	case *ObjectLit:
		for _, p := range n.Props {
			walk(v, p)
		}

	case *Property:
		walk(v, n.Key)
		walk(v, n.Value)

	case *SelectorExpr:
		walk(v, n.X)
		walk(v, n.Sel)

	case *IndexExpr:
		walk(v, n.X)
		walk(v, n.Index)

	case *CallExpr:
		walk(v, n.Fun)
		walkExprList(v, n.Args)

	case *NewExpr:
		walk(v, n.Fun)
		walkExprList(v, n.Args)

	case *UnaryExpr:
		walk(v, n.X)

	case *BinaryExpr:
		walk(v, n.X)
		walk(v, n.Y)

	case *CondExpr:
		walk(v, n.Cond)
		walk(v, n.Then)
		walk(v, n.Else)

	case *AssignExpr:
		walk(v, n.Lhs)
		walk(v, n.Rhs)

	case *SeqExpr:
		walkExprList(v, n.List)

	// Statements
	case *BadStmt, *EmptyStmt:
		// nothing to do

	case *ExprStmt:
		walk(v, n.X)

	case *BlockStmt:
		walkStmtList(v, n.List)

	case *VarDecl:
		for _, s := range n.Specs {
			walk(v, s)
		}

	case *VarSpec:
		walk(v, n.Name)
		if n.Value != nil {
			walk(v, n.Value)
		}

	case *FuncDecl:
		walk(v, n.Name)
		walkIdentList(v, n.Params)
		walk(v, n.Body)

	case *ReturnStmt:
		if n.Result != nil {
			walk(v, n.Result)
		}

	case *IfStmt:
		walk(v, n.Cond)
		walk(v, n.Then)
		if n.Else != nil {
			walk(v, n.Else)
		}

	case *ForStmt:
		if n.Init != nil {
			walk(v, n.Init)
		}
		if n.Cond != nil {
			walk(v, n.Cond)
		}
		if n.Post != nil {
			walk(v, n.Post)
		}
		walk(v, n.Body)

	case *ForInStmt:
		walk(v, n.Left)
		walk(v, n.X)
		walk(v, n.Body)

	case *WhileStmt:
		walk(v, n.Cond)
		walk(v, n.Body)

	case *DoWhileStmt:
		walk(v, n.Body)
		walk(v, n.Cond)

	case *SwitchStmt:
		walk(v, n.Tag)
		for _, c := range n.Cases {
			walk(v, c)
		}

	case *CaseClause:
		if n.Test != nil {
			walk(v, n.Test)
		}
		walk(v, n.Body)

	case *TryStmt:
		walk(v, n.Body)
		if n.Catch != nil {
			walk(v, n.Catch)
		}
		if n.Finally != nil {
			walk(v, n.Finally)
		}

	case *CatchClause:
		if n.Param != nil {
			walk(v, n.Param)
		}
		walk(v, n.Body)

	case *ThrowStmt:
		walk(v, n.X)

	case *BranchStmt:
		if n.Label != nil {
			walk(v, n.Label)
		}

	case *LabeledStmt:
		walk(v, n.Label)
		walk(v, n.Stmt)

	// Roots
	case *File:
		walkStmtList(v, n.Stmts)

	case *Program:
		for _, f := range n.Files {
			walk(v, f)
		}

	default:
		panic(fmt.Sprintf("Walk: unexpected node type %T", n))
	}

	v.After(node)
}

type inspector struct {
	before func(Node) bool
	after  func(Node)
}

func (f *inspector) Before(node Node) visitor {
	if f.before == nil || f.before(node) {
		return f
	}
	return nil
}

func (f *inspector) After(node Node) {
	if f.after != nil {
		f.after(node)
	}
}
