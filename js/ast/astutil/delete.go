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

package astutil

import (
	"slices"

	"jscomp.dev/go/js/ast"
)

// A ChangeReporter is notified of modifications of a tree.
type ChangeReporter interface {
	// ReportChange records that the change scope root enclosing n, or n
	// itself if it is a change scope root, was modified.
	ReportChange(n ast.Node)

	// ReportDeleted records that n was removed from the tree, together with
	// every function it contains.
	ReportDeleted(n ast.Node)
}

// DeleteCall removes the call expression call, whose ancestors are path,
// from the tree. A call that forms an expression statement is removed along
// with the statement; any other call is replaced by void 0. The call is
// reported as deleted and its enclosing change scope root as changed.
//
// DeleteCall reports whether the call could be removed.
func DeleteCall(idx *Index, path []ast.Node, call *ast.CallExpr, r ChangeReporter) bool {
	if len(path) == 0 {
		return false
	}
	parent := path[len(path)-1]
	if es, ok := parent.(*ast.ExprStmt); ok && es.X == ast.Expr(call) {
		if len(path) < 2 || !RemoveStmt(path[len(path)-2], es) {
			return false
		}
	} else {
		void := ast.NewVoid0()
		void.OpPos = call.Pos()
		if !ReplaceExpr(parent, call, void) {
			return false
		}
		if idx != nil {
			idx.Update(void, parent)
		}
	}
	r.ReportDeleted(call)
	r.ReportChange(EnclosingScope(path))
	return true
}

// DeleteStmt removes stmt from container, reporting stmt as deleted and the
// change scope root enclosing container as changed. It reports whether stmt
// was removed.
func DeleteStmt(container ast.Node, stmt ast.Stmt, r ChangeReporter) bool {
	if !RemoveStmt(container, stmt) {
		return false
	}
	r.ReportDeleted(stmt)
	r.ReportChange(container)
	return true
}

// RemoveStmt removes stmt from the statement list of container. Statements
// that are not part of a list are replaced by an empty statement where the
// grammar requires one, or dropped where it is optional.
//
// RemoveStmt reports whether stmt was found.
func RemoveStmt(container ast.Node, stmt ast.Stmt) bool {
	switch c := container.(type) {
	case *ast.BlockStmt:
		return removeFrom(&c.List, stmt)
	case *ast.File:
		return removeFrom(&c.Stmts, stmt)
	case *ast.LabeledStmt:
		if c.Stmt == stmt {
			c.Stmt = &ast.EmptyStmt{Semicolon: stmt.Pos()}
			return true
		}
	case *ast.ForStmt:
		if c.Init == stmt {
			c.Init = nil
			return true
		}
	}
	return false
}

func removeFrom(list *[]ast.Stmt, stmt ast.Stmt) bool {
	i := slices.Index(*list, stmt)
	if i < 0 {
		return false
	}
	*list = slices.Delete(*list, i, i+1)
	return true
}

// NextStmt returns the statement following stmt in the statement list of
// container, or nil if there is none.
func NextStmt(container ast.Node, stmt ast.Stmt) ast.Stmt {
	var list []ast.Stmt
	switch c := container.(type) {
	case *ast.BlockStmt:
		list = c.List
	case *ast.File:
		list = c.Stmts
	default:
		return nil
	}
	i := slices.Index(list, stmt)
	if i < 0 || i+1 >= len(list) {
		return nil
	}
	return list[i+1]
}

// ReplaceExpr replaces the child old of parent with repl. It reports whether
// old was found.
func ReplaceExpr(parent ast.Node, old, repl ast.Expr) bool {
	set := func(p *ast.Expr) bool {
		if *p == old {
			*p = repl
			return true
		}
		return false
	}
	list := func(a []ast.Expr) bool {
		for i, x := range a {
			if x == old {
				a[i] = repl
				return true
			}
		}
		return false
	}

	switch p := parent.(type) {
	case *ast.ArrayLit:
		return list(p.Elts)
	case *ast.Property:
		return set(&p.Value)
	case *ast.SelectorExpr:
		return set(&p.X)
	case *ast.IndexExpr:
		return set(&p.X) || set(&p.Index)
	case *ast.CallExpr:
		return set(&p.Fun) || list(p.Args)
	case *ast.NewExpr:
		return set(&p.Fun) || list(p.Args)
	case *ast.UnaryExpr:
		return set(&p.X)
	case *ast.BinaryExpr:
		return set(&p.X) || set(&p.Y)
	case *ast.CondExpr:
		return set(&p.Cond) || set(&p.Then) || set(&p.Else)
	case *ast.AssignExpr:
		return set(&p.Lhs) || set(&p.Rhs)
	case *ast.SeqExpr:
		return list(p.List)
	case *ast.ExprStmt:
		return set(&p.X)
	case *ast.VarSpec:
		return p.Value != nil && set(&p.Value)
	case *ast.ReturnStmt:
		return p.Result != nil && set(&p.Result)
	case *ast.IfStmt:
		return set(&p.Cond)
	case *ast.ForStmt:
		return p.Cond != nil && set(&p.Cond) || p.Post != nil && set(&p.Post)
	case *ast.ForInStmt:
		if p.Left == ast.Node(old) {
			p.Left = repl
			return true
		}
		return set(&p.X)
	case *ast.WhileStmt:
		return set(&p.Cond)
	case *ast.DoWhileStmt:
		return set(&p.Cond)
	case *ast.SwitchStmt:
		return set(&p.Tag)
	case *ast.CaseClause:
		return p.Test != nil && set(&p.Test)
	case *ast.ThrowStmt:
		return set(&p.X)
	}
	return false
}
