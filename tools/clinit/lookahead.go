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

package clinit

import (
	"slices"

	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/ast/astutil"
)

// lookaheadPruner removes a clinit call that is immediately followed by a
// call of a function whose first statement calls the same clinit:
//
//	Foo$clinit();            =>    return new Foo();
//	return new Foo();
//
// Only the first statement of the called function is inspected.
type lookaheadPruner struct {
	pass    *Pass
	removed int
}

func (l *lookaheadPruner) visit(c *astutil.Cursor) {
	stmt, ok := c.Node().(*ast.ExprStmt)
	if !ok {
		return
	}
	name := l.pass.clinitCallName(stmt.X)
	if name == "" {
		return
	}

	container := c.Parent()
	fun, args := callOrNew(astutil.NextStmt(container, stmt))
	id, ok := fun.(*ast.Ident)
	if !ok {
		return
	}

	// A recursive call need not reach the clinit call on this entry.
	path := c.Path()
	enclosing := astutil.EnclosingFunc(path)
	if enclosing == nil || id.Name == astutil.EnclosingFuncName(path) {
		return
	}

	callee := declaredFunc(id)
	if callee == nil || !l.callsClinit(callee, name) {
		return
	}
	for _, arg := range args {
		if !ast.IsLiteralValue(arg, false) && !isParam(arg, enclosing) {
			return
		}
	}

	if astutil.DeleteStmt(container, stmt, l.pass.host) {
		l.removed++
	}
}

// callOrNew returns the callee and arguments of the call or new expression
// that forms stmt, is returned by it, or initializes its only binding.
func callOrNew(stmt ast.Stmt) (fun ast.Expr, args []ast.Expr) {
	var x ast.Expr
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		x = s.X
	case *ast.ReturnStmt:
		x = s.Result
	case *ast.VarDecl:
		if len(s.Specs) == 1 {
			x = s.Specs[0].Value
		}
	}
	switch x := x.(type) {
	case *ast.CallExpr:
		return x.Fun, x.Args
	case *ast.NewExpr:
		return x.Fun, x.Args
	}
	return nil, nil
}

// declaredFunc returns the function declared by the declaration id refers
// to: a function declaration or a variable initialized with a function
// expression.
func declaredFunc(id *ast.Ident) ast.Node {
	switch d := id.Node.(type) {
	case *ast.FuncDecl:
		return d
	case *ast.VarSpec:
		if lit, ok := d.Value.(*ast.FuncLit); ok {
			return lit
		}
	}
	return nil
}

// callsClinit reports whether the first statement of fn calls the clinit
// name.
func (l *lookaheadPruner) callsClinit(fn ast.Node, name string) bool {
	body := ast.FuncBody(fn)
	if body == nil || len(body.List) == 0 {
		return false
	}
	first, ok := body.List[0].(*ast.ExprStmt)
	return ok && l.pass.clinitCallName(first.X) == name
}

// isParam reports whether x refers to a parameter of fn.
func isParam(x ast.Expr, fn ast.Node) bool {
	id, ok := x.(*ast.Ident)
	if !ok || id.Node == nil {
		return false
	}
	p, ok := id.Node.(*ast.Ident)
	return ok && slices.Contains(ast.FuncParams(fn), p)
}
