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
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"jscomp.dev/go/js/ast"
)

// refs lists every resolved identifier reference of f as
// name@line:col->kind, where kind describes the declaring node.
func refs(f *ast.File) string {
	var a []string
	ast.Walk(f, func(n ast.Node) bool {
		id, ok := n.(*ast.Ident)
		if !ok {
			return true
		}
		var kind string
		switch x := id.Node.(type) {
		case *ast.FuncDecl:
			if x.Name == id {
				return true
			}
			kind = "func"
		case *ast.FuncLit:
			if x.Name == id {
				return true
			}
			kind = "self"
		case *ast.VarSpec:
			if x.Name == id {
				return true
			}
			kind = "var"
		case *ast.Ident:
			if x == id {
				return true
			}
			kind = "param"
		default:
			return true
		}
		a = append(a, fmt.Sprintf("%s@%d:%d->%s", id.Name, id.NamePos.Line(), id.NamePos.Column(), kind))
		return true
	}, nil)
	return strings.Join(a, " ")
}

func unresolved(f *ast.File) string {
	var a []string
	for _, id := range f.Unresolved {
		a = append(a, id.Name)
	}
	return strings.Join(a, " ")
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		desc       string
		in         string
		refs       string
		unresolved string
	}{{
		desc:       "hoisted var and function",
		in:         `f(x); var x = 1; function f(a) { return a + y; }`,
		refs:       `f@1:1->func x@1:3->var a@1:41->param`,
		unresolved: `y`,
	}, {
		desc:       "var hoisted out of block",
		in:         `function g() { if (c) { var v = 1; } return v; }`,
		refs:       `v@1:45->var`,
		unresolved: `c`,
	}, {
		desc:       "let is block scoped",
		in:         `{ let b = 1; } b;`,
		unresolved: `b`,
	}, {
		desc: "self name of function expression",
		in:   `var h = function k() { return k; };`,
		refs: `k@1:31->self`,
	}, {
		desc:       "property names are not references",
		in:         `var o = {p: 1}; o.p;`,
		refs:       `o@1:17->var`,
		unresolved: ``,
	}, {
		desc:       "catch parameter",
		in:         `try {} catch (e) { e; }`,
		refs:       `e@1:20->param`,
		unresolved: ``,
	}, {
		desc:       "labels are not references",
		in:         `l: for (;;) { break l; }`,
		unresolved: ``,
	}, {
		desc: "parameter shadows outer declaration",
		in:   `var p; function q(p) { p; }`,
		refs: `p@1:24->param`,
	}, {
		desc: "for let",
		in:   `for (let i = 0; i < 1; i++) { i; }`,
		refs: `i@1:17->var i@1:24->var i@1:31->var`,
	}}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			f, err := ParseFile("input.js", tc.in)
			qt.Assert(t, qt.IsNil(err))
			qt.Check(t, qt.Equals(refs(f), tc.refs))
			qt.Check(t, qt.Equals(unresolved(f), tc.unresolved))
		})
	}
}

func TestResolveScope(t *testing.T) {
	f, err := ParseFile("input.js", `var a; function f() { var b; a; b; }`)
	qt.Assert(t, qt.IsNil(err))

	fd := f.Stmts[1].(*ast.FuncDecl)
	a := fd.Body.List[1].(*ast.ExprStmt).X.(*ast.Ident)
	b := fd.Body.List[2].(*ast.ExprStmt).X.(*ast.Ident)
	qt.Assert(t, qt.Equals(a.Scope, ast.Node(f)))
	qt.Assert(t, qt.Equals(b.Scope, ast.Node(fd)))
}

func TestResolveGlobals(t *testing.T) {
	a, err := ParseFile("a.js", `var x = 1;`)
	qt.Assert(t, qt.IsNil(err))
	b, err := ParseFile("b.js", `var x = 2;`)
	qt.Assert(t, qt.IsNil(err))
	c, err := ParseFile("c.js", `x; y;`)
	qt.Assert(t, qt.IsNil(err))

	ResolveGlobals([]*ast.File{a, b, c})

	x := c.Stmts[0].(*ast.ExprStmt).X.(*ast.Ident)
	qt.Assert(t, qt.Equals(x.Scope, ast.Node(a)))
	qt.Assert(t, qt.Equals(x.Node, ast.Node(a.Stmts[0].(*ast.VarDecl).Specs[0])))
	qt.Assert(t, qt.Equals(unresolved(c), "y"))
}
