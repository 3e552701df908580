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

package astutil_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"jscomp.dev/go/internal/jstest"
	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/ast/astutil"
)

type reporter struct {
	changed []ast.Node
	deleted []ast.Node
}

func (r *reporter) ReportChange(n ast.Node)  { r.changed = append(r.changed, n) }
func (r *reporter) ReportDeleted(n ast.Node) { r.deleted = append(r.deleted, n) }

// findCall returns the first call of name in n together with its
// ancestors.
func findCall(idx *astutil.Index, n ast.Node, name string) (*ast.CallExpr, []ast.Node) {
	var call *ast.CallExpr
	ast.Walk(n, func(n ast.Node) bool {
		if c, ok := n.(*ast.CallExpr); ok && call == nil && ast.MatchesQualifiedName(c.Fun, name) {
			call = c
		}
		return call == nil
	}, nil)
	if call == nil {
		return nil, nil
	}
	return call, idx.Ancestors(call)
}

// funcNamed returns the function declaration name of f.
func funcNamed(f *ast.File, name string) *ast.FuncDecl {
	var fn *ast.FuncDecl
	ast.Walk(f, func(n ast.Node) bool {
		if d, ok := n.(*ast.FuncDecl); ok && d.Name.Name == name {
			fn = d
		}
		return fn == nil
	}, nil)
	return fn
}

func TestIndex(t *testing.T) {
	f := jstest.ParseFile(t, "a.js", `function f() { if (x) { g(); } }`)
	idx := astutil.NewIndex(f)
	qt.Assert(t, qt.IsNil(idx.Verify(f)))

	call, path := findCall(idx, f, "g")
	qt.Assert(t, qt.IsNotNil(call))
	qt.Assert(t, qt.Equals(path[0], ast.Node(f)))
	qt.Assert(t, qt.Equals(idx.Parent(call), path[len(path)-1]))
	qt.Assert(t, qt.Equals(idx.EnclosingScopeOf(call), ast.Node(funcNamed(f, "f"))))
	qt.Assert(t, qt.Equals(astutil.EnclosingFuncName(path), "f"))
	qt.Assert(t, qt.IsNil(idx.Parent(f)))

	// Unindexed replacements make the index stale.
	es := idx.Parent(call).(*ast.ExprStmt)
	es.X = ast.NewCall(ast.NewIdent("h"))
	qt.Assert(t, qt.ErrorMatches(idx.Verify(f), `stale parent index for \*ast.CallExpr .*`))
	idx.Update(es.X, es)
	qt.Assert(t, qt.IsNil(idx.Verify(f)))
}

func TestDeleteCall(t *testing.T) {
	testCases := []struct {
		name string
		in   string
		out  string
	}{{
		name: "statement",
		in:   "function f() { g(); h(); }",
		out:  "function f() {\n\th();\n}\n",
	}, {
		name: "operand",
		in:   "function f() { a && g(); }",
		out:  "function f() {\n\ta && void 0;\n}\n",
	}, {
		name: "argument",
		in:   "function f() { h(g()); }",
		out:  "function f() {\n\th(void 0);\n}\n",
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := jstest.ParseFile(t, "a.js", tc.in)
			idx := astutil.NewIndex(f)
			call, path := findCall(idx, f, "g")
			r := &reporter{}
			qt.Assert(t, qt.IsTrue(astutil.DeleteCall(idx, path, call, r)))
			qt.Assert(t, qt.Equals(jstest.Format(t, f), tc.out))
			qt.Assert(t, qt.CmpEquals(r.deleted, []ast.Node{call}, jstest.SameNodes))
			qt.Assert(t, qt.CmpEquals(r.changed, []ast.Node{funcNamed(f, "f")}, jstest.SameNodes))
			qt.Assert(t, qt.IsNil(idx.Verify(f)))
		})
	}
}

func TestDeleteStmt(t *testing.T) {
	f := jstest.ParseFile(t, "a.js", "function f() { g(); h(); }")
	idx := astutil.NewIndex(f)
	fn := funcNamed(f, "f")
	body := ast.FuncBody(fn)
	stmt := body.List[0]

	r := &reporter{}
	qt.Assert(t, qt.IsTrue(astutil.DeleteStmt(body, stmt, r)))
	qt.Assert(t, qt.Equals(jstest.Format(t, f), "function f() {\n\th();\n}\n"))
	qt.Assert(t, qt.CmpEquals(r.deleted, []ast.Node{stmt}, jstest.SameNodes))
	qt.Assert(t, qt.CmpEquals(r.changed, []ast.Node{body}, jstest.SameNodes))
	qt.Assert(t, qt.CmpEquals(idx.EnclosingScopeOf(r.changed[0]), ast.Node(fn), jstest.SameNodes))

	// A statement that is no longer there is not reported again.
	qt.Assert(t, qt.IsFalse(astutil.DeleteStmt(body, stmt, r)))
	qt.Assert(t, qt.HasLen(r.deleted, 1))
}

func TestNextStmt(t *testing.T) {
	f := jstest.ParseFile(t, "a.js", "a(); b();")
	qt.Assert(t, qt.Equals(astutil.NextStmt(f, f.Stmts[0]), f.Stmts[1]))
	qt.Assert(t, qt.IsNil(astutil.NextStmt(f, f.Stmts[1])))

	qt.Assert(t, qt.IsTrue(astutil.RemoveStmt(f, f.Stmts[0])))
	qt.Assert(t, qt.HasLen(f.Stmts, 1))
	qt.Assert(t, qt.IsFalse(astutil.RemoveStmt(f, &ast.EmptyStmt{})))
}

func TestScopes(t *testing.T) {
	f := jstest.ParseFile(t, "a.js", `
function a() {
	function b() {
		function c() {}
	}
}
function d() {}
`)
	idx := astutil.NewIndex(f)
	a, b, c, d := funcNamed(f, "a"), funcNamed(f, "b"), funcNamed(f, "c"), funcNamed(f, "d")

	qt.Assert(t, qt.CmpEquals(idx.ParentScopes([]ast.Node{c, d}), []ast.Node{c, d, b, f}, jstest.SameNodes))
	qt.Assert(t, qt.CmpEquals(idx.ParentScopes([]ast.Node{b, a}), []ast.Node{b, a, f}, jstest.SameNodes))
	qt.Assert(t, qt.CmpEquals(idx.RemoveNestedScopes([]ast.Node{c, a, d, b, a}), []ast.Node{a, d}, jstest.SameNodes))
	qt.Assert(t, qt.CmpEquals(idx.RemoveNestedScopes([]ast.Node{c, b, f}), []ast.Node{f}, jstest.SameNodes))

	// An empty list of changes must stay distinguishable from nil, which
	// stands for the whole program.
	for _, scopes := range [][]ast.Node{
		idx.ParentScopes([]ast.Node{}),
		idx.RemoveNestedScopes([]ast.Node{}),
		idx.RemoveNestedScopes(idx.ParentScopes(nil)),
	} {
		qt.Assert(t, qt.Not(qt.IsNil(scopes)))
		qt.Assert(t, qt.HasLen(scopes, 0))
	}
}

type recorder struct {
	entered []string
	visited []string
}

func (r *recorder) EnterScope(root ast.Node) {
	r.entered = append(r.entered, name(root))
}

func (r *recorder) Before(c *astutil.Cursor) bool {
	if fn, ok := c.Node().(*ast.FuncDecl); ok {
		r.visited = append(r.visited, fn.Name.Name)
	}
	return true
}

func (r *recorder) After(c *astutil.Cursor) {}

func name(n ast.Node) string {
	switch n := n.(type) {
	case *ast.Program:
		return "program"
	case *ast.File:
		return n.Filename
	case *ast.FuncDecl:
		return n.Name.Name
	}
	return "?"
}

func TestTraverseScopeRoots(t *testing.T) {
	f := jstest.ParseFile(t, "a.js", `
function a() {
	function b() {}
}
function c() {}
`)
	prog := &ast.Program{Files: []*ast.File{f}}
	idx := astutil.NewIndex(prog)
	a := funcNamed(f, "a")

	r := &recorder{}
	astutil.TraverseScopeRoots(prog, idx, nil, r, false)
	qt.Assert(t, qt.DeepEquals(r.entered, []string{"program"}))
	qt.Assert(t, qt.DeepEquals(r.visited, []string{"a", "b", "c"}))

	r = &recorder{}
	astutil.TraverseScopeRoots(prog, idx, []ast.Node{a}, r, true)
	qt.Assert(t, qt.DeepEquals(r.entered, []string{"a"}))
	qt.Assert(t, qt.DeepEquals(r.visited, []string{"a", "b"}))

	r = &recorder{}
	astutil.TraverseScopeRoots(prog, idx, []ast.Node{f, a}, r, false)
	qt.Assert(t, qt.DeepEquals(r.entered, []string{"a.js", "a"}))
	qt.Assert(t, qt.DeepEquals(r.visited, []string{"a"}))
}

func TestTraversePath(t *testing.T) {
	f := jstest.ParseFile(t, "a.js", "function a() { g(); }")
	idx := astutil.NewIndex(f)
	a := funcNamed(f, "a")

	var got []ast.Node
	astutil.Traverse(a, idx.Ancestors(a), astutil.PostOrder(func(c *astutil.Cursor) {
		if call, ok := c.Node().(*ast.CallExpr); ok {
			got = append([]ast.Node(nil), c.Path()...)
			qt.Assert(t, qt.Equals(c.Parent(), idx.Parent(call)))
		}
	}))
	_, want := findCall(idx, f, "g")
	qt.Assert(t, qt.CmpEquals(got, want, jstest.SameNodes))
}
