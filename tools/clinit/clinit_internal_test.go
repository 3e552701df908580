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
	"log/slog"
	"testing"

	"github.com/go-quicktest/qt"

	"jscomp.dev/go/internal/jstest"
	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/ast/astutil"
	"jscomp.dev/go/js/parser"
)

type fakeHost struct {
	idx     *astutil.Index
	changed []ast.Node
	deleted []ast.Node
	purity  int
}

func (h *fakeHost) ShouldRunJ2CLPasses() bool { return true }
func (h *fakeHost) Index() *astutil.Index     { return h.idx }
func (h *fakeHost) PurityHasRun() bool        { return h.purity > 0 }
func (h *fakeHost) RunPurity(*ast.Program)    { h.purity++ }
func (h *fakeHost) Logger() *slog.Logger      { return nil }
func (h *fakeHost) ReportDeleted(n ast.Node)  { h.deleted = append(h.deleted, n) }
func (h *fakeHost) ReportChange(n ast.Node)   { h.changed = append(h.changed, h.idx.EnclosingScopeOf(n)) }

func parseProgram(t *testing.T, src string) (*ast.Program, *fakeHost) {
	t.Helper()
	f := jstest.ParseFile(t, "test.js", src)
	parser.ResolveGlobals([]*ast.File{f})
	prog := &ast.Program{Files: []*ast.File{f}}
	return prog, &fakeHost{idx: astutil.NewIndex(prog)}
}

func TestLookaheadAlone(t *testing.T) {
	testCases := []struct {
		name    string
		in      string
		removed int
	}{{
		name:    "SelfCalls",
		in:      `function Foo$clinit() { Foo$clinit(); Foo$clinit(); }`,
		removed: 0,
	}, {
		name:    "SelfCallsInVariable",
		in:      `var Foo$clinit = function() { Foo$clinit(); Foo$clinit(); };`,
		removed: 0,
	}, {
		name: "Collapse",
		in: `function f() { Foo$clinit(); g(); }
			function g() { Foo$clinit(); }`,
		removed: 1,
	}, {
		name: "Chain",
		in: `function f() { Foo$clinit(); Foo$clinit(); g(); }
			function g() { Foo$clinit(); }`,
		removed: 1,
	}, {
		name: "LetAndConst",
		in: `function f() { Foo$clinit(); let a = g(); Foo$clinit(); const b = new g(); }
			function g() { Foo$clinit(); }`,
		removed: 2,
	}, {
		name: "MultipleBindings",
		in: `function f() { Foo$clinit(); var a = g(), b = 1; }
			function g() { Foo$clinit(); }`,
		removed: 0,
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			prog, h := parseProgram(t, tc.in)
			l := &lookaheadPruner{pass: New(h, Config{})}
			astutil.Traverse(prog, nil, astutil.PostOrder(l.visit))
			qt.Assert(t, qt.Equals(l.removed, tc.removed))
			qt.Assert(t, qt.HasLen(h.changed, tc.removed))
			qt.Assert(t, qt.HasLen(h.deleted, tc.removed))
		})
	}
}

func TestIsNewControlBranch(t *testing.T) {
	testCases := []struct {
		src  string
		want bool
	}{
		{`if (a) {}`, true},
		{`for (;;) {}`, true},
		{`for (x in o) {}`, true},
		{`while (a) {}`, true},
		{`do {} while (a);`, true},
		{`l: {}`, true},
		{`try {} catch (e) {}`, true},
		{`switch (a) {}`, true},
		{`function f() {}`, true},
		{`a ? b : c;`, true},
		{`a && b;`, true},
		{`a || b;`, true},
		{`a ?? b;`, true},
		{`a + b;`, false},
		{`a, b;`, false},
		{`{}`, false},
		{`a = b;`, false},
	}
	for _, tc := range testCases {
		t.Run(tc.src, func(t *testing.T) {
			f := jstest.ParseFile(t, "test.js", tc.src)
			var n ast.Node = f.Stmts[0]
			if es, ok := n.(*ast.ExprStmt); ok {
				n = es.X
			}
			qt.Assert(t, qt.Equals(isNewControlBranch(n), tc.want))
		})
	}
	qt.Assert(t, qt.IsFalse(isNewControlBranch(nil)))
}

func TestEmptyPrunerReports(t *testing.T) {
	prog, h := parseProgram(t, `function Foo$clinit() { Foo$clinit = function() {}; }`)
	fn := prog.Files[0].Stmts[0].(*ast.FuncDecl)
	stmt := fn.Body.List[0]

	s := &state{}
	New(h, Config{}).pruneEmpty(s, prog, nil)
	qt.Assert(t, qt.DeepEquals(s.emptied, []string{"Foo$clinit"}))
	qt.Assert(t, qt.HasLen(fn.Body.List, 0))
	qt.Assert(t, qt.CmpEquals(h.deleted, []ast.Node{stmt}, jstest.SameNodes))
	qt.Assert(t, qt.CmpEquals(h.changed, []ast.Node{fn}, jstest.SameNodes))

	// A second run starts with a cleared set.
	New(h, Config{}).pruneEmpty(s, prog, nil)
	qt.Assert(t, qt.HasLen(s.emptied, 0))
}
