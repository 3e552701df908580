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

package compiler_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/go-quicktest/qt"

	"jscomp.dev/go/compiler"
	"jscomp.dev/go/internal/jstest"
	"jscomp.dev/go/js/ast"
)

func TestMode(t *testing.T) {
	for _, m := range []compiler.Mode{compiler.Auto, compiler.On, compiler.Off} {
		got, err := compiler.ParseMode(m.String())
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, m))
	}

	var m compiler.Mode
	qt.Assert(t, qt.IsNil(m.Set("ON")))
	qt.Assert(t, qt.Equals(m, compiler.On))
	qt.Assert(t, qt.ErrorMatches(m.Set("sometimes"), `invalid J2CL mode "sometimes" \(want auto, on or off\)`))
	qt.Assert(t, qt.Equals(m, compiler.On))
	qt.Assert(t, qt.Equals(compiler.Mode(7).String(), "Mode(7)"))

	qt.Assert(t, qt.IsNil(m.UnmarshalText([]byte("off"))))
	b, err := m.MarshalText()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(b), "off"))
}

func TestShouldRunJ2CLPasses(t *testing.T) {
	testCases := []struct {
		mode  compiler.Mode
		files []string
		want  bool
	}{
		{compiler.Auto, []string{"a.js"}, false},
		{compiler.Auto, []string{"a.js", "b/Foo.java.js"}, true},
		{compiler.Auto, nil, false},
		{compiler.On, []string{"a.js"}, true},
		{compiler.Off, []string{"Foo.java.js"}, false},
	}
	for _, tc := range testCases {
		var files []*ast.File
		for _, name := range tc.files {
			files = append(files, jstest.ParseFile(t, name, "x;"))
		}
		c := compiler.New(files, compiler.Options{J2CL: tc.mode})
		qt.Check(t, qt.Equals(c.ShouldRunJ2CLPasses(), tc.want), qt.Commentf("%v %v", tc.mode, tc.files))
	}
}

func TestChanges(t *testing.T) {
	a := jstest.ParseFile(t, "b.js", `function f() { var g = function() { x(); }; } y();`)
	b := jstest.ParseFile(t, "a.js", `function h() {}`)
	c := compiler.New([]*ast.File{a, b}, compiler.Options{})

	f := a.Stmts[0].(*ast.FuncDecl)
	lit := f.Body.List[0].(*ast.VarDecl).Specs[0].Value.(*ast.FuncLit)
	h := b.Stmts[0]

	c.ReportChange(lit.Body.List[0])
	c.ReportChange(a.Stmts[1])
	c.ReportChange(h)
	c.ReportChange(lit)
	c.ReportChange(c.Program())
	qt.Assert(t, qt.CmpEquals(c.ChangedScopes(), []ast.Node{lit, a, h}, jstest.SameNodes))
	qt.Assert(t, qt.DeepEquals(c.ChangedFiles(), []string{"a.js", "b.js"}))

	c.ReportDeleted(f.Body.List[0])
	qt.Assert(t, qt.CmpEquals(c.ChangedScopes(), []ast.Node{a, h}, jstest.SameNodes))

	c.ResetChanges()
	qt.Assert(t, qt.HasLen(c.ChangedScopes(), 0))
	qt.Assert(t, qt.HasLen(c.ChangedFiles(), 0))
}

func TestGlobalsResolved(t *testing.T) {
	a := jstest.ParseFile(t, "a.js", `f();`)
	b := jstest.ParseFile(t, "b.js", `function f() {}`)
	compiler.New([]*ast.File{a, b}, compiler.Options{})

	id := a.Stmts[0].(*ast.ExprStmt).X.(*ast.CallExpr).Fun.(*ast.Ident)
	qt.Assert(t, qt.Equals(id.Node, ast.Node(b.Stmts[0])))
	qt.Assert(t, qt.HasLen(a.Unresolved, 0))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := jstest.ParseFile(t, "a.java.js", `Foo$clinit(); Foo$clinit();`)
	c := compiler.New([]*ast.File{f}, compiler.Options{Logger: log})
	qt.Assert(t, qt.Equals(c.Logger(), log))

	c.RunClinitPruning(nil)
	qt.Assert(t, qt.StringContains(buf.String(), `msg="clinit pruning" redundant=1 lookahead=0`))
	qt.Assert(t, qt.StringContains(buf.String(), `msg="side-effect inference"`))
}

func TestStrict(t *testing.T) {
	f := jstest.ParseFile(t, "a.java.js", `x = 1;`)
	opts := compiler.Options{}
	opts.Debug.Strict = true
	c := compiler.New([]*ast.File{f}, opts)
	c.RunClinitPruning(nil)

	// Replace a node behind the index's back.
	f.Stmts[0].(*ast.ExprStmt).X.(*ast.AssignExpr).Rhs = ast.NewNumber("2")
	qt.Assert(t, qt.PanicMatches(func() {
		c.RunClinitPruning(nil)
	}, `after clinit pruning: stale parent index for \*ast.BasicLit .*`))
}
