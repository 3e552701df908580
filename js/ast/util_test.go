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

package ast_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/parser"
)

func parseExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	x, err := parser.ParseExpr("", src)
	qt.Assert(t, qt.IsNil(err))
	return x
}

func TestQualifiedName(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"a", "a"},
		{"a.b.c", "a.b.c"},
		{"this.x", "this.x"},
		{"a[0]", ""},
		{"a().b", ""},
		{"1", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			x := parseExpr(t, tc.in)
			qt.Assert(t, qt.Equals(ast.QualifiedName(x), tc.want))
			qt.Assert(t, qt.Equals(ast.MatchesQualifiedName(x, tc.want), tc.want != ""))
		})
	}
}

func TestFuncName(t *testing.T) {
	f, err := parser.ParseFile("", `
function a() {}
var b = function() {};
c.d.e = function() {};
x = {f: function() {}, "g": function() {}};
(function h() {});
(function() {});
`)
	qt.Assert(t, qt.IsNil(err))

	var got []string
	ast.Walk(f, nil, func(n ast.Node) {
		var parent ast.Node
		switch p := n.(type) {
		case *ast.FuncDecl:
			got = append(got, ast.FuncName(p, nil))
			return
		case *ast.VarSpec:
			parent = p
			n = p.Value
		case *ast.AssignExpr:
			parent = p
			n = p.Rhs
		case *ast.Property:
			parent = p
			n = p.Value
		case *ast.ExprStmt:
			parent = p
			n = p.X
		default:
			return
		}
		if ast.IsFunction(n) {
			got = append(got, ast.FuncName(n, parent))
		}
	})
	qt.Assert(t, qt.DeepEquals(got, []string{"a", "b", "c.d.e", "f", "g", "h", ""}))
}

func TestIsLiteralValue(t *testing.T) {
	testCases := []struct {
		in        string
		literal   bool
		functions bool
	}{
		{"1", true, true},
		{"'s'", true, true},
		{"null", true, true},
		{"undefined", true, true},
		{"-1", true, true},
		{"void 0", true, true},
		{"!x", false, false},
		{"x", false, false},
		{"[1, 'a', [true]]", true, true},
		{"{a: 1, b: {c: null}}", true, true},
		{"{a: x}", false, false},
		{"function() {}", false, true},
		{"[function() {}]", false, true},
		{"f()", false, false},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			x := parseExpr(t, tc.in)
			qt.Assert(t, qt.Equals(ast.IsLiteralValue(x, false), tc.literal))
			qt.Assert(t, qt.Equals(ast.IsLiteralValue(x, true), tc.functions))
		})
	}
}

func TestIsEmptyFunc(t *testing.T) {
	qt.Assert(t, qt.IsTrue(ast.IsEmptyFunc(parseExpr(t, "function() {}"))))
	qt.Assert(t, qt.IsFalse(ast.IsEmptyFunc(parseExpr(t, "function() { f(); }"))))
	qt.Assert(t, qt.IsFalse(ast.IsEmptyFunc(parseExpr(t, "f"))))
}

func TestUnquote(t *testing.T) {
	testCases := []struct {
		in   string
		want string
		err  string
	}{
		{in: `"abc"`, want: "abc"},
		{in: `'abc'`, want: "abc"},
		{in: `"a\"b"`, want: `a"b`},
		{in: `'\n\t\\'`, want: "\n\t\\"},
		{in: `"\x41B\u{43}"`, want: "ABC"},
		{in: `"\q"`, want: "q"},
		{in: `"abc'`, err: "invalid string literal .*"},
		{in: `abc`, err: "invalid string literal .*"},
		{in: `"\u12"`, err: "invalid unicode escape"},
		{in: `"\u{110000}"`, err: "invalid unicode escape"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ast.Unquote(tc.in)
			if tc.err != "" {
				qt.Assert(t, qt.ErrorMatches(err, tc.err))
				return
			}
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(got, tc.want))
		})
	}
}

func TestNewString(t *testing.T) {
	for _, s := range []string{"", "abc", "a\"b", "line\nbreak", "tab\t", "\x01", " "} {
		lit := ast.NewString(s)
		got, err := ast.Unquote(lit.Value)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, s))
	}
}
