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

package astinternal_test

import (
	"reflect"
	"testing"

	"github.com/go-quicktest/qt"

	"jscomp.dev/go/internal/astinternal"
	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/parser"
)

func TestAppendDebug(t *testing.T) {
	f, err := parser.ParseFile("a.js", "x = a;")
	qt.Assert(t, qt.IsNil(err))

	typNode := reflect.TypeOf((*ast.Node)(nil)).Elem()
	got := astinternal.AppendDebug(nil, f, astinternal.DebugConfig{
		OmitEmpty: true,
		Filter: func(v reflect.Value) bool {
			if v.Type().Implements(typNode) {
				return true
			}
			switch v.Kind() {
			case reflect.Slice, reflect.String:
				return true
			}
			return false
		},
	})
	const want = `*ast.File{
	Filename: "a.js"
	Stmts: []ast.Stmt{
		*ast.ExprStmt{
			X: *ast.AssignExpr{
				Lhs: *ast.Ident{
					Name: "x"
				}
				Rhs: *ast.Ident{
					Name: "a"
				}
			}
		}
	}
}
`
	qt.Assert(t, qt.Equals(string(got), want))
}

func TestDebugStr(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"a + b * c;", "(a + (b * c));"},
		{"x = a ? b : c;", "x = (a ? b : c);"},
		{"f(1, 'a')[0].b;", "f(1, 'a')[0].b;"},
		{"new Foo;", "new Foo;"},
		{"typeof x; i++;", "typeof x; i++;"},
		{"var a = 1, b;", "var a = 1, b;"},
		{"function f(a, b) { return a; }", "function f(a, b) {return a;}"},
		{"if (a) { b(); } else { c(); }", "if a {b();} else {c();}"},
		{"for (;;) {}", "for (; ; ) {}"},
		{"try { f(); } catch (e) {} finally {}", "try {f();} catch (e) {} finally {}"},
		{"l: while (a) { break l; }", "l: while a {break l;}"},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			f, err := parser.ParseFile("", tc.in)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(astinternal.DebugStr(f), tc.want))
		})
	}
}
