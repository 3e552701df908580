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
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"golang.org/x/tools/txtar"

	"jscomp.dev/go/internal/astinternal"
	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/parser"
	"jscomp.dev/go/js/token"
)

var updateGoldenFiles = os.Getenv("JSCOMP_UPDATE") != ""

func TestFiles(t *testing.T) {
	txtarFiles, err := filepath.Glob("testdata/*.txtar")
	qt.Assert(t, qt.IsNil(err))
	for _, txtarFile := range txtarFiles {
		ar, err := txtar.ParseFile(txtarFile)
		qt.Assert(t, qt.IsNil(err))

		opts := []Option{TabIndent(true)}
		for _, word := range strings.Fields(string(ar.Comment)) {
			switch word {
			case "simplify":
				opts = append(opts, Simplify())
			}
		}

		tfs, err := txtar.FS(ar)
		qt.Assert(t, qt.IsNil(err))
		inputFiles, err := fs.Glob(tfs, "*.input")
		qt.Assert(t, qt.IsNil(err))

		for _, inputFile := range inputFiles {
			goldenFile := strings.TrimSuffix(inputFile, ".input") + ".golden"
			t.Run(path.Join(txtarFile, inputFile), func(t *testing.T) {
				src, err := fs.ReadFile(tfs, inputFile)
				qt.Assert(t, qt.IsNil(err))

				res, err := Source(src, opts...)
				qt.Assert(t, qt.IsNil(err))

				// make sure formatted output is syntactically correct
				// and describes the same tree
				in, err := parser.ParseFile("", src)
				qt.Assert(t, qt.IsNil(err))
				out, err := parser.ParseFile("", res, parser.AllErrors)
				qt.Assert(t, qt.IsNil(err))
				if !strings.Contains(string(ar.Comment), "simplify") {
					qt.Assert(t, qt.Equals(astinternal.DebugStr(out), astinternal.DebugStr(in)))
				}

				// update golden files if necessary
				if updateGoldenFiles {
					for i := range ar.Files {
						file := &ar.Files[i]
						if file.Name == goldenFile {
							file.Data = res
							return
						}
					}
					ar.Files = append(ar.Files, txtar.File{
						Name: goldenFile,
						Data: res,
					})
					return
				}

				// get golden
				gld, err := fs.ReadFile(tfs, goldenFile)
				qt.Assert(t, qt.IsNil(err))

				// formatted source and golden must be the same
				qt.Assert(t, qt.Equals(string(res), string(gld)))

				// formatting is idempotent
				again, err := Source(res, opts...)
				qt.Assert(t, qt.IsNil(err))
				qt.Assert(t, qt.Equals(string(again), string(res)))
			})
		}
		if updateGoldenFiles {
			err = os.WriteFile(txtarFile, txtar.Format(ar), 0o666)
			qt.Assert(t, qt.IsNil(err))
		}
	}
}

// Verify that the printer can be invoked during initialization.
func init() {
	const name = "foobar"
	b, err := Node(&ast.Ident{Name: name})
	if err != nil {
		panic(err) // error in test
	}
	if s := string(b); s != name {
		panic("got " + s + ", want " + name)
	}
}

// TestNodes tests nodes that are constructed by rewrites rather than parsed.
func TestNodes(t *testing.T) {
	id := ast.NewIdent
	testCases := []struct {
		name string
		in   ast.Node
		out  string
	}{{
		name: "void 0",
		in:   ast.NewVoid0(),
		out:  "void 0",
	}, {
		name: "void 0 as an operand",
		in: &ast.BinaryExpr{
			X:  ast.NewVoid0(),
			Op: token.LOR,
			Y:  id("a"),
		},
		out: "void 0 || a",
	}, {
		name: "nullish with logical operand",
		in: &ast.BinaryExpr{
			X:  id("a"),
			Op: token.NULLISH,
			Y:  &ast.BinaryExpr{X: id("b"), Op: token.LOR, Y: id("c")},
		},
		out: "a ?? (b || c)",
	}, {
		name: "logical with nullish operand",
		in: &ast.BinaryExpr{
			X:  &ast.BinaryExpr{X: id("a"), Op: token.NULLISH, Y: id("b")},
			Op: token.LAND,
			Y:  id("c"),
		},
		out: "(a ?? b) && c",
	}, {
		name: "sequence in arguments",
		in:   ast.NewCall(id("f"), &ast.SeqExpr{List: []ast.Expr{id("a"), id("b")}}),
		out:  "f((a, b))",
	}, {
		name: "function literal statement",
		in: &ast.ExprStmt{X: ast.NewCall(
			ast.NewSel(&ast.FuncLit{Body: &ast.BlockStmt{}}, "call"),
			id("x"),
		)},
		out: "(function() {}.call(x));\n",
	}, {
		name: "unbraced else if",
		in: &ast.IfStmt{
			Cond: id("a"),
			Then: &ast.BlockStmt{},
			Else: &ast.BlockStmt{List: []ast.Stmt{&ast.IfStmt{
				Cond: id("b"),
				Then: &ast.BlockStmt{List: []ast.Stmt{&ast.ExprStmt{X: ast.NewCall(id("c"))}}},
			}}},
		},
		out: "if (a) {} else if (b) {\n\tc();\n}\n",
	}, {
		name: "emptied function",
		in: &ast.FuncDecl{
			Name: id("Foo$clinit"),
			Body: &ast.BlockStmt{},
		},
		out: "function Foo$clinit() {}\n",
	}, {
		name: "program",
		in: &ast.Program{Files: []*ast.File{
			{Stmts: []ast.Stmt{&ast.ExprStmt{X: id("a")}}},
			{Stmts: []ast.Stmt{&ast.ExprStmt{X: id("b")}}},
		}},
		out: "a;\n\nb;\n",
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Node(tc.in)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.Equals(string(b), tc.out))
		})
	}
}

func TestUseSpaces(t *testing.T) {
	b, err := Source([]byte("if(a){b()}"), UseSpaces(2), TabIndent(false))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(b), "if (a) {\n  b();\n}\n"))
}

func TestBadNodes(t *testing.T) {
	_, err := Node(&ast.ExprStmt{X: &ast.BadExpr{}})
	qt.Assert(t, qt.ErrorMatches(err, `js/format: .*: cannot format bad expression`))

	_, err = Source([]byte("a b"))
	qt.Assert(t, qt.ErrorMatches(err, `parse: .*`))
}
