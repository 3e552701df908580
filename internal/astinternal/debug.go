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

package astinternal

import (
	"fmt"
	"reflect"
	"strings"

	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/token"
)

// AppendDebug appends a multi-line dump of node to dst. Each value is
// preceded by its Go type unless the enclosing slice already implies it.
func AppendDebug(dst []byte, node ast.Node, config DebugConfig) []byte {
	d := &debugPrinter{cfg: config, buf: dst}
	d.value(reflect.ValueOf(node), nil)
	d.newline()
	return d.buf
}

// DebugConfig configures the behavior of [AppendDebug].
type DebugConfig struct {
	// Filter, if set, is called for each value; values for which it
	// returns false are not printed.
	Filter func(reflect.Value) bool

	// OmitEmpty drops zero values, nil pointers and empty lists and
	// structs.
	OmitEmpty bool
}

type debugPrinter struct {
	cfg   DebugConfig
	buf   []byte
	depth int
}

func (d *debugPrinter) newline() {
	d.buf = append(d.buf, '\n')
	for i := 0; i < d.depth; i++ {
		d.buf = append(d.buf, '\t')
	}
}

var (
	typeTokenPos   = reflect.TypeOf((*token.Pos)(nil)).Elem()
	typeTokenToken = reflect.TypeOf((*token.Token)(nil)).Elem()
)

// skipFields are the resolution links of the tree. They are cyclic and do
// not represent syntax.
var skipFields = map[string]bool{
	"Scope":      true,
	"Node":       true,
	"Unresolved": true,
}

// value prints v and reports whether anything was printed.
func (d *debugPrinter) value(v reflect.Value, implied reflect.Type) bool {
	if d.cfg.Filter != nil && !d.cfg.Filter(v) {
		return false
	}
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	var typ reflect.Type
	if v.IsValid() {
		typ = v.Type()
		v = reflect.Indirect(v)
	}
	if !v.IsValid() {
		if d.cfg.OmitEmpty {
			return false
		}
		d.buf = append(d.buf, "nil"...)
		return true
	}
	if d.cfg.OmitEmpty && v.IsZero() {
		return false
	}

	t := v.Type()
	switch {
	case t == typeTokenPos || t == typeTokenToken:
		d.buf = fmt.Appendf(d.buf, "%s(%q)", t, v)
	case t.Kind() == reflect.Slice:
		return d.composite(typ, implied, v.Len(), func(i int) bool {
			return d.value(v.Index(i), t.Elem())
		})
	case t.Kind() == reflect.Struct:
		return d.composite(typ, implied, v.NumField(), func(i int) bool {
			f := t.Field(i)
			if !f.IsExported() || skipFields[f.Name] {
				return false
			}
			d.buf = append(d.buf, f.Name...)
			d.buf = append(d.buf, ": "...)
			return d.value(v.Field(i), nil)
		})
	case t.PkgPath() != "":
		d.buf = fmt.Appendf(d.buf, "%s(%#v)", t, v)
	default:
		d.buf = fmt.Appendf(d.buf, "%#v", v)
	}
	return true
}

// composite prints the n elements produced by elem between braces, one per
// line. Elements that print nothing are dropped, and so is the whole
// composite if OmitEmpty is set and no element remains.
func (d *debugPrinter) composite(typ, implied reflect.Type, n int, elem func(i int) bool) bool {
	start := len(d.buf)
	if typ != implied {
		d.buf = fmt.Appendf(d.buf, "%s", typ)
	}
	d.buf = append(d.buf, '{')
	d.depth++
	printed := false
	for i := 0; i < n; i++ {
		mark := len(d.buf)
		d.newline()
		if elem(i) {
			printed = true
		} else {
			d.buf = d.buf[:mark]
		}
	}
	d.depth--
	if !printed && d.cfg.OmitEmpty {
		d.buf = d.buf[:start]
		return false
	}
	if printed {
		d.newline()
	}
	d.buf = append(d.buf, '}')
	return true
}

// DebugStr returns a compact single-line rendering of a node. Binary and
// conditional expressions are fully parenthesized, which makes the shape of
// the tree visible.
func DebugStr(x interface{}) (out string) {
	switch v := x.(type) {
	case *ast.Program:
		var a []string
		for _, f := range v.Files {
			a = append(a, DebugStr(f))
		}
		return strings.Join(a, " | ")

	case *ast.File:
		return DebugStr(v.Stmts)

	// Expressions

	case *ast.BadExpr:
		return "BadExpr"

	case *ast.Ident:
		return v.Name

	case *ast.BasicLit:
		return v.Value

	case *ast.ThisExpr:
		return "this"

	case *ast.FuncLit:
		out := "function"
		if v.Name != nil {
			out += " " + v.Name.Name
		}
		return out + funcRest(v.Params, v.Body)

	case *ast.ArrayLit:
		return "[" + DebugStr(v.Elts) + "]"

	case *ast.ObjectLit:
		var a []string
		for _, p := range v.Props {
			a = append(a, DebugStr(p))
		}
		return "{" + strings.Join(a, sep) + "}"

	case *ast.Property:
		return DebugStr(v.Key) + ": " + DebugStr(v.Value)

	case *ast.SelectorExpr:
		return DebugStr(v.X) + "." + DebugStr(v.Sel)

	case *ast.IndexExpr:
		return DebugStr(v.X) + "[" + DebugStr(v.Index) + "]"

	case *ast.CallExpr:
		return DebugStr(v.Fun) + "(" + DebugStr(v.Args) + ")"

	case *ast.NewExpr:
		out := "new " + DebugStr(v.Fun)
		if v.Lparen.IsValid() || len(v.Args) > 0 {
			out += "(" + DebugStr(v.Args) + ")"
		}
		return out

	case *ast.UnaryExpr:
		op := v.Op.String()
		if v.Postfix {
			return DebugStr(v.X) + op
		}
		if 'a' <= op[0] && op[0] <= 'z' {
			op += " "
		}
		return op + DebugStr(v.X)

	case *ast.BinaryExpr:
		return "(" + DebugStr(v.X) + " " + v.Op.String() + " " + DebugStr(v.Y) + ")"

	case *ast.CondExpr:
		return "(" + DebugStr(v.Cond) + " ? " + DebugStr(v.Then) + " : " + DebugStr(v.Else) + ")"

	case *ast.AssignExpr:
		return DebugStr(v.Lhs) + " " + v.Tok.String() + " " + DebugStr(v.Rhs)

	case *ast.SeqExpr:
		return "(" + DebugStr(v.List) + ")"

	// Statements

	case *ast.BadStmt:
		return "BadStmt"

	case *ast.EmptyStmt:
		return ";"

	case *ast.ExprStmt:
		return DebugStr(v.X) + ";"

	case *ast.BlockStmt:
		return "{" + DebugStr(v.List) + "}"

	case *ast.VarDecl:
		var a []string
		for _, s := range v.Specs {
			a = append(a, DebugStr(s))
		}
		return v.Tok.String() + " " + strings.Join(a, sep) + ";"

	case *ast.VarSpec:
		out := DebugStr(v.Name)
		if v.Value != nil {
			out += " = " + DebugStr(v.Value)
		}
		return out

	case *ast.FuncDecl:
		return "function " + DebugStr(v.Name) + funcRest(v.Params, v.Body)

	case *ast.ReturnStmt:
		if v.Result == nil {
			return "return;"
		}
		return "return " + DebugStr(v.Result) + ";"

	case *ast.IfStmt:
		out := "if " + DebugStr(v.Cond) + " " + DebugStr(v.Then)
		if v.Else != nil {
			out += " else " + DebugStr(v.Else)
		}
		return out

	case *ast.ForStmt:
		out := "for ("
		switch init := v.Init.(type) {
		case nil:
		case *ast.ExprStmt:
			out += DebugStr(init.X)
		case *ast.VarDecl:
			s := DebugStr(init)
			out += s[:len(s)-1]
		}
		out += "; " + DebugStr(v.Cond) + "; " + DebugStr(v.Post) + ") "
		return out + DebugStr(v.Body)

	case *ast.ForInStmt:
		left := DebugStr(v.Left)
		left = strings.TrimSuffix(left, ";")
		op := " in "
		if v.Of {
			op = " of "
		}
		return "for (" + left + op + DebugStr(v.X) + ") " + DebugStr(v.Body)

	case *ast.WhileStmt:
		return "while " + DebugStr(v.Cond) + " " + DebugStr(v.Body)

	case *ast.DoWhileStmt:
		return "do " + DebugStr(v.Body) + " while " + DebugStr(v.Cond) + ";"

	case *ast.SwitchStmt:
		var a []string
		for _, c := range v.Cases {
			a = append(a, DebugStr(c))
		}
		return "switch " + DebugStr(v.Tag) + " {" + strings.Join(a, " ") + "}"

	case *ast.CaseClause:
		out := "default: "
		if v.Test != nil {
			out = "case " + DebugStr(v.Test) + ": "
		}
		return out + DebugStr(v.Body.List)

	case *ast.TryStmt:
		out := "try " + DebugStr(v.Body)
		if v.Catch != nil {
			out += " " + DebugStr(v.Catch)
		}
		if v.Finally != nil {
			out += " finally " + DebugStr(v.Finally)
		}
		return out

	case *ast.CatchClause:
		out := "catch "
		if v.Param != nil {
			out += "(" + v.Param.Name + ") "
		}
		return out + DebugStr(v.Body)

	case *ast.ThrowStmt:
		return "throw " + DebugStr(v.X) + ";"

	case *ast.BranchStmt:
		out := v.Tok.String()
		if v.Label != nil {
			out += " " + v.Label.Name
		}
		return out + ";"

	case *ast.LabeledStmt:
		return DebugStr(v.Label) + ": " + DebugStr(v.Stmt)

	// Lists

	case []ast.Stmt:
		var a []string
		for _, s := range v {
			a = append(a, DebugStr(s))
		}
		return strings.Join(a, " ")

	case []ast.Expr:
		if len(v) == 0 {
			return ""
		}
		out := ""
		for _, d := range v {
			out += DebugStr(d)
			out += sep
		}
		return out[:len(out)-len(sep)]

	case []*ast.Ident:
		var a []string
		for _, id := range v {
			a = append(a, id.Name)
		}
		return strings.Join(a, sep)

	default:
		if v == nil {
			return ""
		}
		return fmt.Sprintf("<%T>", x)
	}
}

func funcRest(params []*ast.Ident, body *ast.BlockStmt) string {
	return "(" + DebugStr(params) + ") " + DebugStr(body)
}

const sep = ", "
