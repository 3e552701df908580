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

package ast

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"jscomp.dev/go/js/token"
)

// QualifiedName reports the dotted name of x, such as a.b.c or this.x, or
// the empty string if x is not a name or a chain of property accesses on
// a name.
func QualifiedName(x Expr) string {
	switch x := x.(type) {
	case *Ident:
		return x.Name
	case *ThisExpr:
		return "this"
	case *SelectorExpr:
		if prefix := QualifiedName(x.X); prefix != "" {
			return prefix + "." + x.Sel.Name
		}
	}
	return ""
}

// MatchesQualifiedName reports whether x is the qualified name name.
func MatchesQualifiedName(x Expr, name string) bool {
	return name != "" && QualifiedName(x) == name
}

// IsFunction reports whether n is a function declaration or expression.
func IsFunction(n Node) bool {
	switch n.(type) {
	case *FuncDecl, *FuncLit:
		return true
	}
	return false
}

// FuncBody returns the body of a function declaration or expression, or nil
// if n is not a function.
func FuncBody(n Node) *BlockStmt {
	switch n := n.(type) {
	case *FuncDecl:
		return n.Body
	case *FuncLit:
		return n.Body
	}
	return nil
}

// FuncParams returns the parameters of a function declaration or expression.
func FuncParams(n Node) []*Ident {
	switch n := n.(type) {
	case *FuncDecl:
		return n.Params
	case *FuncLit:
		return n.Params
	}
	return nil
}

// FuncName reports the best available name of the function fn, given its
// parent node:
//
//	function a() {}          a
//	var a = function() {}    a
//	a.b.c = function() {}    a.b.c
//	{ a: function() {} }     a
//	(function a() {})        a
//
// It returns the empty string for anonymous functions and for nodes that
// are not functions.
func FuncName(fn, parent Node) string {
	switch fn := fn.(type) {
	case *FuncDecl:
		return fn.Name.Name
	case *FuncLit:
		switch p := parent.(type) {
		case *VarSpec:
			if p.Value == Expr(fn) {
				return p.Name.Name
			}
		case *AssignExpr:
			if p.Rhs == Expr(fn) && p.Tok == token.ASSIGN {
				if name := QualifiedName(p.Lhs); name != "" {
					return name
				}
			}
		case *Property:
			if p.Value == Expr(fn) {
				if name, ok := PropertyName(p.Key); ok {
					return name
				}
			}
		}
		if fn.Name != nil {
			return fn.Name.Name
		}
	}
	return ""
}

// PropertyName reports the name of an object literal key.
func PropertyName(key Expr) (name string, ok bool) {
	switch k := key.(type) {
	case *Ident:
		return k.Name, true
	case *BasicLit:
		switch k.Kind {
		case token.STRING:
			if s, err := Unquote(k.Value); err == nil {
				return s, true
			}
		case token.NUMBER:
			return k.Value, true
		}
	}
	return "", false
}

// IsEmptyFunc reports whether x is a function expression with an empty body.
func IsEmptyFunc(x Expr) bool {
	fn, ok := x.(*FuncLit)
	return ok && len(fn.Body.List) == 0
}

// IsImmutableValue reports whether x is a value that cannot change: a
// number, string, boolean or null literal, the names undefined, NaN and
// Infinity, or a negation, logical not or void of an immutable value.
func IsImmutableValue(x Expr) bool {
	switch x := x.(type) {
	case *BasicLit:
		return true
	case *UnaryExpr:
		switch x.Op {
		case token.NOT, token.SUB, token.VOID, token.BITNOT:
			return !x.Postfix && IsImmutableValue(x.X)
		}
	case *Ident:
		switch x.Name {
		case "undefined", "NaN", "Infinity":
			return true
		}
	}
	return false
}

// IsLiteralValue reports whether x is a literal value: an immutable value,
// or an array or object literal of literal values. Function expressions
// count as literal values only if includeFunctions is set.
func IsLiteralValue(x Expr, includeFunctions bool) bool {
	switch x := x.(type) {
	case *ArrayLit:
		for _, e := range x.Elts {
			if !IsLiteralValue(e, includeFunctions) {
				return false
			}
		}
		return true
	case *ObjectLit:
		for _, p := range x.Props {
			if !IsLiteralValue(p.Value, includeFunctions) {
				return false
			}
		}
		return true
	case *FuncLit:
		return includeFunctions
	}
	return IsImmutableValue(x)
}

// Unquote interprets s as a single-quoted or double-quoted JavaScript string
// literal, returning the string value that s quotes.
func Unquote(s string) (string, error) {
	n := len(s)
	if n < 2 || s[0] != s[n-1] || (s[0] != '"' && s[0] != '\'') {
		return "", fmt.Errorf("invalid string literal %s", s)
	}
	s = s[1 : n-1]
	if !strings.ContainsRune(s, '\\') {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", fmt.Errorf("invalid escape at end of string")
		}
		switch c := s[i]; c {
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\n':
			// line continuation
		case 'x':
			if i+3 > len(s) {
				return "", fmt.Errorf("invalid hex escape")
			}
			v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err != nil {
				return "", err
			}
			b.WriteRune(rune(v))
			i += 2
		case 'u':
			var hex string
			if i+1 < len(s) && s[i+1] == '{' {
				end := strings.IndexByte(s[i:], '}')
				if end < 0 {
					return "", fmt.Errorf("invalid unicode escape")
				}
				hex = s[i+2 : i+end]
				i += end
			} else {
				if i+5 > len(s) {
					return "", fmt.Errorf("invalid unicode escape")
				}
				hex = s[i+1 : i+5]
				i += 4
			}
			v, err := strconv.ParseUint(hex, 16, 32)
			if err != nil || v > utf8.MaxRune {
				return "", fmt.Errorf("invalid unicode escape")
			}
			b.WriteRune(rune(v))
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

// quote returns a double-quoted JavaScript string literal for s.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f || r == 0x2028 || r == 0x2029 {
				fmt.Fprintf(&b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
