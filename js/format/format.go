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

// Package format implements standard formatting of JavaScript source.
//
// The printer emits one statement per line, always braces the bodies of
// control structures and inserts the parentheses required by operator
// precedence. Blank lines separating statements in the input are kept.
package format

import (
	"bytes"
	"fmt"
	"strings"

	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/parser"
)

// An Option sets behavior of the formatter.
type Option func(c *config)

// Simplify allows the formatter to simplify output, such as removing
// unnecessary quotes from property names.
func Simplify() Option {
	return func(c *config) { c.simplify = true }
}

// UseSpaces specifies that tabs should be converted to spaces and sets the
// default tab width.
func UseSpaces(tabwidth int) Option {
	return func(c *config) {
		c.UseSpaces = true
		c.Tabwidth = tabwidth
	}
}

// TabIndent specifies whether to use tabs for indentation independent of
// UseSpaces.
func TabIndent(indent bool) Option {
	return func(c *config) {
		c.TabIndent = indent
	}
}

type config struct {
	UseSpaces bool
	TabIndent bool
	Tabwidth  int // default: 4

	simplify bool
}

func newConfig(opt []Option) *config {
	cfg := &config{
		Tabwidth:  4,
		TabIndent: true,
	}
	for _, o := range opt {
		o(cfg)
	}
	return cfg
}

func (c *config) indentString() string {
	if c.TabIndent || !c.UseSpaces {
		return "\t"
	}
	return strings.Repeat(" ", c.Tabwidth)
}

// Source formats source in canonical JavaScript format.
func Source(b []byte, opt ...Option) ([]byte, error) {
	f, err := parser.ParseFile("", b)
	if err != nil {
		return nil, fmt.Errorf("parse: %s", err)
	}
	return Node(f, opt...)
}

// Node formats node in canonical JavaScript format.
//
// The node type must be *ast.File, *ast.Program, ast.Stmt or ast.Expr.
func Node(node ast.Node, opt ...Option) ([]byte, error) {
	cfg := newConfig(opt)
	f := &formatter{cfg: cfg, tab: cfg.indentString()}
	if err := printNode(node, f); err != nil {
		return nil, err
	}
	if f.err != nil {
		return nil, f.err
	}
	return f.buf.Bytes(), nil
}

type formatter struct {
	cfg *config
	buf bytes.Buffer
	tab string

	indent int
	noIn   bool // in must be parenthesized (for statement initializers)
	err    error
}

func (f *formatter) print(a ...string) {
	for _, s := range a {
		f.buf.WriteString(s)
	}
}

func (f *formatter) newline() {
	f.buf.WriteByte('\n')
	for i := 0; i < f.indent; i++ {
		f.buf.WriteString(f.tab)
	}
}

func (f *formatter) errorf(n ast.Node, format string, args ...interface{}) {
	if f.err == nil {
		f.err = fmt.Errorf("js/format: %s: %s", n.Pos(), fmt.Sprintf(format, args...))
	}
}
