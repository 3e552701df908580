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

// Package parser implements a parser for the JavaScript subset consumed by
// the optimization passes.
//
// The accepted language covers declarations, functions, the usual control
// structures and expressions. Classes, arrow functions, template and
// regular expression literals, destructuring and generators are not
// supported. Comments are discarded.
package parser

import (
	"jscomp.dev/go/internal/source"
	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/errors"
	"jscomp.dev/go/js/token"
)

// Option specifies a parse option.
type Option interface {
	apply(p *parser)
}

// A Mode value is a set of flags (or 0).
// They control the amount of source code parsed and other optional
// parser functionality.
type Mode uint

const (
	// Trace causes parsing to print a trace of parsed productions.
	Trace Mode = 1 << iota

	// AllErrors causes all errors to be reported (not just the first 10 on different lines).
	AllErrors
)

func (m Mode) apply(p *parser) {
	p.mode |= m
}

// ParseFile parses the source code of a single JavaScript source file and
// returns the corresponding ast.File node. The source code may be provided
// via the filename of the source file, or via the src parameter.
//
// If src != nil, ParseFile parses the source from src and the filename is
// only used when recording position information. The type of the argument
// for the src parameter must be string, []byte, or io.Reader.
// If src == nil, ParseFile parses the file specified by filename.
//
// If the source couldn't be read, the returned AST is nil and the error
// indicates the specific failure. If the source was read but syntax
// errors were found, the result is a partial AST (with ast.Bad* nodes
// representing the fragments of erroneous source code). Multiple errors
// are returned via a errors.List which is sorted by file position.
//
// Identifiers of the returned file are resolved against the declarations
// of the file. References that cannot be resolved are listed in
// File.Unresolved.
func ParseFile(filename string, src interface{}, mode ...Option) (f *ast.File, err error) {
	// get source
	text, err := source.ReadAll(filename, src)
	if err != nil {
		return nil, err
	}

	var pp parser
	defer func() {
		if pp.panicking {
			_ = recover()
		}

		// set result values
		if f == nil {
			// source is not valid - satisfy ParseFile API and return a
			// valid (but) empty *File
			f = &ast.File{Filename: filename}
		}

		pp.errors.RemoveMultiples()
		err = pp.errors.Err()
	}()

	// parse source
	pp.init(filename, text, mode)
	f = pp.parseFile()
	f.Filename = filename
	Resolve(f)

	return f, nil
}

// ParseExpr is a convenience function for parsing an expression.
// The arguments have the same meaning as for ParseFile, but the source must
// be a valid expression. Identifiers are not resolved.
func ParseExpr(filename string, src interface{}, mode ...Option) (x ast.Expr, err error) {
	// get source
	text, err := source.ReadAll(filename, src)
	if err != nil {
		return nil, err
	}

	var p parser
	defer func() {
		if p.panicking {
			_ = recover()
		}
		p.errors.RemoveMultiples()
		if err = p.errors.Err(); err != nil {
			x = nil
		}
	}()

	p.init(filename, text, mode)
	x = p.parseExpr()
	if p.tok == token.SEMICOLON {
		p.next()
	}
	p.expect(token.EOF)

	return x, nil
}

// ParseProgram parses and resolves a set of files. Top-level declarations
// of each file are visible in all other files.
func ParseProgram(filenames []string, srcs []interface{}, mode ...Option) (*ast.Program, error) {
	prog := &ast.Program{}
	var errs []error
	for i, name := range filenames {
		var src interface{}
		if i < len(srcs) {
			src = srcs[i]
		}
		f, err := ParseFile(name, src, mode...)
		if err != nil {
			if f == nil {
				return nil, err
			}
			errs = append(errs, err)
		}
		prog.Files = append(prog.Files, f)
	}
	ResolveGlobals(prog.Files)
	return prog, joinErrors(errs)
}

func joinErrors(errs []error) error {
	var list errors.List
	for _, err := range errs {
		list.Add(errors.Promote(err, "parse error"))
	}
	return list.Err()
}
