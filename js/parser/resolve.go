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

// This file implements scopes and the identifier resolution.

package parser

import (
	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/token"
)

// Resolve binds the identifiers of f to their declarations. Identifiers
// that cannot be bound are recorded in f.Unresolved.
func Resolve(f *ast.File) {
	r := &resolver{file: f, skip: map[*ast.Ident]bool{}}
	f.Unresolved = f.Unresolved[:0]
	ast.Walk(f, r.before, r.after)
}

// ResolveGlobals binds the unresolved identifiers of each file to the
// top-level declarations of the other files. If more than one file declares
// a name, the first one wins.
func ResolveGlobals(files []*ast.File) {
	globals := map[string]*scope{}
	var order []string
	for _, f := range files {
		s := newFileScope(nil, f)
		for _, name := range s.names {
			if _, ok := globals[name]; !ok {
				globals[name] = s
				order = append(order, name)
			}
		}
	}
	if len(order) == 0 {
		return
	}
	for _, f := range files {
		k := 0
		for _, id := range f.Unresolved {
			if s, ok := globals[id.Name]; ok && s.node != f {
				id.Scope, id.Node = s.node, s.index[id.Name]
				continue
			}
			f.Unresolved[k] = id
			k++
		}
		f.Unresolved = f.Unresolved[:k]
	}
}

type scope struct {
	outer *scope
	node  ast.Node // the node defining the scope
	owner ast.Node // the node that pushed the scope
	index map[string]ast.Node
	names []string // insertion order
}

func newScope(outer *scope, node ast.Node) *scope {
	const n = 4 // initial scope capacity
	return &scope{
		outer: outer,
		node:  node,
		owner: node,
		index: make(map[string]ast.Node, n),
	}
}

// insert records a declaration. The first declaration of a name wins.
func (s *scope) insert(name string, n ast.Node) {
	if name == "" {
		return
	}
	if _, ok := s.index[name]; ok {
		return
	}
	s.index[name] = n
	s.names = append(s.names, name)
}

func (s *scope) lookup(name string) (*scope, ast.Node) {
	for ; s != nil; s = s.outer {
		if n, ok := s.index[name]; ok {
			return s, n
		}
	}
	return nil, nil
}

// insertLexical declares the functions and the let and const declarations
// listed directly in list.
func (s *scope) insertLexical(list []ast.Stmt) {
	for _, st := range list {
		if fd, ok := st.(*ast.FuncDecl); ok && fd.Name != nil {
			s.insert(fd.Name.Name, fd)
		}
	}
	for _, st := range list {
		if d, ok := st.(*ast.VarDecl); ok && d.Tok != token.VAR {
			s.insertSpecs(d)
		}
	}
}

func (s *scope) insertSpecs(d *ast.VarDecl) {
	for _, spec := range d.Specs {
		s.insert(spec.Name.Name, spec)
	}
}

// insertHoisted declares the var declarations anywhere in list outside of
// nested functions.
func (s *scope) insertHoisted(list []ast.Stmt) {
	for _, st := range list {
		ast.Walk(st, func(n ast.Node) bool {
			switch x := n.(type) {
			case *ast.FuncDecl, *ast.FuncLit:
				return false
			case *ast.VarDecl:
				if x.Tok == token.VAR {
					s.insertSpecs(x)
				}
			}
			return true
		}, nil)
	}
}

func newFileScope(outer *scope, f *ast.File) *scope {
	s := newScope(outer, f)
	s.insertLexical(f.Stmts)
	s.insertHoisted(f.Stmts)
	return s
}

func newFuncScope(outer *scope, fn ast.Node) *scope {
	s := newScope(outer, fn)
	for _, p := range ast.FuncParams(fn) {
		s.insert(p.Name, p)
	}
	if body := ast.FuncBody(fn); body != nil {
		s.insertLexical(body.List)
		s.insertHoisted(body.List)
	}
	return s
}

type resolver struct {
	file  *ast.File
	scope *scope

	// skip holds identifiers that are not references.
	skip map[*ast.Ident]bool

	// bodies holds the function bodies whose declarations are part of the
	// function scope.
	bodies map[*ast.BlockStmt]bool
}

func (r *resolver) push(s *scope) {
	r.scope = s
}

func (r *resolver) before(n ast.Node) bool {
	switch x := n.(type) {
	case *ast.File:
		r.push(newFileScope(r.scope, x))

	case *ast.FuncDecl:
		if x.Name != nil {
			r.skip[x.Name] = true
			r.bind(x.Name, x)
		}
		r.enterFunc(x, x.Params, x.Body)

	case *ast.FuncLit:
		if x.Name != nil {
			r.skip[x.Name] = true
			self := newScope(r.scope, x)
			self.insert(x.Name.Name, x)
			r.push(self)
			x.Name.Scope, x.Name.Node = x, x
		}
		r.enterFunc(x, x.Params, x.Body)

	case *ast.BlockStmt:
		if r.bodies[x] {
			delete(r.bodies, x)
			break
		}
		s := newScope(r.scope, x)
		s.insertLexical(x.List)
		r.push(s)

	case *ast.CatchClause:
		s := newScope(r.scope, x)
		if x.Param != nil {
			r.skip[x.Param] = true
			s.insert(x.Param.Name, x.Param)
		}
		r.push(s)

	case *ast.ForStmt:
		if d, ok := x.Init.(*ast.VarDecl); ok && d.Tok != token.VAR {
			s := newScope(r.scope, x)
			s.insertSpecs(d)
			r.push(s)
		}

	case *ast.ForInStmt:
		if d, ok := x.Left.(*ast.VarDecl); ok && d.Tok != token.VAR {
			s := newScope(r.scope, x)
			s.insertSpecs(d)
			r.push(s)
		}

	case *ast.VarSpec:
		r.skip[x.Name] = true
		r.bind(x.Name, x)

	case *ast.SelectorExpr:
		r.skip[x.Sel] = true

	case *ast.Property:
		if id, ok := x.Key.(*ast.Ident); ok {
			r.skip[id] = true
		}

	case *ast.LabeledStmt:
		r.skip[x.Label] = true

	case *ast.BranchStmt:
		if x.Label != nil {
			r.skip[x.Label] = true
		}

	case *ast.Ident:
		if r.skip[x] {
			delete(r.skip, x)
			break
		}
		r.resolve(x)
	}
	return true
}

func (r *resolver) enterFunc(fn ast.Node, params []*ast.Ident, body *ast.BlockStmt) {
	for _, p := range params {
		r.skip[p] = true
	}
	for _, p := range params {
		p.Scope, p.Node = fn, p
	}
	if body != nil {
		if r.bodies == nil {
			r.bodies = map[*ast.BlockStmt]bool{}
		}
		r.bodies[body] = true
	}
	r.push(newFuncScope(r.scope, fn))
}

// bind records the declaration of a declared name.
func (r *resolver) bind(id *ast.Ident, decl ast.Node) {
	if s, n := r.scope.lookup(id.Name); n == decl {
		id.Scope, id.Node = s.node, n
	}
}

func (r *resolver) resolve(id *ast.Ident) {
	if s, n := r.scope.lookup(id.Name); n != nil {
		id.Scope, id.Node = s.node, n
		return
	}
	id.Scope, id.Node = nil, nil
	r.file.Unresolved = append(r.file.Unresolved, id)
}

func (r *resolver) after(n ast.Node) {
	for r.scope != nil && r.scope.owner == n {
		r.scope = r.scope.outer
	}
}
