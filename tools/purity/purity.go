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

// Package purity infers which functions of a program are free of side
// effects.
//
// A function is side-effect free if its body, not counting nested
// functions, does not
//   - assign to or update a name that is not declared in the function,
//   - assign to, update or delete a property,
//   - throw,
//   - construct an object with new, or
//   - call anything but a side-effect free function referenced by name.
//
// Mutually recursive functions are side-effect free unless one of them
// shows an effect.
package purity

import (
	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/token"
)

// Result maps every function of a program to whether it is side-effect
// free.
type Result map[ast.Node]bool

// SideEffectFree reports whether fn was found to be side-effect free.
func (r Result) SideEffectFree(fn ast.Node) bool {
	return r[fn]
}

// Infer computes the side-effect freedom of all functions in prog.
func Infer(prog *ast.Program) Result {
	var funcs []*function
	ast.Walk(prog, func(n ast.Node) bool {
		if ast.IsFunction(n) {
			funcs = append(funcs, newFunction(n))
		}
		return true
	}, nil)

	r := Result{}
	for _, fn := range funcs {
		r[fn.node] = true
	}
	// Iterate to the greatest fixed point: functions only ever lose their
	// side-effect free status.
	for changed := true; changed; {
		changed = false
		for _, fn := range funcs {
			if r[fn.node] && fn.hasEffect(r) {
				r[fn.node] = false
				changed = true
			}
		}
	}
	return r
}

type function struct {
	node ast.Node

	// locals holds the declarations of the function, excluding those of
	// nested functions.
	locals map[ast.Node]bool
}

func newFunction(n ast.Node) *function {
	fn := &function{node: n, locals: map[ast.Node]bool{}}
	for _, p := range ast.FuncParams(n) {
		fn.locals[p] = true
	}
	if lit, ok := n.(*ast.FuncLit); ok && lit.Name != nil {
		fn.locals[lit] = true
	}
	fn.inspect(func(n ast.Node) bool {
		switch x := n.(type) {
		case *ast.VarSpec:
			fn.locals[x] = true
		case *ast.FuncDecl:
			fn.locals[x] = true
		case *ast.CatchClause:
			if x.Param != nil {
				fn.locals[x.Param] = true
			}
		}
		return true
	})
	return fn
}

// inspect calls f for the nodes of the function body, not descending into
// nested functions.
func (fn *function) inspect(f func(n ast.Node) bool) {
	body := ast.FuncBody(fn.node)
	if body == nil {
		return
	}
	ast.Walk(body, func(n ast.Node) bool {
		if n != ast.Node(body) && ast.IsFunction(n) {
			f(n)
			return false
		}
		return f(n)
	}, nil)
}

func (fn *function) isLocal(x ast.Expr) bool {
	id, ok := x.(*ast.Ident)
	return ok && id.Node != nil && fn.locals[id.Node]
}

func (fn *function) hasEffect(r Result) bool {
	effect := false
	fn.inspect(func(n ast.Node) bool {
		if effect {
			return false
		}
		switch x := n.(type) {
		case *ast.AssignExpr:
			effect = !fn.isLocal(x.Lhs)
		case *ast.UnaryExpr:
			switch x.Op {
			case token.DELETE:
				effect = true
			case token.INC, token.DEC:
				effect = !fn.isLocal(x.X)
			}
		case *ast.ForInStmt:
			if lhs, ok := x.Left.(ast.Expr); ok {
				effect = !fn.isLocal(lhs)
			}
		case *ast.ThrowStmt, *ast.NewExpr:
			effect = true
		case *ast.CallExpr:
			callee := Callee(x)
			effect = callee == nil || !r[callee]
		}
		return !effect
	})
	return effect
}

// Callee returns the function statically called by call: a function
// literal called directly, or a function declaration or function-valued
// variable referenced by name. It returns nil otherwise.
func Callee(call *ast.CallExpr) ast.Node {
	switch f := call.Fun.(type) {
	case *ast.FuncLit:
		return f
	case *ast.Ident:
		switch d := f.Node.(type) {
		case *ast.FuncDecl:
			return d
		case *ast.VarSpec:
			if lit, ok := d.Value.(*ast.FuncLit); ok {
				return lit
			}
		case *ast.FuncLit:
			// The self name of a named function expression.
			return d
		}
	}
	return nil
}
