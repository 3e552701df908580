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

package astutil

import (
	"jscomp.dev/go/js/ast"
)

// IsScopeRoot reports whether n is a change scope root: a file or a
// function. Changes are tracked per change scope root.
func IsScopeRoot(n ast.Node) bool {
	switch n.(type) {
	case *ast.File, *ast.FuncDecl, *ast.FuncLit:
		return true
	}
	return false
}

// EnclosingScope returns the innermost change scope root of path, which
// lists ancestors root first. It returns nil if there is none.
func EnclosingScope(path []ast.Node) ast.Node {
	for i := len(path) - 1; i >= 0; i-- {
		if IsScopeRoot(path[i]) {
			return path[i]
		}
	}
	return nil
}

// EnclosingScopeOf returns n if it is a change scope root, or otherwise its
// innermost enclosing change scope root according to idx.
func (x *Index) EnclosingScopeOf(n ast.Node) ast.Node {
	for ; n != nil; n = x.parent[n] {
		if IsScopeRoot(n) {
			return n
		}
	}
	return nil
}

// EnclosingFunc returns the innermost function of path, or nil.
func EnclosingFunc(path []ast.Node) ast.Node {
	for i := len(path) - 1; i >= 0; i-- {
		if ast.IsFunction(path[i]) {
			return path[i]
		}
	}
	return nil
}

// EnclosingFuncName reports the name of the innermost function of path as
// given by [ast.FuncName], or the empty string if that function is
// anonymous or there is none.
func EnclosingFuncName(path []ast.Node) string {
	for i := len(path) - 1; i >= 0; i-- {
		if !ast.IsFunction(path[i]) {
			continue
		}
		var parent ast.Node
		if i > 0 {
			parent = path[i-1]
		}
		return ast.FuncName(path[i], parent)
	}
	return ""
}

// ParentScopes returns the given scope roots followed by the change scope
// roots immediately enclosing them, without duplicates. The result is never
// nil, so that it cannot be mistaken for "the whole program".
func (x *Index) ParentScopes(scopes []ast.Node) []ast.Node {
	seen := map[ast.Node]bool{}
	a := []ast.Node{}
	add := func(n ast.Node) {
		if n != nil && !seen[n] {
			seen[n] = true
			a = append(a, n)
		}
	}
	for _, s := range scopes {
		add(s)
	}
	for _, s := range scopes {
		add(x.EnclosingScopeOf(x.parent[s]))
	}
	return a
}

// RemoveNestedScopes returns the scope roots of scopes that are not nested
// in another scope root of scopes, without duplicates. The result is never
// nil.
func (x *Index) RemoveNestedScopes(scopes []ast.Node) []ast.Node {
	set := map[ast.Node]bool{}
	for _, s := range scopes {
		set[s] = true
	}
	added := map[ast.Node]bool{}
	a := []ast.Node{}
outer:
	for _, s := range scopes {
		if added[s] {
			continue
		}
		for p := x.parent[s]; p != nil; p = x.parent[p] {
			if IsScopeRoot(p) && set[p] {
				continue outer
			}
		}
		added[s] = true
		a = append(a, s)
	}
	return a
}
