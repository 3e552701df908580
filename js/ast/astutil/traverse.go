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
	"slices"

	"jscomp.dev/go/js/ast"
)

// A Cursor describes a node encountered during Traverse.
type Cursor struct {
	stack []ast.Node // ancestors, followed by the current node
}

// Node returns the current node.
func (c *Cursor) Node() ast.Node { return c.stack[len(c.stack)-1] }

// Parent returns the parent of the current node, or nil at the root of the
// tree.
func (c *Cursor) Parent() ast.Node {
	if len(c.stack) < 2 {
		return nil
	}
	return c.stack[len(c.stack)-2]
}

// Path returns the ancestors of the current node, starting at the root of
// the tree. The result is only valid until the traversal moves on; callers
// that retain it must copy it.
func (c *Cursor) Path() []ast.Node { return c.stack[:len(c.stack)-1] }

// A Visitor is invoked for every node of a traversal. If Before returns
// false, the children of the node are skipped and After is not called for
// it. Otherwise After is called once all children have been visited.
type Visitor interface {
	Before(c *Cursor) bool
	After(c *Cursor)
}

// A ScopeEnterer is notified when a scope-root traversal starts at a new
// root.
type ScopeEnterer interface {
	EnterScope(root ast.Node)
}

// PostOrder returns a Visitor that calls f for every node after its
// children.
func PostOrder(f func(c *Cursor)) Visitor {
	return postOrder(f)
}

type postOrder func(c *Cursor)

func (f postOrder) Before(*Cursor) bool { return true }
func (f postOrder) After(c *Cursor)     { f(c) }

// Traverse visits the tree rooted at root in depth-first order. The
// ancestors of root, if any, are reported as the first elements of the path
// of every cursor.
//
// Visitors may remove the statement being visited, or any of its siblings,
// from its statement list, and may replace the current node in its parent.
func Traverse(root ast.Node, ancestors []ast.Node, v Visitor) {
	c := &Cursor{stack: slices.Clone(ancestors)}
	ast.Walk(root, func(n ast.Node) bool {
		c.stack = append(c.stack, n)
		if !v.Before(c) {
			c.stack = c.stack[:len(c.stack)-1]
			return false
		}
		return true
	}, func(n ast.Node) {
		v.After(c)
		c.stack = c.stack[:len(c.stack)-1]
	})
}

// TraverseScopeRoots visits the given change scope roots of prog in order.
// A nil roots list stands for the whole program, which is then visited as a
// single traversal rooted at prog.
//
// If v implements ScopeEnterer, EnterScope is called before each traversal
// with its root. Unless nested is set, function nodes below a root are
// skipped entirely: they are change scopes of their own.
func TraverseScopeRoots(prog *ast.Program, idx *Index, roots []ast.Node, v Visitor, nested bool) {
	enter := func(ast.Node) {}
	if e, ok := v.(ScopeEnterer); ok {
		enter = e.EnterScope
	}
	if roots == nil {
		enter(prog)
		Traverse(prog, nil, v)
		return
	}
	for _, root := range roots {
		enter(root)
		var rv Visitor = v
		if !nested {
			rv = &flatVisitor{root: root, v: v}
		}
		Traverse(root, idx.Ancestors(root), rv)
	}
}

// flatVisitor skips nested change scope roots.
type flatVisitor struct {
	root ast.Node
	v    Visitor
}

func (f *flatVisitor) Before(c *Cursor) bool {
	n := c.Node()
	if n != f.root && IsScopeRoot(n) {
		return false
	}
	return f.v.Before(c)
}

func (f *flatVisitor) After(c *Cursor) { f.v.After(c) }
