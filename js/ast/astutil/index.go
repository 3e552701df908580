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
	"fmt"

	"jscomp.dev/go/js/ast"
)

// An Index records the parent of every node of a tree.
//
// Syntax tree nodes do not link to their parents. An Index is built once
// for a compilation and kept current by the mutation helpers of this
// package. Entries of detached nodes are not removed; they describe the
// position a node had when it was detached.
type Index struct {
	parent map[ast.Node]ast.Node
}

// NewIndex builds an index for the tree rooted at root.
func NewIndex(root ast.Node) *Index {
	x := &Index{parent: map[ast.Node]ast.Node{}}
	x.Update(root, nil)
	return x
}

// Update (re)indexes the subtree rooted at n, recording parent as the parent
// of n.
func (x *Index) Update(n, parent ast.Node) {
	stack := []ast.Node{parent}
	ast.Walk(n, func(c ast.Node) bool {
		x.parent[c] = stack[len(stack)-1]
		stack = append(stack, c)
		return true
	}, func(ast.Node) {
		stack = stack[:len(stack)-1]
	})
}

// Parent returns the parent of n, or nil if n is a root or is not indexed.
func (x *Index) Parent(n ast.Node) ast.Node {
	return x.parent[n]
}

// Ancestors returns the ancestors of n, starting at the root and ending with
// the parent of n.
func (x *Index) Ancestors(n ast.Node) []ast.Node {
	var a []ast.Node
	for p := x.parent[n]; p != nil; p = x.parent[p] {
		a = append(a, p)
	}
	for i, j := 0, len(a)-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
	return a
}

// Verify checks that the index agrees with the parent links of the tree
// rooted at root.
func (x *Index) Verify(root ast.Node) error {
	var err error
	stack := []ast.Node{nil}
	ast.Walk(root, func(c ast.Node) bool {
		if err != nil {
			return false
		}
		want := stack[len(stack)-1]
		if c != root {
			if got := x.parent[c]; got != want {
				err = fmt.Errorf("stale parent index for %T at %v: have %T, want %T", c, c.Pos(), got, want)
				return false
			}
		}
		stack = append(stack, c)
		return true
	}, func(ast.Node) {
		stack = stack[:len(stack)-1]
	})
	return err
}
