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

package clinit

import (
	"jscomp.dev/go/internal/hierset"
	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/ast/astutil"
	"jscomp.dev/go/js/token"
)

// redundantPruner removes clinit calls that are preceded on every path by
// a call to the same clinit.
//
// The pruner keeps the set of clinits known to have been called on the
// current control branch. Entering a branch chains a new set to the
// current one, so a branch sees what its enclosing branches called but
// what it calls itself is forgotten when it is left. Function declarations
// may run at any time and start from an empty set.
type redundantPruner struct {
	pass *Pass

	called *hierset.Set[string]
	saved  []*hierset.Set[string]

	removed int
}

func (r *redundantPruner) EnterScope(ast.Node) {
	r.called = hierset.New[string](nil)
	r.saved = r.saved[:0]
}

func (r *redundantPruner) Before(c *astutil.Cursor) bool {
	if _, ok := c.Node().(*ast.FuncDecl); ok {
		r.saved = append(r.saved, r.called)
		r.called = hierset.New[string](nil)
	}

	if parent := c.Parent(); isNewControlBranch(parent) {
		r.called = hierset.New(r.called)
		// Within its own body a clinit has trivially been called.
		if name := r.pass.clinitFuncName(parent, grandparent(c)); name != "" {
			r.called.Add(name)
		}
	}
	return true
}

func (r *redundantPruner) After(c *astutil.Cursor) {
	r.tryRemove(c)

	if isNewControlBranch(c.Parent()) {
		r.called = r.called.Parent()
	}

	if _, ok := c.Node().(*ast.FuncDecl); ok {
		r.called = r.saved[len(r.saved)-1]
		r.saved = r.saved[:len(r.saved)-1]
	}
}

func (r *redundantPruner) tryRemove(c *astutil.Cursor) {
	name := r.pass.clinitCallName(c.Node())
	if name == "" || r.called.Add(name) {
		return
	}
	call := c.Node().(*ast.CallExpr)
	if astutil.DeleteCall(r.pass.host.Index(), c.Path(), call, r.pass.host) {
		r.removed++
	}
}

// isNewControlBranch reports whether the children of n execute
// conditionally or at a different time than n itself.
func isNewControlBranch(n ast.Node) bool {
	switch x := n.(type) {
	case *ast.IfStmt, *ast.ForStmt, *ast.ForInStmt, *ast.WhileStmt,
		*ast.DoWhileStmt, *ast.LabeledStmt, *ast.TryStmt, *ast.CatchClause,
		*ast.SwitchStmt, *ast.CaseClause:
		return true
	case *ast.CondExpr, *ast.FuncDecl, *ast.FuncLit:
		return true
	case *ast.BinaryExpr:
		switch x.Op {
		case token.LAND, token.LOR, token.NULLISH:
			return true
		}
	}
	return false
}

func grandparent(c *astutil.Cursor) ast.Node {
	path := c.Path()
	if len(path) < 2 {
		return nil
	}
	return path[len(path)-2]
}
