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
	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/ast/astutil"
	"jscomp.dev/go/js/token"
)

// emptyPruner strips the body of clinits that do nothing but replace
// themselves with an empty function:
//
//	function Foo$clinit() {            function Foo$clinit() {}
//		Foo$clinit = function() {};  =>
//	}
//
// Calls to such clinits have no effect and may all be removed.
type emptyPruner struct {
	pass  *Pass
	state *state
}

func (e *emptyPruner) visit(c *astutil.Cursor) {
	fn := c.Node()
	name := e.pass.clinitFuncName(fn, c.Parent())
	if name == "" {
		return
	}
	body := ast.FuncBody(fn)
	if len(body.List) != 1 || !isAssignEmptyFunc(body.List[0], name) {
		return
	}

	if !astutil.DeleteStmt(body, body.List[0], e.pass.host) {
		return
	}
	e.state.emptied = append(e.state.emptied, name)
}

// isAssignEmptyFunc reports whether stmt is name = function() {}.
func isAssignEmptyFunc(stmt ast.Stmt, name string) bool {
	es, ok := stmt.(*ast.ExprStmt)
	if !ok {
		return false
	}
	a, ok := es.X.(*ast.AssignExpr)
	return ok && a.Tok == token.ASSIGN &&
		ast.IsEmptyFunc(a.Rhs) &&
		ast.MatchesQualifiedName(a.Lhs, name)
}
