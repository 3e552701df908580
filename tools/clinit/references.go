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
	"slices"

	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/ast/astutil"
)

// A reference is a call to a clinit, together with the ancestors it had
// when the program was scanned.
type reference struct {
	call *ast.CallExpr
	path []ast.Node
}

// collectReferences returns all clinit calls in prog by clinit name.
func (p *Pass) collectReferences(prog *ast.Program) map[string][]reference {
	refs := map[string][]reference{}
	astutil.Traverse(prog, nil, astutil.PostOrder(func(c *astutil.Cursor) {
		if name := p.clinitCallName(c.Node()); name != "" {
			refs[name] = append(refs[name], reference{
				call: c.Node().(*ast.CallExpr),
				path: slices.Clone(c.Path()),
			})
		}
	}))
	return refs
}

// removeReferences deletes the calls to the clinits emptied last, removing
// them from refs. It returns the scope roots that enclosed the deleted
// calls. The result is never nil, as nil denotes the whole program.
func (p *Pass) removeReferences(s *state, refs map[string][]reference) []ast.Node {
	idx := p.host.Index()
	scopes := []ast.Node{}
	seen := map[ast.Node]bool{}
	for _, name := range s.emptied {
		for _, r := range refs[name] {
			if astutil.DeleteCall(idx, r.path, r.call, p.host) {
				s.result.References++
			}
			if scope := astutil.EnclosingScope(r.path); !seen[scope] {
				seen[scope] = true
				scopes = append(scopes, scope)
			}
		}
		delete(refs, name)
	}
	return scopes
}
