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

// Package clinit prunes calls to J2CL static initializers.
//
// J2CL lowers every class to a set of functions and emits a call to the
// class's static initializer, its clinit, before each access to static
// state. A clinit replaces itself with an empty function when it first
// runs, so all but the first call on any execution path are redundant.
//
// The pass removes calls that are preceded on every path by a call to the
// same clinit, calls immediately followed by a call to a function that
// starts with the same clinit call, and all calls to clinits whose body
// has been reduced to the self-replacement. It repeats the latter until no
// more clinits become empty.
package clinit

import (
	"log/slog"
	"strings"

	"github.com/mpvl/unique"

	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/ast/astutil"
)

// DefaultSuffixes are the name suffixes that identify a clinit when no
// other suffixes are configured. The first one is the name of a clinit
// after property collapsing; the second covers both Foo.$clinit and
// Foo$clinit.
var DefaultSuffixes = []string{"$$0clinit", "$clinit"}

// Config configures a Pass.
type Config struct {
	// Suffixes lists the name suffixes that identify a clinit. If empty,
	// DefaultSuffixes are used.
	Suffixes []string

	// NoLookahead disables pruning of clinit calls that directly precede
	// a call to a function starting with the same clinit call.
	NoLookahead bool
}

// A Host is the compilation that a Pass operates on.
type Host interface {
	astutil.ChangeReporter

	// ShouldRunJ2CLPasses reports whether the compilation holds J2CL output.
	ShouldRunJ2CLPasses() bool

	// Index returns the parent index of the program.
	Index() *astutil.Index

	// PurityHasRun reports whether side-effect inference has been run for
	// the compilation.
	PurityHasRun() bool

	// RunPurity (re)computes side-effect inference for prog.
	RunPurity(prog *ast.Program)

	Logger() *slog.Logger
}

// Result summarizes the modifications made by a run of the pass.
type Result struct {
	// Redundant is the number of calls removed because the same clinit
	// was already called on every path reaching them.
	Redundant int

	// Lookahead is the number of calls removed because the next statement
	// calls a function that starts with the same clinit call.
	Lookahead int

	// Emptied holds the sorted names of the clinits whose body was removed.
	Emptied []string

	// References is the number of calls to emptied clinits removed.
	References int

	// Iterations is the number of rounds of removing calls to emptied
	// clinits.
	Iterations int
}

// Changed reports whether the pass modified the program.
func (r Result) Changed() bool {
	return r.Redundant > 0 || r.Lookahead > 0 || len(r.Emptied) > 0
}

// A Pass prunes clinit calls of a single compilation.
type Pass struct {
	host     Host
	suffixes []string
	cfg      Config
}

// New returns a Pass operating on host.
func New(host Host, cfg Config) *Pass {
	p := &Pass{host: host, cfg: cfg, suffixes: cfg.Suffixes}
	if len(p.suffixes) == 0 {
		p.suffixes = DefaultSuffixes
	}
	return p
}

// IsClinitName reports whether name is the name of a clinit.
func (p *Pass) IsClinitName(name string) bool {
	if name == "" {
		return false
	}
	for _, s := range p.suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// clinitCallName returns the name of the clinit called by n, or "" if n is
// not a call to a clinit.
func (p *Pass) clinitCallName(n ast.Node) string {
	call, ok := n.(*ast.CallExpr)
	if !ok {
		return ""
	}
	if name := ast.QualifiedName(call.Fun); p.IsClinitName(name) {
		return name
	}
	return ""
}

// clinitFuncName returns the name of fn if it is a clinit, or "" otherwise.
func (p *Pass) clinitFuncName(fn, parent ast.Node) string {
	if !ast.IsFunction(fn) {
		return ""
	}
	if name := ast.FuncName(fn, parent); p.IsClinitName(name) {
		return name
	}
	return ""
}

// state holds the working sets of a single call to Process.
type state struct {
	// emptied lists the clinits emptied by the last empty pruning run, in
	// the order in which they were found.
	emptied []string
	result  Result
}

// Process prunes clinit calls in prog. The changed scope roots limit the
// analysis to those parts of the program that changed since the pass last
// ran; nil means the whole program.
//
// Process does nothing unless the host holds J2CL output.
func (p *Pass) Process(prog *ast.Program, changed []ast.Node) Result {
	if !p.host.ShouldRunJ2CLPasses() {
		return Result{}
	}
	s := &state{}

	p.removeRedundant(s, prog, changed)
	p.pruneEmpty(s, prog, changed)

	if len(s.emptied) == 0 {
		if !p.host.PurityHasRun() {
			p.host.RunPurity(prog)
		}
		p.log(s)
		return s.result
	}

	refs := p.collectReferences(prog)
	for len(s.emptied) > 0 {
		s.result.Iterations++
		scopes := p.removeReferences(s, refs)
		p.pruneEmpty(s, prog, scopes)
	}

	// Removing a clinit call may leave its function without side effects.
	p.host.RunPurity(prog)

	unique.Strings(&s.result.Emptied)
	p.log(s)
	return s.result
}

func (p *Pass) removeRedundant(s *state, prog *ast.Program, changed []ast.Node) {
	idx := p.host.Index()
	var roots []ast.Node
	if changed != nil {
		roots = idx.RemoveNestedScopes(idx.ParentScopes(changed))
	}
	r := &redundantPruner{pass: p}
	astutil.TraverseScopeRoots(prog, idx, roots, r, true)
	s.result.Redundant += r.removed

	if p.cfg.NoLookahead {
		return
	}
	l := &lookaheadPruner{pass: p}
	astutil.TraverseScopeRoots(prog, idx, changed, astutil.PostOrder(l.visit), false)
	s.result.Lookahead += l.removed
}

func (p *Pass) pruneEmpty(s *state, prog *ast.Program, scopes []ast.Node) {
	s.emptied = s.emptied[:0]
	e := &emptyPruner{pass: p, state: s}
	astutil.TraverseScopeRoots(prog, p.host.Index(), scopes, astutil.PostOrder(e.visit), false)
	s.result.Emptied = append(s.result.Emptied, s.emptied...)
}

func (p *Pass) log(s *state) {
	log := p.host.Logger()
	if log == nil {
		return
	}
	log.Debug("clinit pruning",
		"redundant", s.result.Redundant,
		"lookahead", s.result.Lookahead,
		"emptied", s.result.Emptied,
		"references", s.result.References,
		"iterations", s.result.Iterations,
	)
}
