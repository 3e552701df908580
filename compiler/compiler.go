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

// Package compiler holds the state of a compilation of a set of JavaScript
// files and runs optimization passes over it.
package compiler

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mpvl/unique"

	"jscomp.dev/go/internal/jsdebug"
	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/ast/astutil"
	"jscomp.dev/go/js/parser"
	"jscomp.dev/go/tools/clinit"
	"jscomp.dev/go/tools/purity"
)

// A Mode selects whether the J2CL specific passes run.
type Mode int

const (
	// Auto runs the J2CL passes if any input file was produced by J2CL.
	Auto Mode = iota
	On
	Off
)

var modeNames = [...]string{Auto: "auto", On: "on", Off: "off"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode parses the name of a Mode.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return Auto, fmt.Errorf("invalid J2CL mode %q (want auto, on or off)", s)
}

// Set implements the flag value interface of pflag.
func (m *Mode) Set(s string) error {
	v, err := ParseMode(s)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Type implements the flag value interface of pflag.
func (m *Mode) Type() string { return "mode" }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error { return m.Set(string(b)) }

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// J2CLSuffix is the file name suffix of JavaScript files produced by J2CL.
const J2CLSuffix = ".java.js"

// Options configures a Compilation.
type Options struct {
	// J2CL selects whether J2CL specific passes run.
	J2CL Mode

	// ClinitSuffixes overrides the name suffixes that identify J2CL static
	// initializers.
	ClinitSuffixes []string

	// Logger receives pass diagnostics. If nil, diagnostics are discarded
	// unless Debug.LogPasses is set.
	Logger *slog.Logger

	Debug jsdebug.Config
}

// A Compilation holds a program and the state that passes share about it.
type Compilation struct {
	opts Options
	log  *slog.Logger

	prog *ast.Program
	idx  *astutil.Index

	changed    []ast.Node
	changedSet map[ast.Node]bool
	deleted    map[ast.Node]bool

	purity purity.Result
}

// New returns a compilation of files. The identifiers of each file must be
// resolved, as done by the parser. Remaining free identifiers are resolved
// against the top-level declarations of the other files.
func New(files []*ast.File, opts Options) *Compilation {
	parser.ResolveGlobals(files)
	prog := &ast.Program{Files: files}
	c := &Compilation{
		opts:       opts,
		log:        opts.Logger,
		prog:       prog,
		idx:        astutil.NewIndex(prog),
		changedSet: map[ast.Node]bool{},
		deleted:    map[ast.Node]bool{},
	}
	if c.log == nil {
		var w io.Writer = io.Discard
		if opts.Debug.LogPasses {
			w = os.Stderr
		}
		c.log = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return c
}

// Program returns the program being compiled.
func (c *Compilation) Program() *ast.Program { return c.prog }

// Index returns the parent index of the program.
func (c *Compilation) Index() *astutil.Index { return c.idx }

// Logger returns the logger for pass diagnostics.
func (c *Compilation) Logger() *slog.Logger { return c.log }

// ShouldRunJ2CLPasses reports whether the J2CL specific passes should run.
func (c *Compilation) ShouldRunJ2CLPasses() bool {
	switch c.opts.J2CL {
	case On:
		return true
	case Off:
		return false
	}
	for _, f := range c.prog.Files {
		if strings.HasSuffix(f.Filename, J2CLSuffix) {
			return true
		}
	}
	return false
}

// ReportChange records that the change scope root enclosing n was modified.
func (c *Compilation) ReportChange(n ast.Node) {
	scope := c.idx.EnclosingScopeOf(n)
	if scope == nil || c.changedSet[scope] {
		return
	}
	c.changedSet[scope] = true
	c.changed = append(c.changed, scope)
}

// ReportDeleted records that n and the functions it contains were removed
// from the program.
func (c *Compilation) ReportDeleted(n ast.Node) {
	ast.Walk(n, func(n ast.Node) bool {
		if ast.IsFunction(n) {
			c.deleted[n] = true
		}
		return true
	}, nil)
}

// ChangedScopes returns the change scope roots that were reported changed
// since the last call to ResetChanges, in the order they were first
// reported. Deleted functions are omitted. The result is empty, not nil,
// when nothing changed, so it can be passed back to a pass as is.
func (c *Compilation) ChangedScopes() []ast.Node {
	a := []ast.Node{}
	for _, s := range c.changed {
		if !c.deleted[s] {
			a = append(a, s)
		}
	}
	return a
}

// ChangedFiles returns the sorted names of the files containing a changed
// scope.
func (c *Compilation) ChangedFiles() []string {
	var names []string
	for _, s := range c.ChangedScopes() {
		if f := c.fileOf(s); f != nil {
			names = append(names, f.Filename)
		}
	}
	unique.Strings(&names)
	return names
}

func (c *Compilation) fileOf(n ast.Node) *ast.File {
	for ; n != nil; n = c.idx.Parent(n) {
		if f, ok := n.(*ast.File); ok {
			return f
		}
	}
	return nil
}

// ResetChanges forgets all reported changes and deletions.
func (c *Compilation) ResetChanges() {
	c.changed = nil
	clear(c.changedSet)
	clear(c.deleted)
}

// PurityHasRun reports whether side-effect inference has run.
func (c *Compilation) PurityHasRun() bool { return c.purity != nil }

// RunPurity runs side-effect inference over prog.
func (c *Compilation) RunPurity(prog *ast.Program) {
	c.purity = purity.Infer(prog)
	c.log.Debug("side-effect inference", "functions", len(c.purity))
}

// SideEffectFree reports whether the last side-effect inference found fn to
// be free of side effects.
func (c *Compilation) SideEffectFree(fn ast.Node) bool {
	return c.purity.SideEffectFree(fn)
}

// RunClinitPruning runs the clinit pruning pass. The changed scope roots
// limit the analysis to parts of the program known to have changed; nil
// means the whole program.
func (c *Compilation) RunClinitPruning(changed []ast.Node) clinit.Result {
	p := clinit.New(c, clinit.Config{
		Suffixes:    c.opts.ClinitSuffixes,
		NoLookahead: c.opts.Debug.NoLookahead,
	})
	r := p.Process(c.prog, changed)
	c.verify("clinit pruning")
	return r
}

func (c *Compilation) verify(pass string) {
	if !c.opts.Debug.Strict {
		return
	}
	if err := c.idx.Verify(c.prog); err != nil {
		panic(fmt.Sprintf("after %s: %v", pass, err))
	}
}
