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

// Package jstxtar runs golden tests stored in txtar archives.
//
// The JavaScript files at the root of an archive are the inputs of a test.
// Results are written to out/<name> files within the same archive.
package jstxtar

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rogpeppe/go-internal/txtar"

	"jscomp.dev/go/internal/jstest"
	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/errors"
	"jscomp.dev/go/js/format"
	"jscomp.dev/go/js/parser"
)

// A TxTarTest runs a test function for each .txtar file below Root.
type TxTarTest struct {
	Root string

	// Name selects the golden section out/<Name> of each archive.
	Name string

	// Update rewrites golden sections that differ instead of failing.
	// Setting JSCOMP_UPDATE has the same effect.
	Update bool

	// Skip maps test names to the reason they are skipped.
	Skip map[string]string
}

// A Test is a single archive under test. Output written to it goes to the
// archive's out/<name> section; Writer gives access to further sections.
type Test struct {
	*testing.T

	Archive *txtar.Archive

	// Dir is the absolute directory holding the archive.
	Dir string

	prefix  string
	outputs []output
	golden  bool
}

type output struct {
	name string
	buf  *bytes.Buffer
}

func (t *Test) Write(b []byte) (int, error) {
	return t.Writer("").Write(b)
}

// Writer returns the buffer collecting output for out/<name>/sub, or for
// out/<name> itself if sub is empty.
func (t *Test) Writer(sub string) io.Writer {
	name := t.prefix
	if sub != "" {
		name = path.Join(t.prefix, sub)
	}
	for _, o := range t.outputs {
		if o.name == name {
			return o.buf
		}
	}
	o := output{name, new(bytes.Buffer)}
	t.outputs = append(t.outputs, o)
	return o.buf
}

// HasTag reports whether a line of the archive comment reads #key.
func (t *Test) HasTag(key string) bool {
	s := bufio.NewScanner(bytes.NewReader(t.Archive.Comment))
	for s.Scan() {
		if strings.TrimSpace(s.Text()) == "#"+key {
			return true
		}
	}
	return false
}

// Rel returns filename relative to the test directory, with forward
// slashes, so that output does not depend on where the tests run.
func (t *Test) Rel(filename string) string {
	rel, err := filepath.Rel(t.Dir, filename)
	if err != nil {
		return filepath.Base(filename)
	}
	return filepath.ToSlash(rel)
}

// WriteFile writes the formatted file f, preceded by a header with its name.
func (t *Test) WriteFile(f *ast.File) {
	fmt.Fprintln(t, "==", filepath.Base(f.Filename))
	io.WriteString(t, jstest.Format(t.T, f))
}

// Files parses the JavaScript files at the root of the archive, in archive
// order, and resolves their globals together. A parse error fails the test
// if the archive has a golden section and skips it otherwise.
func (t *Test) Files() []*ast.File {
	files, err := Parse(t.Archive, t.Dir)
	if err != nil {
		msg := errors.Details(err, &errors.Config{Cwd: t.Dir, ToSlash: true})
		if t.golden {
			t.Fatal("parse error: ", msg)
		}
		t.Skip("parse error: ", msg)
	}
	return files
}

// Parse parses the JavaScript files at the root of a and returns them, including
// partially parsed ones, together with all errors. File names are joined
// with dir.
func Parse(a *txtar.Archive, dir string) ([]*ast.File, error) {
	var files []*ast.File
	var errs errors.List
	for _, f := range a.Files {
		if !isInput(f.Name) {
			continue
		}
		file, err := parser.ParseFile(filepath.Join(dir, f.Name), f.Data)
		if err != nil {
			errs.Add(errors.Promote(err, "parse"))
		}
		files = append(files, file)
	}
	parser.ResolveGlobals(files)
	return files, errs.Err()
}

func isInput(name string) bool {
	return !strings.Contains(name, "/") && strings.HasSuffix(name, ".js")
}

// Run calls f for every archive below x.Root, each in its own subtest named
// after the archive's path below testdata.
func (x *TxTarTest) Run(t *testing.T, f func(tc *Test)) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	err = filepath.WalkDir(x.Root, func(file string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(file) != ".txtar" {
			return nil
		}
		name := filepath.ToSlash(file)
		if i := strings.Index(name, "testdata/"); i >= 0 {
			name = name[i+len("testdata/"):]
		}
		name = strings.TrimSuffix(name, ".txtar")

		t.Run(name, func(t *testing.T) {
			if msg, ok := x.Skip[name]; ok {
				t.Skip(msg)
			}
			x.runArchive(t, filepath.Join(wd, file), f)
		})
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
}

func (x *TxTarTest) runArchive(t *testing.T, file string, f func(tc *Test)) {
	a, err := txtar.ParseFile(file)
	if err != nil {
		t.Fatalf("error parsing txtar file: %v", err)
	}
	tc := &Test{
		T:       t,
		Archive: a,
		Dir:     filepath.Dir(file),
		prefix:  path.Join("out", x.Name),
	}
	if tc.HasTag("skip") {
		t.Skip()
	}
	update := x.Update || jstest.UpdateGoldenFiles
	for _, af := range a.Files {
		if strings.HasPrefix(af.Name, tc.prefix) {
			tc.golden = true
		}
	}

	changed := false
	if !tc.HasTag("noformat") && update {
		// Keep inputs canonical so golden diffs only show the transformation.
		for i, af := range a.Files {
			if !isInput(af.Name) {
				continue
			}
			if b, err := format.Source(af.Data); err == nil && !bytes.Equal(af.Data, b) {
				a.Files[i].Data = b
				changed = true
			}
		}
	}

	f(tc)

	for _, o := range tc.outputs {
		got := o.buf.Bytes()
		gold := goldenFile(a, o.name)
		if gold != nil && bytes.Equal(gold.Data, got) {
			continue
		}
		if !update {
			var want []byte
			if gold != nil {
				want = gold.Data
			}
			t.Errorf("result for %s differs: (-want +got)\n%s", o.name, cmp.Diff(string(want), string(got)))
			continue
		}
		if gold == nil {
			a.Files = append(a.Files, txtar.File{Name: o.name})
			gold = &a.Files[len(a.Files)-1]
		}
		gold.Data = got
		changed = true
	}

	if changed {
		if err := os.WriteFile(file, txtar.Format(a), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func goldenFile(a *txtar.Archive, name string) *txtar.File {
	for i := range a.Files {
		if a.Files[i].Name == name {
			return &a.Files[i]
		}
	}
	return nil
}
