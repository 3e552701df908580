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

// Package jstest is a helper package for test packages in this module.
// As such it should only be imported in _test.go files.
package jstest

import (
	"fmt"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"jscomp.dev/go/js/ast"
	"jscomp.dev/go/js/format"
	"jscomp.dev/go/js/parser"
)

// UpdateGoldenFiles determines whether golden tests and testscript scripts
// should update txtar archives in the event of cmp failures. It corresponds
// to testscript.Params.UpdateGoldenFiles.
var UpdateGoldenFiles = os.Getenv("JSCOMP_UPDATE") != ""

// Long is set when JSCOMP_LONG is set, enabling tests that take a while to
// run.
var Long = os.Getenv("JSCOMP_LONG") != ""

// Condition adds support for module specific testscript conditions within
// testscript scripts. The canonical case being [long] which evaluates to true
// when JSCOMP_LONG is set.
func Condition(cond string) (bool, error) {
	switch cond {
	case "long":
		return Long, nil
	}
	return false, fmt.Errorf("unknown condition %v", cond)
}

// ParseFile parses src, failing the test on error.
func ParseFile(t testing.TB, filename, src string) *ast.File {
	t.Helper()
	f, err := parser.ParseFile(filename, src)
	if err != nil {
		t.Fatalf("parse %s: %v", filename, err)
	}
	return f
}

// Format prints n, failing the test on error.
func Format(t testing.TB, n ast.Node) string {
	t.Helper()
	b, err := format.Node(n)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	return string(b)
}

// SameNodes is a comparison option that compares syntax tree nodes by
// identity.
var SameNodes = cmp.Comparer(func(x, y ast.Node) bool { return x == y })
