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

package source

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestReadAll(t *testing.T) {
	want := []byte("A.$clinit();")
	for _, src := range []any{
		string(want),
		want,
		bytes.NewBuffer(want),
		strings.NewReader(string(want)),
	} {
		got, err := ReadAll("x.js", src)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.DeepEquals(got, want))
	}

	_, err := ReadAll("x.js", 42)
	qt.Assert(t, qt.ErrorMatches(err, `invalid source type int`))

	file := filepath.Join(t.TempDir(), "a.java.js")
	qt.Assert(t, qt.IsNil(os.WriteFile(file, want, 0o666)))
	got, err := ReadAll(file, nil)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(got, want))
}
