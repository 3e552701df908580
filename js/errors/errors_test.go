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

package errors

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"jscomp.dev/go/js/token"
)

func TestPrintError(t *testing.T) {
	f := token.NewFile("/src/app/a.java.js", 40)
	f.AddLine(10)
	f.AddLine(20)

	tests := []struct {
		name  string
		err   error
		cfg   *Config
		wantW string
	}{{
		name:  "SimplePromoted",
		err:   Promote(fmt.Errorf("hello"), "msg"),
		wantW: "msg: hello\n",
	}, {
		name:  "PromoteWithPercent",
		err:   Promote(fmt.Errorf("hello"), "msg%s"),
		wantW: "msg%s: hello\n",
	}, {
		name:  "PromoteWithEmptyString",
		err:   Promote(fmt.Errorf("hello"), ""),
		wantW: "hello\n",
	}, {
		name:  "TwoErrors",
		err:   Append(Promote(fmt.Errorf("hello"), "x"), Promote(fmt.Errorf("goodbye"), "y")),
		wantW: "x: hello\ny: goodbye\n",
	}, {
		name:  "WrappedSingle",
		err:   fmt.Errorf("wrap: %w", Promote(fmt.Errorf("hello"), "x")),
		wantW: "x: hello\n",
	}, {
		name:  "Positioned",
		err:   Newf(f.Pos(12, 0), "expected %s, found %s", "';'", "'}'"),
		wantW: "expected ';', found '}':\n    /src/app/a.java.js:2:3\n",
	}, {
		name:  "PositionedRelative",
		err:   Newf(f.Pos(21, 0), "unexpected EOF"),
		cfg:   &Config{Cwd: "/src", ToSlash: true},
		wantW: "unexpected EOF:\n    ./app/a.java.js:3:2\n",
	}, {
		name: "MultiplePerLine",
		err: func() error {
			var l List
			l.AddNewf(f.Pos(3, 0), "first")
			l.AddNewf(f.Pos(5, 0), "second")
			l.AddNewf(f.Pos(11, 0), "third")
			return l.Err()
		}(),
		wantW: "first:\n    /src/app/a.java.js:1:4\nthird:\n    /src/app/a.java.js:2:2\n",
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &bytes.Buffer{}
			Print(w, tt.err, tt.cfg)
			qt.Assert(t, qt.Equals(w.String(), tt.wantW))
		})
	}
}

func TestList(t *testing.T) {
	var l List
	qt.Assert(t, qt.IsNil(l.Err()))

	f := token.NewFile("x.js", 10)
	l.AddNewf(f.Pos(4, 0), "b")
	qt.Assert(t, qt.Equals(l.Err().Error(), "b"))

	l.AddNewf(f.Pos(1, 0), "a")
	l.Sort()
	err := l.Err()
	qt.Assert(t, qt.Equals(err.Error(), "a (and 1 more errors)"))
	qt.Assert(t, qt.HasLen(Errors(err), 2))
	pos := Positions(err)
	qt.Assert(t, qt.HasLen(pos, 1))
	qt.Assert(t, qt.Equals(pos[0], f.Pos(1, 0)))

	l.Reset()
	qt.Assert(t, qt.Equals(l.Len(), 0))
}

var errSentinel = New("sentinel")

func TestWrapf(t *testing.T) {
	f := token.NewFile("y.js", 10)
	err := Wrapf(errSentinel, f.Pos(2, 0), "reading %q", "y.js")
	qt.Assert(t, qt.ErrorIs(err, errSentinel))
	qt.Assert(t, qt.Equals(err.Error(), `reading "y.js": sentinel`))
	qt.Assert(t, qt.Equals(err.Position(), f.Pos(2, 0)))
	qt.Assert(t, qt.Equals(String(err), `reading "y.js": sentinel`))
}
