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

package token

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"
)

func checkPos(t *testing.T, msg string, got, want Position) {
	t.Helper()
	qt.Check(t, qt.Equals(got, want), qt.Commentf("%s", msg))
}

func TestNoPos(t *testing.T) {
	qt.Assert(t, qt.IsFalse(NoPos.IsValid()))
	checkPos(t, "nil NoPos", NoPos.Position(), Position{})
	qt.Assert(t, qt.Equals(NoPos.String(), "-"))
}

var tests = []struct {
	filename string
	source   []byte // may be nil
	size     int
	lines    []int
}{
	{"a.js", []byte{}, 0, []int{}},
	{"b.js", []byte("01234"), 5, []int{0}},
	{"c.js", []byte("\n\n\n\n\n\n\n\n\n"), 9, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
	{"d.js", nil, 100, []int{0, 5, 10, 20, 30, 70, 71, 72, 80, 85, 90, 99}},
	{"e.js", []byte("var a;\n\nfoo()"), 13, []int{0, 7, 8}},
	{"f.js", []byte("var a;\n\nfoo()\n "), 15, []int{0, 7, 8, 14}},
}

func linecol(lines []int, offs int) (int, int) {
	prevLineOffs := 0
	for line, lineOffs := range lines {
		if offs < lineOffs {
			return line, offs - prevLineOffs + 1
		}
		prevLineOffs = lineOffs
	}
	return len(lines), offs - prevLineOffs + 1
}

func verifyPositions(t *testing.T, f *File, lines []int) {
	for offs := 0; offs < f.Size(); offs++ {
		p := f.Pos(offs, 0)
		qt.Check(t, qt.Equals(f.Offset(p), offs))
		line, col := linecol(lines, offs)
		msg := fmt.Sprintf("%s (offs = %d, p = %v)", f.Name(), offs, p)
		checkPos(t, msg, f.Pos(offs, 0).Position(), Position{f.Name(), offs, line, col})
	}
}

func TestPositions(t *testing.T) {
	for _, test := range tests {
		f := NewFile(test.filename, test.size)
		for i, offset := range test.lines {
			if i == 0 {
				continue
			}
			f.AddLine(offset)
		}
		wantLines := len(test.lines)
		if wantLines == 0 {
			wantLines = 1
		}
		qt.Check(t, qt.Equals(f.LineCount(), wantLines), qt.Commentf("%s", test.filename))
		verifyPositions(t, f, test.lines)
	}
}

func TestLineInvalid(t *testing.T) {
	f := NewFile("x.js", 20)
	f.AddLine(5)
	f.AddLine(5)  // ignored: not increasing
	f.AddLine(3)  // ignored
	f.AddLine(25) // ignored: beyond size
	qt.Assert(t, qt.Equals(f.LineCount(), 2))
}

func TestRelPos(t *testing.T) {
	f := NewFile("r.js", 10)
	p := f.Pos(4, Newline)
	qt.Assert(t, qt.Equals(p.RelPos(), Newline))
	qt.Assert(t, qt.IsTrue(p.IsNewline()))
	qt.Assert(t, qt.Equals(p.Offset(), 4))

	q := p.WithRel(Blank)
	qt.Assert(t, qt.Equals(q.RelPos(), Blank))
	qt.Assert(t, qt.Equals(q.Offset(), 4))
	qt.Assert(t, qt.IsFalse(q.IsNewline()))

	r := NewSection.Pos()
	qt.Assert(t, qt.IsTrue(r.IsValid()))
	qt.Assert(t, qt.IsNil(r.File()))
	qt.Assert(t, qt.Equals(r.RelPos(), NewSection))
}

func TestCompare(t *testing.T) {
	a := NewFile("a.js", 10)
	b := NewFile("b.js", 10)
	qt.Check(t, qt.Equals(a.Pos(1, 0).Compare(a.Pos(2, 0)), -1))
	qt.Check(t, qt.Equals(a.Pos(2, 0).Compare(a.Pos(1, 0)), 1))
	qt.Check(t, qt.Equals(a.Pos(9, 0).Compare(b.Pos(0, 0)), -1))
	qt.Check(t, qt.Equals(a.Pos(1, 0).Compare(NoPos), -1))
	qt.Check(t, qt.Equals(NoPos.Compare(NoPos), 0))
	qt.Check(t, qt.IsTrue(a.Pos(0, 0).Before(a.Pos(3, 0))))
}

func TestTokens(t *testing.T) {
	qt.Check(t, qt.Equals(Lookup("function"), FUNCTION))
	qt.Check(t, qt.Equals(Lookup("clinit"), IDENT))
	qt.Check(t, qt.Equals(LAND.String(), "&&"))
	qt.Check(t, qt.Equals(Token(-3).String(), "token(-3)"))
	qt.Check(t, qt.IsTrue(NUMBER.IsLiteral()))
	qt.Check(t, qt.IsTrue(NULLISH.IsOperator()))
	qt.Check(t, qt.IsTrue(VOID.IsKeyword()))
	qt.Check(t, qt.IsTrue(REMASSIGN.IsAssignOp()))
	qt.Check(t, qt.IsFalse(EQL.IsAssignOp()))
	qt.Check(t, qt.IsTrue(MUL.Precedence() > ADD.Precedence()))
	qt.Check(t, qt.IsTrue(LAND.Precedence() > LOR.Precedence()))
}
