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
	"cmp"
	"fmt"
	"sort"
)

// Position is the printable form of a source position.
// It is valid if Line > 0.
type Position struct {
	Filename string
	Offset   int // byte offset, starting at 0
	Line     int // starting at 1
	Column   int // byte column, starting at 1
}

// IsValid reports whether the position is valid.
func (pos *Position) IsValid() bool { return pos.Line > 0 }

// String formats pos as file:line:column, line:column, file or "-",
// depending on which parts are known.
func (pos Position) String() string {
	switch {
	case pos.IsValid() && pos.Filename != "":
		return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Column)
	case pos.IsValid():
		return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
	case pos.Filename != "":
		return pos.Filename
	}
	return "-"
}

// Pos is an offset in a File together with the kind of space that precedes
// the token found there. A Pos created with [RelPos.Pos] carries spacing
// information only.
type Pos struct {
	file *File
	off  int // byte offset plus one, or 0 if there is none
	rel  RelPos
}

// NoPos is the zero Pos. It has neither an offset nor spacing information.
var NoPos = Pos{}

// IsValid reports whether p carries an offset or spacing information.
func (p Pos) IsValid() bool { return p != NoPos }

// File returns the file of p, or nil if p has no offset.
func (p Pos) File() *File {
	if p.off == 0 {
		return nil
	}
	return p.file
}

// Filename returns the name of the file of p.
func (p Pos) Filename() string {
	if p.file == nil {
		return ""
	}
	return p.file.name
}

// Offset returns the byte offset of p in its file.
func (p Pos) Offset() int {
	if p.file == nil {
		return 0
	}
	return p.file.Offset(p)
}

// Position returns the printable form of p.
func (p Pos) Position() Position {
	if p.file == nil {
		return Position{}
	}
	return p.file.Position(p)
}

// Line returns the line of p, starting at 1.
func (p Pos) Line() int { return p.Position().Line }

// Column returns the byte column of p, starting at 1.
func (p Pos) Column() int { return p.Position().Column }

func (p Pos) String() string { return p.Position().String() }

// Add returns the position n bytes after p with the same spacing.
func (p Pos) Add(n int) Pos {
	if p.off != 0 {
		p.off += n
	}
	return p
}

// RelPos returns the spacing before the token at p.
func (p Pos) RelPos() RelPos { return p.rel }

// WithRel returns p with its spacing replaced by rel.
func (p Pos) WithRel(rel RelPos) Pos {
	p.rel = rel
	return p
}

// IsNewline reports whether a line break precedes the token at p.
func (p Pos) IsNewline() bool { return p.rel >= Newline }

// Compare orders positions by file name and offset. NoPos sorts after all
// other positions.
func (p Pos) Compare(q Pos) int {
	switch {
	case p == q:
		return 0
	case p == NoPos:
		return 1
	case q == NoPos:
		return -1
	}
	if c := cmp.Compare(p.Filename(), q.Filename()); c != 0 {
		return c
	}
	return cmp.Compare(p.Offset(), q.Offset())
}

// Before reports whether p sorts before q.
func (p Pos) Before(q Pos) bool { return p.Compare(q) < 0 }

// RelPos describes the space between a token and the one before it. The
// scanner records it so that the parser can insert semicolons and the
// printer can keep blank lines.
type RelPos int

const (
	NoRelPos RelPos = iota

	// NoSpace means the token directly follows the previous one.
	NoSpace

	// Blank means there is only horizontal space before the token.
	Blank

	// Newline means a single line break precedes the token.
	Newline

	// NewSection means at least one empty line precedes the token.
	NewSection
)

var relNames = [...]string{
	NoRelPos:   "invalid",
	NoSpace:    "nospace",
	Blank:      "blank",
	Newline:    "newline",
	NewSection: "section",
}

func (r RelPos) String() string {
	if r >= 0 && int(r) < len(relNames) {
		return relNames[r]
	}
	return fmt.Sprintf("RelPos(%d)", int(r))
}

// Pos returns a position without offset that only carries r.
func (r RelPos) Pos() Pos { return Pos{rel: r} }

// A File records the name, size and line starts of a source file.
type File struct {
	name  string
	size  int
	lines []int // offsets of the first byte of each line
}

// NewFile returns a file of size bytes with a single line.
func NewFile(filename string, size int) *File {
	return &File{name: filename, size: size, lines: []int{0}}
}

// Name returns the name f was created with.
func (f *File) Name() string { return f.name }

// Size returns the size f was created with.
func (f *File) Size() int { return f.size }

// LineCount returns the number of lines of f.
func (f *File) LineCount() int { return len(f.lines) }

// AddLine records that a line starts at offset. Offsets that do not
// increase or that lie beyond the end of the file are ignored.
func (f *File) AddLine(offset int) {
	if offset > f.lines[len(f.lines)-1] && offset < f.size {
		f.lines = append(f.lines, offset)
	}
}

func (f *File) clamp(offset int) int {
	return min(max(offset, 0), f.size)
}

// Pos returns the position at offset, clamped to the bounds of f, preceded
// by the spacing rel.
func (f *File) Pos(offset int, rel RelPos) Pos {
	return Pos{file: f, off: f.clamp(offset) + 1, rel: rel}
}

// Offset returns the offset of p, clamped to the bounds of f.
func (f *File) Offset(p Pos) int {
	if p.off == 0 {
		return 0
	}
	return f.clamp(p.off - 1)
}

// Line returns the line of p.
func (f *File) Line(p Pos) int { return f.Position(p).Line }

// Position returns the printable form of p, which must be a position in f
// or carry no offset.
func (f *File) Position(p Pos) Position {
	if p.off == 0 {
		return Position{}
	}
	offset := f.Offset(p)
	line := sort.SearchInts(f.lines, offset+1) - 1
	return Position{
		Filename: f.name,
		Offset:   offset,
		Line:     line + 1,
		Column:   offset - f.lines[line] + 1,
	}
}
