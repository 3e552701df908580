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

// Package scanner tokenizes JavaScript source text.
//
// Semicolons are never inserted by the scanner. Instead, every token
// position records the space that precedes the token, and the parser uses
// it to apply automatic semicolon insertion.
package scanner

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"unicode"
	"unicode/utf8"

	"jscomp.dev/go/js/token"
)

// An ErrorHandler is called for each syntax error with the position of the
// offending character and a printf-style message.
type ErrorHandler func(pos token.Pos, msg string, args []interface{})

// A Mode controls scanner behavior.
type Mode uint

const (
	// ScanComments makes Scan return comments as COMMENT tokens instead
	// of skipping them.
	ScanComments Mode = 1 << iota
)

const (
	eof = -1
	bom = 0xFEFF // byte order mark, only permitted as the first character
)

// A Scanner holds the state of a scan. It must be initialized with Init
// before use, and may be reused by calling Init again.
type Scanner struct {
	file *token.File
	src  []byte
	err  ErrorHandler
	mode Mode

	ch     rune // current character, or eof
	offset int  // offset of ch
	rd     int  // offset of the character after ch

	// space preceding the next token
	lines  int
	spaces int

	// ErrorCount is the number of errors encountered.
	ErrorCount int
}

// Init sets s up to scan src, which must be the content of file. Line
// starts are recorded in file as they are found. Errors are reported to
// err, if not nil, and counted in ErrorCount.
func (s *Scanner) Init(file *token.File, src []byte, err ErrorHandler, mode Mode) {
	if file.Size() != len(src) {
		panic(fmt.Sprintf("file size (%d) does not match src len (%d)", file.Size(), len(src)))
	}
	*s = Scanner{
		file: file,
		src:  src,
		err:  err,
		mode: mode,
		ch:   ' ',
	}
	s.advance()
	if s.ch == bom {
		s.advance()
	}
}

// advance reads the next character into s.ch.
func (s *Scanner) advance() {
	if s.ch == '\n' {
		s.file.AddLine(s.rd)
	}
	s.offset = s.rd
	if s.rd >= len(s.src) {
		s.ch = eof
		return
	}
	r, w := rune(s.src[s.rd]), 1
	switch {
	case r == 0:
		s.errorf(s.offset, "illegal character NUL")
	case r >= utf8.RuneSelf:
		r, w = utf8.DecodeRune(s.src[s.rd:])
		if r == utf8.RuneError && w == 1 {
			s.errorf(s.offset, "illegal UTF-8 encoding")
		} else if r == bom && s.offset > 0 {
			s.errorf(s.offset, "illegal byte order mark")
		}
	}
	s.rd += w
	s.ch = r
}

// peek returns the byte after the current character, or eof.
func (s *Scanner) peek() rune {
	if s.rd < len(s.src) {
		return rune(s.src[s.rd])
	}
	return eof
}

func (s *Scanner) errorf(offset int, msg string, args ...interface{}) {
	if s.err != nil {
		s.err(s.file.Pos(offset, 0), msg, args)
	}
	s.ErrorCount++
}

// Scan returns the next token, its position and, for literals, keywords,
// comments and semicolons, its source text. String literals keep their
// quotes and escapes. At the end of the source Scan returns EOF.
//
// The relative position of pos tells whether the token follows a line
// break ([token.Newline], or [token.NewSection] after an empty line),
// horizontal space ([token.Blank]) or nothing ([token.NoSpace]). Line
// breaks inside skipped comments count.
//
// Scan recovers from syntax errors where it can, so the absence of
// ILLEGAL tokens does not mean there were no errors.
func (s *Scanner) Scan() (pos token.Pos, tok token.Token, lit string) {
	for {
		s.skipSpace()
		pos = s.file.Pos(s.offset, s.spacing())
		tok, lit = s.scanToken(pos)
		if tok != token.COMMENT || s.mode&ScanComments != 0 {
			break
		}
	}
	s.lines, s.spaces = 0, 0
	return pos, tok, lit
}

func (s *Scanner) spacing() token.RelPos {
	switch {
	case s.lines > 1:
		return token.NewSection
	case s.lines == 1:
		return token.Newline
	case s.spaces > 0:
		return token.Blank
	}
	return token.NoSpace
}

func (s *Scanner) skipSpace() {
	for {
		switch s.ch {
		case '\n':
			s.lines++
		case ' ', '\t', '\v', '\f', '\u00a0':
			s.spaces++
		case '\r':
		default:
			return
		}
		s.advance()
	}
}

func (s *Scanner) scanToken(pos token.Pos) (token.Token, string) {
	ch := s.ch
	switch {
	case ch == eof:
		return token.EOF, ""
	case isLetter(ch):
		lit := s.scanIdentifier()
		if len(lit) == 1 {
			return token.IDENT, lit
		}
		return token.Lookup(lit), lit
	case isDecimal(ch), ch == '.' && isDecimal(s.peek()):
		return token.NUMBER, s.scanNumber()
	case ch == '"', ch == '\'':
		return token.STRING, s.scanString()
	case ch == '/' && (s.peek() == '/' || s.peek() == '*'):
		return token.COMMENT, s.scanComment()
	}
	if tok, ok := s.scanOperator(); ok {
		if tok == token.SEMICOLON {
			return tok, ";"
		}
		return tok, ""
	}
	s.advance()
	// advance already reported misplaced byte order marks
	if ch != bom {
		s.errorf(pos.Offset(), "illegal character %#U", ch)
	}
	return token.ILLEGAL, string(ch)
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' ||
		ch == '_' || ch == '$' ||
		ch >= utf8.RuneSelf && unicode.IsLetter(ch)
}

func isDecimal(ch rune) bool { return '0' <= ch && ch <= '9' }

func isDigit(ch rune) bool {
	return isDecimal(ch) || ch >= utf8.RuneSelf && unicode.IsDigit(ch)
}

func (s *Scanner) scanIdentifier() string {
	start := s.offset
	for isLetter(s.ch) || isDigit(s.ch) {
		s.advance()
	}
	return string(s.src[start:s.offset])
}

// digitVal returns the value of a hexadecimal digit, 0 for the digit
// separator and 16 for anything else.
func digitVal(ch rune) int {
	switch {
	case '0' <= ch && ch <= '9':
		return int(ch - '0')
	case 'a' <= ch && ch <= 'f':
		return int(ch-'a') + 10
	case 'A' <= ch && ch <= 'F':
		return int(ch-'A') + 10
	case ch == '_':
		return 0
	}
	return 16
}

// scanDigits consumes digits of base, including separators.
func (s *Scanner) scanDigits(base int) {
	last := s.ch
	for digitVal(s.ch) < base {
		last = s.ch
		s.advance()
	}
	if last == '_' {
		s.errorf(s.offset-1, "illegal '_' in number")
	}
}

var radixPrefixes = map[rune]struct {
	base int
	name string
}{
	'x': {16, "hexadecimal"},
	'X': {16, "hexadecimal"},
	'o': {8, "octal"},
	'O': {8, "octal"},
	'b': {2, "binary"},
	'B': {2, "binary"},
}

func (s *Scanner) scanNumber() string {
	start := s.offset
	if p, ok := radixPrefixes[s.peek()]; ok && s.ch == '0' {
		s.advance()
		s.advance()
		s.scanDigits(p.base)
		if s.offset-start <= 2 {
			s.errorf(start, "illegal %s number", p.name)
		}
		return s.endNumber(start)
	}
	if s.ch != '.' {
		s.scanDigits(10)
	}
	if s.ch == '.' {
		s.advance()
		s.scanDigits(10)
	}
	if s.ch == 'e' || s.ch == 'E' {
		s.advance()
		if s.ch == '+' || s.ch == '-' {
			s.advance()
		}
		if digitVal(s.ch) >= 10 {
			s.errorf(s.offset, "exponent has no digits")
		}
		s.scanDigits(10)
	}
	return s.endNumber(start)
}

func (s *Scanner) endNumber(start int) string {
	if isLetter(s.ch) {
		s.errorf(s.offset, "identifier starts immediately after numeric literal")
	}
	return string(s.src[start:s.offset])
}

// scanString scans a string literal up to and including its closing quote.
// Line breaks end the literal with an error unless escaped.
func (s *Scanner) scanString() string {
	start := s.offset
	quote := s.ch
	s.advance()
	for {
		ch := s.ch
		if ch == '\n' || ch == eof {
			s.errorf(start, "string literal not terminated")
			break
		}
		s.advance()
		if ch == quote {
			break
		}
		if ch == '\\' {
			s.scanEscape()
		}
	}
	return string(s.src[start:s.offset])
}

// scanEscape scans the escape sequence following a backslash. On error it
// stops before the offending character.
func (s *Scanner) scanEscape() {
	start := s.offset
	switch s.ch {
	case eof:
		s.errorf(start, "escape sequence not terminated")
	case 'x':
		s.advance()
		s.scanHexEscape(start, 2, 0xff)
	case 'u':
		s.advance()
		if s.ch != '{' {
			s.scanHexEscape(start, 4, unicode.MaxRune)
			return
		}
		s.advance()
		var x uint32
		n := 0
		for ; digitVal(s.ch) < 16 && s.ch != '_'; n++ {
			x = x*16 + uint32(digitVal(s.ch))
			s.advance()
		}
		if s.ch != '}' || n == 0 || x > unicode.MaxRune {
			s.errorf(start, "escape sequence is invalid Unicode code point")
			return
		}
		s.advance()
	default:
		// Any other character, including a line break, is taken as is.
		s.advance()
	}
}

func (s *Scanner) scanHexEscape(start, n int, max uint32) {
	var x uint32
	for ; n > 0; n-- {
		d := digitVal(s.ch)
		switch {
		case s.ch == eof:
			s.errorf(s.offset, "escape sequence not terminated")
			return
		case d >= 16 || s.ch == '_':
			s.errorf(s.offset, "illegal character %#U in escape sequence", s.ch)
			return
		}
		x = x*16 + uint32(d)
		s.advance()
	}
	if x > max {
		s.errorf(start, "escape sequence is invalid Unicode code point")
	}
}

// scanComment scans a line or block comment. Line breaks inside block
// comments count as space before the next token.
func (s *Scanner) scanComment() string {
	start := s.offset
	s.advance()
	block := s.ch == '*'
	s.advance()
	if block {
		for {
			if s.ch == eof {
				s.errorf(start, "comment not terminated")
				break
			}
			if s.ch == '\n' {
				s.lines++
			}
			ch := s.ch
			s.advance()
			if ch == '*' && s.ch == '/' {
				s.advance()
				break
			}
		}
	} else {
		for s.ch != '\n' && s.ch != eof {
			s.advance()
		}
	}
	return string(bytes.ReplaceAll(s.src[start:s.offset], []byte("\r"), nil))
}

// operators holds, for each ASCII character, the operator tokens that
// start with it, longest first.
var operators = func() (ops [utf8.RuneSelf][]token.Token) {
	for tok := token.ADD; tok <= token.SEMICOLON; tok++ {
		if tok.IsOperator() {
			c := tok.String()[0]
			ops[c] = append(ops[c], tok)
		}
	}
	for _, list := range ops {
		slices.SortStableFunc(list, func(a, b token.Token) int {
			return cmp.Compare(len(b.String()), len(a.String()))
		})
	}
	return ops
}()

func (s *Scanner) scanOperator() (token.Token, bool) {
	if s.ch < 0 || s.ch >= utf8.RuneSelf {
		return token.ILLEGAL, false
	}
	rest := s.src[s.offset:]
	for _, tok := range operators[s.ch] {
		op := tok.String()
		if bytes.HasPrefix(rest, []byte(op)) {
			for range op {
				s.advance()
			}
			return tok, true
		}
	}
	return token.ILLEGAL, false
}
