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

// Package token defines constants representing the lexical tokens of the
// JavaScript subset accepted by jscomp and basic operations on tokens
// (printing, predicates).
package token

import "strconv"

// Token is the set of lexical tokens of the JavaScript subset.
type Token int

// The list of tokens.
const (
	// Special tokens
	ILLEGAL Token = iota
	EOF
	COMMENT

	literalBeg
	// Identifiers and basic type literals
	// (these tokens stand for classes of literals)
	IDENT  // main
	NUMBER // 12345, 0x1f, 1.5e3
	STRING // "abc" 'abc'
	literalEnd

	operatorBeg
	// Operators and delimiters
	ADD // +
	SUB // -
	MUL // *
	QUO // /
	REM // %

	AND     // &
	OR      // |
	XOR     // ^
	SHL     // <<
	SHR     // >>
	USHR    // >>>
	NOT     // !
	BITNOT  // ~
	LAND    // &&
	LOR     // ||
	NULLISH // ??
	INC     // ++
	DEC     // --

	EQL       // ==
	NEQ       // !=
	SEQL      // ===
	SNEQ      // !==
	LSS       // <
	GTR       // >
	LEQ       // <=
	GEQ       // >=
	ASSIGN    // =
	ADDASSIGN // +=
	SUBASSIGN // -=
	MULASSIGN // *=
	QUOASSIGN // /=
	REMASSIGN // %=

	LPAREN   // (
	LBRACK   // [
	LBRACE   // {
	COMMA    // ,
	PERIOD   // .
	QUESTION // ?
	COLON    // :

	RPAREN    // )
	RBRACK    // ]
	RBRACE    // }
	SEMICOLON // ;
	operatorEnd

	keywordBeg
	// Keywords
	VAR
	LET
	CONST
	FUNCTION
	RETURN
	IF
	ELSE
	FOR
	IN
	OF
	WHILE
	DO
	SWITCH
	CASE
	DEFAULT
	BREAK
	CONTINUE
	TRY
	CATCH
	FINALLY
	THROW
	NEW
	TYPEOF
	VOID
	DELETE
	INSTANCEOF
	THIS
	NULL
	TRUE
	FALSE
	keywordEnd
)

var tokens = [...]string{
	ILLEGAL: "ILLEGAL",

	EOF:     "EOF",
	COMMENT: "COMMENT",

	IDENT:  "IDENT",
	NUMBER: "NUMBER",
	STRING: "STRING",

	ADD: "+",
	SUB: "-",
	MUL: "*",
	QUO: "/",
	REM: "%",

	AND:     "&",
	OR:      "|",
	XOR:     "^",
	SHL:     "<<",
	SHR:     ">>",
	USHR:    ">>>",
	NOT:     "!",
	BITNOT:  "~",
	LAND:    "&&",
	LOR:     "||",
	NULLISH: "??",
	INC:     "++",
	DEC:     "--",

	EQL:       "==",
	NEQ:       "!=",
	SEQL:      "===",
	SNEQ:      "!==",
	LSS:       "<",
	GTR:       ">",
	LEQ:       "<=",
	GEQ:       ">=",
	ASSIGN:    "=",
	ADDASSIGN: "+=",
	SUBASSIGN: "-=",
	MULASSIGN: "*=",
	QUOASSIGN: "/=",
	REMASSIGN: "%=",

	LPAREN:   "(",
	LBRACK:   "[",
	LBRACE:   "{",
	COMMA:    ",",
	PERIOD:   ".",
	QUESTION: "?",
	COLON:    ":",

	RPAREN:    ")",
	RBRACK:    "]",
	RBRACE:    "}",
	SEMICOLON: ";",

	VAR:        "var",
	LET:        "let",
	CONST:      "const",
	FUNCTION:   "function",
	RETURN:     "return",
	IF:         "if",
	ELSE:       "else",
	FOR:        "for",
	IN:         "in",
	OF:         "of",
	WHILE:      "while",
	DO:         "do",
	SWITCH:     "switch",
	CASE:       "case",
	DEFAULT:    "default",
	BREAK:      "break",
	CONTINUE:   "continue",
	TRY:        "try",
	CATCH:      "catch",
	FINALLY:    "finally",
	THROW:      "throw",
	NEW:        "new",
	TYPEOF:     "typeof",
	VOID:       "void",
	DELETE:     "delete",
	INSTANCEOF: "instanceof",
	THIS:       "this",
	NULL:       "null",
	TRUE:       "true",
	FALSE:      "false",
}

// String returns the string corresponding to the token tok.
// For operators, delimiters, and keywords the string is the actual
// token character sequence (e.g., for the token ADD, the string is
// "+"). For all other tokens the string corresponds to the token
// constant name (e.g. for the token IDENT, the string is "IDENT").
func (tok Token) String() string {
	s := ""
	if 0 <= tok && tok < Token(len(tokens)) {
		s = tokens[tok]
	}
	if s == "" {
		s = "token(" + strconv.Itoa(int(tok)) + ")"
	}
	return s
}

// A set of constants for precedence-based expression parsing.
// Non-operators have lowest precedence, followed by operators
// starting with precedence 1 up to unary operators. The highest
// precedence serves as "catch-all" precedence for selector,
// indexing, and other operator and delimiter tokens.
const (
	LowestPrec  = 0 // non-operators
	UnaryPrec   = 12
	HighestPrec = 14
)

// Precedence returns the operator precedence of the binary
// operator op. If op is not a binary operator, the result
// is LowestPrecedence.
//
// The in operator is only a binary operator when the parser allows it;
// see the noIn handling of for statements.
func (tok Token) Precedence() int {
	switch tok {
	case NULLISH:
		return 1
	case LOR:
		return 2
	case LAND:
		return 3
	case OR:
		return 4
	case XOR:
		return 5
	case AND:
		return 6
	case EQL, NEQ, SEQL, SNEQ:
		return 7
	case LSS, GTR, LEQ, GEQ, IN, INSTANCEOF:
		return 8
	case SHL, SHR, USHR:
		return 9
	case ADD, SUB:
		return 10
	case MUL, QUO, REM:
		return 11
	}
	return LowestPrec
}

var keywords map[string]Token

func init() {
	keywords = make(map[string]Token)
	for i := keywordBeg + 1; i < keywordEnd; i++ {
		keywords[tokens[i]] = i
	}
}

// Lookup maps an identifier to its keyword token or IDENT (if not a keyword).
//
// The contextual keywords let and of are reported as keywords; the parser
// treats them as identifiers where the grammar allows.
func Lookup(ident string) Token {
	if tok, isKeyword := keywords[ident]; isKeyword {
		return tok
	}
	return IDENT
}

// Predicates

// IsLiteral returns true for tokens corresponding to identifiers
// and basic type literals; it returns false otherwise.
func (tok Token) IsLiteral() bool { return literalBeg < tok && tok < literalEnd }

// IsOperator returns true for tokens corresponding to operators and
// delimiters; it returns false otherwise.
func (tok Token) IsOperator() bool { return operatorBeg < tok && tok < operatorEnd }

// IsKeyword returns true for tokens corresponding to keywords;
// it returns false otherwise.
func (tok Token) IsKeyword() bool { return keywordBeg < tok && tok < keywordEnd }

// IsAssignOp reports whether tok is a (possibly compound) assignment operator.
func (tok Token) IsAssignOp() bool { return ASSIGN <= tok && tok <= REMASSIGN }
