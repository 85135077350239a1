// Copyright (c) 2024 John Millikin <john@john-millikin.com>
//
// Permission to use, copy, modify, and/or distribute this software for any
// purpose with or without fee is hereby granted.
//
// THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES WITH
// REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF MERCHANTABILITY
// AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR ANY SPECIAL, DIRECT,
// INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES WHATSOEVER RESULTING FROM
// LOSS OF USE, DATA OR PROFITS, WHETHER IN AN ACTION OF CONTRACT, NEGLIGENCE OR
// OTHER TORTIOUS ACTION, ARISING OUT OF OR IN CONNECTION WITH THE USE OR
// PERFORMANCE OF THIS SOFTWARE.
//
// SPDX-License-Identifier: 0BSD

package syntax

import (
	"fmt"
	"unicode"
)

type TokenKind uint8

const (
	T_EOF TokenKind = iota

	T_NAME
	T_INTEGER

	T_LESS
	T_GREATER
	T_OPEN_CURL
	T_CLOSE_CURL
	T_OPEN_SQUARE
	T_CLOSE_SQUARE
	T_OPEN_PAREN
	T_CLOSE_PAREN
	T_PIPE
	T_EQ
	T_COLON

	T_TYPE
	T_ENUM
	T_OPTIONAL
	T_MAP
	T_DATA
	T_VOID
	T_BOOL
	T_STRING
	T_UINT
	T_INT
	T_U8
	T_U16
	T_U32
	T_U64
	T_I8
	T_I16
	T_I32
	T_I64
	T_F32
	T_F64
)

var tokenKindNames = [...]string{
	T_EOF:          "EOF",
	T_NAME:         "NAME",
	T_INTEGER:      "INTEGER",
	T_LESS:         "LESS",
	T_GREATER:      "GREATER",
	T_OPEN_CURL:    "OPEN_CURL",
	T_CLOSE_CURL:   "CLOSE_CURL",
	T_OPEN_SQUARE:  "OPEN_SQUARE",
	T_CLOSE_SQUARE: "CLOSE_SQUARE",
	T_OPEN_PAREN:   "OPEN_PAREN",
	T_CLOSE_PAREN:  "CLOSE_PAREN",
	T_PIPE:         "PIPE",
	T_EQ:           "EQ",
	T_COLON:        "COLON",
	T_TYPE:         "TYPE",
	T_ENUM:         "ENUM",
	T_OPTIONAL:     "OPTIONAL",
	T_MAP:          "MAP",
	T_DATA:         "DATA",
	T_VOID:         "VOID",
	T_BOOL:         "BOOL",
	T_STRING:       "STRING",
	T_UINT:         "UINT",
	T_INT:          "INT",
	T_U8:           "U8",
	T_U16:          "U16",
	T_U32:          "U32",
	T_U64:          "U64",
	T_I8:           "I8",
	T_I16:          "I16",
	T_I32:          "I32",
	T_I64:          "I64",
	T_F32:          "F32",
	T_F64:          "F64",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(k))
}

var keywords = map[string]TokenKind{
	"type":     T_TYPE,
	"enum":     T_ENUM,
	"optional": T_OPTIONAL,
	"map":      T_MAP,
	"data":     T_DATA,
	"void":     T_VOID,
	"bool":     T_BOOL,
	"string":   T_STRING,
	"uint":     T_UINT,
	"int":      T_INT,
	"u8":       T_U8,
	"u16":      T_U16,
	"u32":      T_U32,
	"u64":      T_U64,
	"i8":       T_I8,
	"i16":      T_I16,
	"i32":      T_I32,
	"i64":      T_I64,
	"f32":      T_F32,
	"f64":      T_F64,
}

var punctuation = map[rune]TokenKind{
	'<': T_LESS,
	'>': T_GREATER,
	'{': T_OPEN_CURL,
	'}': T_CLOSE_CURL,
	'[': T_OPEN_SQUARE,
	']': T_CLOSE_SQUARE,
	'(': T_OPEN_PAREN,
	')': T_CLOSE_PAREN,
	'|': T_PIPE,
	'=': T_EQ,
	':': T_COLON,
}

// Token is a single lexical unit. Text holds the source characters of the
// token, and is empty only for [T_EOF].
type Token struct {
	Kind TokenKind
	Text string
	Pos  Position
}

func (tok Token) String() string {
	if tok.Kind == T_EOF {
		return "EOF"
	}
	return tok.Text
}

// Lexer splits a character stream into tokens. Whitespace and comments
// (from '#' to the end of the line) are discarded.
type Lexer struct {
	scanner *Scanner
	pending *Token
}

func NewLexer(scanner *Scanner) *Lexer {
	return &Lexer{scanner: scanner}
}

// Pushback returns tok to the lexer, to be returned by the next call to
// [Lexer.Next]. At most one token may be pending at a time.
func (l *Lexer) Pushback(tok Token) {
	if l.pending != nil {
		panic(fmt.Sprintf("syntax: Pushback of %s with %s already pending", tok.Kind, l.pending.Kind))
	}
	l.pending = &tok
}

func (l *Lexer) Next() (Token, error) {
	if tok := l.pending; tok != nil {
		l.pending = nil
		return *tok, nil
	}

	for {
		r, err := l.scanner.ReadChar()
		if err != nil {
			return Token{}, err
		}
		pos := l.scanner.Position()

		switch {
		case r == EOF:
			return Token{Kind: T_EOF, Pos: pos}, nil
		case unicode.IsSpace(r):
			continue
		case r == '#':
			if _, err := l.scanner.ReadUntil('\n'); err != nil {
				return Token{}, err
			}
			continue
		case isDigit(r):
			l.scanner.UnreadChar()
			text, err := l.scanner.ReadInteger()
			if err != nil {
				return Token{}, err
			}
			return Token{Kind: T_INTEGER, Text: text, Pos: pos}, nil
		case isWordChar(r):
			l.scanner.UnreadChar()
			text, err := l.scanner.ReadWord()
			if err != nil {
				return Token{}, err
			}
			kind, ok := keywords[text]
			if !ok {
				kind = T_NAME
			}
			return Token{Kind: kind, Text: text, Pos: pos}, nil
		}

		if kind, ok := punctuation[r]; ok {
			return Token{Kind: kind, Text: string(r), Pos: pos}, nil
		}
		return Token{}, errUnexpectedCharacter(pos, r)
	}
}
