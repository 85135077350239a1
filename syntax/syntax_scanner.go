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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// EOF is returned by [Scanner.ReadChar] at the end of input.
const EOF rune = -1

// Position is a 1-based line and column in a schema source. Columns count
// characters, not bytes.
type Position struct {
	Line   int
	Column int
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d", pos.Line, pos.Column)
}

type positionTracker struct {
	line       int
	column     int
	prevColumn int
}

func (p *positionTracker) advance(r rune) {
	p.column++
	if r == '\n' {
		p.line++
		p.prevColumn = p.column
		p.column = 0
	}
}

func (p *positionTracker) retreat(r rune) {
	if r == '\n' {
		p.line--
		p.column = p.prevColumn
	}
	p.column--
}

// Scanner reads characters from a schema source, tracking the position of
// the most recently read character. One character may be pushed back with
// [Scanner.UnreadChar].
type Scanner struct {
	r       io.RuneReader
	pos     positionTracker
	last    rune
	unread  bool
	started bool
}

func NewScanner(r io.Reader) *Scanner {
	rr, ok := r.(io.RuneReader)
	if !ok {
		rr = bufio.NewReader(r)
	}
	return &Scanner{
		r:   rr,
		pos: positionTracker{line: 1},
	}
}

// Position returns the position of the last character read. The end of
// input is one column past the final character.
func (s *Scanner) Position() Position {
	return Position{Line: s.pos.line, Column: s.pos.column}
}

// ReadChar returns the next character, or [EOF] at the end of input.
func (s *Scanner) ReadChar() (rune, error) {
	if s.unread {
		s.unread = false
		s.pos.advance(s.last)
		return s.last, nil
	}

	r, size, err := s.r.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			s.last = EOF
			s.started = true
			s.pos.advance(EOF)
			return EOF, nil
		}
		return EOF, errReadFailed(s.Position(), err)
	}
	s.last = r
	s.started = true
	s.pos.advance(r)
	if r == utf8.RuneError && size == 1 {
		return EOF, errInvalidUtf8(s.Position())
	}
	return r, nil
}

// UnreadChar pushes back the last character read. Only one character of
// pushback is supported, so calling UnreadChar twice without an intervening
// ReadChar panics.
func (s *Scanner) UnreadChar() {
	if s.unread || !s.started {
		panic("syntax: UnreadChar without preceding ReadChar")
	}
	s.unread = true
	s.pos.retreat(s.last)
}

func isWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ReadWord reads a run of letters, digits, and underscores. It is an error
// for the run to be empty.
func (s *Scanner) ReadWord() (string, error) {
	return s.readRun(isWordChar, errExpectedWord)
}

// ReadInteger reads a run of decimal digits. It is an error for the run to
// be empty.
func (s *Scanner) ReadInteger() (string, error) {
	return s.readRun(isDigit, errExpectedInteger)
}

func (s *Scanner) readRun(accept func(rune) bool, errEmpty func(Position, rune) error) (string, error) {
	var buf strings.Builder
	for {
		r, err := s.ReadChar()
		if err != nil {
			return "", err
		}
		if r == EOF || !accept(r) {
			if buf.Len() == 0 {
				return "", errEmpty(s.Position(), r)
			}
			s.UnreadChar()
			return buf.String(), nil
		}
		buf.WriteRune(r)
	}
}

// ReadUntil reads characters up to, but not including, stop or the end of
// input.
func (s *Scanner) ReadUntil(stop rune) (string, error) {
	var buf strings.Builder
	for {
		r, err := s.ReadChar()
		if err != nil {
			return "", err
		}
		if r == EOF || r == stop {
			s.UnreadChar()
			return buf.String(), nil
		}
		buf.WriteRune(r)
	}
}
