// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// token.go - Line splitting with cursor tracking.
package token

import (
	"fmt"
	"strings"
)

// =============================================================================
// CURSOR LOCATION
// =============================================================================

// Location pinpoints the editing cursor inside a token sequence.
type Location struct {
	// Index is the index of the token holding the cursor.
	Index int

	// Offset is the cursor position inside the unescaped token.
	// It may equal the token length (cursor at the end) but never exceeds it.
	Offset int

	// Start is the byte offset in the raw line where the token's text
	// begins. Completion uses it to split the line around the word
	// being completed.
	Start int
}

// Valid reports whether the location carries a claimed cursor.
func (l Location) Valid() bool {
	return l.Index >= 0
}

// noCursor is the location returned when no cursor was requested.
var noCursor = Location{Index: -1}

// =============================================================================
// ERRORS
// =============================================================================

// UnterminatedQuoteError reports a quote that was opened but never closed.
type UnterminatedQuoteError struct {
	// Column is the 0-based column of the opening quote.
	Column int
}

func (e *UnterminatedQuoteError) Error() string {
	return fmt.Sprintf("unterminated quote at column %d", e.Column)
}

// =============================================================================
// SPLITTER
// =============================================================================

// Splitter splits raw input lines into tokens, optionally tracking a
// cursor position through quoting and escaping.
//
// The zero value splits on whitespace with no special token characters.
type Splitter struct {
	// TokenChars holds single characters that always form their own
	// one-character token, even with no surrounding whitespace.
	TokenChars string

	// NoSpace holds single-character tokens joined with no space on
	// either side. SpaceBefore tokens take a space before but none
	// after; SpaceAfter tokens the reverse. Everything else is joined
	// with a single space.
	NoSpace     string
	SpaceBefore string
	SpaceAfter  string

	// PreserveQuotes keeps quote characters (and the escapes inside
	// them) in the produced tokens instead of stripping them.
	PreserveQuotes bool
}

// NewSplitter returns a Splitter with default settings.
func NewSplitter() *Splitter {
	return &Splitter{}
}

// Split splits line into tokens. When fix is true an unterminated quote
// is implicitly closed at end of line; otherwise it is an error.
func (s *Splitter) Split(line string, fix bool) ([]string, error) {
	tokens, _, err := s.scan(line, -1, fix)
	return tokens, err
}

// SplitCursor splits line into tokens while locating cursor, a byte
// offset into the raw line. A cursor inside a run of whitespace claims
// an inserted empty token so completion can operate between words; a
// cursor on the boundary of two tokens is attributed to the earlier one.
// Offsets outside the line are clamped.
func (s *Splitter) SplitCursor(line string, cursor int, fix bool) ([]string, Location, error) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(line) {
		cursor = len(line)
	}
	return s.scan(line, cursor, fix)
}

// =============================================================================
// SCANNER
// =============================================================================

// scan is the single left-to-right pass behind Split and SplitCursor.
// cursor < 0 disables cursor tracking.
func (s *Splitter) scan(line string, cursor int, fix bool) ([]string, Location, error) {
	loc := noCursor
	claimed := cursor < 0

	// An empty line has no whitespace run to catch the cursor in.
	if line == "" {
		if !claimed {
			return []string{""}, Location{Index: 0, Offset: 0, Start: 0}, nil
		}
		return nil, loc, nil
	}

	var tokens []string
	pos := 0
	for pos < len(line) {
		// Whitespace run. A cursor sitting inside it (and not already
		// claimed by the trailing boundary of the previous token) gets
		// an empty token of its own.
		wsStart := pos
		for pos < len(line) && isSpace(line[pos]) {
			pos++
		}
		if !claimed && cursor >= wsStart && pos > wsStart {
			if cursor < pos || (pos == len(line) && cursor == pos) {
				loc = Location{Index: len(tokens), Offset: 0, Start: cursor}
				tokens = append(tokens, "")
				claimed = true
			}
		}
		if pos >= len(line) {
			break
		}

		chunkStart := pos
		var tok string
		var off int
		var err error
		switch c := line[pos]; {
		case c == '\'' || c == '"':
			tok, off, pos, err = s.scanQuoted(line, pos, cursor, fix)
			if err != nil {
				return nil, loc, err
			}
		case s.isTokenChar(c):
			tok = line[pos : pos+1]
			pos++
			off = -1
			if cursor >= chunkStart && cursor <= pos {
				off = cursor - chunkStart
			}
		default:
			tok, off, pos = s.scanBare(line, pos, cursor)
		}

		if !claimed && off >= 0 {
			loc = Location{Index: len(tokens), Offset: off, Start: chunkStart}
			claimed = true
		}
		tokens = append(tokens, tok)
	}

	return tokens, loc, nil
}

// scanBare consumes a run of unquoted characters starting at start,
// stopping at whitespace, a quote, or a configured token character.
// Backslash escapes are resolved, and the returned cursor offset is
// expressed in unescaped token coordinates (-1 when the cursor does not
// fall inside the chunk).
func (s *Splitter) scanBare(line string, start, cursor int) (string, int, int) {
	var b strings.Builder
	off := -1
	pos := start
	for pos < len(line) {
		c := line[pos]
		if isSpace(c) || c == '\'' || c == '"' || s.isTokenChar(c) {
			break
		}
		if cursor == pos {
			off = b.Len()
		}
		if c == '\\' && pos+1 < len(line) {
			// The escape character is dropped, so a cursor on the
			// escaped character lands where that character ends up.
			if cursor == pos+1 {
				off = b.Len()
			}
			b.WriteByte(line[pos+1])
			pos += 2
			continue
		}
		b.WriteByte(c)
		pos++
	}
	// Trailing boundary: a cursor right after the chunk belongs to it.
	if off < 0 && cursor >= start && cursor == pos {
		off = b.Len()
	}
	return b.String(), off, pos
}

// scanQuoted consumes a quoted chunk starting at the opening quote.
// Backslash may escape the active quote character or itself; everything
// else inside the quotes is literal. When fix is true a missing close
// quote is treated as an implicit close at end of line.
func (s *Splitter) scanQuoted(line string, start, cursor int, fix bool) (string, int, int, error) {
	quote := line[start]
	var b strings.Builder
	off := -1
	pos := start + 1
	closed := false
	for pos < len(line) {
		c := line[pos]
		if c == '\\' && pos+1 < len(line) && (line[pos+1] == quote || line[pos+1] == '\\') {
			if cursor == pos || cursor == pos+1 {
				off = b.Len()
			}
			b.WriteByte(line[pos+1])
			pos += 2
			continue
		}
		if c == quote {
			closed = true
			pos++
			break
		}
		if cursor == pos {
			off = b.Len()
		}
		b.WriteByte(c)
		pos++
	}
	if !closed && !fix {
		return "", -1, 0, &UnterminatedQuoteError{Column: start}
	}

	if s.PreserveQuotes {
		tok := line[start:pos]
		off = -1
		if cursor >= start && cursor <= pos {
			off = cursor - start
			if off > len(tok) {
				off = len(tok)
			}
		}
		return tok, off, pos, nil
	}

	// A cursor on the opening quote, the closing quote, or the chunk's
	// trailing boundary collapses to the nearest unescaped position.
	if off < 0 && cursor >= start && cursor <= pos {
		if cursor == start {
			off = 0
		} else {
			off = b.Len()
		}
	}
	return b.String(), off, pos, nil
}

func (s *Splitter) isTokenChar(c byte) bool {
	return s.TokenChars != "" && strings.IndexByte(s.TokenChars, c) >= 0
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}
