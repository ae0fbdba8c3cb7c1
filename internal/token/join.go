// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package token

import "strings"

// =============================================================================
// ESCAPING AND JOINING
// =============================================================================

// Escape backslash-escapes whitespace, quotes, backslashes, and the
// splitter's token characters so the token survives a round trip through
// Split. An empty token is rendered as a pair of quotes.
func (s *Splitter) Escape(tok string) string {
	if tok == "" {
		return `""`
	}
	var b strings.Builder
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if isSpace(c) || c == '\'' || c == '"' || c == '\\' || s.isTokenChar(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Join escapes each token and concatenates the result. Tokens are
// separated by single spaces except around single-character tokens drawn
// from the NoSpace, SpaceBefore, and SpaceAfter sets. Joining does not
// reproduce the original line byte for byte, but re-splitting the result
// yields the same token sequence.
func (s *Splitter) Join(tokens []string) string {
	var b strings.Builder
	prev := ""
	for i, tok := range tokens {
		if i > 0 && s.spaceBetween(prev, tok) {
			b.WriteByte(' ')
		}
		if len(tok) == 1 && s.isTokenChar(tok[0]) {
			// A bare token character re-splits to itself; escaping it
			// would only obscure the line.
			b.WriteString(tok)
		} else {
			b.WriteString(s.Escape(tok))
		}
		prev = tok
	}
	return b.String()
}

// spaceBetween consults the formatting table for the gap between two
// adjacent tokens.
func (s *Splitter) spaceBetween(prev, next string) bool {
	if s.inSet(prev, s.NoSpace) || s.inSet(prev, s.SpaceBefore) {
		return false
	}
	if s.inSet(next, s.NoSpace) || s.inSet(next, s.SpaceAfter) {
		return false
	}
	return true
}

func (s *Splitter) inSet(tok, set string) bool {
	return len(tok) == 1 && set != "" && strings.IndexByte(set, tok[0]) >= 0
}
