// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// readline.go - Adapters between the completion engine and a
// readline-style line editor.
package shell

import (
	"fmt"

	"github.com/jeranaias/rigshell/internal/ui/styles"
)

// completeWord is the liner WordCompleter hook. It builds a completion
// context at the cursor, asks the engine for candidates, and splits the
// line around the word under the cursor so the editor can substitute a
// chosen candidate in place.
func (s *Session) completeWord(line string, pos int) (string, []string, string) {
	ctx := s.completer.Context(s.tree, line, pos)
	candidates := s.completer.Complete(ctx)

	start := ctx.WordStart
	if start > len(line) {
		start = len(line)
	}
	if pos > len(line) {
		pos = len(line)
	}
	return line[:start], candidates, line[pos:]
}

// CompletionFunc is the classic readline completion entry point: the
// partial word, the whole line, and the offset where the partial word
// starts. It exists for embedders whose line editor exposes that shape
// instead of liner's.
func (s *Session) CompletionFunc(partial, full string, start int) []string {
	ctx := s.completer.Context(s.tree, full, start+len(partial))
	return s.completer.Complete(ctx)
}

// completionMessage is the side channel used by Hint completion rules.
// The text goes below the in-progress edit line; the editor redraws the
// prompt afterwards.
func (s *Session) completionMessage(text string) {
	fmt.Fprintf(s.errOut, "\n%s\n", styles.Info.Render(text))
}
