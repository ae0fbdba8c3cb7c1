// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sort"
	"strings"

	"github.com/jeranaias/rigshell/internal/token"
)

// =============================================================================
// COMPLETION CONTEXT
// =============================================================================

// Context carries everything a completion rule may want to inspect:
// the resolved command data plus the raw line, the cursor, and the
// prefix being completed. It is built once per completion request and
// discarded.
type Context struct {
	// Tree is the root tree the request was resolved against.
	Tree Tree

	// Line is the raw input line and Cursor the raw byte offset of the
	// editing cursor within it.
	Line   string
	Cursor int

	// Tokens is the tokenized line, including any empty token inserted
	// at the cursor.
	Tokens []string

	// Resolved is the command match for Tokens.
	Resolved Resolved

	// TokenIndex and TokenOffset locate the cursor in Tokens, and
	// WordStart is the raw byte offset where the cursor token begins.
	TokenIndex  int
	TokenOffset int
	WordStart   int

	// Prefix is the part of the cursor token before the cursor, i.e.
	// the text being completed.
	Prefix string

	// ArgIndex is the argument position under the cursor, counted from
	// the end of the matched path. Only meaningful when Resolved.Node
	// is set.
	ArgIndex int

	// Repeated reports a completion request on an unchanged line. It
	// is what triggers Hint rules to print their reminder.
	Repeated bool
}

// =============================================================================
// COMPLETER
// =============================================================================

// Completer assembles completion contexts and dispatches the matched
// command's completion rule. It keeps just enough state to recognize a
// repeated request on an unchanged line.
type Completer struct {
	split *token.Splitter

	// Message is the side channel used by Hint rules to print a
	// reminder without corrupting the in-progress edit line.
	Message func(text string)

	lastLine string
	lastSeen bool
}

// NewCompleter returns a Completer that escapes candidates with split.
func NewCompleter(split *token.Splitter) *Completer {
	if split == nil {
		split = token.NewSplitter()
	}
	return &Completer{split: split}
}

// Context builds the completion context for a cursor position in line.
// Tokenization runs in implicit-close mode, since completion must
// tolerate a half-typed quote.
func (c *Completer) Context(tree Tree, line string, cursor int) *Context {
	tokens, loc, _ := c.split.SplitCursor(line, cursor, true)
	if !loc.Valid() {
		// The splitter claims a cursor for every input; this is a
		// guard, not an expected path.
		tokens = append(tokens, "")
		loc = token.Location{Index: len(tokens) - 1, Offset: 0, Start: len(line)}
	}

	resolved := Resolve(tree, tokens)

	cur := tokens[loc.Index]
	off := loc.Offset
	if off > len(cur) {
		off = len(cur)
	}

	repeated := c.lastSeen && line == c.lastLine
	c.lastLine = line
	c.lastSeen = true

	return &Context{
		Tree:        tree,
		Line:        line,
		Cursor:      cursor,
		Tokens:      tokens,
		Resolved:    resolved,
		TokenIndex:  loc.Index,
		TokenOffset: off,
		WordStart:   loc.Start,
		Prefix:      cur[:off],
		ArgIndex:    loc.Index - len(resolved.Path),
		Repeated:    repeated,
	}
}

// Reset clears the repeated-request tracking. Call it after a line is
// executed or edited out from under the completer.
func (c *Completer) Reset() {
	c.lastLine = ""
	c.lastSeen = false
}

// Complete dispatches the completion rules for ctx and returns the
// candidates escaped for reinsertion into the edit line.
func (c *Completer) Complete(ctx *Context) []string {
	raw := c.complete(ctx)
	if len(raw) == 0 {
		return nil
	}
	out := make([]string, len(raw))
	for i, cand := range raw {
		out[i] = c.split.Escape(cand)
	}
	return out
}

func (c *Completer) complete(ctx *Context) []string {
	// Cursor on a command name: offer the names at that tree level.
	if ctx.TokenIndex < len(ctx.Resolved.Path) {
		return c.completeNames(ctx)
	}

	node := ctx.Resolved.Node
	if node == nil {
		return nil
	}

	switch rule := node.Complete.(type) {
	case nil:
		return nil
	case Candidates:
		return rule(ctx)
	case Choices:
		return append([]string(nil), rule...)
	case Positional:
		if ctx.ArgIndex < 0 || ctx.ArgIndex >= len(rule) {
			return nil
		}
		return c.completeSlot(rule[ctx.ArgIndex], ctx)
	case Hint:
		c.hint(ctx, string(rule))
	}
	return nil
}

// completeNames returns the visible command names at the cursor's tree
// level, filtered by the prefix.
func (c *Completer) completeNames(ctx *Context) []string {
	level := levelAt(ctx.Tree, ctx.Tokens, ctx.TokenIndex)
	var names []string
	for name, node := range level {
		if node.Hidden {
			continue
		}
		if !strings.HasPrefix(name, ctx.Prefix) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// completeSlot handles one slot of a Positional rule.
func (c *Completer) completeSlot(slot CompletionRule, ctx *Context) []string {
	switch r := slot.(type) {
	case Candidates:
		return r(ctx)
	case Choices:
		return append([]string(nil), r...)
	case Hint:
		c.hint(ctx, string(r))
	}
	return nil
}

// hint prints a reminder through the message side channel, but only on
// a repeated request for the same line. The first Tab stays silent so a
// stray completion keystroke does not spam the screen.
func (c *Completer) hint(ctx *Context, text string) {
	if ctx.Repeated && c.Message != nil {
		c.Message(text)
	}
}
