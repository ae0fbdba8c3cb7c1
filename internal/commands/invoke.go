// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
)

// =============================================================================
// INVOCATION CONTEXT
// =============================================================================

// Invocation is the full context handed to a Func action: the resolved
// command data plus the writer the action should print to.
type Invocation struct {
	Resolved

	// Out is where the action writes its human-readable output.
	Out io.Writer
}

// =============================================================================
// INVOKER
// =============================================================================

// Invoker resolves token sequences against a tree and runs the matched
// command. Argument-count violations and action failures are returned
// as typed errors; nothing here ever terminates the process.
type Invoker struct {
	// Out receives command output: Literal actions, namespace
	// summaries, and whatever Func actions print.
	Out io.Writer
}

// NewInvoker returns an Invoker writing to out (os.Stdout when nil).
func NewInvoker(out io.Writer) *Invoker {
	if out == nil {
		out = os.Stdout
	}
	return &Invoker{Out: out}
}

// Invoke resolves tokens and runs the matched command. Failures raised
// inside an action are caught here and wrapped in an ActionError; they
// never propagate past this boundary.
func (iv *Invoker) Invoke(tree Tree, tokens []string) (err error) {
	r := Resolve(tree, tokens)
	if r.Node == nil {
		return &NotFoundError{Path: r.Path}
	}
	n := r.Node

	// A namespace invoked bare lists its children; its own action and
	// argument bounds do not apply.
	if len(n.Sub) > 0 {
		iv.summarize(n.Sub)
		return nil
	}

	if n.MinArgs > 0 && len(r.Args) < n.MinArgs {
		return &TooFewArgsError{Path: r.Path, Min: n.MinArgs}
	}
	if n.MaxArgs == NoArgs && len(r.Args) > 0 {
		return &TooManyArgsError{Path: r.Path, Max: 0}
	}
	if n.MaxArgs > 0 && len(r.Args) > n.MaxArgs {
		return &TooManyArgsError{Path: r.Path, Max: n.MaxArgs}
	}

	defer func() {
		if p := recover(); p != nil {
			err = &ActionError{Path: r.Path, Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	switch action := n.Action.(type) {
	case nil:
		// Nothing to run.
	case Func:
		if aerr := action(&Invocation{Resolved: r, Out: iv.Out}); aerr != nil {
			return &ActionError{Path: r.Path, Err: aerr}
		}
	case ArgsFunc:
		if aerr := action(r.Args); aerr != nil {
			return &ActionError{Path: r.Path, Err: aerr}
		}
	case Literal:
		fmt.Fprintln(iv.Out, string(action))
	}
	return nil
}

// summarize prints one line per child command that declares a
// description, with the names left-aligned in a single column.
func (iv *Invoker) summarize(tree Tree) {
	names := tree.Names()
	width := 0
	for _, name := range names {
		if tree[name].Describe() == "" {
			continue
		}
		if w := runewidth.StringWidth(name); w > width {
			width = w
		}
	}
	for _, name := range names {
		desc := tree[name].Describe()
		if desc == "" {
			continue
		}
		fmt.Fprintf(iv.Out, "  %s  %s\n", runewidth.FillRight(name, width), desc)
	}
}
