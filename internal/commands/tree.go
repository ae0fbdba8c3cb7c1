// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// tree.go - The command tree and its node/action/completion variants.
package commands

import "sort"

// =============================================================================
// COMMAND TREE
// =============================================================================

// Tree maps command names to their definitions. Insertion order is not
// significant; completion candidates are reported sorted.
//
// The engine never mutates a Tree except to canonicalize a synonym
// node's target during resolution, which is an idempotent rewrite, not
// a semantic change.
type Tree map[string]*Node

// NoArgs is the MaxArgs value for commands that accept no arguments at
// all. The zero value already means "unbounded", so an explicit
// sentinel covers the maximum-of-zero case.
const NoArgs = -1

// Names returns the command names in the tree, sorted.
func (t Tree) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// =============================================================================
// COMMAND NODE
// =============================================================================

// Node is one entry in a command tree. All fields are optional.
//
// A node with a non-empty Sub tree is a namespace: resolution descends
// into Sub for trailing tokens, and the node's own Action, Complete,
// and argument bounds are ignored (only Description and Help apply).
type Node struct {
	// Description is a one-line summary shown in help and namespace
	// listings. DescriptionFunc, when set, takes precedence and is
	// evaluated at display time.
	Description     string
	DescriptionFunc func() string

	// Help is the long help text, rendered when the user asks for
	// detail on this command. HelpFunc takes precedence when set.
	Help     string
	HelpFunc func() string

	// MinArgs and MaxArgs bound the argument count. Zero means
	// unbounded on that side; the invoker only enforces set bounds.
	// MaxArgs of NoArgs rejects all arguments, which a positive value
	// cannot express.
	MinArgs int
	MaxArgs int

	// Action determines what happens when the command runs. One of
	// Func, ArgsFunc, or Literal; nil means the command does nothing
	// on its own.
	Action Action

	// Complete determines how arguments are tab-completed. One of
	// Candidates, Choices, Positional, or Hint; nil disables argument
	// completion.
	Complete CompletionRule

	// Sub makes this node a namespace holding nested commands.
	Sub Tree

	// Synonym redirects resolution to another name in the same tree
	// level. Chains must terminate; a cyclic chain is a configuration
	// error and resolves to nothing.
	Synonym string

	// Hidden suppresses the node from completion candidate lists. It
	// still resolves by exact name.
	Hidden bool
}

// Describe returns the node's one-line summary.
func (n *Node) Describe() string {
	if n.DescriptionFunc != nil {
		return n.DescriptionFunc()
	}
	return n.Description
}

// LongHelp returns the node's long help text, falling back to the
// one-line summary.
func (n *Node) LongHelp() string {
	if n.HelpFunc != nil {
		return n.HelpFunc()
	}
	if n.Help != "" {
		return n.Help
	}
	return n.Describe()
}

// =============================================================================
// ACTION VARIANTS
// =============================================================================

// Action is the sealed set of things a command can do when invoked:
// a Func receiving the full invocation context, an ArgsFunc receiving
// only the arguments, or a Literal emitted verbatim.
type Action interface {
	isAction()
}

// Func is an action invoked with the full invocation context.
type Func func(inv *Invocation) error

// ArgsFunc is an action invoked with the remaining arguments alone.
type ArgsFunc func(args []string) error

// Literal is a fixed string printed verbatim when the command runs.
type Literal string

func (Func) isAction()     {}
func (ArgsFunc) isAction() {}
func (Literal) isAction()  {}

// =============================================================================
// COMPLETION RULE VARIANTS
// =============================================================================

// CompletionRule is the sealed set of argument-completion behaviors:
// Candidates computes a list per call, Choices is a fixed list,
// Positional holds one rule per argument position, and Hint prints a
// reminder instead of enumerating candidates.
type CompletionRule interface {
	isCompletionRule()
}

// Candidates computes completion candidates from the completion context.
type Candidates func(ctx *Context) []string

// Choices is a fixed list of completion candidates.
type Choices []string

// Positional holds one completion rule per argument position. Each slot
// may be a Candidates func, a Choices list, a Hint, or nil.
type Positional []CompletionRule

// Hint is a reminder string shown through the completion message
// side channel on a repeated completion request.
type Hint string

func (Candidates) isCompletionRule() {}
func (Choices) isCompletionRule()    {}
func (Positional) isCompletionRule() {}
func (Hint) isCompletionRule()       {}
