// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands implements the hierarchical command system of the
// shell engine: the command tree, name resolution, tab completion, and
// invocation.
//
// # Key Types
//
//   - Tree: a mapping of command names to Node definitions
//   - Node: one command, namespace, or synonym entry
//   - Resolved: the result of matching tokens against a Tree
//   - Completer: builds completion contexts and dispatches completion rules
//   - Invoker: validates arguments and runs command actions
//
// # Usage
//
// Resolve and run a line of input:
//
//	tokens, _ := split.Split(line, false)
//	err := invoker.Invoke(tree, tokens)
//
// Get completions at a cursor position:
//
//	ctx := completer.Context(tree, line, cursor)
//	candidates := completer.Complete(ctx)
//
// Trees are plain map literals authored by the embedding application.
// Structural rules (synonym chains must resolve, namespace nodes ignore
// their action fields) are checked lazily during resolution, not at
// construction.
package commands
