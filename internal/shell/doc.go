// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell ties the command engine to an interactive terminal
// session: a liner-backed read-eval loop with persistent history, tab
// completion wired to the command tree, and styled error reporting.
//
// The Session struct is the embedding surface. All interpreter state
// (prompt, tree, done flag, completion bookkeeping) lives on it; there
// are no package-level singletons, so an embedder can run independent
// sessions back to back.
package shell
