// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package token splits raw input lines into shell words.
//
// The splitter understands single and double quotes, backslash escapes,
// and configurable single-character tokens, and can simultaneously track
// an editing cursor so that tab completion knows which word (and which
// position inside it) is being edited. The reverse operation, Join,
// re-escapes tokens for safe reinsertion into an edit line.
package token
