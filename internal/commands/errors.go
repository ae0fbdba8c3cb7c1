// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"
)

// =============================================================================
// ERROR KINDS
// =============================================================================

// NotFoundError reports that no command matched the input. Path holds
// the names that were attempted, including the one that failed to
// resolve.
type NotFoundError struct {
	Path []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: command not found", strings.Join(e.Path, " "))
}

// TooFewArgsError reports an argument count below the command's minimum.
type TooFewArgsError struct {
	Path []string
	Min  int
}

func (e *TooFewArgsError) Error() string {
	return fmt.Sprintf("%s: expected at least %d argument(s)",
		strings.Join(e.Path, " "), e.Min)
}

// TooManyArgsError reports an argument count above the command's maximum.
type TooManyArgsError struct {
	Path []string
	Max  int
}

func (e *TooManyArgsError) Error() string {
	return fmt.Sprintf("%s: expected at most %d argument(s)",
		strings.Join(e.Path, " "), e.Max)
}

// ActionError wraps a failure raised inside a command action. Failures
// are caught at the invoker boundary and never abort the surrounding
// loop.
type ActionError struct {
	Path []string
	Err  error
}

func (e *ActionError) Error() string {
	return fmt.Sprintf("%s: %v", strings.Join(e.Path, " "), e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}
