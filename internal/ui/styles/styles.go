// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling for the interactive shell.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark
// detection.
package styles

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// =============================================================================
// COLORS
// =============================================================================

// Cyan - brand color, prompt, commands
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - success states, command names in listings
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - errors
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - warnings, hints
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// TextSecondary - informational text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#57534E", Dark: "#A8A29E"}

// =============================================================================
// SHARED STYLES
// =============================================================================

var (
	// Prompt styles the input prompt.
	Prompt = lipgloss.NewStyle().Foreground(Cyan).Bold(true)

	// Header styles section headers in help output.
	Header = lipgloss.NewStyle().Foreground(Cyan).Bold(true)

	// Info styles secondary informational text.
	Info = lipgloss.NewStyle().Foreground(TextSecondary)

	// Command styles command names.
	Command = lipgloss.NewStyle().Foreground(Emerald)

	// Warning styles cautionary text.
	Warning = lipgloss.NewStyle().Foreground(Amber)

	errorStyle = lipgloss.NewStyle().Foreground(Rose).Bold(true)
)

// ErrorTag returns the rendered prefix for error reports.
func ErrorTag() string {
	return errorStyle.Render("[Error]")
}

// =============================================================================
// COLOR CONTROL
// =============================================================================

// Disable forces plain-text output. Called for --no-color and when
// NO_COLOR is set (https://no-color.org/).
func Disable() {
	lipgloss.DefaultRenderer().SetColorProfile(termenv.Ascii)
}

// Enabled reports whether colored output should be used.
func Enabled() bool {
	return os.Getenv("NO_COLOR") == ""
}
