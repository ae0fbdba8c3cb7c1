// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Argument parsing for the rigshell binary.
//
// Handles the flag formats consistently:
//   - Long flags: --flag value or --flag=value
//   - Short flags: -f value
//   - Boolean flags: --flag (no value needed)
//   - Positional arguments: arguments without flags

// Package cli parses command-line arguments for the rigshell binary.
package cli

import (
	"fmt"
	"strings"
)

// Args holds parsed command-line arguments.
type Args struct {
	// ConfigPath overrides the default config file location.
	ConfigPath string

	// Prompt overrides the configured prompt.
	Prompt string

	// HistoryFile overrides the configured history file.
	HistoryFile string

	// NoColor disables styled output.
	NoColor bool

	// Version prints version information and exits.
	Version bool

	// Help prints usage and exits.
	Help bool

	// Command holds a one-shot command to execute instead of starting
	// the interactive loop (everything after the flags).
	Command []string
}

// boolFlags are flags that never take a value.
var boolFlags = map[string]bool{
	"no-color": true,
	"version":  true, "v": true,
	"help": true, "h": true,
}

// Parse parses raw command-line arguments (without the program name).
func Parse(raw []string) (Args, error) {
	var args Args

	i := 0
	for i < len(raw) {
		arg := raw[i]
		if !strings.HasPrefix(arg, "-") || arg == "-" {
			// First positional starts the one-shot command.
			args.Command = raw[i:]
			break
		}

		name := strings.TrimLeft(arg, "-")
		value := ""
		hasValue := false
		if eq := strings.Index(name, "="); eq >= 0 {
			name, value = name[:eq], name[eq+1:]
			hasValue = true
		}

		if !boolFlags[name] && !hasValue {
			if i+1 >= len(raw) {
				return args, fmt.Errorf("flag --%s requires a value", name)
			}
			i++
			value = raw[i]
		}

		switch name {
		case "config", "c":
			args.ConfigPath = value
		case "prompt", "p":
			args.Prompt = value
		case "history":
			args.HistoryFile = value
		case "no-color":
			args.NoColor = true
		case "version", "v":
			args.Version = true
		case "help", "h":
			args.Help = true
		default:
			return args, fmt.Errorf("unknown flag: %s", arg)
		}
		i++
	}

	return args, nil
}

// Usage returns the usage text for the binary.
func Usage() string {
	return `rigshell - interactive command shell

Usage:
  rigshell [flags]              Start the interactive shell
  rigshell [flags] <command>    Run one command and exit

Flags:
  -c, --config PATH    Use a specific config file
  -p, --prompt TEXT    Override the prompt
      --history PATH   Override the history file ("off" disables)
      --no-color       Disable styled output
  -v, --version        Print version and exit
  -h, --help           Show this help`
}
