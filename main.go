// rigshell - An embeddable interactive command shell.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/rigshell/internal/cli"
	"github.com/jeranaias/rigshell/internal/commands"
	"github.com/jeranaias/rigshell/internal/config"
	"github.com/jeranaias/rigshell/internal/shell"
	"github.com/jeranaias/rigshell/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	args, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", styles.ErrorTag(), err)
		fmt.Fprint(os.Stderr, cli.Usage())
		os.Exit(2)
	}
	if args.Help {
		fmt.Print(cli.Usage())
		return
	}
	if args.Version {
		fmt.Println(versionString())
		return
	}

	if args.NoColor || !styles.Enabled() {
		styles.Disable()
	}

	cfg := loadConfig(args)

	split := cfg.Tokenizer.Splitter()
	s := shell.New(shell.Options{
		Prompt:      cfg.Prompt,
		HistoryFile: cfg.HistoryPath(),
		Splitter:    split,
	})
	s.SetTree(buildTree(s, cfg))

	// One-shot mode: run the command and exit without a prompt.
	if len(args.Command) > 0 {
		defer s.Close()
		if err := s.Execute(split.Join(args.Command)); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", styles.ErrorTag(), err)
			os.Exit(1)
		}
		return
	}

	watcher := watchConfig(args, s)
	if watcher != nil {
		defer watcher.Close()
	}

	fmt.Printf("rigshell %s (type %s for commands, %s to leave)\n",
		Version, styles.Command.Render("help"), styles.Command.Render("exit"))
	if err := s.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", styles.ErrorTag(), err)
		os.Exit(1)
	}
}

func versionString() string {
	return fmt.Sprintf("rigshell %s (commit %s, built %s)", Version, GitCommit, BuildDate)
}

// =============================================================================
// CONFIGURATION
// =============================================================================

// loadConfig merges the config file, environment, and command-line
// flags, in increasing order of precedence.
func loadConfig(args cli.Args) *config.Config {
	var cfg *config.Config
	var err error
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v (using defaults)\n", styles.ErrorTag(), err)
		cfg = config.Default()
	}
	cfg.ApplyEnvOverrides()

	if args.Prompt != "" {
		cfg.Prompt = args.Prompt
	}
	if args.HistoryFile != "" {
		cfg.HistoryFile = args.HistoryFile
	}
	if args.NoColor {
		cfg.Color = false
	}
	if !cfg.Color {
		styles.Disable()
	}
	return cfg
}

// watchConfig reloads the prompt when the config file changes on disk.
func watchConfig(args cli.Args, s *shell.Session) *config.Watcher {
	path := args.ConfigPath
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return nil
		}
		path = p
	}
	w, err := config.NewWatcher(path, time.Second, func(cfg *config.Config) {
		cfg.ApplyEnvOverrides()
		s.SetPrompt(cfg.Prompt)
	})
	if err != nil {
		return nil
	}
	if err := w.Watch(); err != nil {
		w.Close()
		return nil
	}
	return w
}

// =============================================================================
// COMMAND TREE
// =============================================================================

// buildTree assembles the built-in command set.
func buildTree(s *shell.Session, cfg *config.Config) commands.Tree {
	tree := commands.Tree{
		"help": {
			Description: "show available commands",
			Help:        "Without arguments, lists every command.\n\nWith a command name (and subcommand names), shows that command's detailed help.",
			Action:      s.HelpAction(),
		},
		"?": {Synonym: "help"},
		"version": {
			Description: "print version information",
			MaxArgs:     commands.NoArgs,
			Action:      commands.Literal(versionString()),
		},
		"session": {
			Description: "show session information",
			MaxArgs:     commands.NoArgs,
			Action: commands.Func(func(inv *commands.Invocation) error {
				fmt.Fprintf(inv.Out, "id:      %s\n", s.ID())
				fmt.Fprintf(inv.Out, "started: %s\n", s.Started().Format(time.RFC3339))
				fmt.Fprintf(inv.Out, "uptime:  %s\n", time.Since(s.Started()).Round(time.Second))
				return nil
			}),
		},
		"echo": {
			Description: "print arguments back",
			MinArgs:     1,
			Action: commands.ArgsFunc(func(args []string) error {
				fmt.Println(strings.Join(args, " "))
				return nil
			}),
			Complete: commands.Hint("echo <text>..."),
		},
		"history": {
			Description: "show recent input history",
			MaxArgs:     1,
			Help:        "Shows the last entries from the history file. An optional argument limits how many.",
			Action: commands.Func(func(inv *commands.Invocation) error {
				return printHistory(inv, cfg.HistoryPath())
			}),
		},
		"config": {
			Description: "inspect and change settings",
			Sub:         configTree(s, cfg),
		},
		"exit": {
			Description: "leave the shell",
			MaxArgs:     commands.NoArgs,
			Action: commands.Func(func(inv *commands.Invocation) error {
				s.Quit()
				return nil
			}),
		},
		"quit": {Synonym: "exit"},
		"q":    {Synonym: "quit", Hidden: true},
	}
	return tree
}

// printHistory shows the tail of the history file.
func printHistory(inv *commands.Invocation, path string) error {
	if path == "" {
		fmt.Fprintln(inv.Out, "history is disabled")
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(inv.Out, "no history yet")
			return nil
		}
		return err
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	limit := 20
	if len(inv.Args) == 1 {
		n, err := strconv.Atoi(inv.Args[0])
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid count %q", inv.Args[0])
		}
		limit = n
	}
	if len(lines) > limit {
		lines = lines[len(lines)-limit:]
	}
	for _, line := range lines {
		fmt.Fprintln(inv.Out, line)
	}
	return nil
}

// configTree builds the config namespace.
func configTree(s *shell.Session, cfg *config.Config) commands.Tree {
	keyChoices := commands.Choices(config.Keys())

	return commands.Tree{
		"show": {
			Description: "print the current settings",
			MaxArgs:     commands.NoArgs,
			Action: commands.Func(func(inv *commands.Invocation) error {
				for _, key := range config.Keys() {
					value, err := cfg.Get(key)
					if err != nil {
						return err
					}
					fmt.Fprintf(inv.Out, "%s %s\n",
						runewidth.FillRight(key, 24), value)
				}
				return nil
			}),
		},
		"get": {
			Description: "print one setting",
			MinArgs:     1,
			MaxArgs:     1,
			Action: commands.Func(func(inv *commands.Invocation) error {
				value, err := cfg.Get(inv.Args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(inv.Out, value)
				return nil
			}),
			Complete: keyChoices,
		},
		"set": {
			Description: "change one setting for this session",
			Help:        "Changes apply to the running session only; edit the config file to make them permanent.",
			MinArgs:     2,
			MaxArgs:     2,
			Action: commands.Func(func(inv *commands.Invocation) error {
				if err := cfg.Set(inv.Args[0], inv.Args[1]); err != nil {
					return err
				}
				if inv.Args[0] == "prompt" {
					s.SetPrompt(cfg.Prompt)
				}
				return nil
			}),
			Complete: commands.Positional{
				keyChoices,
				commands.Candidates(func(ctx *commands.Context) []string {
					// Offer the current value as a starting point.
					if len(ctx.Resolved.Args) == 0 {
						return nil
					}
					value, err := cfg.Get(ctx.Resolved.Args[0])
					if err != nil || value == "" {
						return nil
					}
					return []string{value}
				}),
			},
		},
		"path": {
			Description: "print the config file location",
			MaxArgs:     commands.NoArgs,
			Action: commands.Func(func(inv *commands.Invocation) error {
				path, err := config.ConfigPath()
				if err != nil {
					return err
				}
				fmt.Fprintln(inv.Out, path)
				return nil
			}),
		},
	}
}
