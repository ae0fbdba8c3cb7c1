// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// help.go - Help rendering for the interactive shell.
//
// Overviews are aligned plain-text columns; long help is treated as
// markdown and rendered through glamour when stdout is a terminal.
package shell

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/jeranaias/rigshell/internal/commands"
	"github.com/jeranaias/rigshell/internal/ui/styles"
)

// descriptionWidth caps the summary column in overviews.
const descriptionWidth = 60

// markdownRenderer renders long help for terminal display. Nil when
// initialization failed; callers fall back to plain text.
var markdownRenderer *glamour.TermRenderer

func init() {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err == nil {
		markdownRenderer = r
	}
}

// HelpAction returns a full-context action that prints an overview of
// the session's tree, or detailed help for the command path given as
// arguments. Mount it wherever the embedding tree wants a help command.
func (s *Session) HelpAction() commands.Func {
	return func(inv *commands.Invocation) error {
		if len(inv.Args) == 0 {
			s.printOverview(inv.Out, s.tree)
			return nil
		}
		r := commands.Resolve(s.tree, inv.Args)
		if r.Node == nil {
			return &commands.NotFoundError{Path: r.Path}
		}
		s.printCommandHelp(inv.Out, r)
		return nil
	}
}

// printOverview lists every visible command at the top level.
func (s *Session) printOverview(w io.Writer, tree commands.Tree) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Header.Render("Available Commands"))
	fmt.Fprintln(w, styles.Info.Render(strings.Repeat("─", 20)))
	fmt.Fprintln(w)
	printTreeSummary(w, tree)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Info.Render("Use help <command> for details. Tab completes names and arguments."))
}

// printCommandHelp prints long help for one resolved command, plus its
// children when it is a namespace.
func (s *Session) printCommandHelp(w io.Writer, r commands.Resolved) {
	name := strings.Join(r.Path, " ")
	fmt.Fprintln(w)
	fmt.Fprintln(w, styles.Header.Render(name))

	if help := r.Node.LongHelp(); help != "" {
		fmt.Fprintln(w, renderMarkdown(w, help))
	}
	if len(r.Node.Sub) > 0 {
		fmt.Fprintln(w, styles.Info.Render("Subcommands:"))
		printTreeSummary(w, r.Node.Sub)
		fmt.Fprintln(w)
	}
}

// printTreeSummary writes one aligned line per visible child with a
// description. Synonyms are shown pointing at their target.
func printTreeSummary(w io.Writer, tree commands.Tree) {
	names := tree.Names()
	width := 0
	for _, name := range names {
		if nw := runewidth.StringWidth(name); nw > width {
			width = nw
		}
	}
	for _, name := range names {
		node := tree[name]
		if node.Hidden {
			continue
		}
		desc := node.Describe()
		if node.Synonym != "" {
			desc = "synonym for " + node.Synonym
		}
		if desc == "" {
			continue
		}
		fmt.Fprintf(w, "  %s  %s\n",
			styles.Command.Render(runewidth.FillRight(name, width)),
			styles.Info.Render(runewidth.Truncate(desc, descriptionWidth, "...")))
	}
}

// renderMarkdown renders help text as markdown when writing to a
// terminal, and returns it untouched otherwise.
func renderMarkdown(w io.Writer, text string) string {
	if markdownRenderer == nil || !isTerminal(w) {
		return text
	}
	rendered, err := markdownRenderer.Render(text)
	if err != nil {
		return text
	}
	return strings.TrimRight(rendered, "\n")
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
