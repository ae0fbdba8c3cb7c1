// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// session.go - Interactive session state and the read-eval loop.
//
// The loop is single-threaded and cooperative: one line is read,
// tokenized, resolved, and invoked to completion before the next line
// is read. The only suspension point is waiting for input; a
// long-running action blocks the loop on purpose.
package shell

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/peterh/liner"

	"github.com/jeranaias/rigshell/internal/commands"
	"github.com/jeranaias/rigshell/internal/token"
	"github.com/jeranaias/rigshell/internal/ui/styles"
	"github.com/jeranaias/rigshell/internal/util"
)

// =============================================================================
// OPTIONS
// =============================================================================

// Options configures a new Session. Zero-value fields fall back to
// sensible defaults.
type Options struct {
	// Prompt is displayed before each input line.
	Prompt string

	// HistoryFile is where input history is persisted. Empty disables
	// persistence.
	HistoryFile string

	// Tree is the command tree the session dispatches against. The
	// embedder may mutate it between invocations.
	Tree commands.Tree

	// Splitter is the tokenizer configuration. Nil selects a plain
	// whitespace splitter.
	Splitter *token.Splitter

	// Out and ErrOut receive command output and error reports.
	Out    io.Writer
	ErrOut io.Writer
}

// =============================================================================
// SESSION
// =============================================================================

// Session is one interactive shell: a command tree, a tokenizer, a
// line editor, and the loop state binding them together.
type Session struct {
	id string

	// promptMu guards prompt: SetPrompt may be called from another
	// goroutine (e.g. a config watcher) while Run is reading it.
	promptMu sync.Mutex
	prompt   string

	tree commands.Tree
	split     *token.Splitter
	completer *commands.Completer
	invoker   *commands.Invoker

	line        *liner.State
	historyFile string

	out    io.Writer
	errOut io.Writer

	started time.Time
	done    bool
}

// New creates a Session and prepares the line editor. Call Close (or
// let Run do it) to restore the terminal and save history.
func New(opts Options) *Session {
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}
	if opts.Splitter == nil {
		opts.Splitter = token.NewSplitter()
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}
	if opts.Tree == nil {
		opts.Tree = commands.Tree{}
	}

	s := &Session{
		id:          uuid.NewString(),
		prompt:      opts.Prompt,
		tree:        opts.Tree,
		split:       opts.Splitter,
		historyFile: opts.HistoryFile,
		out:         opts.Out,
		errOut:      opts.ErrOut,
		started:     time.Now(),
	}
	s.completer = commands.NewCompleter(s.split)
	s.completer.Message = s.completionMessage
	s.invoker = commands.NewInvoker(s.out)

	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)
	line.SetWordCompleter(s.completeWord)
	s.line = line

	s.loadHistory()
	return s
}

// ID returns the session's unique identifier.
func (s *Session) ID() string { return s.id }

// Started returns when the session was created.
func (s *Session) Started() time.Time { return s.started }

// Tree returns the session's command tree.
func (s *Session) Tree() commands.Tree { return s.tree }

// SetTree replaces the command tree for subsequent lines.
func (s *Session) SetTree(tree commands.Tree) { s.tree = tree }

// Prompt returns the current prompt.
func (s *Session) Prompt() string {
	s.promptMu.Lock()
	defer s.promptMu.Unlock()
	return s.prompt
}

// SetPrompt replaces the prompt for subsequent lines. It is safe to
// call from another goroutine while the session runs.
func (s *Session) SetPrompt(prompt string) {
	s.promptMu.Lock()
	defer s.promptMu.Unlock()
	s.prompt = prompt
}

// Quit makes the loop stop after the current command returns.
func (s *Session) Quit() { s.done = true }

// =============================================================================
// READ-EVAL LOOP
// =============================================================================

// Run reads and executes lines until Quit is called or input ends.
// Command errors are reported and the loop continues; only the line
// editor failing is returned.
func (s *Session) Run() error {
	defer s.Close()

	for !s.done {
		input, err := s.line.Prompt(styles.Prompt.Render(s.Prompt()))
		if err != nil {
			// Ctrl+C at the prompt and EOF both end the session
			// gracefully.
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out)
				return nil
			}
			return err
		}
		s.completer.Reset()

		if strings.TrimSpace(input) == "" {
			continue
		}
		s.line.AppendHistory(input)

		if err := s.Execute(input); err != nil {
			s.reportError(err)
		}
	}
	return nil
}

// Execute tokenizes one input line and dispatches it against the tree.
func (s *Session) Execute(input string) error {
	tokens, err := s.split.Split(input, false)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}
	return s.invoker.Invoke(s.tree, tokens)
}

// reportError prints a command failure without aborting the loop.
func (s *Session) reportError(err error) {
	var notFound *commands.NotFoundError
	if errors.As(err, &notFound) {
		fmt.Fprintf(s.errOut, "%s %v (type %s for commands)\n",
			styles.ErrorTag(), err, styles.Command.Render("help"))
		return
	}
	fmt.Fprintf(s.errOut, "%s %v\n", styles.ErrorTag(), err)
}

// =============================================================================
// LINE PARSING
// =============================================================================

// ParseOptions controls ParseLine.
type ParseOptions struct {
	// CursorPos is the byte offset of the cursor, or -1 when no cursor
	// location is wanted.
	CursorPos int

	// FixUnterminatedQuote treats end of line as an implicit close
	// quote instead of failing.
	FixUnterminatedQuote bool

	// ReportErrors returns tokenization failures to the caller. When
	// false a malformed line is re-parsed in implicit-close mode.
	ReportErrors bool
}

// ParseLine exposes the session's tokenizer: it splits line into tokens
// and, when requested, locates the cursor within them.
func (s *Session) ParseLine(line string, opts ParseOptions) ([]string, token.Location, error) {
	fix := opts.FixUnterminatedQuote
	for {
		var tokens []string
		var loc token.Location
		var err error
		if opts.CursorPos >= 0 {
			tokens, loc, err = s.split.SplitCursor(line, opts.CursorPos, fix)
		} else {
			tokens, err = s.split.Split(line, fix)
			loc = token.Location{Index: -1}
		}
		if err == nil {
			return tokens, loc, nil
		}
		if opts.ReportErrors {
			return nil, token.Location{Index: -1}, err
		}
		// Swallow the failure by retrying with an implicit close.
		fix = true
	}
}

// =============================================================================
// HISTORY
// =============================================================================

func (s *Session) loadHistory() {
	if s.historyFile == "" {
		return
	}
	if f, err := os.Open(s.historyFile); err == nil {
		s.line.ReadHistory(f)
		f.Close()
	}
}

// saveHistory persists input history with owner-only permissions. The
// write is atomic so an interrupted exit cannot truncate the file.
func (s *Session) saveHistory() {
	if s.historyFile == "" {
		return
	}
	var buf bytes.Buffer
	if _, err := s.line.WriteHistory(&buf); err != nil {
		return
	}
	util.AtomicWriteFile(s.historyFile, buf.Bytes(), 0600)
}

// Close saves history and restores the terminal.
func (s *Session) Close() {
	s.saveHistory()
	s.line.Close()
}
