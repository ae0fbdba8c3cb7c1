// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestInvokeArgBounds(t *testing.T) {
	var got []string
	tree := Tree{
		"take": &Node{
			MinArgs: 1,
			MaxArgs: 2,
			Action: ArgsFunc(func(args []string) error {
				got = args
				return nil
			}),
		},
	}
	iv := NewInvoker(&bytes.Buffer{})

	tests := []struct {
		tokens  []string
		wantErr string // "", "few", or "many"
	}{
		{[]string{"take"}, "few"},
		{[]string{"take", "a"}, ""},
		{[]string{"take", "a", "b"}, ""},
		{[]string{"take", "a", "b", "c"}, "many"},
	}

	for _, tc := range tests {
		err := iv.Invoke(tree, tc.tokens)
		switch tc.wantErr {
		case "":
			if err != nil {
				t.Errorf("Invoke(%v) error: %v", tc.tokens, err)
			} else if !sliceEq(got, tc.tokens[1:]) {
				t.Errorf("Invoke(%v) args = %v", tc.tokens, got)
			}
		case "few":
			var few *TooFewArgsError
			if !errors.As(err, &few) {
				t.Errorf("Invoke(%v) = %v, want TooFewArgsError", tc.tokens, err)
			} else if few.Min != 1 {
				t.Errorf("Min = %d, want 1", few.Min)
			}
		case "many":
			var many *TooManyArgsError
			if !errors.As(err, &many) {
				t.Errorf("Invoke(%v) = %v, want TooManyArgsError", tc.tokens, err)
			} else if many.Max != 2 {
				t.Errorf("Max = %d, want 2", many.Max)
			}
		}
	}
}

func TestInvokeNoArgs(t *testing.T) {
	ran := false
	tree := Tree{
		"stop": &Node{
			MaxArgs: NoArgs,
			Action:  ArgsFunc(func(args []string) error { ran = true; return nil }),
		},
	}
	iv := NewInvoker(&bytes.Buffer{})

	if err := iv.Invoke(tree, []string{"stop"}); err != nil {
		t.Fatalf("Invoke(stop) error: %v", err)
	}
	if !ran {
		t.Fatal("action was not invoked")
	}

	err := iv.Invoke(tree, []string{"stop", "now"})
	var many *TooManyArgsError
	if !errors.As(err, &many) {
		t.Fatalf("Invoke(stop now) = %v, want TooManyArgsError", err)
	}
	if many.Max != 0 {
		t.Errorf("Max = %d, want 0", many.Max)
	}
}

func TestInvokeNotFound(t *testing.T) {
	iv := NewInvoker(&bytes.Buffer{})

	err := iv.Invoke(testTree(), []string{"config", "bogus"})
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Invoke = %v, want NotFoundError", err)
	}
	if !sliceEq(nf.Path, []string{"config", "bogus"}) {
		t.Errorf("Path = %v, want [config bogus]", nf.Path)
	}
}

func TestInvokeLiteral(t *testing.T) {
	var out bytes.Buffer
	tree := Tree{"version": &Node{Action: Literal("rigshell 1.0")}}

	if err := NewInvoker(&out).Invoke(tree, []string{"version"}); err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if out.String() != "rigshell 1.0\n" {
		t.Errorf("output = %q", out.String())
	}
}

func TestInvokeFuncContext(t *testing.T) {
	var inv *Invocation
	tree := Tree{
		"show": &Node{
			Action: Func(func(i *Invocation) error {
				inv = i
				return nil
			}),
		},
	}
	var out bytes.Buffer

	if err := NewInvoker(&out).Invoke(tree, []string{"show", "x"}); err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if inv == nil {
		t.Fatal("action was not invoked")
	}
	if !sliceEq(inv.Path, []string{"show"}) || !sliceEq(inv.Args, []string{"x"}) {
		t.Errorf("Invocation = path %v args %v", inv.Path, inv.Args)
	}
	if inv.Out != &out {
		t.Error("Invocation.Out is not the invoker writer")
	}
}

func TestInvokeNamespaceSummary(t *testing.T) {
	var out bytes.Buffer
	tree := testTree()

	if err := NewInvoker(&out).Invoke(tree, []string{"config"}); err != nil {
		t.Fatalf("Invoke error: %v", err)
	}
	if !strings.Contains(out.String(), "network") ||
		!strings.Contains(out.String(), "Network settings") {
		t.Errorf("summary output = %q", out.String())
	}
}

func TestInvokeActionErrorCaught(t *testing.T) {
	boom := errors.New("boom")
	tree := Tree{
		"fail": &Node{
			Action: ArgsFunc(func(args []string) error { return boom }),
		},
		"panic": &Node{
			Action: Func(func(i *Invocation) error { panic("unexpected") }),
		},
	}
	iv := NewInvoker(&bytes.Buffer{})

	err := iv.Invoke(tree, []string{"fail"})
	var ae *ActionError
	if !errors.As(err, &ae) {
		t.Fatalf("Invoke = %v, want ActionError", err)
	}
	if !errors.Is(err, boom) {
		t.Error("ActionError does not wrap the underlying error")
	}

	// A panicking action is caught at the boundary, not propagated.
	err = iv.Invoke(tree, []string{"panic"})
	if !errors.As(err, &ae) {
		t.Fatalf("Invoke = %v, want ActionError from panic", err)
	}
	if !strings.Contains(ae.Error(), "panic") {
		t.Errorf("error = %v", ae)
	}
}

func TestInvokeNilActionLeaf(t *testing.T) {
	tree := Tree{"noop": &Node{Description: "Does nothing"}}

	if err := NewInvoker(&bytes.Buffer{}).Invoke(tree, []string{"noop"}); err != nil {
		t.Errorf("Invoke = %v, want nil", err)
	}
}

func sliceEq(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
