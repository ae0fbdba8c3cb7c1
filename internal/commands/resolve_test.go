// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"reflect"
	"testing"
)

func testTree() Tree {
	return Tree{
		"help": &Node{
			Description: "Show help",
			Action:      Literal("help text"),
		},
		"h": &Node{Synonym: "help"},
		"config": &Node{
			Description: "Configuration",
			Sub: Tree{
				"network": &Node{
					Description: "Network settings",
					Sub: Tree{
						"set-dns": &Node{
							Description: "Set the DNS server",
							MinArgs:     1,
							MaxArgs:     1,
							Action:      ArgsFunc(func(args []string) error { return nil }),
						},
					},
				},
			},
		},
	}
}

func TestResolveNested(t *testing.T) {
	tree := testTree()
	tokens := []string{"config", "network", "set-dns", "8.8.8.8"}

	r := Resolve(tree, tokens)

	if r.Node == nil {
		t.Fatal("Node = nil, want set-dns")
	}
	if r.Node != tree["config"].Sub["network"].Sub["set-dns"] {
		t.Error("Node is not the set-dns node")
	}
	wantPath := []string{"config", "network", "set-dns"}
	if !reflect.DeepEqual(r.Path, wantPath) {
		t.Errorf("Path = %v, want %v", r.Path, wantPath)
	}
	if !reflect.DeepEqual(r.Args, []string{"8.8.8.8"}) {
		t.Errorf("Args = %v, want [8.8.8.8]", r.Args)
	}
}

func TestResolveLeaf(t *testing.T) {
	tree := testTree()

	r := Resolve(tree, []string{"help", "config"})

	if r.Node != tree["help"] {
		t.Fatal("Node is not the help node")
	}
	if !reflect.DeepEqual(r.Path, []string{"help"}) {
		t.Errorf("Path = %v, want [help]", r.Path)
	}
	if !reflect.DeepEqual(r.Args, []string{"config"}) {
		t.Errorf("Args = %v, want [config]", r.Args)
	}
}

func TestResolveSynonym(t *testing.T) {
	tree := testTree()
	tokens := []string{"h", "topic"}

	r := Resolve(tree, tokens)

	if r.Node != tree["help"] {
		t.Fatal("synonym did not resolve to help")
	}
	// The token is rewritten to the canonical name, so the path
	// reports "help" even though the user typed "h".
	if !reflect.DeepEqual(r.Path, []string{"help"}) {
		t.Errorf("Path = %v, want [help]", r.Path)
	}
	if tokens[0] != "help" {
		t.Errorf("tokens[0] = %q, want rewritten to help", tokens[0])
	}
	if !reflect.DeepEqual(r.Args, []string{"topic"}) {
		t.Errorf("Args = %v, want [topic]", r.Args)
	}
}

func TestResolveSynonymChainCanonicalized(t *testing.T) {
	tree := Tree{
		"quit": &Node{Action: Literal("bye")},
		"exit": &Node{Synonym: "quit"},
		"q":    &Node{Synonym: "exit"},
	}

	r := Resolve(tree, []string{"q"})
	if r.Node != tree["quit"] {
		t.Fatal("chain did not resolve to quit")
	}
	// The chain's first node now points directly at the final target.
	if tree["q"].Synonym != "quit" {
		t.Errorf("q.Synonym = %q, want quit", tree["q"].Synonym)
	}

	// Canonicalization is idempotent.
	r = Resolve(tree, []string{"q"})
	if r.Node != tree["quit"] || tree["q"].Synonym != "quit" {
		t.Error("second resolution changed the outcome")
	}
}

func TestResolveSynonymCycle(t *testing.T) {
	tree := Tree{
		"a": &Node{Synonym: "b"},
		"b": &Node{Synonym: "a"},
	}

	r := Resolve(tree, []string{"a"})
	if r.Node != nil {
		t.Errorf("Node = %v, want nil for a cyclic synonym chain", r.Node)
	}
	if !reflect.DeepEqual(r.Path, []string{"a"}) {
		t.Errorf("Path = %v, want [a]", r.Path)
	}
}

func TestResolveSynonymDangling(t *testing.T) {
	tree := Tree{
		"x": &Node{Synonym: "gone"},
	}

	r := Resolve(tree, []string{"x"})
	if r.Node != nil {
		t.Errorf("Node = %v, want nil for a dangling synonym", r.Node)
	}
}

func TestResolveMiss(t *testing.T) {
	tree := testTree()

	r := Resolve(tree, []string{"bogus", "arg1", "arg2"})

	if r.Node != nil {
		t.Fatalf("Node = %v, want nil", r.Node)
	}
	// The attempted name stays in the path so the caller can report it.
	if !reflect.DeepEqual(r.Path, []string{"bogus"}) {
		t.Errorf("Path = %v, want [bogus]", r.Path)
	}
	if !reflect.DeepEqual(r.Args, []string{"arg1", "arg2"}) {
		t.Errorf("Args = %v, want [arg1 arg2]", r.Args)
	}
}

func TestResolveMissInsideNamespace(t *testing.T) {
	tree := testTree()

	r := Resolve(tree, []string{"config", "bogus", "x"})

	if r.Node != nil {
		t.Fatalf("Node = %v, want nil", r.Node)
	}
	if !reflect.DeepEqual(r.Path, []string{"config", "bogus"}) {
		t.Errorf("Path = %v, want [config bogus]", r.Path)
	}
	if !reflect.DeepEqual(r.Args, []string{"x"}) {
		t.Errorf("Args = %v, want [x]", r.Args)
	}
}

func TestResolveBareNamespace(t *testing.T) {
	tree := testTree()

	r := Resolve(tree, []string{"config"})

	if r.Node != tree["config"] {
		t.Fatal("Node is not the config namespace")
	}
	if !reflect.DeepEqual(r.Path, []string{"config"}) {
		t.Errorf("Path = %v, want [config]", r.Path)
	}
	if len(r.Args) != 0 {
		t.Errorf("Args = %v, want empty", r.Args)
	}
}

func TestResolveEmpty(t *testing.T) {
	tree := testTree()

	r := Resolve(tree, nil)
	if r.Node != nil || len(r.Path) != 0 || len(r.Args) != 0 {
		t.Errorf("Resolve(nil) = %+v, want empty result", r)
	}
}
