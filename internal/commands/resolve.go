// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

// =============================================================================
// RESOLUTION
// =============================================================================

// Resolved is the outcome of matching a token sequence against a tree.
// It is produced fresh per call and never persisted.
type Resolved struct {
	// Tree is the tree level where the final name lookup happened.
	Tree Tree

	// Node is the deepest matched command, or nil when the final name
	// resolved to nothing.
	Node *Node

	// Path holds the canonicalized names consumed by resolution. On a
	// miss it still includes the attempted name, so callers can report
	// which command does not exist.
	Path []string

	// Args holds the tokens left over after the matched path.
	Args []string
}

// Resolve matches tokens against tree, following synonyms and
// descending into namespaces. It never fails; an unmatched name is
// represented by a nil Node.
//
// Synonym tokens are rewritten in place to their canonical names, so
// the caller's token slice reflects the resolved path afterwards.
func Resolve(tree Tree, tokens []string) Resolved {
	return resolveFrom(tree, tokens, 0)
}

func resolveFrom(tree Tree, tokens []string, start int) Resolved {
	if start >= len(tokens) {
		return Resolved{Tree: tree}
	}

	node := lookup(tree, tokens, start)

	// A namespace with trailing tokens hands them to its subtree.
	if node != nil && len(node.Sub) > 0 && start < len(tokens)-1 {
		return resolveFrom(node.Sub, tokens, start+1)
	}

	return Resolved{
		Tree: tree,
		Node: node,
		Path: append([]string(nil), tokens[:start+1]...),
		Args: append([]string(nil), tokens[start+1:]...),
	}
}

// lookup finds tokens[start] in tree, following synonym chains. The
// chain's first node is canonicalized to point directly at the final
// target, and the token is rewritten to the canonical name. A chain
// that does not terminate (cycle or dangling target) resolves to nil.
func lookup(tree Tree, tokens []string, start int) *Node {
	name := tokens[start]
	node := tree[name]
	if node == nil || node.Synonym == "" {
		return node
	}

	first := node
	seen := map[string]bool{name: true}
	target := node.Synonym
	for {
		if seen[target] {
			return nil
		}
		seen[target] = true
		next := tree[target]
		if next == nil {
			return nil
		}
		if next.Synonym == "" {
			first.Synonym = target
			tokens[start] = target
			return next
		}
		target = next.Synonym
	}
}

// levelAt returns the tree level containing tokens[idx], walking the
// already-canonicalized token prefix. It is used by completion when the
// cursor sits on a command name rather than an argument.
func levelAt(tree Tree, tokens []string, idx int) Tree {
	cur := tree
	for i := 0; i < idx && i < len(tokens); i++ {
		node := cur[tokens[i]]
		if node == nil || len(node.Sub) == 0 {
			break
		}
		cur = node.Sub
	}
	return cur
}
