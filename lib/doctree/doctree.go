// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

// Package doctree models dashboard documents as an untyped recursive tree.
//
// A Node is one of three kinds: Mapping (ordered key→node entries with
// unique keys), Sequence (ordered list of nodes), or Scalar (string, number,
// boolean, or null). The pop-up engine operates entirely on this model and
// never sees the on-disk representation; the yamldoc package converts
// between this tree and YAML.
//
// Nodes carry opaque comment fields so a document loaded from a
// comment-bearing source can be written back without losing operator
// annotations on untouched entries. The engine never reads or interprets
// comments.
package doctree

// Kind discriminates the three node variants.
type Kind int

const (
	// Scalar is a leaf value: string, number, bool, or nil.
	Scalar Kind = iota
	// Mapping is an ordered set of key→node entries with unique keys.
	Mapping
	// Sequence is an ordered list of nodes.
	Sequence
)

// String returns the kind name for error messages.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Node is a single value in a document tree. Exactly one of Value, Pairs,
// or Items is meaningful, selected by Kind.
type Node struct {
	Kind Kind

	// Value holds the scalar payload (Kind == Scalar): a string, an
	// integer or float, a bool, or nil.
	Value any

	// Pairs holds mapping entries in document order (Kind == Mapping).
	Pairs []Pair

	// Items holds sequence elements in document order (Kind == Sequence).
	Items []*Node

	// Comments carried through from the source document. Opaque to the
	// engine; preserved across a load/save round trip.
	HeadComment string
	LineComment string
	FootComment string
}

// Pair is a single mapping entry.
type Pair struct {
	Key   string
	Value *Node
}

// String returns a new string scalar node.
func String(value string) *Node {
	return &Node{Kind: Scalar, Value: value}
}

// ScalarOf returns a new scalar node holding any leaf value.
func ScalarOf(value any) *Node {
	return &Node{Kind: Scalar, Value: value}
}

// Map returns a new mapping node with the given entries.
func Map(pairs ...Pair) *Node {
	return &Node{Kind: Mapping, Pairs: pairs}
}

// Seq returns a new sequence node with the given items.
func Seq(items ...*Node) *Node {
	return &Node{Kind: Sequence, Items: items}
}

// KV builds a mapping entry, for use with Map.
func KV(key string, value *Node) Pair {
	return Pair{Key: key, Value: value}
}

// Get returns the value for key in a mapping node. The second return is
// false when the node is not a mapping or the key is absent.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil || n.Kind != Mapping {
		return nil, false
	}
	for _, pair := range n.Pairs {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return nil, false
}

// Set replaces the value for key in a mapping node, preserving the entry's
// position. If the key is absent, the entry is appended. Set panics if the
// node is not a mapping: callers always know the shape at the call site.
func (n *Node) Set(key string, value *Node) {
	if n.Kind != Mapping {
		panic("doctree: Set on " + n.Kind.String() + " node")
	}
	for i := range n.Pairs {
		if n.Pairs[i].Key == key {
			n.Pairs[i].Value = value
			return
		}
	}
	n.Pairs = append(n.Pairs, Pair{Key: key, Value: value})
}

// StringValue returns the node's value when it is a string scalar.
func (n *Node) StringValue() (string, bool) {
	if n == nil || n.Kind != Scalar {
		return "", false
	}
	value, ok := n.Value.(string)
	return value, ok
}

// Clone returns a structurally independent deep copy: no node, pair slice,
// or item slice is shared with the original. Scalar payloads are Go value
// types, so copying the Value field is sufficient at the leaves.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{
		Kind:        n.Kind,
		Value:       n.Value,
		HeadComment: n.HeadComment,
		LineComment: n.LineComment,
		FootComment: n.FootComment,
	}
	if n.Pairs != nil {
		clone.Pairs = make([]Pair, len(n.Pairs))
		for i, pair := range n.Pairs {
			clone.Pairs[i] = Pair{Key: pair.Key, Value: pair.Value.Clone()}
		}
	}
	if n.Items != nil {
		clone.Items = make([]*Node, len(n.Items))
		for i, item := range n.Items {
			clone.Items[i] = item.Clone()
		}
	}
	return clone
}

// Walk visits every node in the tree in document order: the node itself,
// then mapping values in stored order, then sequence items in order. Both
// the token substitution pass and the structural heuristic pass of the
// instantiator are built on this single traversal.
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, pair := range n.Pairs {
		Walk(pair.Value, visit)
	}
	for _, item := range n.Items {
		Walk(item, visit)
	}
}
