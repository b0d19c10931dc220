// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

// Package yamldoc is the YAML boundary for dashboard documents.
//
// It converts between on-disk YAML and the doctree model: parsing keeps
// mapping order and carries comments into the tree, serializing reattaches
// them, so a generate run rewrites only the entries it touched while
// operator comments on the rest of the document survive the round trip.
//
// The package also owns boundary validation (grid and template root shapes)
// and backup-file creation. The pop-up engine in lib/popup assumes these
// validations have already run.
package yamldoc

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lovelace-tools/ll-popups/lib/doctree"
)

// DefaultIndent is the indent width used when no explicit width is
// configured. Matches the Home Assistant dashboard editor's output.
const DefaultIndent = 2

// Parse decodes YAML bytes into a document tree.
func Parse(data []byte) (*doctree.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return nil, fmt.Errorf("parsing YAML: document is empty")
	}
	node, err := fromYAML(root.Content[0])
	if err != nil {
		return nil, err
	}
	// Comments before the first document line belong to the root node.
	if root.HeadComment != "" && node.HeadComment == "" {
		node.HeadComment = root.HeadComment
	}
	return node, nil
}

// Load reads and parses a YAML document from disk.
func Load(path string) (*doctree.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	node, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

// Marshal serializes a document tree to YAML with the given indent width.
func Marshal(node *doctree.Node, indent int) ([]byte, error) {
	if indent <= 0 {
		indent = DefaultIndent
	}
	encoded, err := toYAML(node)
	if err != nil {
		return nil, err
	}

	var buffer bytes.Buffer
	encoder := yaml.NewEncoder(&buffer)
	encoder.SetIndent(indent)
	if err := encoder.Encode(encoded); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return buffer.Bytes(), nil
}

// Save serializes a document tree and writes it to path.
func Save(path string, node *doctree.Node, indent int) error {
	data, err := Marshal(node, indent)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// fromYAML converts a decoded yaml.Node subtree into a doctree node.
// Aliases are expanded in place: the engine clones and mutates subtrees
// independently, so anchor sharing cannot be preserved through a run.
func fromYAML(y *yaml.Node) (*doctree.Node, error) {
	switch y.Kind {
	case yaml.AliasNode:
		return fromYAML(y.Alias)

	case yaml.ScalarNode:
		var value any
		if err := y.Decode(&value); err != nil {
			return nil, fmt.Errorf("line %d: decoding scalar: %w", y.Line, err)
		}
		return &doctree.Node{
			Kind:        doctree.Scalar,
			Value:       value,
			HeadComment: y.HeadComment,
			LineComment: y.LineComment,
			FootComment: y.FootComment,
		}, nil

	case yaml.MappingNode:
		node := &doctree.Node{
			Kind:        doctree.Mapping,
			HeadComment: y.HeadComment,
			LineComment: y.LineComment,
			FootComment: y.FootComment,
		}
		seen := make(map[string]bool, len(y.Content)/2)
		for i := 0; i+1 < len(y.Content); i += 2 {
			key := y.Content[i]
			value := y.Content[i+1]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key is not a scalar", key.Line)
			}
			if seen[key.Value] {
				return nil, fmt.Errorf("line %d: duplicate mapping key %q", key.Line, key.Value)
			}
			seen[key.Value] = true

			child, err := fromYAML(value)
			if err != nil {
				return nil, err
			}
			// YAML attaches head and foot comments of a mapping entry
			// to the key node; fold them onto the value so the tree
			// has a single comment carrier per entry.
			if key.HeadComment != "" {
				child.HeadComment = key.HeadComment
			}
			if key.FootComment != "" {
				child.FootComment = key.FootComment
			}
			if key.LineComment != "" && child.LineComment == "" {
				child.LineComment = key.LineComment
			}
			node.Pairs = append(node.Pairs, doctree.Pair{Key: key.Value, Value: child})
		}
		return node, nil

	case yaml.SequenceNode:
		node := &doctree.Node{
			Kind:        doctree.Sequence,
			HeadComment: y.HeadComment,
			LineComment: y.LineComment,
			FootComment: y.FootComment,
		}
		for _, item := range y.Content {
			child, err := fromYAML(item)
			if err != nil {
				return nil, err
			}
			node.Items = append(node.Items, child)
		}
		return node, nil

	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return nil, fmt.Errorf("line %d: empty document node", y.Line)
		}
		return fromYAML(y.Content[0])

	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", y.Line, y.Kind)
	}
}

// toYAML converts a doctree node into a yaml.Node tree for encoding.
func toYAML(n *doctree.Node) (*yaml.Node, error) {
	switch n.Kind {
	case doctree.Scalar:
		var y yaml.Node
		if err := y.Encode(n.Value); err != nil {
			return nil, fmt.Errorf("encoding scalar %v: %w", n.Value, err)
		}
		y.HeadComment = n.HeadComment
		y.LineComment = n.LineComment
		y.FootComment = n.FootComment
		return &y, nil

	case doctree.Mapping:
		y := &yaml.Node{
			Kind:        yaml.MappingNode,
			Tag:         "!!map",
			HeadComment: n.HeadComment,
			LineComment: n.LineComment,
			FootComment: n.FootComment,
		}
		for _, pair := range n.Pairs {
			key := &yaml.Node{
				Kind:        yaml.ScalarNode,
				Tag:         "!!str",
				Value:       pair.Key,
				HeadComment: pair.Value.HeadComment,
				FootComment: pair.Value.FootComment,
			}
			value, err := toYAML(pair.Value)
			if err != nil {
				return nil, err
			}
			// Entry comments ride on the key node; clear them from the
			// value so they are not emitted twice.
			value.HeadComment = ""
			value.FootComment = ""
			y.Content = append(y.Content, key, value)
		}
		return y, nil

	case doctree.Sequence:
		y := &yaml.Node{
			Kind:        yaml.SequenceNode,
			Tag:         "!!seq",
			HeadComment: n.HeadComment,
			LineComment: n.LineComment,
			FootComment: n.FootComment,
		}
		for _, item := range n.Items {
			child, err := toYAML(item)
			if err != nil {
				return nil, err
			}
			y.Content = append(y.Content, child)
		}
		return y, nil

	default:
		return nil, fmt.Errorf("unsupported node kind %v", n.Kind)
	}
}
