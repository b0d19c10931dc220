// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

package yamldoc

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lovelace-tools/ll-popups/lib/doctree"
)

const gridYAML = `# Main floor dashboard
type: grid
cards:
  - type: vertical-stack
    cards:
      - type: custom:bubble-card
        card_type: pop-up
        name: Saloon # display name
        hash: "#saloon-popup"
  - type: markdown
    content: not a pop-up
`

func TestParsePreservesOrderAndTypes(t *testing.T) {
	root, err := Parse([]byte(gridYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if root.Kind != doctree.Mapping {
		t.Fatalf("root kind = %v, want mapping", root.Kind)
	}
	if root.Pairs[0].Key != "type" || root.Pairs[1].Key != "cards" {
		t.Errorf("mapping order not preserved: %q, %q", root.Pairs[0].Key, root.Pairs[1].Key)
	}

	cards, _ := root.Get("cards")
	if cards.Kind != doctree.Sequence || len(cards.Items) != 2 {
		t.Fatalf("cards: kind %v with %d items", cards.Kind, len(cards.Items))
	}

	bubbleCards, _ := cards.Items[0].Get("cards")
	bubble := bubbleCards.Items[0]
	name, _ := bubble.Get("name")
	if text, _ := name.StringValue(); text != "Saloon" {
		t.Errorf("bubble name = %q, want Saloon", text)
	}
}

func TestParseScalarTypes(t *testing.T) {
	root, err := Parse([]byte("count: 3\nratio: 1.5\nenabled: true\nempty: null\ntext: hello\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	count, _ := root.Get("count")
	if value, ok := count.Value.(int); !ok || value != 3 {
		t.Errorf("count = %v (%T), want int 3", count.Value, count.Value)
	}
	ratio, _ := root.Get("ratio")
	if value, ok := ratio.Value.(float64); !ok || value != 1.5 {
		t.Errorf("ratio = %v (%T), want float64 1.5", ratio.Value, ratio.Value)
	}
	enabled, _ := root.Get("enabled")
	if value, ok := enabled.Value.(bool); !ok || !value {
		t.Errorf("enabled = %v (%T), want true", enabled.Value, enabled.Value)
	}
	empty, _ := root.Get("empty")
	if empty.Value != nil {
		t.Errorf("empty = %v, want nil", empty.Value)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty input", ""},
		{"malformed", "type: [unclosed"},
		{"duplicate keys", "a: 1\na: 2\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Parse([]byte(test.in)); err == nil {
				t.Error("Parse succeeded, want error")
			}
		})
	}
}

func TestRoundTripKeepsComments(t *testing.T) {
	root, err := Parse([]byte(gridYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := Marshal(root, DefaultIndent)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	text := string(out)
	if !strings.Contains(text, "# Main floor dashboard") {
		t.Errorf("head comment lost in round trip:\n%s", text)
	}
	if !strings.Contains(text, "# display name") {
		t.Errorf("line comment lost in round trip:\n%s", text)
	}
}

func TestRoundTripKeepsMappingLineComment(t *testing.T) {
	const in = `type: grid
cards: []
layout: # editor managed
  max_cols: 4
`
	root, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := Marshal(root, DefaultIndent)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(out), "# editor managed") {
		t.Errorf("inline comment on a mapping value lost in round trip:\n%s", out)
	}
}

func TestRoundTripIsStable(t *testing.T) {
	root, err := Parse([]byte(gridYAML))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	first, err := Marshal(root, DefaultIndent)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	reparsed, err := Parse(first)
	if err != nil {
		t.Fatalf("Parse of marshaled output: %v", err)
	}
	second, err := Marshal(reparsed, DefaultIndent)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("round trip not stable:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "grid.yaml")
	if err := os.WriteFile(in, []byte(gridYAML), 0644); err != nil {
		t.Fatal(err)
	}

	root, err := Load(in)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	out := filepath.Join(dir, "out.yaml")
	if err := Save(out, root, 2); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded, err := Load(out)
	if err != nil {
		t.Fatalf("Load of saved file: %v", err)
	}
	if err := ValidateGrid(reloaded); err != nil {
		t.Errorf("saved grid no longer validates: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of missing file succeeded")
	}
}
