// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

package popup

import (
	"fmt"
	"strings"

	"github.com/lovelace-tools/ll-popups/lib/areaid"
	"github.com/lovelace-tools/ll-popups/lib/doctree"
)

// Match is the result of scanning a grid for a room's existing pop-up
// stack. Index is -1 when no entry matched. Duplicates lists every further
// matching index in scan order; duplicates are reported, never mutated or
// deleted, since an operator may have customized them.
type Match struct {
	Index      int
	Duplicates []int
}

// Found reports whether a canonical entry exists.
func (m Match) Found() bool {
	return m.Index >= 0
}

// FindExisting scans grid's top-level card list for the room's pop-up
// stack under the given strategy. Only entries that qualify as pop-up
// stacks (vertical-stack whose first card is a bubble-card pop-up) are
// considered; the first qualifying entry is the canonical match and any
// further ones are recorded as duplicates.
//
// Returns an error if the grid's cards field is not a sequence or the
// strategy is not one of the closed set; both abort the batch.
func FindExisting(grid *doctree.Node, room, areaID string, strategy Strategy) (Match, error) {
	cards, ok := grid.Get("cards")
	if !ok || cards.Kind != doctree.Sequence {
		return Match{Index: -1}, fmt.Errorf("grid card structure is malformed: expected 'cards' list")
	}

	wantName := strings.TrimSpace(room)
	wantHash := areaid.Hash(areaID)

	match := Match{Index: -1}
	for index, stack := range cards.Items {
		if !isPopupStack(stack) {
			continue
		}

		matched := false
		switch strategy {
		case StrategyName:
			matched = bubbleFieldFold(stack, "name", wantName)
		case StrategyHash:
			matched = bubbleFieldExact(stack, "hash", wantHash)
		case StrategyArea:
			if area, ok := extractArea(stack); ok && area == areaID {
				matched = true
			}
		default:
			return Match{Index: -1}, fmt.Errorf("unknown detection strategy: %q", strategy)
		}

		if !matched {
			continue
		}
		if match.Index < 0 {
			match.Index = index
		} else {
			match.Duplicates = append(match.Duplicates, index)
		}
	}
	return match, nil
}

// isPopupStack reports whether a grid entry is a pop-up stack: a
// vertical-stack mapping with a non-empty cards sequence whose first
// element is a bubble-card with card_type pop-up.
func isPopupStack(node *doctree.Node) bool {
	if node == nil || node.Kind != doctree.Mapping {
		return false
	}
	if kind, _ := node.Get("type"); !stringEquals(kind, TypeVerticalStack) {
		return false
	}
	first := firstCard(node)
	if first == nil || first.Kind != doctree.Mapping {
		return false
	}
	if kind, _ := first.Get("type"); !stringEquals(kind, TypeBubbleCard) {
		return false
	}
	cardType, _ := first.Get("card_type")
	return stringEquals(cardType, CardTypePopup)
}

// firstCard returns a stack's first card, or nil if the stack has no
// usable cards sequence.
func firstCard(stack *doctree.Node) *doctree.Node {
	cards, ok := stack.Get("cards")
	if !ok || cards.Kind != doctree.Sequence || len(cards.Items) == 0 {
		return nil
	}
	return cards.Items[0]
}

// bubbleFieldFold compares a string field of the stack's first card
// case-insensitively after trimming whitespace.
func bubbleFieldFold(stack *doctree.Node, field, want string) bool {
	value, ok := bubbleField(stack, field)
	return ok && strings.EqualFold(strings.TrimSpace(value), want)
}

// bubbleFieldExact compares a string field of the stack's first card for
// exact equality. Near-matches (case or whitespace differences) do not
// match: the canonical hash is machine-written and must be byte-identical.
func bubbleFieldExact(stack *doctree.Node, field, want string) bool {
	value, ok := bubbleField(stack, field)
	return ok && value == want
}

func bubbleField(stack *doctree.Node, field string) (string, bool) {
	first := firstCard(stack)
	if first == nil {
		return "", false
	}
	node, ok := first.Get(field)
	if !ok {
		return "", false
	}
	return node.StringValue()
}

// extractArea finds the first area reference in a stack subtree. The
// traversal order is a documented contract, observable through which of
// several candidate references wins: each node's direct fields are checked
// first (an `area` key with a string value, then a `target` mapping
// containing `area_id`), then mapping values in stored order, then
// sequence elements in order. An empty string from a nested node does not
// end the search; the enclosing traversal keeps looking at siblings.
func extractArea(node *doctree.Node) (string, bool) {
	if node == nil {
		return "", false
	}
	switch node.Kind {
	case doctree.Mapping:
		if area, ok := node.Get("area"); ok {
			if value, ok := area.StringValue(); ok {
				return value, true
			}
		}
		if target, ok := node.Get("target"); ok && target.Kind == doctree.Mapping {
			if id, ok := target.Get("area_id"); ok {
				if value, ok := id.StringValue(); ok {
					return value, true
				}
			}
		}
		for _, pair := range node.Pairs {
			if value, ok := extractArea(pair.Value); ok && value != "" {
				return value, true
			}
		}
	case doctree.Sequence:
		for _, item := range node.Items {
			if value, ok := extractArea(item); ok && value != "" {
				return value, true
			}
		}
	}
	return "", false
}

// stringEquals reports whether node is a string scalar equal to want.
func stringEquals(node *doctree.Node, want string) bool {
	value, ok := node.StringValue()
	return ok && value == want
}
