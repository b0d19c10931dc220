// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

package yamldoc

import (
	"fmt"
	"strings"

	"github.com/lovelace-tools/ll-popups/lib/doctree"
	"github.com/lovelace-tools/ll-popups/lib/popup"
)

// requiredPlaceholders are the tokens every pop-up template must contain
// somewhere in its text. __ICON__ is deliberately absent: icons are
// optional and templates without one are valid.
var requiredPlaceholders = []string{popup.TokenAreaName, popup.TokenAreaID, popup.TokenHash}

// ValidateGrid checks that a document is a usable grid: a mapping root with
// type "grid" and a cards sequence. The engine assumes these hold.
func ValidateGrid(root *doctree.Node) error {
	if root == nil || root.Kind != doctree.Mapping {
		return fmt.Errorf("grid root must be a mapping")
	}
	if kind, _ := root.Get("type"); !scalarEquals(kind, popup.TypeGrid) {
		return fmt.Errorf("grid root must have type: %s", popup.TypeGrid)
	}
	cards, ok := root.Get("cards")
	if !ok || cards.Kind != doctree.Sequence {
		return fmt.Errorf("grid must contain a 'cards' list")
	}
	return nil
}

// ValidateTemplate checks that a document is a usable pop-up template: a
// vertical-stack mapping whose non-empty cards sequence starts with a
// bubble-card pop-up.
func ValidateTemplate(root *doctree.Node) error {
	if root == nil || root.Kind != doctree.Mapping {
		return fmt.Errorf("template root must be a mapping")
	}
	if kind, _ := root.Get("type"); !scalarEquals(kind, popup.TypeVerticalStack) {
		return fmt.Errorf("template root must have type: %s", popup.TypeVerticalStack)
	}
	cards, ok := root.Get("cards")
	if !ok || cards.Kind != doctree.Sequence || len(cards.Items) == 0 {
		return fmt.Errorf("template must contain a non-empty 'cards' list")
	}
	first := cards.Items[0]
	if first.Kind != doctree.Mapping {
		return fmt.Errorf("template first card must be a mapping")
	}
	if kind, _ := first.Get("type"); !scalarEquals(kind, popup.TypeBubbleCard) {
		return fmt.Errorf("template first card must have type: %s", popup.TypeBubbleCard)
	}
	if cardType, _ := first.Get("card_type"); !scalarEquals(cardType, popup.CardTypePopup) {
		return fmt.Errorf("template first card must have card_type: %s", popup.CardTypePopup)
	}
	return nil
}

// TemplateIssues lints a template file for the validate subcommand. It
// reports every problem it finds rather than stopping at the first, so an
// author can fix a template in one pass. raw is the file text (placeholder
// presence is checked textually, matching how templates are authored);
// root may be nil when parsing already failed.
func TemplateIssues(raw []byte, root *doctree.Node) []string {
	var issues []string

	text := string(raw)
	var missing []string
	for _, token := range requiredPlaceholders {
		if !strings.Contains(text, token) {
			missing = append(missing, token)
		}
	}
	if len(missing) > 0 {
		issues = append(issues, fmt.Sprintf("missing placeholders: %s", strings.Join(missing, ", ")))
	}

	if root == nil {
		return issues
	}
	if err := ValidateTemplate(root); err != nil {
		issues = append(issues, err.Error())
	}
	return issues
}

// scalarEquals reports whether node is a string scalar equal to want.
func scalarEquals(node *doctree.Node, want string) bool {
	value, ok := node.StringValue()
	return ok && value == want
}
