// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

package popup

import (
	"github.com/lovelace-tools/ll-popups/lib/areaid"
	"github.com/lovelace-tools/ll-popups/lib/doctree"
)

// Instantiate produces a room's pop-up stack from a template. The template
// is deep-cloned first and never mutated; the returned stack shares no
// structure with it or with any other room's output.
//
// Three passes run over the clone, in order:
//
//  1. Token substitution: every string scalar equal to a placeholder token
//     is replaced (__AREA_NAME__ → room, __AREA_ID__ → areaID, __HASH__ →
//     the canonical hash, __ICON__ → the icon map value). An __ICON__
//     token with no icon map entry for the room stays in place unresolved;
//     removing the field instead would silently change documents that
//     rely on the current behavior.
//  2. Structural heuristics: every mapping key literally named `area` is
//     forced to areaID, and every `target` mapping containing `area_id`
//     has that value forced. This binds templates authored without
//     placeholder tokens.
//  3. Canonical override: the first card's identity fields are forced:
//     name to the room (literal, not normalized), hash to the canonical
//     hash, and icon to the icon map value when one exists. Identity
//     fields end up canonical no matter how the template was authored.
//
// The second return reports whether an icon value was applied anywhere.
func Instantiate(template *doctree.Node, room, areaID string, icons map[string]string) (*doctree.Node, bool) {
	stack := template.Clone()

	icon, hasIcon := "", false
	if icons != nil {
		icon, hasIcon = icons[room]
	}

	replacements := map[string]string{
		TokenAreaName: room,
		TokenAreaID:   areaID,
		TokenHash:     areaid.Hash(areaID),
	}

	iconApplied := false
	doctree.Walk(stack, func(n *doctree.Node) {
		value, ok := n.StringValue()
		if !ok {
			return
		}
		if replacement, ok := replacements[value]; ok {
			n.Value = replacement
			return
		}
		if value == TokenIcon && hasIcon {
			n.Value = icon
			iconApplied = true
		}
	})

	doctree.Walk(stack, func(n *doctree.Node) {
		if n.Kind != doctree.Mapping {
			return
		}
		for i := range n.Pairs {
			switch n.Pairs[i].Key {
			case "area":
				forceValue(&n.Pairs[i], areaID)
			case "target":
				target := n.Pairs[i].Value
				if target.Kind == doctree.Mapping {
					if _, ok := target.Get("area_id"); ok {
						forceField(target, "area_id", areaID)
					}
				}
			}
		}
	})

	if bubble := firstCard(stack); bubble != nil && bubble.Kind == doctree.Mapping {
		if _, ok := bubble.Get("name"); ok {
			forceField(bubble, "name", room)
		}
		if _, ok := bubble.Get("hash"); ok {
			forceField(bubble, "hash", areaid.Hash(areaID))
		}
		if _, ok := bubble.Get("icon"); ok && hasIcon {
			forceField(bubble, "icon", icon)
			iconApplied = true
		}
	}

	return stack, iconApplied
}

// forceField sets an existing mapping field to a string value. No-op when
// the field is absent: Instantiate only forces fields the template author
// chose to include.
func forceField(mapping *doctree.Node, key, value string) {
	for i := range mapping.Pairs {
		if mapping.Pairs[i].Key == key {
			forceValue(&mapping.Pairs[i], value)
			return
		}
	}
}

// forceValue overwrites a mapping entry's value with a string, mutating
// scalar nodes in place so their comments survive, and replacing
// non-scalar values outright.
func forceValue(pair *doctree.Pair, value string) {
	if pair.Value.Kind == doctree.Scalar {
		pair.Value.Value = value
		return
	}
	pair.Value = doctree.String(value)
}
