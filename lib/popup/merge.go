// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

package popup

import "github.com/lovelace-tools/ll-popups/lib/doctree"

// ReplaceOrAppend merges an instantiated stack into a grid's card
// sequence. With a valid match index the stack overwrites that position;
// replacement never moves an entry. Without one the stack is appended;
// InsertKeepIndex has no index to keep in that case, so it falls back to
// appending as well (a documented degenerate case, not an error).
//
// Returns the index the stack ended up at and the action taken.
func ReplaceOrAppend(cards *doctree.Node, stack *doctree.Node, index int, mode InsertMode) (int, Action) {
	if index >= 0 && index < len(cards.Items) {
		cards.Items[index] = stack
		return index, ActionReplaced
	}

	_ = mode // Both modes append when there is no existing entry.
	cards.Items = append(cards.Items, stack)
	return len(cards.Items) - 1, ActionAppended
}
