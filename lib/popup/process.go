// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

package popup

import (
	"fmt"
	"log/slog"

	"github.com/lovelace-tools/ll-popups/lib/areaid"
	"github.com/lovelace-tools/ll-popups/lib/doctree"
)

// Options configures a batch run over a room list.
type Options struct {
	// Strategy selects how existing stacks are matched to rooms.
	Strategy Strategy

	// InsertMode governs placement of stacks for rooms with no match.
	InsertMode InsertMode

	// Icons maps room names (exact strings, not area IDs) to icon values.
	// Nil means no icon substitution.
	Icons map[string]string
}

// ProcessRooms generates or refreshes the pop-up stack for every room, in
// list order, mutating grid in place. It returns one report line per
// processed room: "<room>: replaced at index <n>" or "<room>: appended at
// index <n>".
//
// Duplicate matches for a room are a soft inconsistency: a warning is
// logged through the injected logger with the kept and duplicate indices,
// the first match wins, and processing continues. A malformed grid or an
// unknown strategy aborts the batch; rooms already processed keep their
// changes (the caller holds the mutated grid either way).
//
// Running the same batch twice leaves the document unchanged after the
// second run: each freshly written stack carries canonical name, hash, and
// area bindings, so the second run matches it under any strategy and
// replaces it with an identical structure.
func ProcessRooms(logger *slog.Logger, grid *doctree.Node, rooms []string, template *doctree.Node, opts Options) ([]string, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	cards, ok := grid.Get("cards")
	if !ok || cards.Kind != doctree.Sequence {
		return nil, fmt.Errorf("grid card structure is malformed: expected 'cards' list")
	}

	reports := make([]string, 0, len(rooms))
	for _, room := range rooms {
		areaID := areaid.Normalize(room)

		match, err := FindExisting(grid, room, areaID, opts.Strategy)
		if err != nil {
			return reports, fmt.Errorf("room %q: %w", room, err)
		}
		if len(match.Duplicates) > 0 {
			logger.Warn("multiple pop-up stacks matched; only the first will be replaced",
				"room", room,
				"kept_index", match.Index,
				"duplicate_indices", match.Duplicates)
		}

		stack, iconApplied := Instantiate(template, room, areaID, opts.Icons)
		if _, hasIcon := opts.Icons[room]; hasIcon && !iconApplied {
			logger.Warn("icon map entry was not applied; template has no icon field or __ICON__ token",
				"room", room)
		}

		index, action := ReplaceOrAppend(cards, stack, match.Index, opts.InsertMode)
		reports = append(reports, fmt.Sprintf("%s: %s at index %d", room, action, index))
	}
	return reports, nil
}
