// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

// Package popup is the pop-up generation engine: it recognizes existing
// pop-up stacks in a grid dashboard, instantiates a stack template per
// room, and merges the result back into the grid.
//
// The engine operates on doctree documents and assumes boundary validation
// (yamldoc.ValidateGrid, yamldoc.ValidateTemplate) has already run. All
// operations are synchronous in-memory tree mutation; the grid is owned by
// the caller for the duration of a run and the template is never mutated.
package popup

import "fmt"

// Card type markers that identify a pop-up stack.
const (
	TypeGrid          = "grid"
	TypeVerticalStack = "vertical-stack"
	TypeBubbleCard    = "custom:bubble-card"
	CardTypePopup     = "pop-up"
)

// Placeholder tokens recognized during template instantiation. Tokens match
// by exact full-string equality against string scalars; they are never
// interpolated inside longer strings.
const (
	TokenAreaName = "__AREA_NAME__"
	TokenAreaID   = "__AREA_ID__"
	TokenHash     = "__HASH__"
	TokenIcon     = "__ICON__"
)

// Strategy selects how an existing pop-up stack is recognized as belonging
// to a room.
type Strategy string

const (
	// StrategyName matches on the BubbleCard name field, case-insensitive
	// and whitespace-trimmed.
	StrategyName Strategy = "name"
	// StrategyHash matches on exact equality of the BubbleCard hash field
	// with the room's canonical hash.
	StrategyHash Strategy = "hash"
	// StrategyArea matches on the first area reference found anywhere in
	// the stack subtree.
	StrategyArea Strategy = "area"
)

// ParseStrategy validates a strategy name from configuration or flags.
// This is the closed set; the matcher treats anything else as a
// programming error.
func ParseStrategy(value string) (Strategy, error) {
	switch Strategy(value) {
	case StrategyName, StrategyHash, StrategyArea:
		return Strategy(value), nil
	}
	return "", fmt.Errorf("unknown detection strategy %q (expected name, hash, or area)", value)
}

// InsertMode governs where a brand-new stack is placed when no existing
// entry matched.
type InsertMode string

const (
	// InsertAppend appends new stacks at the end of the card list.
	InsertAppend InsertMode = "append"
	// InsertKeepIndex keeps the matched entry's position on replacement.
	// With no prior match there is no index to keep, so it degenerates
	// to append.
	InsertKeepIndex InsertMode = "keep-index"
)

// ParseInsertMode validates an insert mode from configuration or flags.
func ParseInsertMode(value string) (InsertMode, error) {
	switch InsertMode(value) {
	case InsertAppend, InsertKeepIndex:
		return InsertMode(value), nil
	}
	return "", fmt.Errorf("unknown insert mode %q (expected append or keep-index)", value)
}

// Action describes what the merge engine did with a generated stack.
type Action string

const (
	// ActionReplaced overwrote an existing stack at its position.
	ActionReplaced Action = "replaced"
	// ActionAppended added a new stack at the end of the card list.
	ActionAppended Action = "appended"
)
