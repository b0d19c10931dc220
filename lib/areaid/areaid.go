// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

// Package areaid derives Home Assistant area identifiers from room names.
//
// An area ID is the canonical slug a Home Assistant installation assigns to
// an area: lowercase ASCII letters, digits, and underscores. Every canonical
// pop-up artifact (the hash, the area bindings inside templated cards) is
// keyed on this slug, so Normalize is the single source of truth for the
// room → identifier mapping.
package areaid

import (
	"strings"
)

// transliterations maps the German characters that appear in real-world
// Home Assistant area names to their ASCII expansions. Applied before
// character classification so "ß" survives as "ss" instead of being dropped.
var transliterations = map[rune]string{
	'ä': "ae",
	'ö': "oe",
	'ü': "ue",
	'ß': "ss",
}

// Normalize returns the area ID slug for a room name.
//
// The input is trimmed and lowercased, transliterated per the table above,
// and then filtered: alphanumeric runes are kept, space and slash become
// underscores, and every other rune is dropped. Normalize is total (never
// fails) and idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(name string) string {
	var slug strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		if expansion, ok := transliterations[r]; ok {
			slug.WriteString(expansion)
			continue
		}
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			slug.WriteRune(r)
		case r == ' ' || r == '/':
			slug.WriteByte('_')
		}
		// Everything else, accented letters without a transliteration
		// entry included, is dropped: the slug must stay within
		// [a-z0-9_] to be a valid Home Assistant identifier.
	}
	return slug.String()
}

// Hash returns the canonical pop-up hash for an area ID: "#<areaID>-popup".
// This is the value a pop-up stack's BubbleCard carries in its hash field.
func Hash(areaID string) string {
	return "#" + areaID + "-popup"
}
