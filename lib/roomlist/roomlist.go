// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

// Package roomlist loads the operator-maintained inputs of a generation
// run: the room list and the room-to-icon map. Both are JSONC files
// (JSON extended with // line comments, /* block comments */, and
// trailing commas) so operators can annotate their dashboards' source
// of truth. Comments are stripped before parsing.
package roomlist

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/jsonc"
)

// EnvIconMap is the environment variable holding an inline JSON icon
// map. Entries in it override entries loaded from the icon map file.
const EnvIconMap = "LL_ICON_MAP"

// LoadRooms reads a JSONC file containing an array of room display
// names. Names keep their exact spelling (they become BubbleCard
// titles); blank entries are rejected rather than skipped, since a
// blank room would normalize to an empty area ID and collide with any
// other blank entry.
func LoadRooms(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading room list: %w", err)
	}
	return ParseRooms(data, path)
}

// ParseRooms parses JSONC room list data. The name argument is used in
// error messages only.
func ParseRooms(data []byte, name string) ([]string, error) {
	stripped := jsonc.ToJSON(data)

	var rooms []string
	if err := json.Unmarshal(stripped, &rooms); err != nil {
		return nil, fmt.Errorf("parsing %s: expected a JSON array of room names: %w", name, err)
	}
	for i, room := range rooms {
		if strings.TrimSpace(room) == "" {
			return nil, fmt.Errorf("parsing %s: room at position %d is blank", name, i)
		}
	}
	return rooms, nil
}

// LoadIcons reads a JSONC file mapping room display names to icon
// values. Keys must match the room list spelling exactly; the lookup
// during instantiation is by display name, not by area ID.
func LoadIcons(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading icon map: %w", err)
	}
	stripped := jsonc.ToJSON(data)

	var icons map[string]string
	if err := json.Unmarshal(stripped, &icons); err != nil {
		return nil, fmt.Errorf("parsing %s: expected a JSON object of room-to-icon entries: %w", path, err)
	}
	return icons, nil
}

// IconsFromEnv parses the LL_ICON_MAP environment variable. Returns nil
// with no error when the variable is unset or empty; a set but
// malformed value is an error rather than a silent no-op.
func IconsFromEnv() (map[string]string, error) {
	raw, ok := os.LookupEnv(EnvIconMap)
	if !ok || strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var icons map[string]string
	if err := json.Unmarshal([]byte(raw), &icons); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", EnvIconMap, err)
	}
	return icons, nil
}

// MergeIcons layers icon maps left to right, later maps winning on key
// conflicts. Nil maps are skipped; the result is nil when every input
// is nil or empty.
func MergeIcons(maps ...map[string]string) map[string]string {
	var merged map[string]string
	for _, m := range maps {
		for room, icon := range m {
			if merged == nil {
				merged = make(map[string]string)
			}
			merged[room] = icon
		}
	}
	return merged
}
