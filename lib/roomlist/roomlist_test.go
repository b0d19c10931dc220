// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

package roomlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadRooms(t *testing.T) {
	path := writeFile(t, "rooms.jsonc", `// Ground floor, in dashboard order.
[
  "Saloon",
  "Wohnzimmer",
  "Große Küche", // trailing comma is fine
]
`)
	rooms, err := LoadRooms(path)
	if err != nil {
		t.Fatalf("LoadRooms failed: %v", err)
	}
	want := []string{"Saloon", "Wohnzimmer", "Große Küche"}
	if diff := cmp.Diff(want, rooms); diff != "" {
		t.Errorf("rooms mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadRoomsRejectsBlankEntry(t *testing.T) {
	path := writeFile(t, "rooms.jsonc", `["Saloon", "  "]`)
	if _, err := LoadRooms(path); err == nil {
		t.Error("blank room entry should be rejected")
	}
}

func TestLoadRoomsRejectsNonArray(t *testing.T) {
	path := writeFile(t, "rooms.jsonc", `{"Saloon": true}`)
	if _, err := LoadRooms(path); err == nil {
		t.Error("non-array room list should be rejected")
	}
}

func TestLoadRoomsMissingFile(t *testing.T) {
	if _, err := LoadRooms(filepath.Join(t.TempDir(), "absent.jsonc")); err == nil {
		t.Error("missing file should be an error")
	}
}

func TestLoadIcons(t *testing.T) {
	path := writeFile(t, "icons.jsonc", `{
  /* keys are display names, not area IDs */
  "Saloon": "mdi:glass-mug",
  "Große Küche": "mdi:stove",
}
`)
	icons, err := LoadIcons(path)
	if err != nil {
		t.Fatalf("LoadIcons failed: %v", err)
	}
	want := map[string]string{
		"Saloon":      "mdi:glass-mug",
		"Große Küche": "mdi:stove",
	}
	if diff := cmp.Diff(want, icons); diff != "" {
		t.Errorf("icons mismatch (-want +got):\n%s", diff)
	}
}

func TestIconsFromEnv(t *testing.T) {
	t.Setenv(EnvIconMap, `{"Keller": "mdi:stairs-down"}`)
	icons, err := IconsFromEnv()
	if err != nil {
		t.Fatalf("IconsFromEnv failed: %v", err)
	}
	if icons["Keller"] != "mdi:stairs-down" {
		t.Errorf("icons = %v", icons)
	}
}

func TestIconsFromEnvUnset(t *testing.T) {
	t.Setenv(EnvIconMap, "")
	icons, err := IconsFromEnv()
	if err != nil {
		t.Fatalf("IconsFromEnv failed on empty value: %v", err)
	}
	if icons != nil {
		t.Errorf("empty variable should yield nil, got %v", icons)
	}
}

func TestIconsFromEnvMalformed(t *testing.T) {
	t.Setenv(EnvIconMap, `{"Keller": `)
	if _, err := IconsFromEnv(); err == nil {
		t.Error("malformed LL_ICON_MAP should be an error, not a silent no-op")
	}
}

func TestMergeIconsLaterWins(t *testing.T) {
	fileIcons := map[string]string{"Saloon": "mdi:glass-mug", "Keller": "mdi:stairs-down"}
	envIcons := map[string]string{"Saloon": "mdi:beer"}

	merged := MergeIcons(fileIcons, envIcons)
	want := map[string]string{"Saloon": "mdi:beer", "Keller": "mdi:stairs-down"}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeIconsAllNil(t *testing.T) {
	if merged := MergeIcons(nil, nil); merged != nil {
		t.Errorf("merging nil maps should yield nil, got %v", merged)
	}
}
