// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import "testing"

func TestRootDispatchesVersion(t *testing.T) {
	if err := Root().Execute([]string{"version"}); err != nil {
		t.Errorf("version command failed: %v", err)
	}
}

func TestRootHasCoreCommands(t *testing.T) {
	root := Root()
	found := make(map[string]bool)
	for _, sub := range root.Subcommands {
		found[sub.Name] = true
	}
	for _, name := range []string{"generate", "validate", "version"} {
		if !found[name] {
			t.Errorf("root command tree is missing %q", name)
		}
	}
}
