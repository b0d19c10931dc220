// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

package yamldoc

import (
	"fmt"
	"os"
)

// Backup copies path to path+".bak" and reports whether a backup was
// created. An existing backup is never overwritten: the first backup of a
// dashboard is the one taken before any generated change, which is the one
// an operator wants to roll back to.
func Backup(path string) (backupPath string, created bool, err error) {
	backupPath = path + ".bak"

	if _, err := os.Stat(backupPath); err == nil {
		return backupPath, false, nil
	} else if !os.IsNotExist(err) {
		return backupPath, false, fmt.Errorf("checking backup %s: %w", backupPath, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return backupPath, false, fmt.Errorf("reading %s for backup: %w", path, err)
	}
	if err := os.WriteFile(backupPath, data, 0644); err != nil {
		return backupPath, false, fmt.Errorf("writing backup %s: %w", backupPath, err)
	}
	return backupPath, true, nil
}
