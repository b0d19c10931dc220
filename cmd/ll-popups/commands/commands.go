// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the ll-popups CLI command tree.
package commands

import (
	"fmt"

	"github.com/lovelace-tools/ll-popups/cmd/ll-popups/cli"
	"github.com/lovelace-tools/ll-popups/lib/version"
)

// Root builds and returns the complete ll-popups command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "ll-popups",
		Description: `ll-popups: Bubble Card pop-up generator for Lovelace dashboards.

Generate one pop-up stack per room from a template, replacing existing
stacks in place and appending new ones, without disturbing the rest of
the dashboard document.`,
		Subcommands: []*cli.Command{
			generateCommand(),
			validateCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("ll-popups %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
