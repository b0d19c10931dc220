// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"

	"github.com/lovelace-tools/ll-popups/cmd/ll-popups/cli"
	"github.com/lovelace-tools/ll-popups/lib/yamldoc"
)

// validateCommand returns the "validate" subcommand for linting pop-up
// template files before they are used in a generate run.
func validateCommand() *cli.Command {
	return &cli.Command{
		Name:    "validate",
		Summary: "Lint a pop-up template file",
		Description: `Check a pop-up template for the problems a generate run would trip
over: missing placeholder tokens (__AREA_NAME__, __AREA_ID__,
__HASH__), a root that is not a vertical-stack, or a first card that
is not a Bubble Card pop-up.

All problems are reported in one pass. Exits 0 when the template is
valid, 1 otherwise.`,
		Usage: "ll-popups validate <template.yaml>",
		Examples: []cli.Example{
			{
				Description: "Validate a template before a generate run",
				Command:     "ll-popups validate popup-template.yaml",
			},
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("usage: ll-popups validate <template.yaml>")
			}
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}

			// A template that does not parse is still checked for
			// placeholders; the parse error itself becomes an issue.
			root, parseErr := yamldoc.Parse(data)
			issues := yamldoc.TemplateIssues(data, root)
			if parseErr != nil {
				issues = append(issues, parseErr.Error())
			}

			if len(issues) == 0 {
				fmt.Fprintf(os.Stdout, "%s: valid\n", path)
				return nil
			}
			for _, issue := range issues {
				fmt.Fprintf(os.Stdout, "%s: %s\n", path, issue)
			}
			return &cli.ExitError{Code: 1}
		},
	}
}
