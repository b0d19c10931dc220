// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/lovelace-tools/ll-popups/cmd/ll-popups/cli"
	"github.com/lovelace-tools/ll-popups/lib/config"
	"github.com/lovelace-tools/ll-popups/lib/popup"
	"github.com/lovelace-tools/ll-popups/lib/roomlist"
	"github.com/lovelace-tools/ll-popups/lib/textdiff"
	"github.com/lovelace-tools/ll-popups/lib/yamldoc"
)

// generateCommand returns the "generate" subcommand: the main operation
// that merges generated pop-up stacks into a dashboard grid.
func generateCommand() *cli.Command {
	var (
		gridIn     string
		gridOut    string
		roomsPath  string
		template   string
		iconMap    string
		configPath string
		strategy   string
		insertMode string
		indent     int
		dryRun     bool
		backup     bool
	)

	return &cli.Command{
		Name:    "generate",
		Summary: "Generate pop-up stacks from a template",
		Description: `Generate one pop-up stack per room and merge the results into a grid
dashboard. Rooms that already have a pop-up stack get it replaced in
place; rooms without one get a new stack appended. Cards that are not
pop-up stacks are never touched, and YAML comments on untouched
entries survive the rewrite.

Without --grid-out the rewritten document is printed to stdout and no
file is written. --backup only applies when --grid-out points back at
the input file.

Settings fall back from flags to LL_POPUPS_* environment variables to
the optional config file named by LL_POPUPS_CONFIG. Icon map entries
from the LL_ICON_MAP environment variable override entries from
--icon-map.`,
		Usage: "ll-popups generate --grid-in <file> --rooms <file> --template <file> [flags]",
		Examples: []cli.Example{
			{
				Description: "Preview what a run would change",
				Command:     "ll-popups generate --grid-in dashboard.yaml --rooms rooms.jsonc --template popup.yaml --dry-run",
			},
			{
				Description: "Rewrite the dashboard in place, keeping a one-time backup",
				Command:     "ll-popups generate --grid-in dashboard.yaml --rooms rooms.jsonc --template popup.yaml --grid-out dashboard.yaml --backup",
			},
			{
				Description: "Match existing stacks by canonical hash and write elsewhere",
				Command:     "ll-popups generate --grid-in dashboard.yaml --rooms rooms.jsonc --template popup.yaml --detect-by hash --grid-out new.yaml",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("generate", pflag.ContinueOnError)
			flagSet.StringVar(&gridIn, "grid-in", "", "dashboard grid YAML file (required)")
			flagSet.StringVar(&gridOut, "grid-out", "", "output file (default: print the result to stdout)")
			flagSet.StringVar(&roomsPath, "rooms", "", "room list JSONC file (required)")
			flagSet.StringVar(&template, "template", "", "pop-up template YAML file (required)")
			flagSet.StringVar(&iconMap, "icon-map", "", "room-to-icon JSONC file")
			flagSet.StringVar(&configPath, "config", "", "config file (default: $LL_POPUPS_CONFIG)")
			flagSet.StringVar(&strategy, "detect-by", "", "matching strategy: name, hash, or area (default: name)")
			flagSet.StringVar(&insertMode, "insert-mode", "", "placement for new stacks: append or keep-index (default: append)")
			flagSet.IntVar(&indent, "indent", 0, "YAML indent width (default: 2)")
			flagSet.BoolVar(&dryRun, "dry-run", false, "print a diff instead of writing")
			flagSet.BoolVar(&backup, "backup", false, "keep a .bak copy before the first in-place overwrite")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument %q; inputs are passed via flags", args[0])
			}
			if gridIn == "" || roomsPath == "" || template == "" {
				return fmt.Errorf("--grid-in, --rooms, and --template are required")
			}

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			// Flags override the config when set.
			if strategy != "" {
				cfg.Strategy = strategy
			}
			if insertMode != "" {
				cfg.InsertMode = insertMode
			}
			if indent != 0 {
				cfg.Indent = indent
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			// Validate guarantees both parses succeed.
			detectBy, _ := popup.ParseStrategy(cfg.Strategy)
			placement, _ := popup.ParseInsertMode(cfg.InsertMode)

			grid, err := yamldoc.Load(gridIn)
			if err != nil {
				return err
			}
			if err := yamldoc.ValidateGrid(grid); err != nil {
				return fmt.Errorf("%s: %w", gridIn, err)
			}

			templateDoc, err := yamldoc.Load(template)
			if err != nil {
				return err
			}
			if err := yamldoc.ValidateTemplate(templateDoc); err != nil {
				return fmt.Errorf("%s: %w", template, err)
			}

			rooms, err := roomlist.LoadRooms(roomsPath)
			if err != nil {
				return err
			}

			icons, err := loadIcons(iconMap)
			if err != nil {
				return err
			}

			before, err := yamldoc.Marshal(grid, cfg.Indent)
			if err != nil {
				return err
			}

			logger := cli.NewCommandLogger().With("command", "generate")
			reports, err := popup.ProcessRooms(logger, grid, rooms, templateDoc, popup.Options{
				Strategy:   detectBy,
				InsertMode: placement,
				Icons:      icons,
			})
			if err != nil {
				return err
			}

			after, err := yamldoc.Marshal(grid, cfg.Indent)
			if err != nil {
				return err
			}

			if dryRun {
				for _, report := range reports {
					fmt.Fprintln(os.Stdout, report)
				}
				diff := textdiff.Unified(string(before), string(after), textdiff.DefaultContext)
				if diff == "" {
					fmt.Fprintln(os.Stdout, "No changes detected.")
					return nil
				}
				fmt.Fprint(os.Stdout, textdiff.Render(diff))
				return nil
			}

			// Without an output file the result goes to stdout.
			if gridOut == "" {
				if _, err := os.Stdout.Write(after); err != nil {
					return fmt.Errorf("writing to stdout: %w", err)
				}
				return nil
			}

			// Backups only guard in-place rewrites; a distinct output
			// file leaves the input intact on its own.
			if backup && samePath(gridIn, gridOut) {
				backupPath, created, err := yamldoc.Backup(gridOut)
				if err != nil {
					return err
				}
				if created {
					logger.Info("backup written", "path", backupPath)
				} else {
					logger.Info("backup already exists", "path", backupPath)
				}
			}
			if err := os.WriteFile(gridOut, after, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", gridOut, err)
			}
			for _, report := range reports {
				logger.Info(report)
			}
			return nil
		},
	}
}

// samePath reports whether two paths name the same file once made
// absolute. Used to decide whether a write is an in-place rewrite.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return absA == absB
}

// loadConfig resolves the effective configuration: an explicit --config
// path wins over the LL_POPUPS_CONFIG environment variable.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	return config.Load()
}

// loadIcons merges the icon map file (when given) with LL_ICON_MAP
// environment entries, the environment winning on conflicts.
func loadIcons(path string) (map[string]string, error) {
	var fileIcons map[string]string
	if path != "" {
		loaded, err := roomlist.LoadIcons(path)
		if err != nil {
			return nil, err
		}
		fileIcons = loaded
	}

	envIcons, err := roomlist.IconsFromEnv()
	if err != nil {
		return nil, err
	}

	return roomlist.MergeIcons(fileIcons, envIcons), nil
}
