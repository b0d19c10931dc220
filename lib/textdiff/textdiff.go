// Copyright 2026 The Lovelace Tools Authors
// SPDX-License-Identifier: Apache-2.0

// Package textdiff produces unified diffs between two text documents.
// It backs the dry-run mode of the generator: the rendered YAML before
// and after a run is diffed line by line so the operator can review
// what would be written. The implementation is a longest common
// subsequence diff, sufficient for dashboard documents which are
// small.
package textdiff

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DefaultContext is the number of unchanged lines shown around each
// change in a hunk.
const DefaultContext = 3

// Unified returns a unified diff between two documents, labeled
// "before" and "after". Returns the empty string when the documents
// are identical. The context argument is the number of surrounding
// unchanged lines per hunk; values below zero are treated as
// DefaultContext.
func Unified(before, after string, context int) string {
	if before == after {
		return ""
	}
	if context < 0 {
		context = DefaultContext
	}

	ops := diffOps(splitLines(before), splitLines(after))
	hunks := groupHunks(ops, context)
	if len(hunks) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString("--- before\n")
	builder.WriteString("+++ after\n")
	for _, h := range hunks {
		builder.WriteString(h.header())
		builder.WriteByte('\n')
		for _, o := range h.ops {
			builder.WriteByte(o.kind)
			builder.WriteString(o.text)
			builder.WriteByte('\n')
		}
	}
	return builder.String()
}

// Render colorizes a unified diff for terminal display: removals red,
// additions green, hunk headers cyan. lipgloss downgrades the colors
// automatically when the output is not a terminal.
func Render(diff string) string {
	if diff == "" {
		return ""
	}

	removeStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	addStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	hunkStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headerStyle := lipgloss.NewStyle().Bold(true)

	lines := strings.Split(strings.TrimSuffix(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "--- ") || strings.HasPrefix(line, "+++ "):
			lines[i] = headerStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = hunkStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = removeStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = addStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// op is one diff line: kind is ' ', '-', or '+'.
type op struct {
	kind byte
	text string
}

// hunk is a run of ops with positional information for the header.
type hunk struct {
	oldStart, oldCount int
	newStart, newCount int
	ops                []op
}

func (h hunk) header() string {
	return fmt.Sprintf("@@ -%s +%s @@", formatRange(h.oldStart, h.oldCount), formatRange(h.newStart, h.newCount))
}

// formatRange renders one side of a hunk header. A single-line range
// omits the count. Empty ranges arrive already pointing at the line
// before the insertion.
func formatRange(start, count int) string {
	if count == 1 {
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d,%d", start, count)
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// diffOps produces the full op sequence between two line slices using
// a longest common subsequence table.
func diffOps(old, new []string) []op {
	oldLength := len(old)
	newLength := len(new)
	table := make([][]int, oldLength+1)
	for i := range table {
		table[i] = make([]int, newLength+1)
	}
	for i := 1; i <= oldLength; i++ {
		for j := 1; j <= newLength; j++ {
			if old[i-1] == new[j-1] {
				table[i][j] = table[i-1][j-1] + 1
			} else if table[i-1][j] >= table[i][j-1] {
				table[i][j] = table[i-1][j]
			} else {
				table[i][j] = table[i][j-1]
			}
		}
	}

	// Walk backwards, then reverse.
	var ops []op
	i, j := oldLength, newLength
	for i > 0 || j > 0 {
		if i > 0 && j > 0 && old[i-1] == new[j-1] {
			ops = append(ops, op{' ', old[i-1]})
			i--
			j--
		} else if j > 0 && (i == 0 || table[i][j-1] >= table[i-1][j]) {
			ops = append(ops, op{'+', new[j-1]})
			j--
		} else {
			ops = append(ops, op{'-', old[i-1]})
			i--
		}
	}
	for left, right := 0, len(ops)-1; left < right; left, right = left+1, right-1 {
		ops[left], ops[right] = ops[right], ops[left]
	}
	return ops
}

// groupHunks slices the op sequence into hunks: each hunk covers a run
// of changes plus up to context unchanged lines on both sides. Change
// runs separated by at most 2*context unchanged lines merge into one
// hunk.
func groupHunks(ops []op, context int) []hunk {
	// Old/new line counts consumed before each op, for hunk headers.
	oldBefore := make([]int, len(ops)+1)
	newBefore := make([]int, len(ops)+1)
	for i, o := range ops {
		oldBefore[i+1] = oldBefore[i]
		newBefore[i+1] = newBefore[i]
		if o.kind != '+' {
			oldBefore[i+1]++
		}
		if o.kind != '-' {
			newBefore[i+1]++
		}
	}

	var hunks []hunk
	i := 0
	for i < len(ops) {
		if ops[i].kind == ' ' {
			i++
			continue
		}

		start := i - context
		if start < 0 {
			start = 0
		}

		// Extend across change runs separated by small equal runs.
		lastChange := i
		j := i + 1
		for j < len(ops) {
			if ops[j].kind != ' ' {
				lastChange = j
				j++
				continue
			}
			run := 0
			k := j
			for k < len(ops) && ops[k].kind == ' ' {
				run++
				k++
			}
			if k < len(ops) && run <= 2*context {
				j = k
				continue
			}
			break
		}

		stop := lastChange + context + 1
		if stop > len(ops) {
			stop = len(ops)
		}

		h := hunk{ops: ops[start:stop]}
		for _, o := range h.ops {
			if o.kind != '+' {
				h.oldCount++
			}
			if o.kind != '-' {
				h.newCount++
			}
		}
		h.oldStart = oldBefore[start] + 1
		h.newStart = newBefore[start] + 1
		if h.oldCount == 0 {
			h.oldStart = oldBefore[start]
		}
		if h.newCount == 0 {
			h.newStart = newBefore[start]
		}
		hunks = append(hunks, h)
		i = stop
	}
	return hunks
}
