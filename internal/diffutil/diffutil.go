// Package diffutil compares two binding-document listings and renders a
// plain-text change report, shown to the user after an import.
package diffutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Change describes one changed line between two listings.
type Change struct {
	Op   diffmatchpatch.Operation // DiffInsert or DiffDelete
	Line string
}

// Changes computes the line-level changes between two listings, such as
// the Summary output of two binding documents. Unchanged lines are
// omitted.
func Changes(before, after string) []Change {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 5 * time.Second

	// Line-mode diff: compare whole lines, not characters.
	beforeRunes, afterRunes, lineStrs := dmp.DiffLinesToRunes(before, after)
	diffs := dmp.DiffMainRunes(beforeRunes, afterRunes, false)
	diffs = dmp.DiffCharsToLines(diffs, lineStrs)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var changes []Change
	for _, d := range diffs {
		if d.Type == diffmatchpatch.DiffEqual {
			continue
		}
		for _, line := range strings.Split(d.Text, "\n") {
			if line == "" {
				continue
			}
			changes = append(changes, Change{Op: d.Type, Line: line})
		}
	}
	return changes
}

// Report renders the changes between two listings as a human-readable
// block: a one-line count followed by -/+ prefixed lines. It returns
// the empty string when nothing changed.
func Report(before, after string) string {
	changes := Changes(before, after)
	if len(changes) == 0 {
		return ""
	}

	removed, added := 0, 0
	var b strings.Builder
	for _, c := range changes {
		switch c.Op {
		case diffmatchpatch.DiffDelete:
			removed++
			fmt.Fprintf(&b, "- %s\n", c.Line)
		case diffmatchpatch.DiffInsert:
			added++
			fmt.Fprintf(&b, "+ %s\n", c.Line)
		}
	}

	header := fmt.Sprintf("%d binding(s) removed, %d binding(s) added or changed\n", removed, added)
	return header + b.String()
}
