// Package diagnostics renders a source position as a short, human-facing
// text window: the offending line plus a caret pointing at the column.
// It performs no I/O of its own — callers decide whether and where to
// print the result, keeping with the front end's "no files, no network"
// boundary; this package only formats text.
package diagnostics

import (
	"fmt"
	"strings"
)

// contextLines is how many lines of surrounding source to include above
// and below the offending line.
const contextLines = 1

// Window renders a caret-annotated view of source centered on line
// (1-based) and pointing at column (1-based). It is safe to call with an
// out-of-range line or column; the result degrades gracefully rather
// than panicking.
func Window(source string, line, column int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return fmt.Sprintf("(no source available at line %d)", line)
	}

	start := max(1, line-contextLines)
	end := min(len(lines), line+contextLines)

	width := len(fmt.Sprintf("%d", end))

	var out strings.Builder
	for n := start; n <= end; n++ {
		fmt.Fprintf(&out, "%*d | %s\n", width, n, lines[n-1])
		if n == line {
			fmt.Fprintf(&out, "%s | %s^\n", strings.Repeat(" ", width), caretPadding(column))
		}
	}

	return out.String()
}

// caretPadding returns column-1 spaces so the caret lands under the
// 1-based column it points at.
func caretPadding(column int) string {
	if column < 1 {
		return ""
	}
	return strings.Repeat(" ", column-1)
}
