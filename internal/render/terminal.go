// Package render draws a computed diagram layout onto an output. The
// layout is consumed as-is; nothing here recomputes statistics, and no
// canvas state survives between calls.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/ranklab/critdiff/internal/layout"
)

const axisWidth = 60

// Terminal writes a text rendering of a critical-difference diagram: the
// rank axis with its ticks, one positioned bar per algorithm in rank
// order, and the clique groupings of algorithms that are not significantly
// different.
func Terminal(w io.Writer, l *layout.DiagramLayout) {
	f := l.Frame
	span := f.Right - f.Left
	col := func(x float64) int {
		c := int((x - f.Left) / span * axisWidth)
		if c < 0 {
			c = 0
		}
		if c > axisWidth {
			c = axisWidth
		}
		return c
	}

	fmt.Fprintf(w, "\nCritical Difference Diagram (%s)\n\n", l.CDRule.Label)

	// Rank axis with major tick labels.
	axis := []rune(strings.Repeat("─", axisWidth+1))
	labels := []rune(strings.Repeat(" ", axisWidth+1))
	for _, tick := range l.Axis.Ticks {
		c := col(tick.X)
		if tick.Major {
			axis[c] = '┬'
			for i, r := range tick.Label {
				if c+i < len(labels) {
					labels[c+i] = r
				}
			}
		} else {
			axis[c] = '╌'
		}
	}
	fmt.Fprintf(w, "  rank  %s\n", string(axis))
	fmt.Fprintf(w, "        %s\n\n", string(labels))

	// One bar per algorithm, best rank first.
	nameWidth := 0
	for _, a := range l.Algorithms {
		if len(a.Name) > nameWidth {
			nameWidth = len(a.Name)
		}
	}
	for _, a := range l.Algorithms {
		c := col(a.X)
		bar := strings.Repeat("█", c)
		if c == 0 {
			bar = "▏"
		}
		fmt.Fprintf(w, "%*s %6.3f %s\n", nameWidth, a.Name, a.AverageRank, bar)
	}

	if len(l.Brackets) > 0 {
		fmt.Fprintf(w, "\nnot significantly different:\n")
		for _, br := range l.Brackets {
			lo, hi := col(br.XMin), col(br.XMax)
			if hi <= lo {
				hi = lo + 1
			}
			line := strings.Repeat(" ", lo) + "├" + strings.Repeat("─", hi-lo-1) + "┤"
			fmt.Fprintf(w, "        %s\n", line)
		}
	}
	fmt.Fprintln(w)
}
