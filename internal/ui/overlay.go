package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// placeAt draws fg over bg with its top-left corner at (x, y). Anything
// falling outside bg is clipped, so fg may sit partly or fully
// off-screen. bg lines are expected to be exactly width cells wide.
func placeAt(bg []string, fg string, x, y, width int) []string {
	out := make([]string, len(bg))
	copy(out, bg)

	for i, line := range strings.Split(fg, "\n") {
		row := y + i
		if row < 0 || row >= len(out) {
			continue
		}

		w := ansi.StringWidth(line)
		start := x
		if start < 0 {
			line = ansi.TruncateLeft(line, -start, "")
			w += start
			start = 0
		}
		if w <= 0 || start >= width {
			continue
		}
		if start+w > width {
			line = ansi.Truncate(line, width-start, "")
			w = width - start
		}

		out[row] = ansi.Cut(out[row], 0, start) + line + ansi.Cut(out[row], start+w, width)
	}
	return out
}

// blockSize reports the width and height of a rendered block.
func blockSize(s string) (int, int) {
	lines := strings.Split(s, "\n")
	w := 0
	for _, l := range lines {
		w = max(w, ansi.StringWidth(l))
	}
	return w, len(lines)
}

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}
