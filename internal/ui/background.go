package ui

import (
	"strings"
	"time"

	"github.com/saravenpi/folio/internal/ambient"
)

// renderBackground paints one frame of the ambient scene. Runs of equal
// cells share a single styled segment to keep escape sequences down.
func renderBackground(scene *ambient.Scene, st styles, width, height int, elapsed time.Duration) []string {
	frame := scene.Frame(width, height, elapsed)
	lines := make([]string, len(frame))

	for y, row := range frame {
		var b strings.Builder
		for x := 0; x < len(row); {
			end := x
			for end < len(row) && row[end] == row[x] {
				end++
			}
			n := end - x
			switch row[x] {
			case ambient.CellRain:
				b.WriteString(st.rain.Render(strings.Repeat("│", n)))
			case ambient.CellWave:
				b.WriteString(st.wave.Render(strings.Repeat(" ", n)))
			default:
				b.WriteString(st.page.Render(strings.Repeat(" ", n)))
			}
			x = end
		}
		lines[y] = b.String()
	}
	return lines
}
