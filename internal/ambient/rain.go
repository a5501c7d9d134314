package ambient

import (
	"iter"
	"math/rand/v2"
	"time"
)

const DefaultDrops = 50

// Drop is one falling rain streak. Left is a percentage of the screen
// width; Delay and Duration control when it starts and how long one fall
// takes.
type Drop struct {
	Left     float64
	Delay    time.Duration
	Duration time.Duration
}

// Rain yields n randomly placed drops. The sequence draws from rng lazily,
// so callers that want a stable set should collect it once.
func Rain(n int, rng *rand.Rand) iter.Seq[Drop] {
	return func(yield func(Drop) bool) {
		for range n {
			d := Drop{
				Left:     rng.Float64() * 100,
				Delay:    time.Duration(rng.Float64() * float64(2*time.Second)),
				Duration: time.Second + time.Duration(rng.Float64()*float64(time.Second)),
			}
			if !yield(d) {
				return
			}
		}
	}
}

// Column maps the drop onto a screen of the given width.
func (d Drop) Column(width int) int {
	if width <= 0 {
		return 0
	}
	col := int(d.Left / 100 * float64(width))
	if col >= width {
		col = width - 1
	}
	return col
}

// Row returns the row of the drop's head at elapsed time on a screen of
// the given height. Before its delay has passed the drop is not visible.
func (d Drop) Row(elapsed time.Duration, height int) (int, bool) {
	if height <= 0 || d.Duration <= 0 || elapsed < d.Delay {
		return 0, false
	}
	t := (elapsed - d.Delay) % d.Duration
	// The streak starts one row above the screen and falls height+1 rows.
	row := int(float64(height+1)*float64(t)/float64(d.Duration)) - 1
	if row < 0 {
		return 0, false
	}
	return row, true
}
