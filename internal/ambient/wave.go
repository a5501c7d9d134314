package ambient

import (
	"math"
	"time"
)

// Wave describes the animated backdrop filling the bottom of the screen.
// Height is the resting depth of the crest below the top of the wave area,
// Amplitude the crest swing, both in rows. Speed is in radians per second.
type Wave struct {
	Height    int
	Amplitude int
	Speed     float64
	Points    int
}

func DefaultWave() Wave {
	return Wave{Height: 2, Amplitude: 3, Speed: 0.2 * 2 * math.Pi, Points: 4}
}

// Surface returns, for each column, the first row of the area that is
// under water at elapsed time.
func (w Wave) Surface(width int, elapsed time.Duration) []int {
	if width <= 0 {
		return nil
	}
	points := w.Points
	if points < 1 {
		points = 1
	}

	phase := w.Speed * elapsed.Seconds()
	out := make([]int, width)
	for x := range width {
		angle := 2*math.Pi*float64(points)*float64(x)/float64(width) + phase
		y := float64(w.Height) + float64(w.Amplitude)*(1+math.Sin(angle))/2
		out[x] = int(math.Round(y))
	}
	return out
}
