package ambient

import (
	"math/rand/v2"
	"slices"
	"time"
)

type Cell uint8

const (
	CellEmpty Cell = iota
	CellRain
	CellWave
)

// rainLength is how many rows a streak covers, head included.
const rainLength = 3

// Scene is the decorative layer drawn behind the card. It owns its drops
// and never looks at anything but its own settings.
type Scene struct {
	drops []Drop
	wave  Wave
	count int
	rng   *rand.Rand
}

func NewScene(drops int, wave Wave, rng *rand.Rand) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &Scene{wave: wave, count: drops, rng: rng}
	s.Remount()
	return s
}

// Remount draws a fresh set of drops.
func (s *Scene) Remount() {
	s.drops = slices.Collect(Rain(s.count, s.rng))
}

func (s *Scene) Drops() []Drop {
	return s.drops
}

// Frame lays out one frame. The wave fills the bottom half of the screen
// and rain is drawn over everything above the water line.
func (s *Scene) Frame(width, height int, elapsed time.Duration) [][]Cell {
	if width <= 0 || height <= 0 {
		return nil
	}
	grid := make([][]Cell, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
	}

	top := height / 2
	for x, depth := range s.wave.Surface(width, elapsed) {
		for y := top + depth; y < height; y++ {
			if y >= 0 {
				grid[y][x] = CellWave
			}
		}
	}

	for _, d := range s.drops {
		head, ok := d.Row(elapsed, height)
		if !ok {
			continue
		}
		x := d.Column(width)
		for y := head; y > head-rainLength && y >= 0; y-- {
			if y < height && grid[y][x] == CellEmpty {
				grid[y][x] = CellRain
			}
		}
	}
	return grid
}
