package ambient

import (
	"math/rand/v2"
	"slices"
	"testing"
	"time"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestRainBounds(t *testing.T) {
	drops := slices.Collect(Rain(DefaultDrops, seeded()))
	if len(drops) != DefaultDrops {
		t.Fatalf("expected %d drops, got %d", DefaultDrops, len(drops))
	}
	for i, d := range drops {
		if d.Left < 0 || d.Left >= 100 {
			t.Errorf("drop %d: left %f out of range", i, d.Left)
		}
		if d.Delay < 0 || d.Delay >= 2*time.Second {
			t.Errorf("drop %d: delay %v out of range", i, d.Delay)
		}
		if d.Duration < time.Second || d.Duration >= 2*time.Second {
			t.Errorf("drop %d: duration %v out of range", i, d.Duration)
		}
	}
}

func TestRainIsLazy(t *testing.T) {
	taken := 0
	for range Rain(1000, seeded()) {
		taken++
		if taken == 3 {
			break
		}
	}
	if taken != 3 {
		t.Fatalf("expected to stop after 3 drops, took %d", taken)
	}
}

func TestRainDeterministicForSeed(t *testing.T) {
	a := slices.Collect(Rain(10, seeded()))
	b := slices.Collect(Rain(10, seeded()))
	if !slices.Equal(a, b) {
		t.Fatal("same seed produced different drops")
	}
}

func TestDropRow(t *testing.T) {
	d := Drop{Left: 50, Delay: time.Second, Duration: time.Second}

	if _, ok := d.Row(500*time.Millisecond, 10); ok {
		t.Error("drop visible before its delay")
	}
	if row, ok := d.Row(1999*time.Millisecond, 10); !ok || row != 9 {
		t.Errorf("near end of fall: row=%d ok=%v, want 9", row, ok)
	}
	// Loops back to the top.
	if row, ok := d.Row(2500*time.Millisecond, 10); !ok || row != 4 {
		t.Errorf("second fall: row=%d ok=%v, want 4", row, ok)
	}
}

func TestDropColumn(t *testing.T) {
	tests := []struct {
		left  float64
		width int
		want  int
	}{
		{0, 80, 0},
		{50, 80, 40},
		{99.999, 80, 79},
		{50, 0, 0},
	}
	for _, tt := range tests {
		if got := (Drop{Left: tt.left}).Column(tt.width); got != tt.want {
			t.Errorf("Column(left=%v, width=%d) = %d, want %d", tt.left, tt.width, got, tt.want)
		}
	}
}

func TestWaveSurfaceRange(t *testing.T) {
	w := DefaultWave()
	surface := w.Surface(120, 3*time.Second)
	if len(surface) != 120 {
		t.Fatalf("expected 120 columns, got %d", len(surface))
	}
	for x, y := range surface {
		if y < w.Height || y > w.Height+w.Amplitude {
			t.Errorf("column %d: surface %d outside [%d,%d]", x, y, w.Height, w.Height+w.Amplitude)
		}
	}
}

func TestSceneFrame(t *testing.T) {
	s := NewScene(20, DefaultWave(), seeded())
	frame := s.Frame(40, 20, 1500*time.Millisecond)
	if len(frame) != 20 || len(frame[0]) != 40 {
		t.Fatalf("unexpected frame size %dx%d", len(frame[0]), len(frame))
	}
	for x := range 40 {
		if frame[19][x] != CellWave {
			t.Fatalf("bottom row column %d is not water", x)
		}
		if frame[0][x] == CellWave {
			t.Fatalf("top row column %d is water", x)
		}
	}
}

func TestSceneRemount(t *testing.T) {
	s := NewScene(5, DefaultWave(), seeded())
	before := slices.Clone(s.Drops())
	s.Remount()
	if len(s.Drops()) != 5 {
		t.Fatalf("expected 5 drops after remount, got %d", len(s.Drops()))
	}
	if slices.Equal(before, s.Drops()) {
		t.Fatal("remount reused the previous drops")
	}
}
