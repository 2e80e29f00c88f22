package analysis

import (
	"math"
	"testing"

	"github.com/san-kum/backdrop/internal/metrics"
	"github.com/san-kum/backdrop/internal/turtle"
)

func sine(n int, period, amp, offset float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = offset + amp*math.Sin(2*math.Pi*float64(i)/period)
	}
	return out
}

func TestDominantPeriod(t *testing.T) {
	tests := []struct {
		name   string
		data   []float64
		want   float64
		wantOK bool
	}{
		{"period 32", sine(256, 32, 1, 5), 32, true},
		{"period 64 non power of two length", sine(320, 64, 0.2, 1), 64, true},
		{"flat", sine(128, 16, 0, 3), 0, false},
		{"too short", []float64{1}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DominantPeriod(tt.data)
			if ok != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, ok)
			}
			if ok && math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("expected period %v, got %v", tt.want, got)
			}
		})
	}
}

func TestPowerSpectrum_RemovesMean(t *testing.T) {
	ps := PowerSpectrum(sine(64, 8, 1, 100))
	if len(ps) != 32 {
		t.Fatalf("expected 32 bins, got %d", len(ps))
	}
	if ps[0] > 1e-6 {
		t.Errorf("expected empty DC bin, got %v", ps[0])
	}
	if ps[8] < 10 {
		t.Errorf("expected a strong bin 8, got %v", ps[8])
	}
}

func TestDominantPeriod_NetworkRun(t *testing.T) {
	eng, err := turtle.New(turtle.Options{Mode: turtle.ModeNetwork, Count: 1, Background: -1, Seed: 3}, 1280, 720)
	if err != nil {
		t.Fatal(err)
	}
	cycle := 2 * math.Pi / eng.State().Entities[0].PulseSpeed

	series := metrics.NewSeries()
	for i := 0; i < 1200; i++ {
		eng.Step()
		series.Observe(eng.State())
	}

	got, ok := DominantPeriod(series.Column("pulse"))
	if !ok {
		t.Fatal("expected a pulse cycle")
	}
	if math.Abs(got-cycle)/cycle > 0.15 {
		t.Errorf("expected period near %.1f frames, got %.1f", cycle, got)
	}

	speed := series.Column("speed")
	var sum float64
	for _, v := range speed {
		sum += v
	}
	if sum == 0 {
		t.Fatal("expected non-zero node speed")
	}
	if _, ok := DominantPeriod(speed); !ok {
		t.Error("expected a periodic speed component")
	}
}
