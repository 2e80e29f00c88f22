package turtle

import "math"

// TrigTable is a sampled sine over one turn, linearly interpolated.
// Network orbits evaluate it for every node on every frame.
type TrigTable struct {
	samples []float64
	step    float64 // radians per sample
}

var orbitTable = NewTrigTable(4096)

func NewTrigTable(n int) *TrigTable {
	t := &TrigTable{samples: make([]float64, n+1), step: 2 * math.Pi / float64(n)}
	for i := range t.samples {
		t.samples[i] = math.Sin(float64(i) * t.step)
	}
	return t
}

func (t *TrigTable) Sin(x float64) float64 {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	pos := x / t.step
	i := int(pos)
	if i >= len(t.samples)-1 {
		i = len(t.samples) - 2
	}
	frac := pos - float64(i)
	return t.samples[i] + (t.samples[i+1]-t.samples[i])*frac
}

func (t *TrigTable) Cos(x float64) float64 {
	return t.Sin(x + math.Pi/2)
}
