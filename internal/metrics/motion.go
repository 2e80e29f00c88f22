package metrics

import (
	"math"

	"github.com/san-kum/backdrop/internal/turtle"
)

type MeanSpeed struct {
	name    string
	total   float64
	samples int
}

func NewMeanSpeed() *MeanSpeed {
	return &MeanSpeed{name: "mean_speed"}
}

func (m *MeanSpeed) Name() string { return m.name }

func (m *MeanSpeed) Observe(s *turtle.State) {
	if len(s.Entities) == 0 {
		return
	}
	m.total += meanSpeed(s.Entities)
	m.samples++
}

func (m *MeanSpeed) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanSpeed) Reset() {
	m.total = 0
	m.samples = 0
}

// PeakSpeed tracks the fastest entity seen. Pointer repulsion accumulates
// velocity, so this grows under interaction.
type PeakSpeed struct {
	name string
	peak float64
}

func NewPeakSpeed() *PeakSpeed {
	return &PeakSpeed{name: "peak_speed"}
}

func (p *PeakSpeed) Name() string { return p.name }

func (p *PeakSpeed) Observe(s *turtle.State) {
	for _, e := range s.Entities {
		p.peak = math.Max(p.peak, e.Vel.Len())
	}
}

func (p *PeakSpeed) Value() float64 { return p.peak }

func (p *PeakSpeed) Reset() { p.peak = 0 }

// meanGlow is the mean node brightness in [0,1] as network mode draws it.
// Entities without a pulse are ignored.
func meanGlow(es []turtle.Entity) float64 {
	var sum float64
	n := 0
	for _, e := range es {
		if e.PulseSpeed == 0 {
			continue
		}
		sum += (math.Sin(e.Pulse) + 1) / 2
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func meanSpeed(es []turtle.Entity) float64 {
	if len(es) == 0 {
		return 0
	}
	var sum float64
	for _, e := range es {
		sum += e.Vel.Len()
	}
	return sum / float64(len(es))
}
