package metrics

import "github.com/san-kum/backdrop/internal/turtle"

// Metric accumulates one scalar over the frames it observes.
type Metric interface {
	Name() string
	Observe(s *turtle.State)
	Value() float64
	Reset()
}

// Standard returns the metrics recorded for every run.
func Standard() []Metric {
	return []Metric{
		NewMeanSpeed(),
		NewPeakSpeed(),
		NewContainment(),
		NewLinks(turtle.ProximityRadius),
		NewParticleLife(),
	}
}

// Sample is one frame's instantaneous readings.
type Sample struct {
	Frame     int     `json:"frame"`
	Speed     float64 `json:"speed"`
	Links     int     `json:"links"`
	Particles float64 `json:"particle_life"`
	Pulse     float64 `json:"pulse"`
}

// Measure reads the instantaneous values of s.
func Measure(s *turtle.State) Sample {
	return Sample{
		Frame:     s.Frame,
		Speed:     meanSpeed(s.Entities),
		Links:     linkCount(s, turtle.ProximityRadius),
		Particles: meanLife(s.Particles),
		Pulse:     meanGlow(s.Entities),
	}
}

// Series records a Sample every frame alongside a set of metrics.
type Series struct {
	Metrics []Metric
	Samples []Sample
}

func NewSeries(ms ...Metric) *Series {
	if len(ms) == 0 {
		ms = Standard()
	}
	return &Series{Metrics: ms}
}

func (r *Series) Observe(s *turtle.State) {
	if s == nil {
		return
	}
	for _, m := range r.Metrics {
		m.Observe(s)
	}
	r.Samples = append(r.Samples, Measure(s))
}

// Values returns the current metric values keyed by name.
func (r *Series) Values() map[string]float64 {
	out := make(map[string]float64, len(r.Metrics))
	for _, m := range r.Metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

// Column extracts one field of the recorded samples for plotting.
func (r *Series) Column(name string) []float64 {
	out := make([]float64, 0, len(r.Samples))
	for _, s := range r.Samples {
		switch name {
		case "speed":
			out = append(out, s.Speed)
		case "links":
			out = append(out, float64(s.Links))
		case "life":
			out = append(out, s.Particles)
		case "pulse":
			out = append(out, s.Pulse)
		default:
			return nil
		}
	}
	return out
}

func (r *Series) Reset() {
	for _, m := range r.Metrics {
		m.Reset()
	}
	r.Samples = r.Samples[:0]
}
