package metrics

import "github.com/san-kum/backdrop/internal/turtle"

// Links averages the number of drawn connections per frame: the static
// graph in network mode, proximity pairs otherwise.
type Links struct {
	name    string
	radius  float64
	sum     float64
	samples int
}

func NewLinks(radius float64) *Links {
	return &Links{name: "links", radius: radius}
}

func (l *Links) Name() string {
	return l.name
}

func (l *Links) Observe(s *turtle.State) {
	l.sum += float64(linkCount(s, l.radius))
	l.samples++
}

func (l *Links) Value() float64 {
	if l.samples == 0 {
		return 0
	}
	return l.sum / float64(l.samples)
}

func (l *Links) Reset() {
	l.sum = 0
	l.samples = 0
}

func linkCount(s *turtle.State, radius float64) int {
	switch s.Mode {
	case turtle.ModeNetwork:
		return len(s.Links)
	case turtle.ModeGeometric:
		return len(turtle.ProximityLinks(s.Entities, radius))
	}
	return 0
}

type ParticleLife struct {
	name    string
	sum     float64
	samples int
}

func NewParticleLife() *ParticleLife {
	return &ParticleLife{name: "particle_life"}
}

func (p *ParticleLife) Name() string { return p.name }

func (p *ParticleLife) Observe(s *turtle.State) {
	if len(s.Particles) == 0 {
		return
	}
	p.sum += meanLife(s.Particles)
	p.samples++
}

func (p *ParticleLife) Value() float64 {
	if p.samples == 0 {
		return 0
	}
	return p.sum / float64(p.samples)
}

func (p *ParticleLife) Reset() {
	p.sum = 0
	p.samples = 0
}

func meanLife(ps []turtle.Particle) float64 {
	if len(ps) == 0 {
		return 0
	}
	var sum float64
	for _, p := range ps {
		sum += p.Life
	}
	return sum / float64(len(ps))
}
