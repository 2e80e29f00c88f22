package turtle

import "math"

const (
	RepelRadius   = 100.0
	RepelStrength = 0.1
	ClickRadius   = 150.0
	ClickForce    = 2.0
)

// PointerMove nudges every entity within RepelRadius away from p.
func (e *Engine) PointerMove(p Vec) {
	if e == nil {
		return
	}
	Repel(e.state.Entities, p)
}

// Click gives every entity within ClickRadius of p a random impulse.
func (e *Engine) Click(p Vec) {
	if e == nil {
		return
	}
	for i := range e.state.Entities {
		ent := &e.state.Entities[i]
		if ent.Pos.Dist(p) < ClickRadius {
			ent.Vel = Vec{jitter(e.rng, ClickForce), jitter(e.rng, ClickForce)}
		}
	}
}

func Repel(entities []Entity, p Vec) {
	for i := range entities {
		ent := &entities[i]
		d := p.Sub(ent.Pos)
		if d.Len() >= RepelRadius {
			continue
		}
		angle := math.Atan2(d.Y, d.X)
		ent.Vel.X -= math.Cos(angle) * RepelStrength
		ent.Vel.Y -= math.Sin(angle) * RepelStrength
	}
}
