package metrics

import "github.com/san-kum/backdrop/internal/turtle"

// Containment is the fraction of observed frames with every entity on the
// canvas. Anything below 1 is a bug.
type Containment struct {
	name       string
	violations int
	samples    int
}

func NewContainment() *Containment {
	return &Containment{name: "containment"}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(s *turtle.State) {
	c.samples++
	if !s.Contained() {
		c.violations++
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}
