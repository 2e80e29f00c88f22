package turtle

// DefaultTrailLen is the history kept per organic entity.
const DefaultTrailLen = 20

// Trail is a fixed-capacity ring of past positions. Pushing onto a full
// trail drops the oldest point.
type Trail struct {
	pts  []Vec
	head int
	n    int
}

func NewTrail(capacity int) Trail {
	if capacity < 0 {
		capacity = 0
	}
	return Trail{pts: make([]Vec, capacity)}
}

func (t *Trail) Push(p Vec) {
	if len(t.pts) == 0 {
		return
	}
	t.pts[(t.head+t.n)%len(t.pts)] = p
	if t.n < len(t.pts) {
		t.n++
		return
	}
	t.head = (t.head + 1) % len(t.pts)
}

func (t Trail) Len() int { return t.n }
func (t Trail) Cap() int { return len(t.pts) }

// At returns the i-th point, oldest first.
func (t Trail) At(i int) Vec {
	return t.pts[(t.head+i)%len(t.pts)]
}

// Points returns the history oldest first.
func (t Trail) Points() []Vec {
	out := make([]Vec, t.n)
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

func (t *Trail) Reset() {
	t.head, t.n = 0, 0
}

func (t Trail) clone() Trail {
	if t.pts == nil {
		return t
	}
	c := t
	c.pts = make([]Vec, len(t.pts))
	copy(c.pts, t.pts)
	return c
}
