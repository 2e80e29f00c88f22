package turtle_test

import (
	"github.com/san-kum/backdrop/internal/turtle"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Engine", func() {
	var (
		eng   *turtle.Engine
		tally turtle.Tally
	)

	newEngine := func(o turtle.Options) *turtle.Engine {
		e, err := turtle.New(o, 640, 480)
		Expect(err).NotTo(HaveOccurred())
		return e
	}

	BeforeEach(func() {
		tally.Reset()
	})

	Context("with default options", func() {
		BeforeEach(func() {
			eng = newEngine(turtle.Options{Seed: 11})
		})

		It("spawns the default population", func() {
			s := eng.State()
			Expect(s.Entities).To(HaveLen(turtle.DefaultCount))
			Expect(s.Particles).To(HaveLen(turtle.DefaultBackground))
			Expect(eng.Mode()).To(Equal(turtle.ModeGeometric))
		})

		It("fades before drawing every frame", func() {
			for i := 0; i < 5; i++ {
				eng.Frame(&tally)
			}
			Expect(tally.Fills).To(Equal(5))
			Expect(eng.State().Frame).To(Equal(5))
		})

		It("keeps every entity on the canvas under pointer pressure", func() {
			for i := 0; i < 300; i++ {
				eng.PointerMove(turtle.Vec{X: 320, Y: 240})
				eng.Frame(&tally)
				Expect(eng.State().Contained()).To(BeTrue())
			}
		})
	})

	DescribeTable("mode switching keeps the count",
		func(from, to turtle.Mode) {
			eng = newEngine(turtle.Options{Mode: from, Count: 40, Seed: 5})
			eng.Frame(&tally)
			Expect(eng.SetMode(to)).To(Succeed())
			Expect(eng.State().Entities).To(HaveLen(40))
			Expect(eng.State().Mode).To(Equal(to))
		},
		Entry("geometric to organic", turtle.ModeGeometric, turtle.ModeOrganic),
		Entry("organic to network", turtle.ModeOrganic, turtle.ModeNetwork),
		Entry("network to geometric", turtle.ModeNetwork, turtle.ModeGeometric),
	)

	Context("in network mode", func() {
		BeforeEach(func() {
			eng = newEngine(turtle.Options{Mode: turtle.ModeNetwork, Count: 30, Seed: 9})
		})

		It("never rebuilds the graph between frames", func() {
			links := append([]turtle.Link(nil), eng.State().Links...)
			for i := 0; i < 100; i++ {
				eng.Step()
			}
			Expect(eng.State().Links).To(Equal(links))
		})
	})

	Context("when the engine is nil", func() {
		It("ignores every call", func() {
			var nilEng *turtle.Engine
			Expect(func() {
				nilEng.Frame(&tally)
				nilEng.Click(turtle.Vec{})
				nilEng.Resize(1, 1)
			}).NotTo(Panic())
			Expect(tally.Fills).To(BeZero())
		})
	})

	It("refuses a zero-sized canvas", func() {
		_, err := turtle.New(turtle.Options{}, 0, 0)
		Expect(err).To(MatchError(turtle.ErrNoCanvas))
	})
})
