package analysis

import (
	"math"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/san-kum/chaoskit/internal/dynamo"
	"github.com/san-kum/chaoskit/internal/physics"
)

func TestSectionLorenz(t *testing.T) {
	g := NewWithT(t)

	crossings, err := Section(physics.NewLorenz(), dynamo.State{1, 1, 1}, SectionConfig{
		Normal:    dynamo.State{0, 0, 1},
		Point:     dynamo.State{0, 0, 27},
		TMax:      100,
		Dt:        0.01,
		Direction: Both,
	})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(len(crossings)).To(BeNumerically(">", 10))

	// Interpolated crossings sit on the plane up to O(dt²).
	for _, c := range crossings {
		g.Expect(math.Abs(c[2] - 27)).To(BeNumerically("<", 0.1))
	}
}

func TestSectionRosslerPositive(t *testing.T) {
	g := NewWithT(t)

	crossings, err := Section(physics.NewRossler(), dynamo.State{1, 1, 1}, SectionConfig{
		Normal:    dynamo.State{0, 1, 0},
		Point:     dynamo.State{0, 0, 0},
		TMax:      300,
		Dt:        0.01,
		Direction: Positive,
	})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(crossings).NotTo(BeEmpty())

	for _, c := range crossings {
		g.Expect(math.Abs(c[1])).To(BeNumerically("<", 0.1))
	}
}

func TestSectionDirectionFilterPartitions(t *testing.T) {
	g := NewWithT(t)

	base := SectionConfig{
		Normal: dynamo.State{0, 0, 1},
		Point:  dynamo.State{0, 0, 27},
		TMax:   50,
		Dt:     0.01,
	}
	x0 := dynamo.State{1, 1, 1}
	sys := physics.NewLorenz()

	base.Direction = Both
	both, err := Section(sys, x0, base)
	g.Expect(err).NotTo(HaveOccurred())

	base.Direction = Positive
	pos, err := Section(sys, x0, base)
	g.Expect(err).NotTo(HaveOccurred())

	base.Direction = Negative
	neg, err := Section(sys, x0, base)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(len(pos) + len(neg)).To(Equal(len(both)))
}

func TestSectionInvalidDirection(t *testing.T) {
	g := NewWithT(t)

	_, err := Section(physics.NewLorenz(), dynamo.State{1, 1, 1}, SectionConfig{
		Normal:    dynamo.State{0, 0, 1},
		Point:     dynamo.State{0, 0, 27},
		TMax:      1,
		Dt:        0.01,
		Direction: "sideways",
	})
	g.Expect(err).To(MatchError(dynamo.ErrInvalidDirection))
}

func TestSectionNoCrossings(t *testing.T) {
	g := NewWithT(t)

	// The Lorenz attractor never reaches z = 1000.
	crossings, err := Section(physics.NewLorenz(), dynamo.State{1, 1, 1}, SectionConfig{
		Normal: dynamo.State{0, 0, 1},
		Point:  dynamo.State{0, 0, 1000},
		TMax:   20,
		Dt:     0.01,
	})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(crossings).To(BeEmpty())
}

func TestSection2D(t *testing.T) {
	g := NewWithT(t)

	cfg := SectionConfig{
		Normal: dynamo.State{0, 0, 1},
		Point:  dynamo.State{0, 0, 27},
		TMax:   50,
		Dt:     0.01,
	}
	xs, ys, err := Section2D(physics.NewLorenz(), dynamo.State{1, 1, 1}, cfg, 0, 1)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(xs).To(HaveLen(len(ys)))
	g.Expect(xs).NotTo(BeEmpty())

	_, _, err = Section2D(physics.NewLorenz(), dynamo.State{1, 1, 1}, cfg, 0, 5)
	g.Expect(err).To(MatchError(dynamo.ErrInvalidRange))
}
