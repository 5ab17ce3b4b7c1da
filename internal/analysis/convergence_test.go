package analysis_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/mobius/internal/analysis"
	"github.com/san-kum/mobius/internal/geometry"
)

var _ = Describe("Convergence", func() {
	It("rejects invalid parameters", func() {
		_, err := analysis.Convergence(-1, 1, []int{10})
		Expect(err).To(MatchError(geometry.ErrInvalidParameter))

		_, err = analysis.Convergence(3, 1, []int{1})
		Expect(err).To(MatchError(geometry.ErrInvalidParameter))
	})

	It("reports one refinement per resolution, in order", func() {
		ns := []int{25, 50, 100}
		refs, err := analysis.Convergence(3, 1, ns)
		Expect(err).NotTo(HaveOccurred())
		Expect(refs).To(HaveLen(3))
		for i, r := range refs {
			Expect(r.Resolution).To(Equal(ns[i]))
			Expect(r.Area).To(BeNumerically(">", 0))
			Expect(r.EdgeLength).To(BeNumerically(">", 0))
		}
		Expect(refs[0].AreaDelta).To(BeZero())
	})

	It("shrinks refinement deltas as resolution doubles", func() {
		refs, err := analysis.Convergence(3, 1, analysis.ResolutionLadder(50, 400))
		Expect(err).NotTo(HaveOccurred())
		Expect(len(refs)).To(BeNumerically(">=", 4))
		for i := 2; i < len(refs); i++ {
			Expect(refs[i].AreaDelta).To(BeNumerically("<", refs[i-1].AreaDelta))
		}
	})

	It("recovers the center circle for a zero-width strip", func() {
		refs, err := analysis.Convergence(3, 0, []int{100})
		Expect(err).NotTo(HaveOccurred())
		Expect(refs[0].EdgeLength).To(BeNumerically("~", 2*math.Pi*3, 0.01))
	})
})

var _ = Describe("ResolutionLadder", func() {
	It("doubles from lo through hi", func() {
		Expect(analysis.ResolutionLadder(50, 400)).To(Equal([]int{50, 100, 200, 400}))
	})

	It("holds a single rung when lo exceeds half of hi", func() {
		Expect(analysis.ResolutionLadder(300, 400)).To(Equal([]int{300}))
	})
})

var _ = Describe("Profiles", func() {
	var strip *geometry.Strip

	BeforeEach(func() {
		var err error
		strip, err = geometry.New(geometry.Params{Radius: 3, Width: 1, Resolution: 81})
		Expect(err).NotTo(HaveOccurred())
	})

	It("samples the area integrand at every u value", func() {
		prof := analysis.AreaIntegrandProfile(strip, 0)
		Expect(prof).To(HaveLen(81))
		for _, m := range prof {
			// on the centerline the surface element is R per unit du dv
			Expect(m).To(BeNumerically("~", 3.0, 0.01))
		}
	})

	It("stretches the integrand toward the outer rim", func() {
		outer := analysis.AreaIntegrandProfile(strip, 0.5)
		inner := analysis.AreaIntegrandProfile(strip, -0.5)
		// at u=0 the magnitude is √((R+v)² + (v/2)²)
		Expect(outer[0]).To(BeNumerically("~", math.Hypot(3.5, 0.25), 1e-9))
		Expect(inner[0]).To(BeNumerically("~", math.Hypot(2.5, 0.25), 1e-9))
		Expect(outer[0]).To(BeNumerically(">", inner[0]))
	})

	It("extracts edge and center curves of mesh length", func() {
		xs, ys, zs := analysis.EdgeCurve(strip)
		Expect(xs).To(HaveLen(81))
		Expect(ys).To(HaveLen(81))
		Expect(zs).To(HaveLen(81))
		// u=0, v=w/2 sits at (R+w/2, 0, 0)
		Expect(xs[0]).To(BeNumerically("~", 3.5, 1e-12))
		Expect(ys[0]).To(BeZero())
		Expect(zs[0]).To(BeZero())

		cx, _, cz := analysis.CenterCurve(strip)
		Expect(cx[0]).To(BeNumerically("~", 3.0, 1e-12))
		Expect(cz[0]).To(BeZero())
	})
})
