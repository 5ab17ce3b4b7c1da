package analysis

import (
	"math"

	"github.com/san-kum/mobius/internal/geometry"
)

// Refinement records the integrals at one resolution. AreaDelta is the
// absolute change from the previous rung (zero on the first).
type Refinement struct {
	Resolution int
	Area       float64
	EdgeLength float64
	AreaDelta  float64
}

// Convergence recomputes both integrals for each resolution in ns,
// preserving order. Radius and width are validated once through the first
// construction.
func Convergence(radius, width float64, ns []int) ([]Refinement, error) {
	out := make([]Refinement, 0, len(ns))
	for _, n := range ns {
		s, err := geometry.New(geometry.Params{Radius: radius, Width: width, Resolution: n})
		if err != nil {
			return nil, err
		}
		r := Refinement{
			Resolution: n,
			Area:       s.SurfaceArea(),
			EdgeLength: s.EdgeLength(),
		}
		if len(out) > 0 {
			r.AreaDelta = math.Abs(r.Area - out[len(out)-1].Area)
		}
		out = append(out, r)
	}
	return out, nil
}

// ResolutionLadder doubles from lo until it passes hi, inclusive of lo.
func ResolutionLadder(lo, hi int) []int {
	ns := make([]int, 0, 8)
	for n := lo; n <= hi; n *= 2 {
		ns = append(ns, n)
	}
	return ns
}
