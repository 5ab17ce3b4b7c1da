package geometry

import "math"

// SurfaceArea approximates the total area by a Riemann sum of
// ‖∂r/∂u × ∂r/∂v‖ du dv over the parameter domain. The first and last
// sample along each axis are skipped to stay clear of edge artifacts.
//
// The partial derivatives are re-evaluated in closed form at every sample;
// the cached mesh is never consulted. O(n²).
func (s *Strip) SurfaceArea() float64 {
	n := s.params.Resolution
	du := 2 * math.Pi / float64(n-1)
	dv := s.params.Width / float64(n-1)

	area := 0.0
	for i := 1; i < n-1; i++ {
		u := s.grid.U[i]
		for j := 1; j < n-1; j++ {
			v := s.grid.V[j]
			ru := s.params.PartialU(u, v)
			rv := s.params.PartialV(u, v)
			area += ru.Cross(rv).Length() * du * dv
		}
	}
	return area
}

// EdgeLength approximates the length of the boundary curve at v = +w/2 by
// summing chord lengths between consecutive u samples. The strip has a
// single connected edge; one pass at +w/2 measures it.
func (s *Strip) EdgeLength() float64 {
	v := s.params.Width / 2

	length := 0.0
	prev := s.params.Point(s.grid.U[0], v)
	for _, u := range s.grid.U[1:] {
		curr := s.params.Point(u, v)
		length += curr.Sub(prev).Length()
		prev = curr
	}
	return length
}
