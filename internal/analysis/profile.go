package analysis

import "github.com/san-kum/mobius/internal/geometry"

// AreaIntegrandProfile samples ‖∂r/∂u × ∂r/∂v‖ along u at fixed v,
// the quantity the area integral accumulates. Useful for seeing where the
// surface element stretches around the turn.
func AreaIntegrandProfile(s *geometry.Strip, v float64) []float64 {
	p := s.Params()
	grid := s.Grid()
	out := make([]float64, len(grid.U))
	for i, u := range grid.U {
		out[i] = p.PartialU(u, v).Cross(p.PartialV(u, v)).Length()
	}
	return out
}

// EdgeCurve returns the x, y, z coordinate sequences of the boundary curve
// row of the cached mesh.
func EdgeCurve(s *geometry.Strip) (xs, ys, zs []float64) {
	m := s.Mesh()
	row := s.EdgeRow()
	return m.X[row], m.Y[row], m.Z[row]
}

// CenterCurve returns the coordinate sequences of the v = 0 centerline row.
func CenterCurve(s *geometry.Strip) (xs, ys, zs []float64) {
	m := s.Mesh()
	row := s.CenterRow()
	return m.X[row], m.Y[row], m.Z[row]
}
