// Package geometry implements the Möbius strip surface model.
//
// A [Strip] is built once from [Params] and caches a discretized point
// grid ([Mesh]) over the parameter domain:
//
//	x(u,v) = (R + v·cos(u/2))·cos(u)
//	y(u,v) = (R + v·cos(u/2))·sin(u)
//	z(u,v) = v·sin(u/2)
//
// with u swept over [0, 2π] and v over [-w/2, w/2].
//
// Two numeric quantities are derived from the parameter domain by
// independent passes (they never read the cached mesh):
//
//   - [Strip.SurfaceArea]: Riemann sum of ‖∂r/∂u × ∂r/∂v‖ du dv
//   - [Strip.EdgeLength]: chord-length sum along the v = +w/2 boundary
//
// A Strip is immutable after construction and safe for concurrent
// read-only use.
package geometry
