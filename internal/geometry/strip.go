package geometry

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultRadius     = 3.0
	DefaultWidth      = 1.0
	DefaultResolution = 100

	// MinResolution keeps both parameter sequences non-degenerate and the
	// step sizes 2π/(n-1) and w/(n-1) finite.
	MinResolution = 2
)

// ErrInvalidParameter reports a rejected construction parameter.
var ErrInvalidParameter = errors.New("invalid parameter")

// Params fully determines a strip. Immutable once handed to New.
type Params struct {
	Radius     float64 // distance from the axis to the centerline
	Width      float64 // transverse extent of the strip
	Resolution int     // samples per parameter axis
}

// DefaultParams returns the canonical R=3, w=1, n=100 strip.
func DefaultParams() Params {
	return Params{
		Radius:     DefaultRadius,
		Width:      DefaultWidth,
		Resolution: DefaultResolution,
	}
}

// Validate checks construction preconditions.
func (p Params) Validate() error {
	if p.Resolution < MinResolution {
		return fmt.Errorf("%w: resolution %d, need at least %d", ErrInvalidParameter, p.Resolution, MinResolution)
	}
	if p.Radius < 0 {
		return fmt.Errorf("%w: radius %g is negative", ErrInvalidParameter, p.Radius)
	}
	if p.Width < 0 {
		return fmt.Errorf("%w: width %g is negative", ErrInvalidParameter, p.Width)
	}
	return nil
}

// Point evaluates the parametric map at (u, v).
func (p Params) Point(u, v float64) Vec3 {
	r := p.Radius + v*math.Cos(u/2)
	return Vec3{
		X: r * math.Cos(u),
		Y: r * math.Sin(u),
		Z: v * math.Sin(u / 2),
	}
}

// PartialU is the closed-form ∂r/∂u at (u, v).
func (p Params) PartialU(u, v float64) Vec3 {
	sinH, cosH := math.Sin(u/2), math.Cos(u/2)
	sinU, cosU := math.Sin(u), math.Cos(u)
	r := p.Radius + v*cosH
	return Vec3{
		X: -v/2*sinH*cosU - r*sinU,
		Y: -v/2*sinH*sinU + r*cosU,
		Z: v / 2 * cosH,
	}
}

// PartialV is the closed-form ∂r/∂v at (u, v). Independent of v.
func (p Params) PartialV(u, v float64) Vec3 {
	return Vec3{
		X: math.Cos(u/2) * math.Cos(u),
		Y: math.Cos(u/2) * math.Sin(u),
		Z: math.Sin(u / 2),
	}
}

// Grid holds the sampled parameter sequences. U spans [0, 2π] and V spans
// [-w/2, w/2], both inclusive of endpoints with Resolution samples.
type Grid struct {
	U []float64
	V []float64
}

// Mesh holds Cartesian coordinates of every sample: row index follows V,
// column index follows U. All three matrices are n×n.
type Mesh struct {
	X, Y, Z [][]float64
}

// Rows reports the number of mesh rows (the V axis).
func (m Mesh) Rows() int { return len(m.X) }

// Cols reports the number of mesh columns (the U axis).
func (m Mesh) Cols() int {
	if len(m.X) == 0 {
		return 0
	}
	return len(m.X[0])
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m Mesh) Bounds() (min, max Vec3) {
	min = Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for i := range m.X {
		for j := range m.X[i] {
			min.X = math.Min(min.X, m.X[i][j])
			min.Y = math.Min(min.Y, m.Y[i][j])
			min.Z = math.Min(min.Z, m.Z[i][j])
			max.X = math.Max(max.X, m.X[i][j])
			max.Y = math.Max(max.Y, m.Y[i][j])
			max.Z = math.Max(max.Z, m.Z[i][j])
		}
	}
	return min, max
}

// At returns the mesh point at row i (V axis), column j (U axis).
func (m Mesh) At(i, j int) Vec3 {
	return Vec3{m.X[i][j], m.Y[i][j], m.Z[i][j]}
}

// Strip is a discretized Möbius surface. The grid and mesh are computed at
// construction and never mutated afterwards.
type Strip struct {
	params Params
	grid   Grid
	mesh   Mesh
}

// New validates p and builds the strip, evaluating the parametric map over
// the full u×v Cartesian product once.
func New(p Params) (*Strip, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := &Strip{
		params: p,
		grid: Grid{
			U: linspace(0, 2*math.Pi, p.Resolution),
			V: linspace(-p.Width/2, p.Width/2, p.Resolution),
		},
	}
	s.mesh = s.generateMesh()
	return s, nil
}

// NewDefault builds the canonical strip.
func NewDefault() *Strip {
	s, err := New(DefaultParams())
	if err != nil {
		panic(err) // defaults always validate
	}
	return s
}

func (s *Strip) generateMesh() Mesh {
	n := s.params.Resolution
	m := Mesh{
		X: make([][]float64, n),
		Y: make([][]float64, n),
		Z: make([][]float64, n),
	}
	for i, v := range s.grid.V {
		m.X[i] = make([]float64, n)
		m.Y[i] = make([]float64, n)
		m.Z[i] = make([]float64, n)
		for j, u := range s.grid.U {
			pt := s.params.Point(u, v)
			m.X[i][j] = pt.X
			m.Y[i][j] = pt.Y
			m.Z[i][j] = pt.Z
		}
	}
	return m
}

// Params returns the construction parameters.
func (s *Strip) Params() Params { return s.params }

// Grid returns the cached parameter grid. Callers must not modify it.
func (s *Strip) Grid() Grid { return s.grid }

// Mesh returns the cached point grid. Callers must not modify it.
func (s *Strip) Mesh() Mesh { return s.mesh }

// EdgeRow returns the mesh row index nearest v = +w/2.
func (s *Strip) EdgeRow() int { return nearestIndex(s.grid.V, s.params.Width/2) }

// CenterRow returns the mesh row index nearest v = 0.
func (s *Strip) CenterRow() int { return nearestIndex(s.grid.V, 0) }

// linspace samples [lo, hi] with n evenly spaced points, endpoints included.
func linspace(lo, hi float64, n int) []float64 {
	vals := make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range vals {
		vals[i] = lo + float64(i)*step
	}
	vals[n-1] = hi
	return vals
}

func nearestIndex(vals []float64, target float64) int {
	best := 0
	bestDist := math.Abs(vals[0] - target)
	for i, v := range vals[1:] {
		if d := math.Abs(v - target); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return best
}
