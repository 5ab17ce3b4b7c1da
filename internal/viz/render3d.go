package viz

import (
	"math"
	"sort"

	"github.com/san-kum/mobius/internal/geometry"
)

// Camera manages 3D projection onto the canvas sub-pixel plane. World
// coordinates are recentered and normalized by the mesh bounding box so
// every strip fills the frame with equal aspect.
type Camera struct {
	Center           geometry.Vec3
	Scale            float64
	Distance         float64
	Near             float64
	RotX, RotY, RotZ float64
	Zoom             float64
}

func NewCamera() *Camera {
	return &Camera{Scale: 1, Distance: 6, Near: 0.1, Zoom: 1.0, RotX: -0.9}
}

// FitMesh centers the camera on the mesh bounding box and normalizes the
// longest half-extent to 1.
func (c *Camera) FitMesh(m geometry.Mesh) {
	min, max := m.Bounds()
	c.Center = min.Add(max).Scale(0.5)
	half := math.Max(max.X-min.X, math.Max(max.Y-min.Y, max.Z-min.Z)) / 2
	if half == 0 {
		half = 1
	}
	c.Scale = 1 / half
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

// Reset restores the default orientation, keeping the mesh fit.
func (c *Camera) Reset() {
	c.RotX, c.RotY, c.RotZ = -0.9, 0, 0
	c.Zoom = 1.0
}

// RotatePoint rotates a point around the camera's axes.
func (c *Camera) RotatePoint(p geometry.Vec3) geometry.Vec3 {
	cx, sx := math.Cos(c.RotX), math.Sin(c.RotX)
	p.Y, p.Z = p.Y*cx-p.Z*sx, p.Y*sx+p.Z*cx
	cy, sy := math.Cos(c.RotY), math.Sin(c.RotY)
	p.X, p.Z = p.X*cy+p.Z*sy, -p.X*sy+p.Z*cy
	cz, sz := math.Cos(c.RotZ), math.Sin(c.RotZ)
	p.X, p.Y = p.X*cz-p.Y*sz, p.X*sz+p.Y*cz
	return p
}

// Project converts world coordinates to canvas sub-pixel coordinates.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p geometry.Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p.Sub(c.Center).Scale(c.Scale)).Scale(c.Zoom)
	if rot.Z >= c.Distance-c.Near {
		return 0, 0, 0, false
	}
	persp := c.Distance / (c.Distance - rot.Z)
	minDim := float64(sh)
	if float64(sw) < minDim {
		minDim = float64(sw)
	}
	pScale := minDim / 2.4
	sx := int(rot.X*persp*pScale) + sw/2
	sy := int(-rot.Y*persp*pScale) + sh/2
	return sx, sy, rot.Z, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

type Edge struct {
	Start, End geometry.Vec3
	Color      string
}

type Wireframe struct{ Edges []Edge }

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0)} }

func (w *Wireframe) AddEdge(s, e geometry.Vec3, color string) {
	w.Edges = append(w.Edges, Edge{s, e, color})
}

func (w *Wireframe) AddPoint(p geometry.Vec3, color string) {
	w.Edges = append(w.Edges, Edge{p, p, color})
}

func (w *Wireframe) Clear() { w.Edges = w.Edges[:0] }

type projectedEdge struct {
	x1, y1, x2, y2 int
	depth          float64
	color          string
}

// Render3D draws the wireframe to the canvas using a simple painter's
// algorithm, far edges first.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	sw, sh := c.Width*2, c.Height*4
	proj := make([]projectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, sw, sh)
		x2, y2, d2, v2 := cam.Project(e.End, sw, sh)
		if v1 || v2 {
			proj = append(proj, projectedEdge{x1, y1, x2, y2, (d1 + d2) / 2, e.Color})
		}
	}
	sort.Slice(proj, func(i, j int) bool { return proj[i].depth < proj[j].depth })
	for _, e := range proj {
		if e.x1 == e.x2 && e.y1 == e.y2 {
			c.SetColored(e.x1, e.y1, e.color)
		} else {
			c.DrawLine(e.x1, e.y1, e.x2, e.y2, e.color)
		}
	}
}
