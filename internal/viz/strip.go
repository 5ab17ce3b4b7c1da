package viz

import "github.com/san-kum/mobius/internal/geometry"

// Options selects what the renderer draws. Zero value draws nothing useful;
// use DefaultOptions.
type Options struct {
	ShowWireframe bool
	ShowSurface   bool
	Colormap      string
}

func DefaultOptions() Options {
	return Options{ShowWireframe: true, ShowSurface: true, Colormap: "viridis"}
}

const (
	wireColor   = "#555577"
	edgeColor   = "#ff4444"
	centerColor = "#5599ff"

	// maxWireLines caps wireframe density so redraw stays within the frame
	// budget at high resolutions. Numerical routines are unaffected.
	maxWireLines = 48
)

// BuildStripWireframe turns the cached mesh into colored edges: an optional
// subsampled wireframe, optional surface points shaded by height, and the
// always-drawn boundary curve (row edgeRow, red) and centerline (row
// centerRow, blue).
func BuildStripWireframe(m geometry.Mesh, opts Options, edgeRow, centerRow int) *Wireframe {
	w := NewWireframe()
	rows, cols := m.Rows(), m.Cols()
	if rows == 0 || cols == 0 {
		return w
	}

	if opts.ShowSurface {
		min, max := m.Bounds()
		span := max.Z - min.Z
		if span == 0 {
			span = 1
		}
		cm := GetColormap(opts.Colormap)
		step := stride(rows, 2*maxWireLines)
		for i := 0; i < rows; i += step {
			for j := 0; j < cols; j += step {
				p := m.At(i, j)
				w.AddPoint(p, cm.At((p.Z-min.Z)/span))
			}
		}
	}

	if opts.ShowWireframe {
		step := stride(rows, maxWireLines)
		for i := 0; i < rows; i += step {
			for j := 0; j+1 < cols; j++ {
				w.AddEdge(m.At(i, j), m.At(i, j+1), wireColor)
			}
		}
		for j := 0; j < cols; j += step {
			for i := 0; i+1 < rows; i++ {
				w.AddEdge(m.At(i, j), m.At(i+1, j), wireColor)
			}
		}
	}

	for j := 0; j+1 < cols; j++ {
		w.AddEdge(m.At(centerRow, j), m.At(centerRow, j+1), centerColor)
		w.AddEdge(m.At(edgeRow, j), m.At(edgeRow, j+1), edgeColor)
	}

	return w
}

// RenderFrame projects one frame of the strip onto a fresh canvas.
func RenderFrame(s *geometry.Strip, opts Options, cam *Camera, width, height int) *Canvas {
	canvas := NewCanvas(width, height)
	wf := BuildStripWireframe(s.Mesh(), opts, s.EdgeRow(), s.CenterRow())
	Render3D(canvas, wf, cam)
	return canvas
}

func stride(n, maxLines int) int {
	step := n / maxLines
	if step < 1 {
		step = 1
	}
	return step
}
