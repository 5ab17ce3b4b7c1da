package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/mobius/internal/geometry"
)

type StripData struct {
	Radius      float64     `json:"radius"`
	Width       float64     `json:"width"`
	Resolution  int         `json:"resolution"`
	SurfaceArea float64     `json:"surface_area"`
	EdgeLength  float64     `json:"edge_length"`
	UVals       []float64   `json:"u_vals"`
	VVals       []float64   `json:"v_vals"`
	X           [][]float64 `json:"x"`
	Y           [][]float64 `json:"y"`
	Z           [][]float64 `json:"z"`
}

// WriteJSON emits the full strip (parameters, scalars, grid, mesh) as
// indented JSON.
func WriteJSON(out io.Writer, strip *geometry.Strip, area, edgeLength float64) error {
	p := strip.Params()
	grid := strip.Grid()
	mesh := strip.Mesh()

	data := StripData{
		Radius:      p.Radius,
		Width:       p.Width,
		Resolution:  p.Resolution,
		SurfaceArea: area,
		EdgeLength:  edgeLength,
		UVals:       grid.U,
		VVals:       grid.V,
		X:           mesh.X,
		Y:           mesh.Y,
		Z:           mesh.Z,
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
