package storage

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/san-kum/mobius/internal/geometry"
)

// WriteMeshCSV streams the cached mesh as CSV with one row per grid
// sample: row, col, u, v, x, y, z.
func WriteMeshCSV(out io.Writer, strip *geometry.Strip) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write([]string{"row", "col", "u", "v", "x", "y", "z"}); err != nil {
		return err
	}

	grid := strip.Grid()
	mesh := strip.Mesh()
	for i, v := range grid.V {
		for j, u := range grid.U {
			rec := []string{
				strconv.Itoa(i),
				strconv.Itoa(j),
				strconv.FormatFloat(u, 'f', 6, 64),
				strconv.FormatFloat(v, 'f', 6, 64),
				strconv.FormatFloat(mesh.X[i][j], 'f', 6, 64),
				strconv.FormatFloat(mesh.Y[i][j], 'f', 6, 64),
				strconv.FormatFloat(mesh.Z[i][j], 'f', 6, 64),
			}
			if err := w.Write(rec); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}
