package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/mobius/internal/geometry"
	"github.com/san-kum/mobius/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	c.SetColored(0, 0, "#ff0000")
	c.Set(5, 5)

	svg := CanvasToSVG(c, 4)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML header")
	}
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Error("cell color not carried into SVG")
	}
	if !strings.Contains(svg, `fill="#cccccc"`) {
		t.Error("uncolored dots should use the default fill")
	}
	if strings.Count(svg, "<circle") != 2 {
		t.Errorf("expected 2 dots, got %d", strings.Count(svg, "<circle"))
	}
}

func TestCanvasToSVGNil(t *testing.T) {
	if got := CanvasToSVG(nil, 4); got != "" {
		t.Errorf("expected empty string for nil canvas, got %q", got)
	}
}

func TestWriteJSON(t *testing.T) {
	strip, err := geometry.New(geometry.Params{Radius: 3, Width: 1, Resolution: 5})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, strip, 18.5, 19.2); err != nil {
		t.Fatal(err)
	}

	var data StripData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if data.Resolution != 5 || data.SurfaceArea != 18.5 || data.EdgeLength != 19.2 {
		t.Errorf("scalar mismatch: %+v", data)
	}
	if len(data.UVals) != 5 || len(data.VVals) != 5 {
		t.Errorf("grid lengths: %d, %d", len(data.UVals), len(data.VVals))
	}
	if len(data.X) != 5 || len(data.X[0]) != 5 {
		t.Error("mesh shape not preserved")
	}
}
