package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/san-kum/mobius/internal/geometry"
)

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	strip, err := geometry.New(geometry.Params{Radius: 3, Width: 1, Resolution: 10})
	if err != nil {
		t.Fatal(err)
	}

	id, err := st.Save(strip, 18.47, 19.2)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if id == "" {
		t.Error("expected non-empty record id")
	}

	rec, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if rec.Radius != 3 || rec.Width != 1 || rec.Resolution != 10 {
		t.Errorf("parameter mismatch: %+v", rec)
	}
	if rec.SurfaceArea != 18.47 {
		t.Errorf("expected area 18.47, got %f", rec.SurfaceArea)
	}
	if rec.EdgeLength != 19.2 {
		t.Errorf("expected edge length 19.2, got %f", rec.EdgeLength)
	}

	points, err := st.LoadMesh(id)
	if err != nil {
		t.Fatalf("load mesh failed: %v", err)
	}
	if len(points) != 100 {
		t.Errorf("expected 100 mesh points, got %d", len(points))
	}
	if points[0].Row != 0 || points[0].Col != 0 {
		t.Errorf("first point should be (0,0), got (%d,%d)", points[0].Row, points[0].Col)
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	recs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 0 {
		t.Errorf("expected empty store, got %d records", len(recs))
	}

	strip, err := geometry.New(geometry.Params{Radius: 2, Width: 0.5, Resolution: 5})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(strip, 1, 2); err != nil {
		t.Fatal(err)
	}

	recs, err = st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	if recs[0].Resolution != 5 {
		t.Errorf("expected resolution 5, got %d", recs[0].Resolution)
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New("/nonexistent/mobius-test")
	recs, err := st.List()
	if err != nil {
		t.Fatalf("missing base dir should list empty, got %v", err)
	}
	if len(recs) != 0 {
		t.Errorf("expected no records, got %d", len(recs))
	}
}

func TestWriteMeshCSV(t *testing.T) {
	strip, err := geometry.New(geometry.Params{Radius: 3, Width: 1, Resolution: 4})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteMeshCSV(&buf, strip); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1+16 {
		t.Fatalf("expected header plus 16 rows, got %d lines", len(lines))
	}
	if lines[0] != "row,col,u,v,x,y,z" {
		t.Errorf("unexpected header: %s", lines[0])
	}
	// first data row is u=0, v=-w/2: point (R-w/2, 0, 0)
	if !strings.HasPrefix(lines[1], "0,0,0.000000,-0.500000,2.500000,0.000000,0.000000") {
		t.Errorf("unexpected first row: %s", lines[1])
	}
}
