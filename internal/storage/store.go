// Package storage persists computed strip records under a data directory,
// one sub-directory per record with metadata.json and mesh.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/mobius/internal/geometry"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type Record struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Radius      float64   `json:"radius"`
	Width       float64   `json:"width"`
	Resolution  int       `json:"resolution"`
	SurfaceArea float64   `json:"surface_area"`
	EdgeLength  float64   `json:"edge_length"`
}

// Save writes one record directory: parameters plus the two computed
// scalars in metadata.json, and the full mesh as mesh.csv rows of
// (row, col, u, v, x, y, z).
func (s *Store) Save(strip *geometry.Strip, area, edgeLength float64) (string, error) {
	id := fmt.Sprintf("strip_%d", time.Now().Unix())
	dir := filepath.Join(s.baseDir, id)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	p := strip.Params()
	rec := Record{
		ID:          id,
		Timestamp:   time.Now(),
		Radius:      p.Radius,
		Width:       p.Width,
		Resolution:  p.Resolution,
		SurfaceArea: area,
		EdgeLength:  edgeLength,
	}

	metaFile, err := os.Create(filepath.Join(dir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rec); err != nil {
		return "", err
	}

	meshFile, err := os.Create(filepath.Join(dir, "mesh.csv"))
	if err != nil {
		return "", err
	}
	defer meshFile.Close()

	if err := WriteMeshCSV(meshFile, strip); err != nil {
		return "", err
	}

	return id, nil
}

func (s *Store) List() ([]Record, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Record{}, nil
		}
		return nil, err
	}

	recs := make([]Record, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			continue
		}

		recs = append(recs, rec)
	}

	return recs, nil
}

func (s *Store) Load(id string) (*Record, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, err
	}

	return &rec, nil
}

// MeshPoint is one mesh.csv row.
type MeshPoint struct {
	Row, Col int
	U, V     float64
	X, Y, Z  float64
}

// LoadMesh reads back the saved point grid.
func (s *Store) LoadMesh(id string) ([]MeshPoint, error) {
	file, err := os.Open(filepath.Join(s.baseDir, id, "mesh.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	points := make([]MeshPoint, 0, len(records))
	for i, rec := range records {
		if i == 0 || len(rec) < 7 {
			continue // header
		}
		row, err1 := strconv.Atoi(rec[0])
		col, err2 := strconv.Atoi(rec[1])
		if err1 != nil || err2 != nil {
			continue
		}
		vals := make([]float64, 5)
		ok := true
		for k := 0; k < 5; k++ {
			v, err := strconv.ParseFloat(rec[k+2], 64)
			if err != nil {
				ok = false
				break
			}
			vals[k] = v
		}
		if !ok {
			continue
		}
		points = append(points, MeshPoint{
			Row: row, Col: col,
			U: vals[0], V: vals[1],
			X: vals[2], Y: vals[3], Z: vals[4],
		})
	}

	return points, nil
}
