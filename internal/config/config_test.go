package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Radius != 3.0 {
		t.Errorf("expected radius 3.0, got %g", cfg.Radius)
	}
	if cfg.Width != 1.0 {
		t.Errorf("expected width 1.0, got %g", cfg.Width)
	}
	if cfg.Resolution != 100 {
		t.Errorf("expected resolution 100, got %d", cfg.Resolution)
	}
	if cfg.Render.Colormap != "viridis" {
		t.Errorf("expected viridis colormap, got %s", cfg.Render.Colormap)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strip.yaml")

	cfg := DefaultConfig()
	cfg.Radius = 2.5
	cfg.Width = 0.4
	cfg.Resolution = 64
	cfg.Render.Surface = false

	if err := Save(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.Radius != 2.5 || loaded.Width != 0.4 || loaded.Resolution != 64 {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
	if loaded.Render.Surface {
		t.Error("render.surface should have stayed false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("ribbon")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Width != 0.3 {
		t.Errorf("expected width 0.3, got %g", cfg.Width)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}

	found := false
	for _, n := range names {
		if n == "default" {
			found = true
		}
	}
	if !found {
		t.Error("expected default preset in list")
	}
}
