package config

var Presets = map[string]*Config{
	"default": {
		Radius: 3.0, Width: 1.0, Resolution: 100,
		Render: RenderConfig{Wireframe: true, Surface: true, Colormap: "viridis"},
	},
	"ribbon": {
		Radius: 3.0, Width: 0.3, Resolution: 100,
		Render: RenderConfig{Wireframe: true, Surface: false, Colormap: "gray"},
	},
	"wide": {
		Radius: 2.0, Width: 2.5, Resolution: 150,
		Render: RenderConfig{Wireframe: false, Surface: true, Colormap: "plasma"},
	},
	"coarse": {
		Radius: 3.0, Width: 1.0, Resolution: 20,
		Render: RenderConfig{Wireframe: true, Surface: false, Colormap: "viridis"},
	},
	"fine": {
		Radius: 3.0, Width: 1.0, Resolution: 400,
		Render: RenderConfig{Wireframe: false, Surface: true, Colormap: "inferno"},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
