package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultRadius     = 3.0
	DefaultWidth      = 1.0
	DefaultResolution = 100
	DefaultColormap   = "viridis"
)

type Config struct {
	Radius     float64      `yaml:"radius"`
	Width      float64      `yaml:"width"`
	Resolution int          `yaml:"resolution"`
	Render     RenderConfig `yaml:"render"`
}

type RenderConfig struct {
	Wireframe bool   `yaml:"wireframe"`
	Surface   bool   `yaml:"surface"`
	Colormap  string `yaml:"colormap"`
}

func DefaultConfig() *Config {
	return &Config{
		Radius:     DefaultRadius,
		Width:      DefaultWidth,
		Resolution: DefaultResolution,
		Render: RenderConfig{
			Wireframe: true,
			Surface:   true,
			Colormap:  DefaultColormap,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
