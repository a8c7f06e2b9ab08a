// Package config handles configuration loading and management.
package config

import "github.com/halvden/hexfield/internal/engine/terrain"

// Config holds all renderer settings.
type Config struct {
	Data    DataConfig          `yaml:"data"`
	View    ViewConfig          `yaml:"view"`
	River   terrain.RiverConfig `yaml:"river"`
	Logging LoggingConfig       `yaml:"logging"`
}

// DataConfig holds asset file paths.
type DataConfig struct {
	SheetPath string `yaml:"sheet_path"` // Source texture sheet
	CachePath string `yaml:"cache_path"` // Packed atlas cache file
	UseCache  bool   `yaml:"use_cache"`
}

// ViewConfig holds projection settings.
type ViewConfig struct {
	Zoom float64 `yaml:"zoom"` // World units per half viewport height
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			SheetPath: "textures/terrain.png",
			CachePath: "cache/atlas.lz4",
			UseCache:  true,
		},
		View: ViewConfig{
			Zoom: 8,
		},
		River: terrain.RiverConfig{
			Permutation: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
