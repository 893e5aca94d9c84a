// Package config handles engine configuration loading and management.
package config

// Config holds all engine settings.
type Config struct {
	View      ViewConfig      `yaml:"view"`
	Collision CollisionConfig `yaml:"collision"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// ViewConfig describes the screen and the scene view it shows; unit
// conversions are derived from it.
type ViewConfig struct {
	ScreenWidth  int     `yaml:"screen_width"`  // pixels
	ScreenHeight int     `yaml:"screen_height"` // pixels
	WidthUnits   float64 `yaml:"width_units"`   // scene units spanned horizontally
}

// CollisionConfig holds collision geometry settings.
type CollisionConfig struct {
	// ContainmentTolerance is the distance within which a position
	// counts as lying on a polygon segment, in scene units.
	ContainmentTolerance float64 `yaml:"containment_tolerance"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			ScreenWidth:  1280,
			ScreenHeight: 720,
			WidthUnits:   20,
		},
		Collision: CollisionConfig{
			ContainmentTolerance: 0.01,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
