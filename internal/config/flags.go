package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagTolerance = flag.Float64("tolerance", 0, "Segment containment tolerance in scene units")
	flagWidth     = flag.Int("width", 0, "Screen width in pixels")
	flagHeight    = flag.Int("height", 0, "Screen height in pixels")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagTolerance > 0 {
		cfg.Collision.ContainmentTolerance = *flagTolerance
	}
	if *flagWidth > 0 {
		cfg.View.ScreenWidth = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.View.ScreenHeight = *flagHeight
	}
}
