package config

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	return &Config{
		Display: DisplayConfig{
			Thresholds: map[string]int{
				"xs": 600,
				"sm": 960,
				"md": 1280,
				"lg": 1920,
			},
			MobileBreakpoint: "md",
		},
		Database: DatabaseConfig{
			Path: ":memory:",
		},
		UI:  defaultConfig().UI,
		Log: LogConfig{Level: "off"},
	}
}
