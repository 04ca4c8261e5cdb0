package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/pders01/brkpt/display"
	"github.com/pders01/brkpt/internal/validation"
)

type Config struct {
	Display  DisplayConfig  `mapstructure:"display" toml:"display"`
	Database DatabaseConfig `mapstructure:"database" toml:"database"`
	UI       UIConfig       `mapstructure:"ui" toml:"ui"`
	Log      LogConfig      `mapstructure:"log" toml:"log"`
}

type DisplayConfig struct {
	// Thresholds partially overrides the default column boundaries;
	// keys are the bucket names xs, sm, md, lg.
	Thresholds map[string]int `mapstructure:"thresholds" toml:"thresholds"`

	// MobileBreakpoint is a bucket name or a literal cutoff width.
	MobileBreakpoint string `mapstructure:"mobile_breakpoint" toml:"mobile_breakpoint"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path"`
}

type UIConfig struct {
	Colors UIColors `mapstructure:"colors" toml:"colors"`
}

type UIColors struct {
	Primary   string `mapstructure:"primary" toml:"primary"`
	Secondary string `mapstructure:"secondary" toml:"secondary"`
	Accent    string `mapstructure:"accent" toml:"accent"`
	Text      string `mapstructure:"text" toml:"text"`
	Muted     string `mapstructure:"muted" toml:"muted"`
	Error     string `mapstructure:"error" toml:"error"`
}

type LogConfig struct {
	Level string `mapstructure:"level" toml:"level"`
	Path  string `mapstructure:"path" toml:"path"`
}

func defaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	dbPath := filepath.Join(homeDir, ".brkpt.db")

	def := display.DefaultThresholds()

	return &Config{
		Display: DisplayConfig{
			Thresholds: map[string]int{
				"xs": def.XS,
				"sm": def.SM,
				"md": def.MD,
				"lg": def.LG,
			},
			MobileBreakpoint: display.DefaultMobileBreakpoint,
		},
		Database: DatabaseConfig{
			Path: dbPath,
		},
		UI: UIConfig{
			Colors: UIColors{
				Primary:   "#FF6B6B",
				Secondary: "#4ECDC4",
				Accent:    "#95E1D3",
				Text:      "#EAEAEA",
				Muted:     "#94A3B8",
				Error:     "#F87171",
			},
		},
		Log: LogConfig{
			Level: "off",
			Path:  "",
		},
	}
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	cfg := defaultConfig()
	v.SetDefault("display", cfg.Display)
	v.SetDefault("database", cfg.Database)
	v.SetDefault("ui", cfg.UI)
	v.SetDefault("log", cfg.Log)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		homeDir, _ := os.UserHomeDir()
		configDir := filepath.Join(homeDir, ".config", "brkpt")

		v.SetConfigName("config")
		v.SetConfigType("toml")
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("BRKPT")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	config.Database.Path = expandPath(config.Database.Path)
	config.Log.Path = expandPath(config.Log.Path)

	return &config, nil
}

// Warnings reports advisory problems with the display section: boundaries
// out of ascending order, negative boundaries, an unknown mobile_breakpoint
// name. The classifier itself never validates, so load time is the only
// chance a misconfigured file gets a hint.
func (c *Config) Warnings() []string {
	return validation.CheckDisplay(c.Display.Thresholds, c.Display.MobileBreakpoint)
}

// DisplayOptions converts the display section into classifier options.
func (c *Config) DisplayOptions() display.Options {
	overrides := make(map[display.Breakpoint]int, len(c.Display.Thresholds))
	for name, v := range c.Display.Thresholds {
		overrides[display.Breakpoint(name)] = v
	}
	return display.Options{
		Thresholds:       overrides,
		MobileBreakpoint: c.Display.MobileBreakpoint,
	}
}

// DefaultPath returns the path Load reads when no explicit path is given.
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "brkpt", "config.toml")
}

// expandPath expands ~ to home directory and converts to absolute path
func expandPath(path string) string {
	if path == "" {
		return path
	}

	if len(path) >= 2 && path[:2] == "~/" {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}

	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return path
}

func Save(config *Config, path string) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

func GenerateDefaultConfig(path string) error {
	return Save(defaultConfig(), path)
}
