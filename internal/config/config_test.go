package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pders01/brkpt/display"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	// Display defaults mirror the classifier's own
	if cfg.Display.Thresholds["xs"] != 600 || cfg.Display.Thresholds["lg"] != 1920 {
		t.Errorf("Display.Thresholds = %v, want defaults 600/960/1280/1920", cfg.Display.Thresholds)
	}
	if cfg.Display.MobileBreakpoint != "md" {
		t.Errorf("Display.MobileBreakpoint = %s, want 'md'", cfg.Display.MobileBreakpoint)
	}

	if cfg.Database.Path == "" {
		t.Error("Database.Path should not be empty")
	}
	if cfg.UI.Colors.Primary == "" {
		t.Error("UI.Colors.Primary should not be empty")
	}
	if cfg.Log.Level != "off" {
		t.Errorf("Log.Level = %s, want 'off'", cfg.Log.Level)
	}
}

func TestLoad_DefaultConfig(t *testing.T) {
	// Loading without a config file should use defaults
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg == nil {
		t.Fatal("Load() returned nil config")
	}
	if cfg.Display.MobileBreakpoint != "md" {
		t.Errorf("Display.MobileBreakpoint = %s, want 'md'", cfg.Display.MobileBreakpoint)
	}
}

func TestLoad_CustomFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `[display]
mobile_breakpoint = "580"

[display.thresholds]
xs = 0
sm = 340
md = 540
lg = 800
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Display.MobileBreakpoint != "580" {
		t.Errorf("MobileBreakpoint = %s, want '580'", cfg.Display.MobileBreakpoint)
	}
	if cfg.Display.Thresholds["sm"] != 340 {
		t.Errorf("Thresholds[sm] = %d, want 340", cfg.Display.Thresholds["sm"])
	}

	opts := cfg.DisplayOptions()
	if opts.Thresholds[display.SM] != 340 {
		t.Errorf("DisplayOptions().Thresholds[sm] = %d, want 340", opts.Thresholds[display.SM])
	}
}

func TestWarnings(t *testing.T) {
	cfg := TestConfig()
	if w := cfg.Warnings(); len(w) != 0 {
		t.Errorf("default-shaped config should warn nothing, got %v", w)
	}

	cfg.Display.Thresholds = map[string]int{"xs": 900, "sm": 300}
	cfg.Display.MobileBreakpoint = "tablet"
	if w := cfg.Warnings(); len(w) != 2 {
		t.Errorf("expected ordering and selector warnings, got %v", w)
	}
}

func TestGenerateDefaultConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := GenerateDefaultConfig(path); err != nil {
		t.Fatalf("GenerateDefaultConfig() error = %v", err)
	}

	// Round-trip: Load should read back what Save wrote
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Display.Thresholds["md"] != 1280 {
		t.Errorf("round-tripped Thresholds[md] = %d, want 1280", cfg.Display.Thresholds["md"])
	}
}
