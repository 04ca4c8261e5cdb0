package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r)
		outC <- buf.String()
	}()

	fn()

	w.Close()
	os.Stdout = old
	return <-outC
}

func TestVersionCommand(t *testing.T) {
	out := captureStdout(t, func() {
		versionCmd.Run(nil, nil)
	})

	if !strings.Contains(out, "brkpt dev") {
		t.Errorf("Expected version output to contain 'brkpt dev', got: %s", out)
	}
	if !strings.Contains(out, "github.com/pders01/brkpt") {
		t.Errorf("Expected version output to contain module path, got: %s", out)
	}
}

func TestGenerateConfigCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	origConfigPath := configPath
	configPath = path
	defer func() { configPath = origConfigPath }()

	out := captureStdout(t, func() {
		if err := generateConfigCmd.RunE(nil, nil); err != nil {
			t.Errorf("generate-config failed: %v", err)
		}
	})

	if !strings.Contains(out, path) {
		t.Errorf("Expected output to mention %s, got: %s", path, out)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if !strings.Contains(string(data), "mobile_breakpoint") {
		t.Errorf("generated config missing display section, got:\n%s", data)
	}
}

func TestInspectFixedWidth(t *testing.T) {
	origConfigPath := configPath
	configPath = filepath.Join(t.TempDir(), "missing.toml")
	defer func() { configPath = origConfigPath }()

	origWidth, origHeight, origJSON := inspectWidth, inspectHeight, inspectJSON
	inspectWidth, inspectHeight, inspectJSON = 1024, 40, false
	defer func() { inspectWidth, inspectHeight, inspectJSON = origWidth, origHeight, origJSON }()

	// Missing explicit config files are an error for viper, so point at a
	// real (empty) one.
	if err := os.WriteFile(configPath, []byte(""), 0o644); err != nil {
		t.Fatal(err)
	}

	out := captureStdout(t, func() {
		if err := inspectCmd.RunE(nil, nil); err != nil {
			t.Errorf("inspect failed: %v", err)
		}
	})

	if !strings.Contains(out, "1024") {
		t.Errorf("Expected inspect output to contain the width, got: %s", out)
	}
	if !strings.Contains(out, "md") {
		t.Errorf("Expected 1024 to classify as md, got: %s", out)
	}
}
