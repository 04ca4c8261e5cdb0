package debuglog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelOff, "OFF"},
	}

	for _, test := range tests {
		if got := test.level.String(); got != test.expected {
			t.Errorf("LogLevel.String() = %q, want %q", got, test.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"DEBUG", LevelDebug},
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"WARN", LevelWarn},
		{"WARNING", LevelWarn},
		{"ERROR", LevelError},
		{"off", LevelOff},
		{"INVALID", LevelInfo}, // Default to INFO
		{"", LevelInfo},        // Default to INFO
	}

	for _, test := range tests {
		if got := ParseLogLevel(test.input); got != test.expected {
			t.Errorf("ParseLogLevel(%q) = %v, want %v", test.input, got, test.expected)
		}
	}
}

func TestSetupAndLevelFiltering(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	if err := Setup(LevelWarn, logPath); err != nil {
		t.Fatalf("Setup failed: %v", err)
	}
	defer Close()

	if GetLevel() != LevelWarn {
		t.Errorf("GetLevel() = %v, want %v", GetLevel(), LevelWarn)
	}

	Debugf("debug message") // filtered
	Infof("info message")   // filtered
	Warnf("warn message")
	Errorf("error message")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	content := string(data)

	if strings.Contains(content, "debug message") || strings.Contains(content, "info message") {
		t.Errorf("messages below WARN should be filtered, got:\n%s", content)
	}
	if !strings.Contains(content, "warn message") || !strings.Contains(content, "error message") {
		t.Errorf("WARN and ERROR messages should be written, got:\n%s", content)
	}
}

func TestSetupOff(t *testing.T) {
	if err := Setup(LevelOff); err != nil {
		t.Fatalf("Setup(LevelOff) error = %v", err)
	}
	// Logging while off is a no-op, not a crash
	Infof("goes nowhere")
}
