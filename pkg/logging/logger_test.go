package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerBasic(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "render", FlagLevel|FlagPrefix)

	logger.Info("swapped graph with %d nodes", 3)

	out := buf.String()
	if !strings.Contains(out, "[INFO]") {
		t.Error("missing level")
	}
	if !strings.Contains(out, "[render]") {
		t.Error("missing prefix")
	}
	if !strings.Contains(out, "swapped graph with 3 nodes") {
		t.Error("missing message")
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "", FlagLevel)
	logger.SetLevel(LevelWarn)

	logger.Info("should be dropped")
	logger.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("info message should have been filtered")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn message was dropped")
	}
}

func TestNewFromConfigStdoutOnly(t *testing.T) {
	l, err := NewFromConfig(Config{Level: "debug", LogToStdout: true}, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.level != LevelDebug {
		t.Errorf("expected debug level, got %v", l.level)
	}
}

func TestNewFromConfigRequiresLogFile(t *testing.T) {
	_, err := NewFromConfig(Config{Level: "info", LogToFile: true}, "test")
	if err == nil {
		t.Error("expected error when log_to_file is set without log_file")
	}
}

func TestParseLevelAliases(t *testing.T) {
	lvl, err := ParseLevel("trace")
	if err != nil || lvl != LevelDebug {
		t.Errorf("trace should alias to debug, got %v, err %v", lvl, err)
	}
	if _, err := ParseLevel("bogus"); err == nil {
		t.Error("expected error for unknown level")
	}
}
