package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		" warn ":  slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"unknown": slog.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLevel(input); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "yaml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestConsoleHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelInfo)

	logger := slog.New(newConsoleHandler(&buf, levelVar)).With(FieldComponent, "sectionizer")
	logger.Info("extraction finished", FieldSource, "a.mkv", FieldFrameCount, 7200)

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("missing level tag: %q", line)
	}
	if !strings.Contains(line, "[sectionizer]") {
		t.Fatalf("component not promoted to header: %q", line)
	}
	if !strings.Contains(line, "extraction finished") {
		t.Fatalf("missing message: %q", line)
	}
	if !strings.Contains(line, "source=a.mkv") || !strings.Contains(line, "frame_count=7200") {
		t.Fatalf("missing fields: %q", line)
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)

	logger := slog.New(newConsoleHandler(&buf, levelVar))
	logger.Info("hidden")
	logger.Warn("visible")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Fatalf("info line leaked past warn level: %q", output)
	}
	if !strings.Contains(output, "visible") {
		t.Fatalf("warn line missing: %q", output)
	}
}

func TestConsoleHandlerGroupsPrefixKeys(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)

	logger := slog.New(newConsoleHandler(&buf, levelVar)).WithGroup("match")
	logger.Info("done", "radius", 5)

	if !strings.Contains(buf.String(), "match.radius=5") {
		t.Fatalf("group prefix missing: %q", buf.String())
	}
}

func TestJSONHandlerFieldNames(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)

	logger := slog.New(newJSONHandler(&buf, levelVar, false))
	logger.Info("sectionize complete", FieldSectionCount, 2)

	var payload map[string]any
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if payload["msg"] != "sectionize complete" {
		t.Fatalf("unexpected msg field: %v", payload["msg"])
	}
	if payload["level"] != "info" {
		t.Fatalf("unexpected level field: %v", payload["level"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatal("missing ts field")
	}
	if payload[FieldSectionCount] != float64(2) {
		t.Fatalf("unexpected section_count: %v", payload[FieldSectionCount])
	}
}

func TestNewNopDiscardsEverything(t *testing.T) {
	logger := NewNop()
	if logger == nil {
		t.Fatal("expected non-nil logger")
	}
	logger.Error("should vanish")
}
