package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: WARN, Format: TextFormat, Output: &buf})

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")

	output := buf.String()
	if strings.Contains(output, "debug message") {
		t.Error("DEBUG message should be filtered at WARN level")
	}
	if strings.Contains(output, "info message") {
		t.Error("INFO message should be filtered at WARN level")
	}
	if !strings.Contains(output, "warn message") {
		t.Error("WARN message should pass at WARN level")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: JSONFormat, Output: &buf, Component: "fetcher"})

	log.Info("fetched forecast", Fields{"days": 3, "endpoint": "primary"})

	var e entry
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if e.Level != "INFO" {
		t.Errorf("Expected level INFO, got %s", e.Level)
	}
	if e.Component != "fetcher" {
		t.Errorf("Expected component 'fetcher', got '%s'", e.Component)
	}
	if e.Message != "fetched forecast" {
		t.Errorf("Expected message 'fetched forecast', got '%s'", e.Message)
	}
	if e.Fields["endpoint"] != "primary" {
		t.Errorf("Expected endpoint field, got %v", e.Fields)
	}
}

func TestTextFormatSortedFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: TextFormat, Output: &buf})

	log.Info("snapshot stored", Fields{"zebra": 1, "alpha": 2, "mike": 3})

	output := buf.String()
	alphaIdx := strings.Index(output, "alpha=")
	mikeIdx := strings.Index(output, "mike=")
	zebraIdx := strings.Index(output, "zebra=")
	if alphaIdx < 0 || mikeIdx < 0 || zebraIdx < 0 {
		t.Fatalf("Expected all fields in output, got: %s", output)
	}
	if !(alphaIdx < mikeIdx && mikeIdx < zebraIdx) {
		t.Errorf("Expected fields in sorted key order, got: %s", output)
	}
}

func TestErrorIncluded(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: JSONFormat, Output: &buf})

	log.Error("fetch failed", errTest)

	var e entry
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if e.Error != "boom" {
		t.Errorf("Expected error 'boom', got '%s'", e.Error)
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	parent := New(Config{Level: DEBUG, Format: TextFormat, Output: &buf})
	child := parent.WithComponent("server")

	child.Info("listening")

	if !strings.Contains(buf.String(), "[server]") {
		t.Errorf("Expected component tag in output, got: %s", buf.String())
	}
}

func TestFatalCallsExit(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: DEBUG, Format: TextFormat, Output: &buf})

	exitCode := -1
	log.exit = func(code int) { exitCode = code }

	log.Fatal("unrecoverable", errTest)

	if exitCode != 1 {
		t.Errorf("Expected exit code 1, got %d", exitCode)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
		ok    bool
	}{
		{"debug", DEBUG, true},
		{"INFO", INFO, true},
		{"Warning", WARN, true},
		{"error", ERROR, true},
		{"fatal", FATAL, true},
		{"verbose", INFO, false},
		{"", INFO, false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.input)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseLevel(%q) = (%v, %v), want (%v, %v)", tt.input, got, ok, tt.want, tt.ok)
		}
	}
}

func TestResolveFormat(t *testing.T) {
	if resolveFormat("json", "development") != JSONFormat {
		t.Error("Explicit json should win over environment")
	}
	if resolveFormat("text", "production") != TextFormat {
		t.Error("Explicit text should win over environment")
	}
	if resolveFormat("auto", "development") != TextFormat {
		t.Error("Auto should resolve to text in development")
	}
	if resolveFormat("auto", "production") != JSONFormat {
		t.Error("Auto should resolve to JSON in production")
	}
}

type testErr string

func (e testErr) Error() string { return string(e) }

var errTest = testErr("boom")
