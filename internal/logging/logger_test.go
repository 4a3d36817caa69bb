package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"torc/internal/logging"
)

func TestNewConsoleWritesSingleLines(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("resolved configuration", "options", 18, "profiles", 2)

	line := buf.String()
	if !strings.HasPrefix(line, "INFO resolved configuration") {
		t.Fatalf("unexpected line: %q", line)
	}
	if !strings.Contains(line, "options=18") || !strings.Contains(line, "profiles=2") {
		t.Fatalf("attrs missing from line: %q", line)
	}
	if strings.Count(line, "\n") != 1 {
		t.Fatalf("expected exactly one line, got %q", line)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Level: "warn", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line leaked through warn level: %q", out)
	}
	if !strings.Contains(out, "visible") {
		t.Fatalf("warn line missing: %q", out)
	}
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("parsed config", "path", "/tmp/config")

	out := buf.String()
	if !strings.Contains(out, `"msg":"parsed config"`) {
		t.Fatalf("unexpected JSON output: %q", out)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestQuotedAttrValues(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("loaded", "comment", "hello world")

	if !strings.Contains(buf.String(), `comment="hello world"`) {
		t.Fatalf("value with spaces not quoted: %q", buf.String())
	}
}

func TestNewNopDiscards(t *testing.T) {
	logger := logging.NewNop()
	logger.Error("must not panic or write anywhere")
}
