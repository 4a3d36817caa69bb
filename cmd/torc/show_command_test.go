package main

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestShowMergesFileOverDefaults(t *testing.T) {
	path := writeTestConfig(t, "comment = from file\ntracker = https://a.example/announce\n")

	out, _, err := runCLI(t, []string{"show", "--format", "plain"}, path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if got := plainValue(t, out, "comment"); got != "from file" {
		t.Errorf("comment = %q", got)
	}
	if got := plainValue(t, out, "tracker"); got != `"https://a.example/announce"` {
		t.Errorf("tracker = %q", got)
	}
	if got := plainValue(t, out, "private"); got != "false" {
		t.Errorf("private = %q, want default", got)
	}
}

func TestShowCommandLineBeatsFile(t *testing.T) {
	path := writeTestConfig(t, "comment = from file\n")

	out, _, err := runCLI(t, []string{"show", "--format", "plain", "--comment", "from cli"}, path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if got := plainValue(t, out, "comment"); got != "from cli" {
		t.Errorf("comment = %q, want CLI value", got)
	}
}

func TestShowProfileApplication(t *testing.T) {
	path := writeTestConfig(t, "source = top\n[rel]\nsource = rel\nprivate\n")

	out, _, err := runCLI(t, []string{"show", "--format", "plain", "--profile", "rel"}, path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if got := plainValue(t, out, "source"); got != "rel" {
		t.Errorf("source = %q, want profile value", got)
	}
	if got := plainValue(t, out, "private"); got != "true" {
		t.Errorf("private = %q, want profile value", got)
	}
}

func TestShowExplicitFlagBeatsProfile(t *testing.T) {
	path := writeTestConfig(t, "[rel]\nprivate\n")

	out, _, err := runCLI(t, []string{"show", "--format", "plain", "--profile", "rel", "--private=false"}, path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if got := plainValue(t, out, "private"); got != "false" {
		t.Errorf("private = %q, explicit flag must beat profile", got)
	}
}

func TestShowUnknownProfileFails(t *testing.T) {
	path := writeTestConfig(t, "comment = hi\n")

	_, _, err := runCLI(t, []string{"show", "--profile", "missing"}, path)
	if err == nil {
		t.Fatal("expected error for unknown profile")
	}
	requireContains(t, err.Error(), "missing")
	requireContains(t, err.Error(), "No such profile")
}

func TestShowInvalidFileFails(t *testing.T) {
	path := writeTestConfig(t, "private = yes\n")

	_, _, err := runCLI(t, []string{"show"}, path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	requireContains(t, err.Error(), "Assignment to option")
}

func TestShowNoconfigIgnoresFile(t *testing.T) {
	path := writeTestConfig(t, "comment = from file\n")

	out, _, err := runCLI(t, []string{"show", "--noconfig", "--format", "plain"}, path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if got := plainValue(t, out, "comment"); got != "" {
		t.Errorf("comment = %q, want empty default with --noconfig", got)
	}
}

func TestShowMissingExplicitConfigFails(t *testing.T) {
	_, _, err := runCLI(t, []string{"show"}, "/nonexistent/torc-config")
	if err == nil {
		t.Fatal("expected error for missing --config file")
	}
	requireContains(t, err.Error(), "not found")
}

func TestShowJSONFormat(t *testing.T) {
	path := writeTestConfig(t, "tracker = https://a.example/announce\n[rel]\nprivate\n")

	out, _, err := runCLI(t, []string{"show", "--format", "json", "--profile", "rel"}, path)
	if err != nil {
		t.Fatalf("show: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if decoded["private"] != true {
		t.Errorf("private = %v, want true", decoded["private"])
	}
	trackers, ok := decoded["tracker"].([]any)
	if !ok || len(trackers) != 1 || trackers[0] != "https://a.example/announce" {
		t.Errorf("tracker = %v", decoded["tracker"])
	}
}

func TestShowTOMLAndYAMLFormats(t *testing.T) {
	path := writeTestConfig(t, "source = HOME\n")

	out, _, err := runCLI(t, []string{"show", "--format", "toml"}, path)
	if err != nil {
		t.Fatalf("show toml: %v", err)
	}
	requireContains(t, out, `source = 'HOME'`)

	out, _, err = runCLI(t, []string{"show", "--format", "yaml"}, path)
	if err != nil {
		t.Fatalf("show yaml: %v", err)
	}
	requireContains(t, out, "source: HOME")
}

func TestShowRejectsUnknownFormat(t *testing.T) {
	path := writeTestConfig(t, "")

	_, _, err := runCLI(t, []string{"show", "--format", "csv"}, path)
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
}
