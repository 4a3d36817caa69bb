package cfgpath_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"torc/internal/cfgpath"
	"torc/internal/config"
)

func TestResolveDefaultMissing(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path, exists, err := cfgpath.Resolve("")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	want := filepath.Join(tempHome, ".config", "torc", "config")
	if path != want {
		t.Fatalf("resolved path %q, want %q", path, want)
	}
}

func TestResolveExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.conf")
	if err := os.WriteFile(path, []byte("private\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	resolved, exists, err := cfgpath.Resolve(path)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected existing file to be reported")
	}
	if resolved != path {
		t.Fatalf("resolved path %q, want %q", resolved, path)
	}
}

func TestResolveDirectoryFails(t *testing.T) {
	if _, _, err := cfgpath.Resolve(t.TempDir()); err == nil {
		t.Fatal("expected error for directory path")
	}
}

func TestExpandTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	got, err := cfgpath.Expand("~/torrents/out")
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if got != filepath.Join(tempHome, "torrents", "out") {
		t.Fatalf("expanded path %q", got)
	}
}

func TestWriteSampleParsesCleanly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config")
	if err := cfgpath.WriteSample(path); err != nil {
		t.Fatalf("WriteSample returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(raw), "[public]") {
		t.Fatal("sample is missing the profile example")
	}

	// Every line in the sample is commented out, so parsing it must yield an
	// empty file.
	file, err := config.Parse(strings.NewReader(string(raw)))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(file.Options) != 0 || len(file.Profiles) != 0 {
		t.Fatalf("sample config is not inert: %+v", file)
	}
}
