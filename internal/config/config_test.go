package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := Defaults()
	if s != want {
		t.Errorf("Load(\"\") = %+v, want defaults %+v", s, want)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ched.toml")
	content := "[buffer]\nblockSize = 64\n\n[trace]\npath = \"trace.jsonl\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.BufferBlockSize != 64 {
		t.Errorf("BufferBlockSize = %d, want 64", s.BufferBlockSize)
	}
	if s.TracePath != "trace.jsonl" {
		t.Errorf("TracePath = %q, want trace.jsonl", s.TracePath)
	}
	if s.TimelineBlockSize != Defaults().TimelineBlockSize {
		t.Errorf("TimelineBlockSize = %d, want default %d", s.TimelineBlockSize, Defaults().TimelineBlockSize)
	}
}

func TestLoadMissingFileIsNotError(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load of missing file returned error: %v", err)
	}
	if s != Defaults() {
		t.Errorf("Load of missing file = %+v, want defaults", s)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ched.toml")
	if err := os.WriteFile(path, []byte("[buffer]\nblockSize = 64\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	os.Setenv("CHED_BUFFER_BLOCK", "128")
	defer os.Unsetenv("CHED_BUFFER_BLOCK")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.BufferBlockSize != 128 {
		t.Errorf("BufferBlockSize = %d, want env override 128", s.BufferBlockSize)
	}
}
