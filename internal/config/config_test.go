package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Backend != "json" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !strings.HasSuffix(cfg.DataPath, "notes.json") {
		t.Fatalf("unexpected data path default: %q", cfg.DataPath)
	}
	if cfg.EditorWidth != 60 || cfg.PreviewStyle != "dark" {
		t.Fatalf("unexpected editor defaults: %+v", cfg)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("NOTED_DATA", "state/custom.json")
	t.Setenv("NOTED_BACKEND", "sqlite")
	t.Setenv("NOTED_LOG", "state/noted.log")
	t.Setenv("NOTED_LOG_LEVEL", "debug")
	t.Setenv("NOTED_EDITOR_WIDTH", "80")
	t.Setenv("NOTED_PREVIEW_STYLE", "light")

	cfg := FromEnv(Default())
	if cfg.DataPath != "state/custom.json" || cfg.Backend != "sqlite" {
		t.Fatalf("unexpected storage config: %+v", cfg)
	}
	if cfg.LogPath != "state/noted.log" || cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log config: %+v", cfg)
	}
	if cfg.EditorWidth != 80 || cfg.PreviewStyle != "light" {
		t.Fatalf("unexpected editor config: %+v", cfg)
	}
}

func TestFromEnvIgnoresBadNumbers(t *testing.T) {
	t.Setenv("NOTED_EDITOR_WIDTH", "wide")
	cfg := FromEnv(Default())
	if cfg.EditorWidth != 60 {
		t.Fatalf("expected default width, got %d", cfg.EditorWidth)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "data_path: /tmp/n.db\nbackend: sqlite\neditor_width: 72\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path, Default())
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.DataPath != "/tmp/n.db" || cfg.Backend != "sqlite" || cfg.EditorWidth != 72 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unset keys should keep defaults: %+v", cfg)
	}

	missing, err := LoadFile(filepath.Join(dir, "nope.yaml"), Default())
	if err != nil || missing != Default() {
		t.Fatalf("missing file should yield defaults, got %+v (%v)", missing, err)
	}

	if err := os.WriteFile(path, []byte("editor_width: [1"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadFile(path, Default()); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLogFollowsDataPath(t *testing.T) {
	if Default().LogPath != "" {
		t.Fatalf("log path should be derived, got %q", Default().LogPath)
	}

	cfg := Default()
	cfg.DataPath = filepath.Join("elsewhere", "notes.db")
	got := cfg.WithLogBesideData()
	if want := filepath.Join("elsewhere", "noted.log"); got.LogPath != want {
		t.Fatalf("expected log beside data file %q, got %q", want, got.LogPath)
	}

	cfg.LogPath = "custom.log"
	if got := cfg.WithLogBesideData(); got.LogPath != "custom.log" {
		t.Fatalf("explicit log path should win, got %q", got.LogPath)
	}
}
