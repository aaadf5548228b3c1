package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Storage.BaseDir == "" {
		t.Fatal("base dir empty")
	}
	if cfg.Storage.DBFile != "todos.db" {
		t.Fatalf("db file=%q", cfg.Storage.DBFile)
	}
	if cfg.Storage.Memory || cfg.UI.Plain || cfg.Log.Debug {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage.DBFile != "todos.db" {
		t.Fatalf("db file=%q", cfg.Storage.DBFile)
	}
}

func TestLoadOverlaysOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
  "storage": {"base_dir": "/tmp/todo-test", "memory": true},
  "ui": {"plain": true, "locale": "zh-CN"}
}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Storage.BaseDir != "/tmp/todo-test" {
		t.Fatalf("base dir=%q", cfg.Storage.BaseDir)
	}
	if !cfg.Storage.Memory || !cfg.UI.Plain {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.UI.Locale != "zh-CN" {
		t.Fatalf("locale=%q", cfg.UI.Locale)
	}
	// DBFile not set in the file keeps its default.
	if cfg.Storage.DBFile != "todos.db" {
		t.Fatalf("db file=%q", cfg.Storage.DBFile)
	}
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDBPath(t *testing.T) {
	cfg := Config{Storage: StorageConfig{BaseDir: "/data/todo", DBFile: "todos.db"}}
	if got := cfg.DBPath(); got != filepath.Join("/data/todo", "todos.db") {
		t.Fatalf("db path=%q", got)
	}
}
