package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// StorageConfig 存储配置 / StorageConfig selects the todo store backend.
type StorageConfig struct {
	// BaseDir is where the database and logs live. Default: ~/.mcp-todo
	BaseDir string `json:"base_dir"`
	// DBFile is the SQLite filename inside BaseDir.
	DBFile string `json:"db_file"`
	// Memory switches to the ephemeral in-memory store.
	Memory bool `json:"memory"`
}

// UIConfig 界面配置 / UIConfig controls the presentation layer.
type UIConfig struct {
	// Plain runs the readline REPL instead of the TUI.
	Plain bool `json:"plain"`
	// Locale for UI chrome labels ("en", "zh-CN"); empty means auto-detect.
	Locale string `json:"locale"`
}

type LogConfig struct {
	// Debug switches the zap logger to development config at debug level.
	Debug bool `json:"debug"`
}

type Config struct {
	Storage StorageConfig `json:"storage"`
	UI      UIConfig      `json:"ui"`
	Log     LogConfig     `json:"log"`
}

// Default 返回默认配置 / Default returns the built-in defaults.
func Default() Config {
	base := ".mcp-todo"
	if home, err := os.UserHomeDir(); err == nil {
		base = filepath.Join(home, ".mcp-todo")
	}
	return Config{
		Storage: StorageConfig{
			BaseDir: base,
			DBFile:  "todos.db",
		},
	}
}

// Load 读取配置文件并覆盖默认值；文件不存在时返回默认配置
// Load reads the JSON config at path and overlays it on the defaults. A
// missing file (or an empty path with no default file) yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	path = strings.TrimSpace(path)
	if path == "" {
		path = filepath.Join(cfg.Storage.BaseDir, "config.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if strings.TrimSpace(cfg.Storage.BaseDir) == "" {
		cfg.Storage.BaseDir = Default().Storage.BaseDir
	}
	if strings.TrimSpace(cfg.Storage.DBFile) == "" {
		cfg.Storage.DBFile = Default().Storage.DBFile
	}
	return cfg, nil
}

// DBPath 数据库完整路径 / DBPath is the full path of the SQLite database.
func (c Config) DBPath() string {
	return filepath.Join(c.Storage.BaseDir, c.Storage.DBFile)
}
