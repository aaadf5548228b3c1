package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/choutianxius/mcp-todo-app/internal/agent"
	"github.com/choutianxius/mcp-todo-app/internal/config"
	"github.com/choutianxius/mcp-todo-app/internal/i18n"
	"github.com/choutianxius/mcp-todo-app/internal/repl"
	"github.com/choutianxius/mcp-todo-app/internal/storage"
	"github.com/choutianxius/mcp-todo-app/internal/todo"
	"github.com/choutianxius/mcp-todo-app/internal/tools"
	"github.com/choutianxius/mcp-todo-app/internal/tui"
)

func main() {
	var (
		configPath string
		dbPath     string
		memory     bool
		plain      bool
		locale     string
		debug      bool
		reset      bool
	)
	flag.StringVar(&configPath, "config", "", "Path to config JSON")
	flag.StringVar(&dbPath, "db", "", "SQLite database path override")
	flag.BoolVar(&memory, "memory", false, "Use the ephemeral in-memory store")
	flag.BoolVar(&plain, "plain", false, "Run the readline REPL instead of the TUI")
	flag.StringVar(&locale, "locale", "", "UI locale (en, zh-CN); default auto-detect")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&reset, "reset", false, "Wipe the todo store and exit")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config failed: %v\n", err)
		os.Exit(1)
	}
	if dbPath != "" {
		cfg.Storage.BaseDir = filepath.Dir(dbPath)
		cfg.Storage.DBFile = filepath.Base(dbPath)
	}
	if memory {
		cfg.Storage.Memory = true
	}
	if plain {
		cfg.UI.Plain = true
	}
	if locale != "" {
		cfg.UI.Locale = locale
	}
	if debug {
		cfg.Log.Debug = true
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger failed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Storage-initialization failures are a blocking state: no UI starts.
	store, err := openStore(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init storage failed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	if reset {
		if err := store.Clear(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "reset failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("todo store cleared")
		return
	}

	registry := tools.NewRegistry(
		tools.NewListTool(store),
		tools.NewCreateTool(store),
		tools.NewUpdateTool(store),
		tools.NewDeleteTool(store),
		tools.NewToggleTool(store),
		tools.NewClearCompletedTool(store),
	)
	service := agent.New(registry, logger.Named("agent"))

	sessionID := newSessionID()
	logger.Info("session started",
		zap.String("session", sessionID),
		zap.Bool("memory", cfg.Storage.Memory))

	if cfg.UI.Plain {
		input := repl.NewLineInput(filepath.Join(cfg.Storage.BaseDir, "repl.history"))
		defer input.Close()
		loop := repl.NewLoop(service, input, os.Stdout)
		if err := loop.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "repl failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	lister := func(ctx context.Context) ([]todo.Task, error) {
		return store.GetAll(ctx)
	}
	if err := tui.Run(service, lister, sessionID, i18n.New(cfg.UI.Locale)); err != nil {
		fmt.Fprintf(os.Stderr, "tui failed: %v\n", err)
		os.Exit(1)
	}
}

// buildLogger writes structured logs to a file under the storage dir so the
// TUI's terminal output stays clean.
func buildLogger(cfg config.Config) (*zap.Logger, error) {
	if err := os.MkdirAll(cfg.Storage.BaseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create base dir: %w", err)
	}
	logPath := filepath.Join(cfg.Storage.BaseDir, "todo.log")

	zcfg := zap.NewProductionConfig()
	if cfg.Log.Debug {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	zcfg.OutputPaths = []string{logPath}
	zcfg.ErrorOutputPaths = []string{logPath}
	return zcfg.Build()
}

func openStore(cfg config.Config, logger *zap.Logger) (storage.Store, error) {
	if cfg.Storage.Memory {
		return storage.NewMemoryStore(), nil
	}
	return storage.NewSQLiteStore(cfg.DBPath(), logger.Named("storage"))
}

func newSessionID() string {
	buf := make([]byte, 4)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("sess_%d_%s", time.Now().UTC().Unix(), hex.EncodeToString(buf))
}
