package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/choutianxius/mcp-todo-app/internal/todo"

	_ "modernc.org/sqlite"
)

// SQLiteStore 基于 SQLite (WAL 模式) 的持久化实现
// SQLiteStore implements Store using SQLite with WAL mode.
type SQLiteStore struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// NewSQLiteStore 创建并初始化 SQLite 数据库
// NewSQLiteStore creates and initializes a SQLite database.
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	dbPath = strings.TrimSpace(dbPath)
	if dbPath == "" {
		return nil, fmt.Errorf("sqlite db path is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// 启用 WAL 模式和优化 PRAGMA / Enable WAL and performance PRAGMAs
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("exec %q: %w", p, err)
		}
	}

	store := &SQLiteStore{db: db, path: dbPath, logger: logger}
	if err := store.ensureSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}
	logger.Debug("sqlite store ready", zap.String("path", dbPath))
	return store, nil
}

func (s *SQLiteStore) ensureSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS todos (
		id          TEXT PRIMARY KEY,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		completed   INTEGER NOT NULL DEFAULT 0,
		created_at  INTEGER NOT NULL,
		updated_at  INTEGER NOT NULL,
		tags        TEXT NOT NULL DEFAULT '[]'
	);

	CREATE INDEX IF NOT EXISTS idx_todos_completed ON todos(completed);
	CREATE INDEX IF NOT EXISTS idx_todos_created ON todos(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close 关闭数据库连接 / Close the database connection
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQLiteStore) Insert(ctx context.Context, t todo.Task) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO todos (id, title, description, completed, created_at, updated_at, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, t.Description, boolToInt(t.Completed), t.CreatedAt, t.UpdatedAt, tagsToJSON(t.Tags),
	)
	if err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

func (s *SQLiteStore) GetByID(ctx context.Context, id string) (*todo.Task, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, title, description, completed, created_at, updated_at, tags
		FROM todos WHERE id=?`, id)

	t, err := scanTask(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load todo: %w", err)
	}
	return &t, nil
}

// GetAll 按插入顺序返回全部待办 / GetAll returns every todo in insertion order.
func (s *SQLiteStore) GetAll(ctx context.Context) ([]todo.Task, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, completed, created_at, updated_at, tags
		FROM todos ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("query todos: %w", err)
	}
	defer rows.Close()

	var tasks []todo.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *SQLiteStore) Put(ctx context.Context, t todo.Task) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO todos (id, title, description, completed, created_at, updated_at, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title=excluded.title, description=excluded.description,
			completed=excluded.completed, created_at=excluded.created_at,
			updated_at=excluded.updated_at, tags=excluded.tags`,
		t.ID, t.Title, t.Description, boolToInt(t.Completed), t.CreatedAt, t.UpdatedAt, tagsToJSON(t.Tags),
	)
	if err != nil {
		return fmt.Errorf("put todo: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DeleteByID(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM todos WHERE id=?`, id); err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM todos`); err != nil {
		return fmt.Errorf("clear todos: %w", err)
	}
	return nil
}

// --- Helpers ---

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (todo.Task, error) {
	var t todo.Task
	var completed int
	var tagsJSON string
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &completed,
		&t.CreatedAt, &t.UpdatedAt, &tagsJSON); err != nil {
		return todo.Task{}, err
	}
	t.Completed = completed != 0
	if tagsJSON != "" && tagsJSON != "[]" {
		var tags []string
		if err := json.Unmarshal([]byte(tagsJSON), &tags); err == nil {
			t.Tags = tags
		}
	}
	return t, nil
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

func tagsToJSON(tags []string) string {
	if len(tags) == 0 {
		return "[]"
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return "[]"
	}
	return string(data)
}
