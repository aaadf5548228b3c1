package storage

import (
	"context"

	"github.com/choutianxius/mcp-todo-app/internal/todo"
)

// Store 持久化接口，支持多后端 (SQLite / 内存)
// Store is the persistence interface supporting multiple backends.
//
// GetAll returns todos in the store's insertion order; callers that need a
// different ordering (e.g. newest-first listing) sort on their side. The store
// serializes concurrent writers to the same key; no cross-key transactions.
type Store interface {
	// Insert adds a new todo. Fails if the id is already present.
	Insert(ctx context.Context, t todo.Task) error

	// GetByID returns the todo with the given id, or (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*todo.Task, error)

	// GetAll returns every todo in insertion order.
	GetAll(ctx context.Context) ([]todo.Task, error)

	// Put overwrites the record for t.ID (last writer wins).
	Put(ctx context.Context, t todo.Task) error

	// DeleteByID removes a todo. No-op when absent.
	DeleteByID(ctx context.Context, id string) error

	// Clear wipes the store. Used by reset tooling only, never by the agent.
	Clear(ctx context.Context) error

	// 生命周期 / Lifecycle
	Close() error
}
