package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/choutianxius/mcp-todo-app/internal/todo"
)

// MemoryStore holds all todos in memory, protected by a mutex. Todos live in a
// map for O(1) lookup plus a separate slice to preserve insertion order for
// stable iteration in GetAll. State is ephemeral — it lives only for the
// duration of the process.
type MemoryStore struct {
	mu    sync.Mutex
	tasks map[string]todo.Task
	order []string // insertion order for stable iteration
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tasks: make(map[string]todo.Task),
	}
}

func (s *MemoryStore) Insert(_ context.Context, t todo.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[t.ID]; ok {
		return fmt.Errorf("insert todo: id %s already present", t.ID)
	}
	s.tasks[t.ID] = t
	s.order = append(s.order, t.ID)
	return nil
}

func (s *MemoryStore) GetByID(_ context.Context, id string) (*todo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *MemoryStore) GetAll(_ context.Context) ([]todo.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var tasks []todo.Task
	for _, id := range s.order {
		if t, ok := s.tasks[id]; ok {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

func (s *MemoryStore) Put(_ context.Context, t todo.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[t.ID]; !ok {
		s.order = append(s.order, t.ID)
	}
	s.tasks[t.ID] = t
	return nil
}

func (s *MemoryStore) DeleteByID(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return nil
	}
	delete(s.tasks, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = make(map[string]todo.Task)
	s.order = nil
	return nil
}

func (s *MemoryStore) Close() error { return nil }
