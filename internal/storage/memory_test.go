package storage

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/choutianxius/mcp-todo-app/internal/todo"
)

func task(id, title string) todo.Task {
	return todo.Task{ID: id, Title: title, CreatedAt: 1000, UpdatedAt: 1000}
}

func TestMemoryInsertAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	want := task("a", "Buy milk")
	if err := s.Insert(ctx, want); err != nil {
		t.Fatal(err)
	}

	got, err := s.GetByID(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("expected task, got nil")
	}
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Fatalf("task mismatch (-want +got):\n%s", diff)
	}
}

func TestMemoryInsertDuplicateID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Insert(ctx, task("a", "one")); err != nil {
		t.Fatal(err)
	}
	if err := s.Insert(ctx, task("a", "two")); err == nil {
		t.Fatal("expected error on duplicate id")
	}
}

func TestMemoryGetByIDAbsent(t *testing.T) {
	s := NewMemoryStore()
	got, err := s.GetByID(context.Background(), "nope")
	if err != nil {
		t.Fatal(err)
	}
	if got != nil {
		t.Fatalf("expected nil for absent id, got %+v", got)
	}
}

func TestMemoryGetAllInsertionOrder(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := s.Insert(ctx, task(id, "t-"+id)); err != nil {
			t.Fatal(err)
		}
	}

	tasks, err := s.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 3 {
		t.Fatalf("len=%d", len(tasks))
	}
	for i, id := range []string{"a", "b", "c"} {
		if tasks[i].ID != id {
			t.Fatalf("tasks[%d].ID=%q, want %q", i, tasks[i].ID, id)
		}
	}
}

func TestMemoryPutUpdatesAndAppends(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Insert(ctx, task("a", "old")); err != nil {
		t.Fatal(err)
	}
	updated := task("a", "new")
	updated.Completed = true
	if err := s.Put(ctx, updated); err != nil {
		t.Fatal(err)
	}
	got, err := s.GetByID(ctx, "a")
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "new" || !got.Completed {
		t.Fatalf("put did not overwrite: %+v", got)
	}

	// Put of an unknown id behaves like insert.
	if err := s.Put(ctx, task("b", "fresh")); err != nil {
		t.Fatal(err)
	}
	all, err := s.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[1].ID != "b" {
		t.Fatalf("unexpected order after put: %+v", all)
	}
}

func TestMemoryDeleteByID(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		if err := s.Insert(ctx, task(id, id)); err != nil {
			t.Fatal(err)
		}
	}
	if err := s.DeleteByID(ctx, "b"); err != nil {
		t.Fatal(err)
	}
	// Deleting an absent id is a no-op.
	if err := s.DeleteByID(ctx, "b"); err != nil {
		t.Fatal(err)
	}

	all, err := s.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].ID != "a" || all[1].ID != "c" {
		t.Fatalf("unexpected remainder: %+v", all)
	}
}

func TestMemoryClear(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Insert(ctx, task("a", "one")); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	all, err := s.GetAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty store, got %d", len(all))
	}
}
