package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/choutianxius/mcp-todo-app/internal/storage"
	"github.com/choutianxius/mcp-todo-app/internal/todo"
)

// DeleteResult confirms a deletion.
type DeleteResult struct {
	Success   bool   `json:"success"`
	DeletedID string `json:"deletedId"`
}

// ClearResult reports how many completed todos were removed.
type ClearResult struct {
	Success      bool `json:"success"`
	DeletedCount int  `json:"deletedCount"`
}

func nowMillis() int64 { return time.Now().UnixMilli() }

func storeErr(op string, err error) error {
	return &todo.StoreError{Op: op, Err: err}
}

// --- list_todos ---

type ListTool struct {
	store storage.Store
}

func NewListTool(store storage.Store) *ListTool { return &ListTool{store: store} }

func (t *ListTool) Name() string { return "list_todos" }

func (t *ListTool) Definition() Definition {
	return Definition{
		Name:        t.Name(),
		Description: "Get all todo items. Returns an array of todos with their details.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"filter": map[string]any{
					"type":        "string",
					"enum":        []string{"all", "completed", "pending"},
					"description": "Filter todos by completion status",
				},
			},
		},
	}
}

func (t *ListTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Filter string `json:"filter,omitempty"`
	}
	if len(args) > 0 {
		if err := json.Unmarshal(args, &in); err != nil {
			return nil, &todo.ValidationError{Field: "args", Reason: err.Error()}
		}
	}

	tasks, err := t.store.GetAll(ctx)
	if err != nil {
		return nil, storeErr("scan", err)
	}

	switch todo.Filter(in.Filter) {
	case todo.FilterCompleted, todo.FilterPending:
		// 保持存储扫描顺序 / Keep store scan order for status filters.
		filtered := make([]todo.Task, 0, len(tasks))
		for _, task := range tasks {
			if task.Matches(todo.Filter(in.Filter)) {
				filtered = append(filtered, task)
			}
		}
		return filtered, nil
	default:
		// 全量列表按创建时间倒序（最新在前）
		// The unfiltered list is ordered by creation time, newest first.
		sorted := make([]todo.Task, len(tasks))
		copy(sorted, tasks)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].CreatedAt > sorted[j].CreatedAt
		})
		return sorted, nil
	}
}

// --- create_todo ---

type CreateTool struct {
	store storage.Store
}

func NewCreateTool(store storage.Store) *CreateTool { return &CreateTool{store: store} }

func (t *CreateTool) Name() string { return "create_todo" }

func (t *CreateTool) Definition() Definition {
	return Definition{
		Name:        t.Name(),
		Description: "Create a new todo item. Returns the created todo with its generated ID.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"title": map[string]any{
					"type":        "string",
					"description": "The title of the todo item",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "Optional detailed description of the todo",
				},
				"tags": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "Optional tags for categorizing the todo",
				},
			},
			"required": []string{"title"},
		},
	}
}

func (t *CreateTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		Title       string   `json:"title"`
		Description string   `json:"description,omitempty"`
		Tags        []string `json:"tags,omitempty"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, &todo.ValidationError{Field: "args", Reason: err.Error()}
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, &todo.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	now := nowMillis()
	task := todo.Task{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Description: in.Description,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
		Tags:        in.Tags,
	}
	if err := t.store.Insert(ctx, task); err != nil {
		return nil, storeErr("insert", err)
	}
	return task, nil
}

// --- update_todo ---

type UpdateTool struct {
	store storage.Store
}

func NewUpdateTool(store storage.Store) *UpdateTool { return &UpdateTool{store: store} }

func (t *UpdateTool) Name() string { return "update_todo" }

func (t *UpdateTool) Definition() Definition {
	return Definition{
		Name:        t.Name(),
		Description: "Update an existing todo item. Can modify title, description, completion status, or tags.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "The ID of the todo to update",
				},
				"title": map[string]any{
					"type":        "string",
					"description": "New title for the todo",
				},
				"description": map[string]any{
					"type":        "string",
					"description": "New description for the todo",
				},
				"completed": map[string]any{
					"type":        "boolean",
					"description": "New completion status",
				},
				"tags": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "New tags for the todo",
				},
			},
			"required": []string{"id"},
		},
	}
}

func (t *UpdateTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	// Pointer fields distinguish "absent" from "set to zero value"; only
	// fields present in the input are merged over the existing record.
	var in struct {
		ID          string    `json:"id"`
		Title       *string   `json:"title,omitempty"`
		Description *string   `json:"description,omitempty"`
		Completed   *bool     `json:"completed,omitempty"`
		Tags        *[]string `json:"tags,omitempty"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, &todo.ValidationError{Field: "args", Reason: err.Error()}
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, &todo.ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if in.Title != nil && strings.TrimSpace(*in.Title) == "" {
		return nil, &todo.ValidationError{Field: "title", Reason: "must not be empty"}
	}

	existing, err := t.store.GetByID(ctx, in.ID)
	if err != nil {
		return nil, storeErr("lookup", err)
	}
	if existing == nil {
		return nil, &todo.NotFoundError{ID: in.ID}
	}

	updated := *existing
	if in.Title != nil {
		updated.Title = *in.Title
	}
	if in.Description != nil {
		updated.Description = *in.Description
	}
	if in.Completed != nil {
		updated.Completed = *in.Completed
	}
	if in.Tags != nil {
		updated.Tags = *in.Tags
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = nowMillis()

	if err := t.store.Put(ctx, updated); err != nil {
		return nil, storeErr("put", err)
	}
	return updated, nil
}

// --- toggle_todo ---

type ToggleTool struct {
	store storage.Store
}

func NewToggleTool(store storage.Store) *ToggleTool { return &ToggleTool{store: store} }

func (t *ToggleTool) Name() string { return "toggle_todo" }

func (t *ToggleTool) Definition() Definition {
	return Definition{
		Name:        t.Name(),
		Description: "Toggle the completion status of a todo item. Returns the updated todo.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "The ID of the todo to toggle",
				},
			},
			"required": []string{"id"},
		},
	}
}

func (t *ToggleTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, &todo.ValidationError{Field: "args", Reason: err.Error()}
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, &todo.ValidationError{Field: "id", Reason: "must not be empty"}
	}

	existing, err := t.store.GetByID(ctx, in.ID)
	if err != nil {
		return nil, storeErr("lookup", err)
	}
	if existing == nil {
		return nil, &todo.NotFoundError{ID: in.ID}
	}

	updated := *existing
	updated.Completed = !existing.Completed
	updated.UpdatedAt = nowMillis()

	if err := t.store.Put(ctx, updated); err != nil {
		return nil, storeErr("put", err)
	}
	return updated, nil
}

// --- delete_todo ---

type DeleteTool struct {
	store storage.Store
}

func NewDeleteTool(store storage.Store) *DeleteTool { return &DeleteTool{store: store} }

func (t *DeleteTool) Name() string { return "delete_todo" }

func (t *DeleteTool) Definition() Definition {
	return Definition{
		Name:        t.Name(),
		Description: "Delete a todo item by its ID. Returns success confirmation.",
		InputSchema: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{
					"type":        "string",
					"description": "The ID of the todo to delete",
				},
			},
			"required": []string{"id"},
		},
	}
}

func (t *DeleteTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	var in struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(args, &in); err != nil {
		return nil, &todo.ValidationError{Field: "args", Reason: err.Error()}
	}
	if strings.TrimSpace(in.ID) == "" {
		return nil, &todo.ValidationError{Field: "id", Reason: "must not be empty"}
	}

	existing, err := t.store.GetByID(ctx, in.ID)
	if err != nil {
		return nil, storeErr("lookup", err)
	}
	if existing == nil {
		return nil, &todo.NotFoundError{ID: in.ID}
	}

	if err := t.store.DeleteByID(ctx, in.ID); err != nil {
		return nil, storeErr("delete", err)
	}
	return DeleteResult{Success: true, DeletedID: in.ID}, nil
}

// --- clear_completed ---

type ClearCompletedTool struct {
	store storage.Store
}

func NewClearCompletedTool(store storage.Store) *ClearCompletedTool {
	return &ClearCompletedTool{store: store}
}

func (t *ClearCompletedTool) Name() string { return "clear_completed" }

func (t *ClearCompletedTool) Definition() Definition {
	return Definition{
		Name:        t.Name(),
		Description: "Delete all completed todo items. Returns the number of items deleted.",
		InputSchema: map[string]any{
			"type":       "object",
			"properties": map[string]any{},
		},
	}
}

func (t *ClearCompletedTool) Execute(ctx context.Context, args json.RawMessage) (any, error) {
	_ = args
	tasks, err := t.store.GetAll(ctx)
	if err != nil {
		return nil, storeErr("scan", err)
	}

	var completed []string
	for _, task := range tasks {
		if task.Completed {
			completed = append(completed, task.ID)
		}
	}

	// 并发删除：键互不相同，但要等全部完成后才能上报计数
	// Deletions target disjoint keys and may run concurrently; the count is
	// reported only after every deletion has finished.
	g, gctx := errgroup.WithContext(ctx)
	for _, id := range completed {
		g.Go(func() error {
			if err := t.store.DeleteByID(gctx, id); err != nil {
				return fmt.Errorf("delete %s: %w", id, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, storeErr("clear completed", err)
	}

	return ClearResult{Success: true, DeletedCount: len(completed)}, nil
}
