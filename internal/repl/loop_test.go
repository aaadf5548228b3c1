package repl

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/choutianxius/mcp-todo-app/internal/agent"
	"github.com/choutianxius/mcp-todo-app/internal/storage"
	"github.com/choutianxius/mcp-todo-app/internal/tools"
)

// scriptedInput feeds a fixed sequence of lines, then EOF.
type scriptedInput struct {
	lines []string
}

func (s *scriptedInput) ReadLine(string) (string, error) {
	if len(s.lines) == 0 {
		return "", io.EOF
	}
	line := s.lines[0]
	s.lines = s.lines[1:]
	return line, nil
}

func (s *scriptedInput) Close() error { return nil }

func newTestLoop(lines []string) (*Loop, *strings.Builder) {
	store := storage.NewMemoryStore()
	registry := tools.NewRegistry(
		tools.NewListTool(store),
		tools.NewCreateTool(store),
		tools.NewUpdateTool(store),
		tools.NewDeleteTool(store),
		tools.NewToggleTool(store),
		tools.NewClearCompletedTool(store),
	)
	service := agent.New(registry, nil)
	var out strings.Builder
	return NewLoop(service, &scriptedInput{lines: lines}, &out), &out
}

func TestLoopRunsTurnsUntilEOF(t *testing.T) {
	loop, out := newTestLoop([]string{
		"Add a todo: Buy milk",
		"show all todos",
	})
	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	got := out.String()
	if !strings.Contains(got, `Created todo: "Buy milk"`) {
		t.Fatalf("missing create reply:\n%s", got)
	}
	if !strings.Contains(got, "create_todo") {
		t.Fatalf("missing tool trace:\n%s", got)
	}
	if !strings.Contains(got, "Found 1 todo(s):") {
		t.Fatalf("missing list reply:\n%s", got)
	}
}

func TestLoopExitCommand(t *testing.T) {
	loop, out := newTestLoop([]string{"exit", "Add a todo: never runs"})
	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "never runs") {
		t.Fatalf("loop did not stop at exit:\n%s", out.String())
	}
}

func TestLoopToolsCommand(t *testing.T) {
	loop, out := newTestLoop([]string{"/tools"})
	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, name := range []string{"list_todos", "create_todo", "clear_completed"} {
		if !strings.Contains(got, name) {
			t.Fatalf("missing %s in /tools output:\n%s", name, got)
		}
	}
}

func TestLoopSkipsBlankLines(t *testing.T) {
	loop, out := newTestLoop([]string{"", "   ", "quit"})
	if err := loop.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "Error") {
		t.Fatalf("blank lines caused output:\n%s", out.String())
	}
}
