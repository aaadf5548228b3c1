package agent

import (
	"errors"
	"strings"
	"testing"

	"github.com/choutianxius/mcp-todo-app/internal/todo"
)

func TestRespondListEmpty(t *testing.T) {
	cases := []struct {
		filter todo.Filter
		want   string
	}{
		{todo.FilterAll, "No todos found."},
		{todo.FilterCompleted, "No completed todos found."},
		{todo.FilterPending, "No pending todos found."},
	}
	for _, c := range cases {
		if got := respondList(nil, c.filter); got != c.want {
			t.Fatalf("respondList(nil, %q)=%q, want %q", c.filter, got, c.want)
		}
	}
}

func TestRespondListNumbered(t *testing.T) {
	tasks := []todo.Task{
		{Title: "Buy milk", Completed: true},
		{Title: "Walk dog", Description: "around the block"},
	}
	got := respondList(tasks, todo.FilterAll)

	if !strings.HasPrefix(got, "Found 2 todo(s):\n\n") {
		t.Fatalf("header: %q", got)
	}
	if !strings.Contains(got, "1. ✓ Buy milk") {
		t.Fatalf("completed glyph: %q", got)
	}
	if !strings.Contains(got, "2. ○ Walk dog\n   around the block") {
		t.Fatalf("pending entry: %q", got)
	}
}

func TestRespondListNamesFilter(t *testing.T) {
	tasks := []todo.Task{{Title: "Buy milk"}}
	got := respondList(tasks, todo.FilterPending)
	if !strings.HasPrefix(got, "Found 1 pending todo(s):") {
		t.Fatalf("got %q", got)
	}
}

func TestRespondCreated(t *testing.T) {
	got := respondCreated("Buy milk", "", nil)
	if got != `Created todo: "Buy milk"` {
		t.Fatalf("got %q", got)
	}

	got = respondCreated("Buy milk", "two bottles", []string{"grocery", "urgent"})
	want := "Created todo: \"Buy milk\"\nDescription: two bottles\nTags: grocery, urgent"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRespondMutations(t *testing.T) {
	if got := respondCompleted("Buy milk"); got != `Marked "Buy milk" as complete!` {
		t.Fatalf("got %q", got)
	}
	if got := respondDeleted("Buy milk"); got != `Deleted "Buy milk".` {
		t.Fatalf("got %q", got)
	}
	if got := respondCleared(3); got != "Cleared 3 completed todo(s)." {
		t.Fatalf("got %q", got)
	}
	if got := respondError(errors.New("boom")); got != "Error: boom" {
		t.Fatalf("got %q", got)
	}
}

func TestRespondCreatedKeepsUnicodeTitles(t *testing.T) {
	got := respondCreated("买牛奶", "", nil)
	if got != `Created todo: "买牛奶"` {
		t.Fatalf("got %q", got)
	}
}
