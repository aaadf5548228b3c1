package agent

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/choutianxius/mcp-todo-app/internal/todo"
)

func TestExtractFilter(t *testing.T) {
	cases := []struct {
		utterance string
		want      todo.Filter
	}{
		{"show all todos", todo.FilterAll},
		{"list todos", todo.FilterAll},
		{"show completed todos", todo.FilterCompleted},
		{"what have I done", todo.FilterCompleted},
		{"list finished items", todo.FilterCompleted},
		{"show pending todos", todo.FilterPending},
		{"list active tasks", todo.FilterPending},
		{"show incomplete ones", todo.FilterPending},
	}
	for _, c := range cases {
		if got := extractFilter(c.utterance); got != c.want {
			t.Fatalf("extractFilter(%q)=%q, want %q", c.utterance, got, c.want)
		}
	}
}

func TestExtractTitle(t *testing.T) {
	cases := []struct {
		utterance string
		want      string
	}{
		{"Add a todo: Buy groceries", "Buy groceries"},
		{"add: call mom", "call mom"},
		{"create todo: Fix the login bug", "Fix the login bug"},
		{"add a todo Buy milk", "Buy milk"},
		{"new todo water the plants", "water the plants"},
		{"add Buy milk", "Buy milk"},
		{"make dinner reservation", "dinner reservation"},
		{"Add a todo: Ship release description: cut the tag first", "Ship release"},
	}
	for _, c := range cases {
		got, ok := extractTitle(c.utterance)
		if !ok {
			t.Fatalf("extractTitle(%q): no match", c.utterance)
		}
		if got != c.want {
			t.Fatalf("extractTitle(%q)=%q, want %q", c.utterance, got, c.want)
		}
	}
}

func TestExtractTitleNoMatch(t *testing.T) {
	for _, utterance := range []string{"add", "add:   ", "something unrelated"} {
		if got, ok := extractTitle(utterance); ok {
			t.Fatalf("extractTitle(%q)=%q, expected no match", utterance, got)
		}
	}
}

func TestExtractTitleKeepsCase(t *testing.T) {
	got, ok := extractTitle("ADD A TODO: Review PR from María")
	if !ok || got != "Review PR from María" {
		t.Fatalf("got %q ok=%v", got, ok)
	}
}

func TestExtractDescription(t *testing.T) {
	got, ok := extractDescription("add: Ship release description: cut the tag first")
	if !ok || got != "cut the tag first" {
		t.Fatalf("got %q ok=%v", got, ok)
	}

	// Stops before a tags marker.
	got, ok = extractDescription("add: x description: the details tags: a, b")
	if !ok || got != "the details" {
		t.Fatalf("got %q ok=%v", got, ok)
	}

	if _, ok := extractDescription("add: just a title"); ok {
		t.Fatal("expected no description")
	}
}

func TestExtractTags(t *testing.T) {
	cases := []struct {
		utterance string
		want      []string
	}{
		{"new todo buy milk tags: urgent, grocery", []string{"urgent", "grocery"}},
		{"add: x tag: solo", []string{"solo"}},
		{"add: x tags: a, , b,", []string{"a", "b"}},
		{"Create: Fix bug #urgent #backend", []string{"urgent", "backend"}},
		{"add: plain todo", nil},
	}
	for _, c := range cases {
		got := extractTags(c.utterance)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Fatalf("extractTags(%q) mismatch (-want +got):\n%s", c.utterance, diff)
		}
	}
}
