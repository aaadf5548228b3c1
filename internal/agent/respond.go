package agent

import (
	"fmt"
	"strings"

	"github.com/choutianxius/mcp-todo-app/internal/todo"
)

// Response synthesis is pure string building: an operation outcome in,
// a display string out. The exact phrasing here is part of the engine's
// contract and is asserted by tests — change with care.

const clarifyTitleText = `I need a title to create a todo. Try: "Add a todo: Buy groceries"`

const clarifyCompleteText = `Which todo would you like to complete? Try: "Complete the first one" or mention the todo title.`

const clarifyDeleteText = `Which todo would you like to delete? Try: "Delete the first one" or mention the todo title.`

const noPendingText = "No pending todos to complete."

const helpText = `I can help you manage your todos! Here's what I can do:

• **List todos**: "Show all todos", "List pending todos"
• **Create todos**: "Add a todo: Buy milk", "Create: Fix bug #urgent"
• **Complete todos**: "Mark the first one as done", "Complete Buy milk"
• **Delete todos**: "Delete the second todo", "Remove Buy milk"
• **Clear completed**: "Clear all completed todos"

Just ask me in natural language and I'll help!`

const fallbackText = `I'm not sure what you want me to do. Try asking me to:
• List your todos
• Add a new todo
• Mark a todo as complete
• Delete a todo

Or type "help" to see all my capabilities!`

// respondList renders a list result as a numbered sequence with a
// checked/unchecked glyph. The empty-result phrasing names the filter that
// was applied.
func respondList(tasks []todo.Task, filter todo.Filter) string {
	filterWord := ""
	if filter != todo.FilterAll {
		filterWord = string(filter) + " "
	}

	if len(tasks) == 0 {
		return fmt.Sprintf("No %stodos found.", filterWord)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d %stodo(s):\n\n", len(tasks), filterWord)
	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		glyph := "○"
		if t.Completed {
			glyph = "✓"
		}
		line := fmt.Sprintf("%d. %s %s", i+1, glyph, t.Title)
		if t.Description != "" {
			line += "\n   " + t.Description
		}
		lines = append(lines, line)
	}
	b.WriteString(strings.Join(lines, "\n"))
	return b.String()
}

func respondCreated(title, description string, tags []string) string {
	text := `Created todo: "` + title + `"`
	if description != "" {
		text += "\nDescription: " + description
	}
	if len(tags) > 0 {
		text += "\nTags: " + strings.Join(tags, ", ")
	}
	return text
}

func respondCompleted(title string) string {
	return `Marked "` + title + `" as complete!`
}

func respondDeleted(title string) string {
	return `Deleted "` + title + `".`
}

func respondCleared(count int) string {
	return fmt.Sprintf("Cleared %d completed todo(s).", count)
}

func respondError(err error) string {
	return "Error: " + err.Error()
}
