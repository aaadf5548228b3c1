package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/choutianxius/mcp-todo-app/internal/todo"
)

// RenderMarkdown 使用 Glamour 渲染 markdown 文本
// RenderMarkdown renders markdown text using Glamour. Agent replies (notably
// the help block) carry markdown emphasis.
func RenderMarkdown(content string, width int) string {
	if strings.TrimSpace(content) == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	return strings.TrimRight(rendered, "\n")
}

// RenderTodoLine 渲染一条待办 / RenderTodoLine renders one todo entry with a
// checked/unchecked glyph, tags, and an optional indented description.
func RenderTodoLine(index int, t todo.Task, theme Theme) string {
	glyph := "○"
	titleStyle := theme.TodoTitleStyle
	if t.Completed {
		glyph = theme.SuccessStyle.Render("✓")
		titleStyle = theme.TodoDoneStyle
	}

	line := fmt.Sprintf("%2d. %s %s", index+1, glyph, titleStyle.Render(t.Title))
	if len(t.Tags) > 0 {
		parts := make([]string, 0, len(t.Tags))
		for _, tag := range t.Tags {
			parts = append(parts, theme.TagStyle.Render("#"+tag))
		}
		line += " " + strings.Join(parts, " ")
	}
	if t.Description != "" {
		line += "\n      " + theme.MutedStyle.Render(t.Description)
	}
	return line
}

// RenderTodoList 渲染待办面板内容 / RenderTodoList renders the todo panel.
func RenderTodoList(tasks []todo.Task, emptyText string, theme Theme) string {
	if len(tasks) == 0 {
		return theme.MutedStyle.Render("  " + emptyText)
	}
	lines := make([]string, 0, len(tasks))
	for i, t := range tasks {
		lines = append(lines, RenderTodoLine(i, t, theme))
	}
	return strings.Join(lines, "\n")
}
