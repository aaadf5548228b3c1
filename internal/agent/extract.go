package agent

import (
	"regexp"
	"strings"

	"github.com/choutianxius/mcp-todo-app/internal/todo"
)

// Argument extraction runs against the original-case utterance so that todo
// titles keep their casing; only the keyword checks lower-case.

var (
	completedKeywords = []string{"completed", "done", "finished"}
	pendingKeywords   = []string{"pending", "active", "incomplete"}
)

// titlePatterns are tried from most to least specific; the first pattern that
// captures non-empty text wins. Each stops at a following "description:"
// marker.
var titlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:add|create|new|make)(?:\s+(?:a\s+)?todo)?:\s*(.+?)(?:\s+description:|$)`),
	regexp.MustCompile(`(?i)(?:add|create|new|make)\s+(?:a\s+)?todo\s+(.+?)(?:\s+description:|$)`),
	regexp.MustCompile(`(?i)(?:add|create|new|make)\s+(.+?)(?:\s+description:|$)`),
}

var (
	descriptionPattern = regexp.MustCompile(`(?i)description:\s*(.+?)(?:\s+tags:|$)`)
	tagsPattern        = regexp.MustCompile(`(?i)tags?:\s*(.+)$`)
	hashtagPattern     = regexp.MustCompile(`#(\w+)`)
)

// extractFilter picks a completion filter from the utterance, defaulting to
// "all" when neither keyword family is present.
func extractFilter(utterance string) todo.Filter {
	lower := strings.ToLower(utterance)
	if containsAny(lower, completedKeywords) {
		return todo.FilterCompleted
	}
	if containsAny(lower, pendingKeywords) {
		return todo.FilterPending
	}
	return todo.FilterAll
}

// extractTitle pulls the todo title out of a create utterance. The second
// return value is false when no pattern matched — the caller must then ask the
// user to clarify rather than create a title-less todo.
func extractTitle(utterance string) (string, bool) {
	for _, pattern := range titlePatterns {
		m := pattern.FindStringSubmatch(utterance)
		if m != nil && strings.TrimSpace(m[1]) != "" {
			return strings.TrimSpace(m[1]), true
		}
	}
	return "", false
}

// extractDescription returns the text after a "description:" marker, stopping
// at a following "tags:" marker.
func extractDescription(utterance string) (string, bool) {
	m := descriptionPattern.FindStringSubmatch(utterance)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// extractTags returns the comma-separated list after a "tags:" marker, or
// every #hashtag token when no marker is present. A nil result means no tags
// were given at all (distinct from an empty list).
func extractTags(utterance string) []string {
	if m := tagsPattern.FindStringSubmatch(utterance); m != nil {
		var tags []string
		for _, part := range strings.Split(m[1], ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				tags = append(tags, part)
			}
		}
		return tags
	}

	matches := hashtagPattern.FindAllStringSubmatch(utterance, -1)
	if len(matches) == 0 {
		return nil
	}
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1])
	}
	return tags
}
