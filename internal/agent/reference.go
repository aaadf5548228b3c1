package agent

import (
	"strings"

	"github.com/choutianxius/mcp-todo-app/internal/todo"
)

type ordinalRule struct {
	words []string
	index int
}

var ordinalRules = []ordinalRule{
	{[]string{"first", "1st"}, 0},
	{[]string{"second", "2nd"}, 1},
	{[]string{"third", "3rd"}, 2},
}

// findTask maps an ambiguous natural-language mention to a concrete todo from
// the candidate sequence. Ordinal words are checked first and always win over
// title matching; when an ordinal is present but out of range, the result is
// nil rather than a title-match fallback. Otherwise the first candidate whose
// lower-cased title appears as a substring of the lower-cased utterance is
// returned. A nil result means the caller must ask for clarification, never
// guess.
func findTask(utterance string, candidates []todo.Task) *todo.Task {
	lower := strings.ToLower(utterance)

	for _, rule := range ordinalRules {
		if containsAny(lower, rule.words) {
			if rule.index < len(candidates) {
				return &candidates[rule.index]
			}
			return nil
		}
	}
	if strings.Contains(lower, "last") {
		if len(candidates) > 0 {
			return &candidates[len(candidates)-1]
		}
		return nil
	}

	for i := range candidates {
		if strings.Contains(lower, strings.ToLower(candidates[i].Title)) {
			return &candidates[i]
		}
	}
	return nil
}
