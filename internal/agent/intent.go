package agent

import "strings"

// Intent is the operation category an utterance is believed to denote.
type Intent string

const (
	IntentList     Intent = "list"
	IntentCreate   Intent = "create"
	IntentComplete Intent = "complete"
	IntentDelete   Intent = "delete"
	IntentHelp     Intent = "help"
	IntentUnknown  Intent = "unknown"
)

type intentRule struct {
	intent   Intent
	keywords []string
}

// intentRules is an ordered rule table: families are tested in sequence and
// the first family with any keyword present in the lower-cased utterance wins.
// The ordering is a deliberate tie-break — an utterance containing both "show"
// and "add" resolves to list because list is checked first. This is keyword
// matching standing in for real intent classification, nothing more.
var intentRules = []intentRule{
	{IntentList, []string{"list", "show", "get", "what", "display"}},
	{IntentCreate, []string{"add", "create", "new", "make"}},
	{IntentComplete, []string{"complete", "done", "finish", "mark"}},
	{IntentDelete, []string{"delete", "remove", "clear"}},
	{IntentHelp, []string{"help", "what can", "how", "capabilities"}},
}

// ResolveIntent classifies a raw utterance into one of the known intents,
// or IntentUnknown when no keyword family matches.
func ResolveIntent(utterance string) Intent {
	lower := strings.ToLower(utterance)
	for _, rule := range intentRules {
		if containsAny(lower, rule.keywords) {
			return rule.intent
		}
	}
	return IntentUnknown
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
