package agent

import "testing"

func TestResolveIntent(t *testing.T) {
	cases := []struct {
		utterance string
		want      Intent
	}{
		{"list all todos", IntentList},
		{"Show me my todos", IntentList},
		{"display pending items", IntentList},
		{"Add a todo: Buy groceries", IntentCreate},
		{"create a new task", IntentCreate},
		{"make a reminder", IntentCreate},
		{"complete the first one", IntentComplete},
		{"finish the report task", IntentComplete},
		{"I'm done with the second one", IntentComplete},
		{"delete the last one", IntentDelete},
		{"remove Buy milk", IntentDelete},
		{"clear those out", IntentDelete},
		{"help", IntentHelp},
		{"how do I use this", IntentHelp},
		{"", IntentUnknown},
		{"banana", IntentUnknown},
		{"LIST TODOS", IntentList}, // case-insensitive
	}
	for _, c := range cases {
		if got := ResolveIntent(c.utterance); got != c.want {
			t.Fatalf("ResolveIntent(%q)=%q, want %q", c.utterance, got, c.want)
		}
	}
}

func TestResolveIntentOrderedTieBreak(t *testing.T) {
	// Families are checked in a fixed order, so an utterance matching several
	// resolves to the earliest family.
	cases := []struct {
		utterance string
		want      Intent
	}{
		{"show me what to add", IntentList},            // list beats create
		{"add and mark it done", IntentCreate},         // create beats complete
		{"mark the first one deleted", IntentComplete}, // complete beats delete
		{"what can you do", IntentList},                // "what" is a list keyword
		{"clear all finished todos", IntentComplete},   // "finished" matches before "clear"
	}
	for _, c := range cases {
		if got := ResolveIntent(c.utterance); got != c.want {
			t.Fatalf("ResolveIntent(%q)=%q, want %q", c.utterance, got, c.want)
		}
	}
}
