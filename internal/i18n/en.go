package i18n

// enMessages English UI label catalog
var enMessages = map[string]string{
	// Tabs
	"panel.todos":     "Todos",
	"panel.assistant": "Assistant",

	// Sidebar
	"sidebar.session": "Session",
	"sidebar.stats":   "Stats",
	"sidebar.total":   "Total",
	"sidebar.pending": "Pending",
	"sidebar.done":    "Done",
	"sidebar.tools":   "Tools",

	// Status bar
	"status.ready":    "Ready",
	"status.thinking": "Thinking...",

	// Input
	"input.placeholder": "Ask me about your todos...",

	// Empty states
	"todos.empty": "No todos yet. Ask the assistant to add one!",
	"chat.empty":  `Type "help" to see what the assistant can do.`,
}
