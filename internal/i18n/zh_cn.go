package i18n

// zhCNMessages 简体中文界面文案 / Simplified Chinese UI label catalog
var zhCNMessages = map[string]string{
	// Tabs
	"panel.todos":     "待办",
	"panel.assistant": "助手",

	// Sidebar
	"sidebar.session": "会话",
	"sidebar.stats":   "统计",
	"sidebar.total":   "全部",
	"sidebar.pending": "未完成",
	"sidebar.done":    "已完成",
	"sidebar.tools":   "工具",

	// Status bar
	"status.ready":    "就绪",
	"status.thinking": "思考中...",

	// Input
	"input.placeholder": "问问你的待办事项...",

	// Empty states
	"todos.empty": "还没有待办。让助手帮你添加一条吧！",
	"chat.empty":  `输入 "help" 查看助手能做什么。`,
}
