package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/choutianxius/mcp-todo-app/internal/agent"
	"github.com/choutianxius/mcp-todo-app/internal/chat"
	"github.com/choutianxius/mcp-todo-app/internal/i18n"
	"github.com/choutianxius/mcp-todo-app/internal/todo"
)

// PanelID 面板标识
// PanelID identifies a panel
type PanelID int

const (
	PanelTodos PanelID = iota
	PanelChat
)

// Lister 拉取当前待办列表，用于回合结束后刷新面板
// Lister fetches the current todos so the panel can refresh after each turn.
type Lister func(ctx context.Context) ([]todo.Task, error)

// --- Tea Messages ---

// TurnDoneMsg 回合完成 / TurnDoneMsg indicates one agent turn is done.
type TurnDoneMsg struct{ Reply chat.Message }

// TodosMsg 待办列表刷新 / TodosMsg carries a refreshed todo list.
type TodosMsg struct {
	Tasks []todo.Task
	Err   error
}

// App Bubble Tea 主 Model
// App is the main Bubble Tea model: a todo panel and an assistant chat panel,
// with a single input box feeding utterances to the agent. Input is disabled
// while a turn is in flight — one utterance is fully processed before the
// next is accepted.
type App struct {
	// 布局 / Layout
	width  int
	height int

	// 面板 / Panels
	activePanel PanelID
	todosView   viewport.Model
	chatView    viewport.Model

	// 输入 / Input
	input textarea.Model
	busy  bool

	// 数据 / Data
	service   *agent.Service
	lister    Lister
	sessionID string
	tasks     []todo.Task

	// 内容缓冲 / Content buffers
	// chatContent is a plain string because the model is copied on every
	// Update; a strings.Builder must not be written to after a copy.
	chatContent string
	lastError   string

	// 配置 / Config
	theme  Theme
	keys   KeyMap
	locale *i18n.I18n
}

// NewApp 创建 TUI 应用 / NewApp creates the TUI application.
func NewApp(service *agent.Service, lister Lister, sessionID string, locale *i18n.I18n) App {
	ta := textarea.New()
	ta.Placeholder = locale.T("input.placeholder")
	ta.CharLimit = 2048
	ta.SetHeight(2)
	ta.Focus()

	return App{
		activePanel: PanelTodos,
		input:       ta,
		service:     service,
		lister:      lister,
		sessionID:   sessionID,
		theme:       DarkTheme(),
		keys:        DefaultKeyMap(),
		locale:      locale,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, a.refreshTodos())
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.SwitchPanel):
			a.activePanel = (a.activePanel + 1) % 2
			return a, nil
		case key.Matches(msg, a.keys.Submit):
			if a.busy {
				return a, nil
			}
			utterance := strings.TrimSpace(a.input.Value())
			if utterance == "" {
				return a, nil
			}
			a.input.Reset()
			a.busy = true
			a.activePanel = PanelChat
			a.appendChat(a.theme.UserMsgStyle.Render("you ▸ ") + utterance)
			return a, a.runTurn(utterance)
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.relayout()
		return a, nil

	case TurnDoneMsg:
		a.busy = false
		rendered := RenderMarkdown(msg.Reply.Content, a.panelWidth()-2)
		a.appendChat(a.theme.TitleStyle.Render("assistant ▸") + "\n" + rendered)
		for _, call := range msg.Reply.ToolCalls {
			line := "  ⚙ " + call.ToolName
			if call.Error != "" {
				line += " " + a.theme.ErrorStyle.Render("✗ "+call.Error)
			}
			a.appendChat(a.theme.MutedStyle.Render(line))
		}
		// 回合结束后刷新待办面板 / Refresh the todo panel after the turn.
		return a, a.refreshTodos()

	case TodosMsg:
		if msg.Err != nil {
			a.lastError = msg.Err.Error()
			return a, nil
		}
		a.lastError = ""
		a.tasks = msg.Tasks
		a.todosView.SetContent(RenderTodoList(a.tasks, a.locale.T("todos.empty"), a.theme))
		return a, nil
	}

	// 更新输入区 / Update input area
	if !a.busy {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return a, tea.Batch(cmds...)
}

func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Initializing..."
	}

	sidebarWidth := a.sidebarWidth()
	mainWidth := a.width - sidebarWidth
	if sidebarWidth > 0 {
		mainWidth-- // border
	}

	inputHeight := 4
	statusHeight := 1
	tabHeight := 1
	panelHeight := a.height - inputHeight - statusHeight - tabHeight
	if panelHeight < 3 {
		panelHeight = 3
	}

	tabs := a.renderTabs()
	panel := a.renderActivePanel(mainWidth, panelHeight)
	inputBox := a.theme.InputStyle.Width(mainWidth).Render(a.input.View())

	main := lipgloss.JoinVertical(lipgloss.Left, tabs, panel, inputBox)
	if sidebarWidth > 0 {
		sidebar := a.renderSidebar(sidebarWidth, a.height-statusHeight)
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, sidebar)
	}

	return lipgloss.JoinVertical(lipgloss.Left, main, a.renderStatusBar(a.width))
}

// --- Commands ---

func (a App) runTurn(utterance string) tea.Cmd {
	service := a.service
	return func() tea.Msg {
		reply := service.SubmitUtterance(context.Background(), utterance)
		return TurnDoneMsg{Reply: reply}
	}
}

func (a App) refreshTodos() tea.Cmd {
	lister := a.lister
	return func() tea.Msg {
		tasks, err := lister(context.Background())
		return TodosMsg{Tasks: tasks, Err: err}
	}
}

// --- 内部方法 / Internal methods ---

func (a App) sidebarWidth() int {
	if a.width < 80 {
		return 0
	}
	w := a.width * 25 / 100
	if w < 20 {
		w = 20
	}
	if w > 36 {
		w = 36
	}
	return w
}

func (a App) panelWidth() int {
	w := a.width - a.sidebarWidth()
	if w < 20 {
		w = 20
	}
	return w
}

func (a *App) relayout() {
	mainWidth := a.panelWidth()
	panelHeight := a.height - 7
	if panelHeight < 3 {
		panelHeight = 3
	}

	todosContent := RenderTodoList(a.tasks, a.locale.T("todos.empty"), a.theme)
	a.todosView = viewport.New(mainWidth, panelHeight)
	a.todosView.SetContent(todosContent)

	a.chatView = viewport.New(mainWidth, panelHeight)
	a.chatView.SetContent(a.chatContent)
	a.chatView.GotoBottom()

	a.input.SetWidth(mainWidth - 4)
}

func (a *App) appendChat(text string) {
	a.chatContent += text + "\n"
	a.chatView.SetContent(a.chatContent)
	a.chatView.GotoBottom()
}

// --- 渲染方法 / Render methods ---

func (a App) renderTabs() string {
	tabs := []struct {
		id   PanelID
		name string
	}{
		{PanelTodos, a.locale.T("panel.todos")},
		{PanelChat, a.locale.T("panel.assistant")},
	}

	var parts []string
	for _, tab := range tabs {
		style := a.theme.InactiveTabStyle
		if tab.id == a.activePanel {
			style = a.theme.ActiveTabStyle
		}
		parts = append(parts, style.Render(tab.name))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a App) renderActivePanel(width, height int) string {
	style := lipgloss.NewStyle().Width(width).Height(height)

	switch a.activePanel {
	case PanelChat:
		if a.chatContent == "" {
			return style.Render(a.theme.MutedStyle.Render("  " + a.locale.T("chat.empty")))
		}
		return style.Render(a.chatView.View())
	default:
		return style.Render(a.todosView.View())
	}
}

func (a App) renderSidebar(width, height int) string {
	total := len(a.tasks)
	done := 0
	for _, t := range a.tasks {
		if t.Completed {
			done++
		}
	}

	var parts []string
	parts = append(parts, a.theme.TitleStyle.Render(" mcp-todo"))
	parts = append(parts, "")

	parts = append(parts, a.theme.TitleStyle.Render(" "+a.locale.T("sidebar.session")))
	parts = append(parts, "  "+a.sessionID)
	parts = append(parts, "")

	parts = append(parts, a.theme.TitleStyle.Render(" "+a.locale.T("sidebar.stats")))
	parts = append(parts, fmt.Sprintf("  %s: %d", a.locale.T("sidebar.total"), total))
	parts = append(parts, fmt.Sprintf("  %s: %d", a.locale.T("sidebar.pending"), total-done))
	parts = append(parts, fmt.Sprintf("  %s: %d", a.locale.T("sidebar.done"), done))
	parts = append(parts, "")

	parts = append(parts, a.theme.TitleStyle.Render(" "+a.locale.T("sidebar.tools")))
	for _, def := range a.service.ListOperations() {
		parts = append(parts, "  "+def.Name)
	}

	if a.lastError != "" {
		parts = append(parts, "")
		parts = append(parts, a.theme.ErrorStyle.Render("  "+a.lastError))
	}

	return a.theme.SidebarStyle.Width(width).Height(height).Render(strings.Join(parts, "\n"))
}

func (a App) renderStatusBar(width int) string {
	status := a.locale.T("status.ready")
	if a.busy {
		status = a.locale.T("status.thinking")
	}

	left := fmt.Sprintf(" %s · %s", a.sessionID, status)
	right := "tab: switch · ctrl+c: quit  "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	return a.theme.StatusBarStyle.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}

// Run 启动 Bubble Tea TUI
// Run starts the Bubble Tea TUI application.
func Run(service *agent.Service, lister Lister, sessionID string, locale *i18n.I18n) error {
	app := NewApp(service, lister, sessionID, locale)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
