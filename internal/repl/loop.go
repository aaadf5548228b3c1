package repl

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/choutianxius/mcp-todo-app/internal/agent"
)

// ANSI colors for the prompt and tool trace.
const (
	ansiReset = "\x1b[0m"
	ansiDim   = "\x1b[90m"
	ansiGreen = "\x1b[32m"
	ansiCyan  = "\x1b[36m"
	ansiBold  = "\x1b[1m"
)

// Loop 持有 REPL 状态 / Loop holds REPL state: the agent service, the line
// editor, and the output writer.
type Loop struct {
	service *agent.Service
	input   LineInput
	out     io.Writer
}

// NewLoop builds a REPL loop around an agent service.
func NewLoop(service *agent.Service, input LineInput, out io.Writer) *Loop {
	return &Loop{service: service, input: input, out: out}
}

// Run reads one utterance per line and runs one agent turn per utterance,
// until EOF or an exit command. Slash commands are presentation-side sugar;
// everything else goes to the agent verbatim.
func (l *Loop) Run(ctx context.Context) error {
	fmt.Fprintln(l.out, "mcp-todo — natural-language todo list")
	fmt.Fprintln(l.out, ansiDim+`type "help" for capabilities, "/tools" for operations, "exit" to quit`+ansiReset)

	for {
		text, err := l.input.ReadLine(ansiGreen + "todo> " + ansiReset)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, readline.ErrInterrupt) {
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}

		text = strings.TrimSpace(text)
		switch {
		case text == "":
			continue
		case text == "exit" || text == "quit":
			return nil
		case text == "/tools":
			l.printTools()
			continue
		case text == "/history":
			l.printHistory()
			continue
		}

		reply := l.service.SubmitUtterance(ctx, text)
		for _, call := range reply.ToolCalls {
			trace := fmt.Sprintf("%s⚙ %s%s", ansiDim, call.ToolName, ansiReset)
			if call.Error != "" {
				trace += fmt.Sprintf(" %s✗ %s%s", ansiDim, call.Error, ansiReset)
			}
			fmt.Fprintln(l.out, trace)
		}
		fmt.Fprintln(l.out, reply.Content)
		fmt.Fprintln(l.out)
	}
}

func (l *Loop) printTools() {
	for _, def := range l.service.ListOperations() {
		fmt.Fprintf(l.out, "%s%s%s\n    %s\n", ansiBold, def.Name, ansiReset, def.Description)
	}
}

func (l *Loop) printHistory() {
	for _, msg := range l.service.History() {
		role := ansiCyan + msg.Role + ansiReset
		first := msg.Content
		if idx := strings.IndexByte(first, '\n'); idx >= 0 {
			first = first[:idx] + " …"
		}
		fmt.Fprintf(l.out, "%s: %s\n", role, first)
	}
}
