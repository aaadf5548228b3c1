package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/choutianxius/mcp-todo-app/internal/chat"
	"github.com/choutianxius/mcp-todo-app/internal/todo"
	"github.com/choutianxius/mcp-todo-app/internal/tools"
)

// Service is the dispatch loop: it takes one raw utterance, resolves the
// intent, extracts arguments, resolves task references, invokes tools from the
// registry, and synthesizes the reply. One utterance is fully processed before
// the next is accepted. A turn never raises — every failure degrades to a
// textual error response.
type Service struct {
	registry *tools.Registry
	logger   *zap.Logger

	mu      sync.Mutex
	history []chat.Message
}

func New(registry *tools.Registry, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{registry: registry, logger: logger}
}

// ListOperations is the discovery surface for presentation and help UIs.
func (s *Service) ListOperations() []tools.Definition {
	return s.registry.Definitions()
}

// History returns a copy of the in-session interaction records.
func (s *Service) History() []chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]chat.Message, len(s.history))
	copy(out, s.history)
	return out
}

// SubmitUtterance processes one user utterance to completion and returns the
// agent's interaction record. The user's own record is appended to the history
// first. Errors never escape: storage or validation failures become an error
// reply on the returned record.
func (s *Service) SubmitUtterance(ctx context.Context, utterance string) chat.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, chat.Message{
		ID:        chat.NewMessageID(),
		Role:      "user",
		Content:   utterance,
		Timestamp: time.Now().UnixMilli(),
	})

	content, calls := s.processTurn(ctx, utterance)

	reply := chat.Message{
		ID:        chat.NewMessageID(),
		Role:      "agent",
		Content:   content,
		Timestamp: time.Now().UnixMilli(),
		ToolCalls: calls,
	}
	s.history = append(s.history, reply)
	return reply
}

func (s *Service) processTurn(ctx context.Context, utterance string) (string, []chat.ToolCall) {
	var calls []chat.ToolCall
	text, err := s.dispatch(ctx, utterance, &calls)
	if err != nil {
		s.logger.Warn("turn failed", zap.Error(err))
		// The failed call carries its own error; the turn aborts here and the
		// remaining steps for this utterance are skipped.
		return respondError(err), calls
	}
	return text, calls
}

func (s *Service) dispatch(ctx context.Context, utterance string, calls *[]chat.ToolCall) (string, error) {
	intent := ResolveIntent(utterance)
	s.logger.Debug("intent resolved",
		zap.String("intent", string(intent)),
		zap.Int("utterance_len", len(utterance)))

	switch intent {
	case IntentList:
		return s.runList(ctx, utterance, calls)
	case IntentCreate:
		return s.runCreate(ctx, utterance, calls)
	case IntentComplete:
		return s.runComplete(ctx, utterance, calls)
	case IntentDelete:
		return s.runDelete(ctx, utterance, calls)
	case IntentHelp:
		return helpText, nil
	default:
		return fallbackText, nil
	}
}

type listArgs struct {
	Filter string `json:"filter"`
}

type createArgs struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type idArgs struct {
	ID string `json:"id"`
}

func (s *Service) runList(ctx context.Context, utterance string, calls *[]chat.ToolCall) (string, error) {
	filter := extractFilter(utterance)
	result, err := s.call(ctx, calls, "list_todos", listArgs{Filter: string(filter)})
	if err != nil {
		return "", err
	}
	tasks, ok := result.([]todo.Task)
	if !ok {
		return "", fmt.Errorf("list_todos: unexpected result type %T", result)
	}
	return respondList(tasks, filter), nil
}

func (s *Service) runCreate(ctx context.Context, utterance string, calls *[]chat.ToolCall) (string, error) {
	title, ok := extractTitle(utterance)
	if !ok {
		// No title could be extracted; ask for clarification instead of
		// creating a title-less todo.
		return clarifyTitleText, nil
	}
	description, _ := extractDescription(utterance)
	tags := extractTags(utterance)

	result, err := s.call(ctx, calls, "create_todo", createArgs{
		Title:       title,
		Description: description,
		Tags:        tags,
	})
	if err != nil {
		return "", err
	}
	created, ok := result.(todo.Task)
	if !ok {
		return "", fmt.Errorf("create_todo: unexpected result type %T", result)
	}
	return respondCreated(created.Title, created.Description, created.Tags), nil
}

func (s *Service) runComplete(ctx context.Context, utterance string, calls *[]chat.ToolCall) (string, error) {
	// List first to find the referenced todo. The lookup informs the write
	// that follows and is not recorded as a tool call of its own.
	pending, err := s.lookup(ctx, todo.FilterPending)
	if err != nil {
		return "", err
	}
	if len(pending) == 0 {
		return noPendingText, nil
	}

	match := findTask(utterance, pending)
	if match == nil {
		return clarifyCompleteText, nil
	}

	if _, err := s.call(ctx, calls, "toggle_todo", idArgs{ID: match.ID}); err != nil {
		return "", err
	}
	return respondCompleted(match.Title), nil
}

func (s *Service) runDelete(ctx context.Context, utterance string, calls *[]chat.ToolCall) (string, error) {
	lower := strings.ToLower(utterance)
	if containsAny(lower, completedKeywords) {
		result, err := s.call(ctx, calls, "clear_completed", struct{}{})
		if err != nil {
			return "", err
		}
		cleared, ok := result.(tools.ClearResult)
		if !ok {
			return "", fmt.Errorf("clear_completed: unexpected result type %T", result)
		}
		return respondCleared(cleared.DeletedCount), nil
	}

	all, err := s.lookup(ctx, todo.FilterAll)
	if err != nil {
		return "", err
	}
	match := findTask(utterance, all)
	if match == nil {
		return clarifyDeleteText, nil
	}

	if _, err := s.call(ctx, calls, "delete_todo", idArgs{ID: match.ID}); err != nil {
		return "", err
	}
	return respondDeleted(match.Title), nil
}

// call executes one tool through the registry and appends its Tool Call
// Record, carrying either the result payload or the error message.
func (s *Service) call(ctx context.Context, calls *[]chat.ToolCall, name string, args any) (any, error) {
	raw, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("marshal %s args: %w", name, err)
	}

	record := chat.ToolCall{ToolName: name, Args: raw}
	result, err := s.registry.Execute(ctx, name, raw)
	if err != nil {
		record.Error = err.Error()
		*calls = append(*calls, record)
		return nil, err
	}
	record.Result = result
	*calls = append(*calls, record)

	s.logger.Debug("tool executed", zap.String("tool", name))
	return result, nil
}

// lookup fetches candidate todos for reference resolution.
func (s *Service) lookup(ctx context.Context, filter todo.Filter) ([]todo.Task, error) {
	raw, err := json.Marshal(listArgs{Filter: string(filter)})
	if err != nil {
		return nil, fmt.Errorf("marshal lookup args: %w", err)
	}
	result, err := s.registry.Execute(ctx, "list_todos", raw)
	if err != nil {
		return nil, err
	}
	tasks, ok := result.([]todo.Task)
	if !ok {
		return nil, fmt.Errorf("list_todos: unexpected result type %T", result)
	}
	return tasks, nil
}
