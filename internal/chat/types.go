package chat

import "encoding/json"

// ToolCall 一次工具调用记录 / ToolCall records one operation invocation:
// the operation name, the arguments passed, and either the result payload or
// the error message. Used for observability and response synthesis only; the
// records are never persisted.
type ToolCall struct {
	ToolName string          `json:"toolName"`
	Args     json.RawMessage `json:"args"`
	Result   any             `json:"result,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// Message 一条交互记录 / Message is one interaction record: a user utterance
// or an agent reply, with the tool calls the turn produced. Interaction
// history is an append-only in-session sequence, not persisted across restarts.
type Message struct {
	ID        string     `json:"id"`
	Role      string     `json:"role"` // "user" or "agent"
	Content   string     `json:"content"`
	Timestamp int64      `json:"timestamp"` // milliseconds since epoch
	ToolCalls []ToolCall `json:"toolCalls,omitempty"`
}
