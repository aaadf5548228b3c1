package tools

import (
	"context"
	"encoding/json"
)

// Definition describes one tool for discovery surfaces (help UIs, clients).
// The schema follows the MCP tool shape: an object schema with per-property
// descriptions and a required list.
type Definition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Tool is a named, schema-described, executable unit performing one operation
// against the todo store. Implementations unmarshal their own typed argument
// struct and must reject invalid arguments before touching the store.
type Tool interface {
	Name() string
	Definition() Definition
	Execute(ctx context.Context, args json.RawMessage) (any, error)
}
