package llm

import (
	"context"
	"encoding/json"
)

// Conversation roles understood by the completion backend.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Turn is a single message in a conversation. Assistant turns may carry
// the tool calls the model requested; tool turns carry the result of
// executing one of them.
type Turn struct {
	Role       string
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	ToolName   string
}

// ToolCall is a request from the model to run a named function.
type ToolCall struct {
	ID        string
	Name      string
	Arguments json.RawMessage
}

// ToolSpec declares a callable function to the model. Parameters holds
// JSON-schema property definitions keyed by parameter name.
type ToolSpec struct {
	Name        string
	Description string
	Parameters  map[string]any
	Required    []string
}

// Result is what a completion returns: final text, or one or more tool
// calls the caller must execute before asking again.
type Result struct {
	Content   string
	ToolCalls []ToolCall
}

// CompletionModel is a minimal abstraction for chat-based LLMs used by the domain.
// It intentionally hides concrete providers to preserve dependency direction.
type CompletionModel interface {
	Complete(ctx context.Context, turns []Turn, systemPrompt string, tools []ToolSpec) (Result, error)
}
