package domain_models

import "encoding/json"

type ReplyKind string

const (
	ReplyMessage  ReplyKind = "message"
	ReplyToolCall ReplyKind = "tool_call"
)

// ToolInvocation carries the structured payload of a function/tool call made
// by the language-model collaborator.
type ToolInvocation struct {
	ToolName   string          `json:"tool_name"`
	ToolArgs   json.RawMessage `json:"tool_args"`
	ToolCallID string          `json:"tool_call_id"`
}

// AssistantReply is the tagged variant returned by the chat collaborator:
// either a free-text message or a tool call, never both.
type AssistantReply struct {
	Kind    ReplyKind       `json:"type"`
	Content string          `json:"content,omitempty"`
	Call    *ToolInvocation `json:"call,omitempty"`
}

// ModerationResult is computed fresh per turn and never persisted. When the
// collaborator fails, the gate degrades to an unflagged result carrying Err.
type ModerationResult struct {
	Flagged    bool               `json:"flagged"`
	Categories map[string]float64 `json:"categories"`
	Err        string             `json:"error,omitempty"`
}
