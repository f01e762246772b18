package models

import "encoding/json"

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint. Message holds the
// conversation as raw JSON so entries reach the upstream API byte-identical
// to what the caller sent.
type ChatRequest struct {
	Message json.RawMessage `json:"message"`
}

// ChatResult is the success envelope returned to the caller. Usage is relayed
// from the upstream response without schema enforcement.
type ChatResult struct {
	Success  bool            `json:"success"`
	Response string          `json:"response"`
	Usage    json.RawMessage `json:"usage,omitempty"`
}

// ErrorResponse is the error envelope returned to the caller.
type ErrorResponse struct {
	Error string `json:"error"`
}
