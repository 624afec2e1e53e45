// Package llm is a small provider-neutral client for language models that
// return structured JSON.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a response for a prompt.
type Provider interface {
	// Generate sends req to the model. When req.Schema is set the response
	// Content is JSON that has been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier the provider sends requests to.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	System   string
	Messages []Message

	// Schema, when set, asks the provider for JSON output conforming to it.
	Schema *Schema

	MaxTokens   int
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "translation". It doubles as
	// the cache key for the compiled schema.
	Name        string
	Description string
	Definition  map[string]any
}

// Response holds the model output.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is the token consumption of one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// UserPrompt builds a single-turn request.
func UserPrompt(system, prompt string) Request {
	return Request{
		System:   system,
		Messages: []Message{{Role: RoleUser, Content: prompt}},
	}
}
