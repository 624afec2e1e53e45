package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewAnthropicProvider(ProviderConfig{APIKey: "test-key", Model: "claude-haiku", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("NewAnthropicProvider: %v", err)
	}
	return p
}

func anthropicMessage(text, stop string) map[string]any {
	return map[string]any{
		"id":          "msg_test",
		"type":        "message",
		"role":        "assistant",
		"content":     []map[string]any{{"type": "text", "text": text}},
		"model":       "claude-haiku-4-5-20251001",
		"stop_reason": stop,
		"usage":       map[string]any{"input_tokens": 50, "output_tokens": 30},
	}
}

func TestAnthropicProvider_HappyPath(t *testing.T) {
	var gotBody map[string]any
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"translation":"नमस्ते"}`, "end_turn"))
	})

	req := UserPrompt("You translate text.", "Translate: hello")
	req.Schema = translationTestSchema()
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 50 || resp.Usage.TotalTokens != 80 {
		t.Fatalf("unexpected usage: %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}
	if gotBody["model"] != "claude-haiku-4-5-20251001" {
		t.Fatalf("expected resolved model in request, got %v", gotBody["model"])
	}
	if gotBody["max_tokens"] != float64(defaultMaxTokens) {
		t.Fatalf("expected default max_tokens, got %v", gotBody["max_tokens"])
	}
}

func TestAnthropicProvider_Truncated(t *testing.T) {
	p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(anthropicMessage(`{"translation":"नम`, "max_tokens"))
	})

	_, err := p.Generate(context.Background(), UserPrompt("", "x"))
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got: %T (%v)", err, err)
	}
}

func TestAnthropicProvider_Errors(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{http.StatusInternalServerError, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
	}
	for _, tt := range tests {
		p := newTestAnthropicProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]any{
				"type":  "error",
				"error": map[string]any{"type": "api_error", "message": "nope"},
			})
		})
		_, err := p.Generate(context.Background(), UserPrompt("", "test"))
		if err == nil || !tt.check(err) {
			t.Fatalf("status %d: unexpected error %T (%v)", tt.status, err, err)
		}
	}
}

func TestAnthropicProvider_RequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(ProviderConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}

func TestResolveModel(t *testing.T) {
	tests := []struct {
		models   map[string]string
		input    string
		expected string
	}{
		{anthropicModels, "claude-haiku", "claude-haiku-4-5-20251001"},
		{anthropicModels, "claude-sonnet", "claude-sonnet-4-5-20250929"},
		{anthropicModels, "claude-opus-4-1", "claude-opus-4-1"},
		{geminiModels, "gemini-flash", "gemini-2.5-flash"},
		{openaiModels, "gpt-4o-mini", "gpt-4o-mini"},
		{nil, "meta/llama-3", "meta/llama-3"},
	}
	for _, tt := range tests {
		if got := resolveModel(tt.input, tt.models); got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
