package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestOpenAIProvider(t *testing.T, handler http.HandlerFunc) *OpenAIProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	p, err := NewOpenAIProvider(ProviderConfig{APIKey: "test-key", Model: "gpt-4o-mini", BaseURL: server.URL + "/v1"})
	if err != nil {
		t.Fatalf("NewOpenAIProvider: %v", err)
	}
	return p
}

func chatCompletion(content, finish string) map[string]any {
	return map[string]any{
		"id":      "chatcmpl-test",
		"object":  "chat.completion",
		"created": 1234567890,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"message":       map[string]any{"role": "assistant", "content": content},
			"finish_reason": finish,
		}},
		"usage": map[string]any{"prompt_tokens": 40, "completion_tokens": 25, "total_tokens": 65},
	}
}

func TestOpenAIProvider_HappyPath(t *testing.T) {
	var gotBody map[string]any
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"translation":"வணக்கம்"}`, "stop"))
	})

	req := UserPrompt("You translate text.", "Translate: hello")
	req.Schema = translationTestSchema()
	resp, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.InputTokens != 40 || resp.Usage.OutputTokens != 25 {
		t.Fatalf("unexpected usage: %+v", resp.Usage)
	}
	if resp.StopReason != "end" {
		t.Fatalf("expected stop reason 'end', got %q", resp.StopReason)
	}

	msgs, _ := gotBody["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("expected system + user messages, got %d", len(msgs))
	}
	if _, ok := gotBody["response_format"]; !ok {
		t.Fatal("expected response_format for schema request")
	}
}

func TestOpenAIProvider_SchemaViolation(t *testing.T) {
	p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(chatCompletion(`{"text":"hi"}`, "stop"))
	})

	req := UserPrompt("", "x")
	req.Schema = translationTestSchema()
	_, err := p.Generate(context.Background(), req)
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T (%v)", err, err)
	}
}

func TestOpenAIProvider_Errors(t *testing.T) {
	tests := []struct {
		status int
		check  func(error) bool
	}{
		{http.StatusTooManyRequests, func(err error) bool { var e *ErrRateLimit; return errors.As(err, &e) }},
		{http.StatusInternalServerError, func(err error) bool { var e *ErrProviderUnavailable; return errors.As(err, &e) }},
	}
	for _, tt := range tests {
		p := newTestOpenAIProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(tt.status)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"type": "server_error", "message": "nope"},
			})
		})
		_, err := p.Generate(context.Background(), UserPrompt("", "test"))
		if err == nil || !tt.check(err) {
			t.Fatalf("status %d: unexpected error %T (%v)", tt.status, err, err)
		}
	}
}

func TestNewOpenRouterProvider(t *testing.T) {
	if _, err := NewOpenRouterProvider(ProviderConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
	p, err := NewOpenRouterProvider(ProviderConfig{APIKey: "k", Model: "google/gemini-2.0-flash-exp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ModelID() != "google/gemini-2.0-flash-exp" {
		t.Fatalf("ModelID() = %q", p.ModelID())
	}
}
