package llm

import (
	"testing"

	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type":        "object",
		"description": "a translation",
		"properties": map[string]any{
			"translation": map[string]any{"type": "string"},
			"confidence":  map[string]any{"type": "number"},
			"script":      map[string]any{"type": "string", "enum": []any{"Deva", "Taml", "Beng"}},
			"alternatives": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []string{"translation"},
	}

	schema := geminiSchema(def)

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if schema.Description != "a translation" {
		t.Fatalf("Description = %q", schema.Description)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["confidence"].Type != genai.TypeNumber {
		t.Fatalf("expected NUMBER for confidence, got %s", schema.Properties["confidence"].Type)
	}
	if len(schema.Properties["script"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["script"].Enum))
	}
	if schema.Properties["alternatives"].Items.Type != genai.TypeString {
		t.Fatalf("expected STRING items, got %s", schema.Properties["alternatives"].Items.Type)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "translation" {
		t.Fatalf("Required = %v", schema.Required)
	}
}

func TestGeminiSchema_UnknownTypeFallsBackToString(t *testing.T) {
	if got := geminiSchema(map[string]any{"type": "null"}).Type; got != genai.TypeString {
		t.Fatalf("expected STRING fallback, got %s", got)
	}
}

func TestNewGeminiProvider_RequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), ProviderConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
