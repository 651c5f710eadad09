package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name: "test-answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score":  map[string]any{"type": "integer"},
		},
		"required":             []any{"answer", "score"},
		"additionalProperties": false,
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"answer":"42","score":10}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Errorf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejectsMissingField(t *testing.T) {
	raw := json.RawMessage(`{"answer":"42"}`)
	err := validateResponse(testSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseRejectsBadJSON(t *testing.T) {
	raw := json.RawMessage(`{"answer":`)
	err := validateResponse(testSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("err = %v, want ErrInvalidResponse", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Errorf("nil schema should skip validation, got %v", err)
	}
}
