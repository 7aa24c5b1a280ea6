package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-answer",
	Description: "A test answer object",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"score":  map[string]any{"type": "integer", "minimum": 0},
		},
		"required":             []any{"answer", "score"},
		"additionalProperties": false,
	},
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"answer":"42","score":10}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_NoSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}

func TestValidateResponse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"answer":`},
		{"missing required", `{"answer":"42"}`},
		{"wrong type", `{"answer":"42","score":"ten"}`},
		{"constraint violated", `{"answer":"42","score":-1}`},
		{"extra property", `{"answer":"42","score":1,"extra":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(testSchema, json.RawMessage(tt.raw))
			if err == nil {
				t.Fatal("expected validation error")
			}
			var invalid *ErrInvalidResponse
			if !errors.As(err, &invalid) {
				t.Fatalf("expected ErrInvalidResponse, got %T", err)
			}
		})
	}
}

func TestValidateResponse_SchemaCached(t *testing.T) {
	schema := &Schema{
		Name: "cache-probe",
		Definition: map[string]any{
			"type": "object",
		},
	}
	if err := validateResponse(schema, json.RawMessage(`{}`)); err != nil {
		t.Fatalf("first validation: %v", err)
	}
	if _, ok := schemaCache.Load("cache-probe"); !ok {
		t.Fatal("expected compiled schema in cache")
	}
}
