package exam

import "github.com/rickyd/lucy/internal/llm"

// ExamSchema defines the JSON schema for LLM exam generation responses.
// The root is an object (structured-output APIs reject bare arrays); the
// questions array carries the original wire shape of one MCQ per element.
var ExamSchema = &llm.Schema{
	Name:        "daily-exam",
	Description: "A daily mock exam of multiple-choice questions scoped to given topics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"description": "Question number, starting at 1",
						},
						"category": map[string]any{
							"type":        "string",
							"enum":        []any{"python", "dsa", "aptitude"},
							"description": "Which track the question belongs to",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"codeSnippet": map[string]any{
							"type":        "string",
							"description": "Optional code block the question refers to. Empty string if none.",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 answer choices",
						},
						"correctOptionIndex": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     3,
							"description": "0-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Short explanation of the correct answer",
						},
					},
					"required": []any{"id", "category", "question", "options",
						"correctOptionIndex", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
