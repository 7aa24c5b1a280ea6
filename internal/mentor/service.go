package mentor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rickyd/lucy/internal/llm"
	"github.com/rickyd/lucy/internal/storage"
)

// historyKey is where the chat transcript lives in the key-value store.
const historyKey = "chat/history"

// historyWindow caps how many transcript messages are replayed to the
// provider on each turn.
const historyWindow = 20

const personaPrompt = `You are Lucy, a friendly and encouraging AI study mentor for a self-paced programming course covering Python, data structures and algorithms, and quantitative aptitude.

Your personality:
- Warm, supportive, and patient
- You explain concepts clearly with small concrete examples
- You celebrate wins and reframe setbacks as part of learning
- You keep answers focused; no walls of text

You can help with:
- Explaining Python, DSA, and aptitude concepts
- Suggesting what to study based on the learner's progress
- Motivation and study habits
- Walking through practice problems step by step

`

// ChatMessage is one persisted transcript entry.
type ChatMessage struct {
	ID      string    `json:"id"`
	Role    string    `json:"role"`
	Content string    `json:"content"`
	Time    time.Time `json:"time"`
}

// Service answers mentor questions and keeps the transcript in the store.
type Service struct {
	provider llm.Provider
	kv       storage.KV

	maxTokens   int
	temperature float64
}

// NewService creates a mentor backed by the given provider and store.
func NewService(provider llm.Provider, kv storage.KV) *Service {
	return &Service{
		provider:    provider,
		kv:          kv,
		maxTokens:   1000,
		temperature: 0.7,
	}
}

// History returns the persisted transcript, oldest first. A missing or
// malformed transcript reads as empty.
func (s *Service) History(ctx context.Context) []ChatMessage {
	raw, ok, err := s.kv.GetItem(ctx, historyKey)
	if err != nil || !ok {
		return nil
	}
	var msgs []ChatMessage
	if err := json.Unmarshal([]byte(raw), &msgs); err != nil {
		return nil
	}
	return msgs
}

// Respond sends the learner's message to the provider with the progress
// context and recent transcript attached, then appends both turns to the
// persisted history. A history write failure does not fail the response.
func (s *Service) Respond(ctx context.Context, pctx Context, message string) (string, error) {
	ctx = llm.WithPurpose(ctx, "mentor-chat")

	history := s.History(ctx)
	window := history
	if len(window) > historyWindow {
		window = window[len(window)-historyWindow:]
	}

	msgs := make([]llm.Message, 0, len(window)+1)
	for _, m := range window {
		role := llm.RoleUser
		if m.Role == "assistant" {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: m.Content})
	}
	msgs = append(msgs, llm.Message{Role: llm.RoleUser, Content: message})

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      personaPrompt + pctx.Prompt(),
		Messages:    msgs,
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("mentor response failed: %w", err)
	}
	reply := string(resp.Content)

	now := time.Now()
	history = append(history,
		ChatMessage{ID: uuid.NewString(), Role: "user", Content: message, Time: now},
		ChatMessage{ID: uuid.NewString(), Role: "assistant", Content: reply, Time: now},
	)
	if data, err := json.Marshal(history); err == nil {
		_ = s.kv.SetItem(ctx, historyKey, string(data))
	}

	return reply, nil
}

// Reset clears the persisted transcript.
func (s *Service) Reset(ctx context.Context) error {
	return s.kv.RemoveItem(ctx, historyKey)
}
