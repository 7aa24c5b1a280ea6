package exam

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rickyd/lucy/internal/curriculum"
	"github.com/rickyd/lucy/internal/llm"
)

// Service generates daily exams through the LLM provider.
type Service struct {
	provider llm.Provider
	config   Config
}

// New creates a Service with the given provider and config.
func New(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, config: cfg}
}

// examOutput is the raw LLM response before validation.
type examOutput struct {
	Questions []Question `json:"questions"`
}

// Generate produces the mock exam for the given curriculum day. Topics come
// from the python/dsa/aptitude tracks, falling back to each track's last
// topic once the learner has advanced past its end.
func (s *Service) Generate(ctx context.Context, day int) (*Exam, error) {
	ctx = llm.WithPurpose(ctx, "exam-gen")

	byTrack := make(map[string]curriculum.Topic)
	var topics []curriculum.Topic
	for _, track := range []string{curriculum.TrackPython, curriculum.TrackDSA, curriculum.TrackAptitude} {
		if t, ok := curriculum.TopicForDayOrLatest(track, day); ok {
			byTrack[track] = t
			topics = append(topics, t)
		}
	}
	if len(topics) == 0 {
		return nil, fmt.Errorf("no topics found for day %d", day)
	}

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(topics, byTrack, s.config)},
		},
		Schema:      ExamSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("exam generation failed: %w", err)
	}

	var raw examOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse exam response: %w", err)
	}

	if err := validateQuestions(raw.Questions); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	return &Exam{Day: day, Questions: raw.Questions, Topics: topics}, nil
}

// Config returns the service's exam parameters.
func (s *Service) Config() Config {
	return s.config
}

// validateQuestions enforces the structural rules the JSON schema cannot
// fully express: non-empty set, 4 options each, index in range, unique IDs.
func validateQuestions(questions []Question) error {
	if len(questions) == 0 {
		return fmt.Errorf("empty question list")
	}
	seen := make(map[int]bool, len(questions))
	for _, q := range questions {
		if seen[q.ID] {
			return fmt.Errorf("duplicate question id %d", q.ID)
		}
		seen[q.ID] = true
		if len(q.Options) != 4 {
			return fmt.Errorf("question %d has %d options, want 4", q.ID, len(q.Options))
		}
		if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
			return fmt.Errorf("question %d correct index %d out of range", q.ID, q.CorrectOptionIndex)
		}
		switch q.Category {
		case CategoryPython, CategoryDSA, CategoryAptitude:
		default:
			return fmt.Errorf("question %d has unknown category %q", q.ID, q.Category)
		}
	}
	return nil
}
