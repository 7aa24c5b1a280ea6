package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rickyd/lucy/internal/storage"
)

// fakeEventRepo records appended events in memory.
type fakeEventRepo struct {
	events []storage.LLMEvent
	fail   bool
}

func (f *fakeEventRepo) AppendLLMRequest(_ context.Context, ev storage.LLMEvent) error {
	if f.fail {
		return errors.New("event log down")
	}
	f.events = append(f.events, ev)
	return nil
}

func (f *fakeEventRepo) QueryLLMEvents(context.Context, int) ([]storage.LLMEvent, error) {
	return f.events, nil
}

func (f *fakeEventRepo) GetLLMEvent(context.Context, int) (*storage.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEventRepo) UsageByPurpose(context.Context) ([]storage.LLMUsage, error) {
	return nil, nil
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "exam-gen")
	_, err := p.Generate(ctx, Request{System: "sys", Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Success || ev.Purpose != "exam-gen" {
		t.Errorf("event = %+v", ev)
	}
	if ev.InputTokens != 10 || ev.OutputTokens != 5 {
		t.Errorf("tokens = %d/%d, want 10/5", ev.InputTokens, ev.OutputTokens)
	}
	if ev.RequestBody == "" || ev.ResponseBody != `{"ok":true}` {
		t.Errorf("bodies = %q / %q", ev.RequestBody, ev.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &fakeEventRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("event marked success for a failed request")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected error message in event")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown without WithPurpose", ev.Purpose)
	}
}

func TestLogging_RepoFailureDoesNotFailRequest(t *testing.T) {
	repo := &fakeEventRepo{fail: true}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("request should survive a failing event log: %v", err)
	}
}
