package storage

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is not asserted here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := s.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestKVRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	// Absent key: no error, ok=false.
	_, ok, err := s.GetItem(ctx, "missing")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if ok {
		t.Fatal("expected missing key to be absent")
	}

	if err := s.SetItem(ctx, "progress/streak", "3"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, err := s.GetItem(ctx, "progress/streak")
	if err != nil || !ok || v != "3" {
		t.Fatalf("get = (%q, %v, %v), want (3, true, nil)", v, ok, err)
	}

	// Overwrite.
	if err := s.SetItem(ctx, "progress/streak", "4"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = s.GetItem(ctx, "progress/streak")
	if v != "4" {
		t.Errorf("after overwrite = %q, want 4", v)
	}

	// Remove, including an absent key.
	if err := s.RemoveItem(ctx, "progress/streak"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := s.RemoveItem(ctx, "progress/streak"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
	_, ok, _ = s.GetItem(ctx, "progress/streak")
	if ok {
		t.Error("expected key gone after remove")
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events, err := s.QueryLLMEvents(ctx, 10)
	if err != nil {
		t.Fatalf("query empty: %v", err)
	}
	if len(events) != 0 {
		t.Fatalf("expected no events, got %d", len(events))
	}

	for i, purpose := range []string{"exam-gen", "chat", "chat"} {
		err := s.AppendLLMRequest(ctx, LLMEvent{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    int64(10 * (i + 1)),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err = s.QueryLLMEvents(ctx, 2)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].ID <= events[1].ID {
		t.Errorf("expected newest first, got IDs %d, %d", events[0].ID, events[1].ID)
	}

	ev, err := s.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if ev == nil || ev.Purpose != "chat" {
		t.Errorf("get event = %+v, want purpose chat", ev)
	}

	ev, err = s.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get absent event: %v", err)
	}
	if ev != nil {
		t.Error("expected nil for absent event")
	}
}

func TestUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	appends := []struct {
		purpose string
		in, out int
	}{
		{"chat", 100, 40},
		{"chat", 200, 60},
		{"exam-gen", 500, 1500},
	}
	for _, a := range appends {
		err := s.AppendLLMRequest(ctx, LLMEvent{
			Provider: "mock", Model: "mock", Purpose: a.purpose,
			InputTokens: a.in, OutputTokens: a.out, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	usage, err := s.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("got %d purposes, want 2", len(usage))
	}
	// Ordered by purpose: chat before exam-gen.
	if usage[0].Purpose != "chat" || usage[0].Calls != 2 || usage[0].InputTokens != 300 {
		t.Errorf("chat usage = %+v", usage[0])
	}
	if usage[1].Purpose != "exam-gen" || usage[1].OutputTokens != 1500 {
		t.Errorf("exam-gen usage = %+v", usage[1])
	}
}

func TestMemoryKV(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, ok, err := m.GetItem(ctx, "k")
	if err != nil || ok {
		t.Fatalf("get missing = (%v, %v)", ok, err)
	}

	if err := m.SetItem(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	v, ok, _ := m.GetItem(ctx, "k")
	if !ok || v != "v" {
		t.Fatalf("get = (%q, %v)", v, ok)
	}

	if err := m.RemoveItem(ctx, "k"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("Len = %d, want 0", m.Len())
	}
}

func TestMemoryFailureInjection(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	m.FailWrites = true
	if err := m.SetItem(ctx, "k", "v"); err == nil {
		t.Error("expected injected write failure")
	}
	if err := m.RemoveItem(ctx, "k"); err == nil {
		t.Error("expected injected remove failure")
	}

	m.FailWrites = false
	m.FailReads = true
	if err := m.SetItem(ctx, "k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, _, err := m.GetItem(ctx, "k"); err == nil {
		t.Error("expected injected read failure")
	}
}
