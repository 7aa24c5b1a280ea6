package progress

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/rickyd/lucy/internal/storage"
)

// fixedClock returns a clock pinned to the given ISO date.
func fixedClock(day string) func() time.Time {
	return func() time.Time { return date(day) }
}

func newTestStore(t *testing.T, kv storage.KV, opts ...Option) *Store {
	t.Helper()
	opts = append([]Option{WithLogOutput(io.Discard), WithClock(fixedClock("2024-05-01"))}, opts...)
	s := New(kv, opts...)
	s.Load(context.Background())
	return s
}

func TestDefaultsOnFreshStore(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())

	if s.CurrentDay() != 1 {
		t.Errorf("CurrentDay = %d, want 1", s.CurrentDay())
	}
	if s.Streak() != 0 {
		t.Errorf("Streak = %d, want 0", s.Streak())
	}
	if len(s.CompletedTasks()) != 0 {
		t.Errorf("CompletedTasks not empty: %v", s.CompletedTasks())
	}
	if len(s.ExamScores()) != 0 {
		t.Errorf("ExamScores not empty: %v", s.ExamScores())
	}
	if s.LastPracticeDate() != "" {
		t.Errorf("LastPracticeDate = %q, want empty", s.LastPracticeDate())
	}
}

func TestMarkCompleteIdempotentOrderIndependent(t *testing.T) {
	ctx := context.Background()
	ids := []string{"py1_0", "py1_1", "py2_0"}

	// Two permutations with repeats must produce identical sets.
	a := newTestStore(t, storage.NewMemory())
	for _, id := range []string{"py1_0", "py1_1", "py1_0", "py2_0"} {
		a.MarkComplete(ctx, id)
	}
	b := newTestStore(t, storage.NewMemory())
	for _, id := range []string{"py2_0", "py1_1", "py1_0", "py1_1"} {
		b.MarkComplete(ctx, id)
	}

	for _, s := range []*Store{a, b} {
		got := s.CompletedTasks()
		if len(got) != len(ids) {
			t.Fatalf("set size = %d, want %d", len(got), len(ids))
		}
		for _, id := range ids {
			if !got[id] {
				t.Errorf("task %s missing from set", id)
			}
			if !s.IsComplete(id) {
				t.Errorf("IsComplete(%s) = false", id)
			}
		}
	}
}

func TestAdvanceDayFirstCall(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	s.AdvanceDay(context.Background())

	if s.Streak() != 1 {
		t.Errorf("Streak = %d, want 1", s.Streak())
	}
	if s.CurrentDay() != 2 {
		t.Errorf("CurrentDay = %d, want 2", s.CurrentDay())
	}
	if s.LastPracticeDate() != "2024-05-01" {
		t.Errorf("LastPracticeDate = %q, want 2024-05-01", s.LastPracticeDate())
	}
}

func TestAdvanceDayTwiceSameDay(t *testing.T) {
	// The curriculum day advances on every call; the streak only once per
	// calendar day. Ends at day+2, streak+1.
	s := newTestStore(t, storage.NewMemory())
	ctx := context.Background()

	s.AdvanceDay(ctx)
	s.AdvanceDay(ctx)

	if s.Streak() != 1 {
		t.Errorf("Streak = %d, want 1 after two same-day calls", s.Streak())
	}
	if s.CurrentDay() != 3 {
		t.Errorf("CurrentDay = %d, want 3 after two calls", s.CurrentDay())
	}
}

func TestAdvanceDayConsecutiveDays(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()

	now := date("2024-05-01")
	s := New(kv, WithLogOutput(io.Discard), WithClock(func() time.Time { return now }))
	s.Load(ctx)

	s.AdvanceDay(ctx)
	now = date("2024-05-02")
	s.AdvanceDay(ctx)

	if s.Streak() != 2 {
		t.Errorf("Streak = %d, want 2 after consecutive days", s.Streak())
	}
	if s.CurrentDay() != 3 {
		t.Errorf("CurrentDay = %d, want 3", s.CurrentDay())
	}
}

func TestAdvanceDayGapResetsStreak(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()

	now := date("2024-05-01")
	s := New(kv, WithLogOutput(io.Discard), WithClock(func() time.Time { return now }))
	s.Load(ctx)

	// Build up a streak over three consecutive days.
	for _, d := range []string{"2024-05-01", "2024-05-02", "2024-05-03"} {
		now = date(d)
		s.AdvanceDay(ctx)
	}
	if s.Streak() != 3 {
		t.Fatalf("Streak = %d, want 3 before the gap", s.Streak())
	}

	// Skip two days.
	now = date("2024-05-06")
	s.AdvanceDay(ctx)

	if s.Streak() != 1 {
		t.Errorf("Streak = %d, want 1 after gap", s.Streak())
	}
	if s.CurrentDay() != 5 {
		t.Errorf("CurrentDay = %d, want 5", s.CurrentDay())
	}
}

func TestAddExamScoreAndAggregates(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	ctx := context.Background()

	if got := s.AverageScore(); got != 0 {
		t.Errorf("AverageScore on empty history = %d, want 0", got)
	}

	// 50%, 100%, 0% -> mean 50.
	recs := []ExamScore{
		{Day: 1, Date: "2024-05-01", Score: 10, TotalQuestions: 20, Topics: []string{"Python Intro & Setup"}},
		{Day: 2, Date: "2024-05-02", Score: 20, TotalQuestions: 20, Topics: []string{"Variables & Data Types"}},
		{Day: 3, Date: "2024-05-03", Score: 0, TotalQuestions: 20, Topics: []string{"Input & Operators"}},
	}
	for _, r := range recs {
		s.AddExamScore(ctx, r)
	}

	if got := s.AverageScore(); got != 50 {
		t.Errorf("AverageScore = %d, want 50", got)
	}

	// Each exam weighs equally regardless of question count:
	// 1/2 (50%) and 9/10 (90%) average to 70, not the pooled 10/12.
	s2 := newTestStore(t, storage.NewMemory())
	s2.AddExamScore(ctx, ExamScore{Day: 1, Date: "2024-05-01", Score: 1, TotalQuestions: 2})
	s2.AddExamScore(ctx, ExamScore{Day: 2, Date: "2024-05-02", Score: 9, TotalQuestions: 10})
	if got := s2.AverageScore(); got != 70 {
		t.Errorf("AverageScore = %d, want 70 (unpooled mean)", got)
	}
}

func TestAverageScoreRoundsHalfUp(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	ctx := context.Background()

	// 50% and 75% -> 62.5 -> 63.
	s.AddExamScore(ctx, ExamScore{Day: 1, Date: "2024-05-01", Score: 2, TotalQuestions: 4})
	s.AddExamScore(ctx, ExamScore{Day: 2, Date: "2024-05-02", Score: 3, TotalQuestions: 4})
	if got := s.AverageScore(); got != 63 {
		t.Errorf("AverageScore = %d, want 63", got)
	}
}

func TestAddExamScoreRejectsInvalid(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	ctx := context.Background()

	invalid := []ExamScore{
		{Day: 1, Date: "2024-05-01", Score: 5, TotalQuestions: 0},
		{Day: 1, Date: "2024-05-01", Score: -1, TotalQuestions: 20},
		{Day: 1, Date: "2024-05-01", Score: 21, TotalQuestions: 20},
	}
	for _, r := range invalid {
		s.AddExamScore(ctx, r)
	}

	if got := len(s.ExamScores()); got != 0 {
		t.Errorf("history length = %d, want 0 after invalid records", got)
	}
}

func TestRecentScores(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		s.AddExamScore(ctx, ExamScore{Day: i, Date: "2024-05-01", Score: i, TotalQuestions: 20})
	}

	got := s.RecentScores(2)
	if len(got) != 2 {
		t.Fatalf("RecentScores(2) length = %d, want 2", len(got))
	}
	if got[0].Day != 4 || got[1].Day != 5 {
		t.Errorf("RecentScores(2) days = %d, %d; want 4, 5 in chronological order", got[0].Day, got[1].Day)
	}

	if got := s.RecentScores(0); len(got) != 0 {
		t.Errorf("RecentScores(0) length = %d, want 0", len(got))
	}
	if got := s.RecentScores(-3); len(got) != 0 {
		t.Errorf("RecentScores(-3) length = %d, want 0", len(got))
	}
	if got := s.RecentScores(100); len(got) != 5 {
		t.Errorf("RecentScores(100) length = %d, want 5", len(got))
	}
}

func TestCompletionStubAndCompletionFor(t *testing.T) {
	s := newTestStore(t, storage.NewMemory())
	ctx := context.Background()

	s.MarkComplete(ctx, "py1_0")
	s.MarkComplete(ctx, "py1_2")

	// The documented contract: always 0.
	for _, day := range []int{0, 1, 7, 1000} {
		if got := s.Completion(day); got != 0 {
			t.Errorf("Completion(%d) = %v, want 0", day, got)
		}
	}

	// The additive computed variant.
	got := s.CompletionFor([]string{"py1_0", "py1_1", "py1_2", "py1_3"})
	if got != 0.5 {
		t.Errorf("CompletionFor = %v, want 0.5", got)
	}
	if got := s.CompletionFor(nil); got != 0 {
		t.Errorf("CompletionFor(nil) = %v, want 0", got)
	}
}

func TestRoundTripThroughStorage(t *testing.T) {
	// Simulate a process restart: two stores over the same backend.
	kv := storage.NewMemory()
	ctx := context.Background()

	s1 := newTestStore(t, kv)
	s1.MarkComplete(ctx, "py1_0")
	s1.MarkComplete(ctx, "dsa3_1")
	s1.AdvanceDay(ctx)
	s1.AddExamScore(ctx, ExamScore{Day: 1, Date: "2024-05-01", Score: 15, TotalQuestions: 20, Topics: []string{"Python Intro & Setup"}})

	s2 := newTestStore(t, kv)

	if s2.CurrentDay() != s1.CurrentDay() {
		t.Errorf("CurrentDay after reload = %d, want %d", s2.CurrentDay(), s1.CurrentDay())
	}
	if s2.Streak() != s1.Streak() {
		t.Errorf("Streak after reload = %d, want %d", s2.Streak(), s1.Streak())
	}
	if s2.LastPracticeDate() != s1.LastPracticeDate() {
		t.Errorf("LastPracticeDate after reload = %q, want %q", s2.LastPracticeDate(), s1.LastPracticeDate())
	}

	want := s1.CompletedTasks()
	got := s2.CompletedTasks()
	if len(got) != len(want) {
		t.Fatalf("completed set size = %d, want %d", len(got), len(want))
	}
	for id := range want {
		if !got[id] {
			t.Errorf("task %s missing after reload", id)
		}
	}

	scores := s2.ExamScores()
	if len(scores) != 1 || scores[0].Score != 15 || scores[0].Topics[0] != "Python Intro & Setup" {
		t.Errorf("exam history after reload = %+v", scores)
	}

	// Same-day guard must survive the reload: advancing again on the same
	// date bumps the day but not the streak.
	s2.AdvanceDay(ctx)
	if s2.Streak() != 1 {
		t.Errorf("Streak = %d, want 1 after same-day advance post-reload", s2.Streak())
	}
	if s2.CurrentDay() != 3 {
		t.Errorf("CurrentDay = %d, want 3", s2.CurrentDay())
	}
}

func TestMalformedPersistedValuesFallBackToDefaults(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()

	kv.SetItem(ctx, "progress/completed-tasks", "{not json")
	kv.SetItem(ctx, "progress/current-day", "seven")
	kv.SetItem(ctx, "progress/streak", "-2")
	kv.SetItem(ctx, "progress/exam-scores", "[{]")

	s := newTestStore(t, kv)

	if s.CurrentDay() != 1 {
		t.Errorf("CurrentDay = %d, want default 1", s.CurrentDay())
	}
	if s.Streak() != 0 {
		t.Errorf("Streak = %d, want default 0", s.Streak())
	}
	if len(s.CompletedTasks()) != 0 {
		t.Errorf("completed set not empty: %v", s.CompletedTasks())
	}
	if len(s.ExamScores()) != 0 {
		t.Errorf("exam history not empty: %v", s.ExamScores())
	}
}

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	kv := storage.NewMemory()
	kv.FailWrites = true
	ctx := context.Background()

	s := newTestStore(t, kv)
	s.MarkComplete(ctx, "py1_0")
	s.AdvanceDay(ctx)
	s.AddExamScore(ctx, ExamScore{Day: 1, Date: "2024-05-01", Score: 10, TotalQuestions: 20})

	// In-memory state reflects every mutation despite failed writes.
	if !s.IsComplete("py1_0") {
		t.Error("task not marked complete in memory")
	}
	if s.CurrentDay() != 2 || s.Streak() != 1 {
		t.Errorf("day/streak = %d/%d, want 2/1", s.CurrentDay(), s.Streak())
	}
	if len(s.ExamScores()) != 1 {
		t.Errorf("exam history length = %d, want 1", len(s.ExamScores()))
	}

	// Nothing made it to the backend.
	if kv.Len() != 0 {
		t.Errorf("backend has %d keys, want 0", kv.Len())
	}
}

func TestReadFailureTreatedAsAbsent(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()
	kv.SetItem(ctx, "progress/current-day", "9")
	kv.FailReads = true

	s := newTestStore(t, kv)
	if s.CurrentDay() != 1 {
		t.Errorf("CurrentDay = %d, want default 1 when reads fail", s.CurrentDay())
	}
}
