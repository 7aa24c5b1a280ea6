// Package progress is the tracker's state core: the completed-task set,
// the current curriculum day, the daily streak, and the exam-score history.
//
// All four pieces of state load from the storage port at startup and every
// mutation writes back through it. Storage failures are absorbed: the
// in-memory state still updates and a warning is logged, so the study flow
// never blocks on a broken backend. Mutations are serialized internally;
// reads operate on the in-memory snapshot and never touch storage.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/rickyd/lucy/internal/storage"
)

// Persisted keys in the storage port.
const (
	keyCompletedTasks   = "progress/completed-tasks"
	keyCurrentDay       = "progress/current-day"
	keyStreak           = "progress/streak"
	keyExamScores       = "progress/exam-scores"
	keyLastPracticeDate = "progress/last-practice-date"
)

// Keys returns all storage keys owned by the progress core, for callers
// that need to clear them (lucy reset).
func Keys() []string {
	return []string{
		keyCompletedTasks,
		keyCurrentDay,
		keyStreak,
		keyExamScores,
		keyLastPracticeDate,
	}
}

// Store owns the durable progress state. Construct one per application
// with New, call Load before relying on reads, and thread the handle
// explicitly; there is no package-level instance.
type Store struct {
	kv   storage.KV
	now  func() time.Time
	logw io.Writer

	mu           sync.Mutex
	completed    map[string]bool
	currentDay   int
	streak       int
	lastPractice string
	scores       []ExamScore
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock, letting tests pin calendar dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogOutput redirects absorbed-failure warnings (default os.Stderr).
func WithLogOutput(w io.Writer) Option {
	return func(s *Store) { s.logw = w }
}

// New creates a Store over the given storage port. State starts at the
// first-launch defaults until Load is called.
func New(kv storage.KV, opts ...Option) *Store {
	s := &Store{
		kv:         kv,
		now:        time.Now,
		logw:       os.Stderr,
		completed:  make(map[string]bool),
		currentDay: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) warnf(format string, args ...any) {
	fmt.Fprintf(s.logw, "warning: "+format+"\n", args...)
}

// Load reads all persisted state from the storage port. Missing keys keep
// their first-launch defaults and malformed values are dropped with a
// warning; Load itself never fails.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if raw, ok := s.getItem(ctx, keyCompletedTasks); ok {
		var tasks map[string]bool
		if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
			s.warnf("malformed completed-task set, starting empty: %v", err)
		} else if tasks != nil {
			s.completed = tasks
		}
	}

	if raw, ok := s.getItem(ctx, keyCurrentDay); ok {
		day, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			s.warnf("malformed current day %q, starting at day 1: %v", raw, err)
		case day < 1:
			s.warnf("persisted current day %d out of range, starting at day 1", day)
		default:
			s.currentDay = day
		}
	}

	if raw, ok := s.getItem(ctx, keyStreak); ok {
		streak, err := strconv.Atoi(raw)
		switch {
		case err != nil:
			s.warnf("malformed streak %q, starting at 0: %v", raw, err)
		case streak < 0:
			s.warnf("persisted streak %d negative, starting at 0", streak)
		default:
			s.streak = streak
		}
	}

	if raw, ok := s.getItem(ctx, keyExamScores); ok {
		var scores []ExamScore
		if err := json.Unmarshal([]byte(raw), &scores); err != nil {
			s.warnf("malformed exam history, starting empty: %v", err)
		} else {
			s.scores = scores
		}
	}

	if raw, ok := s.getItem(ctx, keyLastPracticeDate); ok {
		s.lastPractice = raw
	}
}

// getItem wraps KV.GetItem with the read-failure policy: failures are
// logged and reported as absent.
func (s *Store) getItem(ctx context.Context, key string) (string, bool) {
	v, ok, err := s.kv.GetItem(ctx, key)
	if err != nil {
		s.warnf("read %s: %v", key, err)
		return "", false
	}
	return v, ok
}

// setItem wraps KV.SetItem with the write-failure policy: failures are
// logged and swallowed, leaving the in-memory state authoritative for the
// rest of the session.
func (s *Store) setItem(ctx context.Context, key, value string) {
	if err := s.kv.SetItem(ctx, key, value); err != nil {
		s.warnf("write %s: %v", key, err)
	}
}

// MarkComplete records a task as done. Idempotent and one-directional:
// there is no way to un-complete a task short of a full reset.
func (s *Store) MarkComplete(ctx context.Context, taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.completed[taskID] = true

	data, err := json.Marshal(s.completed)
	if err != nil {
		s.warnf("encode completed-task set: %v", err)
		return
	}
	s.setItem(ctx, keyCompletedTasks, string(data))
}

// AdvanceDay moves the learner forward one curriculum day and updates the
// streak against today's calendar date.
//
// The streak and last-practice-date only change on the first call of a
// calendar day; the curriculum day increments on every call. Calling twice
// in one day therefore advances the day twice but the streak once.
func (s *Store) AdvanceDay(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now()
	streak, sameDay := nextStreak(s.lastPractice, today, s.streak)
	if !sameDay {
		s.streak = streak
		s.lastPractice = today.Format(dateLayout)
		s.setItem(ctx, keyStreak, strconv.Itoa(s.streak))
		s.setItem(ctx, keyLastPracticeDate, s.lastPractice)
	}

	s.currentDay++
	s.setItem(ctx, keyCurrentDay, strconv.Itoa(s.currentDay))
}

// AddExamScore appends one exam result to the history. Records that cannot
// be true exam results (no questions, negative or impossible scores) are
// rejected at the boundary with a warning rather than persisted.
func (s *Store) AddExamScore(ctx context.Context, rec ExamScore) {
	if rec.TotalQuestions <= 0 || rec.Score < 0 || rec.Score > rec.TotalQuestions {
		s.warnf("dropping invalid exam score %d/%d for day %d",
			rec.Score, rec.TotalQuestions, rec.Day)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.scores = append(s.scores, rec)

	data, err := json.Marshal(s.scores)
	if err != nil {
		s.warnf("encode exam history: %v", err)
		return
	}
	s.setItem(ctx, keyExamScores, string(data))
}

// RecentScores returns the last n exam records in chronological order,
// fewer if the history is shorter. n <= 0 returns an empty slice.
func (s *Store) RecentScores(n int) []ExamScore {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 {
		return nil
	}
	start := len(s.scores) - n
	if start < 0 {
		start = 0
	}
	out := make([]ExamScore, len(s.scores)-start)
	copy(out, s.scores[start:])
	return out
}

// AverageScore returns the mean of per-exam percentages over the whole
// history, rounded half-up, or 0 for an empty history. Each exam weighs
// equally regardless of its question count.
func (s *Store) AverageScore() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.scores) == 0 {
		return 0
	}
	var total float64
	for _, rec := range s.scores {
		total += rec.Percent()
	}
	return int(math.Floor(total/float64(len(s.scores)) + 0.5))
}

// Completion returns the per-day completion percentage.
//
// The original contract never implemented this and always reported 0; that
// behavior is preserved. CompletionFor provides the computed figure.
func (s *Store) Completion(day int) float64 {
	return 0
}

// CompletionFor returns the fraction (0..1) of the given task IDs that are
// marked complete. Callers build the ID list from the curriculum's topics
// for a day; an empty list yields 0.
func (s *Store) CompletionFor(taskIDs []string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(taskIDs) == 0 {
		return 0
	}
	done := 0
	for _, id := range taskIDs {
		if s.completed[id] {
			done++
		}
	}
	return float64(done) / float64(len(taskIDs))
}

// Streak returns the current consecutive-day streak.
func (s *Store) Streak() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streak
}

// CurrentDay returns the learner's current curriculum day.
func (s *Store) CurrentDay() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentDay
}

// LastPracticeDate returns the ISO date of the last streak-counted
// practice, or "" if none.
func (s *Store) LastPracticeDate() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPractice
}

// IsComplete reports whether the given task is marked complete.
func (s *Store) IsComplete(taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed[taskID]
}

// CompletedTasks returns a copy of the completed-task set.
func (s *Store) CompletedTasks() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]bool, len(s.completed))
	for k, v := range s.completed {
		out[k] = v
	}
	return out
}

// ExamScores returns a copy of the full exam history in chronological order.
func (s *Store) ExamScores() []ExamScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ExamScore, len(s.scores))
	copy(out, s.scores)
	return out
}
