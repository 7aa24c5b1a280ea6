package mentor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rickyd/lucy/internal/llm"
	"github.com/rickyd/lucy/internal/progress"
	"github.com/rickyd/lucy/internal/storage"
)

func score(day, got, total int) progress.ExamScore {
	return progress.ExamScore{Day: day, Date: "2024-05-01", Score: got, TotalQuestions: total}
}

func TestBuildContext_Topics(t *testing.T) {
	c := BuildContext(1, 0, nil)

	require.Len(t, c.TodaysTopics, 3)
	assert.Equal(t, "Python Intro & Setup", c.TodaysTopics[0].Title)
	assert.Equal(t, "Python", c.TodaysTopics[0].Category)
	assert.Equal(t, "DSA", c.TodaysTopics[1].Category)
	assert.Equal(t, "Aptitude", c.TodaysTopics[2].Category)
	assert.False(t, c.HasLastExam)
	assert.Equal(t, 0, c.TotalExams)
}

func TestBuildContext_PastTrackEnd(t *testing.T) {
	// Day 999 is past every track's end: no exact matches, a review day.
	c := BuildContext(999, 3, nil)
	assert.Empty(t, c.TodaysTopics)
	assert.Contains(t, c.Prompt(), "Review day")
}

func TestBuildContext_Scores(t *testing.T) {
	scores := []progress.ExamScore{
		score(1, 10, 20), // 50%
		score(2, 15, 20), // 75%
	}
	c := BuildContext(3, 2, scores)

	assert.Equal(t, 63, c.AverageScore) // mean 62.5 rounds half up
	assert.True(t, c.HasLastExam)
	assert.Equal(t, 75, c.LastExamPercent)
	assert.Equal(t, 2, c.TotalExams)
}

func TestBuildContext_Insights(t *testing.T) {
	tests := []struct {
		name   string
		streak int
		scores []progress.ExamScore
		want   []string
	}{
		{
			name:   "no activity",
			streak: 0,
			want:   nil,
		},
		{
			name:   "week streak",
			streak: 7,
			want:   []string{"Amazing! You've maintained a 7-day streak!"},
		},
		{
			name:   "excellent average",
			scores: []progress.ExamScore{score(1, 17, 20)},
			want: []string{
				"You're performing excellently! Keep it up!",
			},
		},
		{
			name:   "good average",
			scores: []progress.ExamScore{score(1, 13, 20)},
			want: []string{
				"Good progress! A bit more practice will get you to excellence.",
			},
		},
		{
			name:   "low average",
			scores: []progress.ExamScore{score(1, 5, 20)},
			want: []string{
				"Keep practicing! Consistency is key to improvement.",
			},
		},
		{
			name:   "outstanding last exam",
			scores: []progress.ExamScore{score(1, 19, 20)},
			want: []string{
				"You're performing excellently! Keep it up!",
				"Outstanding performance on your last exam!",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := BuildContext(1, tt.streak, tt.scores)
			assert.Equal(t, tt.want, c.Insights)
		})
	}
}

func TestContext_Prompt(t *testing.T) {
	c := BuildContext(1, 5, []progress.ExamScore{score(1, 18, 20)})
	p := c.Prompt()

	assert.Contains(t, p, "Day 1 of the learning journey")
	assert.Contains(t, p, "Current Streak: 5 days")
	assert.Contains(t, p, "Python Intro & Setup (Python)")
	assert.Contains(t, p, "Average Score: 90%")
	assert.Contains(t, p, "Last Exam: 90%")
	assert.Contains(t, p, "Total Exams Completed: 1")
	assert.Contains(t, p, "INSIGHTS:")
}

func TestContext_PromptNoExams(t *testing.T) {
	p := BuildContext(1, 0, nil).Prompt()
	assert.Contains(t, p, "Last Exam: Not taken yet")
	assert.NotContains(t, p, "INSIGHTS:")
}

func TestService_Respond(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("Start with variables today.")})
	kv := storage.NewMemory()
	svc := NewService(mock, kv)
	ctx := context.Background()

	reply, err := svc.Respond(ctx, BuildContext(1, 0, nil), "What should I study?")
	require.NoError(t, err)
	assert.Equal(t, "Start with variables today.", reply)

	// The system prompt carries both the persona and the progress block.
	require.Len(t, mock.Calls, 1)
	sys := mock.Calls[0].System
	assert.Contains(t, sys, "You are Lucy")
	assert.Contains(t, sys, "Day 1 of the learning journey")
	assert.Nil(t, mock.Calls[0].Schema)

	// Both turns landed in the transcript with distinct ids.
	history := svc.History(ctx)
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "What should I study?", history[0].Content)
	assert.Equal(t, "assistant", history[1].Role)
	assert.Equal(t, "Start with variables today.", history[1].Content)
	assert.NotEmpty(t, history[0].ID)
	assert.NotEqual(t, history[0].ID, history[1].ID)
}

func TestService_RespondReplaysHistory(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage("first")},
		llm.MockResponse{Content: json.RawMessage("second")},
	)
	kv := storage.NewMemory()
	svc := NewService(mock, kv)
	ctx := context.Background()
	pctx := BuildContext(1, 0, nil)

	_, err := svc.Respond(ctx, pctx, "hello")
	require.NoError(t, err)
	_, err = svc.Respond(ctx, pctx, "more detail please")
	require.NoError(t, err)

	// Second request replays the first exchange before the new message.
	msgs := mock.Calls[1].Messages
	require.Len(t, msgs, 3)
	assert.Equal(t, llm.RoleUser, msgs[0].Role)
	assert.Equal(t, "hello", msgs[0].Content)
	assert.Equal(t, llm.RoleAssistant, msgs[1].Role)
	assert.Equal(t, "first", msgs[1].Content)
	assert.Equal(t, "more detail please", msgs[2].Content)
}

func TestService_RespondTrimsHistoryWindow(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()

	// Seed a transcript longer than the replay window.
	var msgs []ChatMessage
	for i := 0; i < historyWindow+10; i++ {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		msgs = append(msgs, ChatMessage{ID: "m", Role: role, Content: strings.Repeat("x", i+1)})
	}
	data, err := json.Marshal(msgs)
	require.NoError(t, err)
	require.NoError(t, kv.SetItem(ctx, historyKey, string(data)))

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("ok")})
	svc := NewService(mock, kv)

	_, err = svc.Respond(ctx, BuildContext(1, 0, nil), "latest")
	require.NoError(t, err)

	sent := mock.Calls[0].Messages
	require.Len(t, sent, historyWindow+1)
	// The oldest entries fell out of the window; the full transcript grew.
	assert.Equal(t, msgs[10].Content, sent[0].Content)
	assert.Len(t, svc.History(ctx), historyWindow+12)
}

func TestService_RespondProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrRateLimit{}})
	kv := storage.NewMemory()
	svc := NewService(mock, kv)
	ctx := context.Background()

	_, err := svc.Respond(ctx, BuildContext(1, 0, nil), "hi")
	require.Error(t, err)
	// Nothing is persisted on failure.
	assert.Empty(t, svc.History(ctx))
}

func TestService_HistoryMalformed(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()
	require.NoError(t, kv.SetItem(ctx, historyKey, "not json"))

	svc := NewService(llm.NewMockProvider(), kv)
	assert.Empty(t, svc.History(ctx))
}

func TestService_Reset(t *testing.T) {
	kv := storage.NewMemory()
	ctx := context.Background()
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("ok")})
	svc := NewService(mock, kv)

	_, err := svc.Respond(ctx, BuildContext(1, 0, nil), "hi")
	require.NoError(t, err)
	require.NotEmpty(t, svc.History(ctx))

	require.NoError(t, svc.Reset(ctx))
	assert.Empty(t, svc.History(ctx))
}
