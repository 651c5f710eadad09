package remedial

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ascentlearn/ascent/internal/llm"
	"github.com/ascentlearn/ascent/internal/store"
)

var fixedNow = func() time.Time {
	return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func diagnosisJSON(category, explanation string) json.RawMessage {
	raw, _ := json.Marshal(map[string]string{
		"category":          category,
		"explanation":       explanation,
		"practice_question": "What is 3/4 + 1/4?",
		"practice_answer":   "1",
	})
	return raw
}

func testInput() Input {
	return Input{
		Level: 1,
		Topic: "Fractions",
		Score: 5,
		Max:   10,
		Misses: []store.Mistake{
			{Question: "What is 1/2 + 1/2?", CorrectAnswer: "1", UserAnswer: "2"},
		},
	}
}

func TestDiagnoseReturnsPlan(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: diagnosisJSON("recall-gap", "Definitions are shaky.")})
	svc := NewService(mock, fixedNow)

	plan := svc.Diagnose(context.Background(), testInput())
	require.Equal(t, CategoryRecallGap, plan.Category)
	require.Equal(t, "Definitions are shaky.", plan.Explanation)
	require.Equal(t, "What is 3/4 + 1/4?", plan.PracticeText)
	require.Equal(t, "1", plan.PracticeAnswer)
	require.False(t, plan.Consumed)
	require.Equal(t, fixedNow(), plan.CreatedAt)
}

func TestDiagnoseNormalizesUnknownCategory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: diagnosisJSON("existential-dread", "x")})
	svc := NewService(mock, fixedNow)

	plan := svc.Diagnose(context.Background(), testInput())
	require.Equal(t, CategoryUnclassified, plan.Category)
}

func TestDiagnoseTruncatesExplanation(t *testing.T) {
	long := strings.Repeat("word ", 150)
	mock := llm.NewMockProvider(llm.MockResponse{Content: diagnosisJSON("careless", long)})
	svc := NewService(mock, fixedNow)

	plan := svc.Diagnose(context.Background(), testInput())
	require.LessOrEqual(t, len(strings.Fields(plan.Explanation)), 100)
	require.True(t, strings.HasSuffix(plan.Explanation, "..."))
}

func TestDiagnoseFallsBackOnProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, fixedNow)

	plan := svc.Diagnose(context.Background(), testInput())
	require.Equal(t, CategoryUnclassified, plan.Category)
	require.Equal(t, "What is 1/2 + 1/2?", plan.PracticeText)
	require.Equal(t, "1", plan.PracticeAnswer)
}

func TestDiagnoseFallsBackOnGarbage(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage("not json at all")})
	svc := NewService(mock, fixedNow)

	plan := svc.Diagnose(context.Background(), testInput())
	require.Equal(t, CategoryUnclassified, plan.Category)
	require.NotEmpty(t, plan.PracticeText)
}

func TestTruncateWordsShortInputUntouched(t *testing.T) {
	require.Equal(t, "a b c", TruncateWords("a b c", 100))
}
