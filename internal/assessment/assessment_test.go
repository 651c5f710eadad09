package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ascentlearn/ascent/internal/llm"
	"github.com/ascentlearn/ascent/internal/store"
)

// fakeAssessmentRepo is an in-memory store.AssessmentRepo.
type fakeAssessmentRepo struct {
	rows map[string]*store.Assessment
}

func newFakeAssessmentRepo() *fakeAssessmentRepo {
	return &fakeAssessmentRepo{rows: map[string]*store.Assessment{}}
}

func (f *fakeAssessmentRepo) key(sessionID, chapterKey string, level int) string {
	return fmt.Sprintf("%s|%s|%d", sessionID, chapterKey, level)
}

func (f *fakeAssessmentRepo) Get(_ context.Context, sessionID, chapterKey string, level int) (*store.Assessment, error) {
	return f.rows[f.key(sessionID, chapterKey, level)], nil
}

func (f *fakeAssessmentRepo) Put(_ context.Context, a *store.Assessment) error {
	k := f.key(a.SessionID, a.ChapterKey, a.Level)
	if _, ok := f.rows[k]; ok {
		return nil
	}
	f.rows[k] = a
	return nil
}

func mcqPayload(n int) json.RawMessage {
	type q struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Explanation   string   `json:"explanation"`
	}
	var qs []q
	for i := 0; i < n; i++ {
		qs = append(qs, q{
			Question:      fmt.Sprintf("What is %d + %d?", i, i),
			Options:       []string{"1", "2", fmt.Sprintf("%d", i+i), "100"},
			CorrectAnswer: fmt.Sprintf("%d", i+i),
			Explanation:   "Add the two numbers.",
		})
	}
	raw, _ := json.Marshal(map[string]any{"questions": qs})
	return raw
}

func shortAnswerPayload(n int) json.RawMessage {
	type q struct {
		Question      string `json:"question"`
		CorrectAnswer string `json:"correct_answer"`
		Explanation   string `json:"explanation"`
	}
	var qs []q
	for i := 0; i < n; i++ {
		qs = append(qs, q{
			Question:      fmt.Sprintf("Explain step %d.", i),
			CorrectAnswer: "A full derivation.",
			Explanation:   "Award credit for reasoning.",
		})
	}
	raw, _ := json.Marshal(map[string]any{"questions": qs})
	return raw
}

func TestGetOrCreateGeneratesThenCaches(t *testing.T) {
	mock := llm.NewMockProvider(mockOK(mcqPayload(10)))
	repo := newFakeAssessmentRepo()
	svc := NewService(mock, repo)
	ctx := context.Background()

	qs, cached, err := svc.GetOrCreate(ctx, "sess-1", "ch-1", 1, "Fractions")
	require.NoError(t, err)
	require.False(t, cached)
	require.Len(t, qs, 10)
	require.Equal(t, TypeMCQ, qs[0].Type)
	require.Equal(t, 1, qs[0].ID)

	// Second call must not touch the provider.
	qs2, cached, err := svc.GetOrCreate(ctx, "sess-1", "ch-1", 1, "Fractions")
	require.NoError(t, err)
	require.True(t, cached)
	require.Equal(t, qs, qs2)
	require.Equal(t, 1, mock.CallCount())
}

func TestGetOrCreateLevelThreeShortAnswer(t *testing.T) {
	mock := llm.NewMockProvider(mockOK(shortAnswerPayload(5)))
	svc := NewService(mock, newFakeAssessmentRepo())

	qs, _, err := svc.GetOrCreate(context.Background(), "sess-1", "ch-1", 3, "Proofs")
	require.NoError(t, err)
	require.Len(t, qs, 5)
	require.Equal(t, TypeShortAnswer, qs[0].Type)
	require.Empty(t, qs[0].Options)
}

func TestGetOrCreateRejectsWrongCount(t *testing.T) {
	mock := llm.NewMockProvider(mockOK(mcqPayload(9)))
	repo := newFakeAssessmentRepo()
	svc := NewService(mock, repo)

	_, _, err := svc.GetOrCreate(context.Background(), "sess-1", "ch-1", 1, "Fractions")
	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	require.Empty(t, repo.rows, "failed generation must not be cached")
}

func TestGetOrCreateRejectsAnswerOutsideOptions(t *testing.T) {
	raw := mcqPayload(10)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	qs := payload["questions"].([]any)
	qs[3].(map[string]any)["correct_answer"] = "not an option"
	bad, _ := json.Marshal(payload)

	mock := llm.NewMockProvider(mockOK(bad))
	svc := NewService(mock, newFakeAssessmentRepo())

	_, _, err := svc.GetOrCreate(context.Background(), "sess-1", "ch-1", 2, "Fractions")
	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
}

func TestGetOrCreateCleansMarkdownFences(t *testing.T) {
	fenced := json.RawMessage("```json\n" + string(mcqPayload(10)) + "\n```")
	mock := llm.NewMockProvider(mockOK(fenced))
	svc := NewService(mock, newFakeAssessmentRepo())

	qs, _, err := svc.GetOrCreate(context.Background(), "sess-1", "ch-1", 1, "Fractions")
	require.NoError(t, err)
	require.Len(t, qs, 10)
}

func TestGetOrCreateWrapsProviderFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, newFakeAssessmentRepo())

	_, _, err := svc.GetOrCreate(context.Background(), "sess-1", "ch-1", 1, "Fractions")
	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	var unavailable *llm.ErrProviderUnavailable
	require.True(t, errors.As(err, &unavailable))
}

// mockOK wraps content as a successful canned response.
func mockOK(content json.RawMessage) llm.MockResponse {
	return llm.MockResponse{Content: content, Usage: llm.Usage{InputTokens: 50, OutputTokens: 500}}
}
