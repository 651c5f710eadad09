package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ascentlearn/ascent/internal/assessment"
	"github.com/ascentlearn/ascent/internal/engine"
	"github.com/ascentlearn/ascent/internal/llm"
	"github.com/ascentlearn/ascent/internal/mistakes"
	"github.com/ascentlearn/ascent/internal/remedial"
	"github.com/ascentlearn/ascent/internal/roadmap"
	"github.com/ascentlearn/ascent/internal/store"
)

// --- minimal in-memory repos ---

type memProgress struct{ rows map[string]*store.ProgressRecord }

func (m *memProgress) Get(_ context.Context, sessionID, track string) (*store.ProgressRecord, error) {
	rec := m.rows[track+"|"+sessionID]
	if rec == nil {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memProgress) Save(_ context.Context, rec *store.ProgressRecord) error {
	cp := *rec
	m.rows[rec.Track+"|"+rec.SessionID] = &cp
	return nil
}

func (m *memProgress) Delete(_ context.Context, sessionID, track string) error {
	delete(m.rows, track+"|"+sessionID)
	return nil
}

type memChapters struct{ rows []store.Chapter }

func (m *memChapters) Add(_ context.Context, c *store.Chapter) error {
	c.CreatedAt = time.Now().Add(time.Duration(len(m.rows)) * time.Second)
	m.rows = append(m.rows, *c)
	return nil
}

func (m *memChapters) BySession(_ context.Context, sessionID string) ([]store.Chapter, error) {
	var out []store.Chapter
	for _, c := range m.rows {
		if c.SessionID == sessionID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memAssessments struct{ rows map[string]*store.Assessment }

func (m *memAssessments) Get(_ context.Context, sessionID, chapterKey string, level int) (*store.Assessment, error) {
	return m.rows[fmt.Sprintf("%s|%s|%d", sessionID, chapterKey, level)], nil
}

func (m *memAssessments) Put(_ context.Context, a *store.Assessment) error {
	m.rows[fmt.Sprintf("%s|%s|%d", a.SessionID, a.ChapterKey, a.Level)] = a
	return nil
}

type memMistakes struct{ rows []store.Mistake }

func (m *memMistakes) Insert(_ context.Context, mk *store.Mistake) error {
	for _, existing := range m.rows {
		if existing.SessionID == mk.SessionID && existing.Question == mk.Question && existing.UserAnswer == mk.UserAnswer {
			return nil
		}
	}
	m.rows = append(m.rows, *mk)
	return nil
}

func (m *memMistakes) BySession(_ context.Context, sessionID string) ([]store.Mistake, error) {
	var out []store.Mistake
	for _, mk := range m.rows {
		if mk.SessionID == sessionID {
			out = append(out, mk)
		}
	}
	return out, nil
}

func (m *memMistakes) All(_ context.Context) ([]store.Mistake, error) { return m.rows, nil }

func (m *memMistakes) UpdateComment(_ context.Context, sessionID, question, comment string) error {
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].SessionID == sessionID && m.rows[i].Question == question {
			m.rows[i].Comment = comment
			return nil
		}
	}
	return store.ErrNotFound
}

type memRoadmaps struct{ rows map[string]*store.Roadmap }

func (m *memRoadmaps) Save(_ context.Context, rm *store.Roadmap) error {
	m.rows[rm.ID] = rm
	return nil
}

func (m *memRoadmaps) Get(_ context.Context, id string) (*store.Roadmap, error) {
	return m.rows[id], nil
}

func (m *memRoadmaps) BySession(_ context.Context, sessionID string) ([]store.Roadmap, error) {
	var out []store.Roadmap
	for _, rm := range m.rows {
		if rm.SessionID == sessionID {
			out = append(out, *rm)
		}
	}
	return out, nil
}

func (m *memRoadmaps) Active(_ context.Context, sessionID string) (*store.Roadmap, error) {
	for _, rm := range m.rows {
		if rm.SessionID == sessionID && rm.Status == "active" {
			return rm, nil
		}
	}
	return nil, nil
}

// --- harness ---

func newTestHandler(provider *llm.MockProvider) http.Handler {
	e := engine.New(engine.Deps{
		Progress:    &memProgress{rows: map[string]*store.ProgressRecord{}},
		Chapters:    &memChapters{},
		Assessments: assessment.NewService(provider, &memAssessments{rows: map[string]*store.Assessment{}}),
		Remedial:    remedial.NewService(provider, nil),
		Mistakes:    mistakes.NewService(&memMistakes{}),
		Roadmaps:    roadmap.NewService(provider, &memRoadmaps{rows: map[string]*store.Roadmap{}}, nil),
		Roll:        func(min, max int) int { return min },
	})
	return NewServer(e, nil).Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func validMCQJSON() json.RawMessage {
	type q struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Explanation   string   `json:"explanation"`
	}
	var qs []q
	for i := 0; i < 10; i++ {
		qs = append(qs, q{
			Question:      fmt.Sprintf("Question %d?", i+1),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "C",
			Explanation:   "Because C.",
		})
	}
	raw, _ := json.Marshal(map[string]any{"questions": qs})
	return raw
}

func diagnosisBody() json.RawMessage {
	raw, _ := json.Marshal(map[string]string{
		"category":          "careless",
		"explanation":       "Slips under time pressure.",
		"practice_question": "What is 6*7?",
		"practice_answer":   "42",
	})
	return raw
}

// --- tests ---

func TestHealthz(t *testing.T) {
	h := newTestHandler(llm.NewMockProvider())
	rec := doJSON(t, h, http.MethodGet, "/api/v1/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestChapterLifecycle(t *testing.T) {
	h := newTestHandler(llm.NewMockProvider())

	rec := doJSON(t, h, http.MethodPost, "/api/v1/sessions/s1/chapters", map[string]string{"name": "Fractions"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, h, http.MethodGet, "/api/v1/sessions/s1/chapters", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Chapters []store.Chapter `json:"chapters"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Chapters, 1)
	require.Equal(t, "Fractions", body.Chapters[0].Name)
}

func TestRequestAssessmentHidesAnswerKey(t *testing.T) {
	provider := llm.NewMockProvider(llm.MockResponse{Content: validMCQJSON()})
	h := newTestHandler(provider)
	doJSON(t, h, http.MethodPost, "/api/v1/sessions/s1/chapters", map[string]string{"name": "Fractions"})

	rec := doJSON(t, h, http.MethodPost, "/api/v1/sessions/s1/assessments/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "correct_answer")
	require.NotContains(t, rec.Body.String(), "Because C.")

	var view engine.AssessmentView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Questions, 10)
}

func TestRequestAssessmentNoChapterIs404(t *testing.T) {
	h := newTestHandler(llm.NewMockProvider())
	rec := doJSON(t, h, http.MethodPost, "/api/v1/sessions/s1/assessments/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestLockedLevelIs403(t *testing.T) {
	h := newTestHandler(llm.NewMockProvider())
	doJSON(t, h, http.MethodPost, "/api/v1/sessions/s1/chapters", map[string]string{"name": "Fractions"})
	rec := doJSON(t, h, http.MethodPost, "/api/v1/sessions/s1/assessments/3", nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFailedSubmitThenCooldown429(t *testing.T) {
	provider := llm.NewMockProvider(
		llm.MockResponse{Content: validMCQJSON()},
		llm.MockResponse{Content: diagnosisBody()},
	)
	h := newTestHandler(provider)
	doJSON(t, h, http.MethodPost, "/api/v1/sessions/s1/chapters", map[string]string{"name": "Fractions"})
	doJSON(t, h, http.MethodPost, "/api/v1/sessions/s1/assessments/1", nil)

	answers := make([]string, 10)
	for i := range answers {
		answers[i] = "A"
	}
	rec := doJSON(t, h, http.MethodPost, "/api/v1/sessions/s1/assessments/1/submit", map[string]any{"answers": answers})
	require.Equal(t, http.StatusOK, rec.Code)
	var res engine.SubmissionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.False(t, res.Passed)
	require.Equal(t, 600, res.CooldownSeconds)
	require.NotNil(t, res.Remedial)

	rec = doJSON(t, h, http.MethodPost, "/api/v1/sessions/s1/assessments/1", nil)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.Contains(t, rec.Body.String(), "remaining_seconds")

	// Solving the practice question lifts the lock.
	rec = doJSON(t, h, http.MethodPost, "/api/v1/sessions/s1/remedial", map[string]string{"answer": "42"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, strings.Contains(rec.Body.String(), `"cooldown_lifted":true`))

	rec = doJSON(t, h, http.MethodPost, "/api/v1/sessions/s1/assessments/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitBadBodyIs400(t *testing.T) {
	h := newTestHandler(llm.NewMockProvider())
	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/s1/assessments/1/submit", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProgressInvalidTrackIs400(t *testing.T) {
	h := newTestHandler(llm.NewMockProvider())
	rec := doJSON(t, h, http.MethodGet, "/api/v1/sessions/s1/progress?track=galactic", nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSpendUnknownSessionIs404(t *testing.T) {
	h := newTestHandler(llm.NewMockProvider())
	rec := doJSON(t, h, http.MethodPost, "/api/v1/sessions/ghost/xp/spend", map[string]any{"amount": 10})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentUnknownMistakeIs404(t *testing.T) {
	h := newTestHandler(llm.NewMockProvider())
	rec := doJSON(t, h, http.MethodPatch, "/api/v1/sessions/s1/mistakes", map[string]string{"question": "?", "comment": "x"})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRoadmapRequiresGoal(t *testing.T) {
	h := newTestHandler(llm.NewMockProvider())
	rec := doJSON(t, h, http.MethodPost, "/api/v1/sessions/s1/roadmaps", map[string]any{"total_days": 7})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetMissingRoadmapIs404(t *testing.T) {
	h := newTestHandler(llm.NewMockProvider())
	rec := doJSON(t, h, http.MethodGet, "/api/v1/roadmaps/nope", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
