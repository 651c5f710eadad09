package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ascentlearn/ascent/internal/assessment"
	"github.com/ascentlearn/ascent/internal/llm"
	"github.com/ascentlearn/ascent/internal/mistakes"
	"github.com/ascentlearn/ascent/internal/remedial"
	"github.com/ascentlearn/ascent/internal/roadmap"
	"github.com/ascentlearn/ascent/internal/store"
)

// --- in-memory fakes ---

type fakeProgressRepo struct {
	rows map[string]*store.ProgressRecord
}

func progressKey(sessionID, track string) string { return track + "|" + sessionID }

func cloneProgress(rec *store.ProgressRecord) *store.ProgressRecord {
	raw, _ := json.Marshal(rec)
	var out store.ProgressRecord
	_ = json.Unmarshal(raw, &out)
	return &out
}

func (f *fakeProgressRepo) Get(_ context.Context, sessionID, track string) (*store.ProgressRecord, error) {
	rec, ok := f.rows[progressKey(sessionID, track)]
	if !ok {
		return nil, nil
	}
	return cloneProgress(rec), nil
}

func (f *fakeProgressRepo) Save(_ context.Context, rec *store.ProgressRecord) error {
	f.rows[progressKey(rec.SessionID, rec.Track)] = cloneProgress(rec)
	return nil
}

func (f *fakeProgressRepo) Delete(_ context.Context, sessionID, track string) error {
	delete(f.rows, progressKey(sessionID, track))
	return nil
}

type fakeChapterRepo struct {
	rows []store.Chapter
}

func (f *fakeChapterRepo) Add(_ context.Context, c *store.Chapter) error {
	c.CreatedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(len(f.rows)) * time.Minute)
	f.rows = append(f.rows, *c)
	return nil
}

func (f *fakeChapterRepo) BySession(_ context.Context, sessionID string) ([]store.Chapter, error) {
	var out []store.Chapter
	for _, c := range f.rows {
		if c.SessionID == sessionID {
			out = append(out, c)
		}
	}
	return out, nil
}

type fakeAssessmentRepo struct {
	rows map[string]*store.Assessment
}

func assessKey(sessionID, chapterKey string, level int) string {
	return fmt.Sprintf("%s|%s|%d", sessionID, chapterKey, level)
}

func (f *fakeAssessmentRepo) Get(_ context.Context, sessionID, chapterKey string, level int) (*store.Assessment, error) {
	return f.rows[assessKey(sessionID, chapterKey, level)], nil
}

func (f *fakeAssessmentRepo) Put(_ context.Context, a *store.Assessment) error {
	k := assessKey(a.SessionID, a.ChapterKey, a.Level)
	if _, ok := f.rows[k]; !ok {
		f.rows[k] = a
	}
	return nil
}

type fakeMistakeRepo struct {
	rows []store.Mistake
}

func (f *fakeMistakeRepo) Insert(_ context.Context, m *store.Mistake) error {
	for _, existing := range f.rows {
		if existing.SessionID == m.SessionID && existing.Question == m.Question && existing.UserAnswer == m.UserAnswer {
			return nil
		}
	}
	f.rows = append(f.rows, *m)
	return nil
}

func (f *fakeMistakeRepo) BySession(_ context.Context, sessionID string) ([]store.Mistake, error) {
	var out []store.Mistake
	for _, m := range f.rows {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeMistakeRepo) All(_ context.Context) ([]store.Mistake, error) { return f.rows, nil }

func (f *fakeMistakeRepo) UpdateComment(_ context.Context, sessionID, question, comment string) error {
	for i := len(f.rows) - 1; i >= 0; i-- {
		if f.rows[i].SessionID == sessionID && f.rows[i].Question == question {
			f.rows[i].Comment = comment
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeRoadmapRepo struct {
	rows map[string]*store.Roadmap
}

func cloneRoadmap(rm *store.Roadmap) *store.Roadmap {
	raw, _ := json.Marshal(rm)
	var out store.Roadmap
	_ = json.Unmarshal(raw, &out)
	return &out
}

func (f *fakeRoadmapRepo) Save(_ context.Context, rm *store.Roadmap) error {
	f.rows[rm.ID] = cloneRoadmap(rm)
	return nil
}

func (f *fakeRoadmapRepo) Get(_ context.Context, id string) (*store.Roadmap, error) {
	rm, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	return cloneRoadmap(rm), nil
}

func (f *fakeRoadmapRepo) BySession(_ context.Context, sessionID string) ([]store.Roadmap, error) {
	var out []store.Roadmap
	for _, rm := range f.rows {
		if rm.SessionID == sessionID {
			out = append(out, *cloneRoadmap(rm))
		}
	}
	return out, nil
}

func (f *fakeRoadmapRepo) Active(_ context.Context, sessionID string) (*store.Roadmap, error) {
	for _, rm := range f.rows {
		if rm.SessionID == sessionID && rm.Status == "active" {
			return cloneRoadmap(rm), nil
		}
	}
	return nil, nil
}

// --- test harness ---

type testEnv struct {
	engine   *Engine
	provider *llm.MockProvider
	progress *fakeProgressRepo
	chapters *fakeChapterRepo
	mistakes *fakeMistakeRepo
	roadmaps *fakeRoadmapRepo
	now      *time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	env := &testEnv{
		provider: llm.NewMockProvider(),
		progress: &fakeProgressRepo{rows: map[string]*store.ProgressRecord{}},
		chapters: &fakeChapterRepo{},
		mistakes: &fakeMistakeRepo{},
		roadmaps: &fakeRoadmapRepo{rows: map[string]*store.Roadmap{}},
		now:      &now,
	}
	nowFn := func() time.Time { return *env.now }
	env.engine = New(Deps{
		Progress:    env.progress,
		Chapters:    env.chapters,
		Assessments: assessment.NewService(env.provider, &fakeAssessmentRepo{rows: map[string]*store.Assessment{}}),
		Remedial:    remedial.NewService(env.provider, nowFn),
		Mistakes:    mistakes.NewService(env.mistakes),
		Roadmaps:    roadmap.NewService(env.provider, env.roadmaps, nowFn),
		Now:         nowFn,
		Roll:        func(min, max int) int { return min },
	})
	return env
}

func (env *testEnv) advance(d time.Duration) {
	*env.now = env.now.Add(d)
}

func (env *testEnv) addChapter(t *testing.T, sessionID, name string) {
	t.Helper()
	_, err := env.engine.AddChapter(context.Background(), sessionID, name)
	require.NoError(t, err)
}

// mcqJSON builds a valid 10-question payload where every correct answer is
// the option "C".
func mcqJSON() json.RawMessage {
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

func shortAnswerJSON() json.RawMessage {
	type q struct {
		Question      string `json:"question"`
		CorrectAnswer string `json:"correct_answer"`
		Explanation   string `json:"explanation"`
	}
	var qs []q
	for i := 0; i < 5; i++ {
		qs = append(qs, q{
			Question:      fmt.Sprintf("Derive result %d.", i+1),
			CorrectAnswer: "A derivation.",
			Explanation:   "Credit for reasoning.",
		})
	}
	raw, _ := json.Marshal(map[string]any{"questions": qs})
	return raw
}

func diagnosisJSON() json.RawMessage {
	raw, _ := json.Marshal(map[string]string{
		"category":          "recall-gap",
		"explanation":       "Definitions are not solid yet.",
		"practice_question": "What is 7*8?",
		"practice_answer":   "56",
	})
	return raw
}

// answers builds a submission with the first n answers correct ("C") and the
// rest wrong ("A").
func mcqAnswers(correct int) []string {
	out := make([]string, 10)
	for i := range out {
		if i < correct {
			out[i] = "C"
		} else {
			out[i] = "A"
		}
	}
	return out
}

// --- tests ---

func TestRequestAssessmentNoChapter(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.engine.RequestAssessment(context.Background(), "sess-1", 1)
	require.ErrorIs(t, err, ErrNoContent)
}

func TestRequestAssessmentInvalidLevel(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.engine.RequestAssessment(context.Background(), "sess-1", 0)
	require.ErrorIs(t, err, ErrInvalidLevel)
	_, err = env.engine.RequestAssessment(context.Background(), "sess-1", 4)
	require.ErrorIs(t, err, ErrInvalidLevel)
}

func TestRequestAssessmentGeneratesAndCaches(t *testing.T) {
	env := newTestEnv(t)
	env.addChapter(t, "sess-1", "Fractions")
	env.provider.AddResponse(llm.MockResponse{Content: mcqJSON()})

	view, err := env.engine.RequestAssessment(context.Background(), "sess-1", 1)
	require.NoError(t, err)
	require.Len(t, view.Questions, 10)
	require.False(t, view.Cached)
	require.Equal(t, "Fractions", view.ChapterName)
	require.False(t, view.Schedule.Behind)

	view2, err := env.engine.RequestAssessment(context.Background(), "sess-1", 1)
	require.NoError(t, err)
	require.True(t, view2.Cached)
	require.Equal(t, 1, env.provider.CallCount())
}

func TestRequestAssessmentLockedLevel(t *testing.T) {
	env := newTestEnv(t)
	env.addChapter(t, "sess-1", "Fractions")
	_, err := env.engine.RequestAssessment(context.Background(), "sess-1", 2)
	require.ErrorIs(t, err, ErrLevelLocked)
}

func TestSubmitWithoutRequest(t *testing.T) {
	env := newTestEnv(t)
	env.addChapter(t, "sess-1", "Fractions")
	_, err := env.engine.SubmitAssessment(context.Background(), "sess-1", 1, mcqAnswers(10))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSubmitAnswerCountMismatch(t *testing.T) {
	env := newTestEnv(t)
	env.addChapter(t, "sess-1", "Fractions")
	env.provider.AddResponse(llm.MockResponse{Content: mcqJSON()})
	_, err := env.engine.RequestAssessment(context.Background(), "sess-1", 1)
	require.NoError(t, err)

	_, err = env.engine.SubmitAssessment(context.Background(), "sess-1", 1, []string{"C"})
	require.ErrorIs(t, err, ErrAnswerCount)
}

func TestSubmitPassAwardsXPAndUnlocks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addChapter(t, "sess-1", "Fractions")
	env.provider.AddResponse(llm.MockResponse{Content: mcqJSON()})
	_, err := env.engine.RequestAssessment(ctx, "sess-1", 1)
	require.NoError(t, err)

	res, err := env.engine.SubmitAssessment(ctx, "sess-1", 1, mcqAnswers(8))
	require.NoError(t, err)
	require.True(t, res.Passed)
	require.Equal(t, 8, res.Score)
	require.Equal(t, 50, res.XPGained, "pinned roll returns the range minimum")
	require.Equal(t, 50, res.TotalXP)
	require.Equal(t, 2, res.UnlockedLevel)
	require.False(t, res.ChapterCompleted)

	// The two wrong answers land in the mistake log.
	logged, err := env.engine.Mistakes(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, logged, 2)

	view, err := env.engine.GetProgress(ctx, "sess-1", store.TrackInstitution)
	require.NoError(t, err)
	require.Len(t, view.History, 1)
	require.True(t, view.History[0].Passed)
}

func TestSubmitFailInstallsRemedialAndCooldown(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addChapter(t, "sess-1", "Fractions")
	env.provider.AddResponse(llm.MockResponse{Content: mcqJSON()})
	_, err := env.engine.RequestAssessment(ctx, "sess-1", 1)
	require.NoError(t, err)

	env.provider.AddResponse(llm.MockResponse{Content: diagnosisJSON()})
	res, err := env.engine.SubmitAssessment(ctx, "sess-1", 1, mcqAnswers(7))
	require.NoError(t, err)
	require.False(t, res.Passed, "level 1 needs 8 of 10")
	require.Zero(t, res.XPGained)
	require.Equal(t, 600, res.CooldownSeconds)
	require.NotNil(t, res.Remedial)
	require.Equal(t, "recall-gap", res.Remedial.Category)

	// Both request and submit are blocked while the cooldown runs.
	var cdErr *CooldownError
	_, err = env.engine.RequestAssessment(ctx, "sess-1", 1)
	require.True(t, errors.As(err, &cdErr))
	require.Greater(t, cdErr.Remaining, time.Duration(0))
	_, err = env.engine.SubmitAssessment(ctx, "sess-1", 1, mcqAnswers(10))
	require.True(t, errors.As(err, &cdErr))

	// After the window the cached questions are served again, no new
	// generation call.
	env.advance(601 * time.Second)
	view, err := env.engine.RequestAssessment(ctx, "sess-1", 1)
	require.NoError(t, err)
	require.True(t, view.Cached)
	require.Equal(t, 2, env.provider.CallCount(), "one generation, one diagnosis")
}

func TestCompleteRemedialLiftsCooldown(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addChapter(t, "sess-1", "Fractions")
	env.provider.AddResponse(llm.MockResponse{Content: mcqJSON()})
	_, err := env.engine.RequestAssessment(ctx, "sess-1", 1)
	require.NoError(t, err)
	env.provider.AddResponse(llm.MockResponse{Content: diagnosisJSON()})
	_, err = env.engine.SubmitAssessment(ctx, "sess-1", 1, mcqAnswers(0))
	require.NoError(t, err)

	// Wrong practice answer leaves the lock in place.
	out, err := env.engine.CompleteRemedial(ctx, "sess-1", "55")
	require.NoError(t, err)
	require.False(t, out.Correct)
	require.Greater(t, out.CooldownSeconds, 0)

	// Correct answer consumes the plan and lifts the cooldown early.
	out, err = env.engine.CompleteRemedial(ctx, "sess-1", " 56 ")
	require.NoError(t, err)
	require.True(t, out.Correct)
	require.True(t, out.CooldownLifted)

	_, err = env.engine.RequestAssessment(ctx, "sess-1", 1)
	require.NoError(t, err)

	_, err = env.engine.CompleteRemedial(ctx, "sess-1", "56")
	require.ErrorIs(t, err, ErrNoRemedial)
}

func TestCompleteRemedialWithoutPlan(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.engine.CompleteRemedial(context.Background(), "sess-1", "42")
	require.ErrorIs(t, err, ErrNoRemedial)
}

func TestLevelThreePassCompletesChapter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addChapter(t, "sess-1", "Fractions")
	env.addChapter(t, "sess-1", "Decimals")

	rec := store.NewProgressRecord("sess-1", store.TrackInstitution)
	rec.UnlockedLevel = 3
	rec.XP = 300
	require.NoError(t, env.progress.Save(ctx, rec))

	env.provider.AddResponse(llm.MockResponse{Content: shortAnswerJSON()})
	view, err := env.engine.RequestAssessment(ctx, "sess-1", 3)
	require.NoError(t, err)
	require.Len(t, view.Questions, 5)
	require.Equal(t, "Fractions", view.ChapterName)

	res, err := env.engine.SubmitAssessment(ctx, "sess-1", 3,
		[]string{"an answer", "", "", "", ""})
	require.NoError(t, err)
	require.True(t, res.Passed, "any scored short answer clears level 3")
	require.Equal(t, 1, res.Score)
	require.True(t, res.ChapterCompleted)
	require.Equal(t, 150, res.XPGained)
	require.Equal(t, 500, res.ChapterBonus)
	require.Equal(t, 300+150+500, res.TotalXP)
	require.Equal(t, 1, res.UnlockedLevel, "next chapter starts over at level 1")

	// Progression has moved to the next chapter.
	view2, err := env.engine.GetProgress(ctx, "sess-1", store.TrackInstitution)
	require.NoError(t, err)
	require.Equal(t, 1, view2.ChapterIndex)
	require.Equal(t, "Decimals", view2.ChapterName)

	// Blank-only submissions fail level 3.
	env.provider.AddResponse(llm.MockResponse{Content: shortAnswerJSON()})
	_, err = env.engine.RequestAssessment(ctx, "sess-1", 1)
	require.Error(t, err) // the new chapter's level 1 set is a fresh generation; short-answer payload fails MCQ shape
}

func TestReplayingClearedLevelGivesNoXP(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addChapter(t, "sess-1", "Fractions")

	rec := store.NewProgressRecord("sess-1", store.TrackInstitution)
	rec.UnlockedLevel = 2
	rec.XP = 80
	require.NoError(t, env.progress.Save(ctx, rec))

	env.provider.AddResponse(llm.MockResponse{Content: mcqJSON()})
	_, err := env.engine.RequestAssessment(ctx, "sess-1", 1)
	require.NoError(t, err)

	res, err := env.engine.SubmitAssessment(ctx, "sess-1", 1, mcqAnswers(10))
	require.NoError(t, err)
	require.True(t, res.Passed)
	require.Zero(t, res.XPGained)
	require.Equal(t, 80, res.TotalXP)
	require.Equal(t, 2, res.UnlockedLevel)
}

func TestSpendXP(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.engine.SpendXP(ctx, "sess-1", store.TrackInstitution, 10)
	require.ErrorIs(t, err, ErrNotFound)

	rec := store.NewProgressRecord("sess-1", store.TrackInstitution)
	rec.XP = 100
	require.NoError(t, env.progress.Save(ctx, rec))

	_, err = env.engine.SpendXP(ctx, "sess-1", store.TrackInstitution, 0)
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = env.engine.SpendXP(ctx, "sess-1", store.TrackInstitution, 101)
	require.ErrorIs(t, err, ErrInsufficientXP)

	balance, err := env.engine.SpendXP(ctx, "sess-1", store.TrackInstitution, 40)
	require.NoError(t, err)
	require.Equal(t, 60, balance)

	view, err := env.engine.GetProgress(ctx, "sess-1", store.TrackInstitution)
	require.NoError(t, err)
	require.Equal(t, 60, view.XP)
}

func TestGetProgressFreshSession(t *testing.T) {
	env := newTestEnv(t)
	view, err := env.engine.GetProgress(context.Background(), "nobody", store.TrackIndividual)
	require.NoError(t, err)
	require.Zero(t, view.XP)
	require.Equal(t, 1, view.UnlockedLevel)
	require.Empty(t, view.History)
}

func TestGetProgressFlagsLaggingChapter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addChapter(t, "sess-1", "Fractions")

	env.advance(8 * 24 * time.Hour)
	view, err := env.engine.GetProgress(ctx, "sess-1", store.TrackInstitution)
	require.NoError(t, err)
	require.NotNil(t, view.Schedule)
	require.True(t, view.Schedule.Behind)
	require.Equal(t, "3 days late", view.Schedule.Message)
}

func TestCommentMistake(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.addChapter(t, "sess-1", "Fractions")
	env.provider.AddResponse(llm.MockResponse{Content: mcqJSON()})
	_, err := env.engine.RequestAssessment(ctx, "sess-1", 1)
	require.NoError(t, err)
	env.provider.AddResponse(llm.MockResponse{Content: diagnosisJSON()})
	_, err = env.engine.SubmitAssessment(ctx, "sess-1", 1, mcqAnswers(7))
	require.NoError(t, err)

	require.NoError(t, env.engine.CommentMistake(ctx, "sess-1", "Question 8?", "misread the sign"))
	require.ErrorIs(t, env.engine.CommentMistake(ctx, "sess-1", "nope", "x"), ErrNotFound)
}

func seedRoadmap(t *testing.T, env *testEnv, totalDays int) {
	t.Helper()
	rm := &store.Roadmap{ID: "rm-1", SessionID: "sess-1", Title: "Plan", TotalDays: totalDays, Status: "active"}
	for i := 1; i <= totalDays; i++ {
		rm.Days = append(rm.Days, store.RoadmapDay{
			DayNumber: i,
			Topic:     fmt.Sprintf("Topic %d", i),
			Content:   fmt.Sprintf("Content %d", i),
			Questions: []store.DayQuestion{
				{Question: "Why?", Type: "concept", Hint: "Think."},
				{Question: "How?", Type: "practice", Hint: "Try."},
			},
		})
	}
	require.NoError(t, env.roadmaps.Save(context.Background(), rm))
}

func TestCompleteRoadmapDay(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedRoadmap(t, env, 2)

	_, err := env.engine.CompleteRoadmapDay(ctx, "other-session", "rm-1", 1, []string{"a", "b"})
	require.ErrorIs(t, err, roadmap.ErrNotFound)

	_, err = env.engine.CompleteRoadmapDay(ctx, "sess-1", "rm-1", 1, []string{"a"})
	require.ErrorIs(t, err, ErrAnswerCount)

	_, err = env.engine.CompleteRoadmapDay(ctx, "sess-1", "rm-1", 2, []string{"a", "b"})
	require.ErrorIs(t, err, roadmap.ErrDayLocked)

	out, err := env.engine.CompleteRoadmapDay(ctx, "sess-1", "rm-1", 1, []string{"an answer", ""})
	require.NoError(t, err)
	require.True(t, out.Passed)
	require.Equal(t, 1, out.Score)
	require.Equal(t, 50, out.XPGained)
	require.False(t, out.PlanCompleted)

	// Repeating a passed day pays nothing.
	out, err = env.engine.CompleteRoadmapDay(ctx, "sess-1", "rm-1", 1, []string{"x", "y"})
	require.NoError(t, err)
	require.True(t, out.AlreadyDone)
	require.Zero(t, out.XPGained)
	require.Equal(t, 50, out.TotalXP)

	// Finishing the last day completes the plan and pays the bonus.
	out, err = env.engine.CompleteRoadmapDay(ctx, "sess-1", "rm-1", 2, []string{"a", "b"})
	require.NoError(t, err)
	require.True(t, out.PlanCompleted)
	require.Equal(t, 500, out.PlanBonus)
	require.Equal(t, "completed", out.Status)
	require.Equal(t, 50+50+500, out.TotalXP)

	view, err := env.engine.GetProgress(ctx, "sess-1", store.TrackIndividual)
	require.NoError(t, err)
	require.Equal(t, 600, view.XP)
}

func TestCompleteRoadmapDayBlankAnswersFail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedRoadmap(t, env, 1)

	out, err := env.engine.CompleteRoadmapDay(ctx, "sess-1", "rm-1", 1, []string{"", "  "})
	require.NoError(t, err)
	require.False(t, out.Passed)
	require.Zero(t, out.XPGained)

	// The failed day stays open for a retry.
	out, err = env.engine.CompleteRoadmapDay(ctx, "sess-1", "rm-1", 1, []string{"now answered", "both"})
	require.NoError(t, err)
	require.True(t, out.Passed)
	require.False(t, out.AlreadyDone)
}

func TestCompleteRoadmapDayRequiresResources(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	seedRoadmap(t, env, 1)

	rm, err := env.roadmaps.Get(ctx, "rm-1")
	require.NoError(t, err)
	rm.Days[0].Resources = []store.DayResource{
		{Name: "Video"},
		{Name: "Practice set", Completed: true},
	}
	require.NoError(t, env.roadmaps.Save(ctx, rm))

	_, err = env.engine.CompleteRoadmapDay(ctx, "sess-1", "rm-1", 1, []string{"a", "b"})
	require.ErrorIs(t, err, roadmap.ErrResourcesIncomplete)

	_, err = env.engine.Roadmaps().MarkResourceComplete(ctx, "rm-1", 1, "video")
	require.NoError(t, err)

	out, err := env.engine.CompleteRoadmapDay(ctx, "sess-1", "rm-1", 1, []string{"a", "b"})
	require.NoError(t, err)
	require.True(t, out.Passed)
	require.Equal(t, 50, out.XPGained)
	require.True(t, out.PlanCompleted)
	require.Equal(t, 500, out.PlanBonus)
}

// blockingProvider parks every Generate call until the test releases it.
type blockingProvider struct {
	entered chan struct{}
	release chan struct{}
	content json.RawMessage
}

func (p *blockingProvider) Generate(context.Context, llm.Request) (*llm.Response, error) {
	p.entered <- struct{}{}
	<-p.release
	return &llm.Response{Content: p.content}, nil
}

func (p *blockingProvider) ModelID() string { return "blocking" }

func TestSlowDiagnosisDoesNotBlockOtherOperations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	slow := &blockingProvider{
		entered: make(chan struct{}),
		release: make(chan struct{}),
		content: diagnosisJSON(),
	}
	nowFn := func() time.Time { return *env.now }
	eng := New(Deps{
		Progress:    env.progress,
		Chapters:    env.chapters,
		Assessments: assessment.NewService(env.provider, &fakeAssessmentRepo{rows: map[string]*store.Assessment{}}),
		Remedial:    remedial.NewService(slow, nowFn),
		Mistakes:    mistakes.NewService(env.mistakes),
		Roadmaps:    roadmap.NewService(env.provider, env.roadmaps, nowFn),
		Now:         nowFn,
		Roll:        func(min, max int) int { return min },
	})

	_, err := eng.AddChapter(ctx, "sess-1", "Fractions")
	require.NoError(t, err)
	rec := store.NewProgressRecord("sess-1", store.TrackInstitution)
	rec.XP = 100
	require.NoError(t, env.progress.Save(ctx, rec))

	env.provider.AddResponse(llm.MockResponse{Content: mcqJSON()})
	_, err = eng.RequestAssessment(ctx, "sess-1", 1)
	require.NoError(t, err)

	type submission struct {
		res *SubmissionResult
		err error
	}
	done := make(chan submission, 1)
	go func() {
		res, err := eng.SubmitAssessment(ctx, "sess-1", 1, mcqAnswers(7))
		done <- submission{res, err}
	}()

	<-slow.entered

	// The session lock is free while the diagnosis call is in flight.
	balance, err := eng.SpendXP(ctx, "sess-1", store.TrackInstitution, 40)
	require.NoError(t, err)
	require.Equal(t, 60, balance)

	close(slow.release)
	sub := <-done
	require.NoError(t, sub.err)
	require.False(t, sub.res.Passed)
	require.Equal(t, 600, sub.res.CooldownSeconds)
	require.Equal(t, "recall-gap", sub.res.Remedial.Category)
	require.Equal(t, 60, sub.res.TotalXP, "the spend that landed mid-diagnosis survives the commit")
}
