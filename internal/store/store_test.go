package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestProgressRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProgressRepo()

	got, err := repo.Get(ctx, "sess-1", TrackInstitution)
	require.NoError(t, err)
	require.Nil(t, got, "missing record should come back nil")

	retryAt := time.Now().Add(10 * time.Minute).UTC().Truncate(time.Second)
	rec := &ProgressRecord{
		SessionID:     "sess-1",
		Track:         TrackInstitution,
		XP:            120,
		UnlockedLevel: 2,
		ChapterIndex:  1,
		History: []Attempt{
			{Level: 1, Score: 9, MaxScore: 10, Passed: true, XPGained: 70, Timestamp: time.Now().UTC()},
		},
		RetryAvailableAt: &retryAt,
		RemedialPlan: &RemedialPlan{
			Category:       "recall-gap",
			Explanation:    "definitions were shaky",
			PracticeText:   "What is 7*8?",
			PracticeAnswer: "56",
			CreatedAt:      time.Now().UTC(),
		},
	}
	require.NoError(t, repo.Save(ctx, rec))

	got, err = repo.Get(ctx, "sess-1", TrackInstitution)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 120, got.XP)
	require.Equal(t, 2, got.UnlockedLevel)
	require.Len(t, got.History, 1)
	require.NotNil(t, got.RetryAvailableAt)
	require.Equal(t, retryAt.Unix(), got.RetryAvailableAt.Unix())
	require.NotNil(t, got.RemedialPlan)
	require.Equal(t, "recall-gap", got.RemedialPlan.Category)
}

func TestProgressSaveClearsOptionalFields(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProgressRepo()

	retryAt := time.Now().Add(time.Minute)
	rec := NewProgressRecord("sess-1", TrackInstitution)
	rec.RetryAvailableAt = &retryAt
	rec.RemedialPlan = &RemedialPlan{Category: "careless"}
	require.NoError(t, repo.Save(ctx, rec))

	rec.RetryAvailableAt = nil
	rec.RemedialPlan = nil
	require.NoError(t, repo.Save(ctx, rec))

	got, err := repo.Get(ctx, "sess-1", TrackInstitution)
	require.NoError(t, err)
	require.Nil(t, got.RetryAvailableAt)
	require.Nil(t, got.RemedialPlan)
}

func TestProgressTracksAreIndependent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ProgressRepo()

	inst := NewProgressRecord("sess-1", TrackInstitution)
	inst.XP = 100
	require.NoError(t, repo.Save(ctx, inst))

	indiv := NewProgressRecord("sess-1", TrackIndividual)
	indiv.XP = 40
	require.NoError(t, repo.Save(ctx, indiv))

	got, err := repo.Get(ctx, "sess-1", TrackInstitution)
	require.NoError(t, err)
	require.Equal(t, 100, got.XP)

	got, err = repo.Get(ctx, "sess-1", TrackIndividual)
	require.NoError(t, err)
	require.Equal(t, 40, got.XP)
}

func TestAssessmentPutIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.AssessmentRepo()

	a := &Assessment{
		SessionID:  "sess-1",
		ChapterKey: "ch-1",
		Level:      1,
		Questions: []Question{
			{ID: 1, Question: "2+2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "4", Type: "mcq"},
		},
	}
	require.NoError(t, repo.Put(ctx, a))
	// Second write for the same triple is a silent no-op.
	require.NoError(t, repo.Put(ctx, a))

	got, err := repo.Get(ctx, "sess-1", "ch-1", 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Questions, 1)
	require.Equal(t, "4", got.Questions[0].CorrectAnswer)

	got, err = repo.Get(ctx, "sess-1", "ch-1", 2)
	require.NoError(t, err)
	require.Nil(t, got, "different level must miss the cache")
}

func TestMistakeDeduplication(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.MistakeRepo()

	m := &Mistake{
		SessionID:     "sess-1",
		Question:      "2+2?",
		CorrectAnswer: "4",
		UserAnswer:    "5",
		Level:         1,
	}
	require.NoError(t, repo.Insert(ctx, m))
	require.NoError(t, repo.Insert(ctx, m), "duplicate insert must no-op")

	// Same question, different wrong answer, is a distinct mistake.
	m2 := *m
	m2.UserAnswer = "3"
	require.NoError(t, repo.Insert(ctx, &m2))

	all, err := repo.BySession(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestMistakeUpdateComment(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.MistakeRepo()

	require.NoError(t, repo.Insert(ctx, &Mistake{
		SessionID: "sess-1",
		Question:  "2+2?",
		UserAnswer: "5",
		Level:     1,
	}))

	require.NoError(t, repo.UpdateComment(ctx, "sess-1", "2+2?", "forgot to carry"))
	all, err := repo.BySession(ctx, "sess-1")
	require.NoError(t, err)
	require.Equal(t, "forgot to carry", all[0].Comment)

	err = repo.UpdateComment(ctx, "sess-1", "no such question", "x")
	require.True(t, errors.Is(err, ErrNotFound))
}

func TestMistakeUpdateCommentTouchesOneRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.MistakeRepo()

	m := &Mistake{SessionID: "sess-1", Question: "2+2?", UserAnswer: "5", Level: 1}
	require.NoError(t, repo.Insert(ctx, m))
	m2 := *m
	m2.UserAnswer = "3"
	require.NoError(t, repo.Insert(ctx, &m2))

	require.NoError(t, repo.UpdateComment(ctx, "sess-1", "2+2?", "rushed it"))

	all, err := repo.BySession(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, all, 2)
	commented := 0
	for _, got := range all {
		if got.Comment == "rushed it" {
			commented++
		}
	}
	require.Equal(t, 1, commented, "the comment lands on a single entry")
}

func TestChapterOrderIsCreationOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.ChapterRepo()

	require.NoError(t, repo.Add(ctx, &Chapter{SessionID: "sess-1", Key: "k1", Name: "Algebra"}))
	require.NoError(t, repo.Add(ctx, &Chapter{SessionID: "sess-1", Key: "k2", Name: "Geometry"}))
	require.NoError(t, repo.Add(ctx, &Chapter{SessionID: "other", Key: "k3", Name: "Calculus"}))

	got, err := repo.BySession(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "Algebra", got[0].Name)
	require.Equal(t, "Geometry", got[1].Name)
}

func TestRoadmapSaveAndActive(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.RoadmapRepo()

	rm := &Roadmap{
		ID:        "rm-1",
		SessionID: "sess-1",
		Title:     "Linear Algebra in 14 days",
		TotalDays: 14,
		Status:    "active",
		Days: []RoadmapDay{
			{DayNumber: 1, Topic: "Vectors", Content: "Intro to vectors",
				Resources: []DayResource{{Name: "Video"}, {Name: "Practice set"}}},
			{DayNumber: 2, Topic: "Matrices", Content: ""},
		},
	}
	require.NoError(t, repo.Save(ctx, rm))

	got, err := repo.Get(ctx, "rm-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Days, 2)
	require.Len(t, got.Days[0].Resources, 2)

	// Mutate and upsert.
	got.CompletedDays = []int{1}
	got.Days[0].Result = &DayResult{Score: 4, MaxScore: 5, Passed: true, Timestamp: time.Now().UTC()}
	require.NoError(t, repo.Save(ctx, got))

	active, err := repo.Active(ctx, "sess-1")
	require.NoError(t, err)
	require.NotNil(t, active)
	require.Equal(t, []int{1}, active.CompletedDays)
	require.NotNil(t, active.Days[0].Result)

	active.Status = "completed"
	require.NoError(t, repo.Save(ctx, active))

	none, err := repo.Active(ctx, "sess-1")
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestLLMEventAppendAndAggregate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.EventRepo()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "assessment-gen", InputTokens: 100, OutputTokens: 400, LatencyMs: 900, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "assessment-gen", InputTokens: 120, OutputTokens: 380, LatencyMs: 1100, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "diagnosis", InputTokens: 60, OutputTokens: 90, LatencyMs: 500, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		require.NoError(t, repo.AppendLLMRequest(ctx, e))
	}

	listed, err := repo.QueryLLMEvents(ctx, 2)
	require.NoError(t, err)
	require.Len(t, listed, 2)

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	stats := map[string]LLMUsageStat{}
	for _, st := range byPurpose {
		stats[st.Purpose] = st
	}
	require.Equal(t, 2, stats["assessment-gen"].Calls)
	require.Equal(t, 220, stats["assessment-gen"].InputTokens)
	require.Equal(t, 780, stats["assessment-gen"].OutputTokens)
	require.Equal(t, 1, stats["diagnosis"].Calls)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 1)
	require.Equal(t, 3, byModel[0].Calls)
}
