package roadmap

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ascentlearn/ascent/internal/llm"
	"github.com/ascentlearn/ascent/internal/store"
)

// fakeRoadmapRepo is an in-memory store.RoadmapRepo. Rows are cloned on the
// way in and out so tests catch missing Save calls.
type fakeRoadmapRepo struct {
	rows map[string]*store.Roadmap
}

func newFakeRoadmapRepo() *fakeRoadmapRepo {
	return &fakeRoadmapRepo{rows: map[string]*store.Roadmap{}}
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

func outlineJSON(days int) json.RawMessage {
	type day struct {
		DayNumber  int      `json:"day_number"`
		Topic      string   `json:"topic"`
		Objectives []string `json:"learning_objectives"`
		VideoTitle string   `json:"video_title"`
		VideoURL   string   `json:"video_url"`
	}
	var ds []day
	for i := 1; i <= days; i++ {
		ds = append(ds, day{
			DayNumber:  i,
			Topic:      fmt.Sprintf("Topic %d", i),
			Objectives: []string{"understand", "apply"},
			VideoTitle: fmt.Sprintf("Video %d", i),
			VideoURL:   fmt.Sprintf("https://videos.example/%d", i),
		})
	}
	raw, _ := json.Marshal(map[string]any{
		"title":       "Test Plan",
		"description": "A plan. For testing.",
		"days":        ds,
	})
	return raw
}

func weekContentJSON(first, last int) json.RawMessage {
	type question struct {
		Question string `json:"question"`
		Type     string `json:"type"`
		Hint     string `json:"hint"`
	}
	type day struct {
		DayNumber int      `json:"day_number"`
		Content   string   `json:"content"`
		Questions []question `json:"questions"`
		Resources []string `json:"resources"`
	}
	var ds []day
	for i := first; i <= last; i++ {
		ds = append(ds, day{
			DayNumber: i,
			Content:   fmt.Sprintf("Content for day %d", i),
			Questions: []question{{Question: "Why?", Type: "concept", Hint: "Think."}},
			Resources: []string{"Video", "Practice set"},
		})
	}
	raw, _ := json.Marshal(map[string]any{"days": ds})
	return raw
}

func newTestService(mock *llm.MockProvider, repo store.RoadmapRepo) *Service {
	svc := NewService(mock, repo, func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	})
	svc.newID = func() string { return "rm-test" }
	return svc
}

func TestCreateGeneratesOutlineAndFirstWeek(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: outlineJSON(10)},
		llm.MockResponse{Content: weekContentJSON(1, 7)},
	)
	repo := newFakeRoadmapRepo()
	svc := newTestService(mock, repo)

	rm, err := svc.Create(context.Background(), "sess-1", "learn linear algebra", 10)
	require.NoError(t, err)
	require.Equal(t, "rm-test", rm.ID)
	require.Equal(t, "Test Plan", rm.Title)
	require.Len(t, rm.Days, 10)

	require.Equal(t, "Content for day 1", rm.Days[0].Content)
	require.Equal(t, "Content for day 7", rm.Days[6].Content)
	require.Equal(t, ContentNotGenerated, rm.Days[7].Content)
	require.Len(t, rm.Days[0].Resources, 2)

	saved, err := repo.Get(context.Background(), "rm-test")
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Equal(t, 2, mock.CallCount())
}

func TestCreateSurvivesWeekContentFailure(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: outlineJSON(7)},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	svc := newTestService(mock, newFakeRoadmapRepo())

	rm, err := svc.Create(context.Background(), "sess-1", "goal", 7)
	require.NoError(t, err, "outline alone is a usable plan")
	for _, d := range rm.Days {
		require.Equal(t, ContentNotGenerated, d.Content)
	}
}

func TestCreateRejectsBadDuration(t *testing.T) {
	svc := newTestService(llm.NewMockProvider(), newFakeRoadmapRepo())
	_, err := svc.Create(context.Background(), "sess-1", "goal", 3)
	require.Error(t, err)
	_, err = svc.Create(context.Background(), "sess-1", "goal", 120)
	require.Error(t, err)
}

func TestGenerateWeekContentFillsPendingDays(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: outlineJSON(10)},
		llm.MockResponse{Content: weekContentJSON(1, 7)},
		llm.MockResponse{Content: weekContentJSON(8, 10)},
	)
	repo := newFakeRoadmapRepo()
	svc := newTestService(mock, repo)

	_, err := svc.Create(context.Background(), "sess-1", "goal", 10)
	require.NoError(t, err)

	rm, err := svc.GenerateWeekContent(context.Background(), "rm-test", 2)
	require.NoError(t, err)
	require.Equal(t, "Content for day 8", rm.Days[7].Content)
	require.Equal(t, "Content for day 10", rm.Days[9].Content)

	// Everything already generated: no further provider calls.
	_, err = svc.GenerateWeekContent(context.Background(), "rm-test", 2)
	require.NoError(t, err)
	require.Equal(t, 3, mock.CallCount())
}

func TestGenerateWeekContentRejectsBadWeek(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: outlineJSON(10)},
		llm.MockResponse{Content: weekContentJSON(1, 7)},
	)
	svc := newTestService(mock, newFakeRoadmapRepo())
	_, err := svc.Create(context.Background(), "sess-1", "goal", 10)
	require.NoError(t, err)

	_, err = svc.GenerateWeekContent(context.Background(), "rm-test", 3)
	require.ErrorIs(t, err, ErrWeekOutOfRange)

	_, err = svc.GenerateWeekContent(context.Background(), "missing", 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMarkResourceComplete(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: outlineJSON(7)},
		llm.MockResponse{Content: weekContentJSON(1, 7)},
	)
	repo := newFakeRoadmapRepo()
	svc := newTestService(mock, repo)
	_, err := svc.Create(context.Background(), "sess-1", "goal", 7)
	require.NoError(t, err)

	rm, err := svc.MarkResourceComplete(context.Background(), "rm-test", 1, "video")
	require.NoError(t, err)
	require.True(t, rm.Days[0].Resources[0].Completed, "name match is case-insensitive")

	saved, _ := repo.Get(context.Background(), "rm-test")
	require.True(t, saved.Days[0].Resources[0].Completed)

	_, err = svc.MarkResourceComplete(context.Background(), "rm-test", 1, "no such thing")
	require.ErrorIs(t, err, ErrResourceNotFound)

	_, err = svc.MarkResourceComplete(context.Background(), "rm-test", 99, "Video")
	require.ErrorIs(t, err, ErrDayOutOfRange)
}

func generatedRoadmap(totalDays int) *store.Roadmap {
	rm := &store.Roadmap{ID: "rm-1", SessionID: "sess-1", Title: "T", TotalDays: totalDays, Status: "active"}
	for i := 1; i <= totalDays; i++ {
		rm.Days = append(rm.Days, store.RoadmapDay{DayNumber: i, Content: fmt.Sprintf("Day %d", i)})
	}
	return rm
}

func TestCheckDayUnlocked(t *testing.T) {
	rm := generatedRoadmap(3)
	require.NoError(t, CheckDayUnlocked(rm, 1))
	require.ErrorIs(t, CheckDayUnlocked(rm, 2), ErrDayLocked)

	rm.CompletedDays = []int{1}
	require.NoError(t, CheckDayUnlocked(rm, 2))
	require.ErrorIs(t, CheckDayUnlocked(rm, 3), ErrDayLocked)
	require.ErrorIs(t, CheckDayUnlocked(rm, 4), ErrDayOutOfRange)
}

func TestApplyDayResult(t *testing.T) {
	rm := generatedRoadmap(2)
	result := store.DayResult{Score: 2, MaxScore: 3, Passed: true, Timestamp: time.Now()}

	already, err := ApplyDayResult(rm, 1, result)
	require.NoError(t, err)
	require.False(t, already)
	require.Equal(t, []int{1}, rm.CompletedDays)

	// Second submission is a no-op.
	already, err = ApplyDayResult(rm, 1, store.DayResult{Score: 0, MaxScore: 3})
	require.NoError(t, err)
	require.True(t, already)
	require.True(t, rm.Days[0].Result.Passed)

	already, err = ApplyDayResult(rm, 2, result)
	require.NoError(t, err)
	require.False(t, already)
	require.Equal(t, "completed", rm.Status)
}

func TestApplyDayResultFailedDayDoesNotComplete(t *testing.T) {
	rm := generatedRoadmap(2)
	_, err := ApplyDayResult(rm, 1, store.DayResult{Score: 0, MaxScore: 3, Passed: false})
	require.NoError(t, err)
	require.Empty(t, rm.CompletedDays)
	require.NotNil(t, rm.Days[0].Result)
	// Day 2 stays locked behind the failed day 1.
	require.ErrorIs(t, CheckDayUnlocked(rm, 2), ErrDayLocked)

	// A retry that passes replaces the failed result.
	already, err := ApplyDayResult(rm, 1, store.DayResult{Score: 3, MaxScore: 3, Passed: true})
	require.NoError(t, err)
	require.False(t, already)
	require.Equal(t, []int{1}, rm.CompletedDays)
}

func TestApplyDayResultRequiresResourcesComplete(t *testing.T) {
	rm := generatedRoadmap(2)
	rm.Days[0].Resources = []store.DayResource{
		{Name: "Video", Completed: true},
		{Name: "Practice set"},
	}

	_, err := ApplyDayResult(rm, 1, store.DayResult{Score: 3, MaxScore: 3, Passed: true})
	require.ErrorIs(t, err, ErrResourcesIncomplete)
	require.Empty(t, rm.CompletedDays)
	require.Nil(t, rm.Days[0].Result)

	rm.Days[0].Resources[1].Completed = true
	already, err := ApplyDayResult(rm, 1, store.DayResult{Score: 3, MaxScore: 3, Passed: true})
	require.NoError(t, err)
	require.False(t, already)
	require.Equal(t, []int{1}, rm.CompletedDays)
}

func TestApplyDayResultRequiresContent(t *testing.T) {
	rm := generatedRoadmap(2)
	rm.Days[0].Content = ContentNotGenerated
	_, err := ApplyDayResult(rm, 1, store.DayResult{Passed: true})
	require.ErrorIs(t, err, ErrNoContent)
}
