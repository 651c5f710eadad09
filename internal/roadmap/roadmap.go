// Package roadmap builds and maintains day-by-day study plans for the
// individual track. A plan's outline is generated up front; day content is
// filled in lazily one week at a time to keep creation fast and cheap.
package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ascentlearn/ascent/internal/llm"
	"github.com/ascentlearn/ascent/internal/store"
)

// ContentNotGenerated marks a day whose content has not been filled in yet.
const ContentNotGenerated = "CONTENT_NOT_GENERATED"

// DaysPerWeek is the batch size for lazy content generation.
const DaysPerWeek = 7

const (
	minTotalDays     = 7
	maxTotalDays     = 90
	defaultTotalDays = 30
)

var (
	// ErrNotFound means the roadmap UUID resolves to nothing.
	ErrNotFound = errors.New("roadmap not found")

	// ErrDayOutOfRange means the day number is outside [1, total days].
	ErrDayOutOfRange = errors.New("day number out of range")

	// ErrDayLocked means an earlier day has not been completed yet.
	ErrDayLocked = errors.New("previous day not completed")

	// ErrNoContent means the day's content has not been generated.
	ErrNoContent = errors.New("day content not generated")

	// ErrResourceNotFound means the named resource is not on the day.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrResourcesIncomplete means the day still has unfinished resources.
	ErrResourcesIncomplete = errors.New("day resources not completed")

	// ErrWeekOutOfRange means the week number is outside the plan.
	ErrWeekOutOfRange = errors.New("week number out of range")
)

// Service generates and mutates roadmaps.
type Service struct {
	provider llm.Provider
	repo     store.RoadmapRepo
	now      func() time.Time
	newID    func() string
}

// NewService creates a roadmap Service. now may be nil for wall-clock time.
func NewService(provider llm.Provider, repo store.RoadmapRepo, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		provider: provider,
		repo:     repo,
		now:      now,
		newID:    func() string { return uuid.NewString() },
	}
}

// Create generates a new plan for the goal and persists it. Day content for
// the first week is generated immediately; a content failure there is not
// fatal, those days stay pending and are filled by GenerateWeekContent.
func (s *Service) Create(ctx context.Context, sessionID, goal string, totalDays int) (*store.Roadmap, error) {
	if totalDays == 0 {
		totalDays = defaultTotalDays
	}
	if totalDays < minTotalDays || totalDays > maxTotalDays {
		return nil, fmt.Errorf("total days must be between %d and %d, got %d", minTotalDays, maxTotalDays, totalDays)
	}

	outline, err := s.generateOutline(ctx, goal, totalDays)
	if err != nil {
		return nil, err
	}

	rm := &store.Roadmap{
		ID:        s.newID(),
		SessionID: sessionID,
		Title:     outline.Title,
		Status:    "active",
		TotalDays: totalDays,
		Days:      make([]store.RoadmapDay, totalDays),
	}
	rm.Description = outline.Description
	for i := 0; i < totalDays; i++ {
		day := store.RoadmapDay{DayNumber: i + 1, Content: ContentNotGenerated}
		if i < len(outline.Days) {
			day.Topic = outline.Days[i].Topic
			day.Objectives = outline.Days[i].Objectives
			day.VideoTitle = outline.Days[i].VideoTitle
			day.VideoURL = outline.Days[i].VideoURL
		}
		rm.Days[i] = day
	}

	// Best effort; the outline alone is a usable plan.
	_ = s.fillWeek(ctx, rm, 1)

	if err := s.repo.Save(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

// Get returns a roadmap by UUID.
func (s *Service) Get(ctx context.Context, roadmapID string) (*store.Roadmap, error) {
	rm, err := s.repo.Get(ctx, roadmapID)
	if err != nil {
		return nil, err
	}
	if rm == nil {
		return nil, ErrNotFound
	}
	return rm, nil
}

// List returns a session's roadmaps, oldest first.
func (s *Service) List(ctx context.Context, sessionID string) ([]store.Roadmap, error) {
	return s.repo.BySession(ctx, sessionID)
}

// Save persists a roadmap mutated outside the service, such as a day result
// applied by the progression engine.
func (s *Service) Save(ctx context.Context, rm *store.Roadmap) error {
	return s.repo.Save(ctx, rm)
}

// GenerateWeekContent fills in content for every pending day of the given
// week (1-based) and persists the result.
func (s *Service) GenerateWeekContent(ctx context.Context, roadmapID string, week int) (*store.Roadmap, error) {
	rm, err := s.Get(ctx, roadmapID)
	if err != nil {
		return nil, err
	}

	first, last, ok := weekRange(week, rm.TotalDays)
	if !ok {
		return nil, ErrWeekOutOfRange
	}
	pending := false
	for i := first - 1; i < last; i++ {
		if rm.Days[i].Content == ContentNotGenerated {
			pending = true
			break
		}
	}
	if !pending {
		return rm, nil
	}

	if err := s.fillWeek(ctx, rm, week); err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

// MarkResourceComplete flips one resource flag on a day and persists it.
func (s *Service) MarkResourceComplete(ctx context.Context, roadmapID string, dayNumber int, resourceName string) (*store.Roadmap, error) {
	rm, err := s.Get(ctx, roadmapID)
	if err != nil {
		return nil, err
	}
	day, err := DayByNumber(rm, dayNumber)
	if err != nil {
		return nil, err
	}

	found := false
	for i := range day.Resources {
		if strings.EqualFold(day.Resources[i].Name, resourceName) {
			day.Resources[i].Completed = true
			found = true
		}
	}
	if !found {
		return nil, ErrResourceNotFound
	}
	if err := s.repo.Save(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

// DayByNumber returns a pointer into rm.Days for the given 1-based day.
func DayByNumber(rm *store.Roadmap, dayNumber int) (*store.RoadmapDay, error) {
	if dayNumber < 1 || dayNumber > rm.TotalDays || dayNumber > len(rm.Days) {
		return nil, ErrDayOutOfRange
	}
	return &rm.Days[dayNumber-1], nil
}

// CheckDayUnlocked enforces strictly sequential progression: a day opens
// only once every earlier day is completed.
func CheckDayUnlocked(rm *store.Roadmap, dayNumber int) error {
	if dayNumber < 1 || dayNumber > rm.TotalDays {
		return ErrDayOutOfRange
	}
	completed := make(map[int]bool, len(rm.CompletedDays))
	for _, d := range rm.CompletedDays {
		completed[d] = true
	}
	for d := 1; d < dayNumber; d++ {
		if !completed[d] {
			return ErrDayLocked
		}
	}
	return nil
}

// ApplyDayResult records a day's assessment outcome on the plan in memory.
// A day that already passed is idempotent: alreadyDone=true tells the caller
// to skip the payout. A failed day keeps its latest result and stays open
// for retries.
func ApplyDayResult(rm *store.Roadmap, dayNumber int, result store.DayResult) (alreadyDone bool, err error) {
	day, err := DayByNumber(rm, dayNumber)
	if err != nil {
		return false, err
	}
	if day.Content == ContentNotGenerated {
		return false, ErrNoContent
	}
	if err := CheckDayUnlocked(rm, dayNumber); err != nil {
		return false, err
	}
	// The day's assessment opens only once every resource is worked through.
	for _, res := range day.Resources {
		if !res.Completed {
			return false, ErrResourcesIncomplete
		}
	}
	if day.Result != nil && day.Result.Passed {
		return true, nil
	}

	day.Result = &result
	if result.Passed {
		rm.CompletedDays = append(rm.CompletedDays, dayNumber)
		if len(rm.CompletedDays) >= rm.TotalDays {
			rm.Status = "completed"
		}
	}
	return false, nil
}

// weekRange maps a 1-based week to the inclusive day range it covers.
func weekRange(week, totalDays int) (first, last int, ok bool) {
	if week < 1 {
		return 0, 0, false
	}
	first = (week-1)*DaysPerWeek + 1
	if first > totalDays {
		return 0, 0, false
	}
	last = week * DaysPerWeek
	if last > totalDays {
		last = totalDays
	}
	return first, last, true
}

// outlinePayload is the wire shape of the plan outline.
type outlinePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Days        []struct {
		DayNumber  int      `json:"day_number"`
		Topic      string   `json:"topic"`
		Objectives []string `json:"learning_objectives"`
		VideoTitle string   `json:"video_title"`
		VideoURL   string   `json:"video_url"`
	} `json:"days"`
}

func (s *Service) generateOutline(ctx context.Context, goal string, totalDays int) (*outlinePayload, error) {
	ctx = llm.WithPurpose(ctx, "roadmap-gen")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      roadmapSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildOutlinePrompt(goal, totalDays)}},
		Schema:      &outlineSchema,
		MaxTokens:   8192,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("generate roadmap outline: %w", err)
	}

	var payload outlinePayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return nil, fmt.Errorf("decode roadmap outline: %w", err)
	}
	if payload.Title == "" || len(payload.Days) == 0 {
		return nil, fmt.Errorf("roadmap outline is empty")
	}
	return &payload, nil
}

// weekContentPayload is the wire shape of one week's generated content.
type weekContentPayload struct {
	Days []struct {
		DayNumber int    `json:"day_number"`
		Content   string `json:"content"`
		Questions []struct {
			Question string `json:"question"`
			Type     string `json:"type"`
			Hint     string `json:"hint"`
		} `json:"questions"`
		Resources []string `json:"resources"`
	} `json:"days"`
}

func (s *Service) fillWeek(ctx context.Context, rm *store.Roadmap, week int) error {
	first, last, ok := weekRange(week, rm.TotalDays)
	if !ok {
		return ErrWeekOutOfRange
	}

	ctx = llm.WithPurpose(ctx, "week-content")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      roadmapSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildWeekContentPrompt(rm, first, last)}},
		Schema:      &weekContentSchema,
		MaxTokens:   8192,
		Temperature: 0.7,
	})
	if err != nil {
		return fmt.Errorf("generate week %d content: %w", week, err)
	}

	var payload weekContentPayload
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return fmt.Errorf("decode week %d content: %w", week, err)
	}

	for _, d := range payload.Days {
		if d.DayNumber < first || d.DayNumber > last {
			continue
		}
		day := &rm.Days[d.DayNumber-1]
		if day.Content != ContentNotGenerated {
			continue
		}
		day.Content = strings.TrimSpace(d.Content)
		if day.Content == "" {
			day.Content = ContentNotGenerated
			continue
		}
		for _, q := range d.Questions {
			day.Questions = append(day.Questions, store.DayQuestion{Question: q.Question, Type: q.Type, Hint: q.Hint})
		}
		for _, name := range d.Resources {
			day.Resources = append(day.Resources, store.DayResource{Name: name})
		}
	}
	return nil
}
