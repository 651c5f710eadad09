package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by targeted mutations on records that do not
// exist. Idempotent reads return empty/zero values instead.
var ErrNotFound = errors.New("record not found")

// Track identifies which progression track a record belongs to.
const (
	TrackInstitution = "institution"
	TrackIndividual  = "individual"
)

// ProgressRecord is one learner session's progression state within one track.
type ProgressRecord struct {
	SessionID        string
	Track            string
	XP               int
	UnlockedLevel    int
	ChapterIndex     int
	History          []Attempt
	RetryAvailableAt *time.Time
	RemedialPlan     *RemedialPlan
	UpdatedAt        time.Time
}

// NewProgressRecord returns a zero-progress record for a session.
func NewProgressRecord(sessionID, track string) *ProgressRecord {
	return &ProgressRecord{
		SessionID:     sessionID,
		Track:         track,
		UnlockedLevel: 1,
	}
}

// Attempt is one assessment outcome in the history.
type Attempt struct {
	Level     int
	Score     int
	MaxScore  int
	Passed    bool
	XPGained  int
	Timestamp time.Time
}

// RemedialPlan is a session's current remedial plan.
type RemedialPlan struct {
	Category       string
	Explanation    string
	PracticeText   string
	PracticeAnswer string
	Consumed       bool
	CreatedAt      time.Time
}

// Question is one generated assessment question.
type Question struct {
	ID            int
	Question      string
	Options       []string
	CorrectAnswer string
	Explanation   string
	Type          string
}

// Assessment is a cached question set for (session, chapter key, level).
type Assessment struct {
	SessionID   string
	ChapterKey  string
	Level       int
	Questions   []Question
	GeneratedAt time.Time
}

// Mistake is one recorded incorrect answer.
type Mistake struct {
	ID            int
	SessionID     string
	Question      string
	CorrectAnswer string
	UserAnswer    string
	Explanation   string
	Level         int
	Comment       string
	CreatedAt     time.Time
}

// Chapter is one registered content unit for an institution-track session.
type Chapter struct {
	SessionID string
	Key       string
	Name      string
	CreatedAt time.Time
}

// Roadmap is a generated day-by-day study plan.
type Roadmap struct {
	ID            string
	SessionID     string
	Title         string
	Description   string
	TotalDays     int
	Days          []RoadmapDay
	CompletedDays []int
	Status        string
	CreatedAt     time.Time
}

// RoadmapDay is one day of the plan.
type RoadmapDay struct {
	DayNumber  int
	Topic      string
	Objectives []string
	VideoTitle string
	VideoURL   string
	Content    string
	Questions  []DayQuestion
	Resources  []DayResource
	Result     *DayResult
}

// DayQuestion is a concept-check question attached to a day.
type DayQuestion struct {
	Question string
	Type     string
	Hint     string
}

// DayResource is one completable resource within a day.
type DayResource struct {
	Name      string
	Completed bool
}

// DayResult is the outcome of a day's assessment.
type DayResult struct {
	Score     int
	MaxScore  int
	Passed    bool
	Timestamp time.Time
}

// ProgressRepo persists progression records, one per (session, track).
type ProgressRepo interface {
	// Get returns the record for (sessionID, track), or nil when none exists.
	Get(ctx context.Context, sessionID, track string) (*ProgressRecord, error)

	// Save upserts the record keyed by (sessionID, track).
	Save(ctx context.Context, rec *ProgressRecord) error

	// Delete removes the record. Used only by explicit session teardown.
	Delete(ctx context.Context, sessionID, track string) error
}

// AssessmentRepo caches generated assessments.
type AssessmentRepo interface {
	// Get returns the cached assessment for the exact triple, or nil.
	Get(ctx context.Context, sessionID, chapterKey string, level int) (*Assessment, error)

	// Put stores an assessment. Idempotent: a concurrent write for the same
	// triple wins silently, both writers carry equivalent content.
	Put(ctx context.Context, a *Assessment) error
}

// MistakeRepo is the append-only, deduplicated mistake log.
type MistakeRepo interface {
	// Insert records a mistake. Silently no-ops when an entry with the same
	// (session, question, user answer) already exists.
	Insert(ctx context.Context, m *Mistake) error

	// BySession returns one session's mistakes ordered by creation time.
	BySession(ctx context.Context, sessionID string) ([]Mistake, error)

	// All returns every session's mistakes ordered by creation time.
	All(ctx context.Context) ([]Mistake, error)

	// UpdateComment replaces the comment of the unique (session, question)
	// entry. Returns ErrNotFound when no such entry exists.
	UpdateComment(ctx context.Context, sessionID, question, comment string) error
}

// ChapterRepo stores content-unit registrations.
type ChapterRepo interface {
	Add(ctx context.Context, c *Chapter) error

	// BySession returns a session's chapters ordered by creation time,
	// oldest first. This ordering decides the current chapter.
	BySession(ctx context.Context, sessionID string) ([]Chapter, error)
}

// RoadmapRepo persists roadmaps.
type RoadmapRepo interface {
	// Save upserts a roadmap keyed by its UUID.
	Save(ctx context.Context, r *Roadmap) error

	// Get returns the roadmap by UUID, or nil when none exists.
	Get(ctx context.Context, roadmapID string) (*Roadmap, error)

	// BySession returns a session's roadmaps ordered by creation time.
	BySession(ctx context.Context, sessionID string) ([]Roadmap, error)

	// Active returns the session's oldest active roadmap, or nil.
	Active(ctx context.Context, sessionID string) (*Roadmap, error)
}

// LLMRequestEventData captures one provider call for the audit log.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMEvent is a stored provider-call event.
type LLMEvent struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	Timestamp    time.Time
}

// LLMUsageStat aggregates usage for one purpose label.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to provider-call events.
type EventRepo interface {
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	QueryLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
