// Package engine is the single writer for progression state. Every mutating
// operation serializes on a per-session lock, reads the progress record,
// applies the level, XP, cooldown, and remedial rules, and writes the record
// back. Content generation is delegated to the assessment, remedial, and
// roadmap services.
package engine

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ascentlearn/ascent/internal/assessment"
	"github.com/ascentlearn/ascent/internal/keylock"
	"github.com/ascentlearn/ascent/internal/llm"
	"github.com/ascentlearn/ascent/internal/mistakes"
	"github.com/ascentlearn/ascent/internal/remedial"
	"github.com/ascentlearn/ascent/internal/roadmap"
	"github.com/ascentlearn/ascent/internal/schedule"
	"github.com/ascentlearn/ascent/internal/store"
	"github.com/ascentlearn/ascent/internal/xp"
)

// Deps wires the engine's collaborators. Now and Roll may be nil for
// production defaults.
type Deps struct {
	Progress    store.ProgressRepo
	Chapters    store.ChapterRepo
	Assessments *assessment.Service
	Remedial    *remedial.Service
	Mistakes    *mistakes.Service
	Roadmaps    *roadmap.Service
	Now         func() time.Time
	Roll        xp.RollFunc
}

// Engine coordinates all progression operations.
type Engine struct {
	progress    store.ProgressRepo
	chapters    store.ChapterRepo
	assessments *assessment.Service
	remedials   *remedial.Service
	mistakes    *mistakes.Service
	roadmaps    *roadmap.Service
	locks       *keylock.Set
	now         func() time.Time
	roll        xp.RollFunc
}

// New creates an Engine from its dependencies.
func New(d Deps) *Engine {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Roll == nil {
		d.Roll = xp.DefaultRoll
	}
	return &Engine{
		progress:    d.Progress,
		chapters:    d.Chapters,
		assessments: d.Assessments,
		remedials:   d.Remedial,
		mistakes:    d.Mistakes,
		roadmaps:    d.Roadmaps,
		locks:       keylock.New(),
		now:         d.Now,
		roll:        d.Roll,
	}
}

// FromStore builds a production Engine on top of an opened store.
func FromStore(st *store.Store, provider llm.Provider) *Engine {
	return New(Deps{
		Progress:    st.ProgressRepo(),
		Chapters:    st.ChapterRepo(),
		Assessments: assessment.NewService(provider, st.AssessmentRepo()),
		Remedial:    remedial.NewService(provider, nil),
		Mistakes:    mistakes.NewService(st.MistakeRepo()),
		Roadmaps:    roadmap.NewService(provider, st.RoadmapRepo(), nil),
	})
}

// QuestionView is a question as shown to the learner: no answer key.
type QuestionView struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options,omitempty"`
	Type     string   `json:"type"`
}

// AssessmentView is the response to a generation request.
type AssessmentView struct {
	SessionID   string          `json:"session_id"`
	Level       int             `json:"level"`
	ChapterKey  string          `json:"chapter_key"`
	ChapterName string          `json:"chapter_name"`
	Questions   []QuestionView  `json:"questions"`
	Cached      bool            `json:"cached"`
	Schedule    schedule.Status `json:"schedule"`
}

// QuestionOutcome is the per-question feedback after grading.
type QuestionOutcome struct {
	ID            int    `json:"id"`
	Correct       bool   `json:"correct"`
	UserAnswer    string `json:"user_answer"`
	CorrectAnswer string `json:"correct_answer"`
	Explanation   string `json:"explanation"`
}

// SubmissionResult is the outcome of one graded submission.
type SubmissionResult struct {
	Score            int                 `json:"score"`
	MaxScore         int                 `json:"max_score"`
	Passed           bool                `json:"passed"`
	XPGained         int                 `json:"xp_gained"`
	ChapterBonus     int                 `json:"chapter_bonus,omitempty"`
	ChapterCompleted bool                `json:"chapter_completed"`
	TotalXP          int                 `json:"total_xp"`
	UnlockedLevel    int                 `json:"unlocked_level"`
	CooldownSeconds  int                 `json:"cooldown_seconds,omitempty"`
	Remedial         *store.RemedialPlan `json:"remedial,omitempty"`
	Outcomes         []QuestionOutcome   `json:"outcomes"`
}

// lockKey scopes per-session serialization to one track's state.
func lockKey(sessionID, track string) string {
	return track + ":" + sessionID
}

// RequestAssessment returns the current chapter's assessment for the level,
// generating and caching it on first request.
func (e *Engine) RequestAssessment(ctx context.Context, sessionID string, level int) (*AssessmentView, error) {
	if !validLevel(level) {
		return nil, ErrInvalidLevel
	}

	chapter, err := e.gateAttempt(ctx, sessionID, level)
	if err != nil {
		return nil, err
	}

	// Generation runs outside the session lock so a slow provider does not
	// stall the session's other operations. A duplicate generation on a
	// concurrent miss is absorbed by the idempotent cache write.
	questions, cached, err := e.assessments.GetOrCreate(ctx, sessionID, chapter.Key, level, chapter.Name)
	if err != nil {
		return nil, err
	}

	views := make([]QuestionView, len(questions))
	for i, q := range questions {
		views[i] = QuestionView{ID: q.ID, Question: q.Question, Options: q.Options, Type: q.Type}
	}
	return &AssessmentView{
		SessionID:   sessionID,
		Level:       level,
		ChapterKey:  chapter.Key,
		ChapterName: chapter.Name,
		Questions:   views,
		Cached:      cached,
		Schedule:    schedule.Check(chapter.CreatedAt, e.now()),
	}, nil
}

// SubmitAssessment grades a submission against the cached assessment and
// applies the progression rules: XP on pass, unlock at the frontier, chapter
// bonus and advance on a level 3 pass, remedial plan plus cooldown on fail.
func (e *Engine) SubmitAssessment(ctx context.Context, sessionID string, level int, answers []string) (*SubmissionResult, error) {
	if !validLevel(level) {
		return nil, ErrInvalidLevel
	}

	result, misses, topic, err := e.gradeSubmission(ctx, sessionID, level, answers)
	if err != nil {
		return nil, err
	}
	if result.Passed {
		return result, nil
	}

	// Diagnosis runs outside the session lock so a slow provider does not
	// stall the session's other operations. The plan is committed on
	// re-acquire.
	plan := e.remedials.Diagnose(ctx, remedial.Input{
		Level:  level,
		Topic:  topic,
		Score:  result.Score,
		Max:    result.MaxScore,
		Misses: misses,
	})
	if err := e.commitFailedAttempt(ctx, sessionID, level, result, plan); err != nil {
		return nil, err
	}
	return result, nil
}

// gradeSubmission validates and grades a submission under the session lock.
// A passing run is committed in full before the lock is released; a failing
// run is only graded, so the caller can fetch a diagnosis without holding
// the lock. For a fail it also returns the missed questions and the chapter
// topic the diagnosis needs.
func (e *Engine) gradeSubmission(ctx context.Context, sessionID string, level int, answers []string) (*SubmissionResult, []store.Mistake, string, error) {
	key := lockKey(sessionID, store.TrackInstitution)
	e.locks.Lock(key)
	defer e.locks.Unlock(key)

	rec, err := e.loadOrCreate(ctx, sessionID, store.TrackInstitution)
	if err != nil {
		return nil, nil, "", err
	}
	if err := e.checkAttemptAllowed(rec, level); err != nil {
		return nil, nil, "", err
	}

	chapter, err := e.currentChapter(ctx, rec)
	if err != nil {
		return nil, nil, "", err
	}

	questions, err := e.assessments.Cached(ctx, sessionID, chapter.Key, level)
	if err != nil {
		return nil, nil, "", err
	}
	if questions == nil {
		// The submission must target questions the learner has seen.
		return nil, nil, "", ErrNotFound
	}
	if len(answers) != len(questions) {
		return nil, nil, "", ErrAnswerCount
	}

	score, outcomes := grade(questions, answers)
	var misses []store.Mistake
	for i, out := range outcomes {
		if out.Correct {
			continue
		}
		if err := e.mistakes.Record(ctx, sessionID, level, questions[i], answers[i]); err != nil {
			return nil, nil, "", err
		}
		misses = append(misses, store.Mistake{
			Question:      questions[i].Question,
			CorrectAnswer: questions[i].CorrectAnswer,
			UserAnswer:    answers[i],
		})
	}

	result := &SubmissionResult{
		Score:         score,
		MaxScore:      len(questions),
		Passed:        levelPassed(level, score),
		UnlockedLevel: rec.UnlockedLevel,
		Outcomes:      outcomes,
	}
	if !result.Passed {
		return result, misses, chapter.Name, nil
	}

	// XP and unlocks only move at the frontier; replaying a cleared level
	// is practice, not income.
	if level == rec.UnlockedLevel {
		gained, err := xp.Reward(level, e.roll)
		if err != nil {
			return nil, nil, "", err
		}
		result.XPGained = gained
		rec.XP += gained

		if level == MaxLevel {
			result.ChapterCompleted = true
			result.ChapterBonus = xp.ChapterBonus
			rec.XP += xp.ChapterBonus
			rec.ChapterIndex++
			rec.UnlockedLevel = 1
		} else {
			rec.UnlockedLevel = level + 1
		}
	}
	rec.RemedialPlan = nil
	rec.RetryAvailableAt = nil
	rec.History = append(rec.History, store.Attempt{
		Level:     level,
		Score:     score,
		MaxScore:  len(questions),
		Passed:    true,
		XPGained:  result.XPGained + result.ChapterBonus,
		Timestamp: e.now().UTC(),
	})

	if err := e.progress.Save(ctx, rec); err != nil {
		return nil, nil, "", err
	}
	result.TotalXP = rec.XP
	result.UnlockedLevel = rec.UnlockedLevel
	return result, nil, chapter.Name, nil
}

// commitFailedAttempt re-acquires the session lock and installs the plan,
// the cooldown, and the history entry for a failed run. The record is
// reloaded because it may have moved while the diagnosis was in flight.
func (e *Engine) commitFailedAttempt(ctx context.Context, sessionID string, level int, result *SubmissionResult, plan *store.RemedialPlan) error {
	key := lockKey(sessionID, store.TrackInstitution)
	e.locks.Lock(key)
	defer e.locks.Unlock(key)

	rec, err := e.loadOrCreate(ctx, sessionID, store.TrackInstitution)
	if err != nil {
		return err
	}

	now := e.now().UTC()
	retryAt := now.Add(remedial.CooldownDuration)
	rec.RemedialPlan = plan
	rec.RetryAvailableAt = &retryAt
	rec.History = append(rec.History, store.Attempt{
		Level:     level,
		Score:     result.Score,
		MaxScore:  result.MaxScore,
		Timestamp: now,
	})

	if err := e.progress.Save(ctx, rec); err != nil {
		return err
	}
	result.Remedial = plan
	result.CooldownSeconds = int(remedial.CooldownDuration.Seconds())
	result.TotalXP = rec.XP
	result.UnlockedLevel = rec.UnlockedLevel
	return nil
}

// RemedialOutcome reports a remedial practice submission.
type RemedialOutcome struct {
	Correct         bool   `json:"correct"`
	CooldownLifted  bool   `json:"cooldown_lifted"`
	PracticeAnswer  string `json:"practice_answer,omitempty"`
	CooldownSeconds int    `json:"cooldown_seconds,omitempty"`
}

// CompleteRemedial grades the pending practice question. A correct answer
// consumes the plan and lifts the cooldown early; a wrong one leaves both.
func (e *Engine) CompleteRemedial(ctx context.Context, sessionID, answer string) (*RemedialOutcome, error) {
	key := lockKey(sessionID, store.TrackInstitution)
	e.locks.Lock(key)
	defer e.locks.Unlock(key)

	rec, err := e.progress.Get(ctx, sessionID, store.TrackInstitution)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.RemedialPlan == nil || rec.RemedialPlan.Consumed {
		return nil, ErrNoRemedial
	}

	plan := rec.RemedialPlan
	correct := strings.EqualFold(strings.TrimSpace(answer), strings.TrimSpace(plan.PracticeAnswer))
	out := &RemedialOutcome{Correct: correct}
	if !correct {
		if rec.RetryAvailableAt != nil {
			if remaining := rec.RetryAvailableAt.Sub(e.now()); remaining > 0 {
				out.CooldownSeconds = int(remaining.Seconds())
			}
		}
		return out, nil
	}

	plan.Consumed = true
	rec.RetryAvailableAt = nil
	out.CooldownLifted = true
	out.PracticeAnswer = plan.PracticeAnswer
	if err := e.progress.Save(ctx, rec); err != nil {
		return nil, err
	}
	return out, nil
}

// SpendXP deducts amount from a session's balance on the given track.
func (e *Engine) SpendXP(ctx context.Context, sessionID, track string, amount int) (int, error) {
	if amount <= 0 {
		return 0, ErrInvalidAmount
	}

	key := lockKey(sessionID, track)
	e.locks.Lock(key)
	defer e.locks.Unlock(key)

	rec, err := e.progress.Get(ctx, sessionID, track)
	if err != nil {
		return 0, err
	}
	if rec == nil {
		return 0, ErrNotFound
	}

	newBalance, err := xp.Spend(rec.XP, amount)
	if err != nil {
		return rec.XP, ErrInsufficientXP
	}
	rec.XP = newBalance
	if err := e.progress.Save(ctx, rec); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// ProgressView is the read model for one session and track.
type ProgressView struct {
	SessionID        string              `json:"session_id"`
	Track            string              `json:"track"`
	XP               int                 `json:"xp"`
	UnlockedLevel    int                 `json:"unlocked_level"`
	ChapterIndex     int                 `json:"chapter_index"`
	ChapterName      string              `json:"chapter_name,omitempty"`
	Schedule         *schedule.Status    `json:"schedule,omitempty"`
	History          []store.Attempt     `json:"history"`
	RemedialPlan     *store.RemedialPlan `json:"remedial_plan,omitempty"`
	CooldownSeconds  int                 `json:"cooldown_seconds,omitempty"`
	RetryAvailableAt *time.Time          `json:"retry_available_at,omitempty"`
}

// GetProgress returns the progression state for one track. A session that
// has never attempted anything reads as fresh zero progress.
func (e *Engine) GetProgress(ctx context.Context, sessionID, track string) (*ProgressView, error) {
	rec, err := e.progress.Get(ctx, sessionID, track)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = store.NewProgressRecord(sessionID, track)
	}

	view := &ProgressView{
		SessionID:        sessionID,
		Track:            track,
		XP:               rec.XP,
		UnlockedLevel:    rec.UnlockedLevel,
		ChapterIndex:     rec.ChapterIndex,
		History:          rec.History,
		RemedialPlan:     rec.RemedialPlan,
		RetryAvailableAt: rec.RetryAvailableAt,
	}
	if rec.RetryAvailableAt != nil {
		if remaining := rec.RetryAvailableAt.Sub(e.now()); remaining > 0 {
			view.CooldownSeconds = int(remaining.Seconds())
		}
	}

	if track == store.TrackInstitution {
		chapters, err := e.chapters.BySession(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if rec.ChapterIndex < len(chapters) {
			current := chapters[rec.ChapterIndex]
			view.ChapterName = current.Name
			st := schedule.Check(current.CreatedAt, e.now())
			view.Schedule = &st
		}
	}
	return view, nil
}

// AddChapter registers a new content unit for a session. Its place in the
// progression is its creation order.
func (e *Engine) AddChapter(ctx context.Context, sessionID, name string) (*store.Chapter, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNoContent
	}
	c := &store.Chapter{
		SessionID: sessionID,
		Key:       uuid.NewString(),
		Name:      name,
	}
	if err := e.chapters.Add(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListChapters returns a session's chapters in progression order.
func (e *Engine) ListChapters(ctx context.Context, sessionID string) ([]store.Chapter, error) {
	return e.chapters.BySession(ctx, sessionID)
}

// DayOutcome reports a roadmap day submission.
type DayOutcome struct {
	Score         int    `json:"score"`
	MaxScore      int    `json:"max_score"`
	Passed        bool   `json:"passed"`
	AlreadyDone   bool   `json:"already_done"`
	XPGained      int    `json:"xp_gained"`
	PlanCompleted bool   `json:"plan_completed"`
	PlanBonus     int    `json:"plan_bonus,omitempty"`
	TotalXP       int    `json:"total_xp"`
	Status        string `json:"status"`
}

// CompleteRoadmapDay grades a day's concept checks and pays out on the
// individual track. Non-blank answers score; any score passes the day.
func (e *Engine) CompleteRoadmapDay(ctx context.Context, sessionID, roadmapID string, dayNumber int, answers []string) (*DayOutcome, error) {
	key := lockKey(sessionID, store.TrackIndividual)
	e.locks.Lock(key)
	defer e.locks.Unlock(key)

	rm, err := e.roadmaps.Get(ctx, roadmapID)
	if err != nil {
		return nil, err
	}
	if rm.SessionID != sessionID {
		return nil, roadmap.ErrNotFound
	}
	day, err := roadmap.DayByNumber(rm, dayNumber)
	if err != nil {
		return nil, err
	}
	if len(answers) != len(day.Questions) {
		return nil, ErrAnswerCount
	}

	score := 0
	for _, a := range answers {
		if strings.TrimSpace(a) != "" {
			score++
		}
	}
	result := store.DayResult{
		Score:     score,
		MaxScore:  len(day.Questions),
		Passed:    score > 0,
		Timestamp: e.now().UTC(),
	}

	alreadyDone, err := roadmap.ApplyDayResult(rm, dayNumber, result)
	if err != nil {
		return nil, err
	}

	out := &DayOutcome{
		Score:       result.Score,
		MaxScore:    result.MaxScore,
		Passed:      result.Passed,
		AlreadyDone: alreadyDone,
		Status:      rm.Status,
	}
	if alreadyDone {
		rec, err := e.loadOrCreate(ctx, sessionID, store.TrackIndividual)
		if err != nil {
			return nil, err
		}
		out.TotalXP = rec.XP
		return out, nil
	}

	if err := e.roadmaps.Save(ctx, rm); err != nil {
		return nil, err
	}

	rec, err := e.loadOrCreate(ctx, sessionID, store.TrackIndividual)
	if err != nil {
		return nil, err
	}
	if result.Passed {
		gained, err := xp.Reward(1, e.roll)
		if err != nil {
			return nil, err
		}
		out.XPGained = gained
		rec.XP += gained
		if rm.Status == "completed" {
			out.PlanCompleted = true
			out.PlanBonus = xp.ChapterBonus
			rec.XP += xp.ChapterBonus
		}
		if err := e.progress.Save(ctx, rec); err != nil {
			return nil, err
		}
	}
	out.TotalXP = rec.XP
	out.Status = rm.Status
	return out, nil
}

// Mistakes lists recorded mistakes; empty sessionID lists every session.
func (e *Engine) Mistakes(ctx context.Context, sessionID string) ([]store.Mistake, error) {
	return e.mistakes.List(ctx, sessionID)
}

// CommentMistake sets the learner's annotation on a recorded mistake.
func (e *Engine) CommentMistake(ctx context.Context, sessionID, question, comment string) error {
	err := e.mistakes.Comment(ctx, sessionID, question, comment)
	if err == store.ErrNotFound {
		return ErrNotFound
	}
	return err
}

// Roadmaps exposes the roadmap service for transport layers.
func (e *Engine) Roadmaps() *roadmap.Service {
	return e.roadmaps
}

func (e *Engine) loadOrCreate(ctx context.Context, sessionID, track string) (*store.ProgressRecord, error) {
	rec, err := e.progress.Get(ctx, sessionID, track)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		rec = store.NewProgressRecord(sessionID, track)
	}
	return rec, nil
}

// gateAttempt enforces level gating and the cooldown lock under the session
// lock, resolving the chapter the attempt targets.
func (e *Engine) gateAttempt(ctx context.Context, sessionID string, level int) (*store.Chapter, error) {
	key := lockKey(sessionID, store.TrackInstitution)
	e.locks.Lock(key)
	defer e.locks.Unlock(key)

	rec, err := e.loadOrCreate(ctx, sessionID, store.TrackInstitution)
	if err != nil {
		return nil, err
	}
	if err := e.checkAttemptAllowed(rec, level); err != nil {
		return nil, err
	}
	return e.currentChapter(ctx, rec)
}

// checkAttemptAllowed enforces level gating and the cooldown lock.
func (e *Engine) checkAttemptAllowed(rec *store.ProgressRecord, level int) error {
	if level > rec.UnlockedLevel {
		return ErrLevelLocked
	}
	if rec.RetryAvailableAt != nil {
		if remaining := rec.RetryAvailableAt.Sub(e.now()); remaining > 0 {
			return &CooldownError{Remaining: remaining}
		}
	}
	return nil
}

// currentChapter resolves the chapter the session is working through.
func (e *Engine) currentChapter(ctx context.Context, rec *store.ProgressRecord) (*store.Chapter, error) {
	chapters, err := e.chapters.BySession(ctx, rec.SessionID)
	if err != nil {
		return nil, err
	}
	if len(chapters) == 0 || rec.ChapterIndex >= len(chapters) {
		return nil, ErrNoContent
	}
	return &chapters[rec.ChapterIndex], nil
}

// grade scores a submission. Multiple choice compares the selected option to
// the answer key, case-insensitively. Short answers score when non-blank;
// the model answer is feedback, not a matcher.
func grade(questions []store.Question, answers []string) (int, []QuestionOutcome) {
	score := 0
	outcomes := make([]QuestionOutcome, len(questions))
	for i, q := range questions {
		answer := strings.TrimSpace(answers[i])
		correct := false
		if q.Type == assessment.TypeShortAnswer {
			correct = answer != ""
		} else {
			correct = strings.EqualFold(answer, strings.TrimSpace(q.CorrectAnswer))
		}
		if correct {
			score++
		}
		outcomes[i] = QuestionOutcome{
			ID:            q.ID,
			Correct:       correct,
			UserAnswer:    answers[i],
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
		}
	}
	return score, outcomes
}
