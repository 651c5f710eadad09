// Package remedial diagnoses a failed assessment run and produces the plan
// the learner must complete during the cooldown window. Diagnosis assigns
// one category from a closed taxonomy, explains the gap, and attaches one
// practice question.
package remedial

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ascentlearn/ascent/internal/llm"
	"github.com/ascentlearn/ascent/internal/store"
)

// CooldownDuration is how long a failed run locks the level.
const CooldownDuration = 600 * time.Second

// explanationWordLimit caps the diagnosis explanation length.
const explanationWordLimit = 100

// Diagnosis categories. Unclassified is the fallback when the model output
// falls outside the taxonomy or the provider is unreachable.
const (
	CategoryRecallGap      = "recall-gap"
	CategoryApplicationGap = "application-gap"
	CategorySynthesisGap   = "synthesis-gap"
	CategoryCareless       = "careless"
	CategoryUnclassified   = "unclassified"
)

var categories = map[string]bool{
	CategoryRecallGap:      true,
	CategoryApplicationGap: true,
	CategorySynthesisGap:   true,
	CategoryCareless:       true,
	CategoryUnclassified:   true,
}

// ValidCategory reports whether c belongs to the taxonomy.
func ValidCategory(c string) bool {
	return categories[c]
}

// Input describes the failed run to diagnose.
type Input struct {
	Level  int
	Topic  string
	Score  int
	Max    int
	Misses []store.Mistake
}

// Service produces remedial plans through a Provider.
type Service struct {
	provider llm.Provider
	now      func() time.Time
}

// NewService creates a remedial Service. now may be nil for wall-clock time.
func NewService(provider llm.Provider, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{provider: provider, now: now}
}

// Diagnose builds a remedial plan for a failed run. The cooldown must be
// installed regardless of what the model says, so a provider failure
// degrades to an unclassified plan instead of propagating an error.
func (s *Service) Diagnose(ctx context.Context, in Input) *store.RemedialPlan {
	ctx = llm.WithPurpose(ctx, "diagnosis")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      diagnosisSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildDiagnosisPrompt(in)}},
		Schema:      &diagnosisSchema,
		MaxTokens:   1024,
		Temperature: 0.3,
	})
	if err != nil {
		return s.fallbackPlan(in)
	}

	var payload struct {
		Category         string `json:"category"`
		Explanation      string `json:"explanation"`
		PracticeQuestion string `json:"practice_question"`
		PracticeAnswer   string `json:"practice_answer"`
	}
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return s.fallbackPlan(in)
	}

	category := strings.TrimSpace(strings.ToLower(payload.Category))
	if !ValidCategory(category) {
		category = CategoryUnclassified
	}

	plan := &store.RemedialPlan{
		Category:       category,
		Explanation:    TruncateWords(strings.TrimSpace(payload.Explanation), explanationWordLimit),
		PracticeText:   strings.TrimSpace(payload.PracticeQuestion),
		PracticeAnswer: strings.TrimSpace(payload.PracticeAnswer),
		CreatedAt:      s.now().UTC(),
	}
	if plan.PracticeText == "" {
		return s.fallbackPlan(in)
	}
	return plan
}

// fallbackPlan reuses one of the missed questions as practice material.
func (s *Service) fallbackPlan(in Input) *store.RemedialPlan {
	plan := &store.RemedialPlan{
		Category:    CategoryUnclassified,
		Explanation: fmt.Sprintf("You scored %d out of %d. Review the material and retry the missed questions.", in.Score, in.Max),
		CreatedAt:   s.now().UTC(),
	}
	if len(in.Misses) > 0 {
		plan.PracticeText = in.Misses[0].Question
		plan.PracticeAnswer = in.Misses[0].CorrectAnswer
	} else {
		plan.PracticeText = fmt.Sprintf("Summarize the key ideas of %s in your own words.", in.Topic)
	}
	return plan
}

// TruncateWords cuts s to at most limit words, appending an ellipsis when
// anything was dropped.
func TruncateWords(s string, limit int) string {
	words := strings.Fields(s)
	if len(words) <= limit {
		return s
	}
	return strings.Join(words[:limit], " ") + "..."
}

const diagnosisSystemPrompt = `You are a patient tutor reviewing a learner's
failed assessment. Classify the dominant failure mode, explain it briefly in
plain language, and set one targeted practice question.`

func buildDiagnosisPrompt(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\nLevel: %d\nScore: %d/%d\n\nMissed questions:\n", in.Topic, in.Level, in.Score, in.Max)
	for i, m := range in.Misses {
		fmt.Fprintf(&b, "%d. Q: %s\n   Correct: %s\n   Learner answered: %s\n", i+1, m.Question, m.CorrectAnswer, m.UserAnswer)
	}
	fmt.Fprintf(&b, `
Classify the failure as exactly one of: recall-gap, application-gap,
synthesis-gap, careless. Use careless only when the learner clearly knew the
method but slipped. Keep the explanation under %d words. The practice
question must target the diagnosed gap and be answerable in one line.`, explanationWordLimit)
	return b.String()
}

var diagnosisSchema = llm.Schema{
	Name:        "remedial-diagnosis",
	Description: "Failure-mode classification with one practice question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category": map[string]any{
				"type": "string",
				"enum": []any{CategoryRecallGap, CategoryApplicationGap, CategorySynthesisGap, CategoryCareless},
			},
			"explanation":       map[string]any{"type": "string"},
			"practice_question": map[string]any{"type": "string"},
			"practice_answer":   map[string]any{"type": "string"},
		},
		"required":             []any{"category", "explanation", "practice_question", "practice_answer"},
		"additionalProperties": false,
	},
}
