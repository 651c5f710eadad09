// Package assessment generates and caches level assessments. Levels 1 and 2
// are ten multiple-choice questions each; level 3 is five short-answer
// questions. Generated sets are cached per (session, chapter key, level) so
// a retry after a failed run replays the identical questions.
package assessment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ascentlearn/ascent/internal/llm"
	"github.com/ascentlearn/ascent/internal/store"
)

// Question type labels stored alongside each generated question.
const (
	TypeMCQ         = "mcq"
	TypeShortAnswer = "short_answer"
)

const mcqOptionCount = 4

// questionCounts maps level to the number of questions generated.
var questionCounts = map[int]int{1: 10, 2: 10, 3: 5}

// Count returns the question count for a level, 0 for unknown levels.
func Count(level int) int {
	return questionCounts[level]
}

// GenerationError wraps a provider or shape failure during generation.
// Nothing is cached when it occurs; the next request regenerates.
type GenerationError struct {
	Level int
	Err   error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate level %d assessment: %v", e.Level, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Service generates assessments through a Provider and caches them.
type Service struct {
	provider llm.Provider
	repo     store.AssessmentRepo
}

// NewService creates an assessment Service.
func NewService(provider llm.Provider, repo store.AssessmentRepo) *Service {
	return &Service{provider: provider, repo: repo}
}

// Cached returns the cached question set for the triple, or nil on a miss.
// It never generates.
func (s *Service) Cached(ctx context.Context, sessionID, chapterKey string, level int) ([]store.Question, error) {
	cached, err := s.repo.Get(ctx, sessionID, chapterKey, level)
	if err != nil {
		return nil, err
	}
	if cached == nil {
		return nil, nil
	}
	return cached.Questions, nil
}

// GetOrCreate returns the cached assessment for the triple, generating and
// caching it on a miss. The bool reports whether the result came from cache.
func (s *Service) GetOrCreate(ctx context.Context, sessionID, chapterKey string, level int, topic string) ([]store.Question, bool, error) {
	cached, err := s.repo.Get(ctx, sessionID, chapterKey, level)
	if err != nil {
		return nil, false, err
	}
	if cached != nil {
		return cached.Questions, true, nil
	}

	questions, err := s.generate(ctx, level, topic)
	if err != nil {
		return nil, false, err
	}

	if err := s.repo.Put(ctx, &store.Assessment{
		SessionID:  sessionID,
		ChapterKey: chapterKey,
		Level:      level,
		Questions:  questions,
	}); err != nil {
		return nil, false, err
	}
	return questions, false, nil
}

func (s *Service) generate(ctx context.Context, level int, topic string) ([]store.Question, error) {
	count := Count(level)
	if count == 0 {
		return nil, &GenerationError{Level: level, Err: fmt.Errorf("unknown level %d", level)}
	}

	ctx = llm.WithPurpose(ctx, "assessment-gen")
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      assessmentSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: buildPrompt(level, topic)}},
		Schema:      schemaForLevel(level),
		MaxTokens:   4096,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, &GenerationError{Level: level, Err: err}
	}

	questions, err := parseQuestions(level, resp.Content)
	if err != nil {
		// Models occasionally wrap the document in markdown fences even
		// under structured output. Strip them and parse once more.
		questions, err = parseQuestions(level, cleanupJSON(resp.Content))
		if err != nil {
			return nil, &GenerationError{Level: level, Err: err}
		}
	}

	if err := validateShape(level, questions); err != nil {
		return nil, &GenerationError{Level: level, Err: err}
	}
	return questions, nil
}

// questionPayload is the wire shape the model produces.
type questionPayload struct {
	Questions []struct {
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
		Explanation   string   `json:"explanation"`
	} `json:"questions"`
}

func parseQuestions(level int, raw json.RawMessage) ([]store.Question, error) {
	var payload questionPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode questions: %w", err)
	}

	kind := TypeMCQ
	if level == 3 {
		kind = TypeShortAnswer
	}

	out := make([]store.Question, len(payload.Questions))
	for i, q := range payload.Questions {
		out[i] = store.Question{
			ID:            i + 1,
			Question:      strings.TrimSpace(q.Question),
			Options:       q.Options,
			CorrectAnswer: strings.TrimSpace(q.CorrectAnswer),
			Explanation:   strings.TrimSpace(q.Explanation),
			Type:          kind,
		}
	}
	return out, nil
}

func validateShape(level int, questions []store.Question) error {
	want := Count(level)
	if len(questions) != want {
		return fmt.Errorf("got %d questions, want %d", len(questions), want)
	}
	for _, q := range questions {
		if q.Question == "" {
			return fmt.Errorf("question %d has empty text", q.ID)
		}
		if q.Type != TypeMCQ {
			continue
		}
		if len(q.Options) != mcqOptionCount {
			return fmt.Errorf("question %d has %d options, want %d", q.ID, len(q.Options), mcqOptionCount)
		}
		if !containsOption(q.Options, q.CorrectAnswer) {
			return fmt.Errorf("question %d: correct answer not among options", q.ID)
		}
	}
	return nil
}

func containsOption(options []string, answer string) bool {
	for _, o := range options {
		if strings.TrimSpace(o) == answer {
			return true
		}
	}
	return false
}

// cleanupJSON strips markdown code fences and surrounding noise from a
// model response so the JSON document inside can be parsed.
func cleanupJSON(raw json.RawMessage) json.RawMessage {
	text := bytes.TrimSpace(raw)

	// Sometimes the whole document arrives as a JSON string literal.
	var inner string
	if err := json.Unmarshal(text, &inner); err == nil {
		text = bytes.TrimSpace([]byte(inner))
	}

	s := string(text)
	if idx := strings.Index(s, "```"); idx >= 0 {
		s = s[idx+3:]
		s = strings.TrimPrefix(s, "json")
		if end := strings.LastIndex(s, "```"); end >= 0 {
			s = s[:end]
		}
	}
	return json.RawMessage(strings.TrimSpace(s))
}
