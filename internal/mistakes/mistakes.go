// Package mistakes maintains the deduplicated record of incorrect answers.
// Entries accumulate across assessment runs and never expire; the learner
// can annotate them with comments.
package mistakes

import (
	"context"
	"strings"

	"github.com/ascentlearn/ascent/internal/store"
)

// Service records and serves mistakes.
type Service struct {
	repo store.MistakeRepo
}

// NewService creates a mistakes Service.
func NewService(repo store.MistakeRepo) *Service {
	return &Service{repo: repo}
}

// Record stores one incorrect answer. Repeats of the same wrong answer to
// the same question are dropped by the repository.
func (s *Service) Record(ctx context.Context, sessionID string, level int, q store.Question, userAnswer string) error {
	return s.repo.Insert(ctx, &store.Mistake{
		SessionID:     sessionID,
		Question:      q.Question,
		CorrectAnswer: q.CorrectAnswer,
		UserAnswer:    strings.TrimSpace(userAnswer),
		Explanation:   q.Explanation,
		Level:         level,
	})
}

// AllSessions is the session ID that selects the cross-session union.
const AllSessions = "all"

// List returns a session's mistakes oldest first. The "all" sentinel (or an
// empty sessionID, for the operator CLI) lists every session.
func (s *Service) List(ctx context.Context, sessionID string) ([]store.Mistake, error) {
	if sessionID == "" || strings.EqualFold(sessionID, AllSessions) {
		return s.repo.All(ctx)
	}
	return s.repo.BySession(ctx, sessionID)
}

// Comment sets the learner's annotation on a recorded mistake.
func (s *Service) Comment(ctx context.Context, sessionID, question, comment string) error {
	return s.repo.UpdateComment(ctx, sessionID, question, comment)
}
