package store

import (
	"context"
	"fmt"

	"github.com/ascentlearn/ascent/ent"
	"github.com/ascentlearn/ascent/ent/assessment"
	"github.com/ascentlearn/ascent/ent/schema"
)

type assessmentRepo struct {
	client *ent.Client
}

func (r *assessmentRepo) Get(ctx context.Context, sessionID, chapterKey string, level int) (*Assessment, error) {
	row, err := r.client.Assessment.Query().
		Where(
			assessment.SessionID(sessionID),
			assessment.ChapterKey(chapterKey),
			assessment.Level(level),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query assessment: %w", err)
	}
	return &Assessment{
		SessionID:   row.SessionID,
		ChapterKey:  row.ChapterKey,
		Level:       row.Level,
		Questions:   questionsFromSchema(row.Questions),
		GeneratedAt: row.GeneratedAt,
	}, nil
}

func (r *assessmentRepo) Put(ctx context.Context, a *Assessment) error {
	_, err := r.client.Assessment.Create().
		SetSessionID(a.SessionID).
		SetChapterKey(a.ChapterKey).
		SetLevel(a.Level).
		SetQuestions(questionsToSchema(a.Questions)).
		Save(ctx)
	// A concurrent writer already cached this triple; its content is
	// equivalent, so the loser backs off silently.
	if ent.IsConstraintError(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("cache assessment: %w", err)
	}
	return nil
}

func questionsToSchema(in []Question) []schema.Question {
	out := make([]schema.Question, len(in))
	for i, q := range in {
		out[i] = schema.Question{
			ID:            q.ID,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Type:          q.Type,
		}
	}
	return out
}

func questionsFromSchema(in []schema.Question) []Question {
	out := make([]Question, len(in))
	for i, q := range in {
		out[i] = Question{
			ID:            q.ID,
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   q.Explanation,
			Type:          q.Type,
		}
	}
	return out
}
