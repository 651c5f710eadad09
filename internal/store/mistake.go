package store

import (
	"context"
	"fmt"

	"github.com/ascentlearn/ascent/ent"
	"github.com/ascentlearn/ascent/ent/mistake"
)

type mistakeRepo struct {
	client *ent.Client
}

func (r *mistakeRepo) Insert(ctx context.Context, m *Mistake) error {
	_, err := r.client.Mistake.Create().
		SetSessionID(m.SessionID).
		SetQuestion(m.Question).
		SetCorrectAnswer(m.CorrectAnswer).
		SetUserAnswer(m.UserAnswer).
		SetExplanation(m.Explanation).
		SetLevel(m.Level).
		SetComment(m.Comment).
		Save(ctx)
	// Repeating the same wrong answer to the same question is not a new
	// mistake. The unique index catches it; swallow the violation.
	if ent.IsConstraintError(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("insert mistake: %w", err)
	}
	return nil
}

func (r *mistakeRepo) BySession(ctx context.Context, sessionID string) ([]Mistake, error) {
	rows, err := r.client.Mistake.Query().
		Where(mistake.SessionID(sessionID)).
		Order(ent.Asc(mistake.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mistakes: %w", err)
	}
	return mistakesFromRows(rows), nil
}

func (r *mistakeRepo) All(ctx context.Context) ([]Mistake, error) {
	rows, err := r.client.Mistake.Query().
		Order(ent.Asc(mistake.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query mistakes: %w", err)
	}
	return mistakesFromRows(rows), nil
}

func (r *mistakeRepo) UpdateComment(ctx context.Context, sessionID, question, comment string) error {
	// A question can appear more than once with different wrong answers;
	// the comment lands on the most recent entry only.
	row, err := r.client.Mistake.Query().
		Where(
			mistake.SessionID(sessionID),
			mistake.QuestionEQ(question),
		).
		Order(ent.Desc(mistake.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("query mistake: %w", err)
	}
	if _, err := r.client.Mistake.UpdateOne(row).SetComment(comment).Save(ctx); err != nil {
		return fmt.Errorf("update mistake comment: %w", err)
	}
	return nil
}

func mistakesFromRows(rows []*ent.Mistake) []Mistake {
	out := make([]Mistake, len(rows))
	for i, row := range rows {
		out[i] = Mistake{
			ID:            row.ID,
			SessionID:     row.SessionID,
			Question:      row.Question,
			CorrectAnswer: row.CorrectAnswer,
			UserAnswer:    row.UserAnswer,
			Explanation:   row.Explanation,
			Level:         row.Level,
			Comment:       row.Comment,
			CreatedAt:     row.CreatedAt,
		}
	}
	return out
}
