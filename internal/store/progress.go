package store

import (
	"context"
	"fmt"

	"github.com/ascentlearn/ascent/ent"
	"github.com/ascentlearn/ascent/ent/progressrecord"
	"github.com/ascentlearn/ascent/ent/schema"
)

type progressRepo struct {
	client *ent.Client
}

func (r *progressRepo) Get(ctx context.Context, sessionID, track string) (*ProgressRecord, error) {
	row, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.SessionID(sessionID),
			progressrecord.Track(track),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query progress record: %w", err)
	}
	return progressFromRow(row), nil
}

func (r *progressRepo) Save(ctx context.Context, rec *ProgressRecord) error {
	row, err := r.client.ProgressRecord.Query().
		Where(
			progressrecord.SessionID(rec.SessionID),
			progressrecord.Track(rec.Track),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return r.create(ctx, rec)
	}
	if err != nil {
		return fmt.Errorf("query progress record: %w", err)
	}

	upd := r.client.ProgressRecord.UpdateOne(row).
		SetXp(rec.XP).
		SetUnlockedLevel(rec.UnlockedLevel).
		SetChapterIndex(rec.ChapterIndex).
		SetHistory(attemptsToSchema(rec.History))
	if rec.RetryAvailableAt != nil {
		upd.SetRetryAvailableAt(*rec.RetryAvailableAt)
	} else {
		upd.ClearRetryAvailableAt()
	}
	if rec.RemedialPlan != nil {
		upd.SetRemedialPlan(planToSchema(rec.RemedialPlan))
	} else {
		upd.ClearRemedialPlan()
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("update progress record: %w", err)
	}
	return nil
}

func (r *progressRepo) create(ctx context.Context, rec *ProgressRecord) error {
	create := r.client.ProgressRecord.Create().
		SetSessionID(rec.SessionID).
		SetTrack(rec.Track).
		SetXp(rec.XP).
		SetUnlockedLevel(rec.UnlockedLevel).
		SetChapterIndex(rec.ChapterIndex).
		SetHistory(attemptsToSchema(rec.History))
	if rec.RetryAvailableAt != nil {
		create.SetRetryAvailableAt(*rec.RetryAvailableAt)
	}
	if rec.RemedialPlan != nil {
		create.SetRemedialPlan(planToSchema(rec.RemedialPlan))
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("create progress record: %w", err)
	}
	return nil
}

func (r *progressRepo) Delete(ctx context.Context, sessionID, track string) error {
	n, err := r.client.ProgressRecord.Delete().
		Where(
			progressrecord.SessionID(sessionID),
			progressrecord.Track(track),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete progress record: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func progressFromRow(row *ent.ProgressRecord) *ProgressRecord {
	return &ProgressRecord{
		SessionID:        row.SessionID,
		Track:            row.Track,
		XP:               row.Xp,
		UnlockedLevel:    row.UnlockedLevel,
		ChapterIndex:     row.ChapterIndex,
		History:          attemptsFromSchema(row.History),
		RetryAvailableAt: row.RetryAvailableAt,
		RemedialPlan:     planFromSchema(row.RemedialPlan),
		UpdatedAt:        row.UpdatedAt,
	}
}

func attemptsToSchema(in []Attempt) []schema.Attempt {
	out := make([]schema.Attempt, len(in))
	for i, a := range in {
		out[i] = schema.Attempt{
			Level:     a.Level,
			Score:     a.Score,
			MaxScore:  a.MaxScore,
			Passed:    a.Passed,
			XPGained:  a.XPGained,
			Timestamp: a.Timestamp,
		}
	}
	return out
}

func attemptsFromSchema(in []schema.Attempt) []Attempt {
	out := make([]Attempt, len(in))
	for i, a := range in {
		out[i] = Attempt{
			Level:     a.Level,
			Score:     a.Score,
			MaxScore:  a.MaxScore,
			Passed:    a.Passed,
			XPGained:  a.XPGained,
			Timestamp: a.Timestamp,
		}
	}
	return out
}

func planToSchema(p *RemedialPlan) *schema.RemedialPlan {
	if p == nil {
		return nil
	}
	return &schema.RemedialPlan{
		Category:       p.Category,
		Explanation:    p.Explanation,
		PracticeText:   p.PracticeText,
		PracticeAnswer: p.PracticeAnswer,
		Consumed:       p.Consumed,
		CreatedAt:      p.CreatedAt,
	}
}

func planFromSchema(p *schema.RemedialPlan) *RemedialPlan {
	if p == nil {
		return nil
	}
	return &RemedialPlan{
		Category:       p.Category,
		Explanation:    p.Explanation,
		PracticeText:   p.PracticeText,
		PracticeAnswer: p.PracticeAnswer,
		Consumed:       p.Consumed,
		CreatedAt:      p.CreatedAt,
	}
}
