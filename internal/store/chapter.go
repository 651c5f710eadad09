package store

import (
	"context"
	"fmt"

	"github.com/ascentlearn/ascent/ent"
	"github.com/ascentlearn/ascent/ent/chapter"
)

type chapterRepo struct {
	client *ent.Client
}

func (r *chapterRepo) Add(ctx context.Context, c *Chapter) error {
	_, err := r.client.Chapter.Create().
		SetSessionID(c.SessionID).
		SetKey(c.Key).
		SetName(c.Name).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("add chapter: %w", err)
	}
	return nil
}

func (r *chapterRepo) BySession(ctx context.Context, sessionID string) ([]Chapter, error) {
	rows, err := r.client.Chapter.Query().
		Where(chapter.SessionID(sessionID)).
		Order(ent.Asc(chapter.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query chapters: %w", err)
	}
	out := make([]Chapter, len(rows))
	for i, row := range rows {
		out[i] = Chapter{
			SessionID: row.SessionID,
			Key:       row.Key,
			Name:      row.Name,
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}
