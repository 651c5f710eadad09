package store

import (
	"context"
	"fmt"

	"github.com/ascentlearn/ascent/ent"
	"github.com/ascentlearn/ascent/ent/roadmap"
	"github.com/ascentlearn/ascent/ent/schema"
)

type roadmapRepo struct {
	client *ent.Client
}

func (r *roadmapRepo) Save(ctx context.Context, rm *Roadmap) error {
	row, err := r.client.Roadmap.Query().
		Where(roadmap.RoadmapID(rm.ID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		_, err := r.client.Roadmap.Create().
			SetRoadmapID(rm.ID).
			SetSessionID(rm.SessionID).
			SetTitle(rm.Title).
			SetDescription(rm.Description).
			SetTotalDays(rm.TotalDays).
			SetDays(daysToSchema(rm.Days)).
			SetCompletedDays(rm.CompletedDays).
			SetStatus(rm.Status).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create roadmap: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("query roadmap: %w", err)
	}

	_, err = r.client.Roadmap.UpdateOne(row).
		SetTitle(rm.Title).
		SetDescription(rm.Description).
		SetTotalDays(rm.TotalDays).
		SetDays(daysToSchema(rm.Days)).
		SetCompletedDays(rm.CompletedDays).
		SetStatus(rm.Status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update roadmap: %w", err)
	}
	return nil
}

func (r *roadmapRepo) Get(ctx context.Context, roadmapID string) (*Roadmap, error) {
	row, err := r.client.Roadmap.Query().
		Where(roadmap.RoadmapID(roadmapID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query roadmap: %w", err)
	}
	return roadmapFromRow(row), nil
}

func (r *roadmapRepo) BySession(ctx context.Context, sessionID string) ([]Roadmap, error) {
	rows, err := r.client.Roadmap.Query().
		Where(roadmap.SessionID(sessionID)).
		Order(ent.Asc(roadmap.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query roadmaps: %w", err)
	}
	out := make([]Roadmap, len(rows))
	for i, row := range rows {
		out[i] = *roadmapFromRow(row)
	}
	return out, nil
}

func (r *roadmapRepo) Active(ctx context.Context, sessionID string) (*Roadmap, error) {
	row, err := r.client.Roadmap.Query().
		Where(
			roadmap.SessionID(sessionID),
			roadmap.Status("active"),
		).
		Order(ent.Asc(roadmap.FieldCreatedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query active roadmap: %w", err)
	}
	return roadmapFromRow(row), nil
}

func roadmapFromRow(row *ent.Roadmap) *Roadmap {
	return &Roadmap{
		ID:            row.RoadmapID,
		SessionID:     row.SessionID,
		Title:         row.Title,
		Description:   row.Description,
		TotalDays:     row.TotalDays,
		Days:          daysFromSchema(row.Days),
		CompletedDays: row.CompletedDays,
		Status:        row.Status,
		CreatedAt:     row.CreatedAt,
	}
}

func daysToSchema(in []RoadmapDay) []schema.RoadmapDay {
	out := make([]schema.RoadmapDay, len(in))
	for i, d := range in {
		out[i] = schema.RoadmapDay{
			DayNumber:  d.DayNumber,
			Topic:      d.Topic,
			Objectives: d.Objectives,
			VideoTitle: d.VideoTitle,
			VideoURL:   d.VideoURL,
			Content:    d.Content,
			Questions:  dayQuestionsToSchema(d.Questions),
			Resources:  dayResourcesToSchema(d.Resources),
			Result:     dayResultToSchema(d.Result),
		}
	}
	return out
}

func daysFromSchema(in []schema.RoadmapDay) []RoadmapDay {
	out := make([]RoadmapDay, len(in))
	for i, d := range in {
		out[i] = RoadmapDay{
			DayNumber:  d.DayNumber,
			Topic:      d.Topic,
			Objectives: d.Objectives,
			VideoTitle: d.VideoTitle,
			VideoURL:   d.VideoURL,
			Content:    d.Content,
			Questions:  dayQuestionsFromSchema(d.Questions),
			Resources:  dayResourcesFromSchema(d.Resources),
			Result:     dayResultFromSchema(d.Result),
		}
	}
	return out
}

func dayQuestionsToSchema(in []DayQuestion) []schema.DayQuestion {
	if in == nil {
		return nil
	}
	out := make([]schema.DayQuestion, len(in))
	for i, q := range in {
		out[i] = schema.DayQuestion{Question: q.Question, Type: q.Type, Hint: q.Hint}
	}
	return out
}

func dayQuestionsFromSchema(in []schema.DayQuestion) []DayQuestion {
	if in == nil {
		return nil
	}
	out := make([]DayQuestion, len(in))
	for i, q := range in {
		out[i] = DayQuestion{Question: q.Question, Type: q.Type, Hint: q.Hint}
	}
	return out
}

func dayResourcesToSchema(in []DayResource) []schema.DayResource {
	if in == nil {
		return nil
	}
	out := make([]schema.DayResource, len(in))
	for i, res := range in {
		out[i] = schema.DayResource{Name: res.Name, Completed: res.Completed}
	}
	return out
}

func dayResourcesFromSchema(in []schema.DayResource) []DayResource {
	if in == nil {
		return nil
	}
	out := make([]DayResource, len(in))
	for i, res := range in {
		out[i] = DayResource{Name: res.Name, Completed: res.Completed}
	}
	return out
}

func dayResultToSchema(in *DayResult) *schema.DayResult {
	if in == nil {
		return nil
	}
	return &schema.DayResult{Score: in.Score, MaxScore: in.MaxScore, Passed: in.Passed, Timestamp: in.Timestamp}
}

func dayResultFromSchema(in *schema.DayResult) *DayResult {
	if in == nil {
		return nil
	}
	return &DayResult{Score: in.Score, MaxScore: in.MaxScore, Passed: in.Passed, Timestamp: in.Timestamp}
}
