package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Roadmap is a generated day-by-day study plan for an individual-track
// session. Day outlines, resource flags, and results are stored inline as
// JSON; the whole row is read-modify-written under the session lock.
type Roadmap struct {
	ent.Schema
}

// RoadmapDay is the serialized form of one day in the plan.
type RoadmapDay struct {
	DayNumber  int           `json:"day_number"`
	Topic      string        `json:"topic"`
	Objectives []string      `json:"learning_objectives,omitempty"`
	VideoTitle string        `json:"video_title,omitempty"`
	VideoURL   string        `json:"video_url,omitempty"`
	Content    string        `json:"content"`
	Questions  []DayQuestion `json:"questions,omitempty"`
	Resources  []DayResource `json:"resources,omitempty"`
	Result     *DayResult    `json:"result,omitempty"`
}

// DayQuestion is a concept-check question attached to a day.
type DayQuestion struct {
	Question string `json:"question"`
	Type     string `json:"type"`
	Hint     string `json:"hint"`
}

// DayResource is one completable learning resource within a day.
type DayResource struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// DayResult is the outcome of a day's assessment, nil until submitted.
type DayResult struct {
	Score     int       `json:"score"`
	MaxScore  int       `json:"max_score"`
	Passed    bool      `json:"passed"`
	Timestamp time.Time `json:"timestamp"`
}

func (Roadmap) Fields() []ent.Field {
	return []ent.Field{
		field.String("roadmap_id").
			NotEmpty().
			Unique().
			Comment("UUID assigned at creation"),
		field.String("session_id").
			NotEmpty(),
		field.String("title").
			NotEmpty(),
		field.Text("description").
			Optional(),
		field.Int("total_days").
			Positive(),
		field.JSON("days", []RoadmapDay{}),
		field.JSON("completed_days", []int{}).
			Optional().
			Comment("Monotonically growing set of completed day numbers"),
		field.String("status").
			Default("active"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Roadmap) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
