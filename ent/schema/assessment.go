package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assessment is a cached question set for one (session, chapter key, level)
// triple. Rows are immutable once written; a chapter advance produces a new
// chapter key and therefore new rows, old ones simply stop being looked up.
type Assessment struct {
	ent.Schema
}

// Question is the serialized form of one generated question.
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer,omitempty"`
	Explanation   string   `json:"explanation"`
	Type          string   `json:"type"`
}

func (Assessment) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("chapter_key").
			NotEmpty(),
		field.Int("level").
			Range(1, 3),
		field.JSON("questions", []Question{}),
		field.Time("generated_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Assessment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "chapter_key", "level").Unique(),
	}
}
