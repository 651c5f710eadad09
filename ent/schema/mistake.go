package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Mistake is one incorrect answer recorded for a session. Everything except
// the learner's comment is write-once. The (session, question, user answer)
// unique index enforces dedup at the database level.
type Mistake struct {
	ent.Schema
}

func (Mistake) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.Text("question").
			NotEmpty(),
		field.Text("correct_answer").
			Optional(),
		field.Text("user_answer").
			Optional(),
		field.Text("explanation").
			Optional(),
		field.Int("level").
			Range(1, 3),
		field.Text("comment").
			Default("").
			Comment("Learner-owned annotation, mutable in place"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Mistake) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "question", "user_answer").Unique(),
		index.Fields("created_at"),
	}
}
