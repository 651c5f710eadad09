package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressRecord holds one learner session's progression state within one
// track. It is the single mutable record behind the XP ledger, the level
// state machine, and the cooldown lock.
type ProgressRecord struct {
	ent.Schema
}

// Attempt is the serialized form of one assessment outcome in the history.
type Attempt struct {
	Level     int       `json:"level"`
	Score     int       `json:"score"`
	MaxScore  int       `json:"max_score"`
	Passed    bool      `json:"passed"`
	XPGained  int       `json:"xp_gained"`
	Timestamp time.Time `json:"timestamp"`
}

// RemedialPlan is the serialized form of the session's current remedial plan.
type RemedialPlan struct {
	Category       string    `json:"category"`
	Explanation    string    `json:"explanation"`
	PracticeText   string    `json:"practice_text"`
	PracticeAnswer string    `json:"practice_answer"`
	Consumed       bool      `json:"consumed"`
	CreatedAt      time.Time `json:"created_at"`
}

func (ProgressRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("track").
			NotEmpty().
			Comment("institution or individual"),
		field.Int("xp").
			Default(0).
			NonNegative(),
		field.Int("unlocked_level").
			Default(1).
			Range(1, 3),
		field.Int("chapter_index").
			Default(0).
			NonNegative().
			Comment("Index into the session's chapters ordered by creation time"),
		field.JSON("history", []Attempt{}).
			Optional().
			Comment("Append-only audit trail of submissions"),
		field.Time("retry_available_at").
			Optional().
			Nillable().
			Comment("Cooldown deadline; nil when no lock is installed"),
		field.JSON("remedial_plan", &RemedialPlan{}).
			Optional().
			Comment("Current remedial plan; nil when none"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ProgressRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "track").Unique(),
	}
}
