// Code generated by ent, DO NOT EDIT.

package assessment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ascentlearn/ascent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldSessionID, v))
}

// ChapterKey applies equality check predicate on the "chapter_key" field. It's identical to ChapterKeyEQ.
func ChapterKey(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldChapterKey, v))
}

// Level applies equality check predicate on the "level" field. It's identical to LevelEQ.
func Level(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldLevel, v))
}

// GeneratedAt applies equality check predicate on the "generated_at" field. It's identical to GeneratedAtEQ.
func GeneratedAt(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldGeneratedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldSessionID, v))
}

// ChapterKeyEQ applies the EQ predicate on the "chapter_key" field.
func ChapterKeyEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldChapterKey, v))
}

// ChapterKeyNEQ applies the NEQ predicate on the "chapter_key" field.
func ChapterKeyNEQ(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldChapterKey, v))
}

// ChapterKeyIn applies the In predicate on the "chapter_key" field.
func ChapterKeyIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldChapterKey, vs...))
}

// ChapterKeyNotIn applies the NotIn predicate on the "chapter_key" field.
func ChapterKeyNotIn(vs ...string) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldChapterKey, vs...))
}

// ChapterKeyGT applies the GT predicate on the "chapter_key" field.
func ChapterKeyGT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldChapterKey, v))
}

// ChapterKeyGTE applies the GTE predicate on the "chapter_key" field.
func ChapterKeyGTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldChapterKey, v))
}

// ChapterKeyLT applies the LT predicate on the "chapter_key" field.
func ChapterKeyLT(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldChapterKey, v))
}

// ChapterKeyLTE applies the LTE predicate on the "chapter_key" field.
func ChapterKeyLTE(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldChapterKey, v))
}

// ChapterKeyContains applies the Contains predicate on the "chapter_key" field.
func ChapterKeyContains(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContains(FieldChapterKey, v))
}

// ChapterKeyHasPrefix applies the HasPrefix predicate on the "chapter_key" field.
func ChapterKeyHasPrefix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasPrefix(FieldChapterKey, v))
}

// ChapterKeyHasSuffix applies the HasSuffix predicate on the "chapter_key" field.
func ChapterKeyHasSuffix(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldHasSuffix(FieldChapterKey, v))
}

// ChapterKeyEqualFold applies the EqualFold predicate on the "chapter_key" field.
func ChapterKeyEqualFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldEqualFold(FieldChapterKey, v))
}

// ChapterKeyContainsFold applies the ContainsFold predicate on the "chapter_key" field.
func ChapterKeyContainsFold(v string) predicate.Assessment {
	return predicate.Assessment(sql.FieldContainsFold(FieldChapterKey, v))
}

// LevelEQ applies the EQ predicate on the "level" field.
func LevelEQ(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldLevel, v))
}

// LevelNEQ applies the NEQ predicate on the "level" field.
func LevelNEQ(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldLevel, v))
}

// LevelIn applies the In predicate on the "level" field.
func LevelIn(vs ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldLevel, vs...))
}

// LevelNotIn applies the NotIn predicate on the "level" field.
func LevelNotIn(vs ...int) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldLevel, vs...))
}

// LevelGT applies the GT predicate on the "level" field.
func LevelGT(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldLevel, v))
}

// LevelGTE applies the GTE predicate on the "level" field.
func LevelGTE(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldLevel, v))
}

// LevelLT applies the LT predicate on the "level" field.
func LevelLT(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldLevel, v))
}

// LevelLTE applies the LTE predicate on the "level" field.
func LevelLTE(v int) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldLevel, v))
}

// GeneratedAtEQ applies the EQ predicate on the "generated_at" field.
func GeneratedAtEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldEQ(FieldGeneratedAt, v))
}

// GeneratedAtNEQ applies the NEQ predicate on the "generated_at" field.
func GeneratedAtNEQ(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNEQ(FieldGeneratedAt, v))
}

// GeneratedAtIn applies the In predicate on the "generated_at" field.
func GeneratedAtIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldIn(FieldGeneratedAt, vs...))
}

// GeneratedAtNotIn applies the NotIn predicate on the "generated_at" field.
func GeneratedAtNotIn(vs ...time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldNotIn(FieldGeneratedAt, vs...))
}

// GeneratedAtGT applies the GT predicate on the "generated_at" field.
func GeneratedAtGT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGT(FieldGeneratedAt, v))
}

// GeneratedAtGTE applies the GTE predicate on the "generated_at" field.
func GeneratedAtGTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldGTE(FieldGeneratedAt, v))
}

// GeneratedAtLT applies the LT predicate on the "generated_at" field.
func GeneratedAtLT(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLT(FieldGeneratedAt, v))
}

// GeneratedAtLTE applies the LTE predicate on the "generated_at" field.
func GeneratedAtLTE(v time.Time) predicate.Assessment {
	return predicate.Assessment(sql.FieldLTE(FieldGeneratedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assessment) predicate.Assessment {
	return predicate.Assessment(sql.NotPredicates(p))
}
