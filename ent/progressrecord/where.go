// Code generated by ent, DO NOT EDIT.

package progressrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ascentlearn/ascent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldSessionID, v))
}

// Track applies equality check predicate on the "track" field. It's identical to TrackEQ.
func Track(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldTrack, v))
}

// Xp applies equality check predicate on the "xp" field. It's identical to XpEQ.
func Xp(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldXp, v))
}

// UnlockedLevel applies equality check predicate on the "unlocked_level" field. It's identical to UnlockedLevelEQ.
func UnlockedLevel(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldUnlockedLevel, v))
}

// ChapterIndex applies equality check predicate on the "chapter_index" field. It's identical to ChapterIndexEQ.
func ChapterIndex(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldChapterIndex, v))
}

// RetryAvailableAt applies equality check predicate on the "retry_available_at" field. It's identical to RetryAvailableAtEQ.
func RetryAvailableAt(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldRetryAvailableAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContainsFold(FieldSessionID, v))
}

// TrackEQ applies the EQ predicate on the "track" field.
func TrackEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldTrack, v))
}

// TrackNEQ applies the NEQ predicate on the "track" field.
func TrackNEQ(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldTrack, v))
}

// TrackIn applies the In predicate on the "track" field.
func TrackIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldTrack, vs...))
}

// TrackNotIn applies the NotIn predicate on the "track" field.
func TrackNotIn(vs ...string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldTrack, vs...))
}

// TrackGT applies the GT predicate on the "track" field.
func TrackGT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldTrack, v))
}

// TrackGTE applies the GTE predicate on the "track" field.
func TrackGTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldTrack, v))
}

// TrackLT applies the LT predicate on the "track" field.
func TrackLT(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldTrack, v))
}

// TrackLTE applies the LTE predicate on the "track" field.
func TrackLTE(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldTrack, v))
}

// TrackContains applies the Contains predicate on the "track" field.
func TrackContains(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContains(FieldTrack, v))
}

// TrackHasPrefix applies the HasPrefix predicate on the "track" field.
func TrackHasPrefix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasPrefix(FieldTrack, v))
}

// TrackHasSuffix applies the HasSuffix predicate on the "track" field.
func TrackHasSuffix(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldHasSuffix(FieldTrack, v))
}

// TrackEqualFold applies the EqualFold predicate on the "track" field.
func TrackEqualFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEqualFold(FieldTrack, v))
}

// TrackContainsFold applies the ContainsFold predicate on the "track" field.
func TrackContainsFold(v string) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldContainsFold(FieldTrack, v))
}

// XpEQ applies the EQ predicate on the "xp" field.
func XpEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldXp, v))
}

// XpNEQ applies the NEQ predicate on the "xp" field.
func XpNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldXp, v))
}

// XpIn applies the In predicate on the "xp" field.
func XpIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldXp, vs...))
}

// XpNotIn applies the NotIn predicate on the "xp" field.
func XpNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldXp, vs...))
}

// XpGT applies the GT predicate on the "xp" field.
func XpGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldXp, v))
}

// XpGTE applies the GTE predicate on the "xp" field.
func XpGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldXp, v))
}

// XpLT applies the LT predicate on the "xp" field.
func XpLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldXp, v))
}

// XpLTE applies the LTE predicate on the "xp" field.
func XpLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldXp, v))
}

// UnlockedLevelEQ applies the EQ predicate on the "unlocked_level" field.
func UnlockedLevelEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldUnlockedLevel, v))
}

// UnlockedLevelNEQ applies the NEQ predicate on the "unlocked_level" field.
func UnlockedLevelNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldUnlockedLevel, v))
}

// UnlockedLevelIn applies the In predicate on the "unlocked_level" field.
func UnlockedLevelIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldUnlockedLevel, vs...))
}

// UnlockedLevelNotIn applies the NotIn predicate on the "unlocked_level" field.
func UnlockedLevelNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldUnlockedLevel, vs...))
}

// UnlockedLevelGT applies the GT predicate on the "unlocked_level" field.
func UnlockedLevelGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldUnlockedLevel, v))
}

// UnlockedLevelGTE applies the GTE predicate on the "unlocked_level" field.
func UnlockedLevelGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldUnlockedLevel, v))
}

// UnlockedLevelLT applies the LT predicate on the "unlocked_level" field.
func UnlockedLevelLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldUnlockedLevel, v))
}

// UnlockedLevelLTE applies the LTE predicate on the "unlocked_level" field.
func UnlockedLevelLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldUnlockedLevel, v))
}

// ChapterIndexEQ applies the EQ predicate on the "chapter_index" field.
func ChapterIndexEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldChapterIndex, v))
}

// ChapterIndexNEQ applies the NEQ predicate on the "chapter_index" field.
func ChapterIndexNEQ(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldChapterIndex, v))
}

// ChapterIndexIn applies the In predicate on the "chapter_index" field.
func ChapterIndexIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldChapterIndex, vs...))
}

// ChapterIndexNotIn applies the NotIn predicate on the "chapter_index" field.
func ChapterIndexNotIn(vs ...int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldChapterIndex, vs...))
}

// ChapterIndexGT applies the GT predicate on the "chapter_index" field.
func ChapterIndexGT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldChapterIndex, v))
}

// ChapterIndexGTE applies the GTE predicate on the "chapter_index" field.
func ChapterIndexGTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldChapterIndex, v))
}

// ChapterIndexLT applies the LT predicate on the "chapter_index" field.
func ChapterIndexLT(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldChapterIndex, v))
}

// ChapterIndexLTE applies the LTE predicate on the "chapter_index" field.
func ChapterIndexLTE(v int) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldChapterIndex, v))
}

// HistoryIsNil applies the IsNil predicate on the "history" field.
func HistoryIsNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIsNull(FieldHistory))
}

// HistoryNotNil applies the NotNil predicate on the "history" field.
func HistoryNotNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotNull(FieldHistory))
}

// RetryAvailableAtEQ applies the EQ predicate on the "retry_available_at" field.
func RetryAvailableAtEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldRetryAvailableAt, v))
}

// RetryAvailableAtNEQ applies the NEQ predicate on the "retry_available_at" field.
func RetryAvailableAtNEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldRetryAvailableAt, v))
}

// RetryAvailableAtIn applies the In predicate on the "retry_available_at" field.
func RetryAvailableAtIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldRetryAvailableAt, vs...))
}

// RetryAvailableAtNotIn applies the NotIn predicate on the "retry_available_at" field.
func RetryAvailableAtNotIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldRetryAvailableAt, vs...))
}

// RetryAvailableAtGT applies the GT predicate on the "retry_available_at" field.
func RetryAvailableAtGT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldRetryAvailableAt, v))
}

// RetryAvailableAtGTE applies the GTE predicate on the "retry_available_at" field.
func RetryAvailableAtGTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldRetryAvailableAt, v))
}

// RetryAvailableAtLT applies the LT predicate on the "retry_available_at" field.
func RetryAvailableAtLT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldRetryAvailableAt, v))
}

// RetryAvailableAtLTE applies the LTE predicate on the "retry_available_at" field.
func RetryAvailableAtLTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldRetryAvailableAt, v))
}

// RetryAvailableAtIsNil applies the IsNil predicate on the "retry_available_at" field.
func RetryAvailableAtIsNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIsNull(FieldRetryAvailableAt))
}

// RetryAvailableAtNotNil applies the NotNil predicate on the "retry_available_at" field.
func RetryAvailableAtNotNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotNull(FieldRetryAvailableAt))
}

// RemedialPlanIsNil applies the IsNil predicate on the "remedial_plan" field.
func RemedialPlanIsNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIsNull(FieldRemedialPlan))
}

// RemedialPlanNotNil applies the NotNil predicate on the "remedial_plan" field.
func RemedialPlanNotNil() predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotNull(FieldRemedialPlan))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ProgressRecord) predicate.ProgressRecord {
	return predicate.ProgressRecord(sql.NotPredicates(p))
}
