// Code generated by ent, DO NOT EDIT.

package roadmap

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/ascentlearn/ascent/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldID, id))
}

// RoadmapID applies equality check predicate on the "roadmap_id" field. It's identical to RoadmapIDEQ.
func RoadmapID(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldRoadmapID, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldSessionID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldDescription, v))
}

// TotalDays applies equality check predicate on the "total_days" field. It's identical to TotalDaysEQ.
func TotalDays(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldTotalDays, v))
}

// Status applies equality check predicate on the "status" field. It's identical to StatusEQ.
func Status(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldStatus, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldCreatedAt, v))
}

// RoadmapIDEQ applies the EQ predicate on the "roadmap_id" field.
func RoadmapIDEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldRoadmapID, v))
}

// RoadmapIDNEQ applies the NEQ predicate on the "roadmap_id" field.
func RoadmapIDNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldRoadmapID, v))
}

// RoadmapIDIn applies the In predicate on the "roadmap_id" field.
func RoadmapIDIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldRoadmapID, vs...))
}

// RoadmapIDNotIn applies the NotIn predicate on the "roadmap_id" field.
func RoadmapIDNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldRoadmapID, vs...))
}

// RoadmapIDGT applies the GT predicate on the "roadmap_id" field.
func RoadmapIDGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldRoadmapID, v))
}

// RoadmapIDGTE applies the GTE predicate on the "roadmap_id" field.
func RoadmapIDGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldRoadmapID, v))
}

// RoadmapIDLT applies the LT predicate on the "roadmap_id" field.
func RoadmapIDLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldRoadmapID, v))
}

// RoadmapIDLTE applies the LTE predicate on the "roadmap_id" field.
func RoadmapIDLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldRoadmapID, v))
}

// RoadmapIDContains applies the Contains predicate on the "roadmap_id" field.
func RoadmapIDContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldRoadmapID, v))
}

// RoadmapIDHasPrefix applies the HasPrefix predicate on the "roadmap_id" field.
func RoadmapIDHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldRoadmapID, v))
}

// RoadmapIDHasSuffix applies the HasSuffix predicate on the "roadmap_id" field.
func RoadmapIDHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldRoadmapID, v))
}

// RoadmapIDEqualFold applies the EqualFold predicate on the "roadmap_id" field.
func RoadmapIDEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldRoadmapID, v))
}

// RoadmapIDContainsFold applies the ContainsFold predicate on the "roadmap_id" field.
func RoadmapIDContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldRoadmapID, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldSessionID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldDescription, v))
}

// TotalDaysEQ applies the EQ predicate on the "total_days" field.
func TotalDaysEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldTotalDays, v))
}

// TotalDaysNEQ applies the NEQ predicate on the "total_days" field.
func TotalDaysNEQ(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldTotalDays, v))
}

// TotalDaysIn applies the In predicate on the "total_days" field.
func TotalDaysIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldTotalDays, vs...))
}

// TotalDaysNotIn applies the NotIn predicate on the "total_days" field.
func TotalDaysNotIn(vs ...int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldTotalDays, vs...))
}

// TotalDaysGT applies the GT predicate on the "total_days" field.
func TotalDaysGT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldTotalDays, v))
}

// TotalDaysGTE applies the GTE predicate on the "total_days" field.
func TotalDaysGTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldTotalDays, v))
}

// TotalDaysLT applies the LT predicate on the "total_days" field.
func TotalDaysLT(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldTotalDays, v))
}

// TotalDaysLTE applies the LTE predicate on the "total_days" field.
func TotalDaysLTE(v int) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldTotalDays, v))
}

// CompletedDaysIsNil applies the IsNil predicate on the "completed_days" field.
func CompletedDaysIsNil() predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIsNull(FieldCompletedDays))
}

// CompletedDaysNotNil applies the NotNil predicate on the "completed_days" field.
func CompletedDaysNotNil() predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotNull(FieldCompletedDays))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldStatus, vs...))
}

// StatusGT applies the GT predicate on the "status" field.
func StatusGT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldStatus, v))
}

// StatusGTE applies the GTE predicate on the "status" field.
func StatusGTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldStatus, v))
}

// StatusLT applies the LT predicate on the "status" field.
func StatusLT(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldStatus, v))
}

// StatusLTE applies the LTE predicate on the "status" field.
func StatusLTE(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldStatus, v))
}

// StatusContains applies the Contains predicate on the "status" field.
func StatusContains(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContains(FieldStatus, v))
}

// StatusHasPrefix applies the HasPrefix predicate on the "status" field.
func StatusHasPrefix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasPrefix(FieldStatus, v))
}

// StatusHasSuffix applies the HasSuffix predicate on the "status" field.
func StatusHasSuffix(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldHasSuffix(FieldStatus, v))
}

// StatusEqualFold applies the EqualFold predicate on the "status" field.
func StatusEqualFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEqualFold(FieldStatus, v))
}

// StatusContainsFold applies the ContainsFold predicate on the "status" field.
func StatusContainsFold(v string) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldContainsFold(FieldStatus, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Roadmap {
	return predicate.Roadmap(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Roadmap) predicate.Roadmap {
	return predicate.Roadmap(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Roadmap) predicate.Roadmap {
	return predicate.Roadmap(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Roadmap) predicate.Roadmap {
	return predicate.Roadmap(sql.NotPredicates(p))
}
