// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ascentlearn/ascent/ent/predicate"
	"github.com/ascentlearn/ascent/ent/progressrecord"
	"github.com/ascentlearn/ascent/ent/schema"
)

// ProgressRecordUpdate is the builder for updating ProgressRecord entities.
type ProgressRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdate) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ProgressRecordUpdate) SetSessionID(v string) *ProgressRecordUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableSessionID(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *ProgressRecordUpdate) SetTrack(v string) *ProgressRecordUpdate {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableTrack(v *string) *ProgressRecordUpdate {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *ProgressRecordUpdate) SetXp(v int) *ProgressRecordUpdate {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableXp(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *ProgressRecordUpdate) AddXp(v int) *ProgressRecordUpdate {
	_u.mutation.AddXp(v)
	return _u
}

// SetUnlockedLevel sets the "unlocked_level" field.
func (_u *ProgressRecordUpdate) SetUnlockedLevel(v int) *ProgressRecordUpdate {
	_u.mutation.ResetUnlockedLevel()
	_u.mutation.SetUnlockedLevel(v)
	return _u
}

// SetNillableUnlockedLevel sets the "unlocked_level" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableUnlockedLevel(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetUnlockedLevel(*v)
	}
	return _u
}

// AddUnlockedLevel adds value to the "unlocked_level" field.
func (_u *ProgressRecordUpdate) AddUnlockedLevel(v int) *ProgressRecordUpdate {
	_u.mutation.AddUnlockedLevel(v)
	return _u
}

// SetChapterIndex sets the "chapter_index" field.
func (_u *ProgressRecordUpdate) SetChapterIndex(v int) *ProgressRecordUpdate {
	_u.mutation.ResetChapterIndex()
	_u.mutation.SetChapterIndex(v)
	return _u
}

// SetNillableChapterIndex sets the "chapter_index" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableChapterIndex(v *int) *ProgressRecordUpdate {
	if v != nil {
		_u.SetChapterIndex(*v)
	}
	return _u
}

// AddChapterIndex adds value to the "chapter_index" field.
func (_u *ProgressRecordUpdate) AddChapterIndex(v int) *ProgressRecordUpdate {
	_u.mutation.AddChapterIndex(v)
	return _u
}

// SetHistory sets the "history" field.
func (_u *ProgressRecordUpdate) SetHistory(v []schema.Attempt) *ProgressRecordUpdate {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *ProgressRecordUpdate) AppendHistory(v []schema.Attempt) *ProgressRecordUpdate {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *ProgressRecordUpdate) ClearHistory() *ProgressRecordUpdate {
	_u.mutation.ClearHistory()
	return _u
}

// SetRetryAvailableAt sets the "retry_available_at" field.
func (_u *ProgressRecordUpdate) SetRetryAvailableAt(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetRetryAvailableAt(v)
	return _u
}

// SetNillableRetryAvailableAt sets the "retry_available_at" field if the given value is not nil.
func (_u *ProgressRecordUpdate) SetNillableRetryAvailableAt(v *time.Time) *ProgressRecordUpdate {
	if v != nil {
		_u.SetRetryAvailableAt(*v)
	}
	return _u
}

// ClearRetryAvailableAt clears the value of the "retry_available_at" field.
func (_u *ProgressRecordUpdate) ClearRetryAvailableAt() *ProgressRecordUpdate {
	_u.mutation.ClearRetryAvailableAt()
	return _u
}

// SetRemedialPlan sets the "remedial_plan" field.
func (_u *ProgressRecordUpdate) SetRemedialPlan(v *schema.RemedialPlan) *ProgressRecordUpdate {
	_u.mutation.SetRemedialPlan(v)
	return _u
}

// ClearRemedialPlan clears the value of the "remedial_plan" field.
func (_u *ProgressRecordUpdate) ClearRemedialPlan() *ProgressRecordUpdate {
	_u.mutation.ClearRemedialPlan()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressRecordUpdate) SetUpdatedAt(v time.Time) *ProgressRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdate) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProgressRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProgressRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progressrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := progressrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Track(); ok {
		if err := progressrecord.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.track": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := progressrecord.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnlockedLevel(); ok {
		if err := progressrecord.UnlockedLevelValidator(v); err != nil {
			return &ValidationError{Name: "unlocked_level", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.unlocked_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChapterIndex(); ok {
		if err := progressrecord.ChapterIndexValidator(v); err != nil {
			return &ValidationError{Name: "chapter_index", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.chapter_index": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(progressrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(progressrecord.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(progressrecord.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(progressrecord.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnlockedLevel(); ok {
		_spec.SetField(progressrecord.FieldUnlockedLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnlockedLevel(); ok {
		_spec.AddField(progressrecord.FieldUnlockedLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChapterIndex(); ok {
		_spec.SetField(progressrecord.FieldChapterIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChapterIndex(); ok {
		_spec.AddField(progressrecord.FieldChapterIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(progressrecord.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progressrecord.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(progressrecord.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryAvailableAt(); ok {
		_spec.SetField(progressrecord.FieldRetryAvailableAt, field.TypeTime, value)
	}
	if _u.mutation.RetryAvailableAtCleared() {
		_spec.ClearField(progressrecord.FieldRetryAvailableAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RemedialPlan(); ok {
		_spec.SetField(progressrecord.FieldRemedialPlan, field.TypeJSON, value)
	}
	if _u.mutation.RemedialPlanCleared() {
		_spec.ClearField(progressrecord.FieldRemedialPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProgressRecordUpdateOne is the builder for updating a single ProgressRecord entity.
type ProgressRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProgressRecordMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ProgressRecordUpdateOne) SetSessionID(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableSessionID(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTrack sets the "track" field.
func (_u *ProgressRecordUpdateOne) SetTrack(v string) *ProgressRecordUpdateOne {
	_u.mutation.SetTrack(v)
	return _u
}

// SetNillableTrack sets the "track" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableTrack(v *string) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetTrack(*v)
	}
	return _u
}

// SetXp sets the "xp" field.
func (_u *ProgressRecordUpdateOne) SetXp(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetXp()
	_u.mutation.SetXp(v)
	return _u
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableXp(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetXp(*v)
	}
	return _u
}

// AddXp adds value to the "xp" field.
func (_u *ProgressRecordUpdateOne) AddXp(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddXp(v)
	return _u
}

// SetUnlockedLevel sets the "unlocked_level" field.
func (_u *ProgressRecordUpdateOne) SetUnlockedLevel(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetUnlockedLevel()
	_u.mutation.SetUnlockedLevel(v)
	return _u
}

// SetNillableUnlockedLevel sets the "unlocked_level" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableUnlockedLevel(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetUnlockedLevel(*v)
	}
	return _u
}

// AddUnlockedLevel adds value to the "unlocked_level" field.
func (_u *ProgressRecordUpdateOne) AddUnlockedLevel(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddUnlockedLevel(v)
	return _u
}

// SetChapterIndex sets the "chapter_index" field.
func (_u *ProgressRecordUpdateOne) SetChapterIndex(v int) *ProgressRecordUpdateOne {
	_u.mutation.ResetChapterIndex()
	_u.mutation.SetChapterIndex(v)
	return _u
}

// SetNillableChapterIndex sets the "chapter_index" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableChapterIndex(v *int) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetChapterIndex(*v)
	}
	return _u
}

// AddChapterIndex adds value to the "chapter_index" field.
func (_u *ProgressRecordUpdateOne) AddChapterIndex(v int) *ProgressRecordUpdateOne {
	_u.mutation.AddChapterIndex(v)
	return _u
}

// SetHistory sets the "history" field.
func (_u *ProgressRecordUpdateOne) SetHistory(v []schema.Attempt) *ProgressRecordUpdateOne {
	_u.mutation.SetHistory(v)
	return _u
}

// AppendHistory appends value to the "history" field.
func (_u *ProgressRecordUpdateOne) AppendHistory(v []schema.Attempt) *ProgressRecordUpdateOne {
	_u.mutation.AppendHistory(v)
	return _u
}

// ClearHistory clears the value of the "history" field.
func (_u *ProgressRecordUpdateOne) ClearHistory() *ProgressRecordUpdateOne {
	_u.mutation.ClearHistory()
	return _u
}

// SetRetryAvailableAt sets the "retry_available_at" field.
func (_u *ProgressRecordUpdateOne) SetRetryAvailableAt(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetRetryAvailableAt(v)
	return _u
}

// SetNillableRetryAvailableAt sets the "retry_available_at" field if the given value is not nil.
func (_u *ProgressRecordUpdateOne) SetNillableRetryAvailableAt(v *time.Time) *ProgressRecordUpdateOne {
	if v != nil {
		_u.SetRetryAvailableAt(*v)
	}
	return _u
}

// ClearRetryAvailableAt clears the value of the "retry_available_at" field.
func (_u *ProgressRecordUpdateOne) ClearRetryAvailableAt() *ProgressRecordUpdateOne {
	_u.mutation.ClearRetryAvailableAt()
	return _u
}

// SetRemedialPlan sets the "remedial_plan" field.
func (_u *ProgressRecordUpdateOne) SetRemedialPlan(v *schema.RemedialPlan) *ProgressRecordUpdateOne {
	_u.mutation.SetRemedialPlan(v)
	return _u
}

// ClearRemedialPlan clears the value of the "remedial_plan" field.
func (_u *ProgressRecordUpdateOne) ClearRemedialPlan() *ProgressRecordUpdateOne {
	_u.mutation.ClearRemedialPlan()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProgressRecordUpdateOne) SetUpdatedAt(v time.Time) *ProgressRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_u *ProgressRecordUpdateOne) Mutation() *ProgressRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProgressRecordUpdate builder.
func (_u *ProgressRecordUpdateOne) Where(ps ...predicate.ProgressRecord) *ProgressRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProgressRecordUpdateOne) Select(field string, fields ...string) *ProgressRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProgressRecord entity.
func (_u *ProgressRecordUpdateOne) Save(ctx context.Context) (*ProgressRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) SaveX(ctx context.Context) *ProgressRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProgressRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProgressRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProgressRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := progressrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProgressRecordUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := progressrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Track(); ok {
		if err := progressrecord.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.track": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Xp(); ok {
		if err := progressrecord.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.xp": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnlockedLevel(); ok {
		if err := progressrecord.UnlockedLevelValidator(v); err != nil {
			return &ValidationError{Name: "unlocked_level", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.unlocked_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChapterIndex(); ok {
		if err := progressrecord.ChapterIndexValidator(v); err != nil {
			return &ValidationError{Name: "chapter_index", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.chapter_index": %w`, err)}
		}
	}
	return nil
}

func (_u *ProgressRecordUpdateOne) sqlSave(ctx context.Context) (_node *ProgressRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(progressrecord.Table, progressrecord.Columns, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProgressRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, progressrecord.FieldID)
		for _, f := range fields {
			if !progressrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != progressrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(progressrecord.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Track(); ok {
		_spec.SetField(progressrecord.FieldTrack, field.TypeString, value)
	}
	if value, ok := _u.mutation.Xp(); ok {
		_spec.SetField(progressrecord.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXp(); ok {
		_spec.AddField(progressrecord.FieldXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnlockedLevel(); ok {
		_spec.SetField(progressrecord.FieldUnlockedLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUnlockedLevel(); ok {
		_spec.AddField(progressrecord.FieldUnlockedLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ChapterIndex(); ok {
		_spec.SetField(progressrecord.FieldChapterIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChapterIndex(); ok {
		_spec.AddField(progressrecord.FieldChapterIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.History(); ok {
		_spec.SetField(progressrecord.FieldHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, progressrecord.FieldHistory, value)
		})
	}
	if _u.mutation.HistoryCleared() {
		_spec.ClearField(progressrecord.FieldHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.RetryAvailableAt(); ok {
		_spec.SetField(progressrecord.FieldRetryAvailableAt, field.TypeTime, value)
	}
	if _u.mutation.RetryAvailableAtCleared() {
		_spec.ClearField(progressrecord.FieldRetryAvailableAt, field.TypeTime)
	}
	if value, ok := _u.mutation.RemedialPlan(); ok {
		_spec.SetField(progressrecord.FieldRemedialPlan, field.TypeJSON, value)
	}
	if _u.mutation.RemedialPlanCleared() {
		_spec.ClearField(progressrecord.FieldRemedialPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ProgressRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{progressrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
