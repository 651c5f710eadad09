// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/ascentlearn/ascent/ent/assessment"
	"github.com/ascentlearn/ascent/ent/predicate"
	"github.com/ascentlearn/ascent/ent/schema"
)

// AssessmentUpdate is the builder for updating Assessment entities.
type AssessmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssessmentMutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdate) Where(ps ...predicate.Assessment) *AssessmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentUpdate) SetSessionID(v string) *AssessmentUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableSessionID(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetChapterKey sets the "chapter_key" field.
func (_u *AssessmentUpdate) SetChapterKey(v string) *AssessmentUpdate {
	_u.mutation.SetChapterKey(v)
	return _u
}

// SetNillableChapterKey sets the "chapter_key" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableChapterKey(v *string) *AssessmentUpdate {
	if v != nil {
		_u.SetChapterKey(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AssessmentUpdate) SetLevel(v int) *AssessmentUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AssessmentUpdate) SetNillableLevel(v *int) *AssessmentUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *AssessmentUpdate) AddLevel(v int) *AssessmentUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *AssessmentUpdate) SetQuestions(v []schema.Question) *AssessmentUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *AssessmentUpdate) AppendQuestions(v []schema.Question) *AssessmentUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdate) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssessmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssessmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessment.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChapterKey(); ok {
		if err := assessment.ChapterKeyValidator(v); err != nil {
			return &ValidationError{Name: "chapter_key", err: fmt.Errorf(`ent: validator failed for field "Assessment.chapter_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := assessment.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Assessment.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(assessment.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterKey(); ok {
		_spec.SetField(assessment.FieldChapterKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(assessment.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(assessment.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(assessment.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldQuestions, value)
		})
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssessmentUpdateOne is the builder for updating a single Assessment entity.
type AssessmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssessmentMutation
}

// SetSessionID sets the "session_id" field.
func (_u *AssessmentUpdateOne) SetSessionID(v string) *AssessmentUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableSessionID(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetChapterKey sets the "chapter_key" field.
func (_u *AssessmentUpdateOne) SetChapterKey(v string) *AssessmentUpdateOne {
	_u.mutation.SetChapterKey(v)
	return _u
}

// SetNillableChapterKey sets the "chapter_key" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableChapterKey(v *string) *AssessmentUpdateOne {
	if v != nil {
		_u.SetChapterKey(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *AssessmentUpdateOne) SetLevel(v int) *AssessmentUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *AssessmentUpdateOne) SetNillableLevel(v *int) *AssessmentUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *AssessmentUpdateOne) AddLevel(v int) *AssessmentUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *AssessmentUpdateOne) SetQuestions(v []schema.Question) *AssessmentUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *AssessmentUpdateOne) AppendQuestions(v []schema.Question) *AssessmentUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// Mutation returns the AssessmentMutation object of the builder.
func (_u *AssessmentUpdateOne) Mutation() *AssessmentMutation {
	return _u.mutation
}

// Where appends a list predicates to the AssessmentUpdate builder.
func (_u *AssessmentUpdateOne) Where(ps ...predicate.Assessment) *AssessmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssessmentUpdateOne) Select(field string, fields ...string) *AssessmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assessment entity.
func (_u *AssessmentUpdateOne) Save(ctx context.Context) (*Assessment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssessmentUpdateOne) SaveX(ctx context.Context) *Assessment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssessmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssessmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssessmentUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := assessment.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChapterKey(); ok {
		if err := assessment.ChapterKeyValidator(v); err != nil {
			return &ValidationError{Name: "chapter_key", err: fmt.Errorf(`ent: validator failed for field "Assessment.chapter_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := assessment.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Assessment.level": %w`, err)}
		}
	}
	return nil
}

func (_u *AssessmentUpdateOne) sqlSave(ctx context.Context) (_node *Assessment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assessment.Table, assessment.Columns, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assessment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assessment.FieldID)
		for _, f := range fields {
			if !assessment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assessment.FieldID {
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
		_spec.SetField(assessment.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChapterKey(); ok {
		_spec.SetField(assessment.FieldChapterKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(assessment.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(assessment.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(assessment.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assessment.FieldQuestions, value)
		})
	}
	_node = &Assessment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assessment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
