// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ascentlearn/ascent/ent/mistake"
	"github.com/ascentlearn/ascent/ent/predicate"
)

// MistakeUpdate is the builder for updating Mistake entities.
type MistakeUpdate struct {
	config
	hooks    []Hook
	mutation *MistakeMutation
}

// Where appends a list predicates to the MistakeUpdate builder.
func (_u *MistakeUpdate) Where(ps ...predicate.Mistake) *MistakeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *MistakeUpdate) SetSessionID(v string) *MistakeUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableSessionID(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *MistakeUpdate) SetQuestion(v string) *MistakeUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableQuestion(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *MistakeUpdate) SetCorrectAnswer(v string) *MistakeUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableCorrectAnswer(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *MistakeUpdate) ClearCorrectAnswer() *MistakeUpdate {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *MistakeUpdate) SetUserAnswer(v string) *MistakeUpdate {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableUserAnswer(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// ClearUserAnswer clears the value of the "user_answer" field.
func (_u *MistakeUpdate) ClearUserAnswer() *MistakeUpdate {
	_u.mutation.ClearUserAnswer()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *MistakeUpdate) SetExplanation(v string) *MistakeUpdate {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableExplanation(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *MistakeUpdate) ClearExplanation() *MistakeUpdate {
	_u.mutation.ClearExplanation()
	return _u
}

// SetLevel sets the "level" field.
func (_u *MistakeUpdate) SetLevel(v int) *MistakeUpdate {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableLevel(v *int) *MistakeUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *MistakeUpdate) AddLevel(v int) *MistakeUpdate {
	_u.mutation.AddLevel(v)
	return _u
}

// SetComment sets the "comment" field.
func (_u *MistakeUpdate) SetComment(v string) *MistakeUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *MistakeUpdate) SetNillableComment(v *string) *MistakeUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// Mutation returns the MistakeMutation object of the builder.
func (_u *MistakeUpdate) Mutation() *MistakeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MistakeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MistakeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MistakeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MistakeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MistakeUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := mistake.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Mistake.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := mistake.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Mistake.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := mistake.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Mistake.level": %w`, err)}
		}
	}
	return nil
}

func (_u *MistakeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mistake.Table, mistake.Columns, sqlgraph.NewFieldSpec(mistake.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(mistake.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(mistake.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(mistake.FieldCorrectAnswer, field.TypeString, value)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(mistake.FieldCorrectAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(mistake.FieldUserAnswer, field.TypeString, value)
	}
	if _u.mutation.UserAnswerCleared() {
		_spec.ClearField(mistake.FieldUserAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(mistake.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(mistake.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(mistake.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(mistake.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(mistake.FieldComment, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mistake.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MistakeUpdateOne is the builder for updating a single Mistake entity.
type MistakeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MistakeMutation
}

// SetSessionID sets the "session_id" field.
func (_u *MistakeUpdateOne) SetSessionID(v string) *MistakeUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableSessionID(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *MistakeUpdateOne) SetQuestion(v string) *MistakeUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableQuestion(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *MistakeUpdateOne) SetCorrectAnswer(v string) *MistakeUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableCorrectAnswer(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// ClearCorrectAnswer clears the value of the "correct_answer" field.
func (_u *MistakeUpdateOne) ClearCorrectAnswer() *MistakeUpdateOne {
	_u.mutation.ClearCorrectAnswer()
	return _u
}

// SetUserAnswer sets the "user_answer" field.
func (_u *MistakeUpdateOne) SetUserAnswer(v string) *MistakeUpdateOne {
	_u.mutation.SetUserAnswer(v)
	return _u
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableUserAnswer(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetUserAnswer(*v)
	}
	return _u
}

// ClearUserAnswer clears the value of the "user_answer" field.
func (_u *MistakeUpdateOne) ClearUserAnswer() *MistakeUpdateOne {
	_u.mutation.ClearUserAnswer()
	return _u
}

// SetExplanation sets the "explanation" field.
func (_u *MistakeUpdateOne) SetExplanation(v string) *MistakeUpdateOne {
	_u.mutation.SetExplanation(v)
	return _u
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableExplanation(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetExplanation(*v)
	}
	return _u
}

// ClearExplanation clears the value of the "explanation" field.
func (_u *MistakeUpdateOne) ClearExplanation() *MistakeUpdateOne {
	_u.mutation.ClearExplanation()
	return _u
}

// SetLevel sets the "level" field.
func (_u *MistakeUpdateOne) SetLevel(v int) *MistakeUpdateOne {
	_u.mutation.ResetLevel()
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableLevel(v *int) *MistakeUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// AddLevel adds value to the "level" field.
func (_u *MistakeUpdateOne) AddLevel(v int) *MistakeUpdateOne {
	_u.mutation.AddLevel(v)
	return _u
}

// SetComment sets the "comment" field.
func (_u *MistakeUpdateOne) SetComment(v string) *MistakeUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *MistakeUpdateOne) SetNillableComment(v *string) *MistakeUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// Mutation returns the MistakeMutation object of the builder.
func (_u *MistakeUpdateOne) Mutation() *MistakeMutation {
	return _u.mutation
}

// Where appends a list predicates to the MistakeUpdate builder.
func (_u *MistakeUpdateOne) Where(ps ...predicate.Mistake) *MistakeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MistakeUpdateOne) Select(field string, fields ...string) *MistakeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Mistake entity.
func (_u *MistakeUpdateOne) Save(ctx context.Context) (*Mistake, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MistakeUpdateOne) SaveX(ctx context.Context) *Mistake {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MistakeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MistakeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MistakeUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := mistake.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Mistake.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Question(); ok {
		if err := mistake.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Mistake.question": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Level(); ok {
		if err := mistake.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Mistake.level": %w`, err)}
		}
	}
	return nil
}

func (_u *MistakeUpdateOne) sqlSave(ctx context.Context) (_node *Mistake, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(mistake.Table, mistake.Columns, sqlgraph.NewFieldSpec(mistake.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Mistake.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mistake.FieldID)
		for _, f := range fields {
			if !mistake.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != mistake.FieldID {
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
		_spec.SetField(mistake.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(mistake.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(mistake.FieldCorrectAnswer, field.TypeString, value)
	}
	if _u.mutation.CorrectAnswerCleared() {
		_spec.ClearField(mistake.FieldCorrectAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.UserAnswer(); ok {
		_spec.SetField(mistake.FieldUserAnswer, field.TypeString, value)
	}
	if _u.mutation.UserAnswerCleared() {
		_spec.ClearField(mistake.FieldUserAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.Explanation(); ok {
		_spec.SetField(mistake.FieldExplanation, field.TypeString, value)
	}
	if _u.mutation.ExplanationCleared() {
		_spec.ClearField(mistake.FieldExplanation, field.TypeString)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(mistake.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLevel(); ok {
		_spec.AddField(mistake.FieldLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(mistake.FieldComment, field.TypeString, value)
	}
	_node = &Mistake{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{mistake.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
