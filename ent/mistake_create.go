// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ascentlearn/ascent/ent/mistake"
)

// MistakeCreate is the builder for creating a Mistake entity.
type MistakeCreate struct {
	config
	mutation *MistakeMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *MistakeCreate) SetSessionID(v string) *MistakeCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *MistakeCreate) SetQuestion(v string) *MistakeCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *MistakeCreate) SetCorrectAnswer(v string) *MistakeCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableCorrectAnswer(v *string) *MistakeCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetUserAnswer sets the "user_answer" field.
func (_c *MistakeCreate) SetUserAnswer(v string) *MistakeCreate {
	_c.mutation.SetUserAnswer(v)
	return _c
}

// SetNillableUserAnswer sets the "user_answer" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableUserAnswer(v *string) *MistakeCreate {
	if v != nil {
		_c.SetUserAnswer(*v)
	}
	return _c
}

// SetExplanation sets the "explanation" field.
func (_c *MistakeCreate) SetExplanation(v string) *MistakeCreate {
	_c.mutation.SetExplanation(v)
	return _c
}

// SetNillableExplanation sets the "explanation" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableExplanation(v *string) *MistakeCreate {
	if v != nil {
		_c.SetExplanation(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *MistakeCreate) SetLevel(v int) *MistakeCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetComment sets the "comment" field.
func (_c *MistakeCreate) SetComment(v string) *MistakeCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableComment(v *string) *MistakeCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MistakeCreate) SetCreatedAt(v time.Time) *MistakeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MistakeCreate) SetNillableCreatedAt(v *time.Time) *MistakeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the MistakeMutation object of the builder.
func (_c *MistakeCreate) Mutation() *MistakeMutation {
	return _c.mutation
}

// Save creates the Mistake in the database.
func (_c *MistakeCreate) Save(ctx context.Context) (*Mistake, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MistakeCreate) SaveX(ctx context.Context) *Mistake {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MistakeCreate) defaults() {
	if _, ok := _c.mutation.Comment(); !ok {
		v := mistake.DefaultComment
		_c.mutation.SetComment(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := mistake.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MistakeCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Mistake.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := mistake.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Mistake.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "Mistake.question"`)}
	}
	if v, ok := _c.mutation.Question(); ok {
		if err := mistake.QuestionValidator(v); err != nil {
			return &ValidationError{Name: "question", err: fmt.Errorf(`ent: validator failed for field "Mistake.question": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Mistake.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := mistake.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Mistake.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Comment(); !ok {
		return &ValidationError{Name: "comment", err: errors.New(`ent: missing required field "Mistake.comment"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Mistake.created_at"`)}
	}
	return nil
}

func (_c *MistakeCreate) sqlSave(ctx context.Context) (*Mistake, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *MistakeCreate) createSpec() (*Mistake, *sqlgraph.CreateSpec) {
	var (
		_node = &Mistake{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(mistake.Table, sqlgraph.NewFieldSpec(mistake.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(mistake.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(mistake.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(mistake.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.UserAnswer(); ok {
		_spec.SetField(mistake.FieldUserAnswer, field.TypeString, value)
		_node.UserAnswer = value
	}
	if value, ok := _c.mutation.Explanation(); ok {
		_spec.SetField(mistake.FieldExplanation, field.TypeString, value)
		_node.Explanation = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(mistake.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(mistake.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(mistake.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// MistakeCreateBulk is the builder for creating many Mistake entities in bulk.
type MistakeCreateBulk struct {
	config
	err      error
	builders []*MistakeCreate
}

// Save creates the Mistake entities in the database.
func (_c *MistakeCreateBulk) Save(ctx context.Context) ([]*Mistake, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Mistake, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MistakeMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *MistakeCreateBulk) SaveX(ctx context.Context) []*Mistake {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MistakeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MistakeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
