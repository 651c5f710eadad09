// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ascentlearn/ascent/ent/assessment"
	"github.com/ascentlearn/ascent/ent/schema"
)

// AssessmentCreate is the builder for creating a Assessment entity.
type AssessmentCreate struct {
	config
	mutation *AssessmentMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *AssessmentCreate) SetSessionID(v string) *AssessmentCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetChapterKey sets the "chapter_key" field.
func (_c *AssessmentCreate) SetChapterKey(v string) *AssessmentCreate {
	_c.mutation.SetChapterKey(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *AssessmentCreate) SetLevel(v int) *AssessmentCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *AssessmentCreate) SetQuestions(v []schema.Question) *AssessmentCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetGeneratedAt sets the "generated_at" field.
func (_c *AssessmentCreate) SetGeneratedAt(v time.Time) *AssessmentCreate {
	_c.mutation.SetGeneratedAt(v)
	return _c
}

// SetNillableGeneratedAt sets the "generated_at" field if the given value is not nil.
func (_c *AssessmentCreate) SetNillableGeneratedAt(v *time.Time) *AssessmentCreate {
	if v != nil {
		_c.SetGeneratedAt(*v)
	}
	return _c
}

// Mutation returns the AssessmentMutation object of the builder.
func (_c *AssessmentCreate) Mutation() *AssessmentMutation {
	return _c.mutation
}

// Save creates the Assessment in the database.
func (_c *AssessmentCreate) Save(ctx context.Context) (*Assessment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssessmentCreate) SaveX(ctx context.Context) *Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssessmentCreate) defaults() {
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		v := assessment.DefaultGeneratedAt()
		_c.mutation.SetGeneratedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssessmentCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Assessment.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := assessment.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Assessment.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChapterKey(); !ok {
		return &ValidationError{Name: "chapter_key", err: errors.New(`ent: missing required field "Assessment.chapter_key"`)}
	}
	if v, ok := _c.mutation.ChapterKey(); ok {
		if err := assessment.ChapterKeyValidator(v); err != nil {
			return &ValidationError{Name: "chapter_key", err: fmt.Errorf(`ent: validator failed for field "Assessment.chapter_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "Assessment.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := assessment.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "Assessment.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "Assessment.questions"`)}
	}
	if _, ok := _c.mutation.GeneratedAt(); !ok {
		return &ValidationError{Name: "generated_at", err: errors.New(`ent: missing required field "Assessment.generated_at"`)}
	}
	return nil
}

func (_c *AssessmentCreate) sqlSave(ctx context.Context) (*Assessment, error) {
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

func (_c *AssessmentCreate) createSpec() (*Assessment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assessment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assessment.Table, sqlgraph.NewFieldSpec(assessment.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(assessment.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ChapterKey(); ok {
		_spec.SetField(assessment.FieldChapterKey, field.TypeString, value)
		_node.ChapterKey = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(assessment.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(assessment.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.GeneratedAt(); ok {
		_spec.SetField(assessment.FieldGeneratedAt, field.TypeTime, value)
		_node.GeneratedAt = value
	}
	return _node, _spec
}

// AssessmentCreateBulk is the builder for creating many Assessment entities in bulk.
type AssessmentCreateBulk struct {
	config
	err      error
	builders []*AssessmentCreate
}

// Save creates the Assessment entities in the database.
func (_c *AssessmentCreateBulk) Save(ctx context.Context) ([]*Assessment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assessment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssessmentMutation)
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
func (_c *AssessmentCreateBulk) SaveX(ctx context.Context) []*Assessment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssessmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssessmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
