// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ascentlearn/ascent/ent/progressrecord"
	"github.com/ascentlearn/ascent/ent/schema"
)

// ProgressRecordCreate is the builder for creating a ProgressRecord entity.
type ProgressRecordCreate struct {
	config
	mutation *ProgressRecordMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ProgressRecordCreate) SetSessionID(v string) *ProgressRecordCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTrack sets the "track" field.
func (_c *ProgressRecordCreate) SetTrack(v string) *ProgressRecordCreate {
	_c.mutation.SetTrack(v)
	return _c
}

// SetXp sets the "xp" field.
func (_c *ProgressRecordCreate) SetXp(v int) *ProgressRecordCreate {
	_c.mutation.SetXp(v)
	return _c
}

// SetNillableXp sets the "xp" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableXp(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetXp(*v)
	}
	return _c
}

// SetUnlockedLevel sets the "unlocked_level" field.
func (_c *ProgressRecordCreate) SetUnlockedLevel(v int) *ProgressRecordCreate {
	_c.mutation.SetUnlockedLevel(v)
	return _c
}

// SetNillableUnlockedLevel sets the "unlocked_level" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableUnlockedLevel(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetUnlockedLevel(*v)
	}
	return _c
}

// SetChapterIndex sets the "chapter_index" field.
func (_c *ProgressRecordCreate) SetChapterIndex(v int) *ProgressRecordCreate {
	_c.mutation.SetChapterIndex(v)
	return _c
}

// SetNillableChapterIndex sets the "chapter_index" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableChapterIndex(v *int) *ProgressRecordCreate {
	if v != nil {
		_c.SetChapterIndex(*v)
	}
	return _c
}

// SetHistory sets the "history" field.
func (_c *ProgressRecordCreate) SetHistory(v []schema.Attempt) *ProgressRecordCreate {
	_c.mutation.SetHistory(v)
	return _c
}

// SetRetryAvailableAt sets the "retry_available_at" field.
func (_c *ProgressRecordCreate) SetRetryAvailableAt(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetRetryAvailableAt(v)
	return _c
}

// SetNillableRetryAvailableAt sets the "retry_available_at" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableRetryAvailableAt(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetRetryAvailableAt(*v)
	}
	return _c
}

// SetRemedialPlan sets the "remedial_plan" field.
func (_c *ProgressRecordCreate) SetRemedialPlan(v *schema.RemedialPlan) *ProgressRecordCreate {
	_c.mutation.SetRemedialPlan(v)
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProgressRecordCreate) SetUpdatedAt(v time.Time) *ProgressRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProgressRecordCreate) SetNillableUpdatedAt(v *time.Time) *ProgressRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressRecordMutation object of the builder.
func (_c *ProgressRecordCreate) Mutation() *ProgressRecordMutation {
	return _c.mutation
}

// Save creates the ProgressRecord in the database.
func (_c *ProgressRecordCreate) Save(ctx context.Context) (*ProgressRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressRecordCreate) SaveX(ctx context.Context) *ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressRecordCreate) defaults() {
	if _, ok := _c.mutation.Xp(); !ok {
		v := progressrecord.DefaultXp
		_c.mutation.SetXp(v)
	}
	if _, ok := _c.mutation.UnlockedLevel(); !ok {
		v := progressrecord.DefaultUnlockedLevel
		_c.mutation.SetUnlockedLevel(v)
	}
	if _, ok := _c.mutation.ChapterIndex(); !ok {
		v := progressrecord.DefaultChapterIndex
		_c.mutation.SetChapterIndex(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := progressrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressRecordCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ProgressRecord.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := progressrecord.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Track(); !ok {
		return &ValidationError{Name: "track", err: errors.New(`ent: missing required field "ProgressRecord.track"`)}
	}
	if v, ok := _c.mutation.Track(); ok {
		if err := progressrecord.TrackValidator(v); err != nil {
			return &ValidationError{Name: "track", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.track": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Xp(); !ok {
		return &ValidationError{Name: "xp", err: errors.New(`ent: missing required field "ProgressRecord.xp"`)}
	}
	if v, ok := _c.mutation.Xp(); ok {
		if err := progressrecord.XpValidator(v); err != nil {
			return &ValidationError{Name: "xp", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.xp": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnlockedLevel(); !ok {
		return &ValidationError{Name: "unlocked_level", err: errors.New(`ent: missing required field "ProgressRecord.unlocked_level"`)}
	}
	if v, ok := _c.mutation.UnlockedLevel(); ok {
		if err := progressrecord.UnlockedLevelValidator(v); err != nil {
			return &ValidationError{Name: "unlocked_level", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.unlocked_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChapterIndex(); !ok {
		return &ValidationError{Name: "chapter_index", err: errors.New(`ent: missing required field "ProgressRecord.chapter_index"`)}
	}
	if v, ok := _c.mutation.ChapterIndex(); ok {
		if err := progressrecord.ChapterIndexValidator(v); err != nil {
			return &ValidationError{Name: "chapter_index", err: fmt.Errorf(`ent: validator failed for field "ProgressRecord.chapter_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ProgressRecord.updated_at"`)}
	}
	return nil
}

func (_c *ProgressRecordCreate) sqlSave(ctx context.Context) (*ProgressRecord, error) {
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

func (_c *ProgressRecordCreate) createSpec() (*ProgressRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progressrecord.Table, sqlgraph.NewFieldSpec(progressrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(progressrecord.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Track(); ok {
		_spec.SetField(progressrecord.FieldTrack, field.TypeString, value)
		_node.Track = value
	}
	if value, ok := _c.mutation.Xp(); ok {
		_spec.SetField(progressrecord.FieldXp, field.TypeInt, value)
		_node.Xp = value
	}
	if value, ok := _c.mutation.UnlockedLevel(); ok {
		_spec.SetField(progressrecord.FieldUnlockedLevel, field.TypeInt, value)
		_node.UnlockedLevel = value
	}
	if value, ok := _c.mutation.ChapterIndex(); ok {
		_spec.SetField(progressrecord.FieldChapterIndex, field.TypeInt, value)
		_node.ChapterIndex = value
	}
	if value, ok := _c.mutation.History(); ok {
		_spec.SetField(progressrecord.FieldHistory, field.TypeJSON, value)
		_node.History = value
	}
	if value, ok := _c.mutation.RetryAvailableAt(); ok {
		_spec.SetField(progressrecord.FieldRetryAvailableAt, field.TypeTime, value)
		_node.RetryAvailableAt = &value
	}
	if value, ok := _c.mutation.RemedialPlan(); ok {
		_spec.SetField(progressrecord.FieldRemedialPlan, field.TypeJSON, value)
		_node.RemedialPlan = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(progressrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProgressRecordCreateBulk is the builder for creating many ProgressRecord entities in bulk.
type ProgressRecordCreateBulk struct {
	config
	err      error
	builders []*ProgressRecordCreate
}

// Save creates the ProgressRecord entities in the database.
func (_c *ProgressRecordCreateBulk) Save(ctx context.Context) ([]*ProgressRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressRecordMutation)
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
func (_c *ProgressRecordCreateBulk) SaveX(ctx context.Context) []*ProgressRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
