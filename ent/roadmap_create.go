// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/ascentlearn/ascent/ent/roadmap"
	"github.com/ascentlearn/ascent/ent/schema"
)

// RoadmapCreate is the builder for creating a Roadmap entity.
type RoadmapCreate struct {
	config
	mutation *RoadmapMutation
	hooks    []Hook
}

// SetRoadmapID sets the "roadmap_id" field.
func (_c *RoadmapCreate) SetRoadmapID(v string) *RoadmapCreate {
	_c.mutation.SetRoadmapID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RoadmapCreate) SetSessionID(v string) *RoadmapCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RoadmapCreate) SetTitle(v string) *RoadmapCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *RoadmapCreate) SetDescription(v string) *RoadmapCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableDescription(v *string) *RoadmapCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetTotalDays sets the "total_days" field.
func (_c *RoadmapCreate) SetTotalDays(v int) *RoadmapCreate {
	_c.mutation.SetTotalDays(v)
	return _c
}

// SetDays sets the "days" field.
func (_c *RoadmapCreate) SetDays(v []schema.RoadmapDay) *RoadmapCreate {
	_c.mutation.SetDays(v)
	return _c
}

// SetCompletedDays sets the "completed_days" field.
func (_c *RoadmapCreate) SetCompletedDays(v []int) *RoadmapCreate {
	_c.mutation.SetCompletedDays(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RoadmapCreate) SetStatus(v string) *RoadmapCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableStatus(v *string) *RoadmapCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoadmapCreate) SetCreatedAt(v time.Time) *RoadmapCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoadmapCreate) SetNillableCreatedAt(v *time.Time) *RoadmapCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the RoadmapMutation object of the builder.
func (_c *RoadmapCreate) Mutation() *RoadmapMutation {
	return _c.mutation
}

// Save creates the Roadmap in the database.
func (_c *RoadmapCreate) Save(ctx context.Context) (*Roadmap, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoadmapCreate) SaveX(ctx context.Context) *Roadmap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoadmapCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoadmapCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoadmapCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := roadmap.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := roadmap.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoadmapCreate) check() error {
	if _, ok := _c.mutation.RoadmapID(); !ok {
		return &ValidationError{Name: "roadmap_id", err: errors.New(`ent: missing required field "Roadmap.roadmap_id"`)}
	}
	if v, ok := _c.mutation.RoadmapID(); ok {
		if err := roadmap.RoadmapIDValidator(v); err != nil {
			return &ValidationError{Name: "roadmap_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.roadmap_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Roadmap.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := roadmap.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Roadmap.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := roadmap.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Roadmap.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalDays(); !ok {
		return &ValidationError{Name: "total_days", err: errors.New(`ent: missing required field "Roadmap.total_days"`)}
	}
	if v, ok := _c.mutation.TotalDays(); ok {
		if err := roadmap.TotalDaysValidator(v); err != nil {
			return &ValidationError{Name: "total_days", err: fmt.Errorf(`ent: validator failed for field "Roadmap.total_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Days(); !ok {
		return &ValidationError{Name: "days", err: errors.New(`ent: missing required field "Roadmap.days"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Roadmap.status"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Roadmap.created_at"`)}
	}
	return nil
}

func (_c *RoadmapCreate) sqlSave(ctx context.Context) (*Roadmap, error) {
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

func (_c *RoadmapCreate) createSpec() (*Roadmap, *sqlgraph.CreateSpec) {
	var (
		_node = &Roadmap{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roadmap.Table, sqlgraph.NewFieldSpec(roadmap.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.RoadmapID(); ok {
		_spec.SetField(roadmap.FieldRoadmapID, field.TypeString, value)
		_node.RoadmapID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(roadmap.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(roadmap.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(roadmap.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.TotalDays(); ok {
		_spec.SetField(roadmap.FieldTotalDays, field.TypeInt, value)
		_node.TotalDays = value
	}
	if value, ok := _c.mutation.Days(); ok {
		_spec.SetField(roadmap.FieldDays, field.TypeJSON, value)
		_node.Days = value
	}
	if value, ok := _c.mutation.CompletedDays(); ok {
		_spec.SetField(roadmap.FieldCompletedDays, field.TypeJSON, value)
		_node.CompletedDays = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(roadmap.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(roadmap.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// RoadmapCreateBulk is the builder for creating many Roadmap entities in bulk.
type RoadmapCreateBulk struct {
	config
	err      error
	builders []*RoadmapCreate
}

// Save creates the Roadmap entities in the database.
func (_c *RoadmapCreateBulk) Save(ctx context.Context) ([]*Roadmap, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Roadmap, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoadmapMutation)
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
func (_c *RoadmapCreateBulk) SaveX(ctx context.Context) []*Roadmap {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoadmapCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoadmapCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
