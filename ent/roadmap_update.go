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
	"github.com/ascentlearn/ascent/ent/predicate"
	"github.com/ascentlearn/ascent/ent/roadmap"
	"github.com/ascentlearn/ascent/ent/schema"
)

// RoadmapUpdate is the builder for updating Roadmap entities.
type RoadmapUpdate struct {
	config
	hooks    []Hook
	mutation *RoadmapMutation
}

// Where appends a list predicates to the RoadmapUpdate builder.
func (_u *RoadmapUpdate) Where(ps ...predicate.Roadmap) *RoadmapUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *RoadmapUpdate) SetRoadmapID(v string) *RoadmapUpdate {
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableRoadmapID(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RoadmapUpdate) SetSessionID(v string) *RoadmapUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableSessionID(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RoadmapUpdate) SetTitle(v string) *RoadmapUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableTitle(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RoadmapUpdate) SetDescription(v string) *RoadmapUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableDescription(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RoadmapUpdate) ClearDescription() *RoadmapUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetTotalDays sets the "total_days" field.
func (_u *RoadmapUpdate) SetTotalDays(v int) *RoadmapUpdate {
	_u.mutation.ResetTotalDays()
	_u.mutation.SetTotalDays(v)
	return _u
}

// SetNillableTotalDays sets the "total_days" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableTotalDays(v *int) *RoadmapUpdate {
	if v != nil {
		_u.SetTotalDays(*v)
	}
	return _u
}

// AddTotalDays adds value to the "total_days" field.
func (_u *RoadmapUpdate) AddTotalDays(v int) *RoadmapUpdate {
	_u.mutation.AddTotalDays(v)
	return _u
}

// SetDays sets the "days" field.
func (_u *RoadmapUpdate) SetDays(v []schema.RoadmapDay) *RoadmapUpdate {
	_u.mutation.SetDays(v)
	return _u
}

// AppendDays appends value to the "days" field.
func (_u *RoadmapUpdate) AppendDays(v []schema.RoadmapDay) *RoadmapUpdate {
	_u.mutation.AppendDays(v)
	return _u
}

// SetCompletedDays sets the "completed_days" field.
func (_u *RoadmapUpdate) SetCompletedDays(v []int) *RoadmapUpdate {
	_u.mutation.SetCompletedDays(v)
	return _u
}

// AppendCompletedDays appends value to the "completed_days" field.
func (_u *RoadmapUpdate) AppendCompletedDays(v []int) *RoadmapUpdate {
	_u.mutation.AppendCompletedDays(v)
	return _u
}

// ClearCompletedDays clears the value of the "completed_days" field.
func (_u *RoadmapUpdate) ClearCompletedDays() *RoadmapUpdate {
	_u.mutation.ClearCompletedDays()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RoadmapUpdate) SetStatus(v string) *RoadmapUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RoadmapUpdate) SetNillableStatus(v *string) *RoadmapUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the RoadmapMutation object of the builder.
func (_u *RoadmapUpdate) Mutation() *RoadmapMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoadmapUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoadmapUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoadmapUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoadmapUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoadmapUpdate) check() error {
	if v, ok := _u.mutation.RoadmapID(); ok {
		if err := roadmap.RoadmapIDValidator(v); err != nil {
			return &ValidationError{Name: "roadmap_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.roadmap_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := roadmap.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := roadmap.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Roadmap.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalDays(); ok {
		if err := roadmap.TotalDaysValidator(v); err != nil {
			return &ValidationError{Name: "total_days", err: fmt.Errorf(`ent: validator failed for field "Roadmap.total_days": %w`, err)}
		}
	}
	return nil
}

func (_u *RoadmapUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roadmap.Table, roadmap.Columns, sqlgraph.NewFieldSpec(roadmap.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RoadmapID(); ok {
		_spec.SetField(roadmap.FieldRoadmapID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(roadmap.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(roadmap.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(roadmap.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(roadmap.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TotalDays(); ok {
		_spec.SetField(roadmap.FieldTotalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDays(); ok {
		_spec.AddField(roadmap.FieldTotalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Days(); ok {
		_spec.SetField(roadmap.FieldDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roadmap.FieldDays, value)
		})
	}
	if value, ok := _u.mutation.CompletedDays(); ok {
		_spec.SetField(roadmap.FieldCompletedDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roadmap.FieldCompletedDays, value)
		})
	}
	if _u.mutation.CompletedDaysCleared() {
		_spec.ClearField(roadmap.FieldCompletedDays, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(roadmap.FieldStatus, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roadmap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoadmapUpdateOne is the builder for updating a single Roadmap entity.
type RoadmapUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoadmapMutation
}

// SetRoadmapID sets the "roadmap_id" field.
func (_u *RoadmapUpdateOne) SetRoadmapID(v string) *RoadmapUpdateOne {
	_u.mutation.SetRoadmapID(v)
	return _u
}

// SetNillableRoadmapID sets the "roadmap_id" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableRoadmapID(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetRoadmapID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RoadmapUpdateOne) SetSessionID(v string) *RoadmapUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableSessionID(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *RoadmapUpdateOne) SetTitle(v string) *RoadmapUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableTitle(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *RoadmapUpdateOne) SetDescription(v string) *RoadmapUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableDescription(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *RoadmapUpdateOne) ClearDescription() *RoadmapUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetTotalDays sets the "total_days" field.
func (_u *RoadmapUpdateOne) SetTotalDays(v int) *RoadmapUpdateOne {
	_u.mutation.ResetTotalDays()
	_u.mutation.SetTotalDays(v)
	return _u
}

// SetNillableTotalDays sets the "total_days" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableTotalDays(v *int) *RoadmapUpdateOne {
	if v != nil {
		_u.SetTotalDays(*v)
	}
	return _u
}

// AddTotalDays adds value to the "total_days" field.
func (_u *RoadmapUpdateOne) AddTotalDays(v int) *RoadmapUpdateOne {
	_u.mutation.AddTotalDays(v)
	return _u
}

// SetDays sets the "days" field.
func (_u *RoadmapUpdateOne) SetDays(v []schema.RoadmapDay) *RoadmapUpdateOne {
	_u.mutation.SetDays(v)
	return _u
}

// AppendDays appends value to the "days" field.
func (_u *RoadmapUpdateOne) AppendDays(v []schema.RoadmapDay) *RoadmapUpdateOne {
	_u.mutation.AppendDays(v)
	return _u
}

// SetCompletedDays sets the "completed_days" field.
func (_u *RoadmapUpdateOne) SetCompletedDays(v []int) *RoadmapUpdateOne {
	_u.mutation.SetCompletedDays(v)
	return _u
}

// AppendCompletedDays appends value to the "completed_days" field.
func (_u *RoadmapUpdateOne) AppendCompletedDays(v []int) *RoadmapUpdateOne {
	_u.mutation.AppendCompletedDays(v)
	return _u
}

// ClearCompletedDays clears the value of the "completed_days" field.
func (_u *RoadmapUpdateOne) ClearCompletedDays() *RoadmapUpdateOne {
	_u.mutation.ClearCompletedDays()
	return _u
}

// SetStatus sets the "status" field.
func (_u *RoadmapUpdateOne) SetStatus(v string) *RoadmapUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RoadmapUpdateOne) SetNillableStatus(v *string) *RoadmapUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the RoadmapMutation object of the builder.
func (_u *RoadmapUpdateOne) Mutation() *RoadmapMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoadmapUpdate builder.
func (_u *RoadmapUpdateOne) Where(ps ...predicate.Roadmap) *RoadmapUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoadmapUpdateOne) Select(field string, fields ...string) *RoadmapUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Roadmap entity.
func (_u *RoadmapUpdateOne) Save(ctx context.Context) (*Roadmap, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoadmapUpdateOne) SaveX(ctx context.Context) *Roadmap {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoadmapUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoadmapUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoadmapUpdateOne) check() error {
	if v, ok := _u.mutation.RoadmapID(); ok {
		if err := roadmap.RoadmapIDValidator(v); err != nil {
			return &ValidationError{Name: "roadmap_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.roadmap_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := roadmap.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "Roadmap.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := roadmap.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Roadmap.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalDays(); ok {
		if err := roadmap.TotalDaysValidator(v); err != nil {
			return &ValidationError{Name: "total_days", err: fmt.Errorf(`ent: validator failed for field "Roadmap.total_days": %w`, err)}
		}
	}
	return nil
}

func (_u *RoadmapUpdateOne) sqlSave(ctx context.Context) (_node *Roadmap, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roadmap.Table, roadmap.Columns, sqlgraph.NewFieldSpec(roadmap.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Roadmap.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roadmap.FieldID)
		for _, f := range fields {
			if !roadmap.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roadmap.FieldID {
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
	if value, ok := _u.mutation.RoadmapID(); ok {
		_spec.SetField(roadmap.FieldRoadmapID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(roadmap.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(roadmap.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(roadmap.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(roadmap.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.TotalDays(); ok {
		_spec.SetField(roadmap.FieldTotalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalDays(); ok {
		_spec.AddField(roadmap.FieldTotalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Days(); ok {
		_spec.SetField(roadmap.FieldDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roadmap.FieldDays, value)
		})
	}
	if value, ok := _u.mutation.CompletedDays(); ok {
		_spec.SetField(roadmap.FieldCompletedDays, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedDays(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roadmap.FieldCompletedDays, value)
		})
	}
	if _u.mutation.CompletedDaysCleared() {
		_spec.ClearField(roadmap.FieldCompletedDays, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(roadmap.FieldStatus, field.TypeString, value)
	}
	_node = &Roadmap{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roadmap.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
