// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ascentlearn/ascent/ent/roadmap"
	"github.com/ascentlearn/ascent/ent/schema"
)

// Roadmap is the model entity for the Roadmap schema.
type Roadmap struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID assigned at creation
	RoadmapID string `json:"roadmap_id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// TotalDays holds the value of the "total_days" field.
	TotalDays int `json:"total_days,omitempty"`
	// Days holds the value of the "days" field.
	Days []schema.RoadmapDay `json:"days,omitempty"`
	// Monotonically growing set of completed day numbers
	CompletedDays []int `json:"completed_days,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Roadmap) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case roadmap.FieldDays, roadmap.FieldCompletedDays:
			values[i] = new([]byte)
		case roadmap.FieldID, roadmap.FieldTotalDays:
			values[i] = new(sql.NullInt64)
		case roadmap.FieldRoadmapID, roadmap.FieldSessionID, roadmap.FieldTitle, roadmap.FieldDescription, roadmap.FieldStatus:
			values[i] = new(sql.NullString)
		case roadmap.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Roadmap fields.
func (_m *Roadmap) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case roadmap.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case roadmap.FieldRoadmapID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field roadmap_id", values[i])
			} else if value.Valid {
				_m.RoadmapID = value.String
			}
		case roadmap.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case roadmap.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case roadmap.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case roadmap.FieldTotalDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_days", values[i])
			} else if value.Valid {
				_m.TotalDays = int(value.Int64)
			}
		case roadmap.FieldDays:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field days", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Days); err != nil {
					return fmt.Errorf("unmarshal field days: %w", err)
				}
			}
		case roadmap.FieldCompletedDays:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_days", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedDays); err != nil {
					return fmt.Errorf("unmarshal field completed_days: %w", err)
				}
			}
		case roadmap.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case roadmap.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Roadmap.
// This includes values selected through modifiers, order, etc.
func (_m *Roadmap) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Roadmap.
// Note that you need to call Roadmap.Unwrap() before calling this method if this Roadmap
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Roadmap) Update() *RoadmapUpdateOne {
	return NewRoadmapClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Roadmap entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Roadmap) Unwrap() *Roadmap {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Roadmap is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Roadmap) String() string {
	var builder strings.Builder
	builder.WriteString("Roadmap(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("roadmap_id=")
	builder.WriteString(_m.RoadmapID)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("total_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalDays))
	builder.WriteString(", ")
	builder.WriteString("days=")
	builder.WriteString(fmt.Sprintf("%v", _m.Days))
	builder.WriteString(", ")
	builder.WriteString("completed_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedDays))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Roadmaps is a parsable slice of Roadmap.
type Roadmaps []*Roadmap
