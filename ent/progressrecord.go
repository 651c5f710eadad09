// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/ascentlearn/ascent/ent/progressrecord"
	"github.com/ascentlearn/ascent/ent/schema"
)

// ProgressRecord is the model entity for the ProgressRecord schema.
type ProgressRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// institution or individual
	Track string `json:"track,omitempty"`
	// Xp holds the value of the "xp" field.
	Xp int `json:"xp,omitempty"`
	// UnlockedLevel holds the value of the "unlocked_level" field.
	UnlockedLevel int `json:"unlocked_level,omitempty"`
	// Index into the session's chapters ordered by creation time
	ChapterIndex int `json:"chapter_index,omitempty"`
	// Append-only audit trail of submissions
	History []schema.Attempt `json:"history,omitempty"`
	// Cooldown deadline; nil when no lock is installed
	RetryAvailableAt *time.Time `json:"retry_available_at,omitempty"`
	// Current remedial plan; nil when none
	RemedialPlan *schema.RemedialPlan `json:"remedial_plan,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProgressRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case progressrecord.FieldHistory, progressrecord.FieldRemedialPlan:
			values[i] = new([]byte)
		case progressrecord.FieldID, progressrecord.FieldXp, progressrecord.FieldUnlockedLevel, progressrecord.FieldChapterIndex:
			values[i] = new(sql.NullInt64)
		case progressrecord.FieldSessionID, progressrecord.FieldTrack:
			values[i] = new(sql.NullString)
		case progressrecord.FieldRetryAvailableAt, progressrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProgressRecord fields.
func (_m *ProgressRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case progressrecord.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case progressrecord.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case progressrecord.FieldTrack:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field track", values[i])
			} else if value.Valid {
				_m.Track = value.String
			}
		case progressrecord.FieldXp:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp", values[i])
			} else if value.Valid {
				_m.Xp = int(value.Int64)
			}
		case progressrecord.FieldUnlockedLevel:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field unlocked_level", values[i])
			} else if value.Valid {
				_m.UnlockedLevel = int(value.Int64)
			}
		case progressrecord.FieldChapterIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field chapter_index", values[i])
			} else if value.Valid {
				_m.ChapterIndex = int(value.Int64)
			}
		case progressrecord.FieldHistory:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field history", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.History); err != nil {
					return fmt.Errorf("unmarshal field history: %w", err)
				}
			}
		case progressrecord.FieldRetryAvailableAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field retry_available_at", values[i])
			} else if value.Valid {
				_m.RetryAvailableAt = new(time.Time)
				*_m.RetryAvailableAt = value.Time
			}
		case progressrecord.FieldRemedialPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field remedial_plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RemedialPlan); err != nil {
					return fmt.Errorf("unmarshal field remedial_plan: %w", err)
				}
			}
		case progressrecord.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProgressRecord.
// This includes values selected through modifiers, order, etc.
func (_m *ProgressRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProgressRecord.
// Note that you need to call ProgressRecord.Unwrap() before calling this method if this ProgressRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProgressRecord) Update() *ProgressRecordUpdateOne {
	return NewProgressRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProgressRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProgressRecord) Unwrap() *ProgressRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProgressRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProgressRecord) String() string {
	var builder strings.Builder
	builder.WriteString("ProgressRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("track=")
	builder.WriteString(_m.Track)
	builder.WriteString(", ")
	builder.WriteString("xp=")
	builder.WriteString(fmt.Sprintf("%v", _m.Xp))
	builder.WriteString(", ")
	builder.WriteString("unlocked_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.UnlockedLevel))
	builder.WriteString(", ")
	builder.WriteString("chapter_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.ChapterIndex))
	builder.WriteString(", ")
	builder.WriteString("history=")
	builder.WriteString(fmt.Sprintf("%v", _m.History))
	builder.WriteString(", ")
	if v := _m.RetryAvailableAt; v != nil {
		builder.WriteString("retry_available_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("remedial_plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.RemedialPlan))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ProgressRecords is a parsable slice of ProgressRecord.
type ProgressRecords []*ProgressRecord
