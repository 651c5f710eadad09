// Code generated by ent, DO NOT EDIT.

package progressrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the progressrecord type in the database.
	Label = "progress_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTrack holds the string denoting the track field in the database.
	FieldTrack = "track"
	// FieldXp holds the string denoting the xp field in the database.
	FieldXp = "xp"
	// FieldUnlockedLevel holds the string denoting the unlocked_level field in the database.
	FieldUnlockedLevel = "unlocked_level"
	// FieldChapterIndex holds the string denoting the chapter_index field in the database.
	FieldChapterIndex = "chapter_index"
	// FieldHistory holds the string denoting the history field in the database.
	FieldHistory = "history"
	// FieldRetryAvailableAt holds the string denoting the retry_available_at field in the database.
	FieldRetryAvailableAt = "retry_available_at"
	// FieldRemedialPlan holds the string denoting the remedial_plan field in the database.
	FieldRemedialPlan = "remedial_plan"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the progressrecord in the database.
	Table = "progress_records"
)

// Columns holds all SQL columns for progressrecord fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldTrack,
	FieldXp,
	FieldUnlockedLevel,
	FieldChapterIndex,
	FieldHistory,
	FieldRetryAvailableAt,
	FieldRemedialPlan,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// TrackValidator is a validator for the "track" field. It is called by the builders before save.
	TrackValidator func(string) error
	// DefaultXp holds the default value on creation for the "xp" field.
	DefaultXp int
	// XpValidator is a validator for the "xp" field. It is called by the builders before save.
	XpValidator func(int) error
	// DefaultUnlockedLevel holds the default value on creation for the "unlocked_level" field.
	DefaultUnlockedLevel int
	// UnlockedLevelValidator is a validator for the "unlocked_level" field. It is called by the builders before save.
	UnlockedLevelValidator func(int) error
	// DefaultChapterIndex holds the default value on creation for the "chapter_index" field.
	DefaultChapterIndex int
	// ChapterIndexValidator is a validator for the "chapter_index" field. It is called by the builders before save.
	ChapterIndexValidator func(int) error
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ProgressRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTrack orders the results by the track field.
func ByTrack(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrack, opts...).ToFunc()
}

// ByXp orders the results by the xp field.
func ByXp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXp, opts...).ToFunc()
}

// ByUnlockedLevel orders the results by the unlocked_level field.
func ByUnlockedLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUnlockedLevel, opts...).ToFunc()
}

// ByChapterIndex orders the results by the chapter_index field.
func ByChapterIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChapterIndex, opts...).ToFunc()
}

// ByRetryAvailableAt orders the results by the retry_available_at field.
func ByRetryAvailableAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRetryAvailableAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
