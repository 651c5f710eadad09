// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssessmentsColumns holds the columns for the "assessments" table.
	AssessmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "chapter_key", Type: field.TypeString},
		{Name: "level", Type: field.TypeInt},
		{Name: "questions", Type: field.TypeJSON},
		{Name: "generated_at", Type: field.TypeTime},
	}
	// AssessmentsTable holds the schema information for the "assessments" table.
	AssessmentsTable = &schema.Table{
		Name:       "assessments",
		Columns:    AssessmentsColumns,
		PrimaryKey: []*schema.Column{AssessmentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "assessment_session_id_chapter_key_level",
				Unique:  true,
				Columns: []*schema.Column{AssessmentsColumns[1], AssessmentsColumns[2], AssessmentsColumns[3]},
			},
		},
	}
	// ChaptersColumns holds the columns for the "chapters" table.
	ChaptersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "key", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ChaptersTable holds the schema information for the "chapters" table.
	ChaptersTable = &schema.Table{
		Name:       "chapters",
		Columns:    ChaptersColumns,
		PrimaryKey: []*schema.Column{ChaptersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "chapter_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ChaptersColumns[1], ChaptersColumns[4]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "timestamp", Type: field.TypeTime},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
		},
	}
	// MistakesColumns holds the columns for the "mistakes" table.
	MistakesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "correct_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "user_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "explanation", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "level", Type: field.TypeInt},
		{Name: "comment", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MistakesTable holds the schema information for the "mistakes" table.
	MistakesTable = &schema.Table{
		Name:       "mistakes",
		Columns:    MistakesColumns,
		PrimaryKey: []*schema.Column{MistakesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "mistake_session_id_question_user_answer",
				Unique:  true,
				Columns: []*schema.Column{MistakesColumns[1], MistakesColumns[2], MistakesColumns[4]},
			},
			{
				Name:    "mistake_created_at",
				Unique:  false,
				Columns: []*schema.Column{MistakesColumns[8]},
			},
		},
	}
	// ProgressRecordsColumns holds the columns for the "progress_records" table.
	ProgressRecordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "track", Type: field.TypeString},
		{Name: "xp", Type: field.TypeInt, Default: 0},
		{Name: "unlocked_level", Type: field.TypeInt, Default: 1},
		{Name: "chapter_index", Type: field.TypeInt, Default: 0},
		{Name: "history", Type: field.TypeJSON, Nullable: true},
		{Name: "retry_available_at", Type: field.TypeTime, Nullable: true},
		{Name: "remedial_plan", Type: field.TypeJSON, Nullable: true},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProgressRecordsTable holds the schema information for the "progress_records" table.
	ProgressRecordsTable = &schema.Table{
		Name:       "progress_records",
		Columns:    ProgressRecordsColumns,
		PrimaryKey: []*schema.Column{ProgressRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "progressrecord_session_id_track",
				Unique:  true,
				Columns: []*schema.Column{ProgressRecordsColumns[1], ProgressRecordsColumns[2]},
			},
		},
	}
	// RoadmapsColumns holds the columns for the "roadmaps" table.
	RoadmapsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "roadmap_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "total_days", Type: field.TypeInt},
		{Name: "days", Type: field.TypeJSON},
		{Name: "completed_days", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RoadmapsTable holds the schema information for the "roadmaps" table.
	RoadmapsTable = &schema.Table{
		Name:       "roadmaps",
		Columns:    RoadmapsColumns,
		PrimaryKey: []*schema.Column{RoadmapsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "roadmap_session_id",
				Unique:  false,
				Columns: []*schema.Column{RoadmapsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssessmentsTable,
		ChaptersTable,
		LlmRequestEventsTable,
		MistakesTable,
		ProgressRecordsTable,
		RoadmapsTable,
	}
)

func init() {
}
