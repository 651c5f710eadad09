// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/ascentlearn/ascent/ent/assessment"
	"github.com/ascentlearn/ascent/ent/chapter"
	"github.com/ascentlearn/ascent/ent/llmrequestevent"
	"github.com/ascentlearn/ascent/ent/mistake"
	"github.com/ascentlearn/ascent/ent/progressrecord"
	"github.com/ascentlearn/ascent/ent/roadmap"
	"github.com/ascentlearn/ascent/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assessmentFields := schema.Assessment{}.Fields()
	_ = assessmentFields
	// assessmentDescSessionID is the schema descriptor for session_id field.
	assessmentDescSessionID := assessmentFields[0].Descriptor()
	// assessment.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	assessment.SessionIDValidator = assessmentDescSessionID.Validators[0].(func(string) error)
	// assessmentDescChapterKey is the schema descriptor for chapter_key field.
	assessmentDescChapterKey := assessmentFields[1].Descriptor()
	// assessment.ChapterKeyValidator is a validator for the "chapter_key" field. It is called by the builders before save.
	assessment.ChapterKeyValidator = assessmentDescChapterKey.Validators[0].(func(string) error)
	// assessmentDescLevel is the schema descriptor for level field.
	assessmentDescLevel := assessmentFields[2].Descriptor()
	// assessment.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	assessment.LevelValidator = assessmentDescLevel.Validators[0].(func(int) error)
	// assessmentDescGeneratedAt is the schema descriptor for generated_at field.
	assessmentDescGeneratedAt := assessmentFields[4].Descriptor()
	// assessment.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	assessment.DefaultGeneratedAt = assessmentDescGeneratedAt.Default.(func() time.Time)
	chapterFields := schema.Chapter{}.Fields()
	_ = chapterFields
	// chapterDescSessionID is the schema descriptor for session_id field.
	chapterDescSessionID := chapterFields[0].Descriptor()
	// chapter.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	chapter.SessionIDValidator = chapterDescSessionID.Validators[0].(func(string) error)
	// chapterDescKey is the schema descriptor for key field.
	chapterDescKey := chapterFields[1].Descriptor()
	// chapter.KeyValidator is a validator for the "key" field. It is called by the builders before save.
	chapter.KeyValidator = chapterDescKey.Validators[0].(func(string) error)
	// chapterDescName is the schema descriptor for name field.
	chapterDescName := chapterFields[2].Descriptor()
	// chapter.NameValidator is a validator for the "name" field. It is called by the builders before save.
	chapter.NameValidator = chapterDescName.Validators[0].(func(string) error)
	// chapterDescCreatedAt is the schema descriptor for created_at field.
	chapterDescCreatedAt := chapterFields[3].Descriptor()
	// chapter.DefaultCreatedAt holds the default value on creation for the created_at field.
	chapter.DefaultCreatedAt = chapterDescCreatedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	mistakeFields := schema.Mistake{}.Fields()
	_ = mistakeFields
	// mistakeDescSessionID is the schema descriptor for session_id field.
	mistakeDescSessionID := mistakeFields[0].Descriptor()
	// mistake.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	mistake.SessionIDValidator = mistakeDescSessionID.Validators[0].(func(string) error)
	// mistakeDescQuestion is the schema descriptor for question field.
	mistakeDescQuestion := mistakeFields[1].Descriptor()
	// mistake.QuestionValidator is a validator for the "question" field. It is called by the builders before save.
	mistake.QuestionValidator = mistakeDescQuestion.Validators[0].(func(string) error)
	// mistakeDescLevel is the schema descriptor for level field.
	mistakeDescLevel := mistakeFields[5].Descriptor()
	// mistake.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	mistake.LevelValidator = mistakeDescLevel.Validators[0].(func(int) error)
	// mistakeDescComment is the schema descriptor for comment field.
	mistakeDescComment := mistakeFields[6].Descriptor()
	// mistake.DefaultComment holds the default value on creation for the comment field.
	mistake.DefaultComment = mistakeDescComment.Default.(string)
	// mistakeDescCreatedAt is the schema descriptor for created_at field.
	mistakeDescCreatedAt := mistakeFields[7].Descriptor()
	// mistake.DefaultCreatedAt holds the default value on creation for the created_at field.
	mistake.DefaultCreatedAt = mistakeDescCreatedAt.Default.(func() time.Time)
	progressrecordFields := schema.ProgressRecord{}.Fields()
	_ = progressrecordFields
	// progressrecordDescSessionID is the schema descriptor for session_id field.
	progressrecordDescSessionID := progressrecordFields[0].Descriptor()
	// progressrecord.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	progressrecord.SessionIDValidator = progressrecordDescSessionID.Validators[0].(func(string) error)
	// progressrecordDescTrack is the schema descriptor for track field.
	progressrecordDescTrack := progressrecordFields[1].Descriptor()
	// progressrecord.TrackValidator is a validator for the "track" field. It is called by the builders before save.
	progressrecord.TrackValidator = progressrecordDescTrack.Validators[0].(func(string) error)
	// progressrecordDescXp is the schema descriptor for xp field.
	progressrecordDescXp := progressrecordFields[2].Descriptor()
	// progressrecord.DefaultXp holds the default value on creation for the xp field.
	progressrecord.DefaultXp = progressrecordDescXp.Default.(int)
	// progressrecord.XpValidator is a validator for the "xp" field. It is called by the builders before save.
	progressrecord.XpValidator = progressrecordDescXp.Validators[0].(func(int) error)
	// progressrecordDescUnlockedLevel is the schema descriptor for unlocked_level field.
	progressrecordDescUnlockedLevel := progressrecordFields[3].Descriptor()
	// progressrecord.DefaultUnlockedLevel holds the default value on creation for the unlocked_level field.
	progressrecord.DefaultUnlockedLevel = progressrecordDescUnlockedLevel.Default.(int)
	// progressrecord.UnlockedLevelValidator is a validator for the "unlocked_level" field. It is called by the builders before save.
	progressrecord.UnlockedLevelValidator = progressrecordDescUnlockedLevel.Validators[0].(func(int) error)
	// progressrecordDescChapterIndex is the schema descriptor for chapter_index field.
	progressrecordDescChapterIndex := progressrecordFields[4].Descriptor()
	// progressrecord.DefaultChapterIndex holds the default value on creation for the chapter_index field.
	progressrecord.DefaultChapterIndex = progressrecordDescChapterIndex.Default.(int)
	// progressrecord.ChapterIndexValidator is a validator for the "chapter_index" field. It is called by the builders before save.
	progressrecord.ChapterIndexValidator = progressrecordDescChapterIndex.Validators[0].(func(int) error)
	// progressrecordDescUpdatedAt is the schema descriptor for updated_at field.
	progressrecordDescUpdatedAt := progressrecordFields[8].Descriptor()
	// progressrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	progressrecord.DefaultUpdatedAt = progressrecordDescUpdatedAt.Default.(func() time.Time)
	// progressrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	progressrecord.UpdateDefaultUpdatedAt = progressrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	roadmapFields := schema.Roadmap{}.Fields()
	_ = roadmapFields
	// roadmapDescRoadmapID is the schema descriptor for roadmap_id field.
	roadmapDescRoadmapID := roadmapFields[0].Descriptor()
	// roadmap.RoadmapIDValidator is a validator for the "roadmap_id" field. It is called by the builders before save.
	roadmap.RoadmapIDValidator = roadmapDescRoadmapID.Validators[0].(func(string) error)
	// roadmapDescSessionID is the schema descriptor for session_id field.
	roadmapDescSessionID := roadmapFields[1].Descriptor()
	// roadmap.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	roadmap.SessionIDValidator = roadmapDescSessionID.Validators[0].(func(string) error)
	// roadmapDescTitle is the schema descriptor for title field.
	roadmapDescTitle := roadmapFields[2].Descriptor()
	// roadmap.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	roadmap.TitleValidator = roadmapDescTitle.Validators[0].(func(string) error)
	// roadmapDescTotalDays is the schema descriptor for total_days field.
	roadmapDescTotalDays := roadmapFields[4].Descriptor()
	// roadmap.TotalDaysValidator is a validator for the "total_days" field. It is called by the builders before save.
	roadmap.TotalDaysValidator = roadmapDescTotalDays.Validators[0].(func(int) error)
	// roadmapDescStatus is the schema descriptor for status field.
	roadmapDescStatus := roadmapFields[7].Descriptor()
	// roadmap.DefaultStatus holds the default value on creation for the status field.
	roadmap.DefaultStatus = roadmapDescStatus.Default.(string)
	// roadmapDescCreatedAt is the schema descriptor for created_at field.
	roadmapDescCreatedAt := roadmapFields[8].Descriptor()
	// roadmap.DefaultCreatedAt holds the default value on creation for the created_at field.
	roadmap.DefaultCreatedAt = roadmapDescCreatedAt.Default.(func() time.Time)
}
