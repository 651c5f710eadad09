package assessment

import (
	"fmt"

	"github.com/ascentlearn/ascent/internal/llm"
)

const assessmentSystemPrompt = `You are an expert curriculum author. You write
clear, unambiguous assessment questions strictly about the given topic, at the
requested cognitive level, and you respond only with the requested JSON.`

// buildPrompt produces the user message for one level's generation call.
// Level 1 probes recall, level 2 application, level 3 synthesis.
func buildPrompt(level int, topic string) string {
	switch level {
	case 1:
		return fmt.Sprintf(`Write exactly 10 multiple-choice questions testing RECALL of basic
definitions, facts, and terminology for the topic below. Each question has
exactly 4 options; exactly one option is correct and must match the
correct_answer field verbatim. Add a one-sentence explanation per question.

Topic: %s`, topic)
	case 2:
		return fmt.Sprintf(`Write exactly 10 multiple-choice questions testing APPLICATION for the
topic below: solving problems, working through computations, and applying
methods to concrete cases. Each question has exactly 4 options; exactly one
option is correct and must match the correct_answer field verbatim. Add a
short explanation of the working per question.

Topic: %s`, topic)
	case 3:
		return fmt.Sprintf(`Write exactly 5 short-answer questions testing SYNTHESIS for the topic
below: combining ideas, justifying reasoning, and constructing multi-step
arguments. No options. Put a model answer in correct_answer and a grading
note in explanation.

Topic: %s`, topic)
	default:
		return ""
	}
}

// schemaForLevel returns the structured-output schema for a level.
func schemaForLevel(level int) *llm.Schema {
	if level == 3 {
		return &shortAnswerSchema
	}
	return &mcqSchema
}

var mcqSchema = llm.Schema{
	Name:        "assessment-mcq",
	Description: "Ten four-option multiple-choice questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 10,
				"maxItems": 10,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{"type": "string"},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 4,
							"maxItems": 4,
						},
						"correct_answer": map[string]any{"type": "string"},
						"explanation":    map[string]any{"type": "string"},
					},
					"required":             []any{"question", "options", "correct_answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

var shortAnswerSchema = llm.Schema{
	Name:        "assessment-short-answer",
	Description: "Five short-answer synthesis questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 5,
				"maxItems": 5,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question":       map[string]any{"type": "string"},
						"correct_answer": map[string]any{"type": "string"},
						"explanation":    map[string]any{"type": "string"},
					},
					"required":             []any{"question", "correct_answer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
