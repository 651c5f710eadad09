package roadmap

import (
	"fmt"
	"strings"

	"github.com/ascentlearn/ascent/internal/llm"
	"github.com/ascentlearn/ascent/internal/store"
)

const roadmapSystemPrompt = `You are an expert learning-path designer. You
break a learning goal into a realistic daily plan, one focused topic per day,
building strictly on previous days. You respond only with the requested JSON.`

func buildOutlinePrompt(goal string, totalDays int) string {
	return fmt.Sprintf(`Design a %d-day study plan for the goal below. Return a title, a
two-sentence description, and exactly %d days. Each day gets a day_number
(1-based, sequential), a focused topic, 2-4 learning_objectives, and a
suggested video_title with a plausible video_url.

Goal: %s`, totalDays, totalDays, goal)
}

func buildWeekContentPrompt(rm *store.Roadmap, first, last int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `Write the study content for days %d to %d of the plan "%s".
For each day return day_number, content (300-500 words of teaching material
in markdown), 2-3 questions (type is "concept" or "practice", each with a
hint), and 2-3 named resources.

The days and their topics:
`, first, last, rm.Title)
	for i := first - 1; i < last; i++ {
		fmt.Fprintf(&b, "Day %d: %s\n", rm.Days[i].DayNumber, rm.Days[i].Topic)
	}
	return b.String()
}

var outlineSchema = llm.Schema{
	Name:        "roadmap-outline",
	Description: "Full study-plan outline, one topic per day",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":       map[string]any{"type": "string"},
			"description": map[string]any{"type": "string"},
			"days": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"day_number": map[string]any{"type": "integer"},
						"topic":      map[string]any{"type": "string"},
						"learning_objectives": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
						"video_title": map[string]any{"type": "string"},
						"video_url":   map[string]any{"type": "string"},
					},
					"required":             []any{"day_number", "topic", "learning_objectives", "video_title", "video_url"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "description", "days"},
		"additionalProperties": false,
	},
}

var weekContentSchema = llm.Schema{
	Name:        "roadmap-week-content",
	Description: "Teaching content for one week of the plan",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"days": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"day_number": map[string]any{"type": "integer"},
						"content":    map[string]any{"type": "string"},
						"questions": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"question": map[string]any{"type": "string"},
									"type":     map[string]any{"type": "string"},
									"hint":     map[string]any{"type": "string"},
								},
								"required":             []any{"question", "type", "hint"},
								"additionalProperties": false,
							},
						},
						"resources": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []any{"day_number", "content", "questions", "resources"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"days"},
		"additionalProperties": false,
	},
}
