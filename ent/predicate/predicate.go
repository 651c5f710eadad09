// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Assessment is the predicate function for assessment builders.
type Assessment func(*sql.Selector)

// Chapter is the predicate function for chapter builders.
type Chapter func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Mistake is the predicate function for mistake builders.
type Mistake func(*sql.Selector)

// ProgressRecord is the predicate function for progressrecord builders.
type ProgressRecord func(*sql.Selector)

// Roadmap is the predicate function for roadmap builders.
type Roadmap func(*sql.Selector)
