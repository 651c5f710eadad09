package llm

import (
	"context"
	"encoding/json"
)

// Provider is the content-provider abstraction. The engine never produces
// question text, diagnoses, or roadmap content itself; it asks a Provider
// and validates whatever comes back.
type Provider interface {
	// Generate sends a prompt to the model and returns a structured response.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is the validated
	// JSON document.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Engine calls are single-turn: one user
	// message carrying the topic context and the generation rules.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. Nil means the
	// raw text is returned as json.RawMessage without validation.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0.0, 1.0]; zero value means deterministic.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema, kebab-case, e.g. "assessment-level-1".
	Name string

	// Description guides generation; sent to the model where supported.
	Description string

	// Definition is the JSON Schema document as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated JSON (schema-validated when a Schema was
	// given) or the raw text wrapped as a JSON string otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
