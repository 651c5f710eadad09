package llm

import "context"

type contextKey struct{}

var purposeKey contextKey

// WithPurpose labels the context so the event log records what a provider
// call was for (assessment-gen, diagnosis, roadmap-gen, week-content).
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom returns the purpose label, or "unknown" if none was set.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
