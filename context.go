package handlekit

import (
	"context"
)

// ContextKey is a key for context values.
// It should be created as a package-level variable.
type ContextKey struct{ name string }

// NewContextKey creates a new context key.
// The name should be unique within your application.
//
// Example:
//
//	var jobKey = handlekit.NewContextKey("job")
func NewContextKey(name string) *ContextKey {
	return &ContextKey{name}
}

// ContextValue retrieves a typed value from the context.
// Returns the zero value of T if the key is not present or has a different type.
//
// Example:
//
//	var jobKey = handlekit.NewContextKey("job")
//
//	// Set value
//	ctx = context.WithValue(ctx, jobKey, "nightly-import")
//
//	// Get value
//	job := handlekit.ContextValue[string](ctx, jobKey)
func ContextValue[T any](ctx context.Context, key any) T {
	val, _ := ctx.Value(key).(T)
	return val
}

// RunIDKey is the context key under which the Runner stores the identifier of
// the current batch run. Loggers can surface it on every record via
// logger.WithContextValue("run_id", handlekit.RunIDKey).
var RunIDKey = NewContextKey("run_id")

// WithRunID returns a context carrying the given batch run identifier.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDKey, runID)
}

// RunID returns the batch run identifier from the context, or an empty string
// when none is set.
func RunID(ctx context.Context) string {
	return ContextValue[string](ctx, RunIDKey)
}
