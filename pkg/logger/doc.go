// Package logger provides a context-aware wrapper around Go's slog package
// adding functional options for configuration, helper attribute constructors,
// and transparent injection of values stored in context.Context.
//
// The single factory – New – creates a *slog.Logger configured by a set of
// Option functions. These options allow you to:
//
//   - Select an output format (text or json)
//   - Set the minimum log level
//   - Supply default slog.Attr values applied to every record
//   - Register ContextExtractor callbacks that inject attributes pulled from
//     a context value (for example a run id) every time Handle is invoked.
//
// # Architecture
//
// New picks the concrete slog.Handler implementation – slog.NewTextHandler
// or slog.NewJSONHandler – based on the configured Format, then wraps it with
// ContextHandler which executes any registered ContextExtractor callbacks
// before delegating to the underlying handler.
//
// Helper constructors such as Error, Name and Count live in attr.go and
// return commonly-used slog.Attr instances to keep attribute naming
// consistent across the codebase.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithTextFormatter(),
//	    logger.WithContextValue("run_id", ctxKeyRunID),
//	)
//	logger.SetAsDefault(log)
//
//	ctx := context.WithValue(context.Background(), ctxKeyRunID, "abc-123")
//	log.InfoContext(ctx, "batch finished", logger.Count(42))
//
// Logs default to stderr so that generated output on stdout stays clean.
package logger
