// Package sanitizer provides small, composable helpers for cleaning strings
// and slices before they are turned into account handles.
//
// The functions are grouped conceptually into a few areas:
//
//   - Strings – trimming, case conversion and whitespace normalisation.
//
//   - Collections – filtering, deduplicating, transforming and limiting
//     slices while preserving input order.
//
//   - Format – normalisation helpers for e-mail domains.
//
// The package is completely stateless and depends only on the Go standard
// library. All helpers are implemented as small, focused functions that can
// be freely combined. The higher-order Apply and Compose helpers allow the
// creation of cleanup pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.RemoveExtraWhitespace,
//	    sanitizer.ToLower,
//	)
//
//	safe := clean("  Mixed CASE   Input\n") // "mixed case input"
//
// # Usage
//
// Import the package using its module-qualified path:
//
//	import "github.com/dmitrymomot/handlekit/pkg/sanitizer"
//
// Example – domain normalisation:
//
//	domain := sanitizer.NormalizeDomain(" @Example.COM ")
//	// domain == "Example.COM"
//
// # Error handling
//
// None of the helpers returns an error – they always fall back to a safe
// result (usually the original input or an empty string).
//
// # Performance
//
// All operations allocate only what is necessary. Because there is no global
// state the helpers are safe for use from multiple goroutines concurrently.
package sanitizer
