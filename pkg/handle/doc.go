// Package handle derives plausible account handles from a person's full
// name.
//
// Candidates are built from a fixed, ordered set of combination templates
// over the parsed name tokens (first/last/middle plus initials), such as
// "john.doe", "jdoe" or "doe_john". The list is then narrowed by a profile,
// sanitized into the handle alphabet (ASCII letters, digits, "._-"),
// bounded by optional length and count limits, and optionally expanded with
// numeric suffixes ("jdoe1", "jdoe2", ...). Output order is deterministic:
// templates are rendered most-likely-first and every later stage preserves
// relative order.
//
// # Usage
//
// Import the package using its module-qualified path:
//
//	import "github.com/dmitrymomot/handlekit/pkg/handle"
//
// Generate usernames with the default configuration:
//
//	usernames, err := handle.Usernames("John Doe", handle.Config{})
//	if err != nil {
//	    return err
//	}
//	// usernames[0] == "john.doe"
//
// Generate e-mail addresses for one or more domains:
//
//	emails, err := handle.Emails("John Doe", []string{"example.com"}, handle.Config{
//	    Profile:    handle.ProfileMinimal,
//	    MaxPerName: 5,
//	})
//
// Append numeric suffixes for collision-heavy environments:
//
//	cfg := handle.Config{Suffixes: &handle.SuffixRange{Start: 1, End: 3}}
//	usernames, err := handle.Usernames("John Doe", cfg)
//	// "john.doe" is followed later by "john.doe1", "john.doe2", "john.doe3"
//
// # Error Handling
//
// Configuration mistakes (unknown case mode or profile, negative limits,
// inverted suffix ranges, email generation without domains) are reported
// once per call and should abort the run. Name problems (fewer than two
// tokens, or a first/last token with no usable characters) surface as
// nameparse.ErrNameTooShort and nameparse.ErrEmptyNamePart; batch callers
// are expected to skip the offending name and continue. Candidates that
// sanitize to nothing, exceed the length bound or duplicate an earlier
// entry are dropped silently.
//
// # Performance
//
// Generation is pure, allocation-light string assembly with no I/O. All
// functions are safe for concurrent use; a Config can be shared across
// goroutines.
package handle
