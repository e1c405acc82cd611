// Package validator provides a small set of composable, type-safe validation
// rules for checking user-supplied options before a run starts.
//
// The package promotes declarative validation by letting you build small Rule
// values that encapsulate a boolean Check function together with a
// field-scoped error message. Rules are evaluated with the Apply helper which
// aggregates any failures into a ValidationErrors slice that satisfies the
// error interface, making it convenient to bubble up multiple field-specific
// problems in a single error return.
//
// Every exported validation function simply constructs and returns a Rule
// instance; there is no hidden global state, therefore the package is
// completely stateless, allocation-light, and goroutine-safe.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.InListString("mode", mode, []string{"usernames", "emails", "both"}),
//	    validator.Min("max-per-name", maxPerName, 0),
//	    validator.RequiredSlice("domain", domains),
//	)
//	if err != nil {
//	    if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	        // iterate over field-level messages
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors implements the error interface, so a failed Apply can be
// returned directly. Use ExtractValidationErrors or IsValidationError with
// errors.As semantics to recover field-level details, and the Has, Get and
// Fields helpers to inspect individual fields.
package validator
