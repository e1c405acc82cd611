// Package nameparse splits full names into their component tokens and
// derived initials, the raw material for building account handles.
//
// Parsing is intentionally simple: the first space-separated token is the
// first name, the last token is the last name, and everything in between is
// treated as middle names. Tokens are lowercased and reduced to ASCII
// letters and digits; optional accent folding turns "José" into "jose"
// instead of dropping the accented letter.
//
// # Usage
//
//	name, err := nameparse.Split("John Michael Doe", false)
//	if err != nil {
//	    return err
//	}
//	// name.First == "john", name.Last == "doe", name.MiddleInitial == "m"
//
// # Error Handling
//
// Split returns ErrNameTooShort for single-token input and ErrEmptyNamePart
// when the first or last token has no usable characters left after cleanup.
// Both wrap the offending name and can be matched with errors.Is.
package nameparse
