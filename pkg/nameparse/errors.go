package nameparse

import "errors"

var (
	// ErrNameTooShort is returned when a name does not contain at least a
	// first and a last token after whitespace normalization.
	ErrNameTooShort = errors.New("nameparse: name must include at least a first and last name")

	// ErrEmptyNamePart is returned when the first or last token contains no
	// usable characters after cleanup.
	ErrEmptyNamePart = errors.New("nameparse: name part is empty after cleanup")
)
