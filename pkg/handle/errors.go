package handle

import "errors"

var (
	// ErrNoDomains is returned when email generation is requested without
	// any target domain.
	ErrNoDomains = errors.New("handle: email generation requires at least one domain")

	// ErrInvalidCaseMode is returned for a case mode outside lower, upper
	// and original.
	ErrInvalidCaseMode = errors.New("handle: invalid case mode")

	// ErrInvalidProfile is returned for a profile outside minimal, common
	// and wide.
	ErrInvalidProfile = errors.New("handle: invalid profile")

	// ErrInvalidSuffixRange is returned for a malformed or inverted numeric
	// suffix range.
	ErrInvalidSuffixRange = errors.New("handle: invalid suffix range")

	// ErrInvalidLimit is returned for negative per-name or length limits.
	ErrInvalidLimit = errors.New("handle: limit must not be negative")
)
