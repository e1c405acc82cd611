package handlekit

import "errors"

var (
	// ErrInvalidMode is returned by NewRunner when the generation mode is not
	// one of usernames, emails or both.
	ErrInvalidMode = errors.New("handlekit: unknown generation mode")

	// ErrNoResults marks a run that completed without producing any handles,
	// for example when every input name failed validation. The Runner itself
	// reports this as an empty result set; callers that treat it as a failure
	// can use this sentinel.
	ErrNoResults = errors.New("handlekit: no handles were generated")
)
