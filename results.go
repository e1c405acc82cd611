package handlekit

import "github.com/dmitrymomot/handlekit/pkg/sanitizer"

// Kind identifies what a generated value represents.
type Kind string

const (
	// KindUsername marks a bare handle without a domain part.
	KindUsername Kind = "username"
	// KindEmail marks a full address composed from a handle and a domain.
	KindEmail Kind = "email"
)

// Mode selects which kinds of values a run produces.
type Mode string

const (
	// ModeUsernames generates bare handles only.
	ModeUsernames Mode = "usernames"
	// ModeEmails generates email addresses only.
	ModeEmails Mode = "emails"
	// ModeBoth generates handles first, then addresses, per name.
	ModeBoth Mode = "both"
)

// Valid reports whether the mode is one of the known values.
func (m Mode) Valid() bool {
	switch m {
	case ModeUsernames, ModeEmails, ModeBoth:
		return true
	}
	return false
}

// usernames reports whether the mode includes bare handle generation.
func (m Mode) usernames() bool {
	return m == ModeUsernames || m == ModeBoth
}

// emails reports whether the mode includes email generation.
func (m Mode) emails() bool {
	return m == ModeEmails || m == ModeBoth
}

// Result is one generated value attributed to the input name it came from.
// Name is the whitespace-normalized form of that input; Domain is set only
// for email results.
type Result struct {
	Name   string
	Kind   Kind
	Value  string
	Domain string
}

// usernameResult builds a Result for a bare handle.
func usernameResult(name, value string) Result {
	return Result{Name: name, Kind: KindUsername, Value: value}
}

// emailResult builds a Result for an address, splitting out the domain part.
func emailResult(name, address string) Result {
	return Result{
		Name:   name,
		Kind:   KindEmail,
		Value:  address,
		Domain: sanitizer.ExtractEmailDomain(address),
	}
}
