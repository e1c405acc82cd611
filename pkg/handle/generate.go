package handle

import (
	"github.com/dmitrymomot/handlekit/pkg/nameparse"
	"github.com/dmitrymomot/handlekit/pkg/sanitizer"
)

// Usernames derives handle candidates from a full name. The pipeline parses
// the name, renders the pattern templates, filters them by profile,
// sanitizes each candidate, applies the length and count bounds, expands
// numeric suffixes, then bounds the result again.
func Usernames(fullName string, cfg Config) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	name, err := nameparse.Split(fullName, cfg.FoldASCII)
	if err != nil {
		return nil, err
	}

	cands := applyProfile(generate(name), cfg.Profile)

	handles := sanitizer.TransformSlice(cands, func(c candidate) string {
		return Sanitize(c.value, cfg.Case)
	})
	handles = sanitizer.FilterEmpty(handles)

	handles = Bound(handles, cfg.MaxLength, cfg.MaxPerName)
	handles = Expand(handles, cfg.Suffixes, cfg.MaxLength)
	handles = Bound(handles, cfg.MaxLength, cfg.MaxPerName)

	return handles, nil
}

// Emails cross-joins the username candidates for a full name with the given
// domains, preserving username order first and domain order second. Each
// domain is trimmed and stripped of a leading "@"; exact duplicate addresses
// are skipped. The per-name bounds apply to the username list before the
// join, never to the email list itself.
func Emails(fullName string, domains []string, cfg Config) ([]string, error) {
	if len(domains) == 0 {
		return nil, ErrNoDomains
	}

	usernames, err := Usernames(fullName, cfg)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(usernames)*len(domains))
	emails := make([]string, 0, len(usernames)*len(domains))

	for _, username := range usernames {
		for _, domain := range domains {
			email := username + "@" + sanitizer.NormalizeDomain(domain)
			if seen[email] {
				continue
			}
			seen[email] = true
			emails = append(emails, email)
		}
	}

	return emails, nil
}
