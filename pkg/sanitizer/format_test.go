package sanitizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/handlekit/pkg/sanitizer"
)

func TestNormalizeDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "passes clean domain through",
			input:    "example.com",
			expected: "example.com",
		},
		{
			name:     "strips leading at sign",
			input:    "@example.com",
			expected: "example.com",
		},
		{
			name:     "strips repeated at signs",
			input:    "@@example.com",
			expected: "example.com",
		},
		{
			name:     "strips surrounding whitespace",
			input:    "  example.com  ",
			expected: "example.com",
		},
		{
			name:     "strips whitespace before at sign",
			input:    " @example.com ",
			expected: "example.com",
		},
		{
			name:     "preserves casing",
			input:    "@Example.COM",
			expected: "Example.COM",
		},
		{
			name:     "handles empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "handles at-only input",
			input:    "@",
			expected: "",
		},
		{
			name:     "keeps subdomains intact",
			input:    "@mail.corp.example.com",
			expected: "mail.corp.example.com",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.NormalizeDomain(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestExtractEmailDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "extracts domain from address",
			input:    "john.doe@example.com",
			expected: "example.com",
		},
		{
			name:     "preserves domain casing",
			input:    "john.doe@Example.COM",
			expected: "Example.COM",
		},
		{
			name:     "returns empty for missing at sign",
			input:    "john.doe",
			expected: "",
		},
		{
			name:     "returns empty for empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "cuts at first at sign",
			input:    "a@b@c",
			expected: "b@c",
		},
		{
			name:     "handles empty domain part",
			input:    "john@",
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.ExtractEmailDomain(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
