package sanitizer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/handlekit/pkg/sanitizer"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "applies single transform",
			input:      "  hello  ",
			transforms: []func(string) string{sanitizer.Trim},
			expected:   "hello",
		},
		{
			name:  "applies multiple transforms in sequence",
			input: "  HELLO WORLD  ",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.ToLower,
			},
			expected: "hello world",
		},
		{
			name:  "applies complex transformation chain",
			input: "  Hello    World  ",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.RemoveExtraWhitespace,
				sanitizer.ToLower,
				func(s string) string { return strings.ReplaceAll(s, " ", ".") },
			},
			expected: "hello.world",
		},
		{
			name:       "handles empty transforms slice",
			input:      "hello world",
			transforms: []func(string) string{},
			expected:   "hello world",
		},
		{
			name:  "handles empty input",
			input: "",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.ToLower,
			},
			expected: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result := sanitizer.Apply(tt.input, tt.transforms...)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		transforms []func(string) string
		input      string
		expected   string
	}{
		{
			name:       "composes single transform",
			transforms: []func(string) string{sanitizer.Trim},
			input:      "  hello  ",
			expected:   "hello",
		},
		{
			name: "composes multiple transforms",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.ToLower,
			},
			input:    "  JOHN.DOE  ",
			expected: "john.doe",
		},
		{
			name:       "handles empty transforms",
			transforms: []func(string) string{},
			input:      "hello",
			expected:   "hello",
		},
		{
			name: "creates reusable transformation",
			transforms: []func(string) string{
				sanitizer.Trim,
				sanitizer.RemoveExtraWhitespace,
				sanitizer.ToLower,
			},
			input:    "  HELLO    WORLD  ",
			expected: "hello world",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			composedRule := sanitizer.Compose(tt.transforms...)
			result := composedRule(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestComposeReusability(t *testing.T) {
	t.Parallel()

	t.Run("composed rule can be reused multiple times", func(t *testing.T) {
		t.Parallel()

		handleCleanRule := sanitizer.Compose(
			sanitizer.Trim,
			sanitizer.ToLower,
		)

		inputs := []string{
			"  JOHN.DOE  ",
			"JANE_SMITH",
			"  Ana-Lopez  ",
		}

		expected := []string{
			"john.doe",
			"jane_smith",
			"ana-lopez",
		}

		for i, input := range inputs {
			result := handleCleanRule(input)
			assert.Equal(t, expected[i], result, "Failed for input: %s", input)
		}
	})
}

func TestApplyWithCompose(t *testing.T) {
	t.Parallel()

	t.Run("apply can use composed rules", func(t *testing.T) {
		t.Parallel()

		nameCleanRule := sanitizer.Compose(
			sanitizer.Trim,
			sanitizer.RemoveExtraWhitespace,
		)

		result := sanitizer.Apply("  john    doe  ", nameCleanRule)
		assert.Equal(t, "john doe", result)
	})

	t.Run("mix composed rules with direct functions", func(t *testing.T) {
		t.Parallel()

		basicCleanRule := sanitizer.Compose(
			sanitizer.Trim,
			sanitizer.RemoveExtraWhitespace,
		)

		result := sanitizer.Apply("  HELLO    WORLD  ",
			basicCleanRule,
			sanitizer.ToLower,
		)
		assert.Equal(t, "hello world", result)
	})
}

func TestApplyEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("apply with no transforms preserves value", func(t *testing.T) {
		t.Parallel()

		input := "test value"
		result := sanitizer.Apply(input)
		assert.Equal(t, input, result)
	})

	t.Run("compose with no transforms creates identity function", func(t *testing.T) {
		t.Parallel()

		identityRule := sanitizer.Compose[string]()
		input := "test value"
		result := identityRule(input)
		assert.Equal(t, input, result)
	})

	t.Run("chained compositions work correctly", func(t *testing.T) {
		t.Parallel()

		rule1 := sanitizer.Compose(sanitizer.Trim)
		rule2 := sanitizer.Compose(sanitizer.ToLower)
		combinedRule := sanitizer.Compose(rule1, rule2)

		result := combinedRule("  HELLO  ")
		assert.Equal(t, "hello", result)
	})
}
