package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/handlekit/pkg/validator"
)

func TestRequiredSlice(t *testing.T) {
	t.Run("passes for non-empty slice", func(t *testing.T) {
		assert.True(t, validator.RequiredSlice("domain", []string{"example.com"}).Check())
	})

	t.Run("fails for empty slice", func(t *testing.T) {
		rule := validator.RequiredSlice("domain", []string{})
		assert.False(t, rule.Check())
		assert.Equal(t, "field is required", rule.Error.Message)
	})

	t.Run("fails for nil slice", func(t *testing.T) {
		var domains []string
		assert.False(t, validator.RequiredSlice("domain", domains).Check())
	})

	t.Run("works with any element type", func(t *testing.T) {
		assert.True(t, validator.RequiredSlice("nums", []int{1}).Check())
	})
}
