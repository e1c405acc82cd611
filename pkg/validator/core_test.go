package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/handlekit/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "mode",
			Message: "must be one of: usernames, emails, both",
		})
		assert.Equal(t, "validation failed: mode: must be one of: usernames, emails, both", errs.Error())
	})

	t.Run("returns formatted message with multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{
			Field:   "mode",
			Message: "is required",
		})
		errs.Add(validator.ValidationError{
			Field:   "domain",
			Message: "is required",
		})

		errorMsg := errs.Error()
		assert.Contains(t, errorMsg, "validation failed:")
		assert.Contains(t, errorMsg, "mode: is required")
		assert.Contains(t, errorMsg, "domain: is required")
	})
}

func TestValidationErrors_Has(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "mode", Message: "bad"})

	assert.True(t, errs.Has("mode"))
	assert.False(t, errs.Has("case"))
}

func TestValidationErrors_Get(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "mode", Message: "first"})
	errs.Add(validator.ValidationError{Field: "mode", Message: "second"})
	errs.Add(validator.ValidationError{Field: "case", Message: "other"})

	assert.Equal(t, []string{"first", "second"}, errs.Get("mode"))
	assert.Nil(t, errs.Get("missing"))
}

func TestValidationErrors_Fields(t *testing.T) {
	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "mode", Message: "a"})
	errs.Add(validator.ValidationError{Field: "mode", Message: "b"})
	errs.Add(validator.ValidationError{Field: "case", Message: "c"})

	assert.Equal(t, []string{"mode", "case"}, errs.Fields())
}

func TestApply(t *testing.T) {
	passing := validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: "ok", Message: "never"},
	}
	failing := validator.Rule{
		Check: func() bool { return false },
		Error: validator.ValidationError{Field: "bad", Message: "always"},
	}

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(passing, passing))
	})

	t.Run("returns nil with no rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects every failing rule", func(t *testing.T) {
		err := validator.Apply(passing, failing, failing)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 2)
		assert.Equal(t, "bad", verrs[0].Field)
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Run("returns nil for nil error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(nil))
	})

	t.Run("returns nil for unrelated error", func(t *testing.T) {
		assert.Nil(t, validator.ExtractValidationErrors(errors.New("boom")))
	})

	t.Run("extracts wrapped validation errors", func(t *testing.T) {
		inner := validator.Apply(validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: "mode", Message: "bad"},
		})
		wrapped := fmt.Errorf("options: %w", inner)

		verrs := validator.ExtractValidationErrors(wrapped)
		require.Len(t, verrs, 1)
		assert.Equal(t, "mode", verrs[0].Field)
	})
}

func TestIsValidationError(t *testing.T) {
	t.Run("false for nil", func(t *testing.T) {
		assert.False(t, validator.IsValidationError(nil))
	})

	t.Run("false for plain error", func(t *testing.T) {
		assert.False(t, validator.IsValidationError(errors.New("boom")))
	})

	t.Run("true for apply failure", func(t *testing.T) {
		err := validator.Apply(validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: "x", Message: "y"},
		})
		assert.True(t, validator.IsValidationError(err))
	})
}
