package question

import (
	"slices"

	"github.com/go-playground/validator/v10"
)

// validate is the package-level validator instance used for struct validation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// cloneStringSlice creates a copy of a string slice to prevent aliasing.
// Returns nil for nil input to maintain consistency.
func cloneStringSlice(s []string) []string {
	return slices.Clone(s)
}
